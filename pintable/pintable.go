// Package pintable locates and canonicalizes a document's pin-assignment
// table.
//
// The pipeline runs discovery, scoring, selection, and header
// normalization: candidate tables come from markup tables or detected
// positional-text tables, each is scored for pin-table likeness, the best
// scorer wins, and its header row is rewritten onto canonical column names.
// When no table scores above zero the result is a sentinel table holding
// only the canonical header row, so downstream consumers always see the
// same shape.
package pintable

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/partlab/datasheet/format"
	"github.com/partlab/datasheet/htmldoc"
	"github.com/partlab/datasheet/model"
	"github.com/partlab/datasheet/pdfdoc"
	"github.com/partlab/datasheet/vocab"
)

// DefaultLabel keys the extraction result when no package variant is
// distinguished.
const DefaultLabel = "DEFAULT_PACKAGE"

var canonicalHeaders = []string{
	"Pin Number", "Pin Name", "Signal Name", "Direction", "Type", "Description",
}

// CanonicalHeaders returns the canonical pin-table column names, in output
// order.
func CanonicalHeaders() []string {
	return slices.Clone(canonicalHeaders)
}

// Sentinel returns the header-only table reported when no pin table is
// found.
func Sentinel() model.Table {
	return model.Table{Rows: [][]string{CanonicalHeaders()}}
}

// Extractor runs the pin-table pipeline over documents.
type Extractor struct {
	scorer   *Scorer
	maxPages int
	log      *zap.Logger
}

// New builds an Extractor from a vocabulary. All pages of a paginated
// document are scanned unless WithMaxPages sets a cap.
func New(v *vocab.Vocabulary) *Extractor {
	return &Extractor{scorer: NewScorer(v), log: zap.NewNop()}
}

// WithLogger sets the logger.
func (e *Extractor) WithLogger(log *zap.Logger) *Extractor {
	if log != nil {
		e.log = log
	}
	return e
}

// WithMaxPages caps how many pages of a paginated document are scanned.
// Zero or negative means all pages.
func (e *Extractor) WithMaxPages(n int) *Extractor {
	e.maxPages = n
	return e
}

// Scorer returns the extractor's table scorer.
func (e *Extractor) Scorer() *Scorer {
	return e.scorer
}

// File extracts the pin table of a document, keyed by package label.
// Unsupported formats and unreadable paginated documents yield the sentinel
// table rather than an error; only markup documents that cannot be opened
// fail.
func (e *Extractor) File(path string) (map[string]model.Table, error) {
	switch format.Detect(path) {
	case format.HTML:
		doc, err := htmldoc.Open(path)
		if err != nil {
			return nil, fmt.Errorf("pin tables %s: %w", path, err)
		}
		return e.HTMLDocument(doc), nil
	case format.PDF:
		doc, err := pdfdoc.Open(path)
		if err != nil {
			e.log.Warn("unreadable document, returning sentinel table",
				zap.String("file", path), zap.Error(err))
			return sentinelResult(), nil
		}
		defer doc.Close()
		return e.PDFDocument(doc), nil
	default:
		return sentinelResult(), nil
	}
}

// HTMLDocument extracts the pin table of a markup document.
func (e *Extractor) HTMLDocument(doc *htmldoc.Document) map[string]model.Table {
	return e.result(DiscoverHTML(doc))
}

// PDFDocument extracts the pin table of a paginated document.
func (e *Extractor) PDFDocument(doc *pdfdoc.Document) map[string]model.Table {
	doc.WithLogger(e.log)
	return e.result(DiscoverPDF(doc, e.maxPages))
}

func (e *Extractor) result(tables []model.Table) map[string]model.Table {
	best := e.scorer.SelectBest(tables)
	e.log.Debug("selected pin table",
		zap.Int("discovered", len(tables)),
		zap.Int("rows", best.RowCount()))
	return map[string]model.Table{DefaultLabel: NormalizeHeaders(best)}
}

func sentinelResult() map[string]model.Table {
	return map[string]model.Table{DefaultLabel: Sentinel()}
}
