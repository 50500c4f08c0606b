// Package identify determines the most likely device identifier and package
// codes of a technical document.
//
// Candidates are gathered from independent sources: the file path, tables
// whose headers mention ordering information, the sections that follow
// ordering headings, vendor literature codes, and frequency-scored tokens
// from the document text. The merge preserves source priority: path
// candidates first, then harvested candidates, then scored text tokens, with
// exact-string dedup so later sources only append names not already present.
package identify

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/partlab/datasheet/format"
	"github.com/partlab/datasheet/htmldoc"
	"github.com/partlab/datasheet/model"
	"github.com/partlab/datasheet/pdfdoc"
	"github.com/partlab/datasheet/vocab"
)

// DefaultMaxPages caps how many pages of a paginated document are scanned
// for identification. Device names live in the front matter.
const DefaultMaxPages = 10

// Output caps.
const (
	maxCandidates = 2000
	maxPackages   = 20
)

// Extractor runs the identification pipeline over documents.
type Extractor struct {
	cls      *Classifier
	maxPages int
	log      *zap.Logger
}

// New builds an Extractor from a vocabulary.
func New(v *vocab.Vocabulary) (*Extractor, error) {
	cls, err := NewClassifier(v)
	if err != nil {
		return nil, err
	}
	return &Extractor{cls: cls, maxPages: DefaultMaxPages, log: zap.NewNop()}, nil
}

// WithLogger sets the logger.
func (e *Extractor) WithLogger(log *zap.Logger) *Extractor {
	if log != nil {
		e.log = log
	}
	return e
}

// WithMaxPages overrides the page cap for paginated documents. Zero or
// negative means no cap.
func (e *Extractor) WithMaxPages(n int) *Extractor {
	e.maxPages = n
	return e
}

// Classifier returns the compiled classifier, for callers that need direct
// token checks.
func (e *Extractor) Classifier() *Classifier {
	return e.cls
}

// File identifies the device a document describes. The format is chosen by
// extension. Unsupported extensions fail with [format.ErrUnsupported];
// missing files fail with the underlying not-exist error.
func (e *Extractor) File(path string) (model.Identification, error) {
	switch format.Detect(path) {
	case format.HTML:
		doc, err := htmldoc.Open(path)
		if err != nil {
			return model.Identification{}, fmt.Errorf("identify %s: %w", path, err)
		}
		return e.HTMLDocument(doc, path), nil
	case format.PDF:
		doc, err := pdfdoc.Open(path)
		if err != nil {
			return model.Identification{}, fmt.Errorf("identify %s: %w", path, err)
		}
		defer doc.Close()
		return e.PDFDocument(doc, path), nil
	default:
		return model.Identification{}, fmt.Errorf("identify %s: %w", path, format.ErrUnsupported)
	}
}

// HTMLDocument identifies the device described by a markup document. path
// contributes path-derived candidates and is echoed in the result.
func (e *Extractor) HTMLDocument(doc *htmldoc.Document, path string) model.Identification {
	bits := doc.Bits()
	tableParts := e.htmlTableParts(doc)
	sectionParts := e.orderingSectionParts(doc)
	vendorCodes := e.cls.VendorCodes(bits.NarrowPool())
	harvested := mergeUnique(tableParts, sectionParts, vendorCodes)
	return e.assemble(path, bits, harvested)
}

// PDFDocument identifies the device described by a paginated document.
func (e *Extractor) PDFDocument(doc *pdfdoc.Document, path string) model.Identification {
	doc.WithLogger(e.log)
	bits := doc.Bits(e.maxPages)
	tableParts := e.pdfTableParts(doc)
	vendorCodes := e.cls.VendorCodes(bits.NarrowPool())
	harvested := mergeUnique(tableParts, vendorCodes)
	return e.assemble(path, bits, harvested)
}

// assemble merges candidate sources in priority order and builds the result.
func (e *Extractor) assemble(path string, bits model.TextBits, harvested []string) model.Identification {
	merged := mergeUnique(e.cls.PathCandidates(path), harvested, e.cls.ScoreParts(bits))
	if len(merged) > maxCandidates {
		merged = merged[:maxCandidates]
	}
	packages := e.cls.FindPackages(bits)
	if len(packages) > maxPackages {
		packages = packages[:maxPackages]
	}

	id := model.Identification{
		File:           path,
		PartCandidates: merged,
		Packages:       packages,
	}
	if len(merged) > 0 {
		id.DeviceName = merged[0]
	}
	if id.PartCandidates == nil {
		id.PartCandidates = []string{}
	}
	if id.Packages == nil {
		id.Packages = []string{}
	}
	e.log.Debug("identified document",
		zap.String("file", path),
		zap.String("device", id.DeviceName),
		zap.Int("candidates", len(id.PartCandidates)),
		zap.Int("packages", len(id.Packages)))
	return id
}

// mergeUnique concatenates lists keeping the first occurrence of each
// string. Comparison is exact and case-sensitive.
func mergeUnique(lists ...[]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
