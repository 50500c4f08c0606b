package identify

import (
	"go.uber.org/zap"

	"github.com/partlab/datasheet/htmldoc"
	"github.com/partlab/datasheet/pdfdoc"
)

// partHarvest accumulates accepted tokens in first-occurrence order.
type partHarvest struct {
	cls   *Classifier
	seen  map[string]bool
	parts []string
}

func newPartHarvest(cls *Classifier) *partHarvest {
	return &partHarvest{cls: cls, seen: make(map[string]bool)}
}

func (h *partHarvest) addTokens(text string) {
	for _, tok := range h.cls.Tokenize(text) {
		if !h.seen[tok] {
			h.seen[tok] = true
			h.parts = append(h.parts, tok)
		}
	}
}

// scanTable harvests tokens from a table's data rows. Columns whose header
// mentions ordering or part-number terms are scanned when any exist;
// otherwise every column is scanned, since many documents put order codes
// in tables with unlabeled or decorative headers.
func (h *partHarvest) scanTable(headers []string, rows [][]string) {
	flags := make([]bool, len(headers))
	flagged := false
	for i, hd := range headers {
		if h.cls.isOrderingText(hd) {
			flags[i] = true
			flagged = true
		}
	}
	for _, row := range rows {
		for idx, cell := range row {
			if flagged && (idx >= len(flags) || !flags[idx]) {
				continue
			}
			h.addTokens(cell)
		}
	}
}

// htmlTableParts harvests part candidates from every table in a markup
// document.
func (e *Extractor) htmlTableParts(doc *htmldoc.Document) []string {
	h := newPartHarvest(e.cls)
	for _, t := range doc.Tables() {
		headers := t.Headers()
		relevant := false
		for _, hd := range headers {
			if e.cls.isOrderingText(hd) {
				relevant = true
				break
			}
		}
		if !relevant && t.Caption != "" && e.cls.isOrderingText(t.Caption) {
			relevant = true
		}
		if !relevant && t.PrevHeading != "" && e.cls.isOrderingText(t.PrevHeading) {
			relevant = true
		}
		if !relevant {
			// Tables without ordering markers are still scanned. Order
			// codes often sit in tables whose headers never say so.
			e.log.Debug("table lacks ordering markers, scanning anyway",
				zap.Int("columns", len(headers)), zap.String("caption", t.Caption))
		}
		h.scanTable(headers, t.DataRows())
	}
	return h.parts
}

// pdfTableParts harvests part candidates from detected tables in a
// paginated document. The first detected row acts as the header row.
func (e *Extractor) pdfTableParts(doc *pdfdoc.Document) []string {
	h := newPartHarvest(e.cls)
	for _, t := range doc.Tables(e.maxPages) {
		if len(t.Rows) == 0 {
			continue
		}
		h.scanTable(t.Rows[0], t.Rows[1:])
	}
	return h.parts
}
