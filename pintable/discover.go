package pintable

import (
	"strings"

	"github.com/partlab/datasheet/htmldoc"
	"github.com/partlab/datasheet/model"
	"github.com/partlab/datasheet/pdfdoc"
)

// Discovery thresholds. Markup tables are trusted at two rows; detected
// positional-text tables need three rows and three columns to rule out
// accidental alignment.
const (
	minHTMLRows    = 2
	minPDFRows     = 3
	minPDFCols     = 3
	minPDFRowCells = 2
)

// DiscoverHTML collects candidate tables from a markup document: every
// table keeps its rows that have at least one non-blank cell, and survives
// with at least two such rows, padded to a common column count.
func DiscoverHTML(doc *htmldoc.Document) []model.Table {
	var tables []model.Table
	for _, td := range doc.Tables() {
		var rows [][]string
		for _, cells := range td.Rows {
			if len(cells) == 0 || !anyNonBlank(cells) {
				continue
			}
			rows = append(rows, cells)
		}
		if len(rows) < minHTMLRows {
			continue
		}
		t := model.Table{Rows: rows, Caption: td.Caption, Heading: td.PrevHeading}
		tables = append(tables, t.Pad())
	}
	return tables
}

// DiscoverPDF collects candidate tables from a paginated document, up to
// maxPages when positive.
func DiscoverPDF(doc *pdfdoc.Document, maxPages int) []model.Table {
	var tables []model.Table
	for _, t := range doc.Tables(maxPages) {
		if shaped, ok := shapeDetectedTable(t); ok {
			tables = append(tables, shaped)
		}
	}
	return tables
}

// shapeDetectedTable cleans a detected table: cells are whitespace
// collapsed, rows keep at least two non-empty cells, and the result needs
// at least three rows and three columns. Reports false when the table does
// not survive cleaning.
func shapeDetectedTable(t model.Table) (model.Table, bool) {
	if len(t.Rows) < minPDFRows {
		return model.Table{}, false
	}

	var clean [][]string
	for _, row := range t.Rows {
		if len(row) == 0 {
			continue
		}
		cleanRow := make([]string, len(row))
		nonEmpty := 0
		for i, cell := range row {
			c := strings.Join(strings.Fields(cell), " ")
			cleanRow[i] = c
			if c != "" {
				nonEmpty++
			}
		}
		if nonEmpty >= minPDFRowCells {
			clean = append(clean, cleanRow)
		}
	}
	if len(clean) < minPDFRows {
		return model.Table{}, false
	}

	maxCols := 0
	for _, row := range clean {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	if maxCols < minPDFCols {
		return model.Table{}, false
	}

	shaped := model.Table{Rows: clean, Page: t.Page}
	return shaped.Pad(), true
}

func anyNonBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return true
		}
	}
	return false
}
