package pdfdoc

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/partlab/datasheet/model"
)

// cellGap is the horizontal whitespace, in points, that separates two cells
// on the same text row. Smaller gaps merge into one cell.
const cellGap = 8.0

// wordGap is the horizontal whitespace that separates two words within a
// cell. Text runs closer than this are concatenated without a space.
const wordGap = 1.0

// minTableRows is the smallest run of multi-cell rows reported as a table.
const minTableRows = 3

// Tables detects tables on every page, up to maxPages when positive. Pages
// that cannot be read are logged and skipped.
func (d *Document) Tables(maxPages int) []model.Table {
	n := d.reader.NumPage()
	if maxPages > 0 && n > maxPages {
		n = maxPages
	}
	var out []model.Table
	for i := 1; i <= n; i++ {
		tables, err := d.PageTables(i)
		if err != nil {
			d.log.Warn("skipping page tables", zap.Int("page", i), zap.Error(err))
			continue
		}
		out = append(out, tables...)
	}
	return out
}

// PageTables detects tables on one page (1-based) by grouping the page's
// positional text into rows and columns.
func (d *Document) PageTables(pageNum int) (tables []model.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			tables, err = nil, fmt.Errorf("page %d tables: %v", pageNum, r)
		}
	}()

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}
	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, fmt.Errorf("page %d tables: %w", pageNum, err)
	}
	return tablesFromRows(rows, pageNum), nil
}

// tablesFromRows groups consecutive multi-cell text rows into tables. A row
// with fewer than two cells ends the current run; runs shorter than
// minTableRows are discarded.
func tablesFromRows(rows pdf.Rows, pageNum int) []model.Table {
	var tables []model.Table
	var block [][]string

	flush := func() {
		if len(block) >= minTableRows {
			tables = append(tables, model.Table{Rows: block, Page: pageNum})
		}
		block = nil
	}

	for _, row := range rows {
		cells := rowCells(row)
		if len(cells) >= 2 {
			block = append(block, cells)
		} else {
			flush()
		}
	}
	flush()
	return tables
}

// rowCells splits one positional text row into cell strings on horizontal
// gaps. Text runs arrive ordered by X.
func rowCells(row *pdf.Row) []string {
	if row == nil || len(row.Content) == 0 {
		return nil
	}

	var cells []string
	var cell strings.Builder
	flush := func() {
		if s := collapseSpace(cell.String()); s != "" {
			cells = append(cells, s)
		}
		cell.Reset()
	}

	prevEnd := 0.0
	for i, t := range row.Content {
		if i > 0 {
			gap := t.X - prevEnd
			if gap > cellGap {
				flush()
			} else if gap > wordGap {
				cell.WriteByte(' ')
			}
		}
		cell.WriteString(t.S)
		if end := t.X + t.W; end > prevEnd {
			prevEnd = end
		}
	}
	flush()
	return cells
}

// collapseSpace trims a string and folds internal whitespace runs into
// single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
