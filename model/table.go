package model

import "strings"

// Table represents a rectangular string grid extracted from a document.
// Row 0 is the header row. Markup tables carry their caption and the nearest
// preceding heading for relevance checks; paginated tables carry the
// 1-based page they were found on.
type Table struct {
	Rows    [][]string
	Caption string
	Heading string
	Page    int
}

// RowCount returns the number of rows.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row.
func (t Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Header returns the header row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// DataRows returns the rows after the header.
func (t Table) DataRows() [][]string {
	if len(t.Rows) <= 1 {
		return nil
	}
	return t.Rows[1:]
}

// Pad grows or truncates every row to the maximum observed column count so
// the grid is rectangular. Returns the table for chaining.
func (t Table) Pad() Table {
	maxCols := 0
	for _, row := range t.Rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	for i, row := range t.Rows {
		for len(row) < maxCols {
			row = append(row, "")
		}
		t.Rows[i] = row[:maxCols]
	}
	return t
}

// ToTSV renders rows as tab-joined lines. Retrieval nodes use this form.
func (t Table) ToTSV() string {
	lines := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		lines = append(lines, strings.Join(row, "\t"))
	}
	return strings.Join(lines, "\n")
}

// ToMarkdown renders the table as a markdown grid with a separator after the
// header row.
func (t Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(t.Rows[0])
	for range t.Rows[0] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}
	return sb.String()
}

// ToCSV renders the table as CSV, quoting cells that contain commas, quotes,
// or newlines.
func (t Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			if strings.ContainsAny(cell, ",\"\n") {
				cell = "\"" + strings.ReplaceAll(cell, "\"", "\"\"") + "\""
			}
			sb.WriteString(cell)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
