package htmldoc

// TableData is the raw view of one markup table: every row's cell texts in
// document order, plus the context signals the extractors check.
type TableData struct {
	// Rows holds the td/th texts of every tr, in document order, with no
	// filtering or padding. Shaping is the consumer's concern.
	Rows [][]string
	// HeadRow is the first row of an explicit header section, or nil when
	// the table declares none (or it has no cells).
	HeadRow []string
	// Caption is the table's caption text, "" when absent.
	Caption string
	// PrevHeading is the nearest h1-h4 text preceding the table in
	// document order, "" when none.
	PrevHeading string
}

// Headers returns the row to treat as the header: the explicit header row
// when declared, else the first row.
func (t TableData) Headers() []string {
	if t.HeadRow != nil {
		return t.HeadRow
	}
	if len(t.Rows) > 0 {
		return t.Rows[0]
	}
	return nil
}

// DataRows returns the rows after the first, the rows candidate scanning
// walks. Nil when the table has at most one row.
func (t TableData) DataRows() [][]string {
	if len(t.Rows) <= 1 {
		return nil
	}
	return t.Rows[1:]
}
