package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/partlab/datasheet/model"
)

// DefaultPinContextRows caps how many pins the context block lists.
const DefaultPinContextRows = 15

// noPinContext is reported when the table has no data rows.
const noPinContext = "No pin table available."

// Document furniture scrubbed from generator input.
var (
	spaceRe   = regexp.MustCompile(`\s+`)
	docRevRe  = regexp.MustCompile(`DocID\d+.*?Rev\s+\d+`)
	pageRefRe = regexp.MustCompile(`\d+/\d+`)
)

// FormatPinContext renders a pin table as generator context, one line per
// pin: number, name, and when the table carries them, type and description.
// n caps the listed pins; zero or negative means DefaultPinContextRows. A
// table without data rows yields a fixed notice instead.
func FormatPinContext(t model.Table, n int) string {
	if n <= 0 {
		n = DefaultPinContextRows
	}
	if len(t.Rows) < 2 {
		return noPinContext
	}

	var lines []string
	for _, row := range t.Rows[1:] {
		if len(row) < 2 {
			continue
		}
		typ, desc := "", ""
		if len(row) > 2 {
			typ = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			desc = strings.TrimSpace(row[3])
		}
		lines = append(lines, fmt.Sprintf("Pin %s: %s (%s) - %s",
			strings.TrimSpace(row[0]), strings.TrimSpace(row[1]), typ, desc))
	}
	if len(lines) > n {
		lines = lines[:n]
	}
	return "Device pins:\n" + strings.Join(lines, "\n")
}

// CleanText flattens document text for generator input: whitespace runs
// collapse to single spaces first, then DocID revision footers and
// page-position fractions are removed. Removal happens after the collapse,
// so scrubbed spans leave doubled spaces behind.
func CleanText(s string) string {
	s = spaceRe.ReplaceAllString(s, " ")
	s = docRevRe.ReplaceAllString(s, "")
	s = pageRefRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
