package pintable

import (
	"strings"

	"github.com/partlab/datasheet/model"
)

// headerRule rewrites one header cell onto a canonical column name. Rules
// apply in order and the first match wins. A rule fires when the lowered,
// trimmed header contains any word of anyOf, also contains a word of
// alsoAnyOf when that list is set, and contains no word of noneOf. A rule
// with exact set instead requires the whole header to equal it.
type headerRule struct {
	canonical string
	anyOf     []string
	alsoAnyOf []string
	noneOf    []string
	exact     string
}

var headerRules = []headerRule{
	{canonical: "Pin Number", anyOf: []string{"pin", "number", "#"}, noneOf: []string{"name"}},
	{canonical: "Pin Name", anyOf: []string{"name"}, alsoAnyOf: []string{"pin", "ball"}},
	{canonical: "Signal Name", anyOf: []string{"signal", "function"}, noneOf: []string{"description"}},
	// "description" contains the substring "io", so the direction rule
	// must not capture description columns.
	{canonical: "Direction", anyOf: []string{"direction", "i/o", "io"}, noneOf: []string{"description"}},
	{canonical: "Type", anyOf: []string{"type"}},
	{canonical: "Description", anyOf: []string{"description", "function"}},
	{canonical: "Pin Name", exact: "name"},
}

func (r headerRule) matches(h string) bool {
	if r.exact != "" {
		return h == r.exact
	}
	if !containsAny(h, r.anyOf) {
		return false
	}
	if len(r.alsoAnyOf) > 0 && !containsAny(h, r.alsoAnyOf) {
		return false
	}
	for _, w := range r.noneOf {
		if strings.Contains(h, w) {
			return false
		}
	}
	return true
}

func containsAny(h string, words []string) bool {
	for _, w := range words {
		if strings.Contains(h, w) {
			return true
		}
	}
	return false
}

// NormalizeHeader maps one header cell onto its canonical column name, or
// returns it unchanged when no rule matches.
func NormalizeHeader(header string) string {
	h := strings.TrimSpace(strings.ToLower(header))
	for _, r := range headerRules {
		if r.matches(h) {
			return r.canonical
		}
	}
	return header
}

// NormalizeHeaders rewrites a table's header row onto canonical column
// names. Data rows pass through verbatim. An empty table normalizes to the
// sentinel.
func NormalizeHeaders(t model.Table) model.Table {
	if len(t.Rows) == 0 {
		return Sentinel()
	}
	headers := make([]string, len(t.Rows[0]))
	for i, h := range t.Rows[0] {
		headers[i] = NormalizeHeader(h)
	}
	rows := make([][]string, 0, len(t.Rows))
	rows = append(rows, headers)
	rows = append(rows, t.Rows[1:]...)

	out := t
	out.Rows = rows
	return out
}
