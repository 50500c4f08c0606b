package rules

import (
	"strings"

	"github.com/partlab/datasheet/model"
)

// PinIndex is the set of pin names and numbers a document defines, built
// from an extracted pin table. Lookups are case-insensitive and resolve to
// the casing the table uses.
type PinIndex struct {
	names   map[string]string
	numbers map[string]bool
	numName map[string]string
}

// NewPinIndex indexes a pin table. The first row is the header. Pin numbers
// come from the first column and names from the second; a later row wins
// when a name or number repeats.
func NewPinIndex(t model.Table) PinIndex {
	idx := PinIndex{
		names:   make(map[string]string),
		numbers: make(map[string]bool),
		numName: make(map[string]string),
	}
	if len(t.Rows) < 2 {
		return idx
	}
	for _, row := range t.Rows[1:] {
		if len(row) == 0 {
			continue
		}
		number := strings.TrimSpace(row[0])
		name := ""
		if len(row) > 1 {
			name = strings.TrimSpace(row[1])
		}
		if number != "" {
			idx.numbers[strings.ToLower(number)] = true
		}
		if name != "" {
			idx.names[strings.ToLower(name)] = name
		}
		if number != "" && name != "" {
			idx.numName[strings.ToLower(number)] = name
		}
	}
	return idx
}

// HasName reports whether the table defines a pin with this name.
func (x PinIndex) HasName(name string) bool {
	_, ok := x.names[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// HasNumber reports whether the table defines a pin with this number.
func (x PinIndex) HasNumber(number string) bool {
	return x.numbers[strings.ToLower(strings.TrimSpace(number))]
}

// FilterPins validates candidate pin references against the index. A known
// name resolves to the table's casing; a known number maps to its pin name
// when the table names it and is dropped otherwise. Unknown references are
// dropped. The first occurrence of each resolved name wins and order is
// preserved.
func (x PinIndex) FilterPins(candidates []string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, raw := range candidates {
		lower := strings.ToLower(strings.TrimSpace(raw))

		resolved := ""
		if canon, ok := x.names[lower]; ok {
			resolved = canon
		} else if x.numbers[lower] {
			resolved = x.numName[lower]
		}
		if resolved != "" && !seen[resolved] {
			seen[resolved] = true
			out = append(out, resolved)
		}
	}
	return out
}
