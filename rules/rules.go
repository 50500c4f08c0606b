// Package rules defines the design-rule checklist schema and the checks
// that keep generated rules anchored to the document they came from.
//
// A Rule is one verifiable hardware requirement. Checklists arrive from
// generators as loosely structured JSON, so parsing gets a repair pass when
// plain decoding fails, then rules are normalized, the invalid dropped, and
// duplicates removed. Pin references validate against the document's
// extracted pin table: a rule may only name pins the document defines.
package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kaptinlin/jsonrepair"

	"github.com/partlab/datasheet/internal/jsonenc"
)

// minRuleLen is the shortest stripped rule text accepted as a rule.
const minRuleLen = 8

// Rule is one verifiable design requirement.
type Rule struct {
	Group     string   `json:"group"`
	Text      string   `json:"rule"`
	Pins      []string `json:"pins"`
	Essential bool     `json:"essential"`
}

// Valid reports whether the rule satisfies the checklist contract: a
// non-blank group, rule text of at least eight characters once stripped,
// and a pins list. Nil Pins means the field was absent.
func (r Rule) Valid() bool {
	if strings.TrimSpace(r.Group) == "" {
		return false
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Text)) < minRuleLen {
		return false
	}
	return r.Pins != nil
}

// Normalize returns a copy with the group stripped, whitespace runs in the
// rule text collapsed, and pins stripped with blanks dropped. An absent
// pins list becomes empty.
func (r Rule) Normalize() Rule {
	pins := make([]string, 0, len(r.Pins))
	for _, p := range r.Pins {
		if p = strings.TrimSpace(p); p != "" {
			pins = append(pins, p)
		}
	}
	return Rule{
		Group:     strings.TrimSpace(r.Group),
		Text:      strings.Join(strings.Fields(r.Text), " "),
		Pins:      pins,
		Essential: r.Essential,
	}
}

// Dedup keeps the first rule for each group and text pair, compared
// case-insensitively, preserving order.
func Dedup(rules []Rule) []Rule {
	type key struct{ group, text string }
	seen := make(map[key]bool, len(rules))
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		k := key{strings.ToLower(r.Group), strings.ToLower(r.Text)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

// DedupByText keeps the first rule for each rule text, compared stripped
// and case-insensitively, preserving order. Groups do not participate, so
// the same requirement filed under two groups keeps only its first filing.
func DedupByText(rules []Rule) []Rule {
	seen := make(map[string]bool, len(rules))
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		k := strings.ToLower(strings.TrimSpace(r.Text))
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

// wireRule is the decode shape for checklist JSON. Generators label the
// group field "category"; both keys decode, group winning when both appear.
type wireRule struct {
	Group     string   `json:"group"`
	Category  string   `json:"category"`
	Text      string   `json:"rule"`
	Pins      []string `json:"pins"`
	Essential bool     `json:"essential"`
}

func (w wireRule) rule() Rule {
	group := w.Group
	if group == "" {
		group = w.Category
	}
	return Rule{Group: group, Text: w.Text, Pins: w.Pins, Essential: w.Essential}
}

// ParseChecklist decodes a rule checklist from JSON. Input that fails plain
// decoding gets one repair pass before the parse fails. Decoded rules are
// normalized, the invalid dropped, and duplicates removed.
func ParseChecklist(data []byte) ([]Rule, error) {
	var raw []wireRule
	if err := jsonenc.Unmarshal(data, &raw); err != nil {
		repaired, rerr := jsonrepair.JSONRepair(string(data))
		if rerr != nil {
			return nil, fmt.Errorf("parsing checklist: %w (repair failed: %v)", err, rerr)
		}
		if err := jsonenc.UnmarshalString(repaired, &raw); err != nil {
			return nil, fmt.Errorf("parsing repaired checklist: %w", err)
		}
	}

	out := make([]Rule, 0, len(raw))
	for _, w := range raw {
		if n := w.rule().Normalize(); n.Valid() {
			out = append(out, n)
		}
	}
	return Dedup(out), nil
}
