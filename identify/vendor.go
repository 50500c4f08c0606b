package identify

import (
	"strings"
	"unicode"
)

// VendorCodes extracts vendor literature codes and long vendor keys from
// text, in first-occurrence order. Neither pass is gated by the part-token
// classifier: literature codes carry no digits in some revisions, and long
// concatenated keys exceed the usual token shape.
func (c *Classifier) VendorCodes(text string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, m := range c.vendorRe.FindAllStringSubmatch(text, -1) {
		code := m[1]
		if !seen[code] {
			seen[code] = true
			out = append(out, code)
		}
	}
	for _, tok := range c.longRunRe.FindAllString(text, -1) {
		if !strings.ContainsFunc(tok, unicode.IsDigit) {
			continue
		}
		if !strings.ContainsFunc(tok, unicode.IsLetter) {
			continue
		}
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}
