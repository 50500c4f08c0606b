package identify

import (
	"sort"
	"strings"

	"github.com/partlab/datasheet/model"
)

// FindPackages collects package codes from the title, headings, and body.
// Two passes feed one set: known package-family keywords with optional
// trailing digits, and the generic letters-then-digits pattern filtered by
// the package prefix allow-list. The result is sorted.
func (c *Classifier) FindPackages(bits model.TextBits) []string {
	text := bits.NarrowPool()
	seen := make(map[string]bool)

	for _, re := range c.pkgWordRes {
		for _, m := range re.FindAllString(text, -1) {
			seen[m] = true
		}
	}
	for _, m := range c.pkgCodeRe.FindAllStringSubmatch(text, -1) {
		tok := m[1]
		for _, p := range c.pkgPrefix {
			if strings.HasPrefix(tok, p) {
				seen[tok] = true
				break
			}
		}
	}

	out := make([]string, 0, len(seen))
	for pkg := range seen {
		out = append(out, pkg)
	}
	sort.Strings(out)
	return out
}
