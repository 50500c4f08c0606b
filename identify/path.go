package identify

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// pathAncestorDepth is how many directory levels above the file are checked
// for part-like names.
const pathAncestorDepth = 3

// PathCandidates extracts part-like names from a file's path: the nearest
// ancestor directory names first, then the file stem. Vendors commonly store
// a datasheet under a directory named for the device, so these outrank
// anything found inside the document. Ancestor names are appended as
// encountered; only the stem is checked against what is already collected.
func (c *Classifier) PathCandidates(path string) []string {
	var out []string

	dir := filepath.Dir(path)
	for i := 0; i < pathAncestorDepth; i++ {
		name := filepath.Base(dir)
		if name != "" && !c.formatReject[name] && c.isPathName(name) {
			out = append(out, name)
		}
		dir = filepath.Dir(dir)
	}

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if c.isPathName(stem) && !slices.Contains(out, stem) {
		out = append(out, stem)
	}
	return out
}

// isPathName reports whether a path component looks like a part number:
// uppercase alphanumeric with at least one digit.
func (c *Classifier) isPathName(name string) bool {
	return c.pathNameRe.MatchString(name) && strings.ContainsFunc(name, unicode.IsDigit)
}
