package identify

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/partlab/datasheet/vocab"
)

// Token length bounds for part-number candidates.
const (
	minTokenLen = 4
	maxTokenLen = 80
)

// Classifier decides whether a token is a plausible part identifier and
// carries the compiled pattern vocabulary shared by all extraction passes.
type Classifier struct {
	formatReject map[string]bool
	protoReject  map[string]bool

	signalRe   *regexp.Regexp
	orderingRe *regexp.Regexp
	pkgWordRes []*regexp.Regexp
	pkgCodeRe  *regexp.Regexp
	pkgPrefix  []string

	tokenRe    *regexp.Regexp
	vendorRe   *regexp.Regexp
	longRunRe  *regexp.Regexp
	decimalRe  *regexp.Regexp
	punctRunRe *regexp.Regexp
	charsetRe  *regexp.Regexp
	pathNameRe *regexp.Regexp
}

// NewClassifier compiles a vocabulary into a Classifier. It fails if a
// vocabulary entry is not a valid pattern fragment.
func NewClassifier(v *vocab.Vocabulary) (*Classifier, error) {
	c := &Classifier{
		formatReject: toSet(v.FormatReject),
		protoReject:  toSet(v.ProtocolReject),
		pkgPrefix:    v.PackagePrefixes,

		tokenRe:    regexp.MustCompile(`\b[A-Z][A-Z0-9.-]{3,}\b`),
		vendorRe:   regexp.MustCompile(`\b(SL[A-Z]{1,2}[A-Z0-9]{3,})\b`),
		longRunRe:  regexp.MustCompile(`\b[A-Z0-9]{10,}\b`),
		decimalRe:  regexp.MustCompile(`\d+\.\d+`),
		punctRunRe: regexp.MustCompile(`[.+\-_]{4,}`),
		charsetRe:  regexp.MustCompile(`(?i)^[A-Z0-9.-]+$`),
		pathNameRe: regexp.MustCompile(`^[A-Z][A-Z0-9.-]{3,}$`),
		pkgCodeRe:  regexp.MustCompile(`\b([A-Z]{2,5}[0-9]{2,4})\b`),
	}

	var err error
	c.signalRe, err = regexp.Compile(`(?i)^(?:` + strings.Join(v.SignalPrefixes, "|") + `)[A-Z0-9/._-]*$`)
	if err != nil {
		return nil, fmt.Errorf("compiling signal prefixes: %w", err)
	}
	c.orderingRe, err = regexp.Compile(`(?i)\b(?:` + strings.Join(orderingAlternatives(v.OrderingTerms), "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compiling ordering terms: %w", err)
	}
	for _, w := range v.PackageKeywords {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(w) + `[0-9]*\b`)
		if err != nil {
			return nil, fmt.Errorf("compiling package keyword %q: %w", w, err)
		}
		c.pkgWordRes = append(c.pkgWordRes, re)
	}
	return c, nil
}

// orderingAlternatives turns ordering terms into pattern alternatives.
// Internal spaces match any whitespace run, so "order code" also matches
// "order  code" and "ordercode".
func orderingAlternatives(terms []string) []string {
	alts := make([]string, len(terms))
	for i, term := range terms {
		words := strings.Fields(term)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		alts[i] = strings.Join(words, `\s*`)
	}
	return alts
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

// IsPartToken reports whether tok looks like a device part number rather
// than a format name, protocol, signal, or version string. A part token
// starts with a letter, contains a digit, is 4 to 80 characters long, and
// uses only alphanumerics, dots, and hyphens.
func (c *Classifier) IsPartToken(tok string) bool {
	if c.formatReject[tok] || c.protoReject[strings.ToUpper(tok)] {
		return false
	}
	if n := utf8.RuneCountInString(tok); n < minTokenLen || n > maxTokenLen {
		return false
	}
	first, _ := utf8.DecodeRuneInString(tok)
	if !unicode.IsLetter(first) {
		return false
	}
	if !strings.ContainsFunc(tok, unicode.IsDigit) {
		return false
	}
	if c.decimalRe.MatchString(tok) {
		return false
	}
	if c.signalRe.MatchString(tok) {
		return false
	}
	if c.punctRunRe.MatchString(tok) {
		return false
	}
	return c.charsetRe.MatchString(tok)
}

// Tokenize scans text for uppercase alphanumeric spans and returns the ones
// accepted by [Classifier.IsPartToken], in match order with duplicates kept.
func (c *Classifier) Tokenize(text string) []string {
	var out []string
	for _, tok := range c.tokenRe.FindAllString(text, -1) {
		if c.IsPartToken(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// isOrderingText reports whether text mentions ordering or part-number
// information.
func (c *Classifier) isOrderingText(text string) bool {
	return c.orderingRe.MatchString(text)
}
