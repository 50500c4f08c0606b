// Package vocab holds the pattern vocabulary the extractors match against:
// reject sets, signal prefixes, package codes, ordering terms, and scoring
// keywords. The defaults are embedded as YAML and every list can be replaced
// per organization with an override file, so extraction thresholds are tuned
// without touching extraction logic.
package vocab

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Vocabulary is the full set of pattern tables. All lists are read-only once
// built; extractors compile them into matchers at construction time.
type Vocabulary struct {
	// FormatReject lists tokens rejected verbatim (case-sensitive).
	FormatReject []string `yaml:"format_reject"`
	// ProtocolReject lists tokens rejected after upper-casing.
	ProtocolReject []string `yaml:"protocol_reject"`
	// SignalPrefixes lists regexp fragments; a token matching
	// ^(prefix)[A-Z0-9/._-]*$ case-insensitively is a signal name.
	SignalPrefixes []string `yaml:"signal_prefixes"`
	// PackageKeywords lists package families matched with optional
	// trailing digits.
	PackageKeywords []string `yaml:"package_keywords"`
	// PackagePrefixes lists accepted prefixes for the generic
	// letters-then-digits package pattern.
	PackagePrefixes []string `yaml:"package_prefixes"`
	// OrderingTerms lists terms marking ordering-information headings,
	// header cells, and captions. Internal spaces match any whitespace run.
	OrderingTerms []string `yaml:"ordering_terms"`

	StrongPinHeaders   []string `yaml:"strong_pin_headers"`
	ModeratePinHeaders []string `yaml:"moderate_pin_headers"`
	ElectricalHeaders  []string `yaml:"electrical_headers"`
	SupplyPins         []string `yaml:"supply_pins"`

	// BoostWords mark retrieval chunks as likely pin/electrical content.
	BoostWords []string `yaml:"boost_words"`
}

var (
	defaultOnce sync.Once
	defaultVoc  *Vocabulary
)

// Default returns the embedded default vocabulary. The returned value is
// shared and must be treated as read-only.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		v := &Vocabulary{}
		if err := yaml.Unmarshal(defaultYAML, v); err != nil {
			// The embedded defaults are part of the build; failing to
			// parse them is a programming error.
			panic(fmt.Sprintf("vocab: embedded defaults invalid: %v", err))
		}
		defaultVoc = v
	})
	return defaultVoc
}

// Clone returns a deep copy safe to mutate.
func (v *Vocabulary) Clone() *Vocabulary {
	c := &Vocabulary{}
	c.FormatReject = append([]string(nil), v.FormatReject...)
	c.ProtocolReject = append([]string(nil), v.ProtocolReject...)
	c.SignalPrefixes = append([]string(nil), v.SignalPrefixes...)
	c.PackageKeywords = append([]string(nil), v.PackageKeywords...)
	c.PackagePrefixes = append([]string(nil), v.PackagePrefixes...)
	c.OrderingTerms = append([]string(nil), v.OrderingTerms...)
	c.StrongPinHeaders = append([]string(nil), v.StrongPinHeaders...)
	c.ModeratePinHeaders = append([]string(nil), v.ModeratePinHeaders...)
	c.ElectricalHeaders = append([]string(nil), v.ElectricalHeaders...)
	c.SupplyPins = append([]string(nil), v.SupplyPins...)
	c.BoostWords = append([]string(nil), v.BoostWords...)
	return c
}

// Load reads an override file and merges it over the defaults: any list
// present and non-empty in the file replaces the default list wholesale,
// absent lists keep their defaults.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	override := &Vocabulary{}
	if err := yaml.Unmarshal(data, override); err != nil {
		return nil, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}

	merged := Default().Clone()
	merge := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	merge(&merged.FormatReject, override.FormatReject)
	merge(&merged.ProtocolReject, override.ProtocolReject)
	merge(&merged.SignalPrefixes, override.SignalPrefixes)
	merge(&merged.PackageKeywords, override.PackageKeywords)
	merge(&merged.PackagePrefixes, override.PackagePrefixes)
	merge(&merged.OrderingTerms, override.OrderingTerms)
	merge(&merged.StrongPinHeaders, override.StrongPinHeaders)
	merge(&merged.ModeratePinHeaders, override.ModeratePinHeaders)
	merge(&merged.ElectricalHeaders, override.ElectricalHeaders)
	merge(&merged.SupplyPins, override.SupplyPins)
	merge(&merged.BoostWords, override.BoostWords)
	return merged, nil
}
