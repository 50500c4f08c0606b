// Package config resolves runtime settings from defaults, organization
// profiles, and the environment.
//
// Settings follow one precedence chain: built-in defaults, then an optional
// YAML settings file, then environment variables. The organization selects
// a profile of section priorities and keywords; unknown organizations fall
// back to the generic profile so a misspelled ORG never breaks a run.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// DefaultOrg is the profile used when ORG is unset or unknown.
const DefaultOrg = "generic"

// Environment variables bound to settings keys.
var envBindings = map[string]string{
	"org":            "ORG",
	"model":          "LLM_MODEL",
	"pdf_max_pages":  "PDF_MAX_PAGES",
	"retrieval_k":    "RETRIEVAL_K",
	"evidence_top_n": "EVIDENCE_TOP_N",
	"pin_table_topn": "PIN_TABLE_TOPN",
}

// Settings is the resolved runtime configuration.
type Settings struct {
	// Org is the normalized organization the profile was chosen for.
	Org string

	// Model names the generation model offered to rule generators.
	Model string

	// PDFMaxPages caps paginated scans. Zero keeps each operation's
	// default.
	PDFMaxPages int

	// RetrievalK is how many evidence chunks a retrieval returns.
	RetrievalK int

	// EvidenceTopN caps the evidence chunks forwarded to a generator.
	EvidenceTopN int

	// PinTableTopN caps the pins listed in generator context.
	PinTableTopN int

	// Profile carries the organization's section guidance.
	Profile Profile
}

// Profile is one organization's section guidance.
type Profile struct {
	// PriorityCategories are the rule categories to mine first.
	PriorityCategories []string `mapstructure:"priority_categories" yaml:"priority_categories"`

	// SectionKeywords maps a category to the section keywords that signal
	// it in document text.
	SectionKeywords map[string][]string `mapstructure:"section_keywords" yaml:"section_keywords"`

	// PromptPrefix is prepended to generator prompts.
	PromptPrefix string `mapstructure:"prompt_prefix" yaml:"prompt_prefix"`
}

// Queries flattens the profile into retrieval queries: the priority
// categories first, then the section keywords with keyword groups in
// category name order so the output is stable.
func (p Profile) Queries() []string {
	out := slices.Clone(p.PriorityCategories)
	cats := make([]string, 0, len(p.SectionKeywords))
	for cat := range p.SectionKeywords {
		cats = append(cats, cat)
	}
	slices.Sort(cats)
	for _, cat := range cats {
		out = append(out, p.SectionKeywords[cat]...)
	}
	return out
}

// Load resolves settings. file, when non-empty, names a YAML settings file
// read between defaults and environment overrides; it may also define
// profiles under "profiles.<org>" that override the built-in profile
// field by field.
func Load(file string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("org", DefaultOrg)
	v.SetDefault("model", "gpt-5")
	v.SetDefault("pdf_max_pages", 0)
	v.SetDefault("retrieval_k", 20)
	v.SetDefault("evidence_top_n", 150)
	v.SetDefault("pin_table_topn", 25)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
	}

	s := &Settings{
		Org:          strings.ToLower(strings.TrimSpace(v.GetString("org"))),
		Model:        v.GetString("model"),
		PDFMaxPages:  v.GetInt("pdf_max_pages"),
		RetrievalK:   v.GetInt("retrieval_k"),
		EvidenceTopN: v.GetInt("evidence_top_n"),
		PinTableTopN: v.GetInt("pin_table_topn"),
	}
	if s.Org == "" {
		s.Org = DefaultOrg
	}

	profile, ok := builtinProfiles()[s.Org]
	if !ok {
		profile = builtinProfiles()[DefaultOrg]
	}
	if key := "profiles." + s.Org; v.IsSet(key) {
		if err := v.UnmarshalKey(key, &profile); err != nil {
			return nil, fmt.Errorf("profile %s: %w", s.Org, err)
		}
	}
	s.Profile = profile

	return s, nil
}

// defaultCategories returns the rule categories shared by every built-in
// profile.
func defaultCategories() []string {
	return []string{
		"Absolute Maximum Ratings",
		"Electrical Characteristics",
		"Pin Descriptions",
		"Power Supply Requirements",
		"Application Information",
		"Component Requirements",
	}
}

// builtinProfiles returns the organization profiles that ship with the
// tool. Each call builds fresh values, so callers can modify their copy.
func builtinProfiles() map[string]Profile {
	return map[string]Profile{
		"generic": {
			PriorityCategories: defaultCategories(),
			SectionKeywords:    map[string][]string{},
		},
		"st": {
			PriorityCategories: defaultCategories(),
			SectionKeywords: map[string][]string{
				"Pin Descriptions":           {"pin description", "pin functions", "terminal"},
				"Electrical Characteristics": {"electrical characteristics", "viL", "viH", "voH", "voL", "current"},
				"Application Information":    {"application information", "typical application", "electrical connections"},
				"Power Supply":               {"vdd", "vdda", "vdd_io", "decouple", "capacit"},
			},
			PromptPrefix: "For STMicroelectronics PDFs, emphasize electrical connections, decoupling caps, and typical application circuits.",
		},
	}
}
