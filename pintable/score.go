package pintable

import (
	"regexp"
	"strings"

	"github.com/partlab/datasheet/model"
	"github.com/partlab/datasheet/vocab"
)

// Scoring weights. A table scores by how much its header row and first
// column look like a pin assignment rather than an electrical-spec table.
const (
	minScoreRows         = 3
	strongHeaderBonus    = 20
	moderateHeaderBonus  = 10
	pinLikeBonus         = 8
	pinSampleSize        = 10
	electricalThreshold  = 2
	electricalPenalty    = 30
	dataRowBonus         = 2
	dataRowBonusCap      = 40
	wideHeaderMin        = 4
	wideHeaderBonus      = 15
	extraWideHeaderMin   = 6
	extraWideHeaderBonus = 25
)

// Scorer rates how pin-table-like a candidate table is.
type Scorer struct {
	strong     []string
	moderate   []string
	electrical []string
	supply     map[string]bool
	ballRe     *regexp.Regexp

	// wideBonusCorrected orders the header-count checks widest first. The
	// historical order tests >=4 before >=6, so the larger bonus never
	// applies; the default keeps that order.
	wideBonusCorrected bool
}

// NewScorer builds a Scorer from a vocabulary's pin-header keyword lists.
func NewScorer(v *vocab.Vocabulary) *Scorer {
	supply := make(map[string]bool, len(v.SupplyPins))
	for _, p := range v.SupplyPins {
		supply[strings.ToUpper(p)] = true
	}
	return &Scorer{
		strong:     v.StrongPinHeaders,
		moderate:   v.ModeratePinHeaders,
		electrical: v.ElectricalHeaders,
		supply:     supply,
		ballRe:     regexp.MustCompile(`^[A-Z]\d+$`),
	}
}

// WithCorrectedWideBonus switches the header-count bonus to check the wider
// threshold first.
func (s *Scorer) WithCorrectedWideBonus(on bool) *Scorer {
	s.wideBonusCorrected = on
	return s
}

// Score rates a table. Tables under three rows score zero. Keyword matches
// are substring checks against lowercased header cells; every matching
// (header, keyword) pair counts.
func (s *Scorer) Score(t model.Table) int {
	if len(t.Rows) < minScoreRows {
		return 0
	}

	headers := make([]string, len(t.Rows[0]))
	for i, h := range t.Rows[0] {
		headers[i] = strings.ToLower(h)
	}

	score := 0
	for _, h := range headers {
		for _, kw := range s.strong {
			if strings.Contains(h, kw) {
				score += strongHeaderBonus
			}
		}
		for _, kw := range s.moderate {
			if strings.Contains(h, kw) {
				score += moderateHeaderBonus
			}
		}
	}

	score += s.pinLikeCount(t.Rows[1:]) * pinLikeBonus

	if s.electricalPairs(headers) >= electricalThreshold {
		score -= electricalPenalty
	}

	dataRows := len(t.Rows) - 1
	score += min(dataRows*dataRowBonus, dataRowBonusCap)

	score += s.wideHeaderScore(len(headers))
	return score
}

// pinLikeCount samples the first ten non-empty first-column cells and
// counts the ones shaped like pin designators: pure digits, a ball-grid
// coordinate, or a known supply mnemonic.
func (s *Scorer) pinLikeCount(rows [][]string) int {
	var sample []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if c := strings.TrimSpace(row[0]); c != "" {
			sample = append(sample, c)
		}
	}
	if len(sample) > pinSampleSize {
		sample = sample[:pinSampleSize]
	}

	n := 0
	for _, cell := range sample {
		switch {
		case isDigits(cell):
			n++
		case s.ballRe.MatchString(cell):
			n++
		case s.supply[strings.ToUpper(cell)]:
			n++
		}
	}
	return n
}

// electricalPairs counts (header, keyword) matches against the
// electrical-characteristics list. One header containing two keywords
// counts twice.
func (s *Scorer) electricalPairs(headers []string) int {
	n := 0
	for _, h := range headers {
		for _, kw := range s.electrical {
			if strings.Contains(h, kw) {
				n++
			}
		}
	}
	return n
}

func (s *Scorer) wideHeaderScore(n int) int {
	if s.wideBonusCorrected {
		if n >= extraWideHeaderMin {
			return extraWideHeaderBonus
		}
		if n >= wideHeaderMin {
			return wideHeaderBonus
		}
		return 0
	}
	if n >= wideHeaderMin {
		return wideHeaderBonus
	}
	if n >= extraWideHeaderMin {
		return extraWideHeaderBonus
	}
	return 0
}

// SelectBest returns the highest-scoring table; ties keep the earliest
// discovered one. When the best score is not positive, the sentinel
// header-only table is returned.
func (s *Scorer) SelectBest(tables []model.Table) model.Table {
	best := 0
	var bestTable model.Table
	found := false
	for _, t := range tables {
		if sc := s.Score(t); !found || sc > best {
			best, bestTable, found = sc, t, true
		}
	}
	if !found || best <= 0 {
		return Sentinel()
	}
	return bestTable
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
