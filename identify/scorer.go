package identify

import (
	"sort"
	"strings"

	"github.com/partlab/datasheet/model"
)

// Score bonuses for tokens appearing in prominent document positions.
const (
	titleBonus   = 5
	headingBonus = 3
)

// ScoreParts ranks the accepted tokens of a document's text bits. A token's
// score is its raw frequency across the whole pool, plus titleBonus when it
// appears verbatim in the title and headingBonus when it appears in the
// joined headings. Ties order by descending token text so equal scores stay
// deterministic.
func (c *Classifier) ScoreParts(bits model.TextBits) []string {
	freq := make(map[string]int)
	for _, tok := range c.Tokenize(bits.Pool()) {
		freq[tok]++
	}
	if len(freq) == 0 {
		return nil
	}

	type scoredToken struct {
		token string
		score int
	}
	heads := bits.JoinedHeadings()
	scored := make([]scoredToken, 0, len(freq))
	for tok, n := range freq {
		s := n
		if strings.Contains(bits.Title, tok) {
			s += titleBonus
		}
		if strings.Contains(heads, tok) {
			s += headingBonus
		}
		scored = append(scored, scoredToken{tok, s})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].token > scored[j].token
	})

	out := make([]string, len(scored))
	for i, st := range scored {
		out[i] = st.token
	}
	return out
}
