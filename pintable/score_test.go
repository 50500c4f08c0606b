package pintable

import (
	"reflect"
	"testing"

	"github.com/partlab/datasheet/model"
	"github.com/partlab/datasheet/vocab"
)

func makeTable(rows ...[]string) model.Table {
	return model.Table{Rows: rows}
}

func testScorer() *Scorer {
	return NewScorer(vocab.Default())
}

func TestScoreTypicalPinTable(t *testing.T) {
	s := testScorer()

	tbl := makeTable(
		[]string{"Pin", "Name", "Type"},
		[]string{"1", "VDD", "Power"},
		[]string{"2", "GND", "Power"},
	)
	// Headers: pin -> +20, name -> +10, type -> +10. First column: two
	// digit cells -> +16. Data rows: +4. Three headers, no width bonus.
	if got := s.Score(tbl); got != 60 {
		t.Errorf("Score() = %d, want 60", got)
	}
}

func TestScoreUnderThreeRows(t *testing.T) {
	s := testScorer()

	tbl := makeTable(
		[]string{"Pin", "Ball", "Terminal"},
		[]string{"1", "A1", "VDD"},
	)
	if got := s.Score(tbl); got != 0 {
		t.Errorf("Score() = %d, want 0 for a two-row table", got)
	}
}

func TestScoreStrongHeaderMonotonicity(t *testing.T) {
	s := testScorer()

	base := makeTable(
		[]string{"Col", "Notes", "More"},
		[]string{"x", "y", "z"},
		[]string{"x", "y", "z"},
	)
	withStrong := makeTable(
		[]string{"Pin", "Notes", "More"},
		[]string{"x", "y", "z"},
		[]string{"x", "y", "z"},
	)
	if s.Score(withStrong) <= s.Score(base) {
		t.Errorf("strong header did not increase score: %d vs %d",
			s.Score(withStrong), s.Score(base))
	}
	if diff := s.Score(withStrong) - s.Score(base); diff != strongHeaderBonus {
		t.Errorf("strong header bonus = %d, want %d", diff, strongHeaderBonus)
	}
}

func TestScoreElectricalPenaltyThreshold(t *testing.T) {
	s := testScorer()

	rows := [][]string{
		{"1", "a", "b"},
		{"2", "c", "d"},
	}
	one := makeTable(append([][]string{{"Pin", "Min", "Notes"}}, rows...)...)
	two := makeTable(append([][]string{{"Pin", "Min", "Max"}}, rows...)...)

	// "Notes" and "Max" carry no other keyword weight, so the difference
	// is exactly one penalty, applied once at the two-match threshold.
	if diff := s.Score(one) - s.Score(two); diff != electricalPenalty {
		t.Errorf("penalty difference = %d, want %d", diff, electricalPenalty)
	}
}

func TestScoreElectricalPenaltySingleHeaderPair(t *testing.T) {
	s := testScorer()

	rows := [][]string{
		{"1", "a", "b"},
		{"2", "c", "d"},
	}
	// One header containing two electrical keywords crosses the threshold
	// on its own.
	single := makeTable(append([][]string{{"Pin", "Min/Max", "Zzz"}}, rows...)...)
	plain := makeTable(append([][]string{{"Pin", "Minimum", "Zzz"}}, rows...)...)
	if diff := s.Score(plain) - s.Score(single); diff != electricalPenalty {
		t.Errorf("penalty difference = %d, want %d", diff, electricalPenalty)
	}
}

func TestScorePinLikeFirstColumn(t *testing.T) {
	s := testScorer()

	tbl := makeTable(
		[]string{"Col", "Other", "More"},
		[]string{"1", "x", "x"},
		[]string{"B7", "x", "x"},
		[]string{"vdd", "x", "x"},
		[]string{"NC", "x", "x"},
		[]string{"label", "x", "x"},
	)
	blank := makeTable(
		[]string{"Col", "Other", "More"},
		[]string{"q", "x", "x"},
		[]string{"w", "x", "x"},
		[]string{"e", "x", "x"},
		[]string{"r", "x", "x"},
		[]string{"t", "x", "x"},
	)
	// Digit, ball coordinate, and supply mnemonics (case-insensitive)
	// count; "label" does not.
	if diff := s.Score(tbl) - s.Score(blank); diff != 4*pinLikeBonus {
		t.Errorf("pin-like difference = %d, want %d", diff, 4*pinLikeBonus)
	}
}

func TestScorePinLikeSampleSkipsEmptyCells(t *testing.T) {
	s := testScorer()

	rows := [][]string{{"Col", "Other", "More"}}
	for i := 0; i < 3; i++ {
		rows = append(rows, []string{"", "x", "x"})
	}
	for i := 0; i < 12; i++ {
		rows = append(rows, []string{"7", "x", "x"})
	}
	tbl := model.Table{Rows: rows}

	empty := [][]string{{"Col", "Other", "More"}}
	for i := 0; i < 15; i++ {
		empty = append(empty, []string{"", "x", "x"})
	}
	blank := model.Table{Rows: empty}

	// Empty first-column cells are filtered before the ten-cell sample is
	// taken, so all ten sampled cells are digits.
	if diff := s.Score(tbl) - s.Score(blank); diff != pinSampleSize*pinLikeBonus {
		t.Errorf("sampled pin-like difference = %d, want %d", diff, pinSampleSize*pinLikeBonus)
	}
}

func TestScoreDataRowBonusCap(t *testing.T) {
	s := testScorer()

	rows := [][]string{{"AAA", "BBB", "CCC"}}
	for i := 0; i < 30; i++ {
		rows = append(rows, []string{"qq", "ww", "ee"})
	}
	tbl := model.Table{Rows: rows}
	// 30 data rows would earn 60; the bonus caps at 40.
	if got := s.Score(tbl); got != dataRowBonusCap {
		t.Errorf("Score() = %d, want %d", got, dataRowBonusCap)
	}
}

func TestScoreWideHeaderBonus(t *testing.T) {
	wide := makeTable(
		[]string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF"},
		[]string{"q", "w", "e", "r", "t", "y"},
		[]string{"q", "w", "e", "r", "t", "y"},
	)
	narrow := makeTable(
		[]string{"AAA", "BBB", "CCC"},
		[]string{"q", "w", "e"},
		[]string{"q", "w", "e"},
	)

	s := testScorer()
	if diff := s.Score(wide) - s.Score(narrow); diff != wideHeaderBonus {
		t.Errorf("six headers earn %d over three, want %d", diff, wideHeaderBonus)
	}

	corrected := testScorer().WithCorrectedWideBonus(true)
	if diff := corrected.Score(wide) - s.Score(wide); diff != extraWideHeaderBonus-wideHeaderBonus {
		t.Errorf("corrected order changes six-header score by %d, want %d",
			diff, extraWideHeaderBonus-wideHeaderBonus)
	}
	if corrected.Score(narrow) != s.Score(narrow) {
		t.Errorf("corrected order changed a three-header score")
	}
}

func TestSelectBestPrefersPinTable(t *testing.T) {
	s := testScorer()

	electrical := makeTable(
		[]string{"Parameter", "Min", "Max", "Units"},
		[]string{"VIH", "2.0", "5.5", "V"},
		[]string{"VIL", "0", "0.8", "V"},
	)
	pins := makeTable(
		[]string{"Pin", "Name", "Type"},
		[]string{"1", "VDD", "Power"},
		[]string{"2", "GND", "Power"},
	)
	got := s.SelectBest([]model.Table{electrical, pins})
	if !reflect.DeepEqual(got.Rows, pins.Rows) {
		t.Errorf("SelectBest() chose %v, want the pin table", got.Rows[0])
	}
}

func TestSelectBestTieKeepsEarliest(t *testing.T) {
	s := testScorer()

	first := makeTable(
		[]string{"Pin", "Name", "Type"},
		[]string{"FIRST", "VDD", "Power"},
		[]string{"2", "GND", "Power"},
	)
	second := makeTable(
		[]string{"Pin", "Name", "Type"},
		[]string{"SECOND", "VDD", "Power"},
		[]string{"2", "GND", "Power"},
	)
	got := s.SelectBest([]model.Table{first, second})
	if got.Rows[1][0] != "FIRST" {
		t.Errorf("SelectBest() tie chose %q, want the earliest table", got.Rows[1][0])
	}
}

func TestSelectBestSentinel(t *testing.T) {
	s := testScorer()

	if got := s.SelectBest(nil); !reflect.DeepEqual(got, Sentinel()) {
		t.Errorf("SelectBest(nil) = %v, want sentinel", got.Rows)
	}

	negative := makeTable(
		[]string{"Min", "Max", "Units"},
		[]string{"u", "v", "w"},
		[]string{"u", "v", "w"},
	)
	if got := s.SelectBest([]model.Table{negative}); !reflect.DeepEqual(got, Sentinel()) {
		t.Errorf("SelectBest(negative) = %v, want sentinel", got.Rows)
	}
}
