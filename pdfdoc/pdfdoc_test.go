package pdfdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

// testRow builds a positional text row with one run per cell, spaced wider
// than cellGap.
func testRow(cells ...string) *pdf.Row {
	var content pdf.TextHorizontal
	x := 0.0
	for _, c := range cells {
		w := float64(len(c)) * 5
		content = append(content, pdf.Text{S: c, X: x, W: w})
		x += w + 20
	}
	return &pdf.Row{Content: content}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("no-such-file.pdf")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestOpenNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.pdf")
	if err := os.WriteFile(path, []byte("just some text, no trailer"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected an error for a non-PDF file")
	}
}

func TestRowCells(t *testing.T) {
	tests := []struct {
		name string
		row  *pdf.Row
		want []string
	}{
		{
			name: "nil row",
			row:  nil,
			want: nil,
		},
		{
			name: "empty row",
			row:  &pdf.Row{},
			want: nil,
		},
		{
			name: "single run",
			row:  &pdf.Row{Content: pdf.TextHorizontal{{S: "VDD", X: 10, W: 15}}},
			want: []string{"VDD"},
		},
		{
			name: "adjacent runs join without space",
			row: &pdf.Row{Content: pdf.TextHorizontal{
				{S: "VD", X: 10, W: 10},
				{S: "D", X: 20.5, W: 5},
			}},
			want: []string{"VDD"},
		},
		{
			name: "word gap inserts space",
			row: &pdf.Row{Content: pdf.TextHorizontal{
				{S: "Supply", X: 10, W: 30},
				{S: "voltage", X: 44, W: 35},
			}},
			want: []string{"Supply voltage"},
		},
		{
			name: "cell gap splits cells",
			row: &pdf.Row{Content: pdf.TextHorizontal{
				{S: "1", X: 10, W: 5},
				{S: "VDD", X: 60, W: 15},
				{S: "Power", X: 120, W: 25},
			}},
			want: []string{"1", "VDD", "Power"},
		},
		{
			name: "whitespace-only run dropped",
			row: &pdf.Row{Content: pdf.TextHorizontal{
				{S: "  ", X: 10, W: 5},
				{S: "PA0", X: 60, W: 15},
			}},
			want: []string{"PA0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rowCells(tt.row)
			if len(got) != len(tt.want) {
				t.Fatalf("rowCells() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("cell %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTablesFromRows(t *testing.T) {
	rows := pdf.Rows{
		testRow("Pin", "Name", "Type"),
		testRow("1", "VDD", "Power"),
		testRow("2", "PA0", "I/O"),
		testRow("Figure 3: Pinout"),
		testRow("A", "B"),
		testRow("C", "D"),
	}

	tables := tablesFromRows(rows, 4)
	if len(tables) != 1 {
		t.Fatalf("tablesFromRows() found %d tables, want 1", len(tables))
	}
	got := tables[0]
	if got.Page != 4 {
		t.Errorf("Page = %d, want 4", got.Page)
	}
	if len(got.Rows) != 3 {
		t.Fatalf("table has %d rows, want 3", len(got.Rows))
	}
	if got.Rows[1][1] != "VDD" {
		t.Errorf("Rows[1][1] = %q, want %q", got.Rows[1][1], "VDD")
	}
}

func TestTablesFromRowsTrailingBlock(t *testing.T) {
	rows := pdf.Rows{
		testRow("Pin", "Name"),
		testRow("1", "VDD"),
		testRow("2", "VSS"),
	}
	tables := tablesFromRows(rows, 1)
	if len(tables) != 1 {
		t.Fatalf("tablesFromRows() found %d tables, want 1", len(tables))
	}
}

func TestClipTitle(t *testing.T) {
	long := strings.Repeat("ab", 150)
	got := clipTitle(long)
	if len([]rune(got)) != titleClip {
		t.Errorf("clipTitle() kept %d runes, want %d", len([]rune(got)), titleClip)
	}

	if got := clipTitle("  XYZ1234 datasheet  "); got != "XYZ1234 datasheet" {
		t.Errorf("clipTitle() = %q, want %q", got, "XYZ1234 datasheet")
	}
	if got := clipTitle(""); got != "" {
		t.Errorf("clipTitle(empty) = %q, want empty", got)
	}
}

func TestHeadingLines(t *testing.T) {
	text := strings.Join([]string{
		"XYZ1234 Mixed-Signal Controller",
		"",
		"  Features  ",
		strings.Repeat("x", 130),
		"Ordering Information",
	}, "\n")

	got := headingLines(text)
	want := []string{"XYZ1234 Mixed-Signal Controller", "Features", "Ordering Information"}
	if len(got) != len(want) {
		t.Fatalf("headingLines() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHeadingLinesCap(t *testing.T) {
	lines := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		lines = append(lines, "heading line")
	}
	got := headingLines(strings.Join(lines, "\n"))
	if len(got) != headingLinesPerPage {
		t.Errorf("headingLines() kept %d lines, want %d", len(got), headingLinesPerPage)
	}
}

func TestCollapseSpace(t *testing.T) {
	if got := collapseSpace("  a \t b\n c  "); got != "a b c" {
		t.Errorf("collapseSpace() = %q, want %q", got, "a b c")
	}
	if got := collapseSpace("   "); got != "" {
		t.Errorf("collapseSpace(blank) = %q, want empty", got)
	}
}
