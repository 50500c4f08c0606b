package retrieve

import (
	"reflect"
	"strings"
	"testing"
)

func TestChunkNodes(t *testing.T) {
	nodes := []Node{
		{Type: NodeSection, Title: "A", Text: "short"},
		{Type: NodeSection, Title: "B", Text: ""},
		{Type: NodeTable, Title: "table", Text: "Pin\tName"},
	}

	got := ChunkNodes(nodes)
	// The empty node is skipped but keeps its slot, so the table chunk is
	// n2, not n1.
	want := []Chunk{
		{ID: "n0", Type: NodeSection, Title: "A", Text: "short"},
		{ID: "n2", Type: NodeTable, Title: "table", Text: "Pin\tName"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChunkNodes() = %#v, want %#v", got, want)
	}
}

func TestChunkNodesSplitsLargeNodes(t *testing.T) {
	nodes := []Node{
		{Type: NodeSection, Title: "big", Text: strings.Repeat("a", 2500)},
	}

	got := ChunkNodes(nodes)
	if len(got) != 3 {
		t.Fatalf("ChunkNodes() returned %d chunks, want 3", len(got))
	}
	wantIDs := []string{"n0_0", "n0_1", "n0_2"}
	wantLens := []int{1200, 1200, 100}
	for i, c := range got {
		if c.ID != wantIDs[i] {
			t.Errorf("chunk[%d].ID = %q, want %q", i, c.ID, wantIDs[i])
		}
		if len(c.Text) != wantLens[i] {
			t.Errorf("chunk[%d] length = %d, want %d", i, len(c.Text), wantLens[i])
		}
		if c.Title != "big" || c.Type != NodeSection {
			t.Errorf("chunk[%d] lost node identity: %+v", i, c)
		}
	}
}

func TestChunkNodesWholeLimit(t *testing.T) {
	under := ChunkNodes([]Node{{Type: NodeSection, Text: strings.Repeat("a", 1499)}})
	if len(under) != 1 || under[0].ID != "n0" {
		t.Errorf("1499-rune node = %d chunks (first %q), want intact n0", len(under), under[0].ID)
	}

	at := ChunkNodes([]Node{{Type: NodeSection, Text: strings.Repeat("a", 1500)}})
	if len(at) != 2 || at[0].ID != "n0_0" || at[1].ID != "n0_1" {
		t.Errorf("1500-rune node = %+v, want two slices", at)
	}
}

func TestChunkNodesCountsRunes(t *testing.T) {
	// Multibyte text must split on rune boundaries, not byte offsets.
	got := ChunkNodes([]Node{{Type: NodeSection, Text: strings.Repeat("é", 1500)}})
	if len(got) != 2 {
		t.Fatalf("ChunkNodes() returned %d chunks, want 2", len(got))
	}
	if n := len([]rune(got[0].Text)); n != 1200 {
		t.Errorf("first slice = %d runes, want 1200", n)
	}
	if n := len([]rune(got[1].Text)); n != 300 {
		t.Errorf("second slice = %d runes, want 300", n)
	}
}
