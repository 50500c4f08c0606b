package htmldoc

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestWalker_DocumentOrder(t *testing.T) {
	src := `<html><body><h2>start</h2><p>one</p><div><span>two</span></div><p>three</p></body></html>`
	doc, err := OpenReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	heads := doc.FindAll("h2")
	if len(heads) != 1 {
		t.Fatalf("found %d h2 elements, want 1", len(heads))
	}

	var tags []string
	w := NewWalker(heads[0], 100)
	for {
		n, ok := w.Next()
		if !ok {
			break
		}
		if n.Type == html.ElementNode {
			tags = append(tags, n.Data)
		}
	}

	want := []string{"p", "div", "span", "p"}
	if len(tags) != len(want) {
		t.Fatalf("walked elements = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("walked[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestWalker_StepBound(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body><h2>start</h2>")
	for i := 0; i < 100; i++ {
		sb.WriteString("<p>x</p>")
	}
	sb.WriteString("</body></html>")

	doc, err := OpenReader(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	start := doc.FindAll("h2")[0]

	w := NewWalker(start, 10)
	visited := 0
	for {
		if _, ok := w.Next(); !ok {
			break
		}
		visited++
	}

	if visited != 10 {
		t.Errorf("visited %d nodes, want exactly 10", visited)
	}
	if w.Steps() != 10 {
		t.Errorf("Steps() = %d, want 10", w.Steps())
	}
}

func TestWalker_EndOfDocument(t *testing.T) {
	src := `<html><body><h2>start</h2><p>only</p></body></html>`
	doc, err := OpenReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	start := doc.FindAll("h2")[0]

	w := NewWalker(start, 50)
	visited := 0
	for {
		if _, ok := w.Next(); !ok {
			break
		}
		visited++
	}

	if visited >= 50 {
		t.Errorf("walker should stop at document end, visited %d", visited)
	}
	// Exhausted walker stays exhausted.
	if _, ok := w.Next(); ok {
		t.Error("Next() after exhaustion should return false")
	}
}

func TestWalker_TextNodesCountAsSteps(t *testing.T) {
	src := `<html><body><h2>start</h2>text between<p>elem</p></body></html>`
	doc, err := OpenReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	start := doc.FindAll("h2")[0]

	w := NewWalker(start, 100)
	sawText := false
	for {
		n, ok := w.Next()
		if !ok {
			break
		}
		if n.Type == html.TextNode && strings.Contains(n.Data, "text between") {
			sawText = true
		}
	}
	if !sawText {
		t.Error("walker should yield text nodes (callers skip them but they consume steps)")
	}
}

func TestNext_PreOrder(t *testing.T) {
	src := `<html><body><div><p>one</p></div><h2>after</h2></body></html>`
	doc, err := OpenReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	div := doc.FindAll("div")[0]

	// Child before sibling, then up to the ancestor's sibling.
	var tags []string
	for n := Next(div); n != nil; n = Next(n) {
		if n.Type == html.ElementNode {
			tags = append(tags, n.Data)
		}
	}
	want := []string{"p", "h2"}
	if len(tags) != len(want) {
		t.Fatalf("Next() chain = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("chain[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestNext_EndOfDocument(t *testing.T) {
	src := `<html><body><p>x</p></body></html>`
	doc, err := OpenReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	text := doc.FindAll("p")[0].FirstChild

	if n := Next(text); n != nil {
		t.Errorf("Next(last node) = %v, want nil", n)
	}
}
