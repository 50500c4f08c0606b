// Package htmldoc provides markup document parsing for extraction.
//
// A Document wraps the parsed node tree and exposes the views the extractors
// consume: positional text bits, table data with surrounding context, and
// ordered element lookup. Traversal helpers preserve document order
// throughout, which the candidate extractors depend on.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/partlab/datasheet/model"
)

// Document is a parsed markup document.
type Document struct {
	root *html.Node
}

// Open opens and parses a markup file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses markup from an io.Reader. The byte stream is decoded
// with charset sniffing (meta tags, BOM) and malformed bytes are tolerated.
func OpenReader(r io.Reader) (*Document, error) {
	decoded, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	root, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &Document{root: root}, nil
}

// Root returns the document's root node.
func (d *Document) Root() *html.Node {
	return d.root
}

// FindAll returns every element with one of the given tag names, in document
// order.
func (d *Document) FindAll(tags ...string) []*html.Node {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	var out []*html.Node
	for n := d.root; n != nil; n = Next(n) {
		if n.Type == html.ElementNode && want[n.Data] {
			out = append(out, n)
		}
	}
	return out
}

// maxBodyParagraphs caps how many paragraphs feed the body sample.
const maxBodyParagraphs = 50

// Bits extracts the document's positional text: the title element's direct
// text, headings grouped h1 through h4, meta content (or name) attributes,
// and the first paragraphs as the body sample.
func (d *Document) Bits() model.TextBits {
	bits := model.TextBits{}

	if titles := d.FindAll("title"); len(titles) > 0 {
		bits.Title = strings.TrimSpace(titleString(titles[0]))
	}

	for _, tag := range []string{"h1", "h2", "h3", "h4"} {
		for _, h := range d.FindAll(tag) {
			if t := Text(h); t != "" {
				bits.Headings = append(bits.Headings, t)
			}
		}
	}

	for _, m := range d.FindAll("meta") {
		v := attrVal(m, "content")
		if v == "" {
			v = attrVal(m, "name")
		}
		if v != "" {
			bits.Meta = append(bits.Meta, strings.TrimSpace(v))
		}
	}

	var body []string
	for i, p := range d.FindAll("p") {
		if i >= maxBodyParagraphs {
			break
		}
		body = append(body, Text(p))
	}
	bits.Body = strings.Join(body, " ")

	return bits
}

// Tables returns every table in document order with the context the
// extractors need: all rows' cell texts, the explicit header row if a header
// section declares one, the caption, and the nearest preceding heading.
func (d *Document) Tables() []TableData {
	var tables []TableData
	lastHeading := ""
	for n := d.root; n != nil; n = Next(n) {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.Data {
		case "h1", "h2", "h3", "h4":
			lastHeading = Text(n)
		case "table":
			tables = append(tables, d.parseTable(n, lastHeading))
		}
	}
	return tables
}

// parseTable collects a table's rows, explicit header row, and caption.
func (d *Document) parseTable(table *html.Node, prevHeading string) TableData {
	data := TableData{PrevHeading: prevHeading}

	for n := table; n != nil; n = nextNodeWithin(n, table) {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.Data {
		case "tr":
			data.Rows = append(data.Rows, cellTexts(n))
		case "caption":
			if data.Caption == "" {
				data.Caption = Text(n)
			}
		case "thead":
			if data.HeadRow == nil {
				if tr := firstDescendant(n, "tr"); tr != nil {
					if cells := cellTexts(tr); len(cells) > 0 {
						data.HeadRow = cells
					}
				}
			}
		}
	}
	return data
}

// cellTexts returns the texts of a row's th and td cells.
func cellTexts(tr *html.Node) []string {
	var cells []string
	for n := tr; n != nil; n = nextNodeWithin(n, tr) {
		if n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th") {
			cells = append(cells, Text(n))
		}
	}
	return cells
}

// firstDescendant returns the first descendant element with the given tag.
func firstDescendant(root *html.Node, tag string) *html.Node {
	for n := root; n != nil; n = nextNodeWithin(n, root) {
		if n != root && n.Type == html.ElementNode && n.Data == tag {
			return n
		}
	}
	return nil
}

// attrVal returns the value of the first attribute with the given key.
func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Text returns the node's subtree text: every descendant text node stripped
// of surrounding whitespace, empties dropped, joined with single spaces.
func Text(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			if t := strings.TrimSpace(c.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

// titleString mirrors the single-string rule for title elements: a node with
// exactly one child yields that child's text (recursing through a lone
// element child); anything else yields "".
func titleString(n *html.Node) string {
	first := n.FirstChild
	if first == nil || first.NextSibling != nil {
		return ""
	}
	if first.Type == html.TextNode {
		return first.Data
	}
	if first.Type == html.ElementNode {
		return titleString(first)
	}
	return ""
}
