package retrieve

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/partlab/datasheet/htmldoc"
	"github.com/partlab/datasheet/model"
	"github.com/partlab/datasheet/pdfdoc"
)

// Node kinds.
const (
	NodeSection = "section"
	NodeTable   = "table"
)

// sectionParagraphs caps how many paragraphs one heading's section collects.
const sectionParagraphs = 10

// tableRowCap bounds how many leading rows represent a table.
const tableRowCap = 20

// minParagraphLen filters paginated paragraphs. Shorter ones are page
// furniture rather than guidance.
const minParagraphLen = 50

// Node is one unit of document structure: the prose under a heading or the
// leading rows of a table.
type Node struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// HTMLGraph decomposes a markup document into nodes: one section node per
// heading holding the paragraphs that follow it, then one table node per
// table holding its leading rows tab-joined.
//
// A section's walk runs forward from its heading until the next heading of
// any level, the paragraph cap, or the end of the document, whichever comes
// first. Sections with no paragraph text produce no node.
func (r *Retriever) HTMLGraph(doc *htmldoc.Document) []Node {
	var nodes []Node

	for _, h := range doc.FindAll("h1", "h2", "h3", "h4", "h5", "h6") {
		var block []string
		for n := htmldoc.Next(h); n != nil && len(block) < sectionParagraphs; n = htmldoc.Next(n) {
			if n.Type != html.ElementNode {
				continue
			}
			if isHeading(n.Data) {
				break
			}
			if n.Data == "p" {
				if t := htmldoc.Text(n); t != "" {
					block = append(block, t)
				}
			}
		}
		if text := strings.Join(block, "\n"); text != "" {
			nodes = append(nodes, Node{Type: NodeSection, Title: htmldoc.Text(h), Text: text})
		}
	}

	for _, t := range doc.Tables() {
		rows := t.Rows
		if len(rows) > tableRowCap {
			rows = rows[:tableRowCap]
		}
		var lines []string
		for _, cells := range rows {
			if len(cells) > 0 {
				lines = append(lines, strings.Join(cells, "\t"))
			}
		}
		if len(lines) > 0 {
			nodes = append(nodes, Node{Type: NodeTable, Title: NodeTable, Text: strings.Join(lines, "\n")})
		}
	}

	return nodes
}

// isHeading reports whether an element tag is h1 through h6.
func isHeading(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// PDFGraph decomposes a paginated document into nodes: one section node per
// substantial paragraph and one table node per detected table, titled by
// page position. A page whose text cannot be read is logged and skipped
// whole, tables included; a failure in table detection alone skips only that
// page's tables.
func (r *Retriever) PDFGraph(doc *pdfdoc.Document) []Node {
	doc.WithLogger(r.log)
	n := doc.NumPages()
	if r.maxPages > 0 && n > r.maxPages {
		n = r.maxPages
	}

	var nodes []Node
	for page := 1; page <= n; page++ {
		text, err := doc.PageText(page)
		if err != nil {
			r.log.Warn("skipping unreadable page", zap.Int("page", page), zap.Error(err))
			continue
		}
		nodes = append(nodes, pageSections(text, page)...)

		tables, err := doc.PageTables(page)
		if err != nil {
			r.log.Warn("skipping page tables", zap.Int("page", page), zap.Error(err))
			continue
		}
		nodes = append(nodes, pageTableNodes(tables, page)...)
	}
	return nodes
}

// pageSections splits page text on blank lines and keeps the substantial
// paragraphs. The section index counts every non-blank paragraph, so a kept
// section retains its position even when short neighbors are dropped.
func pageSections(text string, page int) []Node {
	var nodes []Node
	idx := 0
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		idx++
		if utf8.RuneCountInString(para) <= minParagraphLen {
			continue
		}
		nodes = append(nodes, Node{
			Type:  NodeSection,
			Title: fmt.Sprintf("Page %d Section %d", page, idx),
			Text:  para,
		})
	}
	return nodes
}

// pageTableNodes renders detected tables as nodes, rows tab-joined. The
// table index counts every detected table even when one is too short to
// keep.
func pageTableNodes(tables []model.Table, page int) []Node {
	var nodes []Node
	for i, t := range tables {
		if len(t.Rows) < 2 {
			continue
		}
		var lines []string
		for _, cells := range t.Rows {
			if rowHasText(cells) {
				lines = append(lines, strings.Join(cells, "\t"))
			}
		}
		if len(lines) > 0 {
			nodes = append(nodes, Node{
				Type:  NodeTable,
				Title: fmt.Sprintf("Page %d Table %d", page, i+1),
				Text:  strings.Join(lines, "\n"),
			})
		}
	}
	return nodes
}

// rowHasText reports whether any cell in the row is non-blank.
func rowHasText(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return true
		}
	}
	return false
}
