package identify

import (
	"golang.org/x/net/html"

	"github.com/partlab/datasheet/htmldoc"
)

// orderingWalkSteps bounds the forward walk from an ordering heading. The
// limit keeps traversal finite on malformed trees while still covering the
// short table or paragraph run that follows such a heading.
const orderingWalkSteps = 50

// orderingSectionParts harvests part candidates from the sections that
// follow ordering-information headings. Every node within the step budget
// contributes its subtree text; the walk does not stop at the next heading.
func (e *Extractor) orderingSectionParts(doc *htmldoc.Document) []string {
	h := newPartHarvest(e.cls)
	for _, heading := range doc.FindAll("h1", "h2", "h3", "h4") {
		if !e.cls.isOrderingText(htmldoc.Text(heading)) {
			continue
		}
		w := htmldoc.NewWalker(heading, orderingWalkSteps)
		for n, ok := w.Next(); ok; n, ok = w.Next() {
			if n.Type != html.ElementNode {
				continue
			}
			h.addTokens(htmldoc.Text(n))
		}
	}
	return h.parts
}
