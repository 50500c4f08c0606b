package htmldoc

import "golang.org/x/net/html"

// Next returns the node after n in pre-order document order: first child,
// else next sibling, else the nearest ancestor's next sibling. Nil once the
// document ends.
func Next(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// nextNodeWithin is Next bounded to root's subtree: traversal never
// escapes root.
func nextNodeWithin(n, root *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil && n != root; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// Walker iterates the document's linear node order forward from a starting
// node, one node per call, giving up after a fixed number of steps. The
// explicit step counter guarantees termination on malformed trees; text
// nodes count as steps so bounds match the document's true node sequence.
type Walker struct {
	cur      *html.Node
	steps    int
	maxSteps int
}

// NewWalker returns a walker positioned at start. Next skips start itself
// and yields the nodes that follow it.
func NewWalker(start *html.Node, maxSteps int) *Walker {
	return &Walker{cur: start, maxSteps: maxSteps}
}

// Next advances one step and returns the next node in document order, or
// false once the document ends or the step budget is spent.
func (w *Walker) Next() (*html.Node, bool) {
	if w.cur == nil || w.steps >= w.maxSteps {
		return nil, false
	}
	w.cur = Next(w.cur)
	w.steps++
	if w.cur == nil {
		return nil, false
	}
	return w.cur, true
}

// Steps returns the number of steps taken so far.
func (w *Walker) Steps() int {
	return w.steps
}
