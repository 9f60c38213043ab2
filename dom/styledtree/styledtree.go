package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"strings"

	"github.com/npillmayer/cascade/dom/style/compact"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoDocument is thrown if a styled tree is requested for an HTML
// document without a document element.
var ErrNoDocument = errors.New("no document element to style")

// Tree is a styled document tree: an arena of styled nodes mirroring
// the document structure, plus the compact property cache as a
// sidecar. Every node in the tree is fully styled at all times.
//
// Reads may run concurrently against a stable tree; mutation goes
// through the gateway methods and must not overlap with reads.
type Tree struct {
	arena *tree.Tree[*StyNode]
	cache *compact.Cache
	om    cssom.RuleSource
}

func newTree(om cssom.RuleSource) *Tree {
	if om == nil {
		om = cssom.NewCSSOM() // user-agent styling only
	}
	return &Tree{
		arena: tree.NewTree[*StyNode](),
		cache: compact.NewCache(0),
		om:    om,
	}
}

// BuildTree builds a fully styled tree from an HTML document, matching
// the rules collected in om against every element. Elements and
// non-whitespace text nodes become styled nodes; comments, doctypes
// and inter-element whitespace do not. om may be nil for a tree styled
// by user-agent defaults alone.
func BuildTree(doc *html.Node, om cssom.RuleSource) (*Tree, error) {
	root := documentElement(doc)
	if root == nil {
		return nil, ErrNoDocument
	}
	t := newTree(om)
	t.arena.Reserve(countNodes(root))
	t.appendSubtree(tree.NoNode, root)
	tracer().Infof("styled tree has %d nodes", t.arena.NodeCount())
	return t, nil
}

// NewTree creates a styled tree with a single root element, the entry
// point for programmatic construction. om may be nil.
func NewTree(root atom.Atom, om cssom.RuleSource) *Tree {
	t := newTree(om)
	h := &html.Node{Type: html.ElementNode, DataAtom: root, Data: root.String()}
	t.appendNode(tree.NoNode, h)
	return t
}

// AppendElement allocates a styled element node as the last child of
// parent, styles it and returns its ID. Attributes take part in
// selector matching; a style attribute enters the cascade with inline
// specificity. Returns NoNode for an unknown parent.
func (t *Tree) AppendElement(parent tree.NodeID, a atom.Atom, attrs ...html.Attribute) tree.NodeID {
	p := t.styNode(parent)
	if p == nil {
		tracer().Errorf("cannot append element below unknown node %v", parent)
		return tree.NoNode
	}
	h := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
	p.htmlNode.AppendChild(h)
	return t.appendNode(parent, h)
}

// AppendText allocates a styled text node as the last child of parent.
// Text nodes have no styling of their own; they inherit. Returns
// NoNode for an unknown parent.
func (t *Tree) AppendText(parent tree.NodeID, text string) tree.NodeID {
	p := t.styNode(parent)
	if p == nil {
		tracer().Errorf("cannot append text below unknown node %v", parent)
		return tree.NoNode
	}
	h := &html.Node{Type: html.TextNode, Data: text}
	p.htmlNode.AppendChild(h)
	return t.appendNode(parent, h)
}

// appendNode allocates and fully styles one node. The parent is
// already resolved at this point; resolution is strictly top-down.
func (t *Tree) appendNode(parent tree.NodeID, h *html.Node) tree.NodeID {
	sn := &StyNode{htmlNode: h, owner: t}
	id := t.arena.NewNode(sn)
	if parent != tree.NoNode {
		t.arena.AddChild(parent, id)
	}
	t.styleNode(id)
	t.resolveNode(id)
	return id
}

// appendSubtree mirrors an HTML subtree into the arena.
func (t *Tree) appendSubtree(parent tree.NodeID, h *html.Node) {
	id := t.appendNode(parent, h)
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			t.appendSubtree(id, ch)
		case html.TextNode:
			if strings.TrimSpace(ch.Data) != "" {
				t.appendNode(id, ch)
			}
		}
	}
}

// documentElement finds the root element to style: the document
// element of a parsed document, or the argument itself if it already
// is an element.
func documentElement(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == html.ElementNode {
		return doc
	}
	if doc.Type == html.DocumentNode {
		for ch := doc.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode {
				return ch
			}
		}
	}
	return nil
}

// countNodes sizes the arena reservation for an HTML subtree.
func countNodes(h *html.Node) int {
	n := 1
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			n += countNodes(ch)
		case html.TextNode:
			if strings.TrimSpace(ch.Data) != "" {
				n++
			}
		}
	}
	return n
}

// ---------------------------------------------------------------------------

// Root returns the ID of the tree's root node.
func (t *Tree) Root() tree.NodeID {
	if t.arena.NodeCount() == 0 {
		return tree.NoNode
	}
	return 0
}

// Node returns the generic tree handle for a node ID, nil for unknown
// IDs. Handles are the entry point for tree walks:
//
//	future := tree.NewWalker(t.Node(t.Root())).AllDescendents().Promise()
func (t *Tree) Node(id tree.NodeID) *tree.Node[*StyNode] {
	return t.arena.Node(id)
}

// NodeCount returns the number of styled nodes in the tree.
func (t *Tree) NodeCount() int {
	return t.arena.NodeCount()
}

// Cache exposes the compact property cache of the tree. Clients use it
// for bulk access to the packed flag words and property blocks; single
// reads are better served by Get.
func (t *Tree) Cache() *compact.Cache {
	return t.cache
}

// styNode returns the payload for a node ID, nil for unknown IDs.
func (t *Tree) styNode(id tree.NodeID) *StyNode {
	return Node(t.arena.Node(id))
}
