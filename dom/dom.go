package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/cascade/dom/w3cdom"
	"github.com/npillmayer/cascade/tree"
	"golang.org/x/net/html"
)

// ErrNotAStyledNode flags an operation on a node which is not part of a
// styled document.
var ErrNotAStyledNode = errors.New("Not a styled node")

// A W3CNode is a read-only view onto a node of a styled document,
// loosely following the W3C DOM API. Styling a document once and
// navigating it through W3CNodes is safe for concurrent readers; style
// mutation goes through the underlying styled tree (see method Styled).
type W3CNode struct {
	styled *styledtree.Tree
	id     tree.NodeID
}

var _ w3cdom.Node = &W3CNode{}

// FromHTML reads an HTML document, extracts the style sheets embedded
// in its <style> elements and returns the root of the styled document.
func FromHTML(r io.Reader) (*W3CNode, error) {
	htmldoc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromHTMLParseTree(htmldoc, nil)
}

// FromHTMLParseTree returns a styled document from the root node of an
// HTML parse tree. Styles from embedded <style> elements are appended
// to om, which may be nil if the embedded styles are all there is.
func FromHTMLParseTree(h *html.Node, om *cssom.CSSOM) (*W3CNode, error) {
	if h == nil {
		return nil, errors.New("Nothing to build a DOM from")
	}
	if om == nil {
		om = cssom.NewCSSOM()
	}
	for _, sheet := range douceuradapter.ExtractStyleElements(h) {
		if err := om.AddStylesheet(sheet, cssom.Author); err != nil {
			return nil, err
		}
	}
	styled, err := styledtree.BuildTree(h, om)
	if err != nil {
		return nil, err
	}
	return &W3CNode{styled: styled, id: styled.Root()}, nil
}

// FromStyledTree wraps the root of an already styled tree.
func FromStyledTree(t *styledtree.Tree) *W3CNode {
	if t == nil || t.Root() == tree.NoNode {
		return nil
	}
	return &W3CNode{styled: t, id: t.Root()}
}

// NodeFromTreeNode wraps a node of the underlying styled tree, e.g. one
// found by a tree walk, in its document's W3C view.
func NodeFromTreeNode(tn *tree.Node[*styledtree.StyNode]) (*W3CNode, error) {
	sn := styledtree.Node(tn)
	if sn == nil || sn.Owner() == nil {
		return nil, ErrNotAStyledNode
	}
	return &W3CNode{styled: sn.Owner(), id: tn.ID()}, nil
}

// Styled returns the underlying styled tree. All style mutation, like
// overrides, state flags and inline styling, goes through it.
func (n *W3CNode) Styled() *styledtree.Tree {
	if n == nil {
		return nil
	}
	return n.styled
}

// ID returns the node's identifier in the underlying styled tree.
func (n *W3CNode) ID() tree.NodeID {
	if n == nil {
		return tree.NoNode
	}
	return n.id
}

// TreeNode returns the node's handle in the underlying tree arena,
// ready to start a tree walk from.
func (n *W3CNode) TreeNode() *tree.Node[*styledtree.StyNode] {
	if n == nil {
		return nil
	}
	return n.styled.Node(n.id)
}

// HTMLNode returns the HTML parse tree node this DOM node is styling.
func (n *W3CNode) HTMLNode() *html.Node {
	sn := styledtree.Node(n.TreeNode())
	if sn == nil {
		return nil
	}
	return sn.HTMLNode()
}

func (n *W3CNode) String() string {
	if n == nil {
		return "<none>"
	}
	return "<" + n.NodeName() + ">"
}

// --- W3C DOM interface -----------------------------------------------

// NodeType returns the type of the underlying HTML node.
func (n *W3CNode) NodeType() html.NodeType {
	h := n.HTMLNode()
	if h == nil {
		return html.ErrorNode
	}
	return h.Type
}

// NodeName reads
//
//	Node.nodeName : https://developer.mozilla.org/en-US/docs/Web/API/Node/nodeName
func (n *W3CNode) NodeName() string {
	h := n.HTMLNode()
	if h == nil {
		return ""
	}
	switch h.Type {
	case html.ElementNode:
		return h.Data
	case html.TextNode:
		return "#text"
	}
	return "<node>"
}

// NodeValue returns the text of a text node, otherwise the empty string.
func (n *W3CNode) NodeValue() string {
	h := n.HTMLNode()
	if h != nil && h.Type == html.TextNode {
		return h.Data
	}
	return ""
}

// HasAttributes returns true if the node carries HTML attributes.
func (n *W3CNode) HasAttributes() bool {
	h := n.HTMLNode()
	return h != nil && len(h.Attr) > 0
}

// ParentNode returns the parent node, or nil for the document root.
func (n *W3CNode) ParentNode() w3cdom.Node {
	tn := n.TreeNode()
	if tn == nil {
		return nil
	}
	p := tn.Parent()
	if p == nil {
		return nil
	}
	return &W3CNode{styled: n.styled, id: p.ID()}
}

// HasChildNodes returns true if the node has children.
func (n *W3CNode) HasChildNodes() bool {
	tn := n.TreeNode()
	return tn != nil && tn.ChildCount() > 0
}

// ChildNodes returns the list of all children of the node.
func (n *W3CNode) ChildNodes() w3cdom.NodeList {
	return n.childList(false)
}

// Children returns the list of element children of the node, leaving
// out text content.
func (n *W3CNode) Children() w3cdom.NodeList {
	return n.childList(true)
}

func (n *W3CNode) childList(elementsOnly bool) w3cdom.NodeList {
	list := nodeList{styled: n.styled}
	tn := n.TreeNode()
	if tn == nil {
		return list
	}
	for _, ch := range tn.Children() {
		if elementsOnly {
			sn := styledtree.Node(ch)
			if sn.HTMLNode().Type != html.ElementNode {
				continue
			}
		}
		list.ids = append(list.ids, ch.ID())
	}
	return list
}

// FirstChild returns the node's first child, or nil.
func (n *W3CNode) FirstChild() w3cdom.Node {
	tn := n.TreeNode()
	if tn == nil {
		return nil
	}
	ch, ok := tn.Child(0)
	if !ok {
		return nil
	}
	return &W3CNode{styled: n.styled, id: ch.ID()}
}

// NextSibling returns the node following this one among the children of
// their common parent, or nil if n is the last one.
func (n *W3CNode) NextSibling() w3cdom.Node {
	tn := n.TreeNode()
	if tn == nil {
		return nil
	}
	p := tn.Parent()
	if p == nil {
		return nil
	}
	i := p.IndexOfChild(tn)
	if i < 0 {
		return nil
	}
	sib, ok := p.Child(i + 1)
	if !ok {
		return nil
	}
	return &W3CNode{styled: n.styled, id: sib.ID()}
}

// Attributes returns the node's HTML attributes.
func (n *W3CNode) Attributes() w3cdom.NamedNodeMap {
	h := n.HTMLNode()
	if h == nil {
		return attributes(nil)
	}
	return attributes(h.Attr)
}

// ComputedStyles returns the styles effective for the node, reflecting
// the interaction states it currently is in.
func (n *W3CNode) ComputedStyles() w3cdom.ComputedStyles {
	if n == nil {
		return nil
	}
	return &computedStyles{styled: n.styled, id: n.id}
}

// TextContent returns the concatenated text content of the node and all
// its descendents, in document order.
func (n *W3CNode) TextContent() (string, error) {
	if n == nil {
		return "", ErrNotAStyledNode
	}
	var sb strings.Builder
	collectText(&sb, n.TreeNode())
	return sb.String(), nil
}

func collectText(sb *strings.Builder, tn *tree.Node[*styledtree.StyNode]) {
	if tn == nil {
		return
	}
	if h := styledtree.Node(tn).HTMLNode(); h.Type == html.TextNode {
		sb.WriteString(h.Data)
	}
	for _, ch := range tn.Children() {
		collectText(sb, ch)
	}
}

// --- Typed style views -----------------------------------------------

// DisplayMode returns the display mode of a node, as outer and inner
// mode flags.
func (n *W3CNode) DisplayMode() css.DisplayMode {
	if n == nil {
		return css.NoMode
	}
	v := n.styled.Get(n.id, style.PropDisplay)
	if v.Kind() != css.KindKeyword {
		return css.NoMode
	}
	return css.DisplayModeOf(css.DisplayFromCode(v.KeywordCode()))
}

// Position returns the positioning scheme of a node, together with the
// edge offsets parameterizing it.
func (n *W3CNode) Position() css.PositionT {
	if n == nil {
		return css.PositionT{}
	}
	pos := css.PositionOf(n.styled.Get(n.id, style.PropPosition))
	offsets := []css.PositionOffset{
		{Dim: n.styled.Get(n.id, style.PropTop).AsDimen(), Dir: css.Top},
		{Dim: n.styled.Get(n.id, style.PropRight).AsDimen(), Dir: css.Right},
		{Dim: n.styled.Get(n.id, style.PropBottom).AsDimen(), Dir: css.Bottom},
		{Dim: n.styled.Get(n.id, style.PropLeft).AsDimen(), Dir: css.Left},
	}
	m := css.PositionPattern[css.PositionT](pos)
	return m.OneOf(css.PositionPatterns[css.PositionT]{
		Static:   css.Static(),
		Relative: css.Relative(offsets),
		Absolute: css.Absolute(offsets),
		Fixed:    css.Fixed(offsets),
		Sticky:   css.Sticky(offsets),
		Default:  pos,
	})
}

// --- Node lists and attributes ---------------------------------------

type nodeList struct {
	styled *styledtree.Tree
	ids    []tree.NodeID
}

var _ w3cdom.NodeList = nodeList{}

// Length returns the number of nodes in the list.
func (l nodeList) Length() int {
	return len(l.ids)
}

// Item returns the node at position i, or nil if out of range.
func (l nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l.ids) {
		return nil
	}
	return &W3CNode{styled: l.styled, id: l.ids[i]}
}

func (l nodeList) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, id := range l.ids {
		n := W3CNode{styled: l.styled, id: id}
		sb.WriteString(n.String())
		sb.WriteString(" ")
	}
	sb.WriteString("]")
	return sb.String()
}

type attributes []html.Attribute

var _ w3cdom.NamedNodeMap = attributes(nil)

// Length returns the number of attributes.
func (a attributes) Length() int {
	return len(a)
}

// Item returns the attribute at position i, or nil if out of range.
func (a attributes) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(a) {
		return nil
	}
	return attribute{attr: a[i]}
}

// GetNamedItem returns the attribute with a given key, or nil.
func (a attributes) GetNamedItem(key string) w3cdom.Attr {
	for _, attr := range a {
		if attr.Key == key {
			return attribute{attr: attr}
		}
	}
	return nil
}

type attribute struct {
	attr html.Attribute
}

var _ w3cdom.Attr = attribute{}

func (a attribute) Namespace() string { return a.attr.Namespace }
func (a attribute) Key() string       { return a.attr.Key }
func (a attribute) Value() string     { return a.attr.Val }

// --- Computed styles -------------------------------------------------

type computedStyles struct {
	styled *styledtree.Tree
	id     tree.NodeID
}

var _ w3cdom.ComputedStyles = &computedStyles{}

// GetPropertyValue returns the style value for a property name, e.g.
// "margin-top". Unknown property names yield an empty value.
func (cs *computedStyles) GetPropertyValue(name string) css.Value {
	p, ok := style.ParseProperty(name)
	if !ok {
		tracer().Debugf("unknown style property %q", name)
		return css.Value{}
	}
	return cs.styled.Get(cs.id, p)
}

// Property returns the style value for a property identifier.
func (cs *computedStyles) Property(p style.PropertyID) css.Value {
	return cs.styled.Get(cs.id, p)
}

// States returns the interaction states the styles reflect.
func (cs *computedStyles) States() style.StateSet {
	return cs.styled.States(cs.id)
}
