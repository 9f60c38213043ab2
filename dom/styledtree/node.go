package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree. It
// carries the styling records of one document node: the cascaded
// declarations from stylesheets, user-agent defaults and inline
// styles, programmatic overrides, and the resolved record produced by
// the inheritance resolver.
//
// StyNodes live as payloads in a tree arena. Node identity is the
// arena ID, which doubles as the index into the compact property
// cache.
type StyNode struct {
	htmlNode  *html.Node
	owner     *Tree
	states    style.StateSet
	inline    cssom.StatefulList    // per-state inline declarations, persistent
	styles    cssom.DeclarationList // cascaded base declarations, normal state
	stateful  cssom.StatefulList    // state-conditional declarations
	overrides cssom.DeclarationList // imperative assignments, strongest origin
	resolved  ResolvedRecord
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Owner returns the styled tree the node belongs to.
func (sn *StyNode) Owner() *Tree {
	return sn.owner
}

// States returns the interaction states the node is currently in.
func (sn *StyNode) States() style.StateSet {
	return sn.states
}

// Styles returns the node's cascaded base declarations: the winners of
// stylesheet matching, user-agent defaults and normal-state inline
// styling. The slice aliases node storage and must not be modified.
func (sn *StyNode) Styles() cssom.DeclarationList {
	return sn.styles
}

// StatefulStyles returns the node's state-conditional declarations.
// The slice aliases node storage and must not be modified.
func (sn *StyNode) StatefulStyles() cssom.StatefulList {
	return sn.stateful
}

// Resolved returns the node's resolved record, the output of cascade
// and inheritance resolution. The slice aliases node storage and must
// not be modified.
func (sn *StyNode) Resolved() ResolvedRecord {
	return sn.resolved
}

// addInline parses raw key/values into the node's persistent inline
// list. Inline declarations rank above any selector-matched ones.
func (sn *StyNode) addInline(s style.State, kvs []style.KeyValue) {
	tmpl := cssom.Declaration{
		Origin:      cssom.Author,
		Specificity: cssom.InlineSpecificity,
	}
	for _, d := range cssom.RawDeclarations(kvs, tmpl) {
		sn.inline.Insert(s, d)
	}
}

func (sn *StyNode) String() string {
	if sn == nil {
		return "<styled:nil>"
	}
	h := sn.htmlNode
	if h == nil {
		return "<styled:detached>"
	}
	if h.Type == html.TextNode {
		return "<styled:#text>"
	}
	return "<styled:" + h.Data + ">"
}
