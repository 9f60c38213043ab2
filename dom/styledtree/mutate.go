package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cascade/tree"
)

// SetOverride attaches an imperative property assignment to a node.
// Overrides are the strongest cascade origin: they outrank every
// stylesheet and inline declaration, under every interaction state.
// The node's resolved record and compact cache line are rebuilt
// synchronously, so the write is visible to the very next Get.
//
// The write is per-node. Descendants observing an override of an
// inheritable property pick it up on the next InvalidateSubtree.
func (t *Tree) SetOverride(id tree.NodeID, p style.PropertyID, v css.Value) {
	sn := t.styNode(id)
	if sn == nil {
		tracer().Errorf("override for unknown node %v", id)
		return
	}
	tracer().Debugf("override %v { %s: %s }", id, p, v)
	sn.overrides.Insert(cssom.Declaration{
		Prop:   p,
		Value:  v,
		Origin: cssom.Override,
	})
	t.resolveNode(id)
}

// RemoveOverride drops an imperative assignment again. The property
// falls back to whatever won the cascade before the override.
func (t *Tree) RemoveOverride(id tree.NodeID, p style.PropertyID) bool {
	sn := t.styNode(id)
	if sn == nil || !sn.overrides.Remove(p) {
		return false
	}
	t.resolveNode(id)
	return true
}

// SetInlineStyle attaches inline declarations to a node, given as CSS
// declaration text like "color: red; margin-top: 4px". Inline styling
// ranks above any stylesheet selector. Under a state other than Normal
// the declarations become conditional on that interaction state, as if
// declared by a matching pseudo-class rule.
func (t *Tree) SetInlineStyle(id tree.NodeID, s style.State, decl string) error {
	sn := t.styNode(id)
	if sn == nil {
		return fmt.Errorf("No node %v to attach inline styles to", id)
	}
	kvs := douceuradapter.ParseInlineStyles(decl)
	if len(kvs) == 0 {
		return fmt.Errorf("No declarations in %q", decl)
	}
	sn.addInline(s, kvs)
	t.styleNode(id)
	if s == style.StateNormal {
		t.resolveNode(id)
	}
	return nil
}

// SetState sets or clears one interaction state flag of a node. State
// changes touch nothing but the flag mask: styling under the new state
// is layered in at read time, and the compact cache keeps serving the
// normal-state baseline untouched.
func (t *Tree) SetState(id tree.NodeID, s style.State, on bool) {
	sn := t.styNode(id)
	if sn == nil {
		return
	}
	if on {
		sn.states = sn.states.With(s)
	} else {
		sn.states = sn.states.Without(s)
	}
}

// States returns the interaction state flags of a node.
func (t *Tree) States(id tree.NodeID) style.StateSet {
	if sn := t.styNode(id); sn != nil {
		return sn.states
	}
	return 0
}

// InvalidateSubtree recomputes styling for a node and everything below
// it: stylesheet matching, inheritance resolution and the compact
// cache lines, in pre-order, parents strictly before children. This is
// the recovery path after structural edits and after overrides of
// inheritable properties.
func (t *Tree) InvalidateSubtree(id tree.NodeID) {
	n := t.Node(id)
	if n == nil {
		return
	}
	tracer().Debugf("restyling subtree below %v", id)
	t.restyle(id)
}

func (t *Tree) restyle(id tree.NodeID) {
	t.styleNode(id)
	t.resolveNode(id)
	for _, ch := range t.Node(id).Children() {
		t.restyle(ch.ID())
	}
}
