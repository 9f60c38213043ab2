package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/tree"
)

// Get reads one property of a node under the node's current
// interaction states. This is the hot path of the engine: a
// normal-state read of a compactly encoded property touches nothing
// but the cache arrays and does not allocate. Encodings the cache
// cannot represent fall through to the resolved record, then to the
// user-agent default and the property's initial value, so a read
// never fails. Unknown node IDs read initial values.
func (t *Tree) Get(id tree.NodeID, p style.PropertyID) css.Value {
	sn := t.styNode(id)
	if sn == nil {
		return p.InitialValue()
	}
	return t.get(sn, id, p, sn.states)
}

// GetWithState reads one property of a node under an explicit state
// set, regardless of the states the node is actually in. Reads under a
// non-normal state take the slow path: the strongest declaring state
// per property wins, with the normal-state styling as the baseline
// underneath. Imperative overrides outrank state styling.
func (t *Tree) GetWithState(id tree.NodeID, p style.PropertyID, set style.StateSet) css.Value {
	sn := t.styNode(id)
	if sn == nil {
		return p.InitialValue()
	}
	return t.get(sn, id, p, set)
}

func (t *Tree) get(sn *StyNode, id tree.NodeID, p style.PropertyID, set style.StateSet) css.Value {
	if set.IsNormal() {
		if v, ok := t.cache.Get(id, p); ok {
			return v
		}
		return t.slowGet(sn, p)
	}
	// overrides stay strongest under any state; the resolved record
	// holds their materialized values
	if _, ok := sn.overrides.Get(p); ok {
		if v, found := sn.resolved.Get(p); found {
			return v
		}
	}
	for _, s := range style.StatePriority {
		if !set.Has(s) {
			continue
		}
		if v, ok := sn.stateful.Get(s, p); ok {
			return v
		}
	}
	return t.slowGet(sn, p)
}

// slowGet is the normal-state slow path: resolved record, user-agent
// default, initial value.
func (t *Tree) slowGet(sn *StyNode, p style.PropertyID) css.Value {
	if v, ok := sn.resolved.Get(p); ok {
		return v
	}
	if v := style.GetUserAgentDefaultProperty(sn.htmlNode, p); !v.IsEmpty() {
		return v
	}
	return p.InitialValue()
}
