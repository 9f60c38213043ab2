package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
)

// StatefulDeclaration is a declaration conditional on an interaction
// state, e.g. from an ":hover" rule.
type StatefulDeclaration struct {
	State style.State
	Declaration
}

// StatefulList holds state-conditional declarations for one node as a
// single flat slice sorted by (state, property), unique per pair.
// Lookups binary-search; the per-state block of a list is contiguous.
//
// The zero value is an empty list, ready to use.
type StatefulList []StatefulDeclaration

func (sl StatefulList) index(s style.State, p style.PropertyID) (int, bool) {
	i := sort.Search(len(sl), func(i int) bool {
		if sl[i].State != s {
			return sl[i].State > s
		}
		return sl[i].Prop >= p
	})
	return i, i < len(sl) && sl[i].State == s && sl[i].Prop == p
}

// Get returns the winning value for a property under a state.
func (sl StatefulList) Get(s style.State, p style.PropertyID) (css.Value, bool) {
	if i, ok := sl.index(s, p); ok {
		return sl[i].Value, true
	}
	return css.Value{}, false
}

// Insert adds a state-conditional declaration, replacing a present one
// for the same (state, property) iff the new one outranks it.
func (sl *StatefulList) Insert(s style.State, d Declaration) {
	i, ok := sl.index(s, d.Prop)
	if ok {
		if d.Outranks((*sl)[i].Declaration) {
			(*sl)[i].Declaration = d
		}
		return
	}
	*sl = append(*sl, StatefulDeclaration{})
	copy((*sl)[i+1:], (*sl)[i:])
	(*sl)[i] = StatefulDeclaration{State: s, Declaration: d}
}

// HasState returns true if the list carries any declaration for state s.
func (sl StatefulList) HasState(s style.State) bool {
	i := sort.Search(len(sl), func(i int) bool { return sl[i].State >= s })
	return i < len(sl) && sl[i].State == s
}

// States returns the set of states the list declares properties for.
func (sl StatefulList) States() style.StateSet {
	var set style.StateSet
	for _, d := range sl {
		set = set.With(d.State)
	}
	return set
}
