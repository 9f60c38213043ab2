package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
)

// State is a node interaction state. Styling differs per state whenever
// a stylesheet or an inline style attaches declarations to a
// pseudo-class like ":hover". The set of states is closed.
type State uint8

// Enum values for type State.
const (
	StateNormal State = iota
	StateHover
	StateActive
	StateFocus
	StateFocusWithin
	StateVisited
	StateDisabled
	StateChecked
	StateDragging
	StateDragOver
	StateBackdrop

	numStates // must stay last
)

// NumStates is the number of interaction states, including the normal
// state.
const NumStates = int(numStates)

var stateNames = [numStates]string{
	"normal", "hover", "active", "focus", "focus-within", "visited",
	"disabled", "checked", "dragging", "drag-over", "backdrop",
}

func (s State) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return "#" + strconv.Itoa(int(s))
}

// ParseState maps a pseudo-class name to an interaction state. Leading
// colons are accepted, so both "hover" and ":hover" parse.
func ParseState(name string) (State, bool) {
	name = strings.TrimLeft(strings.ToLower(strings.TrimSpace(name)), ":")
	for i, n := range stateNames {
		if n == name {
			return State(i), true
		}
	}
	return StateNormal, false
}

// StatePriority lists the non-normal states from strongest to weakest.
// When a node carries more than one state flag, the strongest one that
// has styling attached wins; StateNormal is the implicit last resort.
var StatePriority = [NumStates - 1]State{
	StateDisabled, StateChecked, StateFocus, StateFocusWithin, StateActive,
	StateDragging, StateDragOver, StateHover, StateVisited, StateBackdrop,
}

// ---------------------------------------------------------------------------

// StateSet is a bit mask of interaction states a node is currently in.
// A node can be in several states at once (focused and hovered, say);
// which one styles the node is decided by StatePriority.
//
// The zero StateSet means the node is in its normal state.
type StateSet uint16

func stateBit(s State) StateSet {
	if s == StateNormal || s >= numStates {
		return 0
	}
	return StateSet(1) << (s - 1)
}

// IsNormal is true iff no state flag is set. This is the fast check on
// the property accessor's hot path.
func (set StateSet) IsNormal() bool {
	return set == 0
}

// Has returns true if state s is set. StateNormal is reported as set
// exactly when no other state is.
func (set StateSet) Has(s State) bool {
	if s == StateNormal {
		return set == 0
	}
	return set&stateBit(s) != 0
}

// With returns a set with state s additionally set.
func (set StateSet) With(s State) StateSet {
	return set | stateBit(s)
}

// Without returns a set with state s cleared.
func (set StateSet) Without(s State) StateSet {
	return set &^ stateBit(s)
}

// Effective returns the strongest state in the set, per StatePriority,
// or StateNormal for an empty set.
func (set StateSet) Effective() State {
	if set == 0 {
		return StateNormal
	}
	for _, s := range StatePriority {
		if set.Has(s) {
			return s
		}
	}
	return StateNormal
}

func (set StateSet) String() string {
	if set == 0 {
		return "normal"
	}
	var b strings.Builder
	for s := StateHover; s < numStates; s++ {
		if set.Has(s) {
			if b.Len() > 0 {
				b.WriteByte('|')
			}
			b.WriteString(s.String())
		}
	}
	return b.String()
}
