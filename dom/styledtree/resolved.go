package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
)

// ResolvedEntry is one property of a resolved record: the value after
// cascade and inheritance, plus the information whether the node
// declares the property itself or receives it from its parent.
type ResolvedEntry struct {
	Prop      style.PropertyID
	Value     css.Value
	Inherited bool // value handed down from the parent record
}

// ResolvedRecord is the output of cascade and inheritance resolution
// for one node: entries sorted by property, one per property that is
// either declared at the node or inherited from an ancestor. Entries
// are materialized, i.e. the global keywords inherit and initial have
// been substituted by the values they stand for.
//
// Properties absent from the record carry their user-agent default or
// static initial value; the accessor supplies those.
//
// The zero value is an empty record, ready to use.
type ResolvedRecord []ResolvedEntry

// index locates p in the sorted record.
func (rec ResolvedRecord) index(p style.PropertyID) (int, bool) {
	i := sort.Search(len(rec), func(i int) bool { return rec[i].Prop >= p })
	return i, i < len(rec) && rec[i].Prop == p
}

// Get returns the resolved value for a property.
func (rec ResolvedRecord) Get(p style.PropertyID) (css.Value, bool) {
	if i, ok := rec.index(p); ok {
		return rec[i].Value, true
	}
	return css.Value{}, false
}

// Entry returns the full resolved entry for a property, including its
// inheritance tag.
func (rec ResolvedRecord) Entry(p style.PropertyID) (ResolvedEntry, bool) {
	if i, ok := rec.index(p); ok {
		return rec[i], true
	}
	return ResolvedEntry{}, false
}

// set inserts or replaces the entry for a property.
func (rec *ResolvedRecord) set(p style.PropertyID, v css.Value, inherited bool) {
	i, ok := rec.index(p)
	if ok {
		(*rec)[i].Value = v
		(*rec)[i].Inherited = inherited
		return
	}
	*rec = append(*rec, ResolvedEntry{})
	copy((*rec)[i+1:], (*rec)[i:])
	(*rec)[i] = ResolvedEntry{Prop: p, Value: v, Inherited: inherited}
}

func (rec ResolvedRecord) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, e := range rec {
		b.WriteString(e.Prop.String())
		b.WriteString(": ")
		b.WriteString(e.Value.String())
		if e.Inherited {
			b.WriteString(" (inherited)")
		}
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}
