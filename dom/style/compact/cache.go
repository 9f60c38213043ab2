package compact

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

// LookupFunc reports the resolved value of one property at some node,
// with ok false if the node's style records do not mention it.
type LookupFunc func(style.PropertyID) (css.Value, bool)

// Cache is the compact property cache of a styled tree: three parallel
// arrays, indexed by arena node ID.
type Cache struct {
	flags []Tier1
	box   []NodeProps
	text  []TextProps
}

// NewCache creates a cache with n default-encoded slots.
func NewCache(n int) *Cache {
	c := &Cache{}
	c.Ensure(n)
	return c
}

// Len returns the number of slots.
func (c *Cache) Len() int {
	return len(c.flags)
}

// Ensure grows the cache to at least n slots. New slots read as
// default-encoded, i.e. every property at its initial value or a miss.
func (c *Cache) Ensure(n int) {
	if n <= len(c.flags) {
		return
	}
	tracer().Debugf("compact cache grows to %d slots", n)
	for len(c.flags) < n {
		c.flags = append(c.flags, 0)
		c.box = append(c.box, DefaultNodeProps())
		c.text = append(c.text, DefaultTextProps())
	}
}

// EncodeNode rebuilds the three blocks of one node from a resolved
// value lookup. Encoding is idempotent: the same lookup yields
// byte-identical blocks, whether this is a point rebuild or part of a
// bulk pass.
func (c *Cache) EncodeNode(id tree.NodeID, lookup LookupFunc) {
	c.Ensure(int(id) + 1)
	c.flags[id] = BuildFlags(lookup)
	c.box[id] = BuildBox(lookup)
	c.text[id] = BuildText(lookup)
}

// Get reads one property from the compact slots of node id. ok false
// is a cache miss: the property has no compact slot, the slot holds a
// miss word, or id is out of range. A miss is not an error; callers
// consult the resolved records instead.
func (c *Cache) Get(id tree.NodeID, p style.PropertyID) (css.Value, bool) {
	if int(id) >= len(c.flags) {
		return css.Value{}, false
	}
	switch p.Tier() {
	case style.TierFlags:
		code, ok := c.flags[id].Code(p)
		if !ok {
			return css.Value{}, false
		}
		return css.Keyword(code), true
	case style.TierBox:
		return c.box[id].get(p)
	case style.TierText:
		return c.text[id].get(p)
	}
	return css.Value{}, false
}

// Flags returns the packed flag word of node id, the zero word for an
// out-of-range id.
func (c *Cache) Flags(id tree.NodeID) Tier1 {
	if int(id) >= len(c.flags) {
		return 0
	}
	return c.flags[id]
}

// Box returns the box model block of node id, nil for an out-of-range
// id. The pointer aliases cache storage; Ensure invalidates it.
func (c *Cache) Box(id tree.NodeID) *NodeProps {
	if int(id) >= len(c.box) {
		return nil
	}
	return &c.box[id]
}

// Text returns the text block of node id, nil for an out-of-range id.
// The pointer aliases cache storage; Ensure invalidates it.
func (c *Cache) Text(id tree.NodeID) *TextProps {
	if int(id) >= len(c.text) {
		return nil
	}
	return &c.text[id]
}

// FontHash returns the font family hash of node id, 0 if unset.
func (c *Cache) FontHash(id tree.NodeID) uint64 {
	if int(id) >= len(c.text) {
		return 0
	}
	return c.text[id].FontFamilyHash
}
