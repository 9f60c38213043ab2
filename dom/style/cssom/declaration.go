package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
)

// Origin is the cascade origin of a declaration. Origins rank: user
// agent < author < author-important < override. Within one origin,
// specificity decides, then document order.
type Origin uint8

// Enum values for type Origin.
const (
	UserAgent Origin = iota
	Author
	AuthorImportant
	Override
)

func (o Origin) String() string {
	switch o {
	case UserAgent:
		return "user-agent"
	case Author:
		return "author"
	case AuthorImportant:
		return "author!"
	case Override:
		return "override"
	}
	return "#" + fmt.Sprint(uint8(o))
}

// Specificity is a selector specificity, folded into one comparable
// number: id count, class count and type count in 10-bit fields.
type Specificity uint32

// InlineSpecificity outranks any selector-derived specificity; it is
// attached to declarations from an element's style attribute.
const InlineSpecificity Specificity = 1 << 30

// FoldSpecificity folds the three counting buckets of CSS selector
// specificity (id selectors, class-like selectors, type selectors) into
// a single comparable number. Counts saturate at 1023 per bucket.
func FoldSpecificity(ids, classes, types int) Specificity {
	return Specificity(clamp10(ids))<<20 | Specificity(clamp10(classes))<<10 |
		Specificity(clamp10(types))
}

func clamp10(n int) uint32 {
	if n < 0 {
		return 0
	}
	if n > 1023 {
		return 1023
	}
	return uint32(n)
}

// Declaration is one cascade-ranked property assignment. A node's
// styling is in essence a set of declarations per property, of which
// the strongest survives.
type Declaration struct {
	Prop        style.PropertyID
	Value       css.Value
	Origin      Origin
	Specificity Specificity
	Order       uint32 // document order, the final tie-breaker
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s: %s  [%s s=%d o=%d]", d.Prop, d.Value, d.Origin,
		d.Specificity, d.Order)
}

// Outranks returns true if d wins against other in the cascade. Equal
// rank counts as a win, so that with declarations inserted in document
// order the later one survives.
func (d Declaration) Outranks(other Declaration) bool {
	if d.Origin != other.Origin {
		return d.Origin > other.Origin
	}
	if d.Specificity != other.Specificity {
		return d.Specificity > other.Specificity
	}
	return d.Order >= other.Order
}

// ---------------------------------------------------------------------------

// DeclarationList is a set of declarations with unique properties, kept
// sorted by property. Insertion resolves conflicts by cascade rank, so
// after any sequence of Insert calls the list holds, per property, the
// declaration that wins the cascade.
//
// The zero value is an empty list, ready to use.
type DeclarationList []Declaration

// Resolve runs the cascade over a set of declarations, yielding the
// winning declaration per property. The outcome does not depend on the
// input order, except between declarations of fully equal rank, where
// the later one wins.
func Resolve(decls []Declaration) DeclarationList {
	dl := make(DeclarationList, 0, len(decls))
	for _, d := range decls {
		dl.Insert(d)
	}
	return dl
}

// index locates p in the sorted list.
func (dl DeclarationList) index(p style.PropertyID) (int, bool) {
	i := sort.Search(len(dl), func(i int) bool { return dl[i].Prop >= p })
	return i, i < len(dl) && dl[i].Prop == p
}

// Get returns the winning value for a property.
func (dl DeclarationList) Get(p style.PropertyID) (css.Value, bool) {
	if i, ok := dl.index(p); ok {
		return dl[i].Value, true
	}
	return css.Value{}, false
}

// Declaration returns the full winning declaration for a property.
func (dl DeclarationList) Declaration(p style.PropertyID) (Declaration, bool) {
	if i, ok := dl.index(p); ok {
		return dl[i], true
	}
	return Declaration{}, false
}

// Insert adds a declaration, replacing a present one for the same
// property iff the new one outranks it.
func (dl *DeclarationList) Insert(d Declaration) {
	i, ok := dl.index(d.Prop)
	if ok {
		if d.Outranks((*dl)[i]) {
			(*dl)[i] = d
		}
		return
	}
	*dl = append(*dl, Declaration{})
	copy((*dl)[i+1:], (*dl)[i:])
	(*dl)[i] = d
}

// Remove deletes the declaration for a property, if present.
func (dl *DeclarationList) Remove(p style.PropertyID) bool {
	i, ok := dl.index(p)
	if !ok {
		return false
	}
	*dl = append((*dl)[:i], (*dl)[i+1:]...)
	return true
}

func (dl DeclarationList) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, d := range dl {
		b.WriteString(d.Prop.String())
		b.WriteString(": ")
		b.WriteString(d.Value.String())
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}
