/*
Package styledtree implements the styled document tree: one node per
document element (plus non-whitespace text nodes), each carrying the
styling records the cascade produced for it.

Overview

A styled tree is built either from an HTML parse tree (BuildTree) or
programmatically (NewTree, AppendElement). Styling happens in three
steps per node, parents strictly before children. First the cascade:
stylesheet rules are matched against the node and merged with the
user-agent defaults for the element kind and with inline declarations
from the style attribute; the strongest declaration per property
survives. Then inheritance: inheritable properties the node does not
declare are copied from the parent's resolved record, and relative
units with a concrete anchor (em, rem, percentages of a known parent
length) collapse to device units here and never later. Finally the
resolved record is projected into the compact property cache, three
flat arrays indexed by the arena node ID.

Reads go through Tree.Get, which consults the compact cache first and
falls back to the resolved record, the user-agent default and finally
the property's initial value. A read never fails. Nodes carry
interaction state flags (hover, focus, ...); state-conditional styling
is layered over the normal baseline at read time and is never encoded
compactly.

Mutation goes through a small gateway: SetOverride and RemoveOverride
for imperative property assignments (synchronously re-resolved),
SetInlineStyle for per-state inline declarations, SetState for the
interaction state flags, and InvalidateSubtree to recover from
structural edits.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.dom'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.dom")
}
