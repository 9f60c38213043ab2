/*
Package dom provides access to HTML documents with CSS styles attached.

Status

Early draft. API may change frequently. Please stay patient.

Overview

Clients hand in an HTML parse tree, usually from golang.org/x/net/html,
together with the style sheets that apply to it. The package builds a
styled document from both and wraps it in a node type loosely modelled
after the W3C DOM: navigation via parent, children and siblings, plus
computed styles per node. The W3C API is a read-only view; style
mutation goes through the underlying styled tree, which clients can
reach from any node.

Tree Implementation

Styling and layout of HTML/CSS involves a lot of operations on different
trees. We implement the styled tree on top of a general purpose tree
type (package tree), which allocates nodes in an arena and offers
concurrent operations to manipulate tree nodes.

Nodes of an arena refer to each other by small integer IDs instead of
pointers. This keeps a complete document in a handful of allocations and
gives every node a stable index into the parallel property arrays of the
compact style cache. Node payloads carry the style information (package
styledtree); tree walks hand out short-lived node handles.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.dom'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.dom")
}
