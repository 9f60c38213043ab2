/*
Package cssom implements the CSS object model side of styling: typed
declarations with cascade ranks, selector matching, and the per-node
declaration lists the styled tree is resolved from.

Overview

Styling a document means answering, per node and property, which of the
many competing declarations wins. This package represents a declaration
as (property, value, origin, specificity, order) and reduces competition
to a single comparison, Declaration.Outranks. Matching a node against
the stylesheets of a document yields a DeclarationList, which holds the
winning declaration per property, plus a StatefulList of declarations
that only apply under interaction states like ":hover".

A good explanation of styling may be found in

	https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

There is not very much open source Go code around for supporting us
in implementing a styling engine, except the great work of
https://godoc.org/github.com/andybalholm/cascadia, which this package
relies on for selector matching.

CSS parsing is de-coupled by the interfaces StyleSheet and Rule.
A concrete implementation on top of the douceur parser may be found in
the sub-package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tyse.frame.tree'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.frame.tree")
}
