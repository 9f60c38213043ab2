/*
Package css provides the value algebra for CSS styling.

CSS properties are plentyful and some of them are complicated.
This package shields clients from the cumbersome handling of CSS
values resulting of (1) the textual nature of CSS properties and
(2) the complicated semantics of computing style attributes for a
given node. It provides

  - option type DimenT for CSS dimensions (absolute lengths,
    percentages, font-relative and viewport-relative units, auto,
    inherit, initial, none), with pattern-matching helpers,
  - typed keyword enums for the finite-domain properties (display,
    position, float, …), numbered in the encoding order of the
    compact property cache,
  - type Color for CSS colors,
  - type Value, a small tagged union over all of the above, suitable
    as a comparable struct value in resolved-style records.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.frame.tree'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.frame.tree")
}
