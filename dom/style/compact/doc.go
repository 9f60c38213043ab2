/*
Package compact implements the compact property cache: fixed-width
per-node encodings for the style properties which layout reads most
often. The cache is a pure projection of the resolved style records.
It may be rebuilt at will and is never the only holder of a value.

Overview

A styled document easily reaches tens of thousands of nodes, and layout
asks every one of them for display type, box dimensions, margins and
font metrics, over and over. Keeping those answers in per-node maps is
memory- and cache-unfriendly. Instead, this package packs them into
three flat arrays, indexed by the node's arena ID:

  - Tier1, a single uint64 per node, holds 21 keyword-valued
    properties (display, position, float, …) as packed bit fields.
  - NodeProps, 96 bytes per node, holds the box model: dimensions as
    unit-tagged fixed-point words, spacings as decipixels, flex
    factors, z-index and border data.
  - TextProps, 24 bytes per node, holds text color, a font family
    hash, line height and the text spacings.

Not every CSS value fits into a fixed-width slot. Values that do not,
like calc() terms, exotic units or out-of-range magnitudes, encode as
sentinel words. A cache read then reports a miss and the caller falls
back to the resolved record store. The encoders guarantee that whatever
they do encode decodes back to the identical value, so a cache hit is
always as good as the slow path.

Encoding is total and idempotent: rebuilding a node's slots from the
same resolved record produces byte-identical results.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package compact

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tyse.dom'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.dom")
}
