package compact

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
)

// Tier1 packs the 21 keyword-valued flag properties of a node into a
// single machine word. Bit 63 is the populated flag; the zero word
// means "no compact answer for any flag property".
type Tier1 uint64

const tier1Populated Tier1 = 1 << 63

// tier1Layout fixes shift and width per flag property. The layout is
// part of the storage format and therefore frozen.
var tier1Layout = []struct {
	prop  style.PropertyID
	shift uint8
	width uint8
}{
	{style.PropDisplay, 0, 5},
	{style.PropPosition, 5, 3},
	{style.PropFloat, 8, 2},
	{style.PropOverflowX, 10, 3},
	{style.PropOverflowY, 13, 3},
	{style.PropBoxSizing, 16, 1},
	{style.PropFlexDirection, 17, 2},
	{style.PropFlexWrap, 19, 2},
	{style.PropJustifyContent, 21, 3},
	{style.PropAlignItems, 24, 3},
	{style.PropAlignContent, 27, 3},
	{style.PropWritingMode, 30, 2},
	{style.PropClear, 32, 2},
	{style.PropFontWeight, 34, 4},
	{style.PropFontStyle, 38, 2},
	{style.PropTextAlign, 40, 3},
	{style.PropVisibility, 43, 2},
	{style.PropWhiteSpace, 45, 3},
	{style.PropDirection, 48, 1},
	{style.PropVerticalAlign, 49, 3},
	{style.PropBorderCollapse, 52, 1},
}

// tier1Index maps a PropertyID to its position in tier1Layout, -1 for
// properties without a flag slot.
var tier1Index [style.NumProperties]int8

func init() {
	for i := range tier1Index {
		tier1Index[i] = -1
	}
	for i, f := range tier1Layout {
		tier1Index[f.prop] = int8(i)
	}
}

// BuildFlags encodes the flag properties of one node. Properties the
// lookup does not report encode at their initial keyword. A flag
// property carrying a non-keyword value (a vertical-align length, say)
// has no per-field miss word, so the whole word stays unpopulated and
// every flag read of the node falls back to the slow path.
func BuildFlags(lookup LookupFunc) Tier1 {
	var word Tier1
	for _, f := range tier1Layout {
		v, ok := lookup(f.prop)
		if !ok {
			v = f.prop.InitialValue()
		}
		if v.Kind() != css.KindKeyword {
			return 0
		}
		code := v.KeywordCode()
		if code >= 1<<f.width {
			return 0
		}
		word |= Tier1(code) << f.shift
	}
	return word | tier1Populated
}

// Populated returns true if the word carries encoded values.
func (t Tier1) Populated() bool {
	return t&tier1Populated != 0
}

// Code extracts the keyword code of a flag property. ok is false if
// the word is unpopulated or p has no flag slot.
func (t Tier1) Code(p style.PropertyID) (uint8, bool) {
	if !t.Populated() || int(p) >= len(tier1Index) {
		return 0, false
	}
	i := tier1Index[p]
	if i < 0 {
		return 0, false
	}
	f := tier1Layout[i]
	return uint8(t>>f.shift) & (1<<f.width - 1), true
}

// Typed slot readers, for callers that know what they are asking for.
// The readers do not re-check the populated flag; on an unpopulated
// word they report all-zero codes, which are not the initial values.

// Display reads the display slot.
func (t Tier1) Display() css.Display {
	return css.DisplayFromCode(uint8(t) & 0x1f)
}

// Position reads the position slot.
func (t Tier1) Position() css.Position {
	return css.PositionFromCode(uint8(t>>5) & 0x07)
}

func (t Tier1) Float() css.Float {
	return css.FloatFromCode(uint8(t>>8) & 0x03)
}

func (t Tier1) OverflowX() css.Overflow {
	return css.OverflowFromCode(uint8(t>>10) & 0x07)
}

func (t Tier1) OverflowY() css.Overflow {
	return css.OverflowFromCode(uint8(t>>13) & 0x07)
}

func (t Tier1) BoxSizing() css.BoxSizing {
	return css.BoxSizingFromCode(uint8(t>>16) & 0x01)
}

func (t Tier1) FlexDirection() css.FlexDirection {
	return css.FlexDirectionFromCode(uint8(t>>17) & 0x03)
}

func (t Tier1) FlexWrap() css.FlexWrap {
	return css.FlexWrapFromCode(uint8(t>>19) & 0x03)
}

func (t Tier1) JustifyContent() css.JustifyContent {
	return css.JustifyContentFromCode(uint8(t>>21) & 0x07)
}

func (t Tier1) AlignItems() css.AlignItems {
	return css.AlignItemsFromCode(uint8(t>>24) & 0x07)
}

func (t Tier1) AlignContent() css.AlignContent {
	return css.AlignContentFromCode(uint8(t>>27) & 0x07)
}

func (t Tier1) WritingMode() css.WritingMode {
	return css.WritingModeFromCode(uint8(t>>30) & 0x03)
}

func (t Tier1) Clear() css.Clear {
	return css.ClearFromCode(uint8(t>>32) & 0x03)
}

func (t Tier1) FontWeight() css.FontWeight {
	return css.FontWeightFromCode(uint8(t>>34) & 0x0f)
}

func (t Tier1) FontStyle() css.FontStyle {
	return css.FontStyleFromCode(uint8(t>>38) & 0x03)
}

func (t Tier1) TextAlign() css.TextAlign {
	return css.TextAlignFromCode(uint8(t>>40) & 0x07)
}

func (t Tier1) Visibility() css.Visibility {
	return css.VisibilityFromCode(uint8(t>>43) & 0x03)
}

func (t Tier1) WhiteSpace() css.WhiteSpace {
	return css.WhiteSpaceFromCode(uint8(t>>45) & 0x07)
}

func (t Tier1) Direction() css.Direction {
	return css.DirectionFromCode(uint8(t>>48) & 0x01)
}

func (t Tier1) VerticalAlign() css.VerticalAlign {
	return css.VerticalAlignFromCode(uint8(t>>49) & 0x07)
}

func (t Tier1) BorderCollapse() css.BorderCollapse {
	return css.BorderCollapseFromCode(uint8(t>>52) & 0x01)
}

func (t Tier1) String() string {
	if !t.Populated() {
		return "flags(unpopulated)"
	}
	return fmt.Sprintf("flags(display:%s position:%s float:%s visibility:%s font:%s/%s)",
		t.Display(), t.Position(), t.Float(), t.Visibility(), t.FontWeight(), t.FontStyle())
}
