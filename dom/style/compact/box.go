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
)

// NodeProps is the box model block of a node, 96 bytes. Fields hold
// encoded words: unit-tagged u32 dimensions, packed 0xRRGGBBAA colors,
// decipixel i16 spacings, hundredth-scaled flex factors and border
// style nibbles. Field order is the storage format and therefore
// frozen.
//
// The zero NodeProps is not the default encoding; fresh slots come
// from DefaultNodeProps.
type NodeProps struct {
	Width             uint32
	Height            uint32
	MinWidth          uint32
	MaxWidth          uint32
	MinHeight         uint32
	MaxHeight         uint32
	FlexBasis         uint32
	FontSize          uint32
	BorderTopColor    uint32
	BorderRightColor  uint32
	BorderBottomColor uint32
	BorderLeftColor   uint32
	PaddingTop        int16
	PaddingRight      int16
	PaddingBottom     int16
	PaddingLeft       int16
	MarginTop         int16
	MarginRight       int16
	MarginBottom      int16
	MarginLeft        int16
	BorderTopWidth    int16
	BorderRightWidth  int16
	BorderBottomWidth int16
	BorderLeftWidth   int16
	Top               int16
	Right             int16
	Bottom            int16
	Left              int16
	BorderSpacingH    int16
	BorderSpacingV    int16
	TabSize           int16
	FlexGrow          uint16
	FlexShrink        uint16
	ZIndex            int16
	BorderStyles      uint16
	_                 [2]uint8
}

// DefaultNodeProps returns the encoding of a node nobody styled: every
// slot holds its property's initial value, or a miss word where the
// initial is not compactly representable (tab-size counts spaces, not
// pixels). Colors, paddings, margins, border widths, border spacings,
// flex-grow and border styles are zero, which is their initial
// encoding.
func DefaultNodeProps() NodeProps {
	return NodeProps{
		Width:      U32Auto,
		Height:     U32Auto,
		MinWidth:   U32Auto,
		MaxWidth:   U32None,
		MinHeight:  U32Auto,
		MaxHeight:  U32None,
		FlexBasis:  U32Auto,
		FontSize:   U32Initial,
		Top:        I16Auto,
		Right:      I16Auto,
		Bottom:     I16Auto,
		Left:       I16Auto,
		TabSize:    I16Sentinel,
		FlexShrink: 100,
		ZIndex:     I16Auto,
	}
}

// BuildBox encodes the box model block of one node. Slots of
// properties the lookup does not report keep their default encoding.
func BuildBox(lookup LookupFunc) NodeProps {
	p := DefaultNodeProps()
	dim := func(prop style.PropertyID, slot *uint32) {
		if v, ok := lookup(prop); ok {
			*slot = EncodeDim(v)
		}
	}
	dim(style.PropWidth, &p.Width)
	dim(style.PropHeight, &p.Height)
	dim(style.PropMinWidth, &p.MinWidth)
	dim(style.PropMaxWidth, &p.MaxWidth)
	dim(style.PropMinHeight, &p.MinHeight)
	dim(style.PropMaxHeight, &p.MaxHeight)
	dim(style.PropFlexBasis, &p.FlexBasis)
	dim(style.PropFontSize, &p.FontSize)
	col := func(prop style.PropertyID, slot *uint32) {
		if v, ok := lookup(prop); ok {
			*slot = encodeColor(v)
		}
	}
	col(style.PropBorderTopColor, &p.BorderTopColor)
	col(style.PropBorderRightColor, &p.BorderRightColor)
	col(style.PropBorderBottomColor, &p.BorderBottomColor)
	col(style.PropBorderLeftColor, &p.BorderLeftColor)
	deci := func(prop style.PropertyID, slot *int16) {
		if v, ok := lookup(prop); ok {
			*slot = EncodeDeciPx(v)
		}
	}
	deci(style.PropPaddingTop, &p.PaddingTop)
	deci(style.PropPaddingRight, &p.PaddingRight)
	deci(style.PropPaddingBottom, &p.PaddingBottom)
	deci(style.PropPaddingLeft, &p.PaddingLeft)
	deci(style.PropMarginTop, &p.MarginTop)
	deci(style.PropMarginRight, &p.MarginRight)
	deci(style.PropMarginBottom, &p.MarginBottom)
	deci(style.PropMarginLeft, &p.MarginLeft)
	deci(style.PropBorderTopWidth, &p.BorderTopWidth)
	deci(style.PropBorderRightWidth, &p.BorderRightWidth)
	deci(style.PropBorderBottomWidth, &p.BorderBottomWidth)
	deci(style.PropBorderLeftWidth, &p.BorderLeftWidth)
	deci(style.PropTop, &p.Top)
	deci(style.PropRight, &p.Right)
	deci(style.PropBottom, &p.Bottom)
	deci(style.PropLeft, &p.Left)
	deci(style.PropBorderSpacingH, &p.BorderSpacingH)
	deci(style.PropBorderSpacingV, &p.BorderSpacingV)
	deci(style.PropTabSize, &p.TabSize)
	if v, ok := lookup(style.PropFlexGrow); ok {
		p.FlexGrow = encodeFlexFactor(v)
	}
	if v, ok := lookup(style.PropFlexShrink); ok {
		p.FlexShrink = encodeFlexFactor(v)
	}
	if v, ok := lookup(style.PropZIndex); ok {
		p.ZIndex = encodeZIndex(v)
	}
	p.BorderStyles = encodeBorderStyles(lookup)
	return p
}

// Border styles pack as 4-bit nibbles, top/right/bottom/left from the
// low end. Nibble 0xF marks a side whose style the cache cannot hold.
var borderStyleSides = [4]style.PropertyID{
	style.PropBorderTopStyle,
	style.PropBorderRightStyle,
	style.PropBorderBottomStyle,
	style.PropBorderLeftStyle,
}

func encodeBorderStyles(lookup LookupFunc) uint16 {
	var word uint16
	for i, prop := range borderStyleSides {
		v, ok := lookup(prop)
		if !ok {
			v = prop.InitialValue()
		}
		nibble := uint16(0xF)
		if v.Kind() == css.KindKeyword && v.KeywordCode() < 0xF {
			nibble = uint16(v.KeywordCode())
		}
		word |= nibble << (4 * i)
	}
	return word
}

// BorderStyle extracts one side from the packed border style word.
// Sides count top/right/bottom/left as 0–3. ok is false for the miss
// nibble.
func (p *NodeProps) BorderStyle(side int) (css.BorderStyle, bool) {
	nibble := uint8(p.BorderStyles>>(4*(side&3))) & 0xF
	if nibble == 0xF {
		return css.BorderStyleNone, false
	}
	return css.BorderStyleFromCode(nibble), true
}

// get answers a box model property from the encoded slots. ok false is
// a cache miss.
func (p *NodeProps) get(prop style.PropertyID) (css.Value, bool) {
	switch prop {
	case style.PropWidth:
		return DecodeDim(p.Width)
	case style.PropHeight:
		return DecodeDim(p.Height)
	case style.PropMinWidth:
		return DecodeDim(p.MinWidth)
	case style.PropMaxWidth:
		return DecodeDim(p.MaxWidth)
	case style.PropMinHeight:
		return DecodeDim(p.MinHeight)
	case style.PropMaxHeight:
		return DecodeDim(p.MaxHeight)
	case style.PropFlexBasis:
		return DecodeDim(p.FlexBasis)
	case style.PropFontSize:
		return DecodeDim(p.FontSize)
	case style.PropBorderTopColor:
		return decodeColor(p.BorderTopColor)
	case style.PropBorderRightColor:
		return decodeColor(p.BorderRightColor)
	case style.PropBorderBottomColor:
		return decodeColor(p.BorderBottomColor)
	case style.PropBorderLeftColor:
		return decodeColor(p.BorderLeftColor)
	case style.PropPaddingTop:
		return DecodeDeciPx(p.PaddingTop)
	case style.PropPaddingRight:
		return DecodeDeciPx(p.PaddingRight)
	case style.PropPaddingBottom:
		return DecodeDeciPx(p.PaddingBottom)
	case style.PropPaddingLeft:
		return DecodeDeciPx(p.PaddingLeft)
	case style.PropMarginTop:
		return DecodeDeciPx(p.MarginTop)
	case style.PropMarginRight:
		return DecodeDeciPx(p.MarginRight)
	case style.PropMarginBottom:
		return DecodeDeciPx(p.MarginBottom)
	case style.PropMarginLeft:
		return DecodeDeciPx(p.MarginLeft)
	case style.PropBorderTopWidth:
		return DecodeDeciPx(p.BorderTopWidth)
	case style.PropBorderRightWidth:
		return DecodeDeciPx(p.BorderRightWidth)
	case style.PropBorderBottomWidth:
		return DecodeDeciPx(p.BorderBottomWidth)
	case style.PropBorderLeftWidth:
		return DecodeDeciPx(p.BorderLeftWidth)
	case style.PropTop:
		return DecodeDeciPx(p.Top)
	case style.PropRight:
		return DecodeDeciPx(p.Right)
	case style.PropBottom:
		return DecodeDeciPx(p.Bottom)
	case style.PropLeft:
		return DecodeDeciPx(p.Left)
	case style.PropBorderSpacingH:
		return DecodeDeciPx(p.BorderSpacingH)
	case style.PropBorderSpacingV:
		return DecodeDeciPx(p.BorderSpacingV)
	case style.PropTabSize:
		return DecodeDeciPx(p.TabSize)
	case style.PropFlexGrow:
		return decodeFlexFactor(p.FlexGrow)
	case style.PropFlexShrink:
		return decodeFlexFactor(p.FlexShrink)
	case style.PropZIndex:
		return decodeZIndex(p.ZIndex)
	case style.PropBorderTopStyle:
		return p.borderStyleValue(0)
	case style.PropBorderRightStyle:
		return p.borderStyleValue(1)
	case style.PropBorderBottomStyle:
		return p.borderStyleValue(2)
	case style.PropBorderLeftStyle:
		return p.borderStyleValue(3)
	}
	return css.Value{}, false
}

func (p *NodeProps) borderStyleValue(side int) (css.Value, bool) {
	s, ok := p.BorderStyle(side)
	if !ok {
		return css.Value{}, false
	}
	return css.Keyword(s), true
}
