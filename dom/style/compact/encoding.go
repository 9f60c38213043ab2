package compact

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/tyse/core/dimen"
)

// Reserved words of the compact encodings. The top of each integer
// range is special: no legitimate encoding produces a value at or
// above the range's threshold. The sentinel proper means "not
// compactly representable, consult the slow path"; auto, none and the
// content keywords are ordinary compact values.
const (
	U16Sentinel   uint16 = 0xFFFF
	U16Auto       uint16 = 0xFFFE
	U16None       uint16 = 0xFFFD
	U16Inherit    uint16 = 0xFFFC
	U16Initial    uint16 = 0xFFFB
	U16MinContent uint16 = 0xFFFA
	U16MaxContent uint16 = 0xFFF9
	U16Threshold  uint16 = 0xFFF9
)

// Reserved words of the signed 16 bit slots.
const (
	I16Sentinel  int16 = 0x7FFF
	I16Auto      int16 = 0x7FFE
	I16Inherit   int16 = 0x7FFD
	I16Initial   int16 = 0x7FFC
	I16Threshold int16 = 0x7FFC
)

// Reserved words of the 32 bit slots, mirroring the 16 bit family.
const (
	U32Sentinel   uint32 = 0xFFFFFFFF
	U32Auto       uint32 = 0xFFFFFFFE
	U32None       uint32 = 0xFFFFFFFD
	U32Inherit    uint32 = 0xFFFFFFFC
	U32Initial    uint32 = 0xFFFFFFFB
	U32MinContent uint32 = 0xFFFFFFFA
	U32MaxContent uint32 = 0xFFFFFFF9
	U32Threshold  uint32 = 0xFFFFFFF9
)

// Unit-tagged dimension words carry the unit code in bits 0–3 and the
// value, in thousandths of that unit, as a signed quantity in bits
// 4–31.
const (
	maxDimMilli = 1<<27 - 1
	minDimMilli = -(1 << 27)
)

// EncodeDim encodes a dimension-like value into a unit-tagged u32
// word. Keyword values map to their reserved words. Dimensions the
// word cannot hold losslessly, and every other kind of value, encode
// as U32Sentinel.
func EncodeDim(v css.Value) uint32 {
	switch v.Kind() {
	case css.KindAuto:
		return U32Auto
	case css.KindNone:
		return U32None
	case css.KindInherit:
		return U32Inherit
	case css.KindInitial:
		return U32Initial
	case css.KindDimension:
		d := v.AsDimen()
		switch {
		case d.IsMinContent():
			return U32MinContent
		case d.IsMaxContent():
			return U32MaxContent
		}
		unit, ok := d.Unit()
		if !ok { // fit-content, ex, ch
			return U32Sentinel
		}
		milli := d.UnitMilli()
		if milli < minDimMilli || milli > maxDimMilli {
			return U32Sentinel
		}
		enc := uint32(milli)<<4 | uint32(unit)
		if enc >= U32Threshold {
			return U32Sentinel
		}
		if dimenOf(milli, unit) != d { // lossy, e.g. odd device unit values
			return U32Sentinel
		}
		return enc
	}
	return U32Sentinel
}

// DecodeDim decodes a unit-tagged u32 word. ok is false for the
// sentinel, inherit and initial words, which read as a cache miss.
func DecodeDim(enc uint32) (css.Value, bool) {
	switch enc {
	case U32Sentinel, U32Inherit, U32Initial:
		return css.Value{}, false
	case U32Auto:
		return css.ValueAuto, true
	case U32None:
		return css.ValueNone, true
	case U32MinContent:
		return css.DimenValue(css.MinContent()), true
	case U32MaxContent:
		return css.DimenValue(css.MaxContent()), true
	}
	milli := int32(enc) >> 4 // arithmetic shift recovers the sign
	unit := css.UnitFromCode(uint8(enc & 0x0f))
	return css.DimenValue(dimenOf(milli, unit)), true
}

// dimenOf reconstitutes a dimension from a unit code and a thousandths
// scalar.
func dimenOf(milli int32, unit css.Unit) css.DimenT {
	switch unit {
	case css.UnitEm:
		return css.Em(milli)
	case css.UnitRem:
		return css.Rem(milli)
	case css.UnitPercent:
		return css.PercentMilli(milli)
	case css.UnitVw:
		return css.Vw(milli)
	case css.UnitVh:
		return css.Vh(milli)
	case css.UnitVmin:
		return css.Vmin(milli)
	case css.UnitVmax:
		return css.Vmax(milli)
	}
	// pt, in, cm and mm collapse to device units at parse time; of the
	// absolute units only px reaches the cache
	return css.JustDimen(dimen.DU(int64(milli) * int64(css.PX) / 1000))
}

// EncodeDeciPx encodes an absolute dimension in decipixels (px × 10).
// Only values that survive the round trip exactly encode; everything
// else is I16Sentinel. `auto` has a reserved word.
func EncodeDeciPx(v css.Value) int16 {
	switch v.Kind() {
	case css.KindAuto:
		return I16Auto
	case css.KindInherit:
		return I16Inherit
	case css.KindInitial:
		return I16Initial
	case css.KindDimension:
		d := v.AsDimen()
		if !d.IsAbsolute() {
			return I16Sentinel
		}
		deci := int64(d.UnitMilli()) / 100
		if deci < -32768 || deci >= int64(I16Threshold) {
			return I16Sentinel
		}
		if css.JustDimen(dimen.DU(deci)*css.PX/10) != d {
			return I16Sentinel
		}
		return int16(deci)
	}
	return I16Sentinel
}

// DecodeDeciPx decodes a decipixel word. ok is false for the sentinel,
// inherit and initial words.
func DecodeDeciPx(x int16) (css.Value, bool) {
	switch x {
	case I16Sentinel, I16Inherit, I16Initial:
		return css.Value{}, false
	case I16Auto:
		return css.ValueAuto, true
	}
	return css.DimenValue(css.JustDimen(dimen.DU(x) * css.PX / 10)), true
}

// encodeFlexFactor encodes a flex-grow or flex-shrink number in
// hundredths: flex-shrink 1 is 100.
func encodeFlexFactor(v css.Value) uint16 {
	milli, ok := v.AsNumber()
	if !ok || milli < 0 || milli%10 != 0 {
		return U16Sentinel
	}
	c := milli / 10
	if c >= int32(U16Threshold) {
		return U16Sentinel
	}
	return uint16(c)
}

func decodeFlexFactor(x uint16) (css.Value, bool) {
	if x >= U16Threshold {
		return css.Value{}, false
	}
	return css.Number(int32(x) * 10), true
}

// encodeZIndex encodes an integral z-index; `auto` has a reserved
// word. A non-integral number encodes as a miss.
func encodeZIndex(v css.Value) int16 {
	if v.Kind() == css.KindAuto {
		return I16Auto
	}
	milli, ok := v.AsNumber()
	if !ok || milli%1000 != 0 {
		return I16Sentinel
	}
	z := milli / 1000
	if z < -32768 || z >= int32(I16Threshold) {
		return I16Sentinel
	}
	return int16(z)
}

func decodeZIndex(x int16) (css.Value, bool) {
	switch x {
	case I16Sentinel, I16Inherit, I16Initial:
		return css.Value{}, false
	case I16Auto:
		return css.ValueAuto, true
	}
	return css.Number(int32(x) * 1000), true
}

// encodeLineHeight encodes a number line height in tenths of a
// percent: 1.5 becomes 1500. Length and percentage line heights take
// the slow path.
func encodeLineHeight(v css.Value) int16 {
	milli, ok := v.AsNumber()
	if !ok {
		return I16Sentinel
	}
	if milli < -32768 || milli >= int32(I16Threshold) {
		return I16Sentinel
	}
	return int16(milli)
}

func decodeLineHeight(x int16) (css.Value, bool) {
	if x >= I16Threshold {
		return css.Value{}, false
	}
	return css.Number(int32(x)), true
}

// encodeColor packs a color as 0xRRGGBBAA. 0 doubles as "unset", so a
// fully transparent color reads as a miss and the slow path serves it.
func encodeColor(v css.Value) uint32 {
	c, ok := v.AsColor()
	if !ok {
		return 0
	}
	return c.Packed()
}

func decodeColor(u uint32) (css.Value, bool) {
	if u == 0 {
		return css.Value{}, false
	}
	return css.ColorValue(css.ColorFromPacked(u)), true
}
