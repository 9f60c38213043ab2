package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

// CSS absolute units, expressed as device units. CSS defines the pixel
// as 1/96 inch, i.e. 3/4 of a (PostScript) point.
const (
	PX dimen.DU = dimen.PT * 3 / 4
	IN dimen.DU = PX * 96
	CM dimen.DU = IN * 50 / 127
	MM dimen.DU = IN * 5 / 127
)

const (
	dimenUnset uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	dimenNone     uint32 = 0x0005
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
//
// Absolute dimensions carry a device unit value in d. Relative
// dimensions (font-relative, viewport-relative, percentages) carry
// their authored scalar in d, scaled by 1000, until a resolution pass
// substitutes an absolute value.
type DimenT struct {
	d       dimen.DU
	percent Percent
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| None
	| JustDimen dimen
	| Percentage Percent
	| ViewRel unit scalar
	| FontRel unit scalar
	| ContentRel Min N
	| ContentRel Max N
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// None creates a CSS dimension of keyword value `none` (think of
// `max-width: none`).
func None() DimenT {
	return DimenT{flags: dimenNone}
}

// MinContent creates a CSS dimension of keyword value `min-content`.
func MinContent() DimenT {
	return DimenT{flags: DimenContentMin}
}

// MaxContent creates a CSS dimension of keyword value `max-content`.
func MaxContent() DimenT {
	return DimenT{flags: DimenContentMax}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{d: dimen.DU(percentValue(n)) * 1000, percent: n, flags: dimenPercent}
}

// PercentMilli creates a %-relative dimension from a thousandths
// scalar, i.e. PercentMilli(50500) is "50.5%".
func PercentMilli(milli int32) DimenT {
	d := Percentage(FromInt(int(milli / 1000)))
	d.d = dimen.DU(milli)
	return d
}

// Em creates a font-relative CSS dimension. scaled is the authored
// scalar in thousandths, i.e. Em(1500) is "1.5em".
func Em(scaled int32) DimenT {
	return DimenT{d: dimen.DU(scaled), flags: dimenEM}
}

// Rem creates a root-font-relative CSS dimension, scalar in
// thousandths.
func Rem(scaled int32) DimenT {
	return DimenT{d: dimen.DU(scaled), flags: dimenREM}
}

// Vw creates a viewport-width-relative CSS dimension, scalar in
// thousandths.
func Vw(scaled int32) DimenT {
	return DimenT{d: dimen.DU(scaled), flags: dimenVW}
}

// Vh creates a viewport-height-relative CSS dimension, scalar in
// thousandths.
func Vh(scaled int32) DimenT {
	return DimenT{d: dimen.DU(scaled), flags: dimenVH}
}

// Vmin creates a viewport-relative CSS dimension, scalar in
// thousandths.
func Vmin(scaled int32) DimenT {
	return DimenT{d: dimen.DU(scaled), flags: dimenVMIN}
}

// Vmax creates a viewport-relative CSS dimension, scalar in
// thousandths.
func Vmax(scaled int32) DimenT {
	return DimenT{d: dimen.DU(scaled), flags: dimenVMAX}
}

// percentValue is the single point where we commit to an integer
// interpretation of type percent.Percent.
func percentValue(p Percent) int {
	return int(p)
}

// ---------------------------------------------------------------------------

// Unit is an enum for CSS dimension units. The numeric values are the
// encoding order of the compact property cache and therefore frozen.
type Unit uint8

// Enum values for type Unit.
const (
	UnitPx Unit = iota
	UnitPt
	UnitEm
	UnitRem
	UnitIn
	UnitCm
	UnitMm
	UnitPercent
	UnitVw
	UnitVh
	UnitVmin
	UnitVmax
)

var unitNames = []string{
	"px", "pt", "em", "rem", "in", "cm", "mm", "%", "vw", "vh",
	"vmin", "vmax",
}

func (u Unit) String() string {
	return keywordString(unitNames, uint8(u))
}

// UnitFromCode decodes a cache code, falling back to UnitPx.
func UnitFromCode(c uint8) Unit {
	if int(c) >= len(unitNames) {
		return UnitPx
	}
	return Unit(c)
}

// Unit returns the unit of a dimension-valued DimenT. Absolute
// dimensions report UnitPx (pt, in, cm and mm collapse to device units
// at parse time). ok is false for keyword kinds (auto, none, …),
// content-relative dimensions, and the ex/ch units, which the compact
// cache cannot represent.
func (d DimenT) Unit() (Unit, bool) {
	switch d.flags & relativeMask {
	case dimenEM:
		return UnitEm, true
	case dimenREM:
		return UnitRem, true
	case dimenVW:
		return UnitVw, true
	case dimenVH:
		return UnitVh, true
	case dimenVMIN:
		return UnitVmin, true
	case dimenVMAX:
		return UnitVmax, true
	case dimenPercent:
		return UnitPercent, true
	}
	if d.flags&kindMask == dimenAbsolute && d.flags&contentMask == 0 {
		return UnitPx, true
	}
	return UnitPx, false
}

// UnitMilli returns the scalar of a dimension in thousandths of its
// Unit: 1.5em reports 1500, 50% reports 50000, an absolute dimension
// reports thousandths of CSS pixels.
func (d DimenT) UnitMilli() int32 {
	if d.flags&kindMask == dimenAbsolute && d.flags&relativeMask == 0 {
		return int32(int64(d.d) * 1000 / int64(PX))
	}
	return int32(d.d)
}

// ---------------------------------------------------------------------------

// IsUnset returns true if d is unset.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenUnset
}

// IsAbsolute returns true if d is an absolute dimension.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute && d.flags&relativeMask == 0
}

// IsAuto returns true if d is of keyword value `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsNone returns true if d is of keyword value `none`.
func (d DimenT) IsNone() bool {
	return d.flags&kindMask == dimenNone
}

// IsInherit returns true if d is of keyword value `inherit`.
func (d DimenT) IsInherit() bool {
	return d.flags&kindMask == dimenInherit
}

// IsInitial returns true if d is of keyword value `initial`.
func (d DimenT) IsInitial() bool {
	return d.flags&kindMask == dimenInitial
}

// IsPercent returns true if d is %-relative.
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// IsMinContent returns true if d is the keyword value `min-content`.
func (d DimenT) IsMinContent() bool {
	return d.flags&contentMask == DimenContentMin
}

// IsMaxContent returns true if d is the keyword value `max-content`.
func (d DimenT) IsMaxContent() bool {
	return d.flags&contentMask == DimenContentMax
}

// IsFitContent returns true if d is the keyword value `fit-content`.
func (d DimenT) IsFitContent() bool {
	return d.flags&contentMask == DimenContentFit
}

// IsEm returns true if d is em-relative.
func (d DimenT) IsEm() bool {
	return d.flags&relativeMask == dimenEM
}

// IsRem returns true if d is rem-relative.
func (d DimenT) IsRem() bool {
	return d.flags&relativeMask == dimenREM
}

// IsRelative returns true for font-relative and viewport-relative
// dimensions, excluding percentages.
func (d DimenT) IsRelative() bool {
	r := d.flags & relativeMask
	return r != 0 && r != dimenPercent
}

// Unwrap returns the device unit value of an absolute dimension, or 0
// for every other kind.
func (d DimenT) Unwrap() dimen.DU {
	if d.IsAbsolute() {
		return d.d
	}
	return 0
}

func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenNone:
		return "none"
	}
	switch d.flags & contentMask {
	case DimenContentMax:
		return "max-content"
	case DimenContentMin:
		return "min-content"
	case DimenContentFit:
		return "fit-content"
	}
	if r := d.flags & relativeMask; r != 0 {
		if r == dimenPercent {
			return milliString(int32(d.d)) + "%"
		}
		return milliString(int32(d.d)) + relativeSuffix(r)
	}
	if d.flags&kindMask == dimenAbsolute {
		return d.d.String()
	}
	return "dimen(unset)"
}

func relativeSuffix(r uint32) string {
	switch r {
	case dimenEM:
		return "em"
	case dimenEX:
		return "ex"
	case dimenCH:
		return "ch"
	case dimenREM:
		return "rem"
	case dimenVW:
		return "vw"
	case dimenVH:
		return "vh"
	case dimenVMIN:
		return "vmin"
	case dimenVMAX:
		return "vmax"
	}
	return "?"
}

// milliString formats a thousandths scalar, trimming trailing zeros:
// 1500 → "1.5", 2000 → "2".
func milliString(m int32) string {
	s := strconv.FormatInt(int64(m)/1000, 10)
	if frac := m % 1000; frac != 0 {
		if frac < 0 {
			frac = -frac
			if m/1000 == 0 {
				s = "-" + s
			}
		}
		f := strconv.FormatInt(int64(frac)+1000, 10)[1:] // 3 digits, left-padded
		f = strings.TrimRight(f, "0")
		s = s + "." + f
	}
	return s
}

// ---------------------------------------------------------------------------

// ParseDimen parses a CSS dimension term, e.g. "100px", "-1.5em",
// "50%", "auto". Numbers are read with at most three fractional
// digits; further digits are dropped. Bare numbers other than "0" are
// not legal dimensions.
func ParseDimen(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return DimenT{}, fmt.Errorf("Empty dimension")
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "none":
		return None(), nil
	case "min-content":
		return MinContent(), nil
	case "max-content":
		return MaxContent(), nil
	case "fit-content":
		return DimenT{flags: DimenContentFit}, nil
	}
	milli, unit, err := splitNumeric(s)
	if err != nil {
		return DimenT{}, err
	}
	switch unit {
	case "px":
		return JustDimen(dimen.DU(int64(milli) * int64(PX) / 1000)), nil
	case "pt":
		return JustDimen(dimen.DU(int64(milli) * int64(dimen.PT) / 1000)), nil
	case "in":
		return JustDimen(dimen.DU(int64(milli) * int64(IN) / 1000)), nil
	case "cm":
		return JustDimen(dimen.DU(int64(milli) * int64(CM) / 1000)), nil
	case "mm":
		return JustDimen(dimen.DU(int64(milli) * int64(MM) / 1000)), nil
	case "%":
		d := Percentage(FromInt(int(milli / 1000)))
		d.d = dimen.DU(milli) // keep sub-percent precision
		return d, nil
	case "em":
		return Em(milli), nil
	case "rem":
		return Rem(milli), nil
	case "vw":
		return Vw(milli), nil
	case "vh":
		return Vh(milli), nil
	case "vmin":
		return Vmin(milli), nil
	case "vmax":
		return Vmax(milli), nil
	case "ex":
		return DimenT{d: dimen.DU(milli), flags: dimenEX}, nil
	case "ch":
		return DimenT{d: dimen.DU(milli), flags: dimenCH}, nil
	case "":
		if milli == 0 {
			return JustDimen(0), nil
		}
		return DimenT{}, fmt.Errorf("Dimension without unit: %q", s)
	}
	return DimenT{}, fmt.Errorf("Unknown dimension unit: %q", unit)
}

// splitNumeric splits a term like "-1.25em" into a thousandths scalar
// (-1250) and a unit suffix ("em").
func splitNumeric(s string) (int32, string, error) {
	i, neg := 0, false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	var whole, frac, fracDigits int64
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		whole = whole*10 + int64(s[i]-'0')
		digits++
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			if fracDigits < 3 {
				frac = frac*10 + int64(s[i]-'0')
				fracDigits++
			}
			digits++
			i++
		}
	}
	if digits == 0 {
		return 0, "", fmt.Errorf("Not a dimension: %q", s)
	}
	for fracDigits < 3 {
		frac *= 10
		fracDigits++
	}
	milli := whole*1000 + frac
	if neg {
		milli = -milli
	}
	if milli > math.MaxInt32 {
		milli = math.MaxInt32
	} else if milli < math.MinInt32 {
		milli = math.MinInt32
	}
	return int32(milli), s[i:], nil
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&dimenPercent > 0) != (d.flags&dimenPercent > 0) {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *Percent) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	None    T
	Just    T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenInherit:
		return patterns.Inherit
	case dimenInitial:
		return patterns.Initial
	case dimenNone:
		return patterns.None
	case dimenAbsolute:
		if m.dimen.flags&relativeMask == 0 {
			return patterns.Just
		}
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
