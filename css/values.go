package css

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind discriminates the payload of a Value.
type ValueKind uint8

// Enum values for type ValueKind. The zero value marks an empty Value.
const (
	KindEmpty ValueKind = iota
	KindAuto
	KindNone
	KindInherit
	KindInitial
	KindKeyword
	KindDimension
	KindNumber
	KindColor
	KindText
)

// Value is a tagged union over the payload types of CSS properties:
// dimensions, colors, keyword enums, bare numbers and strings, plus the
// global keywords auto, none, inherit and initial. Values are plain
// comparable structs; == is structural equality. The zero Value is
// empty, meaning "no value set".
type Value struct {
	kind    ValueKind
	keyword uint8
	number  int32 // scaled by 1000
	color   Color
	dimen   DimenT
	text    string
}

// The global keyword values.
var (
	ValueAuto    = Value{kind: KindAuto}
	ValueNone    = Value{kind: KindNone}
	ValueInherit = Value{kind: KindInherit}
	ValueInitial = Value{kind: KindInitial}
)

// Keyword wraps a typed keyword enum value (Display, Position, …) as a
// Value.
func Keyword[K ~uint8](code K) Value {
	return Value{kind: KindKeyword, keyword: uint8(code)}
}

// DimenValue wraps a dimension as a Value. Keyword-valued dimensions
// (auto, none, inherit, initial) normalize to the corresponding global
// keyword Value, so that equal meanings compare equal.
func DimenValue(d DimenT) Value {
	switch {
	case d.IsAuto():
		return ValueAuto
	case d.IsNone():
		return ValueNone
	case d.IsInherit():
		return ValueInherit
	case d.IsInitial():
		return ValueInitial
	case d.IsUnset():
		return Value{}
	}
	return Value{kind: KindDimension, dimen: d}
}

// ColorValue wraps a color as a Value.
func ColorValue(c Color) Value {
	return Value{kind: KindColor, color: c}
}

// Number wraps a unit-less number as a Value, scaled by 1000:
// line-height 1.5 is Number(1500), z-index 3 is Number(3000).
func Number(milli int32) Value {
	return Value{kind: KindNumber, number: milli}
}

// Text wraps a string payload (font family lists, counters) as a Value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// ParseNumber parses a bare CSS number into a number Value, e.g. "1.5"
// into Number(1500). Terms with a unit suffix are not bare numbers and
// return an error.
func ParseNumber(s string) (Value, error) {
	milli, unit, err := splitNumeric(strings.TrimSpace(strings.ToLower(s)))
	if err != nil {
		return Value{}, err
	}
	if unit != "" {
		return Value{}, fmt.Errorf("Not a bare number: %q", s)
	}
	return Number(milli), nil
}

// Kind returns the payload discriminator of v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsEmpty returns true for the zero Value.
func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty
}

// KeywordCode returns the enum code of a keyword value. Callers convert
// it back to a typed enum with the *FromCode function matching the
// property, e.g. DisplayFromCode. Returns 0 for non-keyword values.
func (v Value) KeywordCode() uint8 {
	if v.kind != KindKeyword {
		return 0
	}
	return v.keyword
}

// AsDimen returns the dimension payload of v. The global keywords
// reconstitute as keyword-valued dimensions; other non-dimension kinds
// yield an unset DimenT.
func (v Value) AsDimen() DimenT {
	switch v.kind {
	case KindDimension:
		return v.dimen
	case KindAuto:
		return Auto()
	case KindNone:
		return None()
	case KindInherit:
		return Inherit()
	case KindInitial:
		return Initial()
	}
	return DimenT{}
}

// AsColor returns the color payload of v, with ok false for
// non-color values.
func (v Value) AsColor() (Color, bool) {
	if v.kind != KindColor {
		return Color{}, false
	}
	return v.color, true
}

// AsNumber returns the scaled-by-1000 number payload of v, with ok
// false for non-number values.
func (v Value) AsNumber() (int32, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.number, true
}

// AsText returns the string payload of v, with ok false for non-text
// values.
func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

func (v Value) String() string {
	switch v.kind {
	case KindEmpty:
		return "<empty>"
	case KindAuto:
		return "auto"
	case KindNone:
		return "none"
	case KindInherit:
		return "inherit"
	case KindInitial:
		return "initial"
	case KindKeyword:
		return "keyword(" + strconv.Itoa(int(v.keyword)) + ")"
	case KindDimension:
		return v.dimen.String()
	case KindNumber:
		return milliString(v.number)
	case KindColor:
		return v.color.String()
	case KindText:
		return v.text
	}
	return "<invalid>"
}
