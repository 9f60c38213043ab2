package css

import (
	"strings"
)

// position is an enum type for the kind of a PositionT.
type position uint16

// Enum values for type position.
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
	positionSticky            // CSS sticky
)

// PositionT is an option type for CSS positioning. It bundles the
// positioning scheme with the box offsets parameterizing it.
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

// PositionOffset is one edge offset of a positioned box.
type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

// Enum values for type PosDir.
const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left)
// into a 4-way slice, ordered by PosDir. Invalid directions are silently
// dropped.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		norm[i].Dir = i
	}
	for _, o := range offsets {
		if o.Dir >= Top && o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

// ZeroOffsets returns (Top, Right, Bottom, Left) = (0, 0, 0, 0)
func ZeroOffsets() []PositionOffset {
	zeros := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		zeros[i].Dir = i
	}
	return zeros
}

/*
type PositionT
	= Unset
	| Static
	| Relative top right bottom left
	| Absolute top right bottom left
	| Fixed    top right bottom left
	| Sticky   top right bottom left
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given optional
// offsets. Offsets may be provided partially or not at all.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional
// offsets. Offsets may be provided partially or not at all.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
// Offsets may be provided partially or not at all.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

// Sticky creates a CSS position of value `sticky`, given optional offsets.
// Offsets may be provided partially or not at all.
func Sticky(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionSticky, offsets: NormalizeOffsets(offsets)}
}

var positionNameMap map[position]string = map[position]string{
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
	positionSticky:   "sticky",
}

func (p PositionT) String() string {
	if name, ok := positionNameMap[p.kind]; ok {
		return name
	}
	return "unset"
}

// PositionOf returns an optional position from a style value, which is
// expected to hold a position keyword. It will never return an error,
// even with illegal input, but instead will then return an unset
// position.
func PositionOf(v Value) PositionT {
	if v.Kind() != KindKeyword {
		return PositionT{}
	}
	switch PositionFromCode(v.KeywordCode()) {
	case PositionStatic:
		return Static()
	case PositionRelative:
		return Relative(nil)
	case PositionAbsolute:
		return Absolute(nil)
	case PositionFixed:
		return Fixed(nil)
	case PositionSticky:
		return Sticky(nil)
	}
	return PositionT{}
}

// ParsePositionT parses a position from a CSS keyword string, returning
// an unset position for anything it does not recognize.
func ParsePositionT(s string) PositionT {
	p, ok := ParsePosition(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		tracer().Debugf("position keyword %q unknown, position stays unset", s)
		return PositionT{}
	}
	return PositionOf(Keyword(p))
}

// ---------------------------------------------------------------------------

func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

type PMatcher struct {
	pos PositionT
}

func (m *PMatcher) IsKind(p PositionT) *PMatcher {
	if m.pos.kind == p.kind {
		return m
	}
	return nil
}

func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	if m.pos.kind == positionAbsolute {
		if o != nil {
			*o = m.pos.offsets
		}
		return m
	}
	return nil
}

func (m *PMatcher) Relative(o *[]PositionOffset) *PMatcher {
	if m.pos.kind == positionRelative {
		if o != nil {
			*o = m.pos.offsets
		}
		return m
	}
	return nil
}

func (m *PMatcher) Fixed(o *[]PositionOffset) *PMatcher {
	if m.pos.kind == positionFixed {
		if o != nil {
			*o = m.pos.offsets
		}
		return m
	}
	return nil
}

func (m *PMatcher) Sticky(o *[]PositionOffset) *PMatcher {
	if m.pos.kind == positionSticky {
		if o != nil {
			*o = m.pos.offsets
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type PositionPatterns[T any] struct {
	Unset    T
	Static   T
	Absolute T
	Relative T
	Fixed    T
	Sticky   T
	Default  T
}

func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended
// to be instantiated using `PositionPattern()` only.
type PMatchExpr[T any] struct {
	pos PositionT
}

func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case positionUnset:
		return patterns.Unset
	case positionStatic:
		return patterns.Static
	case positionAbsolute:
		return patterns.Absolute
	case positionRelative:
		return patterns.Relative
	case positionFixed:
		return patterns.Fixed
	case positionSticky:
		return patterns.Sticky
	}
	return patterns.Default
}

func (m *PMatchExpr[T]) With(o *[]PositionOffset) *PMatchExpr[T] {
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

func (m *PMatchExpr[T]) Const(x T) T {
	return x
}

// ---------------------------------------------------------------------------

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsStatic returns true if p represents a static position.
func (p PositionT) IsStatic() bool {
	return p.kind == positionStatic
}

// IsRelative returns true if p represents a valid relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p represents a valid absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}

// IsSticky returns true if p represents a sticky position.
func (p PositionT) IsSticky() bool {
	return p.kind == positionSticky
}

// Flows returns true if boxes with position p take part in the normal
// flow of their parent's formatting context. Absolute and fixed
// positioning take a box out of flow.
func (p PositionT) Flows() bool {
	switch p.kind {
	case positionAbsolute, positionFixed:
		return false
	}
	return true
}
