package css

import (
	"strconv"
	"strings"
)

/*
Typed keyword enums for the finite-domain CSS properties. The numeric
order of each enum is the encoding order of the compact property cache
and therefore frozen: new variants go at the end.

Parse* functions map CSS keyword spellings to enum values, *FromCode
functions map cache codes back. Decoding is total: a code outside an
enum's range yields the property's safe fallback instead of an error.
*/

func parseKeyword(names []string, s string) (uint8, bool) {
	s = strings.ToLower(s)
	for i, n := range names {
		if n == s {
			return uint8(i), true
		}
	}
	return 0, false
}

func keywordString(names []string, c uint8) string {
	if int(c) < len(names) {
		return names[c]
	}
	return "#" + strconv.Itoa(int(c))
}

// ---------------------------------------------------------------------------

// Display is an enum type for the CSS display property.
type Display uint8

// Enum values for type Display.
const (
	DisplayNone Display = iota
	DisplayBlock
	DisplayInline
	DisplayInlineBlock
	DisplayFlex
	DisplayInlineFlex
	DisplayTable
	DisplayInlineTable
	DisplayTableRowGroup
	DisplayTableHeaderGroup
	DisplayTableFooterGroup
	DisplayTableRow
	DisplayTableColumnGroup
	DisplayTableColumn
	DisplayTableCell
	DisplayTableCaption
	DisplayFlowRoot
	DisplayListItem
	DisplayRunIn
	DisplayMarker
	DisplayGrid
	DisplayInlineGrid
)

var displayNames = []string{
	"none", "block", "inline", "inline-block", "flex", "inline-flex",
	"table", "inline-table", "table-row-group", "table-header-group",
	"table-footer-group", "table-row", "table-column-group", "table-column",
	"table-cell", "table-caption", "flow-root", "list-item", "run-in",
	"marker", "grid", "inline-grid",
}

func (d Display) String() string {
	return keywordString(displayNames, uint8(d))
}

// ParseDisplay maps a CSS keyword to a display value.
func ParseDisplay(s string) (Display, bool) {
	c, ok := parseKeyword(displayNames, s)
	return Display(c), ok
}

// DisplayFromCode decodes a cache code. Out-of-range codes fall back to
// DisplayBlock.
func DisplayFromCode(c uint8) Display {
	if int(c) >= len(displayNames) {
		return DisplayBlock
	}
	return Display(c)
}

// IsBlockLevel returns true for display values that format as blocks.
//
// A block-level element is defined as (from the CSS spec):
// Block-level elements are those elements of the source document that are
// formatted visually as blocks (e.g., paragraphs).
func (d Display) IsBlockLevel() bool {
	switch d {
	case DisplayBlock, DisplayListItem, DisplayTable, DisplayFlex,
		DisplayGrid, DisplayFlowRoot:
		return true
	}
	return false
}

// IsInlineLevel returns true for display values that participate in an
// inline formatting context.
func (d Display) IsInlineLevel() bool {
	switch d {
	case DisplayInline, DisplayInlineBlock, DisplayInlineFlex,
		DisplayInlineTable, DisplayInlineGrid:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------

// Position is an enum type for the CSS position property.
type Position uint8

// Enum values for type Position.
const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionSticky
)

var positionNames = []string{"static", "relative", "absolute", "fixed", "sticky"}

func (p Position) String() string {
	return keywordString(positionNames, uint8(p))
}

// ParsePosition maps a CSS keyword to a position value.
func ParsePosition(s string) (Position, bool) {
	c, ok := parseKeyword(positionNames, s)
	return Position(c), ok
}

// PositionFromCode decodes a cache code, falling back to PositionStatic.
func PositionFromCode(c uint8) Position {
	if int(c) >= len(positionNames) {
		return PositionStatic
	}
	return Position(c)
}

// ---------------------------------------------------------------------------

// Float is an enum type for the CSS float property.
type Float uint8

// Enum values for type Float.
const (
	FloatLeft Float = iota
	FloatRight
	FloatNone
)

var floatNames = []string{"left", "right", "none"}

func (f Float) String() string {
	return keywordString(floatNames, uint8(f))
}

// ParseFloat maps a CSS keyword to a float value.
func ParseFloat(s string) (Float, bool) {
	c, ok := parseKeyword(floatNames, s)
	return Float(c), ok
}

// FloatFromCode decodes a cache code, falling back to FloatNone.
func FloatFromCode(c uint8) Float {
	if int(c) >= len(floatNames) {
		return FloatNone
	}
	return Float(c)
}

// ---------------------------------------------------------------------------

// Overflow is an enum type for the CSS overflow-x and overflow-y
// properties.
type Overflow uint8

// Enum values for type Overflow.
const (
	OverflowScroll Overflow = iota
	OverflowAuto
	OverflowHidden
	OverflowVisible
	OverflowClip
)

var overflowNames = []string{"scroll", "auto", "hidden", "visible", "clip"}

func (o Overflow) String() string {
	return keywordString(overflowNames, uint8(o))
}

// ParseOverflow maps a CSS keyword to an overflow value.
func ParseOverflow(s string) (Overflow, bool) {
	c, ok := parseKeyword(overflowNames, s)
	return Overflow(c), ok
}

// OverflowFromCode decodes a cache code, falling back to OverflowVisible.
func OverflowFromCode(c uint8) Overflow {
	if int(c) >= len(overflowNames) {
		return OverflowVisible
	}
	return Overflow(c)
}

// ---------------------------------------------------------------------------

// BoxSizing is an enum type for the CSS box-sizing property.
type BoxSizing uint8

// Enum values for type BoxSizing.
const (
	ContentBox BoxSizing = iota
	BorderBox
)

var boxSizingNames = []string{"content-box", "border-box"}

func (b BoxSizing) String() string {
	return keywordString(boxSizingNames, uint8(b))
}

// ParseBoxSizing maps a CSS keyword to a box-sizing value.
func ParseBoxSizing(s string) (BoxSizing, bool) {
	c, ok := parseKeyword(boxSizingNames, s)
	return BoxSizing(c), ok
}

// BoxSizingFromCode decodes a cache code, falling back to ContentBox.
func BoxSizingFromCode(c uint8) BoxSizing {
	if int(c) >= len(boxSizingNames) {
		return ContentBox
	}
	return BoxSizing(c)
}

// ---------------------------------------------------------------------------

// FlexDirection is an enum type for the CSS flex-direction property.
type FlexDirection uint8

// Enum values for type FlexDirection.
const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

var flexDirectionNames = []string{"row", "row-reverse", "column", "column-reverse"}

func (f FlexDirection) String() string {
	return keywordString(flexDirectionNames, uint8(f))
}

// ParseFlexDirection maps a CSS keyword to a flex-direction value.
func ParseFlexDirection(s string) (FlexDirection, bool) {
	c, ok := parseKeyword(flexDirectionNames, s)
	return FlexDirection(c), ok
}

// FlexDirectionFromCode decodes a cache code, falling back to FlexRow.
func FlexDirectionFromCode(c uint8) FlexDirection {
	if int(c) >= len(flexDirectionNames) {
		return FlexRow
	}
	return FlexDirection(c)
}

// ---------------------------------------------------------------------------

// FlexWrap is an enum type for the CSS flex-wrap property.
type FlexWrap uint8

// Enum values for type FlexWrap.
const (
	Wrap FlexWrap = iota
	NoWrap
	WrapReverse
)

var flexWrapNames = []string{"wrap", "nowrap", "wrap-reverse"}

func (f FlexWrap) String() string {
	return keywordString(flexWrapNames, uint8(f))
}

// ParseFlexWrap maps a CSS keyword to a flex-wrap value.
func ParseFlexWrap(s string) (FlexWrap, bool) {
	c, ok := parseKeyword(flexWrapNames, s)
	return FlexWrap(c), ok
}

// FlexWrapFromCode decodes a cache code, falling back to NoWrap.
func FlexWrapFromCode(c uint8) FlexWrap {
	if int(c) >= len(flexWrapNames) {
		return NoWrap
	}
	return FlexWrap(c)
}

// ---------------------------------------------------------------------------

// JustifyContent is an enum type for the CSS justify-content property.
type JustifyContent uint8

// Enum values for type JustifyContent.
const (
	JustifyFlexStart JustifyContent = iota
	JustifyFlexEnd
	JustifyStart
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

var justifyContentNames = []string{
	"flex-start", "flex-end", "start", "end", "center",
	"space-between", "space-around", "space-evenly",
}

func (j JustifyContent) String() string {
	return keywordString(justifyContentNames, uint8(j))
}

// ParseJustifyContent maps a CSS keyword to a justify-content value.
func ParseJustifyContent(s string) (JustifyContent, bool) {
	c, ok := parseKeyword(justifyContentNames, s)
	return JustifyContent(c), ok
}

// JustifyContentFromCode decodes a cache code, falling back to
// JustifyFlexStart.
func JustifyContentFromCode(c uint8) JustifyContent {
	if int(c) >= len(justifyContentNames) {
		return JustifyFlexStart
	}
	return JustifyContent(c)
}

// ---------------------------------------------------------------------------

// AlignItems is an enum type for the CSS align-items property.
type AlignItems uint8

// Enum values for type AlignItems.
const (
	AlignItemsStretch AlignItems = iota
	AlignItemsCenter
	AlignItemsStart
	AlignItemsEnd
	AlignItemsBaseline
)

var alignItemsNames = []string{"stretch", "center", "start", "end", "baseline"}

func (a AlignItems) String() string {
	return keywordString(alignItemsNames, uint8(a))
}

// ParseAlignItems maps a CSS keyword to an align-items value.
func ParseAlignItems(s string) (AlignItems, bool) {
	c, ok := parseKeyword(alignItemsNames, s)
	return AlignItems(c), ok
}

// AlignItemsFromCode decodes a cache code, falling back to
// AlignItemsStretch.
func AlignItemsFromCode(c uint8) AlignItems {
	if int(c) >= len(alignItemsNames) {
		return AlignItemsStretch
	}
	return AlignItems(c)
}

// ---------------------------------------------------------------------------

// AlignContent is an enum type for the CSS align-content property.
type AlignContent uint8

// Enum values for type AlignContent.
const (
	AlignContentStretch AlignContent = iota
	AlignContentCenter
	AlignContentStart
	AlignContentEnd
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

var alignContentNames = []string{
	"stretch", "center", "start", "end", "space-between", "space-around",
}

func (a AlignContent) String() string {
	return keywordString(alignContentNames, uint8(a))
}

// ParseAlignContent maps a CSS keyword to an align-content value.
func ParseAlignContent(s string) (AlignContent, bool) {
	c, ok := parseKeyword(alignContentNames, s)
	return AlignContent(c), ok
}

// AlignContentFromCode decodes a cache code, falling back to
// AlignContentStretch.
func AlignContentFromCode(c uint8) AlignContent {
	if int(c) >= len(alignContentNames) {
		return AlignContentStretch
	}
	return AlignContent(c)
}

// ---------------------------------------------------------------------------

// WritingMode is an enum type for the CSS writing-mode property.
type WritingMode uint8

// Enum values for type WritingMode.
const (
	HorizontalTB WritingMode = iota
	VerticalRL
	VerticalLR
)

var writingModeNames = []string{"horizontal-tb", "vertical-rl", "vertical-lr"}

func (w WritingMode) String() string {
	return keywordString(writingModeNames, uint8(w))
}

// ParseWritingMode maps a CSS keyword to a writing-mode value.
func ParseWritingMode(s string) (WritingMode, bool) {
	c, ok := parseKeyword(writingModeNames, s)
	return WritingMode(c), ok
}

// WritingModeFromCode decodes a cache code, falling back to HorizontalTB.
func WritingModeFromCode(c uint8) WritingMode {
	if int(c) >= len(writingModeNames) {
		return HorizontalTB
	}
	return WritingMode(c)
}

// ---------------------------------------------------------------------------

// Clear is an enum type for the CSS clear property.
type Clear uint8

// Enum values for type Clear.
const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

var clearNames = []string{"none", "left", "right", "both"}

func (c Clear) String() string {
	return keywordString(clearNames, uint8(c))
}

// ParseClear maps a CSS keyword to a clear value.
func ParseClear(s string) (Clear, bool) {
	c, ok := parseKeyword(clearNames, s)
	return Clear(c), ok
}

// ClearFromCode decodes a cache code, falling back to ClearNone.
func ClearFromCode(c uint8) Clear {
	if int(c) >= len(clearNames) {
		return ClearNone
	}
	return Clear(c)
}

// ---------------------------------------------------------------------------

// FontWeight is an enum type for the CSS font-weight property.
type FontWeight uint8

// Enum values for type FontWeight.
const (
	FontWeightLighter FontWeight = iota
	FontWeight100
	FontWeight200
	FontWeight300
	FontWeightNormal
	FontWeight500
	FontWeight600
	FontWeightBold
	FontWeight800
	FontWeight900
	FontWeightBolder
)

var fontWeightNames = []string{
	"lighter", "100", "200", "300", "normal", "500", "600", "bold",
	"800", "900", "bolder",
}

func (f FontWeight) String() string {
	return keywordString(fontWeightNames, uint8(f))
}

// ParseFontWeight maps a CSS keyword or numeric weight to a font-weight
// value. "400" and "700" are the numeric spellings of normal and bold.
func ParseFontWeight(s string) (FontWeight, bool) {
	if c, ok := parseKeyword(fontWeightNames, s); ok {
		return FontWeight(c), true
	}
	switch s {
	case "400":
		return FontWeightNormal, true
	case "700":
		return FontWeightBold, true
	}
	return FontWeightNormal, false
}

// FontWeightFromCode decodes a cache code, falling back to
// FontWeightNormal.
func FontWeightFromCode(c uint8) FontWeight {
	if int(c) >= len(fontWeightNames) {
		return FontWeightNormal
	}
	return FontWeight(c)
}

// ---------------------------------------------------------------------------

// FontStyle is an enum type for the CSS font-style property.
type FontStyle uint8

// Enum values for type FontStyle.
const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

var fontStyleNames = []string{"normal", "italic", "oblique"}

func (f FontStyle) String() string {
	return keywordString(fontStyleNames, uint8(f))
}

// ParseFontStyle maps a CSS keyword to a font-style value.
func ParseFontStyle(s string) (FontStyle, bool) {
	c, ok := parseKeyword(fontStyleNames, s)
	return FontStyle(c), ok
}

// FontStyleFromCode decodes a cache code, falling back to
// FontStyleNormal.
func FontStyleFromCode(c uint8) FontStyle {
	if int(c) >= len(fontStyleNames) {
		return FontStyleNormal
	}
	return FontStyle(c)
}

// ---------------------------------------------------------------------------

// TextAlign is an enum type for the CSS text-align property.
type TextAlign uint8

// Enum values for type TextAlign.
const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
	TextAlignStart
	TextAlignEnd
)

var textAlignNames = []string{"left", "center", "right", "justify", "start", "end"}

func (t TextAlign) String() string {
	return keywordString(textAlignNames, uint8(t))
}

// ParseTextAlign maps a CSS keyword to a text-align value.
func ParseTextAlign(s string) (TextAlign, bool) {
	c, ok := parseKeyword(textAlignNames, s)
	return TextAlign(c), ok
}

// TextAlignFromCode decodes a cache code, falling back to TextAlignLeft.
func TextAlignFromCode(c uint8) TextAlign {
	if int(c) >= len(textAlignNames) {
		return TextAlignLeft
	}
	return TextAlign(c)
}

// ---------------------------------------------------------------------------

// Visibility is an enum type for the CSS visibility property.
type Visibility uint8

// Enum values for type Visibility.
const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
	VisibilityCollapse
)

var visibilityNames = []string{"visible", "hidden", "collapse"}

func (v Visibility) String() string {
	return keywordString(visibilityNames, uint8(v))
}

// ParseVisibility maps a CSS keyword to a visibility value.
func ParseVisibility(s string) (Visibility, bool) {
	c, ok := parseKeyword(visibilityNames, s)
	return Visibility(c), ok
}

// VisibilityFromCode decodes a cache code, falling back to
// VisibilityVisible.
func VisibilityFromCode(c uint8) Visibility {
	if int(c) >= len(visibilityNames) {
		return VisibilityVisible
	}
	return Visibility(c)
}

// ---------------------------------------------------------------------------

// WhiteSpace is an enum type for the CSS white-space property.
type WhiteSpace uint8

// Enum values for type WhiteSpace.
const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpacePre
	WhiteSpaceNowrap
	WhiteSpacePreWrap
	WhiteSpacePreLine
	WhiteSpaceBreakSpaces
)

var whiteSpaceNames = []string{
	"normal", "pre", "nowrap", "pre-wrap", "pre-line", "break-spaces",
}

func (w WhiteSpace) String() string {
	return keywordString(whiteSpaceNames, uint8(w))
}

// ParseWhiteSpace maps a CSS keyword to a white-space value.
func ParseWhiteSpace(s string) (WhiteSpace, bool) {
	c, ok := parseKeyword(whiteSpaceNames, s)
	return WhiteSpace(c), ok
}

// WhiteSpaceFromCode decodes a cache code, falling back to
// WhiteSpaceNormal.
func WhiteSpaceFromCode(c uint8) WhiteSpace {
	if int(c) >= len(whiteSpaceNames) {
		return WhiteSpaceNormal
	}
	return WhiteSpace(c)
}

// ---------------------------------------------------------------------------

// Direction is an enum type for the CSS direction property.
type Direction uint8

// Enum values for type Direction.
const (
	DirectionLTR Direction = iota
	DirectionRTL
)

var directionNames = []string{"ltr", "rtl"}

func (d Direction) String() string {
	return keywordString(directionNames, uint8(d))
}

// ParseDirection maps a CSS keyword to a direction value.
func ParseDirection(s string) (Direction, bool) {
	c, ok := parseKeyword(directionNames, s)
	return Direction(c), ok
}

// DirectionFromCode decodes a cache code, falling back to DirectionLTR.
func DirectionFromCode(c uint8) Direction {
	if int(c) >= len(directionNames) {
		return DirectionLTR
	}
	return Direction(c)
}

// ---------------------------------------------------------------------------

// VerticalAlign is an enum type for the keyword values of the CSS
// vertical-align property. Length and percentage values of
// vertical-align are not part of this enum.
type VerticalAlign uint8

// Enum values for type VerticalAlign.
const (
	VerticalAlignBaseline VerticalAlign = iota
	VerticalAlignTop
	VerticalAlignMiddle
	VerticalAlignBottom
	VerticalAlignSub
	VerticalAlignSuper
	VerticalAlignTextTop
	VerticalAlignTextBottom
)

var verticalAlignNames = []string{
	"baseline", "top", "middle", "bottom", "sub", "super",
	"text-top", "text-bottom",
}

func (v VerticalAlign) String() string {
	return keywordString(verticalAlignNames, uint8(v))
}

// ParseVerticalAlign maps a CSS keyword to a vertical-align value.
func ParseVerticalAlign(s string) (VerticalAlign, bool) {
	c, ok := parseKeyword(verticalAlignNames, s)
	return VerticalAlign(c), ok
}

// VerticalAlignFromCode decodes a cache code, falling back to
// VerticalAlignBaseline.
func VerticalAlignFromCode(c uint8) VerticalAlign {
	if int(c) >= len(verticalAlignNames) {
		return VerticalAlignBaseline
	}
	return VerticalAlign(c)
}

// ---------------------------------------------------------------------------

// BorderCollapse is an enum type for the CSS border-collapse property.
type BorderCollapse uint8

// Enum values for type BorderCollapse.
const (
	BorderSeparate BorderCollapse = iota
	BorderCollapseCollapse
)

var borderCollapseNames = []string{"separate", "collapse"}

func (b BorderCollapse) String() string {
	return keywordString(borderCollapseNames, uint8(b))
}

// ParseBorderCollapse maps a CSS keyword to a border-collapse value.
func ParseBorderCollapse(s string) (BorderCollapse, bool) {
	c, ok := parseKeyword(borderCollapseNames, s)
	return BorderCollapse(c), ok
}

// BorderCollapseFromCode decodes a cache code, falling back to
// BorderSeparate.
func BorderCollapseFromCode(c uint8) BorderCollapse {
	if int(c) >= len(borderCollapseNames) {
		return BorderSeparate
	}
	return BorderCollapse(c)
}

// ---------------------------------------------------------------------------

// BorderStyle is an enum type for the CSS border-style properties
// (border-top-style etc.). Border styles are not part of the packed
// enum word; the cache stores them as 4-bit nibbles per side.
type BorderStyle uint8

// Enum values for type BorderStyle.
const (
	BorderStyleNone BorderStyle = iota
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleHidden
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

var borderStyleNames = []string{
	"none", "solid", "double", "dotted", "dashed", "hidden", "groove",
	"ridge", "inset", "outset",
}

func (b BorderStyle) String() string {
	return keywordString(borderStyleNames, uint8(b))
}

// ParseBorderStyle maps a CSS keyword to a border-style value.
func ParseBorderStyle(s string) (BorderStyle, bool) {
	c, ok := parseKeyword(borderStyleNames, s)
	return BorderStyle(c), ok
}

// BorderStyleFromCode decodes a cache code, falling back to
// BorderStyleNone.
func BorderStyleFromCode(c uint8) BorderStyle {
	if int(c) >= len(borderStyleNames) {
		return BorderStyleNone
	}
	return BorderStyle(c)
}
