package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"

	"github.com/npillmayer/cascade/css"
)

// PropertyID is the dense numeric identity of a style property.
// Everything keys off this number: declaration lists sort by it, the
// static metadata tables (inheritance, initial value, compact tier) are
// indexed by it, and the compact cache routes on it. The numbering is
// therefore frozen: new properties are appended at the end, never
// inserted in the middle.
type PropertyID uint8

// NoProperty signals the absence of a property, e.g. for an unknown
// property name.
const NoProperty PropertyID = 0xff

// Enum values for type PropertyID.
const (
	PropColor PropertyID = iota // CSS key is "color"
	PropFontSize
	PropFontFamily
	PropTextAlign
	PropLetterSpacing
	PropLineHeight
	PropWordSpacing
	PropTabSize
	PropWhiteSpace
	PropHyphens
	PropDirection
	PropCursor
	PropDisplay
	PropFloat
	PropBoxSizing
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropPosition
	PropTop
	PropRight
	PropLeft
	PropBottom
	PropFlexWrap
	PropFlexDirection
	PropFlexGrow
	PropFlexShrink
	PropJustifyContent
	PropAlignItems
	PropAlignContent
	PropBackground // background content: image, gradient, …
	PropBackgroundPosition
	PropBackgroundSize
	PropBackgroundRepeat
	PropOverflowX
	PropOverflowY
	PropPaddingTop
	PropPaddingLeft
	PropPaddingRight
	PropPaddingBottom
	PropMarginTop
	PropMarginLeft
	PropMarginRight
	PropMarginBottom
	PropBorderTopLeftRadius
	PropBorderTopRightRadius
	PropBorderBottomLeftRadius
	PropBorderBottomRightRadius
	PropBorderTopColor
	PropBorderRightColor
	PropBorderLeftColor
	PropBorderBottomColor
	PropBorderTopStyle
	PropBorderRightStyle
	PropBorderLeftStyle
	PropBorderBottomStyle
	PropBorderTopWidth
	PropBorderRightWidth
	PropBorderLeftWidth
	PropBorderBottomWidth
	PropBoxShadowLeft
	PropBoxShadowRight
	PropBoxShadowTop
	PropBoxShadowBottom
	PropScrollbarStyle
	PropOpacity
	PropTransform
	PropTransformOrigin
	PropPerspectiveOrigin
	PropBackfaceVisibility
	PropMixBlendMode
	PropFilter
	PropBackdropFilter
	PropTextShadow

	// Appended block. Order within the block is frozen as well.
	PropFontWeight
	PropFontStyle
	PropFontVariant
	PropFontStretch
	PropWritingMode
	PropClear
	PropVisibility
	PropVerticalAlign
	PropBorderCollapse
	PropBorderSpacingH // horizontal part of border-spacing
	PropBorderSpacingV // vertical part of border-spacing
	PropZIndex
	PropFlexBasis
	PropOrder
	PropRowGap
	PropColumnGap
	PropBackgroundColor
	PropBackgroundClip
	PropBackgroundOrigin
	PropBackgroundAttachment
	PropTextIndent
	PropTextTransform
	PropTextOverflow
	PropTextDecorationLine
	PropTextDecorationColor
	PropTextDecorationStyle
	PropUnicodeBidi
	PropWordBreak
	PropOverflowWrap
	PropCaptionSide
	PropEmptyCells
	PropTableLayout
	PropListStyleType
	PropListStylePosition
	PropListStyleImage
	PropQuotes
	PropContent
	PropCounterReset
	PropCounterIncrement
	PropOutlineColor
	PropOutlineStyle
	PropOutlineWidth
	PropOutlineOffset
	PropObjectFit
	PropObjectPosition
	PropPointerEvents
	PropUserSelect
	PropResize
	PropFlowInto
	PropFlowFrom
	PropOrphans
	PropWidows
	PropPageBreakBefore
	PropPageBreakAfter
	PropPageBreakInside
	PropColumnCount
	PropColumnWidth
	PropColumnRuleColor
	PropColumnRuleStyle
	PropColumnRuleWidth
	PropColumnSpan
	PropAspectRatio
	PropGridTemplateRows
	PropGridTemplateColumns
	PropGridAutoRows
	PropGridAutoColumns
	PropGridAutoFlow
	PropGridRowStart
	PropGridRowEnd
	PropGridColumnStart
	PropGridColumnEnd

	numProperties // must stay last
)

// NumProperties is the number of known style properties.
const NumProperties = int(numProperties)

var propertyNames = [numProperties]string{
	PropColor:                   "color",
	PropFontSize:                "font-size",
	PropFontFamily:              "font-family",
	PropTextAlign:               "text-align",
	PropLetterSpacing:           "letter-spacing",
	PropLineHeight:              "line-height",
	PropWordSpacing:             "word-spacing",
	PropTabSize:                 "tab-size",
	PropWhiteSpace:              "white-space",
	PropHyphens:                 "hyphens",
	PropDirection:               "direction",
	PropCursor:                  "cursor",
	PropDisplay:                 "display",
	PropFloat:                   "float",
	PropBoxSizing:               "box-sizing",
	PropWidth:                   "width",
	PropHeight:                  "height",
	PropMinWidth:                "min-width",
	PropMinHeight:               "min-height",
	PropMaxWidth:                "max-width",
	PropMaxHeight:               "max-height",
	PropPosition:                "position",
	PropTop:                     "top",
	PropRight:                   "right",
	PropLeft:                    "left",
	PropBottom:                  "bottom",
	PropFlexWrap:                "flex-wrap",
	PropFlexDirection:           "flex-direction",
	PropFlexGrow:                "flex-grow",
	PropFlexShrink:              "flex-shrink",
	PropJustifyContent:          "justify-content",
	PropAlignItems:              "align-items",
	PropAlignContent:            "align-content",
	PropBackground:              "background",
	PropBackgroundPosition:      "background-position",
	PropBackgroundSize:          "background-size",
	PropBackgroundRepeat:        "background-repeat",
	PropOverflowX:               "overflow-x",
	PropOverflowY:               "overflow-y",
	PropPaddingTop:              "padding-top",
	PropPaddingLeft:             "padding-left",
	PropPaddingRight:            "padding-right",
	PropPaddingBottom:           "padding-bottom",
	PropMarginTop:               "margin-top",
	PropMarginLeft:              "margin-left",
	PropMarginRight:             "margin-right",
	PropMarginBottom:            "margin-bottom",
	PropBorderTopLeftRadius:     "border-top-left-radius",
	PropBorderTopRightRadius:    "border-top-right-radius",
	PropBorderBottomLeftRadius:  "border-bottom-left-radius",
	PropBorderBottomRightRadius: "border-bottom-right-radius",
	PropBorderTopColor:          "border-top-color",
	PropBorderRightColor:        "border-right-color",
	PropBorderLeftColor:         "border-left-color",
	PropBorderBottomColor:       "border-bottom-color",
	PropBorderTopStyle:          "border-top-style",
	PropBorderRightStyle:        "border-right-style",
	PropBorderLeftStyle:         "border-left-style",
	PropBorderBottomStyle:       "border-bottom-style",
	PropBorderTopWidth:          "border-top-width",
	PropBorderRightWidth:        "border-right-width",
	PropBorderLeftWidth:         "border-left-width",
	PropBorderBottomWidth:       "border-bottom-width",
	PropBoxShadowLeft:           "box-shadow-left",
	PropBoxShadowRight:          "box-shadow-right",
	PropBoxShadowTop:            "box-shadow-top",
	PropBoxShadowBottom:         "box-shadow-bottom",
	PropScrollbarStyle:          "scrollbar-style",
	PropOpacity:                 "opacity",
	PropTransform:               "transform",
	PropTransformOrigin:         "transform-origin",
	PropPerspectiveOrigin:       "perspective-origin",
	PropBackfaceVisibility:      "backface-visibility",
	PropMixBlendMode:            "mix-blend-mode",
	PropFilter:                  "filter",
	PropBackdropFilter:          "backdrop-filter",
	PropTextShadow:              "text-shadow",
	PropFontWeight:              "font-weight",
	PropFontStyle:               "font-style",
	PropFontVariant:             "font-variant",
	PropFontStretch:             "font-stretch",
	PropWritingMode:             "writing-mode",
	PropClear:                   "clear",
	PropVisibility:              "visibility",
	PropVerticalAlign:           "vertical-align",
	PropBorderCollapse:          "border-collapse",
	PropBorderSpacingH:          "border-spacing-h",
	PropBorderSpacingV:          "border-spacing-v",
	PropZIndex:                  "z-index",
	PropFlexBasis:               "flex-basis",
	PropOrder:                   "order",
	PropRowGap:                  "row-gap",
	PropColumnGap:               "column-gap",
	PropBackgroundColor:         "background-color",
	PropBackgroundClip:          "background-clip",
	PropBackgroundOrigin:        "background-origin",
	PropBackgroundAttachment:    "background-attachment",
	PropTextIndent:              "text-indent",
	PropTextTransform:           "text-transform",
	PropTextOverflow:            "text-overflow",
	PropTextDecorationLine:      "text-decoration-line",
	PropTextDecorationColor:     "text-decoration-color",
	PropTextDecorationStyle:     "text-decoration-style",
	PropUnicodeBidi:             "unicode-bidi",
	PropWordBreak:               "word-break",
	PropOverflowWrap:            "overflow-wrap",
	PropCaptionSide:             "caption-side",
	PropEmptyCells:              "empty-cells",
	PropTableLayout:             "table-layout",
	PropListStyleType:           "list-style-type",
	PropListStylePosition:       "list-style-position",
	PropListStyleImage:          "list-style-image",
	PropQuotes:                  "quotes",
	PropContent:                 "content",
	PropCounterReset:            "counter-reset",
	PropCounterIncrement:        "counter-increment",
	PropOutlineColor:            "outline-color",
	PropOutlineStyle:            "outline-style",
	PropOutlineWidth:            "outline-width",
	PropOutlineOffset:           "outline-offset",
	PropObjectFit:               "object-fit",
	PropObjectPosition:          "object-position",
	PropPointerEvents:           "pointer-events",
	PropUserSelect:              "user-select",
	PropResize:                  "resize",
	PropFlowInto:                "flow-into",
	PropFlowFrom:                "flow-from",
	PropOrphans:                 "orphans",
	PropWidows:                  "widows",
	PropPageBreakBefore:         "page-break-before",
	PropPageBreakAfter:          "page-break-after",
	PropPageBreakInside:         "page-break-inside",
	PropColumnCount:             "column-count",
	PropColumnWidth:             "column-width",
	PropColumnRuleColor:         "column-rule-color",
	PropColumnRuleStyle:         "column-rule-style",
	PropColumnRuleWidth:         "column-rule-width",
	PropColumnSpan:              "column-span",
	PropAspectRatio:             "aspect-ratio",
	PropGridTemplateRows:        "grid-template-rows",
	PropGridTemplateColumns:     "grid-template-columns",
	PropGridAutoRows:            "grid-auto-rows",
	PropGridAutoColumns:         "grid-auto-columns",
	PropGridAutoFlow:            "grid-auto-flow",
	PropGridRowStart:            "grid-row-start",
	PropGridRowEnd:              "grid-row-end",
	PropGridColumnStart:         "grid-column-start",
	PropGridColumnEnd:           "grid-column-end",
}

// propertyByName additionally carries alternate spellings, e.g.
// "tab-width" for tab-size.
var propertyByName = make(map[string]PropertyID, NumProperties+4)

func init() {
	for id, name := range propertyNames {
		propertyByName[name] = PropertyID(id)
	}
	propertyByName["tab-width"] = PropTabSize
	propertyByName["word-wrap"] = PropOverflowWrap
	propertyByName["grid-row-gap"] = PropRowGap
	propertyByName["grid-column-gap"] = PropColumnGap
}

// ParseProperty maps a CSS property name to its PropertyID. Names are
// matched case-insensitively.
func ParseProperty(name string) (PropertyID, bool) {
	id, ok := propertyByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return NoProperty, false
	}
	return id, true
}

// String returns the CSS property name, e.g. "margin-top".
func (p PropertyID) String() string {
	if p < numProperties {
		return propertyNames[p]
	}
	return "#" + strconv.Itoa(int(p))
}

// ---------------------------------------------------------------------------

// IsInheritable returns true if the property propagates from parent to
// child when a node does not declare it itself. This is the CSS notion
// of inherited properties, with percentages and font-relative values
// resolving against the parent before they travel down.
func (p PropertyID) IsInheritable() bool {
	return p < numProperties && inheritable[p]
}

var inheritable = [numProperties]bool{
	PropColor:             true,
	PropFontSize:          true,
	PropFontFamily:        true,
	PropFontWeight:        true,
	PropFontStyle:         true,
	PropFontVariant:       true,
	PropFontStretch:       true,
	PropTextAlign:         true,
	PropTextIndent:        true,
	PropTextTransform:     true,
	PropLetterSpacing:     true,
	PropLineHeight:        true,
	PropWordSpacing:       true,
	PropTabSize:           true,
	PropWhiteSpace:        true,
	PropHyphens:           true,
	PropDirection:         true,
	PropWritingMode:       true,
	PropCursor:            true,
	PropVisibility:        true,
	PropWordBreak:         true,
	PropOverflowWrap:      true,
	PropBorderCollapse:    true,
	PropBorderSpacingH:    true,
	PropBorderSpacingV:    true,
	PropCaptionSide:       true,
	PropEmptyCells:        true,
	PropListStyleType:     true,
	PropListStylePosition: true,
	PropListStyleImage:    true,
	PropQuotes:            true,
	PropPointerEvents:     true,
	PropOrphans:           true,
	PropWidows:            true,
}

// ---------------------------------------------------------------------------

// PropertySet is a bit set over PropertyID. The cascade uses it to mask
// properties a stronger source has already claimed for a node.
type PropertySet [4]uint64

// Add sets the bit for p.
func (s *PropertySet) Add(p PropertyID) {
	s[p>>6] |= 1 << (p & 63)
}

// Has returns true if the bit for p is set.
func (s *PropertySet) Has(p PropertyID) bool {
	return s[p>>6]&(1<<(p&63)) != 0
}

// Clear resets the set.
func (s *PropertySet) Clear() {
	*s = PropertySet{}
}

// ---------------------------------------------------------------------------

// CompactTier routes a property to its backing store in the compact
// property cache.
type CompactTier uint8

// Enum values for type CompactTier.
const (
	TierSlow  CompactTier = iota // resolved records only, no compact slot
	TierFlags                    // packed keyword word
	TierBox                      // box model block
	TierText                     // text block
)

func (t CompactTier) String() string {
	switch t {
	case TierFlags:
		return "flags"
	case TierBox:
		return "box"
	case TierText:
		return "text"
	}
	return "slow"
}

// Tier returns the compact cache tier responsible for a property.
func (p PropertyID) Tier() CompactTier {
	switch p {
	case PropDisplay, PropPosition, PropFloat, PropOverflowX, PropOverflowY,
		PropBoxSizing, PropFlexDirection, PropFlexWrap, PropJustifyContent,
		PropAlignItems, PropAlignContent, PropWritingMode, PropClear,
		PropFontWeight, PropFontStyle, PropTextAlign, PropVisibility,
		PropWhiteSpace, PropDirection, PropVerticalAlign, PropBorderCollapse:
		return TierFlags
	case PropWidth, PropHeight, PropMinWidth, PropMaxWidth, PropMinHeight,
		PropMaxHeight, PropFlexBasis, PropFontSize,
		PropBorderTopColor, PropBorderRightColor, PropBorderBottomColor,
		PropBorderLeftColor,
		PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft,
		PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft,
		PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth,
		PropBorderLeftWidth,
		PropTop, PropRight, PropBottom, PropLeft,
		PropBorderSpacingH, PropBorderSpacingV, PropTabSize,
		PropFlexGrow, PropFlexShrink, PropZIndex,
		PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle,
		PropBorderLeftStyle:
		return TierBox
	case PropColor, PropFontFamily, PropLineHeight, PropLetterSpacing,
		PropWordSpacing, PropTextIndent:
		return TierText
	}
	return TierSlow
}

// ---------------------------------------------------------------------------

// InitialValue returns the value a property assumes when neither the
// cascade nor inheritance supplies one. Lookup is total; unknown IDs
// yield an empty value.
//
// Initial values follow the CSS specification, with two pragmatic
// choices: border widths are initially 0 (the used value with the
// initial border-style of none), and line-height "normal" is the
// number 1.2.
func (p PropertyID) InitialValue() css.Value {
	if p >= numProperties {
		return css.Value{}
	}
	return initialValues[p]
}

var initialValues = [numProperties]css.Value{
	PropColor:                   css.ColorValue(css.Black),
	PropFontSize:                css.DimenValue(css.JustDimen(16 * css.PX)),
	PropFontFamily:              css.Text("serif"),
	PropTextAlign:               css.Keyword(css.TextAlignLeft),
	PropLetterSpacing:           css.DimenValue(css.JustDimen(0)),
	PropLineHeight:              css.Number(1200),
	PropWordSpacing:             css.DimenValue(css.JustDimen(0)),
	PropTabSize:                 css.Number(8000),
	PropWhiteSpace:              css.Keyword(css.WhiteSpaceNormal),
	PropHyphens:                 css.Text("manual"),
	PropDirection:               css.Keyword(css.DirectionLTR),
	PropCursor:                  css.ValueAuto,
	PropDisplay:                 css.Keyword(css.DisplayInline),
	PropFloat:                   css.Keyword(css.FloatNone),
	PropBoxSizing:               css.Keyword(css.ContentBox),
	PropWidth:                   css.ValueAuto,
	PropHeight:                  css.ValueAuto,
	PropMinWidth:                css.ValueAuto,
	PropMinHeight:               css.ValueAuto,
	PropMaxWidth:                css.ValueNone,
	PropMaxHeight:               css.ValueNone,
	PropPosition:                css.Keyword(css.PositionStatic),
	PropTop:                     css.ValueAuto,
	PropRight:                   css.ValueAuto,
	PropLeft:                    css.ValueAuto,
	PropBottom:                  css.ValueAuto,
	PropFlexWrap:                css.Keyword(css.NoWrap),
	PropFlexDirection:           css.Keyword(css.FlexRow),
	PropFlexGrow:                css.Number(0),
	PropFlexShrink:              css.Number(1000),
	PropJustifyContent:          css.Keyword(css.JustifyFlexStart),
	PropAlignItems:              css.Keyword(css.AlignItemsStretch),
	PropAlignContent:            css.Keyword(css.AlignContentStretch),
	PropBackground:              css.ValueNone,
	PropBackgroundPosition:      css.Text("0% 0%"),
	PropBackgroundSize:          css.ValueAuto,
	PropBackgroundRepeat:        css.Text("repeat"),
	PropOverflowX:               css.Keyword(css.OverflowVisible),
	PropOverflowY:               css.Keyword(css.OverflowVisible),
	PropPaddingTop:              css.DimenValue(css.JustDimen(0)),
	PropPaddingLeft:             css.DimenValue(css.JustDimen(0)),
	PropPaddingRight:            css.DimenValue(css.JustDimen(0)),
	PropPaddingBottom:           css.DimenValue(css.JustDimen(0)),
	PropMarginTop:               css.DimenValue(css.JustDimen(0)),
	PropMarginLeft:              css.DimenValue(css.JustDimen(0)),
	PropMarginRight:             css.DimenValue(css.JustDimen(0)),
	PropMarginBottom:            css.DimenValue(css.JustDimen(0)),
	PropBorderTopLeftRadius:     css.DimenValue(css.JustDimen(0)),
	PropBorderTopRightRadius:    css.DimenValue(css.JustDimen(0)),
	PropBorderBottomLeftRadius:  css.DimenValue(css.JustDimen(0)),
	PropBorderBottomRightRadius: css.DimenValue(css.JustDimen(0)),
	PropBorderTopColor:          css.Text("currentcolor"),
	PropBorderRightColor:        css.Text("currentcolor"),
	PropBorderLeftColor:         css.Text("currentcolor"),
	PropBorderBottomColor:       css.Text("currentcolor"),
	PropBorderTopStyle:          css.Keyword(css.BorderStyleNone),
	PropBorderRightStyle:        css.Keyword(css.BorderStyleNone),
	PropBorderLeftStyle:         css.Keyword(css.BorderStyleNone),
	PropBorderBottomStyle:       css.Keyword(css.BorderStyleNone),
	PropBorderTopWidth:          css.DimenValue(css.JustDimen(0)),
	PropBorderRightWidth:        css.DimenValue(css.JustDimen(0)),
	PropBorderLeftWidth:         css.DimenValue(css.JustDimen(0)),
	PropBorderBottomWidth:       css.DimenValue(css.JustDimen(0)),
	PropBoxShadowLeft:           css.ValueNone,
	PropBoxShadowRight:          css.ValueNone,
	PropBoxShadowTop:            css.ValueNone,
	PropBoxShadowBottom:         css.ValueNone,
	PropScrollbarStyle:          css.ValueAuto,
	PropOpacity:                 css.Number(1000),
	PropTransform:               css.ValueNone,
	PropTransformOrigin:         css.Text("50% 50%"),
	PropPerspectiveOrigin:       css.Text("50% 50%"),
	PropBackfaceVisibility:      css.Text("visible"),
	PropMixBlendMode:            css.Text("normal"),
	PropFilter:                  css.ValueNone,
	PropBackdropFilter:          css.ValueNone,
	PropTextShadow:              css.ValueNone,
	PropFontWeight:              css.Keyword(css.FontWeightNormal),
	PropFontStyle:               css.Keyword(css.FontStyleNormal),
	PropFontVariant:             css.Text("normal"),
	PropFontStretch:             css.Text("normal"),
	PropWritingMode:             css.Keyword(css.HorizontalTB),
	PropClear:                   css.Keyword(css.ClearNone),
	PropVisibility:              css.Keyword(css.VisibilityVisible),
	PropVerticalAlign:           css.Keyword(css.VerticalAlignBaseline),
	PropBorderCollapse:          css.Keyword(css.BorderSeparate),
	PropBorderSpacingH:          css.DimenValue(css.JustDimen(0)),
	PropBorderSpacingV:          css.DimenValue(css.JustDimen(0)),
	PropZIndex:                  css.ValueAuto,
	PropFlexBasis:               css.ValueAuto,
	PropOrder:                   css.Number(0),
	PropRowGap:                  css.DimenValue(css.JustDimen(0)),
	PropColumnGap:               css.DimenValue(css.JustDimen(0)),
	PropBackgroundColor:         css.ColorValue(css.Transparent),
	PropBackgroundClip:          css.Text("border-box"),
	PropBackgroundOrigin:        css.Text("padding-box"),
	PropBackgroundAttachment:    css.Text("scroll"),
	PropTextIndent:              css.DimenValue(css.JustDimen(0)),
	PropTextTransform:           css.ValueNone,
	PropTextOverflow:            css.Text("clip"),
	PropTextDecorationLine:      css.ValueNone,
	PropTextDecorationColor:     css.Text("currentcolor"),
	PropTextDecorationStyle:     css.Text("solid"),
	PropUnicodeBidi:             css.Text("normal"),
	PropWordBreak:               css.Text("normal"),
	PropOverflowWrap:            css.Text("normal"),
	PropCaptionSide:             css.Text("top"),
	PropEmptyCells:              css.Text("show"),
	PropTableLayout:             css.ValueAuto,
	PropListStyleType:           css.Text("disc"),
	PropListStylePosition:       css.Text("outside"),
	PropListStyleImage:          css.ValueNone,
	PropQuotes:                  css.ValueAuto,
	PropContent:                 css.Text("normal"),
	PropCounterReset:            css.ValueNone,
	PropCounterIncrement:        css.ValueNone,
	PropOutlineColor:            css.ValueAuto,
	PropOutlineStyle:            css.Keyword(css.BorderStyleNone),
	PropOutlineWidth:            css.DimenValue(css.JustDimen(3 * css.PX)),
	PropOutlineOffset:           css.DimenValue(css.JustDimen(0)),
	PropObjectFit:               css.Text("fill"),
	PropObjectPosition:          css.Text("50% 50%"),
	PropPointerEvents:           css.ValueAuto,
	PropUserSelect:              css.ValueAuto,
	PropResize:                  css.ValueNone,
	PropFlowInto:                css.ValueNone,
	PropFlowFrom:                css.ValueNone,
	PropOrphans:                 css.Number(2000),
	PropWidows:                  css.Number(2000),
	PropPageBreakBefore:         css.ValueAuto,
	PropPageBreakAfter:          css.ValueAuto,
	PropPageBreakInside:         css.ValueAuto,
	PropColumnCount:             css.ValueAuto,
	PropColumnWidth:             css.ValueAuto,
	PropColumnRuleColor:         css.Text("currentcolor"),
	PropColumnRuleStyle:         css.Keyword(css.BorderStyleNone),
	PropColumnRuleWidth:         css.DimenValue(css.JustDimen(3 * css.PX)),
	PropColumnSpan:              css.ValueNone,
	PropAspectRatio:             css.ValueAuto,
	PropGridTemplateRows:        css.ValueNone,
	PropGridTemplateColumns:     css.ValueNone,
	PropGridAutoRows:            css.ValueAuto,
	PropGridAutoColumns:         css.ValueAuto,
	PropGridAutoFlow:            css.Text("row"),
	PropGridRowStart:            css.ValueAuto,
	PropGridRowEnd:              css.ValueAuto,
	PropGridColumnStart:         css.ValueAuto,
	PropGridColumnEnd:           css.ValueAuto,
}
