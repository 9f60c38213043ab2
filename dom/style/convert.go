package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/cascade/css"
)

// ParseValue interprets a raw declaration value for a given property and
// returns a typed value. Interpretation is per-property: "70%" is a
// dimension for width but just text for background-position, and
// "bolder" is a font weight but nothing else.
//
// The wide-ranging keywords inherit, initial and unset are handled
// uniformly for all properties; unset maps to inherit or initial
// depending on the inheritance behaviour of the property.
//
// Values for properties without a typed representation (font-family,
// transforms, filters, …) pass through as text.
func ParseValue(id PropertyID, p Property) (css.Value, error) {
	raw := strings.TrimSpace(string(p))
	s := strings.ToLower(raw)
	badValue := func() (css.Value, error) {
		return css.Value{}, fmt.Errorf("No valid %s value: %q", id, raw)
	}
	switch s {
	case "":
		return badValue()
	case "inherit":
		return css.ValueInherit, nil
	case "initial":
		return css.ValueInitial, nil
	case "unset":
		if id.IsInheritable() {
			return css.ValueInherit, nil
		}
		return css.ValueInitial, nil
	}
	switch id {
	case PropDisplay:
		if k, ok := css.ParseDisplay(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropPosition:
		if k, ok := css.ParsePosition(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropFloat:
		if k, ok := css.ParseFloat(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropOverflowX, PropOverflowY:
		if k, ok := css.ParseOverflow(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropBoxSizing:
		if k, ok := css.ParseBoxSizing(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropFlexDirection:
		if k, ok := css.ParseFlexDirection(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropFlexWrap:
		if k, ok := css.ParseFlexWrap(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropJustifyContent:
		if k, ok := css.ParseJustifyContent(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropAlignItems:
		if k, ok := css.ParseAlignItems(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropAlignContent:
		if k, ok := css.ParseAlignContent(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropWritingMode:
		if k, ok := css.ParseWritingMode(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropClear:
		if k, ok := css.ParseClear(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropFontWeight:
		if k, ok := css.ParseFontWeight(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropFontStyle:
		if k, ok := css.ParseFontStyle(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropTextAlign:
		if k, ok := css.ParseTextAlign(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropVisibility:
		if k, ok := css.ParseVisibility(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropWhiteSpace:
		if k, ok := css.ParseWhiteSpace(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropDirection:
		if k, ok := css.ParseDirection(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropBorderCollapse:
		if k, ok := css.ParseBorderCollapse(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle,
		PropBorderLeftStyle, PropOutlineStyle, PropColumnRuleStyle:
		if k, ok := css.ParseBorderStyle(s); ok {
			return css.Keyword(k), nil
		}
		return badValue()
	case PropVerticalAlign:
		// keyword or a baseline shift given as length/percentage
		if k, ok := css.ParseVerticalAlign(s); ok {
			return css.Keyword(k), nil
		}
		if d, err := css.ParseDimen(s); err == nil {
			return css.DimenValue(d), nil
		}
		return badValue()
	case PropWidth, PropHeight, PropMinWidth, PropMinHeight, PropMaxWidth,
		PropMaxHeight, PropTop, PropRight, PropLeft, PropBottom,
		PropPaddingTop, PropPaddingLeft, PropPaddingRight, PropPaddingBottom,
		PropMarginTop, PropMarginLeft, PropMarginRight, PropMarginBottom,
		PropBorderTopLeftRadius, PropBorderTopRightRadius,
		PropBorderBottomLeftRadius, PropBorderBottomRightRadius,
		PropFlexBasis, PropBorderSpacingH, PropBorderSpacingV,
		PropTextIndent, PropOutlineOffset, PropColumnWidth:
		d, err := css.ParseDimen(s)
		if err != nil {
			return badValue()
		}
		return css.DimenValue(d), nil
	case PropLetterSpacing, PropWordSpacing, PropRowGap, PropColumnGap:
		if s == "normal" {
			return css.DimenValue(css.JustDimen(0)), nil
		}
		d, err := css.ParseDimen(s)
		if err != nil {
			return badValue()
		}
		return css.DimenValue(d), nil
	case PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth,
		PropBorderLeftWidth, PropOutlineWidth, PropColumnRuleWidth:
		switch s {
		case "thin":
			return css.DimenValue(css.JustDimen(1 * css.PX)), nil
		case "medium":
			return css.DimenValue(css.JustDimen(3 * css.PX)), nil
		case "thick":
			return css.DimenValue(css.JustDimen(5 * css.PX)), nil
		}
		d, err := css.ParseDimen(s)
		if err != nil {
			return badValue()
		}
		return css.DimenValue(d), nil
	case PropFontSize:
		if d, ok := absoluteFontSizes[s]; ok {
			return css.DimenValue(d), nil
		}
		d, err := css.ParseDimen(s)
		if err != nil {
			return badValue()
		}
		return css.DimenValue(d), nil
	case PropLineHeight:
		if s == "normal" {
			return css.ValueInitial, nil
		}
		if n, err := css.ParseNumber(s); err == nil {
			return n, nil
		}
		d, err := css.ParseDimen(s)
		if err != nil {
			return badValue()
		}
		return css.DimenValue(d), nil
	case PropTabSize:
		if n, err := css.ParseNumber(s); err == nil {
			return n, nil
		}
		d, err := css.ParseDimen(s)
		if err != nil {
			return badValue()
		}
		return css.DimenValue(d), nil
	case PropFlexGrow, PropFlexShrink, PropOpacity, PropOrder, PropOrphans,
		PropWidows:
		n, err := css.ParseNumber(s)
		if err != nil {
			return badValue()
		}
		return n, nil
	case PropZIndex, PropColumnCount:
		if s == "auto" {
			return css.ValueAuto, nil
		}
		n, err := css.ParseNumber(s)
		if err != nil {
			return badValue()
		}
		return n, nil
	case PropColor, PropBackgroundColor, PropBorderTopColor,
		PropBorderRightColor, PropBorderBottomColor, PropBorderLeftColor,
		PropTextDecorationColor, PropColumnRuleColor, PropOutlineColor:
		if s == "currentcolor" {
			return css.Text("currentcolor"), nil
		}
		if s == "auto" && id == PropOutlineColor {
			return css.ValueAuto, nil
		}
		c, err := css.ParseColor(s)
		if err != nil {
			return badValue()
		}
		return css.ColorValue(c), nil
	case PropAspectRatio:
		if s == "auto" {
			return css.ValueAuto, nil
		}
		if n, err := css.ParseNumber(s); err == nil {
			return n, nil
		}
		return css.Text(raw), nil
	}
	switch s {
	case "auto":
		return css.ValueAuto, nil
	case "none":
		return css.ValueNone, nil
	}
	return css.Text(raw), nil
}

// absoluteFontSizes maps the CSS absolute-size and relative-size
// keywords for font-size.
var absoluteFontSizes = map[string]css.DimenT{
	"xx-small": css.JustDimen(9 * css.PX),
	"x-small":  css.JustDimen(10 * css.PX),
	"small":    css.JustDimen(13 * css.PX),
	"medium":   css.JustDimen(16 * css.PX),
	"large":    css.JustDimen(18 * css.PX),
	"x-large":  css.JustDimen(24 * css.PX),
	"xx-large": css.JustDimen(32 * css.PX),
	"smaller":  css.Em(833),
	"larger":   css.Em(1200),
}

// Color interprets a property value as a color. An empty or "default"
// value yields nil, signalling callers to fall back to their own
// default.
func (p Property) Color() color.Color {
	switch p {
	case NullStyle, "default":
		return nil
	}
	c, err := css.ParseColor(strings.ToLower(string(p)))
	if err != nil {
		tracer().Infof("Unknown color: %s", p)
		return color.Black
	}
	return c
}

// ColorString returns a CSS color string for c. nil maps to
// "powderblue", making holes easy to spot in rendered debug output.
func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue"
	}
	if cc, ok := c.(css.Color); ok {
		return cc.String()
	}
	r, g, b, _ := c.RGBA()
	return css.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)).String()
}
