package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'tyse.dom'
func tracer() tracing.Trace {
	return tracing.Select("tyse.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
//
// Typed interpretation of a raw property is the business of
// ParseValue, which maps a Property to a css.Value for a given
// PropertyID.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Shorthand properties ---------------------------------------------

// shorthandTargets maps a CSS shorthand property to the longhand keys
// it distributes over. The lists double as the distribution targets for
// the global keywords (inherit, initial, unset), which always apply to
// every longhand of a shorthand.
var shorthandTargets = map[string][]string{
	"margin":        {"margin-top", "margin-right", "margin-bottom", "margin-left"},
	"padding":       {"padding-top", "padding-right", "padding-bottom", "padding-left"},
	"inset":         {"top", "right", "bottom", "left"},
	"border-color":  {"border-top-color", "border-right-color", "border-bottom-color", "border-left-color"},
	"border-width":  {"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"},
	"border-style":  {"border-top-style", "border-right-style", "border-bottom-style", "border-left-style"},
	"border-radius": {"border-top-left-radius", "border-top-right-radius", "border-bottom-right-radius", "border-bottom-left-radius"},
	"border": {
		"border-top-width", "border-right-width", "border-bottom-width", "border-left-width",
		"border-top-style", "border-right-style", "border-bottom-style", "border-left-style",
		"border-top-color", "border-right-color", "border-bottom-color", "border-left-color",
	},
	"border-top":      {"border-top-width", "border-top-style", "border-top-color"},
	"border-right":    {"border-right-width", "border-right-style", "border-right-color"},
	"border-bottom":   {"border-bottom-width", "border-bottom-style", "border-bottom-color"},
	"border-left":     {"border-left-width", "border-left-style", "border-left-color"},
	"overflow":        {"overflow-x", "overflow-y"},
	"border-spacing":  {"border-spacing-h", "border-spacing-v"},
	"gap":             {"row-gap", "column-gap"},
	"flex":            {"flex-grow", "flex-shrink", "flex-basis"},
	"flex-flow":       {"flex-direction", "flex-wrap"},
	"box-shadow":      {"box-shadow-top", "box-shadow-right", "box-shadow-bottom", "box-shadow-left"},
	"background":      {"background-color", "background"},
	"text-decoration": {"text-decoration-line", "text-decoration-style", "text-decoration-color"},
	"list-style":      {"list-style-type", "list-style-position", "list-style-image"},
	"outline":         {"outline-width", "outline-style", "outline-color"},
	"column-rule":     {"column-rule-width", "column-rule-style", "column-rule-color"},
}

// IsShorthand returns true for CSS shorthand properties, which have to
// be split into longhands by SplitCompoundProperty before they enter a
// declaration list.
func IsShorthand(key string) bool {
	_, ok := shorthandTargets[strings.ToLower(key)]
	return ok
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitCompoundProperty("padding", "3px")
//
// will return
//
//	"padding-top"    => "3px"
//	"padding-right"  => "3px"
//	"padding-bottom" => "3px"
//	"padding-left"   => "3px"
//
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	key = strings.ToLower(key)
	targets, ok := shorthandTargets[key]
	if !ok {
		return nil, fmt.Errorf("Not recognized as compound property: %s", key)
	}
	fields := strings.Fields(strings.ToLower(value.String()))
	if len(fields) == 1 {
		switch fields[0] {
		case "inherit", "initial", "unset":
			return distribute(targets, Property(fields[0])), nil
		}
	}
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "inset":
		return feazeCompound4("", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	case "border", "border-top", "border-right", "border-bottom", "border-left":
		return feazeEdge(key, fields)
	case "outline", "column-rule":
		return feazeEdge(key, fields)
	case "overflow":
		return feazePair(targets, fields)
	case "border-spacing":
		return feazePair(targets, fields)
	case "gap":
		return feazePair(targets, fields)
	case "flex":
		return feazeFlex(fields)
	case "flex-flow":
		return feazeFlexFlow(fields)
	case "box-shadow":
		// one shadow for all four sides
		return distribute(targets, value), nil
	case "background":
		if _, err := css.ParseColor(strings.ToLower(value.String())); err == nil {
			return []KeyValue{{"background-color", value}}, nil
		}
		return []KeyValue{{"background", value}}, nil
	case "text-decoration":
		return feazeTextDecoration(fields)
	case "list-style":
		return feazeListStyle(fields)
	}
	return nil, fmt.Errorf("Not recognized as compound property: %s", key)
}

func distribute(keys []string, value Property) []KeyValue {
	r := make([]KeyValue, len(keys))
	for i, k := range keys {
		r[i] = KeyValue{k, value}
	}
	return r
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("Expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

// feazePair distributes 1 or 2 values onto a pair of longhands, with a
// single value applying to both (overflow, gap, border-spacing).
func feazePair(targets []string, fields []string) ([]KeyValue, error) {
	switch len(fields) {
	case 1:
		return []KeyValue{
			{targets[0], Property(fields[0])},
			{targets[1], Property(fields[0])},
		}, nil
	case 2:
		return []KeyValue{
			{targets[0], Property(fields[0])},
			{targets[1], Property(fields[1])},
		}, nil
	}
	return nil, fmt.Errorf("Expecting 1-2 values for %s", targets[0])
}

// feazeEdge classifies the fields of a border-like triple shorthand
// (border, border-top, outline, column-rule) into width, style and
// color components. Only components present in the value are emitted.
func feazeEdge(key string, fields []string) ([]KeyValue, error) {
	if len(fields) == 0 || len(fields) > 3 {
		return nil, fmt.Errorf("Expecting 1-3 values for %s", key)
	}
	var width, style, colr string
	for _, f := range fields {
		switch {
		case isBorderStyleKeyword(f):
			style = f
		case isBorderWidthValue(f):
			width = f
		default:
			colr = f
		}
	}
	sides := []string{""}
	prefix := key
	if key == "border" {
		sides = fourDirs[:]
	} else if strings.HasPrefix(key, "border-") {
		sides = []string{strings.TrimPrefix(key, "border-")}
		prefix = "border"
	}
	var r []KeyValue
	for _, side := range sides {
		if width != "" {
			r = append(r, KeyValue{p(prefix, "width", side), Property(width)})
		}
		if style != "" {
			r = append(r, KeyValue{p(prefix, "style", side), Property(style)})
		}
		if colr != "" {
			r = append(r, KeyValue{p(prefix, "color", side), Property(colr)})
		}
	}
	if len(r) == 0 {
		return nil, fmt.Errorf("Expecting 1-3 values for %s", key)
	}
	return r, nil
}

func isBorderStyleKeyword(s string) bool {
	_, ok := css.ParseBorderStyle(s)
	return ok
}

func isBorderWidthValue(s string) bool {
	switch s {
	case "thin", "medium", "thick":
		return true
	}
	_, err := css.ParseDimen(s)
	return err == nil
}

// feazeFlex splits the flex shorthand. The common one-value forms are
//
//	flex: none      =>  0 0 auto
//	flex: auto      =>  1 1 auto
//	flex: <number>  =>  <number> 1 0
//	flex: <basis>   =>  1 1 <basis>
func feazeFlex(fields []string) ([]KeyValue, error) {
	grow, shrink, basis := "0", "1", "auto"
	switch len(fields) {
	case 1:
		switch {
		case fields[0] == "none":
			grow, shrink = "0", "0"
		case fields[0] == "auto":
			grow = "1"
		case isNumber(fields[0]):
			grow, basis = fields[0], "0"
		default:
			grow, basis = "1", fields[0]
		}
	case 2:
		grow = fields[0]
		if isNumber(fields[1]) {
			shrink, basis = fields[1], "0"
		} else {
			basis = fields[1]
		}
	case 3:
		grow, shrink, basis = fields[0], fields[1], fields[2]
	default:
		return nil, fmt.Errorf("Expecting 1-3 values for flex")
	}
	return []KeyValue{
		{"flex-grow", Property(grow)},
		{"flex-shrink", Property(shrink)},
		{"flex-basis", Property(basis)},
	}, nil
}

func isNumber(s string) bool {
	_, err := css.ParseNumber(s)
	return err == nil
}

func feazeFlexFlow(fields []string) ([]KeyValue, error) {
	if len(fields) == 0 || len(fields) > 2 {
		return nil, fmt.Errorf("Expecting 1-2 values for flex-flow")
	}
	var r []KeyValue
	for _, f := range fields {
		if _, ok := css.ParseFlexDirection(f); ok {
			r = append(r, KeyValue{"flex-direction", Property(f)})
		} else if _, ok := css.ParseFlexWrap(f); ok {
			r = append(r, KeyValue{"flex-wrap", Property(f)})
		} else {
			return nil, fmt.Errorf("No valid flex-flow value: %q", f)
		}
	}
	return r, nil
}

func feazeTextDecoration(fields []string) ([]KeyValue, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("Expecting values for text-decoration")
	}
	var r []KeyValue
	for _, f := range fields {
		switch f {
		case "none", "underline", "overline", "line-through":
			r = append(r, KeyValue{"text-decoration-line", Property(f)})
		case "solid", "double", "dotted", "dashed", "wavy":
			r = append(r, KeyValue{"text-decoration-style", Property(f)})
		default:
			r = append(r, KeyValue{"text-decoration-color", Property(f)})
		}
	}
	return r, nil
}

func feazeListStyle(fields []string) ([]KeyValue, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("Expecting values for list-style")
	}
	var r []KeyValue
	for _, f := range fields {
		switch {
		case f == "inside" || f == "outside":
			r = append(r, KeyValue{"list-style-position", Property(f)})
		case strings.HasPrefix(f, "url("):
			r = append(r, KeyValue{"list-style-image", Property(f)})
		default:
			r = append(r, KeyValue{"list-style-type", Property(f)})
		}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if prefix == "" && suffix == "" {
		return tag
	}
	if tag == "" {
		return prefix + "-" + suffix
	}
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
