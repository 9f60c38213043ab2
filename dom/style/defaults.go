package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/npillmayer/cascade/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// The built-in user-agent stylesheet. It is deliberately small: a
// display type per element kind, the classic typographic defaults for
// headings and emphasis, and the margins browsers give to flow content.
//
// User-agent styling ranks below every author declaration, so these
// values only show through where no stylesheet says anything.

// UserAgentProperty is a single property of the user-agent stylesheet.
type UserAgentProperty struct {
	Prop  PropertyID
	Value css.Value
}

// UserAgentStyles returns the user-agent declarations for an element
// kind, sorted by property. The returned slice is shared and must not
// be modified.
func UserAgentStyles(a atom.Atom) []UserAgentProperty {
	return uaStyles[a]
}

// GetUserAgentDefaultProperty returns the user-agent value for a
// property of an HTML node, or an empty value if the user-agent
// stylesheet is silent about it.
func GetUserAgentDefaultProperty(n *html.Node, id PropertyID) css.Value {
	if n == nil || n.Type != html.ElementNode {
		return css.Value{}
	}
	props := uaStyles[n.DataAtom]
	i := sort.Search(len(props), func(i int) bool { return props[i].Prop >= id })
	if i < len(props) && props[i].Prop == id {
		return props[i].Value
	}
	return css.Value{}
}

// DisplayPropertyForHTMLNode returns the user-agent display type for an
// HTML node. Text nodes and other non-elements do not display as boxes
// of their own.
func DisplayPropertyForHTMLNode(n *html.Node) css.Display {
	if n == nil {
		return css.DisplayNone
	}
	if n.Type == html.DocumentNode {
		return css.DisplayBlock
	}
	if n.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return css.DisplayNone
	}
	if d, ok := displayForAtom[n.DataAtom]; ok {
		return d
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: block",
		n.Data, n.Type)
	return css.DisplayBlock
}

var displayForAtom = map[atom.Atom]css.Display{
	atom.Html:       css.DisplayBlock,
	atom.Body:       css.DisplayBlock,
	atom.Div:        css.DisplayBlock,
	atom.P:          css.DisplayBlock,
	atom.Section:    css.DisplayBlock,
	atom.Aside:      css.DisplayBlock,
	atom.Article:    css.DisplayBlock,
	atom.Header:     css.DisplayBlock,
	atom.Footer:     css.DisplayBlock,
	atom.Nav:        css.DisplayBlock,
	atom.Blockquote: css.DisplayBlock,
	atom.Pre:        css.DisplayBlock,
	atom.Form:       css.DisplayBlock,
	atom.H1:         css.DisplayBlock,
	atom.H2:         css.DisplayBlock,
	atom.H3:         css.DisplayBlock,
	atom.H4:         css.DisplayBlock,
	atom.H5:         css.DisplayBlock,
	atom.H6:         css.DisplayBlock,
	atom.Ol:         css.DisplayBlock,
	atom.Ul:         css.DisplayBlock,
	atom.Li:         css.DisplayListItem,
	atom.Table:      css.DisplayTable,
	atom.Tr:         css.DisplayTableRow,
	atom.Td:         css.DisplayTableCell,
	atom.Th:         css.DisplayTableCell,
	atom.Thead:      css.DisplayTableHeaderGroup,
	atom.Tbody:      css.DisplayTableRowGroup,
	atom.Tfoot:      css.DisplayTableFooterGroup,
	atom.I:          css.DisplayInline,
	atom.B:          css.DisplayInline,
	atom.Em:         css.DisplayInline,
	atom.Strong:     css.DisplayInline,
	atom.Span:       css.DisplayInline,
	atom.A:          css.DisplayInline,
	atom.Code:       css.DisplayInline,
	atom.Head:       css.DisplayNone,
	atom.Style:      css.DisplayNone,
	atom.Script:     css.DisplayNone,
	atom.Title:      css.DisplayNone,
	atom.Meta:       css.DisplayNone,
	atom.Link:       css.DisplayNone,
}

var uaStyles map[atom.Atom][]UserAgentProperty

// heading builds the user-agent styles of a heading element: scaled
// font size, bold weight, symmetric vertical margins.
func heading(size int32, margin int32) []UserAgentProperty {
	return []UserAgentProperty{
		{PropFontSize, css.DimenValue(css.Em(size))},
		{PropMarginTop, css.DimenValue(css.Em(margin))},
		{PropMarginBottom, css.DimenValue(css.Em(margin))},
		{PropFontWeight, css.Keyword(css.FontWeightBold)},
	}
}

func init() {
	uaStyles = map[atom.Atom][]UserAgentProperty{
		atom.Body: {
			{PropMarginTop, css.DimenValue(css.JustDimen(8 * css.PX))},
			{PropMarginRight, css.DimenValue(css.JustDimen(8 * css.PX))},
			{PropMarginBottom, css.DimenValue(css.JustDimen(8 * css.PX))},
			{PropMarginLeft, css.DimenValue(css.JustDimen(8 * css.PX))},
		},
		atom.H1: heading(2000, 670),
		atom.H2: heading(1500, 830),
		atom.H3: heading(1170, 1000),
		atom.H4: heading(1000, 1330),
		atom.H5: heading(830, 1670),
		atom.H6: heading(670, 2330),
		atom.P: {
			{PropMarginTop, css.DimenValue(css.Em(1000))},
			{PropMarginBottom, css.DimenValue(css.Em(1000))},
		},
		atom.Blockquote: {
			{PropMarginTop, css.DimenValue(css.Em(1000))},
			{PropMarginBottom, css.DimenValue(css.Em(1000))},
			{PropMarginLeft, css.DimenValue(css.JustDimen(40 * css.PX))},
			{PropMarginRight, css.DimenValue(css.JustDimen(40 * css.PX))},
		},
		atom.Ul: {
			{PropMarginTop, css.DimenValue(css.Em(1000))},
			{PropMarginBottom, css.DimenValue(css.Em(1000))},
			{PropPaddingLeft, css.DimenValue(css.JustDimen(40 * css.PX))},
		},
		atom.Ol: {
			{PropMarginTop, css.DimenValue(css.Em(1000))},
			{PropMarginBottom, css.DimenValue(css.Em(1000))},
			{PropPaddingLeft, css.DimenValue(css.JustDimen(40 * css.PX))},
		},
		atom.Pre: {
			{PropFontFamily, css.Text("monospace")},
			{PropWhiteSpace, css.Keyword(css.WhiteSpacePre)},
			{PropMarginTop, css.DimenValue(css.Em(1000))},
			{PropMarginBottom, css.DimenValue(css.Em(1000))},
		},
		atom.Code: {
			{PropFontFamily, css.Text("monospace")},
		},
		atom.B: {
			{PropFontWeight, css.Keyword(css.FontWeightBolder)},
		},
		atom.Strong: {
			{PropFontWeight, css.Keyword(css.FontWeightBolder)},
		},
		atom.I: {
			{PropFontStyle, css.Keyword(css.FontStyleItalic)},
		},
		atom.Em: {
			{PropFontStyle, css.Keyword(css.FontStyleItalic)},
		},
		atom.Th: {
			{PropFontWeight, css.Keyword(css.FontWeightBold)},
			{PropTextAlign, css.Keyword(css.TextAlignCenter)},
		},
		atom.Table: {
			{PropBorderSpacingH, css.DimenValue(css.JustDimen(2 * css.PX))},
			{PropBorderSpacingV, css.DimenValue(css.JustDimen(2 * css.PX))},
		},
	}
	// add the display type to every element kind and keep the lists
	// sorted by property, so that lookups can binary-search
	for a, d := range displayForAtom {
		uaStyles[a] = append(uaStyles[a], UserAgentProperty{PropDisplay, css.Keyword(d)})
	}
	for a := range uaStyles {
		props := uaStyles[a]
		sort.Slice(props, func(i, j int) bool { return props[i].Prop < props[j].Prop })
	}
}
