package style_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestPropertyNameRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	for i := 0; i < style.NumProperties; i++ {
		p := style.PropertyID(i)
		name := p.String()
		if name == "" || strings.HasPrefix(name, "#") {
			t.Fatalf("expected property %d to have a name, has none", i)
		}
		id, ok := style.ParseProperty(name)
		if !ok || id != p {
			t.Errorf("expected %q to parse back to property %d, is %d", name, i, id)
		}
	}
	if _, ok := style.ParseProperty("no-such-property"); ok {
		t.Errorf("expected unknown property name to be rejected")
	}
	if id, ok := style.ParseProperty(" Margin-Top "); !ok || id != style.PropMarginTop {
		t.Errorf("expected sloppy property name to parse to margin-top, is %v", id)
	}
	if id, ok := style.ParseProperty("tab-width"); !ok || id != style.PropTabSize {
		t.Errorf("expected alternate spelling tab-width to map to tab-size, is %v", id)
	}
}

func TestInheritableProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	inherited := []style.PropertyID{
		style.PropColor, style.PropFontSize, style.PropFontFamily,
		style.PropLineHeight, style.PropLetterSpacing, style.PropTextAlign,
		style.PropVisibility, style.PropWhiteSpace, style.PropBorderCollapse,
		style.PropListStyleType,
	}
	for _, p := range inherited {
		if !p.IsInheritable() {
			t.Errorf("expected %s to be inheritable, is not", p)
		}
	}
	notInherited := []style.PropertyID{
		style.PropDisplay, style.PropWidth, style.PropMarginTop,
		style.PropPosition, style.PropBackgroundColor, style.PropZIndex,
		style.PropVerticalAlign,
	}
	for _, p := range notInherited {
		if p.IsInheritable() {
			t.Errorf("expected %s not to be inheritable, is", p)
		}
	}
}

func TestInitialValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	if v := style.PropDisplay.InitialValue(); v != css.Keyword(css.DisplayInline) {
		t.Errorf("expected initial display to be inline, is %s", v)
	}
	if v := style.PropColor.InitialValue(); v != css.ColorValue(css.Black) {
		t.Errorf("expected initial color to be black, is %s", v)
	}
	if v := style.PropWidth.InitialValue(); v != css.ValueAuto {
		t.Errorf("expected initial width to be auto, is %s", v)
	}
	if v := style.PropLineHeight.InitialValue(); v != css.Number(1200) {
		t.Errorf("expected initial line-height to be the number 1.2, is %s", v)
	}
	for i := 0; i < style.NumProperties; i++ {
		if style.PropertyID(i).InitialValue().IsEmpty() {
			t.Errorf("expected property %s to have an initial value, has none",
				style.PropertyID(i))
		}
	}
}

func TestParseValueKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	v, err := style.ParseValue(style.PropDisplay, "flex")
	if err != nil || v != css.Keyword(css.DisplayFlex) {
		t.Errorf("expected display flex keyword, is %s (%v)", v, err)
	}
	v, err = style.ParseValue(style.PropPosition, "Sticky")
	if err != nil || v != css.Keyword(css.PositionSticky) {
		t.Errorf("expected position sticky keyword, is %s (%v)", v, err)
	}
	v, err = style.ParseValue(style.PropFontWeight, "bold")
	if err != nil || v != css.Keyword(css.FontWeightBold) {
		t.Errorf("expected font-weight bold keyword, is %s (%v)", v, err)
	}
	if _, err = style.ParseValue(style.PropDisplay, "frobnicate"); err == nil {
		t.Errorf("expected malformed display value to be rejected")
	}
}

func TestParseValueDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	v, err := style.ParseValue(style.PropWidth, "50%")
	if err != nil {
		t.Fatalf("cannot parse width 50%%: %v", err)
	}
	if d := v.AsDimen(); !d.IsPercent() {
		t.Errorf("expected width 50%% to be a percentage, is %s", d)
	}
	v, err = style.ParseValue(style.PropBorderTopWidth, "thin")
	if err != nil || v != css.DimenValue(css.JustDimen(1*css.PX)) {
		t.Errorf("expected border width thin to be 1px, is %s (%v)", v, err)
	}
	v, err = style.ParseValue(style.PropLetterSpacing, "normal")
	if err != nil || v != css.DimenValue(css.JustDimen(0)) {
		t.Errorf("expected letter-spacing normal to be 0, is %s (%v)", v, err)
	}
	v, err = style.ParseValue(style.PropLineHeight, "normal")
	if err != nil || v != css.ValueInitial {
		t.Errorf("expected line-height normal to map to initial, is %s (%v)", v, err)
	}
	v, err = style.ParseValue(style.PropFontSize, "x-large")
	if err != nil || v != css.DimenValue(css.JustDimen(24*css.PX)) {
		t.Errorf("expected font-size x-large to be 24px, is %s (%v)", v, err)
	}
	v, err = style.ParseValue(style.PropLineHeight, "1.4")
	if err != nil || v != css.Number(1400) {
		t.Errorf("expected line-height 1.4 to be a number, is %s (%v)", v, err)
	}
}

func TestParseValueGlobals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	v, err := style.ParseValue(style.PropWidth, "inherit")
	if err != nil || v != css.ValueInherit {
		t.Errorf("expected inherit to parse for any property, is %s (%v)", v, err)
	}
	v, err = style.ParseValue(style.PropColor, "unset")
	if err != nil || v != css.ValueInherit {
		t.Errorf("expected unset on an inherited property to be inherit, is %s", v)
	}
	v, err = style.ParseValue(style.PropWidth, "unset")
	if err != nil || v != css.ValueInitial {
		t.Errorf("expected unset on a non-inherited property to be initial, is %s", v)
	}
}

func TestSplitMargin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	kvs, err := style.SplitCompoundProperty("margin", "1em 2px")
	if err != nil {
		t.Fatalf("cannot split margin shorthand: %v", err)
	}
	want := map[string]style.Property{
		"margin-top": "1em", "margin-right": "2px",
		"margin-bottom": "1em", "margin-left": "2px",
	}
	checkSplit(t, kvs, want)
	kvs, err = style.SplitCompoundProperty("margin", "1px 2px 3px")
	if err != nil {
		t.Fatalf("cannot split margin shorthand: %v", err)
	}
	want = map[string]style.Property{
		"margin-top": "1px", "margin-right": "2px",
		"margin-bottom": "3px", "margin-left": "2px",
	}
	checkSplit(t, kvs, want)
}

func TestSplitBorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	kvs, err := style.SplitCompoundProperty("border-top", "2px solid red")
	if err != nil {
		t.Fatalf("cannot split border-top shorthand: %v", err)
	}
	want := map[string]style.Property{
		"border-top-width": "2px", "border-top-style": "solid",
		"border-top-color": "red",
	}
	checkSplit(t, kvs, want)
	kvs, err = style.SplitCompoundProperty("border", "dotted")
	if err != nil {
		t.Fatalf("cannot split border shorthand: %v", err)
	}
	if len(kvs) != 4 {
		t.Fatalf("expected border: dotted to set 4 side styles, sets %d", len(kvs))
	}
	for _, kv := range kvs {
		if !strings.HasSuffix(kv.Key, "-style") || kv.Value != "dotted" {
			t.Errorf("expected a -style key with value dotted, is %s: %s", kv.Key, kv.Value)
		}
	}
}

func TestSplitFlex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	kvs, err := style.SplitCompoundProperty("flex", "2")
	if err != nil {
		t.Fatalf("cannot split flex shorthand: %v", err)
	}
	want := map[string]style.Property{
		"flex-grow": "2", "flex-shrink": "1", "flex-basis": "0",
	}
	checkSplit(t, kvs, want)
	kvs, err = style.SplitCompoundProperty("flex", "none")
	if err != nil {
		t.Fatalf("cannot split flex shorthand: %v", err)
	}
	want = map[string]style.Property{
		"flex-grow": "0", "flex-shrink": "0", "flex-basis": "auto",
	}
	checkSplit(t, kvs, want)
}

func TestSplitGlobalKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	kvs, err := style.SplitCompoundProperty("padding", "inherit")
	if err != nil {
		t.Fatalf("cannot split padding shorthand: %v", err)
	}
	if len(kvs) != 4 {
		t.Fatalf("expected inherit to distribute over 4 longhands, over %d", len(kvs))
	}
	for _, kv := range kvs {
		if kv.Value != "inherit" {
			t.Errorf("expected %s to be inherit, is %s", kv.Key, kv.Value)
		}
	}
	if _, err = style.SplitCompoundProperty("color", "red"); err == nil {
		t.Errorf("expected non-shorthand to be rejected")
	}
	if style.IsShorthand("color") || !style.IsShorthand("margin") {
		t.Errorf("expected margin but not color to be a shorthand")
	}
}

func TestStateSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	var set style.StateSet
	if !set.IsNormal() || set.Effective() != style.StateNormal {
		t.Errorf("expected the zero set to be normal")
	}
	set = set.With(style.StateHover).With(style.StateFocus)
	if set.IsNormal() || !set.Has(style.StateHover) || !set.Has(style.StateFocus) {
		t.Errorf("expected hover and focus to be set, is %s", set)
	}
	if set.Effective() != style.StateFocus {
		t.Errorf("expected focus to outrank hover, is %s", set.Effective())
	}
	set = set.Without(style.StateFocus)
	if set.Effective() != style.StateHover {
		t.Errorf("expected hover to remain, is %s", set.Effective())
	}
	if s, ok := style.ParseState(":hover"); !ok || s != style.StateHover {
		t.Errorf("expected :hover to parse, is %v", s)
	}
	if _, ok := style.ParseState("first-line"); ok {
		t.Errorf("expected first-line not to be an interaction state")
	}
}

func TestUserAgentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	if v := style.GetUserAgentDefaultProperty(body, style.PropMarginTop); v != css.DimenValue(css.JustDimen(8*css.PX)) {
		t.Errorf("expected body margin-top default of 8px, is %s", v)
	}
	h1 := &html.Node{Type: html.ElementNode, DataAtom: atom.H1, Data: "h1"}
	if v := style.GetUserAgentDefaultProperty(h1, style.PropFontSize); v != css.DimenValue(css.Em(2000)) {
		t.Errorf("expected h1 font-size default of 2em, is %s", v)
	}
	if v := style.GetUserAgentDefaultProperty(h1, style.PropFontWeight); v != css.Keyword(css.FontWeightBold) {
		t.Errorf("expected h1 font-weight default of bold, is %s", v)
	}
	a := &html.Node{Type: html.ElementNode, DataAtom: atom.A, Data: "a"}
	if v := style.GetUserAgentDefaultProperty(a, style.PropDisplay); v != css.Keyword(css.DisplayInline) {
		t.Errorf("expected a display default of inline, is %s", v)
	}
	if v := style.GetUserAgentDefaultProperty(body, style.PropColor); !v.IsEmpty() {
		t.Errorf("expected no body color default, is %s", v)
	}
	if d := style.DisplayPropertyForHTMLNode(h1); d != css.DisplayBlock {
		t.Errorf("expected h1 to display block, is %s", d)
	}
	text := &html.Node{Type: html.TextNode, Data: "quoth"}
	if d := style.DisplayPropertyForHTMLNode(text); d != css.DisplayNone {
		t.Errorf("expected text nodes to have no display type, is %s", d)
	}
}

// --- Helpers ---------------------------------------------------------

func checkSplit(t *testing.T, kvs []style.KeyValue, want map[string]style.Property) {
	if len(kvs) != len(want) {
		t.Fatalf("expected %d longhands, got %d: %v", len(want), len(kvs), kvs)
	}
	for _, kv := range kvs {
		if want[kv.Key] != kv.Value {
			t.Errorf("expected %s to be %s, is %s", kv.Key, want[kv.Key], kv.Value)
		}
	}
}
