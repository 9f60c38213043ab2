package cssom_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestDeclarationOutranks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame.tree")
	defer teardown()
	//
	author := cssom.Declaration{Origin: cssom.Author, Specificity: 1, Order: 1}
	ua := cssom.Declaration{Origin: cssom.UserAgent,
		Specificity: cssom.FoldSpecificity(1, 0, 0), Order: 9}
	if !author.Outranks(ua) || ua.Outranks(author) {
		t.Errorf("expected origin to dominate specificity")
	}
	class := cssom.Declaration{Origin: cssom.Author,
		Specificity: cssom.FoldSpecificity(0, 1, 0), Order: 1}
	types := cssom.Declaration{Origin: cssom.Author,
		Specificity: cssom.FoldSpecificity(0, 0, 5), Order: 9}
	if !class.Outranks(types) || types.Outranks(class) {
		t.Errorf("expected specificity to dominate document order")
	}
	early := cssom.Declaration{Origin: cssom.Author, Specificity: 1, Order: 3}
	late := cssom.Declaration{Origin: cssom.Author, Specificity: 1, Order: 9}
	if !late.Outranks(early) || early.Outranks(late) {
		t.Errorf("expected the later declaration to win at equal rank")
	}
	if !early.Outranks(early) {
		t.Errorf("expected a declaration to outrank its own rank")
	}
}

func TestDeclarationListInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame.tree")
	defer teardown()
	//
	var dl cssom.DeclarationList
	if _, ok := dl.Get(style.PropColor); ok {
		t.Errorf("expected an empty list not to yield values")
	}
	dl.Insert(cssom.Declaration{Prop: style.PropWidth, Value: css.ValueAuto,
		Origin: cssom.Author, Order: 1})
	dl.Insert(cssom.Declaration{Prop: style.PropColor, Value: css.ColorValue(css.Black),
		Origin: cssom.Author, Order: 1})
	dl.Insert(cssom.Declaration{Prop: style.PropMarginTop,
		Value: css.DimenValue(css.JustDimen(0)), Origin: cssom.Author, Order: 1})
	if len(dl) != 3 {
		t.Fatalf("expected 3 declarations, have %d", len(dl))
	}
	for i := 1; i < len(dl); i++ {
		if dl[i-1].Prop >= dl[i].Prop {
			t.Errorf("expected the list to be sorted by property, is %s", dl)
		}
	}
	// a weaker declaration must not replace a present one
	dl.Insert(cssom.Declaration{Prop: style.PropColor,
		Value: css.ColorValue(css.RGB(255, 0, 0)), Origin: cssom.UserAgent, Order: 9})
	if v, _ := dl.Get(style.PropColor); v != css.ColorValue(css.Black) {
		t.Errorf("expected the author color to survive, is %s", v)
	}
	dl.Insert(cssom.Declaration{Prop: style.PropColor,
		Value: css.ColorValue(css.RGB(255, 0, 0)), Origin: cssom.AuthorImportant, Order: 1})
	if v, _ := dl.Get(style.PropColor); v != css.ColorValue(css.RGB(255, 0, 0)) {
		t.Errorf("expected the important color to win, is %s", v)
	}
	if !dl.Remove(style.PropColor) || dl.Remove(style.PropColor) {
		t.Errorf("expected remove to delete the declaration exactly once")
	}
	if len(dl) != 2 {
		t.Errorf("expected 2 declarations after removal, have %d", len(dl))
	}
}

func TestCascadeOrderIndependence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame.tree")
	defer teardown()
	//
	decls := []cssom.Declaration{
		{Prop: style.PropColor, Value: css.ColorValue(css.Black),
			Origin: cssom.UserAgent, Specificity: 1, Order: 1},
		{Prop: style.PropColor, Value: css.ColorValue(css.RGB(255, 0, 0)),
			Origin: cssom.Author, Specificity: 1, Order: 2},
		{Prop: style.PropColor, Value: css.ColorValue(css.RGB(0, 0, 255)),
			Origin: cssom.Author, Specificity: cssom.FoldSpecificity(0, 1, 0), Order: 1},
		{Prop: style.PropColor, Value: css.ColorValue(css.RGB(0, 128, 0)),
			Origin: cssom.AuthorImportant, Specificity: 1, Order: 1},
		{Prop: style.PropMarginTop, Value: css.DimenValue(css.JustDimen(10 * css.PX)),
			Origin: cssom.Author, Specificity: 1, Order: 5},
		{Prop: style.PropMarginTop, Value: css.DimenValue(css.JustDimen(20 * css.PX)),
			Origin: cssom.Author, Specificity: cssom.FoldSpecificity(1, 0, 0), Order: 4},
		{Prop: style.PropWidth, Value: css.DimenValue(css.PercentMilli(50000)),
			Origin: cssom.Author, Specificity: 1, Order: 3},
		{Prop: style.PropWidth, Value: css.ValueAuto,
			Origin: cssom.Author, Specificity: 1, Order: 9},
		{Prop: style.PropDisplay, Value: css.Keyword(css.DisplayBlock),
			Origin: cssom.UserAgent, Specificity: 1, Order: 1},
	}
	want := cssom.Resolve(decls)
	if v, _ := want.Get(style.PropColor); v != css.ColorValue(css.RGB(0, 128, 0)) {
		t.Fatalf("expected the important green to win the cascade, is %s", v)
	}
	if v, _ := want.Get(style.PropMarginTop); v != css.DimenValue(css.JustDimen(20*css.PX)) {
		t.Fatalf("expected the id-selector margin to win the cascade, is %s", v)
	}
	if v, _ := want.Get(style.PropWidth); v != css.ValueAuto {
		t.Fatalf("expected the later width to win the cascade, is %s", v)
	}
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		r.Shuffle(len(decls), func(i, j int) { decls[i], decls[j] = decls[j], decls[i] })
		dl := cssom.Resolve(decls)
		if len(dl) != len(want) {
			t.Fatalf("expected %d declarations in round %d, have %d",
				len(want), round, len(dl))
		}
		for i := range dl {
			if dl[i] != want[i] {
				t.Fatalf("expected cascade results to be order-independent, "+
					"round %d diverges at %s", round, dl[i])
			}
		}
	}
}

func TestFoldSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame.tree")
	defer teardown()
	//
	if cssom.FoldSpecificity(0, 0, 1) != 1 {
		t.Errorf("expected a single type selector to fold to 1")
	}
	if cssom.FoldSpecificity(0, 1, 0) <= cssom.FoldSpecificity(0, 0, 1023) {
		t.Errorf("expected one class to outweigh any number of types")
	}
	if cssom.FoldSpecificity(1, 0, 0) <= cssom.FoldSpecificity(0, 1023, 1023) {
		t.Errorf("expected one id to outweigh any number of classes")
	}
	if cssom.FoldSpecificity(0, 5000, 0) != cssom.FoldSpecificity(0, 1023, 0) {
		t.Errorf("expected bucket counts to saturate at 1023")
	}
	if cssom.InlineSpecificity <= cssom.FoldSpecificity(1023, 1023, 1023) {
		t.Errorf("expected inline specificity to outrank any selector")
	}
}

func TestStatefulList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame.tree")
	defer teardown()
	//
	var sl cssom.StatefulList
	red := cssom.Declaration{Prop: style.PropColor,
		Value: css.ColorValue(css.RGB(255, 0, 0)), Origin: cssom.Author, Order: 1}
	sl.Insert(style.StateHover, red)
	sl.Insert(style.StateFocus, cssom.Declaration{Prop: style.PropOutlineWidth,
		Value: css.DimenValue(css.JustDimen(2 * css.PX)), Origin: cssom.Author, Order: 2})
	sl.Insert(style.StateHover, cssom.Declaration{Prop: style.PropMarginTop,
		Value: css.DimenValue(css.JustDimen(0)), Origin: cssom.Author, Order: 3})
	if v, ok := sl.Get(style.StateHover, style.PropColor); !ok ||
		v != css.ColorValue(css.RGB(255, 0, 0)) {
		t.Errorf("expected the hover color to be found, is %s", v)
	}
	if _, ok := sl.Get(style.StateFocus, style.PropColor); ok {
		t.Errorf("expected no focus color")
	}
	if !sl.HasState(style.StateHover) || !sl.HasState(style.StateFocus) {
		t.Errorf("expected hover and focus to carry declarations")
	}
	if sl.HasState(style.StateVisited) {
		t.Errorf("expected no visited declarations")
	}
	set := sl.States()
	if !set.Has(style.StateHover) || !set.Has(style.StateFocus) || set.Has(style.StateActive) {
		t.Errorf("expected the state set {hover focus}, is %s", set)
	}
	// ranking applies per (state, property) pair
	weaker := red
	weaker.Origin = cssom.UserAgent
	weaker.Value = css.ColorValue(css.Black)
	sl.Insert(style.StateHover, weaker)
	if v, _ := sl.Get(style.StateHover, style.PropColor); v != css.ColorValue(css.RGB(255, 0, 0)) {
		t.Errorf("expected the author hover color to survive, is %s", v)
	}
}

func TestAddStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame.tree")
	defer teardown()
	//
	om := cssom.NewCSSOM()
	if err := om.AddStylesheet(mustSheet(t, "div, p { margin-top: 5px; }"), cssom.Author); err != nil {
		t.Fatalf("cannot add stylesheet: %v", err)
	}
	if om.RuleCount() != 2 {
		t.Errorf("expected a selector list to split into 2 rules, is %d", om.RuleCount())
	}
	if err := om.AddStylesheet(mustSheet(t, ""), cssom.Author); err != nil {
		t.Errorf("expected an empty stylesheet to be acceptable: %v", err)
	}
	if om.RuleCount() != 2 {
		t.Errorf("expected an empty stylesheet to add no rules, is %d", om.RuleCount())
	}
	doc := parseDoc(t, `<html><body><div>A</div><p>B</p></body></html>`)
	p := findElement(doc, "p")
	base, _ := om.MatchingDeclarations(p)
	if v, ok := base.Get(style.PropMarginTop); !ok ||
		v != css.DimenValue(css.JustDimen(5*css.PX)) {
		t.Errorf("expected the split selector to style p, is %s", v)
	}
}

func TestMatchingDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame.tree")
	defer teardown()
	//
	om := cssom.NewCSSOM()
	om.AddStylesheet(mustSheet(t, "div { color: black; width: 100px; }"), cssom.UserAgent)
	om.AddStylesheet(mustSheet(t, `
		#box { color: blue; }
		div { color: red; margin: 10px 20px; }
	`), cssom.Author)
	doc := parseDoc(t, `<html><body><div id="box" class="panel">Text</div></body></html>`)
	div := findElement(doc, "div")
	base, stateful := om.MatchingDeclarations(div)
	if len(stateful) != 0 {
		t.Errorf("expected no state-conditional declarations, have %d", len(stateful))
	}
	if len(base) != 6 {
		t.Fatalf("expected 6 cascaded declarations, have %d: %s", len(base), base)
	}
	d, ok := base.Declaration(style.PropColor)
	if !ok || d.Value != css.ColorValue(css.RGB(0, 0, 255)) {
		t.Errorf("expected the id selector color to win, is %s", d.Value)
	}
	if d.Origin != cssom.Author || d.Specificity != cssom.FoldSpecificity(1, 0, 0) {
		t.Errorf("expected an author declaration with id specificity, is %s", d)
	}
	if v, _ := base.Get(style.PropWidth); v != css.DimenValue(css.JustDimen(100*css.PX)) {
		t.Errorf("expected the user-agent width to survive uncontested, is %s", v)
	}
	if v, _ := base.Get(style.PropMarginTop); v != css.DimenValue(css.JustDimen(10*css.PX)) {
		t.Errorf("expected the margin shorthand to split, margin-top is %s", v)
	}
	if v, _ := base.Get(style.PropMarginLeft); v != css.DimenValue(css.JustDimen(20*css.PX)) {
		t.Errorf("expected the margin shorthand to split, margin-left is %s", v)
	}
}

func TestImportantDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame.tree")
	defer teardown()
	//
	om := cssom.NewCSSOM()
	om.AddStylesheet(mustSheet(t, `
		div { color: red !important; }
		div { color: blue; }
	`), cssom.Author)
	doc := parseDoc(t, `<html><body><div>Text</div></body></html>`)
	div := findElement(doc, "div")
	base, _ := om.MatchingDeclarations(div)
	d, ok := base.Declaration(style.PropColor)
	if !ok || d.Value != css.ColorValue(css.RGB(255, 0, 0)) {
		t.Errorf("expected the important color to beat the later rule, is %s", d.Value)
	}
	if d.Origin != cssom.AuthorImportant {
		t.Errorf("expected promotion to the important origin, is %s", d.Origin)
	}
}

func TestStatefulMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame.tree")
	defer teardown()
	//
	om := cssom.NewCSSOM()
	om.AddStylesheet(mustSheet(t, `
		div:hover { color: green; }
		:focus { outline-width: 2px; }
	`), cssom.Author)
	doc := parseDoc(t, `<html><body><div>A</div><p>B</p></body></html>`)
	div := findElement(doc, "div")
	base, stateful := om.MatchingDeclarations(div)
	if len(base) != 0 {
		t.Errorf("expected no base declarations from state rules, have %s", base)
	}
	if v, ok := stateful.Get(style.StateHover, style.PropColor); !ok ||
		v != css.ColorValue(css.RGB(0, 128, 0)) {
		t.Errorf("expected the hover rule to attach to the hover state, is %s", v)
	}
	for _, sd := range stateful {
		if sd.State == style.StateHover && sd.Specificity != cssom.FoldSpecificity(0, 1, 1) {
			t.Errorf("expected the stripped pseudo-class to count as a class, is %d",
				sd.Specificity)
		}
	}
	if v, ok := stateful.Get(style.StateFocus, style.PropOutlineWidth); !ok ||
		v != css.DimenValue(css.JustDimen(2*css.PX)) {
		t.Errorf("expected the bare pseudo-class to match any element, is %s", v)
	}
	// a bare pseudo-class rule reaches p as well, the hover rule does not
	p := findElement(doc, "p")
	_, stateful = om.MatchingDeclarations(p)
	if stateful.HasState(style.StateHover) || !stateful.HasState(style.StateFocus) {
		t.Errorf("expected only the focus rule to reach p, is %s", stateful.States())
	}
}

func TestRawDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame.tree")
	defer teardown()
	//
	tmpl := cssom.Declaration{Origin: cssom.Override,
		Specificity: cssom.InlineSpecificity, Order: 7}
	decls := cssom.RawDeclarations([]style.KeyValue{
		{Key: "margin", Value: "1px 2px"},
		{Key: "color", Value: "red"},
		{Key: "bogus", Value: "x"},
	}, tmpl)
	if len(decls) != 5 {
		t.Fatalf("expected the margin shorthand to expand to 5 declarations, have %d",
			len(decls))
	}
	for _, d := range decls {
		if d.Origin != cssom.Override || d.Specificity != cssom.InlineSpecificity ||
			d.Order != 7 {
			t.Errorf("expected every declaration to carry the template rank, is %s", d)
		}
		if d.Prop == style.PropMarginTop && d.Value != css.DimenValue(css.JustDimen(1*css.PX)) {
			t.Errorf("expected margin-top 1px, is %s", d.Value)
		}
	}
	decls = cssom.RawDeclarations([]style.KeyValue{
		{Key: "border-top", Value: "2px solid red"},
	}, tmpl)
	if len(decls) != 3 {
		t.Fatalf("expected border-top to expand to 3 declarations, have %d", len(decls))
	}
}

// --- Helpers ---------------------------------------------------------

func mustSheet(t *testing.T, src string) *douceuradapter.CSSStyles {
	sheet, err := douceuradapter.ParseCSS(src)
	if err != nil {
		t.Fatalf("cannot parse stylesheet: %v", err)
	}
	return sheet
}

func parseDoc(t *testing.T, src string) *html.Node {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("cannot parse HTML: %v", err)
	}
	return doc
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(ch, name); r != nil {
			return r
		}
	}
	return nil
}
