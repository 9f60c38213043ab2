package compact_test

import (
	"testing"
	"unsafe"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/compact"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func lookupOf(m map[style.PropertyID]css.Value) compact.LookupFunc {
	return func(p style.PropertyID) (css.Value, bool) {
		v, ok := m[p]
		return v, ok
	}
}

func TestBlockSizes(t *testing.T) {
	if s := unsafe.Sizeof(compact.NodeProps{}); s != 96 {
		t.Errorf("expected the box block to be 96 bytes, is %d", s)
	}
	if s := unsafe.Sizeof(compact.TextProps{}); s != 24 {
		t.Errorf("expected the text block to be 24 bytes, is %d", s)
	}
}

func TestFlagsBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	word := compact.BuildFlags(lookupOf(map[style.PropertyID]css.Value{
		style.PropDisplay:    css.Keyword(css.DisplayBlock),
		style.PropPosition:   css.Keyword(css.PositionRelative),
		style.PropFontWeight: css.Keyword(css.FontWeightBold),
	}))
	if !word.Populated() {
		t.Fatalf("expected the flag word to be populated")
	}
	if d := word.Display(); d != css.DisplayBlock {
		t.Errorf("expected display block, is %s", d)
	}
	if p := word.Position(); p != css.PositionRelative {
		t.Errorf("expected position relative, is %s", p)
	}
	if w := word.FontWeight(); w != css.FontWeightBold {
		t.Errorf("expected font-weight bold, is %s", w)
	}
	// unspecified flag properties read their initial keyword
	if f := word.Float(); f != css.FloatNone {
		t.Errorf("expected float none, is %s", f)
	}
	if j := word.JustifyContent(); j != css.JustifyFlexStart {
		t.Errorf("expected justify-content flex-start, is %s", j)
	}
	if v := word.VerticalAlign(); v != css.VerticalAlignBaseline {
		t.Errorf("expected vertical-align baseline, is %s", v)
	}
	code, ok := word.Code(style.PropDisplay)
	if !ok || css.DisplayFromCode(code) != css.DisplayBlock {
		t.Errorf("expected display code to extract, is %d/%v", code, ok)
	}
	if _, ok := word.Code(style.PropWidth); ok {
		t.Errorf("expected width to have no flag slot")
	}
}

func TestFlagsBailOnNonKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	va, _ := css.ParseDimen("10px")
	word := compact.BuildFlags(lookupOf(map[style.PropertyID]css.Value{
		style.PropDisplay:       css.Keyword(css.DisplayBlock),
		style.PropVerticalAlign: css.DimenValue(va),
	}))
	if word.Populated() {
		t.Errorf("expected a vertical-align length to leave the word unpopulated")
	}
	if _, ok := word.Code(style.PropDisplay); ok {
		t.Errorf("expected no flag reads from an unpopulated word")
	}
}

func TestBoxDefaults(t *testing.T) {
	p := compact.DefaultNodeProps()
	if p.Width != compact.U32Auto || p.Height != compact.U32Auto {
		t.Errorf("expected width and height to default to auto")
	}
	if p.MaxWidth != compact.U32None || p.MaxHeight != compact.U32None {
		t.Errorf("expected max-width and max-height to default to none")
	}
	if p.FontSize != compact.U32Initial {
		t.Errorf("expected font-size to default to the initial word, is %#x", p.FontSize)
	}
	if p.Top != compact.I16Auto || p.Left != compact.I16Auto {
		t.Errorf("expected the box offsets to default to auto")
	}
	if p.TabSize != compact.I16Sentinel {
		t.Errorf("expected tab-size to default to a miss, is %d", p.TabSize)
	}
	if p.FlexShrink != 100 || p.FlexGrow != 0 {
		t.Errorf("expected flex factors 0/1, are %d/%d", p.FlexGrow, p.FlexShrink)
	}
	if p.ZIndex != compact.I16Auto {
		t.Errorf("expected z-index to default to auto, is %d", p.ZIndex)
	}
	if p.MarginTop != 0 || p.PaddingBottom != 0 || p.BorderLeftWidth != 0 {
		t.Errorf("expected zero spacings by default")
	}
}

func TestCacheEncodeAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	red, _ := css.ParseColor("red")
	width, _ := css.ParseDimen("50%")
	margin, _ := css.ParseDimen("8px")
	props := map[style.PropertyID]css.Value{
		style.PropDisplay:        css.Keyword(css.DisplayBlock),
		style.PropWidth:          css.DimenValue(width),
		style.PropMarginTop:      css.DimenValue(margin),
		style.PropMarginLeft:     css.ValueAuto,
		style.PropBorderTopStyle: css.Keyword(css.BorderStyleSolid),
		style.PropBorderTopColor: css.ColorValue(red),
		style.PropFlexGrow:       css.Number(1250),
		style.PropZIndex:         css.Number(-5000),
		style.PropColor:          css.ColorValue(css.Black),
		style.PropFontFamily:     css.Text("Helvetica, sans-serif"),
		style.PropLineHeight:     css.Number(1500),
	}
	cache := compact.NewCache(4)
	cache.EncodeNode(2, lookupOf(props))

	for prop, want := range props {
		if prop == style.PropFontFamily {
			continue // present as a hash only
		}
		got, ok := cache.Get(2, prop)
		if !ok {
			t.Errorf("expected a cache hit for %s", prop)
		} else if got != want {
			t.Errorf("expected %s to read back as %v, is %v", prop, want, got)
		}
	}
	if _, ok := cache.Get(2, style.PropFontFamily); ok {
		t.Errorf("expected font-family to always miss")
	}
	if h := cache.FontHash(2); h == 0 || h != compact.FontHash("Helvetica, sans-serif") {
		t.Errorf("expected the font family hash to be set, is %#x", h)
	}
	// unspecified properties with a compact slot read their initial value
	if got, ok := cache.Get(2, style.PropHeight); !ok || got != css.ValueAuto {
		t.Errorf("expected height auto, is %v/%v", got, ok)
	}
	if got, ok := cache.Get(2, style.PropFlexShrink); !ok || got != css.Number(1000) {
		t.Errorf("expected flex-shrink 1, is %v/%v", got, ok)
	}
	if got, ok := cache.Get(2, style.PropBorderBottomStyle); !ok || got != css.Keyword(css.BorderStyleNone) {
		t.Errorf("expected border-bottom-style none, is %v/%v", got, ok)
	}
	// slow-path-only answers
	if _, ok := cache.Get(2, style.PropFontSize); ok {
		t.Errorf("expected unset font-size to miss")
	}
	if _, ok := cache.Get(2, style.PropCursor); ok {
		t.Errorf("expected cursor to have no compact slot")
	}
	if _, ok := cache.Get(99, style.PropDisplay); ok {
		t.Errorf("expected an out-of-range node to miss")
	}
}

func TestCacheRebuildIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	width, _ := css.ParseDimen("100px")
	props := map[style.PropertyID]css.Value{
		style.PropDisplay:    css.Keyword(css.DisplayFlex),
		style.PropWidth:      css.DimenValue(width),
		style.PropLineHeight: css.Number(1200),
	}
	cache := compact.NewCache(1)
	cache.EncodeNode(0, lookupOf(props))
	flags, box, text := cache.Flags(0), *cache.Box(0), *cache.Text(0)
	cache.EncodeNode(0, lookupOf(props))
	if cache.Flags(0) != flags {
		t.Errorf("expected the flag word to rebuild identically")
	}
	if *cache.Box(0) != box {
		t.Errorf("expected the box block to rebuild identically")
	}
	if *cache.Text(0) != text {
		t.Errorf("expected the text block to rebuild identically")
	}
}

func TestCacheGrowth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	cache := compact.NewCache(2)
	if cache.Len() != 2 {
		t.Fatalf("expected 2 slots, are %d", cache.Len())
	}
	cache.Ensure(5)
	if cache.Len() != 5 {
		t.Fatalf("expected 5 slots after growing, are %d", cache.Len())
	}
	// fresh slots answer initial values resp. misses
	if got, ok := cache.Get(4, style.PropMaxWidth); !ok || got != css.ValueNone {
		t.Errorf("expected max-width none on a fresh slot, is %v/%v", got, ok)
	}
	if cache.Flags(4).Populated() {
		t.Errorf("expected a fresh flag word to be unpopulated")
	}
}

func TestLineHeightEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.dom")
	defer teardown()
	//
	pct, _ := css.ParseDimen("150%")
	px, _ := css.ParseDimen("20px")
	cache := compact.NewCache(3)
	cache.EncodeNode(0, lookupOf(map[style.PropertyID]css.Value{
		style.PropLineHeight: css.Number(1500),
	}))
	cache.EncodeNode(1, lookupOf(map[style.PropertyID]css.Value{
		style.PropLineHeight: css.DimenValue(pct),
	}))
	cache.EncodeNode(2, lookupOf(map[style.PropertyID]css.Value{
		style.PropLineHeight: css.DimenValue(px),
	}))
	if got, ok := cache.Get(0, style.PropLineHeight); !ok || got != css.Number(1500) {
		t.Errorf("expected number line height to encode, is %v/%v", got, ok)
	}
	if _, ok := cache.Get(1, style.PropLineHeight); ok {
		t.Errorf("expected percentage line height to take the slow path")
	}
	if _, ok := cache.Get(2, style.PropLineHeight); ok {
		t.Errorf("expected length line height to take the slow path")
	}
	if lh := cache.Text(0).LineHeight; lh != 1500 {
		t.Errorf("expected 1500 tenths of a percent, is %d", lh)
	}
}

func BenchmarkCacheGet(b *testing.B) {
	width, _ := css.ParseDimen("100px")
	cache := compact.NewCache(1)
	cache.EncodeNode(0, lookupOf(map[style.PropertyID]css.Value{
		style.PropDisplay: css.Keyword(css.DisplayBlock),
		style.PropWidth:   css.DimenValue(width),
	}))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := cache.Get(0, style.PropWidth); !ok {
			b.Fatal("unexpected cache miss")
		}
	}
}
