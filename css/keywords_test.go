package css_test

import (
	"testing"

	"github.com/npillmayer/cascade/css"
)

func TestKeywordParse(t *testing.T) {
	d, ok := css.ParseDisplay("inline-block")
	if !ok || d != css.DisplayInlineBlock {
		t.Errorf("expected ParseDisplay to find inline-block, is %v", d)
	}
	d, ok = css.ParseDisplay("Inline-Block")
	if !ok || d != css.DisplayInlineBlock {
		t.Errorf("expected keyword parsing to be case insensitive, is %v", d)
	}
	if _, ok = css.ParseDisplay("inline-matrix"); ok {
		t.Errorf("expected unknown display keyword to be rejected")
	}
	p, ok := css.ParsePosition("sticky")
	if !ok || p != css.PositionSticky {
		t.Errorf("expected ParsePosition to find sticky, is %v", p)
	}
}

// Encoding codes are the wire format of the compact cache; a handful of
// anchors guards against accidental reordering.
func TestKeywordCodes(t *testing.T) {
	anchors := []struct {
		code uint8
		want uint8
		name string
	}{
		{uint8(css.DisplayNone), 0, "display:none"},
		{uint8(css.DisplayFlex), 4, "display:flex"},
		{uint8(css.DisplayInlineGrid), 21, "display:inline-grid"},
		{uint8(css.PositionSticky), 4, "position:sticky"},
		{uint8(css.FloatNone), 2, "float:none"},
		{uint8(css.OverflowVisible), 3, "overflow:visible"},
		{uint8(css.NoWrap), 1, "flex-wrap:nowrap"},
		{uint8(css.JustifySpaceEvenly), 7, "justify-content:space-evenly"},
		{uint8(css.FontWeightNormal), 4, "font-weight:normal"},
		{uint8(css.FontWeightBold), 7, "font-weight:bold"},
		{uint8(css.TextAlignEnd), 5, "text-align:end"},
		{uint8(css.WhiteSpaceBreakSpaces), 5, "white-space:break-spaces"},
		{uint8(css.VerticalAlignTextBottom), 7, "vertical-align:text-bottom"},
		{uint8(css.BorderStyleOutset), 9, "border-style:outset"},
	}
	for _, a := range anchors {
		if a.code != a.want {
			t.Errorf("expected %s to encode as %d, is %d", a.name, a.want, a.code)
		}
	}
}

func TestKeywordFallback(t *testing.T) {
	if d := css.DisplayFromCode(200); d != css.DisplayBlock {
		t.Errorf("expected out-of-range display code to fall back to block, is %v", d)
	}
	if o := css.OverflowFromCode(7); o != css.OverflowVisible {
		t.Errorf("expected out-of-range overflow code to fall back to visible, is %v", o)
	}
	if f := css.FloatFromCode(99); f != css.FloatNone {
		t.Errorf("expected out-of-range float code to fall back to none, is %v", f)
	}
	if w := css.FontWeightFromCode(255); w != css.FontWeightNormal {
		t.Errorf("expected out-of-range font-weight code to fall back to normal, is %v", w)
	}
	if w := css.FlexWrapFromCode(3); w != css.NoWrap {
		t.Errorf("expected out-of-range flex-wrap code to fall back to nowrap, is %v", w)
	}
}

func TestFontWeightNumeric(t *testing.T) {
	w, ok := css.ParseFontWeight("400")
	if !ok || w != css.FontWeightNormal {
		t.Errorf("expected 400 to be weight normal, is %v", w)
	}
	w, ok = css.ParseFontWeight("700")
	if !ok || w != css.FontWeightBold {
		t.Errorf("expected 700 to be weight bold, is %v", w)
	}
	w, ok = css.ParseFontWeight("300")
	if !ok || w != css.FontWeight300 {
		t.Errorf("expected 300 to be weight 300, is %v", w)
	}
	if _, ok = css.ParseFontWeight("450"); ok {
		t.Errorf("expected weight 450 to be rejected")
	}
}

func TestDisplayLevels(t *testing.T) {
	if !css.DisplayBlock.IsBlockLevel() {
		t.Errorf("expected display:block to be block-level")
	}
	if css.DisplayInline.IsBlockLevel() {
		t.Errorf("expected display:inline not to be block-level")
	}
	if !css.DisplayInlineFlex.IsInlineLevel() {
		t.Errorf("expected display:inline-flex to be inline-level")
	}
}
