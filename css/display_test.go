package css_test

import (
	"testing"

	"github.com/npillmayer/cascade/css"
)

func TestDisplayModeExpansion(t *testing.T) {
	block := css.DisplayModeOf(css.DisplayBlock)
	if block.Outer() != css.BlockMode {
		t.Errorf("expected outer mode of block to be BlockMode, is %s", block.Outer())
	}
	if !block.IsBlockLevel() {
		t.Errorf("expected block display to be block-level, isn't")
	}
	ib := css.DisplayModeOf(css.DisplayInlineBlock)
	if ib.Outer() != css.InlineMode {
		t.Errorf("expected outer mode of inline-block to be inline, is %s", ib.Outer())
	}
	if ib.Inner() != css.InnerBlockMode {
		t.Errorf("expected inner mode of inline-block to be a block context, is %s", ib.Inner())
	}
	if ib.IsBlockLevel() {
		t.Errorf("expected inline-block not to be block-level, is")
	}
}

func TestDisplayModeFlags(t *testing.T) {
	flex := css.DisplayModeOf(css.DisplayFlex)
	if !flex.Contains(css.FlexMode) {
		t.Errorf("expected flex display to contain FlexMode, doesn't: %s", flex.FullString())
	}
	if !flex.Overlaps(css.DisplayModeOf(css.DisplayInlineFlex)) {
		t.Errorf("expected flex and inline-flex to overlap, don't")
	}
	if flex.Overlaps(css.DisplayModeOf(css.DisplayNone)) {
		t.Errorf("expected flex and none not to overlap, do")
	}
	var mode css.DisplayMode
	mode.Set(css.ListItemMode)
	mode.Set(css.BlockMode)
	if mode.FullString() != "block list-item" {
		t.Errorf("expected mode to print as 'block list-item', is %q", mode.FullString())
	}
}
