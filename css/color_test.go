package css_test

import (
	"testing"

	"github.com/npillmayer/cascade/css"
)

func TestParseColorNamed(t *testing.T) {
	c, err := css.ParseColor("red")
	if err != nil || c != css.RGB(255, 0, 0) {
		t.Errorf("expected 'red' to parse to #ff0000, is %v", c)
	}
	c, err = css.ParseColor("cornflowerblue")
	if err != nil || c != css.RGB(100, 149, 237) {
		t.Errorf("expected 'cornflowerblue' to parse to #6495ed, is %v", c)
	}
	if _, err = css.ParseColor("not-a-color"); err == nil {
		t.Errorf("expected unknown color name to be rejected")
	}
	c, err = css.ParseColor("transparent")
	if err != nil || c != css.Transparent {
		t.Errorf("expected 'transparent', is %v", c)
	}
}

func TestParseColorHex(t *testing.T) {
	c, err := css.ParseColor("#f80")
	if err != nil || c != css.RGB(0xff, 0x88, 0x00) {
		t.Errorf("expected '#f80' to spread to #ff8800, is %v", c)
	}
	c, err = css.ParseColor("#11223344")
	if err != nil || c != (css.Color{0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("expected 8-digit hex to carry alpha, is %v", c)
	}
	if _, err = css.ParseColor("#12345"); err == nil {
		t.Errorf("expected 5-digit hex to be rejected")
	}
}

func TestParseColorFunc(t *testing.T) {
	c, err := css.ParseColor("rgb(1, 2, 3)")
	if err != nil || c != css.RGB(1, 2, 3) {
		t.Errorf("expected rgb(1,2,3), is %v", c)
	}
	c, err = css.ParseColor("rgba(255, 0, 0, 0.5)")
	if err != nil || c != (css.Color{255, 0, 0, 127}) {
		t.Errorf("expected rgba with half alpha, is %v", c)
	}
	c, err = css.ParseColor("rgb(300, -4, 0)")
	if err != nil || c != css.RGB(255, 0, 0) {
		t.Errorf("expected channels to clamp, is %v", c)
	}
}

func TestColorPacked(t *testing.T) {
	c := css.Color{0x12, 0x34, 0x56, 0x78}
	if p := c.Packed(); p != 0x12345678 {
		t.Errorf("expected packed 0x12345678, is %#x", p)
	}
	if css.ColorFromPacked(c.Packed()) != c {
		t.Errorf("expected packed color to decode to itself")
	}
}
