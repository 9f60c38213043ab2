package css_test

import (
	"testing"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestValueEquality(t *testing.T) {
	a := css.Keyword(css.DisplayBlock)
	b := css.Keyword(css.DisplayBlock)
	if a != b {
		t.Errorf("expected equal keyword values to compare equal")
	}
	if css.Keyword(css.DisplayBlock) == css.Keyword(css.DisplayInline) {
		t.Errorf("expected different keywords to compare unequal")
	}
	if css.Number(1500) == css.Number(1000) {
		t.Errorf("expected different numbers to compare unequal")
	}
	if css.DimenValue(css.Auto()) != css.ValueAuto {
		t.Errorf("expected auto dimension to normalize to the auto value")
	}
	if css.DimenValue(css.DimenT{}) != (css.Value{}) {
		t.Errorf("expected unset dimension to normalize to the empty value")
	}
}

func TestValueDimen(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	v := css.DimenValue(ten)
	if v.Kind() != css.KindDimension {
		t.Errorf("expected a dimension value, is %v", v.Kind())
	}
	if d := v.AsDimen(); d.Unwrap() != dimen.PT*10 {
		t.Errorf("expected dimension payload to unwrap to 10pt, is %v", d)
	}
	if d := css.ValueAuto.AsDimen(); !d.IsAuto() {
		t.Errorf("expected auto value to reconstitute an auto dimension")
	}
}

func TestValuePayloads(t *testing.T) {
	v := css.ColorValue(css.RGB(1, 2, 3))
	if c, ok := v.AsColor(); !ok || c != css.RGB(1, 2, 3) {
		t.Errorf("expected color payload to round-trip, is %v", c)
	}
	if _, ok := v.AsNumber(); ok {
		t.Errorf("expected color value not to report a number")
	}
	v = css.Number(1500)
	if n, ok := v.AsNumber(); !ok || n != 1500 {
		t.Errorf("expected number payload 1500, is %d", n)
	}
	v = css.Text("Helvetica, sans-serif")
	if s, ok := v.AsText(); !ok || s != "Helvetica, sans-serif" {
		t.Errorf("expected text payload to round-trip, is %q", s)
	}
	var empty css.Value
	if !empty.IsEmpty() {
		t.Errorf("expected zero value to be empty")
	}
}

func TestValueString(t *testing.T) {
	if s := css.Number(1500).String(); s != "1.5" {
		t.Errorf("expected '1.5', is %q", s)
	}
	if s := css.ValueInherit.String(); s != "inherit" {
		t.Errorf("expected 'inherit', is %q", s)
	}
}
