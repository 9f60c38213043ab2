package css_test

import (
	"testing"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %s", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestDimenNone(t *testing.T) {
	none := css.None()
	switch m := none.Match(); m {
	case m.IsKind(css.None()):
		t.Logf("dimen is none")
	default:
		t.Errorf("expected dimen none to match none, isn't: %#v", none)
	}
	if none.Match().IsKind(css.Auto()) != nil {
		t.Errorf("expected none not to match auto")
	}
	m := css.DimenPattern[string](none)
	kind := m.OneOf(css.DimenPatterns[string]{
		Auto:    "auto",
		None:    "none",
		Default: "?",
	})
	if kind != "none" {
		t.Errorf("expected pattern match on none, is %q", kind)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	// now use it
	var du dimen.DU
	m := css.DimenPattern[int](ten)
	zehn := m.OneOf(css.DimenPatterns[int]{
		Just:    m.With(&du).Const(10),
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}

	d := css.JustDimen(dimen.PT * 10)
	// now use it
	e := css.DimenPattern[dimen.DU](d)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected distance to be %v, isn't: %#v", 10*dimen.PT, distance)
	}
}

func TestDimenParse(t *testing.T) {
	d, err := css.ParseDimen("100px")
	if err != nil {
		t.Fatalf("cannot parse '100px': %v", err)
	}
	if !d.IsAbsolute() || d.Unwrap() != 100*css.PX {
		t.Errorf("expected 100px to be absolute 100 CSS pixels, is %v", d)
	}

	d, err = css.ParseDimen("12pt")
	if err != nil {
		t.Fatalf("cannot parse '12pt': %v", err)
	}
	if d.Unwrap() != 12*dimen.PT {
		t.Errorf("expected 12pt to unwrap to 12 points, is %v", d.Unwrap())
	}

	d, err = css.ParseDimen("-1.5em")
	if err != nil {
		t.Fatalf("cannot parse '-1.5em': %v", err)
	}
	if !d.IsEm() || d.UnitMilli() != -1500 {
		t.Errorf("expected -1.5em with scalar -1500, is %v (%d)", d, d.UnitMilli())
	}

	d, err = css.ParseDimen("50%")
	if err != nil {
		t.Fatalf("cannot parse '50%%': %v", err)
	}
	if !d.IsPercent() || d.UnitMilli() != 50000 {
		t.Errorf("expected 50%% with scalar 50000, is %v (%d)", d, d.UnitMilli())
	}

	d, err = css.ParseDimen("auto")
	if err != nil || !d.IsAuto() {
		t.Errorf("expected 'auto' to parse to auto, is %v", d)
	}

	d, err = css.ParseDimen("0")
	if err != nil || !d.IsAbsolute() || d.Unwrap() != 0 {
		t.Errorf("expected '0' to parse to absolute zero, is %v", d)
	}

	if _, err = css.ParseDimen("10"); err == nil {
		t.Errorf("expected bare '10' to be rejected")
	}
	if _, err = css.ParseDimen("10parsec"); err == nil {
		t.Errorf("expected '10parsec' to be rejected")
	}
}

func TestDimenUnit(t *testing.T) {
	u, ok := css.Em(1500).Unit()
	if !ok || u != css.UnitEm {
		t.Errorf("expected unit of 1.5em to be em, is %v", u)
	}
	u, ok = css.JustDimen(42 * css.PX).Unit()
	if !ok || u != css.UnitPx {
		t.Errorf("expected absolute dimensions to report px, is %v", u)
	}
	if _, ok = css.Auto().Unit(); ok {
		t.Errorf("expected auto to report no unit")
	}
}

func TestDimenString(t *testing.T) {
	if s := css.Em(1500).String(); s != "1.5em" {
		t.Errorf("expected '1.5em', is %q", s)
	}
	if s := css.Percentage(percent.FromInt(50)).String(); s != "50%" {
		t.Errorf("expected '50%%', is %q", s)
	}
	if s := css.Auto().String(); s != "auto" {
		t.Errorf("expected 'auto', is %q", s)
	}
	if s := css.Vw(330).String(); s != "0.33vw" {
		t.Errorf("expected '0.33vw', is %q", s)
	}
}
