package css_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/layoutcompare/css"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %d", du)
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
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
	if css.Inherit().Match().Just(nil) != nil {
		t.Error("did not expect inherit to be a fixed value")
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
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
	inh := css.DimenPattern[int](css.Inherit())
	if x := inh.OneOf(css.DimenPatterns[int]{Just: 1, Inherit: 2, Default: -1}); x != 2 {
		t.Errorf("expected inherit pattern to be selected, got %d", x)
	}
}

func TestParseDimen(t *testing.T) {
	for i, x := range []struct {
		in    string
		delta string
		other string
	}{
		{"12pt", "0.00pt", "12pt"},
		{"12px", "3.00pt", "16px"},
		{"0", "1.50pt", "2px"},
		{"1in", "-36.00pt", "36pt"},
	} {
		du, ok := css.LengthDelta(x.in, x.other)
		if !ok {
			t.Errorf("test #%d: expected %q and %q to be lengths", i, x.in, x.other)
			continue
		}
		if s := css.FormatPoints(du); s != x.delta {
			t.Errorf("test #%d: expected delta %s, have %s", i, x.delta, s)
		}
	}
	if _, ok := css.LengthDelta("auto", "12px"); ok {
		t.Error("did not expect a delta for auto")
	}
	for _, s := range []string{"red", "12", "12em", "px", ""} {
		if _, err := css.ParseDimen(s); !errors.Is(err, css.ErrNotALength) {
			t.Errorf("expected %q not to be a length, got %v", s, err)
		}
	}
	d, err := css.ParseDimen("50%")
	if err != nil {
		t.Fatal(err)
	}
	if d.Match().Percentage(nil) == nil {
		t.Error("expected 50% to be a percentage")
	}
}
