package style

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNormalizeColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layoutcompare.dom")
	defer teardown()
	//
	for i, x := range []struct {
		in, out Property
	}{
		{"rgb(10, 20, 30)", "rgba(10,20,30,255)"},
		{"rgb(10,20,30)", "rgba(10,20,30,255)"},
		{"#0a141e", "rgba(10,20,30,255)"},
		{"#0A141E", "rgba(10,20,30,255)"},
		{"transparent", "rgba(0,0,0,0)"},
		{"white", "rgba(255,255,255,255)"},
		{"black", "black"},
		{"rgba(10, 20, 30, 255)", "rgba(10,20,30,255)"},
		{"rgba(10,20,30,255)", "rgba(10,20,30,255)"},
		{"1px solid rgb(1, 2, 3)", "rgba(1,2,3,255)"},
		{"#abc", "#abc"},
		{"12px", "12px"},
		{"Helvetica, Arial,  sans-serif", "Helvetica,Arial,sans-serif"},
		{"white smoke", "white smoke"},
		{"", ""},
	} {
		if n := Normalize(x.in); n != x.out {
			t.Errorf("test #%d: expected %q to normalize to %q, is %q", i, x.in, x.out, n)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, p := range []Property{"rgb(1, 2, 3)", "#ffffff", "transparent", "white", "black"} {
		once := Normalize(p)
		if twice := Normalize(once); twice != once {
			t.Errorf("expected normalization to be idempotent for %q: %q vs %q", p, once, twice)
		}
	}
	if !Equal("rgb(10, 20, 30)", "#0a141e") {
		t.Error("expected rgb() and hex forms of the same colour to be equal")
	}
	if Equal("black", "rgb(0, 0, 0)") {
		t.Error("did not expect 'black' to equal rgb(0, 0, 0)")
	}
}

func TestPropertyMapOrder(t *testing.T) {
	pmap := NewPropertyMap()
	pmap.Set("z-index", "1")
	pmap.Set("color", "Red")
	pmap.Add("z-index", "2")
	pmap.Set("color", "blue")
	keys := pmap.Keys()
	if len(keys) != 2 || keys[0] != "z-index" || keys[1] != "color" {
		t.Errorf("expected keys in insertion order, have %v", keys)
	}
	if p, _ := pmap.Property("z-index"); p != "1" {
		t.Errorf("expected Add not to overwrite, z-index = %q", p)
	}
	if p, _ := pmap.Property("color"); p != "blue" {
		t.Errorf("expected Set to overwrite, color = %q", p)
	}
	var nilmap *PropertyMap
	if _, ok := nilmap.Property("color"); ok || nilmap.Size() != 0 {
		t.Error("expected nil property map to be empty")
	}
}

func TestPropertyMapJSON(t *testing.T) {
	pmap := NewPropertyMap()
	input := `{"width":"100px","color":"rgb(1, 2, 3)","z-index":10,"color":"White"}`
	if err := json.Unmarshal([]byte(input), pmap); err != nil {
		t.Fatal(err)
	}
	if pmap.Size() != 3 {
		t.Fatalf("expected 3 properties, have %d", pmap.Size())
	}
	if p, _ := pmap.Property("color"); p != "White" {
		t.Errorf("expected last duplicate to win and case to be kept, color = %q", p)
	}
	if p, _ := pmap.Property("z-index"); p != "10" {
		t.Errorf("expected numeric value to be kept as text, z-index = %q", p)
	}
	out, err := json.Marshal(pmap)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"width":"100px","color":"White","z-index":"10"}` {
		t.Errorf("unexpected JSON output %s", out)
	}
	if err := json.Unmarshal([]byte(`{"color":{}}`), NewPropertyMap()); err == nil {
		t.Error("expected error for non-string property value")
	}
}

func TestPropertyGroups(t *testing.T) {
	if g := GroupNameFromPropertyKey("margin-top"); g != PGMargins {
		t.Errorf("expected margin-top in group %s, is %s", PGMargins, g)
	}
	if g := GroupNameFromPropertyKey("-webkit-funny"); g != PGX {
		t.Errorf("expected unknown property in group X, is %s", g)
	}
	pmap := NewPropertyMap()
	pmap.Set("font-size", "12px")
	pmap.Set("color", "red")
	pmap.Set("font-weight", "700")
	if fonts := pmap.Group(PGFont); len(fonts) != 2 || fonts[1].Key != "font-weight" {
		t.Errorf("expected 2 font properties in order, have %v", fonts)
	}
}
