package generator

import (
	"testing"
)

func testSchema() Schema {
	return Schema{
		"density": {Kind: KindInt, Default: 100, Min: 10, Max: 500},
		"complexity": {Kind: KindFloat, Default: 1.5, Min: 0.5, Max: 5.0},
		"mode": {Kind: KindChoice, Default: "spiral", Choices: []string{"spiral", "wave"}},
		"color": {Kind: KindColor, Default: "#2E86AB"},
		"flag": {Kind: KindBool, Default: true},
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	out, fixes := testSchema().Validate(Params{})
	if len(fixes) != 0 {
		t.Errorf("unexpected corrections: %v", fixes)
	}
	if out.Int("density") != 100 || out.Float("complexity") != 1.5 ||
		out.String("mode") != "spiral" || !out.Bool("flag") {
		t.Errorf("defaults not filled: %v", out)
	}
}

func TestValidateClampsAndCorrects(t *testing.T) {
	tests := []struct {
		name     string
		raw      Params
		key      string
		want     any
		numFixes int
	}{
		{name: "int above max", raw: Params{"density": 9999}, key: "density", want: 500, numFixes: 1},
		{name: "int below min", raw: Params{"density": 1}, key: "density", want: 10, numFixes: 1},
		{name: "float clamped", raw: Params{"complexity": 80.0}, key: "complexity", want: 5.0, numFixes: 1},
		{name: "float from int", raw: Params{"complexity": 2}, key: "complexity", want: 2.0, numFixes: 0},
		{name: "int from float64", raw: Params{"density": 150.0}, key: "density", want: 150, numFixes: 0},
		{name: "unknown choice", raw: Params{"mode": "hexagon"}, key: "mode", want: "spiral", numFixes: 1},
		{name: "non-string choice", raw: Params{"mode": 7}, key: "mode", want: "spiral", numFixes: 1},
		{name: "bad color", raw: Params{"color": "#zzz"}, key: "color", want: "#2E86AB", numFixes: 1},
		{name: "good color kept", raw: Params{"color": "#abcdef"}, key: "color", want: "#abcdef", numFixes: 0},
		{name: "bool wrong type", raw: Params{"flag": "yes"}, key: "flag", want: true, numFixes: 1},
		{name: "int not numeric", raw: Params{"density": "lots"}, key: "density", want: 100, numFixes: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, fixes := testSchema().Validate(tt.raw)
			if got := out[tt.key]; got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
			if len(fixes) != tt.numFixes {
				t.Errorf("corrections = %d, want %d: %v", len(fixes), tt.numFixes, fixes)
			}
		})
	}
}

func TestValidateNeverMutatesInput(t *testing.T) {
	raw := Params{"density": 9999, "mode": "hexagon"}
	testSchema().Validate(raw)

	if raw["density"] != 9999 || raw["mode"] != "hexagon" {
		t.Errorf("input map was mutated: %v", raw)
	}
	if len(raw) != 2 {
		t.Errorf("input map grew: %v", raw)
	}
}

func TestParamsColorFallback(t *testing.T) {
	p := Params{"color": "#102030"}
	if c := p.Color("color"); c.R != 0x10 || c.G != 0x20 || c.B != 0x30 {
		t.Errorf("Color = %v", c)
	}
	if c := p.Color("missing"); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("missing color should fall back to black, got %v", c)
	}
}

func TestNewRandDeterminism(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("identical seeds diverged")
		}
	}
}
