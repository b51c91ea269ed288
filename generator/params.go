package generator

import (
	"log/slog"
	"math"
	"sort"

	"github.com/artlabs/artgen"
)

// Kind identifies the value type of a schema field.
type Kind int

// Schema field kinds.
const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindChoice
	KindColor
)

// String returns the kind name as used in control metadata.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindChoice:
		return "choice"
	case KindColor:
		return "color"
	}
	return "unknown"
}

// Spec describes a single parameter: its kind, default, bounds or choices,
// and display metadata consumed by front ends.
type Spec struct {
	Kind     Kind
	Default  any
	Min, Max float64  // bounds for KindInt and KindFloat
	Choices  []string // valid values for KindChoice
	Label    string
	Help     string
}

// Schema maps parameter names to their specs. It drives both control
// rendering (out of scope here) and validation before every generation.
type Schema map[string]Spec

// Params is a raw parameter map as supplied by a caller or front end.
type Params map[string]any

// Correction records one field the validator had to fix.
type Correction struct {
	Name   string
	From   any
	To     any
	Reason string
}

// Validate returns a corrected copy of raw with every schema field present,
// clamped to bounds, and coerced to its canonical type (int, float64, bool,
// or string). Unknown choice values are replaced by the field default.
// Validation fails closed: it never returns an error and never mutates raw,
// so generation cannot halt on a single malformed field.
func (sc Schema) Validate(raw Params) (Params, []Correction) {
	out := make(Params, len(sc))
	var fixes []Correction

	// Deterministic iteration keeps correction logs stable.
	names := make([]string, 0, len(sc))
	for name := range sc {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := sc[name]
		value, present := raw[name]
		if !present {
			out[name] = spec.Default
			continue
		}

		switch spec.Kind {
		case KindInt:
			n, ok := toInt(value)
			if !ok {
				fixes = append(fixes, Correction{name, value, spec.Default, "not numeric"})
				out[name] = spec.Default
				continue
			}
			if c := int(clampRange(float64(n), spec.Min, spec.Max)); c != n {
				fixes = append(fixes, Correction{name, n, c, "out of range"})
				n = c
			}
			out[name] = n
		case KindFloat:
			f, ok := toFloat(value)
			if !ok {
				fixes = append(fixes, Correction{name, value, spec.Default, "not numeric"})
				out[name] = spec.Default
				continue
			}
			if c := clampRange(f, spec.Min, spec.Max); c != f {
				fixes = append(fixes, Correction{name, f, c, "out of range"})
				f = c
			}
			out[name] = f
		case KindBool:
			b, ok := value.(bool)
			if !ok {
				fixes = append(fixes, Correction{name, value, spec.Default, "not a bool"})
				out[name] = spec.Default
				continue
			}
			out[name] = b
		case KindChoice:
			s, ok := value.(string)
			if ok {
				ok = false
				for _, c := range spec.Choices {
					if c == s {
						ok = true
						break
					}
				}
			}
			if !ok {
				fixes = append(fixes, Correction{name, value, spec.Default, "invalid choice"})
				out[name] = spec.Default
				continue
			}
			out[name] = s
		case KindColor:
			s, ok := value.(string)
			if ok {
				_, err := artgen.ParseHex(s)
				ok = err == nil
			}
			if !ok {
				fixes = append(fixes, Correction{name, value, spec.Default, "invalid color"})
				out[name] = spec.Default
				continue
			}
			out[name] = s
		}
	}

	if len(fixes) > 0 {
		artgen.Logger().Warn("parameters corrected during validation",
			slog.Int("count", len(fixes)))
	}
	return out, fixes
}

// Accessors below assume a validated map; they fall back to zero values on
// missing fields so a programming error degrades visibly instead of
// panicking mid-generation.

// Int returns the named int parameter.
func (p Params) Int(name string) int {
	n, _ := toInt(p[name])
	return n
}

// Float returns the named float parameter.
func (p Params) Float(name string) float64 {
	f, _ := toFloat(p[name])
	return f
}

// Bool returns the named bool parameter.
func (p Params) Bool(name string) bool {
	b, _ := p[name].(bool)
	return b
}

// String returns the named choice parameter.
func (p Params) String(name string) string {
	s, _ := p[name].(string)
	return s
}

// Color returns the named color parameter parsed to RGB.
func (p Params) Color(name string) artgen.RGB {
	c, err := artgen.ParseHex(p.String(name))
	if err != nil {
		return artgen.Black
	}
	return c
}

// Clone returns a shallow copy of the parameter map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(math.Round(n)), true
	case float32:
		return int(math.Round(float64(n))), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func clampRange(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
