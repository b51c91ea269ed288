// Package pattern implements the mathematical pattern generator: spirals,
// harmonic waves, Lissajous curves, fractal trees, and circle packing,
// dispatched by the pattern_type parameter behind the uniform generator
// contract.
package pattern

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/artlabs/artgen"
	"github.com/artlabs/artgen/generator"
	"github.com/artlabs/artgen/scene"
)

func init() {
	generator.Register("mathematical", func() generator.Generator {
		return New()
	})
}

// Generator produces geometric artwork from closed-form curves and
// recursive or iterative constructions.
type Generator struct{}

// New creates a mathematical pattern generator.
func New() *Generator { return &Generator{} }

// Name returns the display name of the generator.
func (*Generator) Name() string { return "Mathematical Patterns" }

// Description returns a one-line description for UI display.
func (*Generator) Description() string {
	return "Geometric patterns using mathematical formulas: spirals, waves, fractals, and more"
}

// Icon returns a short decorative glyph for UI display.
func (*Generator) Icon() string { return "📐" }

// Schema returns the generator's parameter schema.
func (*Generator) Schema() generator.Schema {
	return generator.Schema{
		"pattern_type": {
			Kind:    generator.KindChoice,
			Default: "spiral",
			Choices: []string{"spiral", "wave", "lissajous", "fractal_tree", "circle_pack"},
			Label:   "Pattern Type",
			Help:    "Type of mathematical pattern to generate",
		},
		"density": {
			Kind: generator.KindInt, Default: 100, Min: 10, Max: 500,
			Label: "Density", Help: "Number of elements or iterations",
		},
		"complexity": {
			Kind: generator.KindFloat, Default: 1.5, Min: 0.5, Max: 5.0,
			Label: "Complexity", Help: "Pattern complexity factor",
		},
		"symmetry": {
			Kind: generator.KindInt, Default: 1, Min: 1, Max: 12,
			Label: "Symmetry", Help: "Number of rotational repetitions around the canvas center",
		},
		"start_angle": {
			Kind: generator.KindFloat, Default: 0, Min: 0, Max: 360,
			Label: "Start Angle", Help: "Rotates the base shape before symmetry copies are applied",
		},
		"organic_factor": {
			Kind: generator.KindFloat, Default: 0, Min: 0, Max: 1,
			Label: "Organic Factor", Help: "Random perturbation layered onto the deterministic geometry",
		},
		"completeness": {
			Kind: generator.KindFloat, Default: 1.0, Min: 0.3, Max: 1.0,
			Label: "Completeness", Help: "How much of the full pattern is emitted",
		},
		"line_width": {
			Kind: generator.KindFloat, Default: 2.0, Min: 0.5, Max: 10.0,
			Label: "Line Width", Help: "Width of drawn lines",
		},
		"color": {
			Kind: generator.KindColor, Default: "#2E86AB",
			Label: "Primary Color", Help: "Main color for the pattern",
		},
		"color_scheme": {
			Kind:    generator.KindChoice,
			Default: string(artgen.SchemeGradient),
			Choices: schemeChoices(),
			Label:   "Color Scheme", Help: "How colors vary across the pattern",
		},
		"variation": {
			Kind: generator.KindFloat, Default: 50, Min: 0, Max: 100,
			Label: "Color Variation", Help: "How far the scheme strays from the primary color",
		},
		"background_color": {
			Kind: generator.KindColor, Default: "#FFFFFF",
			Label: "Background Color", Help: "Canvas background color",
		},
		"seed": {
			Kind: generator.KindInt, Default: 0, Min: 0, Max: 999999,
			Label: "Random Seed", Help: "Seed for reproducibility (0 = random)",
		},
	}
}

func schemeChoices() []string {
	schemes := artgen.Schemes()
	out := make([]string, len(schemes))
	for i, s := range schemes {
		out[i] = string(s)
	}
	return out
}

// params is the validated parameter set shared by every pattern variant.
type params struct {
	density      int
	complexity   float64
	symmetry     int
	startAngle   float64 // radians
	organic      float64
	completeness float64
	lineWidth    float64
	color        artgen.RGB
	scheme       artgen.Scheme
	variation    float64
}

// Generate produces a scene for the given canvas size and parameters.
func (g *Generator) Generate(ctx context.Context, width, height int, raw generator.Params, emit generator.ProgressFunc) (*scene.Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pattern: invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}

	vp, _ := g.Schema().Validate(raw)
	rng := generator.NewRand(int64(vp.Int("seed")))

	p := params{
		density:      vp.Int("density"),
		complexity:   vp.Float("complexity"),
		symmetry:     vp.Int("symmetry"),
		startAngle:   vp.Float("start_angle") * math.Pi / 180,
		organic:      vp.Float("organic_factor"),
		completeness: vp.Float("completeness"),
		lineWidth:    vp.Float("line_width"),
		color:        vp.Color("color"),
		scheme:       artgen.Scheme(vp.String("color_scheme")),
		variation:    vp.Float("variation"),
	}

	patternType := vp.String("pattern_type")
	sc := scene.New(width, height, vp.Color("background_color"))
	em := generator.NewEmitter(ctx, emit, sc)

	artgen.Logger().Info("pattern generation started",
		slog.String("pattern", patternType),
		slog.Int("width", width), slog.Int("height", height),
		slog.Int("density", p.density), slog.Int("symmetry", p.symmetry))

	var err error
	switch patternType {
	case "spiral":
		err = drawSpiral(sc, p, rng, em)
	case "wave":
		err = drawWave(sc, p, rng, em)
	case "lissajous":
		err = drawLissajous(sc, p, rng, em)
	case "fractal_tree":
		err = drawFractalTree(sc, p, rng, em)
	case "circle_pack":
		err = drawCirclePack(sc, p, rng, em)
	}

	switch {
	case err == nil:
		if err := em.Flush(1.0); err != nil && !errors.Is(err, generator.ErrStop) {
			return nil, err
		}
		artgen.Logger().Info("pattern generation completed",
			slog.String("pattern", patternType),
			slog.Int("paths", len(sc.Paths)), slog.Int("circles", len(sc.Circles)))
		return sc, nil
	case errors.Is(err, generator.ErrStop):
		// A stopped run hands back whatever it finished; the partial scene
		// is a valid prefix of the full one.
		artgen.Logger().Info("pattern generation stopped",
			slog.String("pattern", patternType), slog.Int("paths", len(sc.Paths)))
		return sc, nil
	default:
		return nil, err
	}
}

// jitter returns a bounded random perturbation scaled by the organic factor.
// At organic 0 it returns 0 without consuming the random stream, so fully
// deterministic runs stay byte-identical regardless of seed.
func jitter(rng *rand.Rand, organic, scale float64) float64 {
	if organic <= 0 {
		return 0
	}
	return (rng.Float64()*2 - 1) * organic * scale
}

func clampf(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// effectiveCount scales an element count by the completeness factor,
// never dropping below two elements.
func effectiveCount(density int, completeness float64) int {
	n := int(float64(density) * completeness)
	if n < 2 {
		n = 2
	}
	return n
}
