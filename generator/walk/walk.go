// Package walk implements the random walk generator: meandering paths whose
// step direction drifts randomly, with configurable boundary behavior,
// start placement, and coloring.
package walk

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
	generator.Register("random_walk", func() generator.Generator {
		return New()
	})
}

// Generator produces artwork from random walk algorithms.
type Generator struct{}

// New creates a random walk generator.
func New() *Generator { return &Generator{} }

// Name returns the display name of the generator.
func (*Generator) Name() string { return "Random Walk" }

// Description returns a one-line description for UI display.
func (*Generator) Description() string {
	return "Organic, flowing lines traced by randomly drifting walks"
}

// Icon returns a short decorative glyph for UI display.
func (*Generator) Icon() string { return "🌀" }

// Schema returns the generator's parameter schema.
func (*Generator) Schema() generator.Schema {
	return generator.Schema{
		"num_walks": {
			Kind: generator.KindInt, Default: 5, Min: 1, Max: 50,
			Label: "Number of Walks", Help: "How many separate random walks to generate",
		},
		"steps_per_walk": {
			Kind: generator.KindInt, Default: 1000, Min: 10, Max: 10000,
			Label: "Steps per Walk", Help: "Number of steps in each walk",
		},
		"step_size": {
			Kind: generator.KindFloat, Default: 5.0, Min: 0.5, Max: 50.0,
			Label: "Step Size", Help: "Length of each step in pixels",
		},
		"angle_variation": {
			Kind: generator.KindFloat, Default: 180.0, Min: 0.0, Max: 360.0,
			Label: "Angle Variation (degrees)",
			Help:  "Maximum angle change between steps (0=straight, 360=any direction)",
		},
		"line_width": {
			Kind: generator.KindFloat, Default: 1.0, Min: 0.1, Max: 10.0,
			Label: "Line Width", Help: "Thickness of the drawn lines",
		},
		"color_mode": {
			Kind:    generator.KindChoice,
			Default: "monochrome",
			Choices: []string{"monochrome", "grayscale", "color", "rainbow"},
			Label:   "Color Mode", Help: "How to color the walks",
		},
		"base_color": {
			Kind: generator.KindColor, Default: "#000000",
			Label: "Base Color", Help: "Primary color (used in monochrome mode)",
		},
		"background_color": {
			Kind: generator.KindColor, Default: "#FFFFFF",
			Label: "Background Color", Help: "Canvas background color",
		},
		"start_position": {
			Kind:    generator.KindChoice,
			Default: "center",
			Choices: []string{"center", "random", "edges", "corners"},
			Label:   "Start Position", Help: "Where walks begin",
		},
		"boundary_behavior": {
			Kind:    generator.KindChoice,
			Default: "bounce",
			Choices: []string{"bounce", "wrap", "stop", "ignore"},
			Label:   "Boundary Behavior", Help: "What happens at canvas edges",
		},
		"add_nodes": {
			Kind: generator.KindBool, Default: false,
			Label: "Show Nodes", Help: "Draw circles at walk endpoints",
		},
		"seed": {
			Kind: generator.KindInt, Default: 0, Min: 0, Max: 999999,
			Label: "Random Seed", Help: "Seed for reproducibility (0 = random)",
		},
	}
}

// Generate produces a scene for the given canvas size and parameters.
func (g *Generator) Generate(ctx context.Context, width, height int, raw generator.Params, emit generator.ProgressFunc) (*scene.Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("walk: invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}

	vp, _ := g.Schema().Validate(raw)
	rng := generator.NewRand(int64(vp.Int("seed")))

	numWalks := vp.Int("num_walks")
	steps := vp.Int("steps_per_walk")
	lineWidth := vp.Float("line_width")

	sc := scene.New(width, height, vp.Color("background_color"))
	em := generator.NewEmitter(ctx, emit, sc)

	artgen.Logger().Info("random walk generation started",
		slog.Int("walks", numWalks), slog.Int("steps", steps))

	total := numWalks * steps
	for i := 0; i < numWalks; i++ {
		color := walkColor(i, numWalks, vp, rng)

		points, stopped, err := g.walk(sc, vp, rng, em, i, total)
		if err != nil {
			if stopped {
				return sc, nil
			}
			return nil, err
		}

		sc.AppendPath(scene.Path{
			Points: points,
			Color:  color,
			Width:  lineWidth,
			Closed: false,
		})

		if vp.Bool("add_nodes") && len(points) > 0 {
			sc.AppendCircle(scene.Circle{
				Center:      points[len(points)-1],
				Radius:      lineWidth * 2,
				Color:       color,
				Filled:      true,
				StrokeWidth: 1,
			})
		}
	}

	if err := em.Flush(1.0); err != nil && !errors.Is(err, generator.ErrStop) {
		return nil, err
	}
	return sc, nil
}

// walk traces a single random walk. The bool result reports a cooperative
// stop, which the caller treats as a normal partial completion.
func (g *Generator) walk(sc *scene.Scene, vp generator.Params, rng *rand.Rand, em *generator.Emitter, index, total int) ([]artgen.Point, bool, error) {
	w := float64(sc.Width)
	h := float64(sc.Height)
	steps := vp.Int("steps_per_walk")
	stepSize := vp.Float("step_size")
	angleVar := vp.Float("angle_variation") * math.Pi / 180
	behavior := vp.String("boundary_behavior")

	x, y := startPosition(w, h, vp.String("start_position"), rng)
	angle := rng.Float64() * 2 * math.Pi

	points := make([]artgen.Point, 0, steps+1)
	points = append(points, artgen.Pt(x, y))

	for step := 0; step < steps; step++ {
		angle += (rng.Float64() - 0.5) * angleVar

		nx := x + math.Cos(angle)*stepSize
		ny := y + math.Sin(angle)*stepSize

		var cont bool
		nx, ny, cont = applyBoundary(nx, ny, w, h, behavior)
		if !cont {
			break
		}

		x, y = nx, ny
		points = append(points, artgen.Pt(x, y))

		if err := em.Tick(float64(index*steps+step+1) / float64(total)); err != nil {
			// Only a stop request is cooperative; any other sink error
			// must surface from Generate unchanged.
			return points, errors.Is(err, generator.ErrStop), err
		}
	}
	return points, false, nil
}

// startPosition picks the walk origin for the configured mode.
func startPosition(w, h float64, mode string, rng *rand.Rand) (float64, float64) {
	switch mode {
	case "random":
		return rng.Float64() * w, rng.Float64() * h
	case "edges":
		switch rng.Intn(4) {
		case 0:
			return rng.Float64() * w, 0
		case 1:
			return rng.Float64() * w, h
		case 2:
			return 0, rng.Float64() * h
		default:
			return w, rng.Float64() * h
		}
	case "corners":
		corners := [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}}
		c := corners[rng.Intn(4)]
		return c[0], c[1]
	default: // center
		return w / 2, h / 2
	}
}

// applyBoundary resolves a step that may have left the canvas.
// The bool result is false when the walk should end (stop behavior).
func applyBoundary(x, y, w, h float64, behavior string) (float64, float64, bool) {
	switch behavior {
	case "ignore":
		return x, y, true
	case "stop":
		if x < 0 || x > w || y < 0 || y > h {
			return x, y, false
		}
		return x, y, true
	case "wrap":
		return math.Mod(math.Mod(x, w)+w, w), math.Mod(math.Mod(y, h)+h, h), true
	default: // bounce
		if x < 0 {
			x = -x
		} else if x > w {
			x = 2*w - x
		}
		if y < 0 {
			y = -y
		} else if y > h {
			y = 2*h - y
		}
		return x, y, true
	}
}

// walkColor picks the stroke color for walk index under the color mode.
func walkColor(index, numWalks int, vp generator.Params, rng *rand.Rand) artgen.RGB {
	switch vp.String("color_mode") {
	case "grayscale":
		v := 0
		if numWalks > 1 {
			v = 255 * index / (numWalks - 1)
		}
		return artgen.RGB{R: uint8(v), G: uint8(v), B: uint8(v)}
	case "color":
		return artgen.RGB{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		}
	case "rainbow":
		hue := 0.0
		if numWalks > 1 {
			hue = 360 * float64(index) / float64(numWalks)
		}
		return artgen.HSV{H: hue, S: 1, V: 1}.RGB()
	default: // monochrome
		return vp.Color("base_color")
	}
}
