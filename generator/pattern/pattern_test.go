package pattern

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/artlabs/artgen"
	"github.com/artlabs/artgen/generator"
	"github.com/artlabs/artgen/scene"
)

// Verify at compile time that Generator implements the contract.
var _ generator.Generator = (*Generator)(nil)

func generate(t *testing.T, params generator.Params, emit generator.ProgressFunc) *scene.Scene {
	t.Helper()
	sc, err := New().Generate(context.Background(), 800, 600, params, emit)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return sc
}

func TestInvalidDimensions(t *testing.T) {
	if _, err := New().Generate(context.Background(), 0, 600, generator.Params{}, nil); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := New().Generate(context.Background(), 800, -1, generator.Params{}, nil); err == nil {
		t.Error("negative height accepted")
	}
}

func TestGoldenSpiral(t *testing.T) {
	sc := generate(t, generator.Params{
		"pattern_type":   "spiral",
		"density":        200,
		"complexity":     1.618,
		"symmetry":       1,
		"organic_factor": 0.0,
	}, nil)

	if len(sc.Paths) != 1 {
		t.Fatalf("paths = %d, want 1", len(sc.Paths))
	}
	p := sc.Paths[0]
	if len(p.Points) != 200 {
		t.Errorf("points = %d, want 200", len(p.Points))
	}
	if p.Closed {
		t.Error("spiral path must be open")
	}
}

func TestLissajousNeverCloses(t *testing.T) {
	paramSets := []generator.Params{
		{"pattern_type": "lissajous"},
		{"pattern_type": "lissajous", "complexity": 5.0, "symmetry": 7},
		{"pattern_type": "lissajous", "organic_factor": 1.0, "seed": 9},
		{"pattern_type": "lissajous", "density": 10, "completeness": 0.3},
	}

	for _, params := range paramSets {
		sc := generate(t, params, nil)
		if len(sc.Paths) == 0 {
			t.Fatal("no paths emitted")
		}
		for i, p := range sc.Paths {
			if p.Closed {
				t.Errorf("params %v: path %d is closed", params, i)
			}
		}
	}
}

func TestPathMinimumLength(t *testing.T) {
	for _, pt := range []string{"spiral", "wave", "lissajous", "fractal_tree"} {
		sc := generate(t, generator.Params{
			"pattern_type":   pt,
			"organic_factor": 0.5,
			"completeness":   0.4,
			"seed":           3,
		}, nil)
		for i, p := range sc.Paths {
			if len(p.Points) < 2 {
				t.Errorf("%s: path %d has %d points", pt, i, len(p.Points))
			}
		}
	}
}

func TestMonotonicProgress(t *testing.T) {
	for _, pt := range []string{"spiral", "wave", "lissajous", "fractal_tree", "circle_pack"} {
		t.Run(pt, func(t *testing.T) {
			var fractions []float64
			generate(t, generator.Params{
				"pattern_type": pt,
				"density":      300,
				"symmetry":     3,
				"seed":         1,
			}, func(_ *scene.Scene, f float64) error {
				fractions = append(fractions, f)
				return nil
			})

			if len(fractions) == 0 {
				t.Fatal("no progress emitted")
			}
			for i := 1; i < len(fractions); i++ {
				if fractions[i] < fractions[i-1] {
					t.Fatalf("fraction regressed: %v -> %v", fractions[i-1], fractions[i])
				}
			}
			if last := fractions[len(fractions)-1]; last != 1.0 {
				t.Errorf("final fraction = %v, want 1.0", last)
			}
			if first := fractions[0]; first <= 0 {
				t.Errorf("first fraction = %v, want > 0", first)
			}
		})
	}
}

func TestAppendOnlyScene(t *testing.T) {
	var prev *scene.Scene
	generate(t, generator.Params{
		"pattern_type": "spiral",
		"density":      500,
		"symmetry":     6,
	}, func(s *scene.Scene, _ float64) error {
		if prev != nil {
			if len(s.Paths) < len(prev.Paths) || len(s.Circles) < len(prev.Circles) {
				t.Fatal("scene shrank between emissions")
			}
			for i := range prev.Paths {
				if len(prev.Paths[i].Points) != len(s.Paths[i].Points) {
					t.Fatal("earlier path changed between emissions")
				}
			}
		}
		prev = s
		return nil
	})
}

func TestDeterminismWithSeed(t *testing.T) {
	params := generator.Params{
		"pattern_type":   "circle_pack",
		"density":        80,
		"organic_factor": 0.8,
		"color_scheme":   "random",
		"seed":           12345,
	}

	a := generate(t, params, nil)
	b := generate(t, params, nil)

	if len(a.Circles) != len(b.Circles) {
		t.Fatalf("circle counts differ: %d vs %d", len(a.Circles), len(b.Circles))
	}
	for i := range a.Circles {
		if a.Circles[i] != b.Circles[i] {
			t.Fatalf("circle %d differs: %+v vs %+v", i, a.Circles[i], b.Circles[i])
		}
	}
}

func TestSeedDoesNotMutateInput(t *testing.T) {
	params := generator.Params{"pattern_type": "spiral", "density": 9999}
	generate(t, params, nil)
	if params["density"] != 9999 || len(params) != 2 {
		t.Errorf("input params mutated: %v", params)
	}
}

// With organic_factor at zero the deterministic patterns must not consume
// randomness at all: two unseeded runs produce identical geometry.
func TestOrganicZeroReproducible(t *testing.T) {
	for _, pt := range []string{"spiral", "wave", "lissajous"} {
		t.Run(pt, func(t *testing.T) {
			params := generator.Params{
				"pattern_type":   pt,
				"density":        120,
				"complexity":     2.5,
				"symmetry":       4,
				"start_angle":    30.0,
				"organic_factor": 0.0,
			}
			a := generate(t, params, nil)
			b := generate(t, params, nil)

			if len(a.Paths) != len(b.Paths) {
				t.Fatalf("path counts differ: %d vs %d", len(a.Paths), len(b.Paths))
			}
			for i := range a.Paths {
				pa, pb := a.Paths[i], b.Paths[i]
				if len(pa.Points) != len(pb.Points) {
					t.Fatalf("path %d point counts differ", i)
				}
				for j := range pa.Points {
					if pa.Points[j] != pb.Points[j] {
						t.Fatalf("path %d point %d differs: %v vs %v", i, j, pa.Points[j], pb.Points[j])
					}
				}
			}
		})
	}
}

func TestSymmetryReplication(t *testing.T) {
	const sym = 6
	sc, err := New().Generate(context.Background(), 600, 600, generator.Params{
		"pattern_type":   "spiral",
		"density":        60,
		"symmetry":       sym,
		"organic_factor": 0.0,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(sc.Paths) != sym {
		t.Fatalf("paths = %d, want %d", len(sc.Paths), sym)
	}

	center := artgen.Pt(300, 300)
	base := sc.Paths[0].Points
	for k := 1; k < sym; k++ {
		angle := 2 * math.Pi * float64(k) / sym
		copyPoints := sc.Paths[k].Points
		if len(copyPoints) != len(base) {
			t.Fatalf("copy %d point count differs", k)
		}
		for j := range base {
			want := base[j].RotateAbout(center, angle)
			const tolerance = 1e-6
			if math.Abs(copyPoints[j].X-want.X) > tolerance ||
				math.Abs(copyPoints[j].Y-want.Y) > tolerance {
				t.Fatalf("copy %d point %d = %v, want rotation %v", k, j, copyPoints[j], want)
			}
		}
	}
}

func TestFractalTreeDepthCap(t *testing.T) {
	sc := generate(t, generator.Params{
		"pattern_type": "fractal_tree",
		"complexity":   5.0, // uncapped this would mean depth 15
		"line_width":   8.0,
	}, nil)

	if len(sc.Paths) == 0 {
		t.Fatal("no branches emitted")
	}

	// Branch width encodes depth: width = lw * (1 - depth/(cap+1)).
	// Distinct widths therefore count distinct depths.
	widths := map[float64]bool{}
	for _, p := range sc.Paths {
		if len(p.Points) != 2 {
			t.Fatalf("branch with %d points", len(p.Points))
		}
		if p.Width <= 0 {
			t.Fatalf("non-positive branch width %v implies depth beyond cap", p.Width)
		}
		widths[p.Width] = true
	}
	if len(widths) > maxTreeDepth+1 {
		t.Errorf("%d distinct depths exceed cap %d", len(widths), maxTreeDepth)
	}
	// The cap also bounds total branches for a binary tree.
	if max := 1 << (maxTreeDepth + 1); len(sc.Paths) > max {
		t.Errorf("branch count %d exceeds full-tree bound %d", len(sc.Paths), max)
	}
}

func TestFractalTreePartial(t *testing.T) {
	full := generate(t, generator.Params{
		"pattern_type": "fractal_tree", "complexity": 3.0, "seed": 5,
	}, nil)
	partial := generate(t, generator.Params{
		"pattern_type": "fractal_tree", "complexity": 3.0, "completeness": 0.5, "seed": 5,
	}, nil)

	if len(partial.Paths) >= len(full.Paths) {
		t.Errorf("completeness did not prune: %d vs %d branches",
			len(partial.Paths), len(full.Paths))
	}
	if len(partial.Paths) == 0 {
		t.Error("partial tree lost its trunk")
	}
}

func TestCirclePackUnderFill(t *testing.T) {
	sc, err := New().Generate(context.Background(), 200, 200, generator.Params{
		"pattern_type":   "circle_pack",
		"density":        500,
		"organic_factor": 0.0,
		"seed":           7,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(sc.Circles) > 500 {
		t.Fatalf("placed %d circles, more than requested", len(sc.Circles))
	}
	if len(sc.Circles) == 0 {
		t.Fatal("no circles placed")
	}

	// With organic_factor 0 the tolerance is 0: strict non-overlap.
	const eps = 1e-9
	for i := 0; i < len(sc.Circles); i++ {
		for j := i + 1; j < len(sc.Circles); j++ {
			a, b := sc.Circles[i], sc.Circles[j]
			d := a.Center.Distance(b.Center)
			if d < a.Radius+b.Radius-eps {
				t.Fatalf("circles %d and %d overlap: d=%v r=%v+%v", i, j, d, a.Radius, b.Radius)
			}
		}
	}
}

func TestSinkErrorPropagates(t *testing.T) {
	sinkErr := errors.New("disk full")
	sc, err := New().Generate(context.Background(), 800, 600, generator.Params{
		"pattern_type": "spiral",
		"density":      500,
	}, func(_ *scene.Scene, _ float64) error {
		return sinkErr
	})

	if !errors.Is(err, sinkErr) {
		t.Fatalf("Generate err = %v, want %v", err, sinkErr)
	}
	if sc != nil {
		t.Error("failed run returned a scene")
	}
}

func TestCancellationReturnsPartialScene(t *testing.T) {
	emissions := 0
	sc, err := New().Generate(context.Background(), 800, 600, generator.Params{
		"pattern_type": "spiral",
		"density":      500,
		"symmetry":     12,
	}, func(_ *scene.Scene, _ float64) error {
		emissions++
		if emissions >= 3 {
			return generator.ErrStop
		}
		return nil
	})

	if err != nil {
		t.Fatalf("cancelled run errored: %v", err)
	}
	if sc == nil {
		t.Fatal("cancelled run returned nil scene")
	}
	if len(sc.Paths) >= 12 {
		t.Errorf("run did not stop early: %d paths", len(sc.Paths))
	}
}

func TestFinalSceneMatchesLastEmission(t *testing.T) {
	var last *scene.Scene
	var lastFraction float64
	sc := generate(t, generator.Params{
		"pattern_type": "wave",
		"density":      200,
		"symmetry":     3,
	}, func(s *scene.Scene, f float64) error {
		last, lastFraction = s, f
		return nil
	})

	if lastFraction != 1.0 {
		t.Fatalf("final emission fraction = %v", lastFraction)
	}
	if len(last.Paths) != len(sc.Paths) {
		t.Errorf("final emission has %d paths, returned scene has %d",
			len(last.Paths), len(sc.Paths))
	}
}

func BenchmarkSpiral(b *testing.B) {
	g := New()
	params := generator.Params{"pattern_type": "spiral", "density": 500, "symmetry": 6}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(context.Background(), 800, 600, params, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCirclePack(b *testing.B) {
	g := New()
	params := generator.Params{"pattern_type": "circle_pack", "density": 200, "seed": 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(context.Background(), 800, 600, params, nil); err != nil {
			b.Fatal(err)
		}
	}
}
