package pattern

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/artlabs/artgen"
	"github.com/artlabs/artgen/generator"
	"github.com/artlabs/artgen/scene"
)

// maxTreeDepth caps recursion regardless of parameters to bound total work.
const maxTreeDepth = 12

// drawFractalTree grows a recursive branching structure per symmetry copy.
// Each node emits its branch segment, then recurses into its children with
// angle spread and length decay driven by complexity. Branch count is fixed
// at two unless the organic factor enables per-node variation. Completeness
// acts as an independent per-branch skip probability, producing asymmetric
// partial trees. Depth-first order fixes path emission order.
func drawFractalTree(sc *scene.Scene, p params, rng *rand.Rand, em *generator.Emitter) error {
	w := float64(sc.Width)
	h := float64(sc.Height)
	center := artgen.Pt(w/2, h/2)

	depthCap := int(p.complexity * 3)
	if depthCap > maxTreeDepth {
		depthCap = maxTreeDepth
	}
	if depthCap < 1 {
		depthCap = 1
	}

	spread := clampf(math.Pi/9*p.complexity, math.Pi/12, math.Pi/2)
	decay := clampf(0.75-0.03*p.complexity, 0.58, 0.72)
	rootLength := math.Min(w, h) * 0.15

	// Completion estimate: a full binary tree per copy, scaled by the
	// branch survival probability. Clamped below 1 until the last flush.
	est := float64(p.symmetry) * (math.Pow(2, float64(depthCap+1)) - 1) * p.completeness
	if est < 1 {
		est = 1
	}

	t := &treeRun{sc: sc, em: em, rng: rng, p: p, depthCap: depthCap,
		spread: spread, decay: decay, est: est}

	for k := 0; k < p.symmetry; k++ {
		rot := 2 * math.Pi * float64(k) / float64(p.symmetry)
		root := artgen.Pt(w/2, h*0.8).RotateAbout(center, rot)
		angle := -math.Pi/2 + rot + p.startAngle + jitter(rng, p.organic, 0.1)

		if err := t.branch(root, angle, rootLength, 0); err != nil {
			return err
		}
	}

	artgen.Logger().Debug("fractal tree grown",
		slog.Int("branches", t.drawn), slog.Int("depth_cap", depthCap))
	return nil
}

type treeRun struct {
	sc       *scene.Scene
	em       *generator.Emitter
	rng      *rand.Rand
	p        params
	depthCap int
	spread   float64
	decay    float64
	est      float64
	drawn    int
}

func (t *treeRun) branch(from artgen.Point, angle, length float64, depth int) error {
	if depth > t.depthCap || length < 2 {
		return nil
	}

	end := artgen.Pt(
		from.X+length*math.Cos(angle),
		from.Y+length*math.Sin(angle),
	)

	t.sc.AppendPath(scene.Path{
		Points: []artgen.Point{from, end},
		Color: artgen.SampleScheme(t.p.color, t.p.scheme, t.p.variation,
			float64(depth)/float64(t.depthCap), t.rng),
		Width:  t.p.lineWidth * (1 - float64(depth)/float64(t.depthCap+1)),
		Closed: false,
	})
	t.drawn++

	if err := t.em.Tick(math.Min(float64(t.drawn)/t.est, 0.99)); err != nil {
		return err
	}

	children := 2
	if t.p.organic > 0 {
		children = 2 + t.rng.Intn(3)
	}

	for j := 0; j < children; j++ {
		// Spread children symmetrically around the parent direction.
		offset := t.spread * (2*float64(j)/float64(children-1) - 1)
		childAngle := angle + offset + jitter(t.rng, t.p.organic, 0.3)
		childLength := length * t.decay * (1 + jitter(t.rng, t.p.organic, 0.15))

		// Skipping a branch skips its entire subtree.
		if t.p.completeness < 1 && t.rng.Float64() > t.p.completeness {
			continue
		}
		if err := t.branch(end, childAngle, childLength, depth+1); err != nil {
			return err
		}
	}
	return nil
}
