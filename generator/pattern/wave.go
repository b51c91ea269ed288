package pattern

import (
	"math"
	"math/rand"

	"github.com/artlabs/artgen"
	"github.com/artlabs/artgen/generator"
	"github.com/artlabs/artgen/scene"
)

// drawWave emits one harmonic wave per symmetry copy, stacked at evenly
// spaced vertical offsets. Each wave sums complexity harmonic sine terms
// with increasing frequency and decreasing amplitude. Copies translate
// vertically without a phase change, so they are congruent.
func drawWave(sc *scene.Scene, p params, rng *rand.Rand, em *generator.Emitter) error {
	w := float64(sc.Width)
	h := float64(sc.Height)

	n := effectiveCount(p.density, p.completeness)
	total := p.symmetry * n

	terms := int(p.complexity)
	if terms < 1 {
		terms = 1
	}

	for k := 0; k < p.symmetry; k++ {
		yBase := h / float64(p.symmetry+1) * float64(k+1)
		amp := h / float64(p.symmetry+1) * 0.3
		phase := p.startAngle + jitter(rng, p.organic, 0.5)

		points := make([]artgen.Point, 0, n)
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n-1)
			x := t * w

			y := yBase
			for f := 1; f <= terms; f++ {
				y += amp / float64(f) * math.Sin(2*math.Pi*float64(f)*t+phase)
			}
			y += jitter(rng, p.organic, amp*0.2)

			points = append(points, artgen.Pt(x, y))
			if err := em.Tick(float64(k*n+i+1) / float64(total)); err != nil {
				return err
			}
		}

		sc.AppendPath(scene.Path{
			Points: points,
			Color: artgen.SampleScheme(p.color, p.scheme, p.variation,
				float64(k)/float64(p.symmetry), rng),
			Width:  p.lineWidth,
			Closed: false,
		})
	}
	return nil
}
