package pattern

import (
	"math"
	"math/rand"

	"github.com/artlabs/artgen"
	"github.com/artlabs/artgen/generator"
	"github.com/artlabs/artgen/scene"
)

// drawLissajous emits the parametric curve x = A·sin(a·t+δ), y = B·sin(b·t)
// sampled over [0, 2π]. The frequency pair (a, b) derives from complexity;
// δ is the start angle. Symmetry copies rotate the base curve about the
// canvas center.
//
// The sampled path never closes: its endpoints only coincide for frequency
// ratios that happen to loop, and closing it unconditionally draws a
// spurious chord across the figure.
func drawLissajous(sc *scene.Scene, p params, rng *rand.Rand, em *generator.Emitter) error {
	center := artgen.Pt(float64(sc.Width)/2, float64(sc.Height)/2)
	scaleX := float64(sc.Width) * 0.4
	scaleY := float64(sc.Height) * 0.4

	freqA := math.Max(1, math.Round(p.complexity))
	freqB := freqA + 1

	n := effectiveCount(p.density, p.completeness)
	total := p.symmetry * n

	// Base curve, computed once so every symmetry copy is congruent.
	base := make([]artgen.Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n) * 2 * math.Pi
		ph := jitter(rng, p.organic, 0.1)
		base = append(base, artgen.Pt(
			center.X+scaleX*math.Sin(freqA*t+p.startAngle+ph),
			center.Y+scaleY*math.Sin(freqB*t+ph),
		))
	}

	for k := 0; k < p.symmetry; k++ {
		rot := 2*math.Pi*float64(k)/float64(p.symmetry) + jitter(rng, p.organic, 0.1)

		points := make([]artgen.Point, 0, n)
		for i, b := range base {
			points = append(points, b.RotateAbout(center, rot))
			if err := em.Tick(float64(k*n+i+1) / float64(total)); err != nil {
				return err
			}
		}

		sc.AppendPath(scene.Path{
			Points: points,
			Color: artgen.SampleScheme(p.color, p.scheme, p.variation,
				float64(k)/float64(p.symmetry), rng),
			Width:  p.lineWidth,
			Closed: false, // never close a Lissajous path
		})
	}
	return nil
}
