package pattern

import (
	"math"
	"math/rand"

	"github.com/artlabs/artgen"
	"github.com/artlabs/artgen/generator"
	"github.com/artlabs/artgen/scene"
)

// drawSpiral emits one Archimedean spiral per symmetry copy. Point i has
// radius growing linearly with i and angle winding complexity turns, so
// complexity controls how tightly the spiral coils. Copies are rotated
// about the canvas center and colored at t = copy/symmetry.
func drawSpiral(sc *scene.Scene, p params, rng *rand.Rand, em *generator.Emitter) error {
	center := artgen.Pt(float64(sc.Width)/2, float64(sc.Height)/2)
	maxRadius := math.Min(float64(sc.Width), float64(sc.Height)) * 0.4

	n := effectiveCount(p.density, p.completeness)
	total := p.symmetry * n

	for k := 0; k < p.symmetry; k++ {
		offset := 2*math.Pi*float64(k)/float64(p.symmetry) + p.startAngle +
			jitter(rng, p.organic, 0.1)

		points := make([]artgen.Point, 0, n)
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			angle := t*p.complexity*2*math.Pi + offset + jitter(rng, p.organic, 0.15)
			radius := t * maxRadius * (1 + jitter(rng, p.organic, 0.08))

			points = append(points, artgen.Pt(
				center.X+radius*math.Cos(angle),
				center.Y+radius*math.Sin(angle),
			))
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
