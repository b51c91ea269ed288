package pattern

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/artlabs/artgen"
	"github.com/artlabs/artgen/generator"
	"github.com/artlabs/artgen/scene"
)

// placementAttempts is the retry budget per circle. When the budget is
// exhausted the circle is simply not placed; a crowded canvas ends up with
// fewer circles than requested rather than an error.
const placementAttempts = 50

// drawCirclePack packs up to density circles without overlap. The candidate
// radius range is controlled by complexity; the organic factor shrinks the
// required separation margin, permitting tighter, more organic clustering.
// Symmetry replicates the packed base set rotated about the canvas center.
func drawCirclePack(sc *scene.Scene, p params, rng *rand.Rand, em *generator.Emitter) error {
	w := float64(sc.Width)
	h := float64(sc.Height)
	center := artgen.Pt(w/2, h/2)

	maxRadius := math.Min(w, h) * 0.1
	minRadius := maxRadius * 0.1
	tolerance := p.organic * minRadius

	n := effectiveCount(p.density, p.completeness)

	type packed struct {
		center artgen.Point
		radius float64
	}
	circles := make([]packed, 0, n)
	exhausted := 0

	for i := 0; i < n; i++ {
		placed := false
		for attempt := 0; attempt < placementAttempts && !placed; attempt++ {
			c := artgen.Pt(rng.Float64()*w, rng.Float64()*h)
			r := maxRadius / (1 + p.complexity*rng.Float64())

			// Accept when the distance to every existing circle is at least
			// the radius sum minus the overlap tolerance; shrink first if a
			// smaller radius would still fit.
			ok := true
			for _, other := range circles {
				d := c.Distance(other.center)
				if limit := d - other.radius + tolerance; r > limit {
					r = limit
				}
				if r < minRadius {
					ok = false
					break
				}
			}
			if ok {
				circles = append(circles, packed{center: c, radius: r})
				placed = true
			}
		}
		if !placed {
			exhausted++
		}
		// The placement phase accounts for 90% of the run; replication
		// takes the rest.
		if err := em.Tick(float64(i+1) / float64(n) * 0.9); err != nil {
			return err
		}
	}

	if exhausted > 0 {
		artgen.Logger().Warn("circle placement budget exhausted",
			slog.Int("requested", n), slog.Int("placed", len(circles)))
	}

	total := p.symmetry * len(circles)
	done := 0
	for k := 0; k < p.symmetry; k++ {
		rot := 2*math.Pi*float64(k)/float64(p.symmetry) + jitter(rng, p.organic, 0.05)
		for idx, c := range circles {
			sc.AppendCircle(scene.Circle{
				Center: c.center.RotateAbout(center, rot),
				Radius: c.radius,
				Color: artgen.SampleScheme(p.color, p.scheme, p.variation,
					float64(idx)/float64(len(circles)), rng),
				Filled:      false,
				StrokeWidth: p.lineWidth,
			})
			done++
			if err := em.Tick(0.9 + 0.1*float64(done)/float64(total)); err != nil {
				return err
			}
		}
	}
	return nil
}
