package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/artlabs/artgen/scene"
)

// SVG renders a scene as a standalone SVG document. Open paths become
// polylines with round caps and joins; closed paths become filled polygons;
// circles are stroked or filled per element.
type SVG struct{}

// NewSVG creates an SVG renderer.
func NewSVG() *SVG { return &SVG{} }

// Render writes the scene as an SVG document.
func (*SVG) Render(s *scene.Scene, w io.Writer) error {
	canvas := svg.New(w)
	width := float64(s.Width)
	height := float64(s.Height)

	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height,
		fmt.Sprintf("fill:rgb(%d,%d,%d)", s.Background.R, s.Background.G, s.Background.B))

	for _, p := range s.Paths {
		if len(p.Points) < 2 {
			continue
		}
		xs := make([]float64, len(p.Points))
		ys := make([]float64, len(p.Points))
		for i, pt := range p.Points {
			xs[i] = pt.X
			ys[i] = pt.Y
		}

		rgb := fmt.Sprintf("rgb(%d,%d,%d)", p.Color.R, p.Color.G, p.Color.B)
		if p.Closed {
			canvas.Polygon(xs, ys, fmt.Sprintf(
				"fill:%s;stroke:%s;stroke-width:%.2f", rgb, rgb, p.Width))
		} else {
			canvas.Polyline(xs, ys, fmt.Sprintf(
				"fill:none;stroke:%s;stroke-width:%.2f;stroke-linecap:round;stroke-linejoin:round",
				rgb, p.Width))
		}
	}

	for _, c := range s.Circles {
		rgb := fmt.Sprintf("rgb(%d,%d,%d)", c.Color.R, c.Color.G, c.Color.B)
		var style string
		if c.Filled {
			style = fmt.Sprintf("fill:%s;stroke:none", rgb)
		} else {
			style = fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.2f", rgb, c.StrokeWidth)
		}
		canvas.Circle(c.Center.X, c.Center.Y, c.Radius, style)
	}

	canvas.End()
	return nil
}
