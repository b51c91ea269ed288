package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/artlabs/artgen/scene"
)

// Raster renders a scene to a raster image through a gg drawing context.
// Format selects the encoding; PNG is the default.
type Raster struct {
	Format Format
	// JPEGQuality applies to FormatJPEG; zero means 90.
	JPEGQuality int
}

// Format is a raster output encoding.
type Format int

// Supported raster formats.
const (
	FormatPNG Format = iota
	FormatJPEG
)

// NewRaster creates a PNG raster renderer.
func NewRaster() *Raster { return &Raster{Format: FormatPNG} }

// Render rasterizes the scene and writes the encoded image.
func (r *Raster) Render(s *scene.Scene, w io.Writer) error {
	dc := gg.NewContext(s.Width, s.Height)
	defer dc.Close()

	bg := s.Background
	dc.ClearWithColor(gg.RGB(float64(bg.R)/255, float64(bg.G)/255, float64(bg.B)/255))

	for _, p := range s.Paths {
		if len(p.Points) < 2 {
			continue
		}
		dc.SetColor(p.Color.Color())
		dc.SetLineWidth(p.Width)
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)

		dc.MoveTo(p.Points[0].X, p.Points[0].Y)
		for _, pt := range p.Points[1:] {
			dc.LineTo(pt.X, pt.Y)
		}

		if p.Closed {
			dc.ClosePath()
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("render: fill path: %w", err)
			}
		} else if err := dc.Stroke(); err != nil {
			return fmt.Errorf("render: stroke path: %w", err)
		}
	}

	for _, c := range s.Circles {
		dc.SetColor(c.Color.Color())
		dc.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
		if c.Filled {
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("render: fill circle: %w", err)
			}
		} else {
			dc.SetLineWidth(c.StrokeWidth)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("render: stroke circle: %w", err)
			}
		}
	}

	switch r.Format {
	case FormatJPEG:
		q := r.JPEGQuality
		if q == 0 {
			q = 90
		}
		return dc.EncodeJPEG(w, q)
	default:
		return dc.EncodePNG(w)
	}
}
