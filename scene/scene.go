// Package scene defines the renderer-agnostic output model of a generation
// run: an ordered sequence of stroke paths and circles on a solid background.
//
// A Scene is owned exclusively by the generation run that creates it until it
// is handed to a renderer. It is mutated only by appending fully constructed
// elements, so any snapshot taken mid-run is a valid prefix of the final
// scene.
package scene

import (
	"github.com/artlabs/artgen"
)

// Path is an ordered polyline with uniform color and stroke width.
// A path holds at least two points; Closed means the renderer draws an
// implicit final edge from the last point back to the first.
type Path struct {
	Points []artgen.Point
	Color  artgen.RGB
	Width  float64
	Closed bool
}

// Circle is a stroked or filled circle.
type Circle struct {
	Center      artgen.Point
	Radius      float64
	Color       artgen.RGB
	Filled      bool
	StrokeWidth float64
}

// Scene is the structured output of one generation run.
type Scene struct {
	Width      int
	Height     int
	Background artgen.RGB
	Paths      []Path
	Circles    []Circle
}

// New creates an empty scene with the given canvas size and background.
func New(width, height int, background artgen.RGB) *Scene {
	return &Scene{
		Width:      width,
		Height:     height,
		Background: background,
	}
}

// AppendPath appends a fully constructed path to the scene.
// Paths with fewer than two points are dropped: they have no renderable
// geometry and are never emitted.
func (s *Scene) AppendPath(p Path) {
	if len(p.Points) < 2 {
		return
	}
	s.Paths = append(s.Paths, p)
}

// AppendCircle appends a fully constructed circle to the scene.
func (s *Scene) AppendCircle(c Circle) {
	if c.Radius <= 0 {
		return
	}
	s.Circles = append(s.Circles, c)
}

// Clone creates a deep copy of the scene. Snapshots handed to a progress
// sink are clones, so the generating run can keep appending to its own
// instance without racing a consumer.
func (s *Scene) Clone() *Scene {
	out := &Scene{
		Width:      s.Width,
		Height:     s.Height,
		Background: s.Background,
	}
	if len(s.Paths) > 0 {
		out.Paths = make([]Path, len(s.Paths))
		for i, p := range s.Paths {
			cp := p
			cp.Points = make([]artgen.Point, len(p.Points))
			copy(cp.Points, p.Points)
			out.Paths[i] = cp
		}
	}
	if len(s.Circles) > 0 {
		out.Circles = make([]Circle, len(s.Circles))
		copy(out.Circles, s.Circles)
	}
	return out
}
