// Package render turns a generated scene into concrete image formats.
//
// Renderers need exactly three capabilities: stroked open/closed polylines
// with per-path color and width, stroked or filled circles, and a solid
// background fill. Both renderers here (SVG, raster) consume the scene
// without modifying it, so a mid-run snapshot renders as safely as a
// completed scene.
package render

import (
	"io"

	"github.com/artlabs/artgen/scene"
)

// Renderer serializes a scene to an output format.
type Renderer interface {
	Render(s *scene.Scene, w io.Writer) error
}
