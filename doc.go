// Package artgen is the core engine of a procedural 2D art generator.
//
// # Overview
//
// artgen turns a parameter set into a structured scene description (ordered
// stroke paths and circles on a solid background) via pluggable generation
// algorithms: mathematical patterns and random walks. Generation reports its
// progress incrementally through a synchronous callback, which is also the
// cooperation point for pause, resume, and cancellation.
//
// # Quick Start
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/artlabs/artgen/generator"
//	    "github.com/artlabs/artgen/generator/pattern"
//	    "github.com/artlabs/artgen/render"
//	)
//
//	gen := pattern.New()
//	sc, err := gen.Generate(context.Background(), 800, 600, generator.Params{
//	    "pattern_type": "spiral",
//	    "density":      200,
//	}, nil)
//	if err != nil {
//	    // handle
//	}
//	_ = render.NewSVG().Render(sc, os.Stdout)
//
// # Architecture
//
// The library is organized into:
//   - Root package: shared value types (Point, RGB, HSV), color schemes, logging
//   - scene: the renderer-agnostic output model (append-only paths and circles)
//   - generator: the uniform generator contract, parameter schemas, registry
//   - generator/pattern, generator/walk: the algorithms
//   - session: pause/resume/cancel bookkeeping for one generation run
//   - render: SVG and raster renderers consuming a Scene
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down, angles in
// radians.
package artgen
