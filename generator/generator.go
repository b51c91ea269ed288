// Package generator defines the uniform contract every art generator
// implements: descriptive metadata, a parameter schema used for validation
// and control rendering, and a Generate entry point that reports incremental
// progress through a synchronous sink.
package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/artlabs/artgen/scene"
)

// ErrStop is returned by a progress sink to ask the running generator to
// stop. The generator unwinds and returns its partial scene with a nil
// error: stopping is cooperation, not failure.
var ErrStop = errors.New("generator: stop requested")

// ProgressFunc receives the accumulating scene and a completion fraction in
// (0, 1]. The scene argument is a snapshot safe to retain and render.
// Returning ErrStop (or an error wrapping it) cancels the run; any other
// error propagates out of Generate unchanged.
type ProgressFunc func(s *scene.Scene, fraction float64) error

// Generator is implemented by every art generation algorithm family.
//
// Generate must validate params against the schema (clamping and defaulting,
// never failing on a malformed field), must not mutate the params map it is
// given, must run deterministically for a fixed nonzero "seed" parameter,
// and must hand the returned scene to emit with fraction 1.0 before
// returning it.
type Generator interface {
	// Name returns the display name of the generator.
	Name() string
	// Description returns a one-line description for UI display.
	Description() string
	// Icon returns a short decorative glyph for UI display.
	Icon() string
	// Schema returns the generator's parameter schema.
	Schema() Schema
	// Generate produces a scene for the given canvas size and parameters.
	// emit may be nil when the caller has no use for incremental progress.
	Generate(ctx context.Context, width, height int, params Params, emit ProgressFunc) (*scene.Scene, error)
}

// NewRand returns the pseudo-random source for a single generation run.
// A nonzero seed gives a reproducible stream; zero seeds from the clock.
// Each call owns its source, so concurrent runs cannot interfere with each
// other's determinism.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
