package generator

import (
	"context"
	"time"

	"github.com/artlabs/artgen/scene"
)

// Emission cadence: a snapshot goes to the sink at least every batchElements
// appended elements or every batchInterval of wall time, whichever comes
// first. The cadence bounds pause and cancel latency, since the sink is the
// only cooperation point inside a run.
const (
	batchElements = 50
	batchInterval = 100 * time.Millisecond
)

// Emitter batches progress emission for a running generator. Fractions handed
// to the sink are clamped to be monotonically non-decreasing. Every emission
// carries a deep snapshot of the scene, so the generator keeps sole ownership
// of its own instance.
//
// Emitter also folds in context cancellation: an expired ctx reads as a stop
// request at the next emission point, mirroring a sink that returns ErrStop.
type Emitter struct {
	ctx  context.Context
	emit ProgressFunc
	sc   *scene.Scene

	pending  int
	lastSent time.Time
	lastFrac float64
}

// NewEmitter creates an emitter for one generation run over sc.
// emit may be nil, in which case only ctx cancellation is observed.
func NewEmitter(ctx context.Context, emit ProgressFunc, sc *scene.Scene) *Emitter {
	return &Emitter{
		ctx:      ctx,
		emit:     emit,
		sc:       sc,
		lastSent: time.Now(),
	}
}

// Tick records one completed element and emits a snapshot when the batching
// cadence is due. fraction is the caller's estimate of overall completion.
// It returns ErrStop when the run should unwind, or any other error the sink
// produced.
func (e *Emitter) Tick(fraction float64) error {
	e.pending++
	if e.pending < batchElements && time.Since(e.lastSent) < batchInterval {
		return nil
	}
	return e.Flush(fraction)
}

// Flush unconditionally emits a snapshot at the given fraction.
// Generators call this with fraction 1.0 exactly once, at completion.
func (e *Emitter) Flush(fraction float64) error {
	e.pending = 0
	e.lastSent = time.Now()

	if err := e.ctx.Err(); err != nil {
		return ErrStop
	}
	if e.emit == nil {
		return nil
	}

	if fraction < e.lastFrac {
		fraction = e.lastFrac
	}
	if fraction > 1 {
		fraction = 1
	}
	e.lastFrac = fraction

	return e.emit(e.sc.Clone(), fraction)
}
