// Package session provides caller-owned bookkeeping for one generation run:
// pause/resume/cancel signalling and active-time accounting that excludes
// paused intervals.
//
// A Session formalizes the cooperative protocol between a generator running
// on its own goroutine and the consumer driving it. The consumer flips flags
// from outside; the generator observes them only inside Checkpoint, the
// single function it calls at every progress emission point. Pausing never
// loses or rolls back work: the generator's internal state is untouched
// while Checkpoint waits.
package session

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/artlabs/artgen"
	"github.com/artlabs/artgen/generator"
	"github.com/artlabs/artgen/scene"
)

// State is the lifecycle state of a generation run.
type State int32

// Session lifecycle states.
const (
	Idle State = iota
	Running
	Paused
	Completed
	Cancelled
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// defaultPollInterval is how often a paused Checkpoint re-reads the pause
// flag. It bounds resume latency.
const defaultPollInterval = 25 * time.Millisecond

// Option configures a Session during creation.
type Option func(*Session)

// WithPollInterval sets the pause polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// Session owns the pause/cancel flags and the latest scene snapshot for one
// generation run. The consumer writes the flags; the worker goroutine only
// reads them inside Checkpoint. No other synchronization is required.
type Session struct {
	id           string
	pollInterval time.Duration

	state     atomic.Int32
	paused    atomic.Bool
	cancelled atomic.Bool

	startedAt   time.Time
	pausedAccum atomic.Int64 // nanoseconds

	mu           sync.Mutex
	pauseStarted time.Time // zero when not inside a pause interval
	latest       *scene.Scene
	latestFrac   float64
}

// New creates a session in the Idle state.
func New(opts ...Option) *Session {
	s := &Session{
		id:           uuid.NewString(),
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return State(s.state.Load()) }

// start marks the session Running and records the start time.
// Called once by Run; calling Checkpoint before Run started the clock is a
// caller contract violation.
func (s *Session) start() {
	s.startedAt = time.Now()
	s.state.Store(int32(Running))
}

// Pause requests a pause. The running generator honors it at its next
// Checkpoint; until then it keeps producing.
func (s *Session) Pause() {
	if s.paused.CompareAndSwap(false, true) {
		s.state.Store(int32(Paused))
		artgen.Logger().Debug("session pause requested", slog.String("id", s.id))
	}
}

// Resume clears a pause request. The waiting Checkpoint returns control to
// the generator within one poll interval.
func (s *Session) Resume() {
	if s.paused.CompareAndSwap(true, false) {
		s.state.Store(int32(Running))
		artgen.Logger().Debug("session resumed", slog.String("id", s.id))
	}
}

// IsPaused reports whether a pause is currently requested.
func (s *Session) IsPaused() bool { return s.paused.Load() }

// Cancel requests cancellation. The run unwinds at its next Checkpoint and
// returns its partial scene; cancellation is not an error.
func (s *Session) Cancel() {
	s.cancelled.Store(true)
}

// Elapsed returns the active generation time: wall time since the run
// started minus every completed pause interval and, while paused, the
// still-open interval up to now.
func (s *Session) Elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	elapsed := time.Since(s.startedAt) - time.Duration(s.pausedAccum.Load())

	s.mu.Lock()
	if !s.pauseStarted.IsZero() {
		elapsed -= time.Since(s.pauseStarted)
	}
	s.mu.Unlock()
	return elapsed
}

// Latest returns the most recent scene snapshot and its progress fraction.
// The snapshot is a fully consistent scene safe to hand to a renderer at
// any time, including while paused.
func (s *Session) Latest() (*scene.Scene, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.latestFrac
}

// Checkpoint is the generator-side half of the protocol, used directly as a
// generator.ProgressFunc. It stores the snapshot, then cooperatively waits
// out any pause, and finally reports cancellation as generator.ErrStop.
func (s *Session) Checkpoint(sc *scene.Scene, fraction float64) error {
	s.mu.Lock()
	s.latest = sc
	if fraction > s.latestFrac {
		s.latestFrac = fraction
	}
	s.mu.Unlock()

	for s.paused.Load() && !s.cancelled.Load() {
		s.mu.Lock()
		if s.pauseStarted.IsZero() {
			s.pauseStarted = time.Now()
		}
		s.mu.Unlock()

		time.Sleep(s.pollInterval)
	}

	// Close out the pause interval if one was open.
	s.mu.Lock()
	if !s.pauseStarted.IsZero() {
		s.pausedAccum.Add(int64(time.Since(s.pauseStarted)))
		s.pauseStarted = time.Time{}
	}
	s.mu.Unlock()

	if s.cancelled.Load() {
		return generator.ErrStop
	}
	return nil
}

// Result is the outcome of a session run.
type Result struct {
	Scene *scene.Scene
	Err   error
}

// Run starts g on its own goroutine, wiring Checkpoint in as the progress
// sink, and returns a channel that yields the single Result. The session
// moves to Completed, Cancelled, or Failed accordingly.
//
// One session drives one run; reuse is a caller error.
func (s *Session) Run(ctx context.Context, g generator.Generator, width, height int, params generator.Params) <-chan Result {
	out := make(chan Result, 1)
	s.start()

	go func() {
		sc, err := g.Generate(ctx, width, height, params, s.Checkpoint)
		switch {
		case err != nil:
			s.state.Store(int32(Failed))
		case s.cancelled.Load():
			s.state.Store(int32(Cancelled))
		default:
			s.state.Store(int32(Completed))
		}
		artgen.Logger().Info("session finished",
			slog.String("id", s.id),
			slog.String("state", s.State().String()),
			slog.Duration("active", s.Elapsed()))
		out <- Result{Scene: sc, Err: err}
	}()
	return out
}
