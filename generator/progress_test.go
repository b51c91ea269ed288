package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/artlabs/artgen"
	"github.com/artlabs/artgen/scene"
)

func TestEmitterMonotonicFractions(t *testing.T) {
	sc := scene.New(10, 10, artgen.White)

	var fractions []float64
	em := NewEmitter(context.Background(), func(_ *scene.Scene, f float64) error {
		fractions = append(fractions, f)
		return nil
	}, sc)

	// Deliberately feed a regressing fraction; the emitter must clamp it.
	if err := em.Flush(0.5); err != nil {
		t.Fatal(err)
	}
	if err := em.Flush(0.3); err != nil {
		t.Fatal(err)
	}
	if err := em.Flush(1.2); err != nil {
		t.Fatal(err)
	}

	want := []float64{0.5, 0.5, 1.0}
	if len(fractions) != len(want) {
		t.Fatalf("fractions = %v, want %v", fractions, want)
	}
	for i := range want {
		if fractions[i] != want[i] {
			t.Errorf("fractions[%d] = %v, want %v", i, fractions[i], want[i])
		}
	}
}

func TestEmitterBatchesTicks(t *testing.T) {
	sc := scene.New(10, 10, artgen.White)

	calls := 0
	em := NewEmitter(context.Background(), func(_ *scene.Scene, _ float64) error {
		calls++
		return nil
	}, sc)
	// Pin the interval clock so only the element count can trigger a flush,
	// however slowly the loop below runs.
	em.lastSent = time.Now().Add(time.Hour)

	for i := 0; i < batchElements-1; i++ {
		if err := em.Tick(float64(i) / 100); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 0 {
		t.Errorf("emitted before batch filled: %d calls", calls)
	}
	if err := em.Tick(0.5); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestEmitterSnapshotsScene(t *testing.T) {
	sc := scene.New(10, 10, artgen.White)
	sc.AppendPath(scene.Path{Points: []artgen.Point{artgen.Pt(0, 0), artgen.Pt(1, 1)}, Width: 1})

	var got *scene.Scene
	em := NewEmitter(context.Background(), func(s *scene.Scene, _ float64) error {
		got = s
		return nil
	}, sc)

	if err := em.Flush(0.5); err != nil {
		t.Fatal(err)
	}

	// Appending after the flush must not change the snapshot.
	sc.AppendPath(scene.Path{Points: []artgen.Point{artgen.Pt(2, 2), artgen.Pt(3, 3)}, Width: 1})
	if len(got.Paths) != 1 {
		t.Errorf("snapshot tracks live scene: %d paths", len(got.Paths))
	}
}

func TestEmitterContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	em := NewEmitter(ctx, func(_ *scene.Scene, _ float64) error {
		t.Fatal("sink called after cancellation")
		return nil
	}, scene.New(10, 10, artgen.White))

	if err := em.Flush(0.5); !errors.Is(err, ErrStop) {
		t.Errorf("err = %v, want ErrStop", err)
	}
}

func TestEmitterNilSink(t *testing.T) {
	em := NewEmitter(context.Background(), nil, scene.New(10, 10, artgen.White))
	if err := em.Flush(1.0); err != nil {
		t.Errorf("nil sink flush errored: %v", err)
	}
}
