package generator

import (
	"context"
	"testing"

	"github.com/artlabs/artgen"
	"github.com/artlabs/artgen/scene"
)

// Verify at compile time that mockGenerator implements Generator.
var _ Generator = (*mockGenerator)(nil)

// mockGenerator is a minimal generator implementation for testing.
type mockGenerator struct {
	name string
}

func (g *mockGenerator) Name() string        { return g.name }
func (g *mockGenerator) Description() string { return "mock" }
func (g *mockGenerator) Icon() string        { return "·" }
func (g *mockGenerator) Schema() Schema      { return Schema{} }

func (g *mockGenerator) Generate(_ context.Context, width, height int, _ Params, _ ProgressFunc) (*scene.Scene, error) {
	return scene.New(width, height, artgen.White), nil
}

// resetRegistry clears all registered generators for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories = make(map[string]Factory)
}

func TestRegisterAndNew(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("mock", func() Generator {
		return &mockGenerator{name: "mock"}
	})

	g, err := New("mock")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.Name() != "mock" {
		t.Errorf("got name %q, want %q", g.Name(), "mock")
	}
}

func TestNewUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	if _, err := New("nope"); err == nil {
		t.Fatal("expected error for unknown generator")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("dup", func() Generator { return &mockGenerator{name: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("dup", func() Generator { return &mockGenerator{name: "dup"} })
}

func TestRegisterNilPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if recover() == nil {
			t.Error("nil factory Register did not panic")
		}
	}()
	Register("nil", nil)
}

func TestNamesSorted(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		Register(name, func() Generator { return &mockGenerator{} })
	}

	names := Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
