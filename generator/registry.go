package generator

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a fresh Generator instance. Each New call invokes the
// factory again, so generators holding per-run state stay isolated.
type Factory func() Generator

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a generator available under name. Algorithm packages call
// it from init(), so a front end selects generators purely by importing:
//
//	import _ "github.com/artlabs/artgen/generator/pattern"
//
// and then resolving "mathematical" at run time. Register panics on a nil
// factory or a name registered twice; both are wiring mistakes that should
// fail at startup, not be papered over.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("generator: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("generator: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a named generator. Tests use it to restore registry
// state; removing an unknown name is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New instantiates the generator registered under name. An unknown name is
// an error; the message hints at a missing blank import, the usual cause.
func New(name string) (Generator, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("generator: unknown generator %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Names returns the sorted names of all registered generators, letting front
// ends enumerate what is available without knowing any concrete types.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
