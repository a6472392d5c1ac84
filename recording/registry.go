package recording

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for a name nothing registered.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// BackendConfig carries playback settings. A backend ignores the fields
// it does not support.
type BackendConfig struct {
	// Supersample is the per-axis supersampling factor; values below 2
	// render at surface size.
	Supersample int
	// Workers is the number of goroutines a backend may rasterize with.
	Workers int
}

// BackendFactory builds a backend for one playback.
type BackendFactory func(cfg BackendConfig) Backend

var registry struct {
	sync.RWMutex
	factories map[string]BackendFactory
}

// Register makes a backend available to NewBackend under name. Backend
// packages call it from init, so importing the package is enough.
// It panics on an empty name, a nil factory or a duplicate name.
func Register(name string, factory BackendFactory) {
	if name == "" || factory == nil {
		panic("recording: Register needs a name and a factory")
	}
	registry.Lock()
	defer registry.Unlock()
	if registry.factories == nil {
		registry.factories = make(map[string]BackendFactory)
	}
	if _, dup := registry.factories[name]; dup {
		panic("recording: backend " + name + " registered twice")
	}
	registry.factories[name] = factory
}

// NewBackend builds the backend registered under name.
func NewBackend(name string, cfg BackendConfig) (Backend, error) {
	registry.RLock()
	factory := registry.factories[name]
	registry.RUnlock()
	if factory == nil {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return factory(cfg), nil
}

// Backends returns the registered names in sorted order.
func Backends() []string {
	registry.RLock()
	defer registry.RUnlock()
	return slices.Sorted(maps.Keys(registry.factories))
}

// Render plays the recorded commands back on a new instance of the named
// backend and returns it once End has run.
func (r *Recorder) Render(name string, cfg BackendConfig) (Backend, error) {
	b, err := NewBackend(name, cfg)
	if err != nil {
		return nil, err
	}
	if err := r.Playback(b); err != nil {
		return nil, fmt.Errorf("recording: %s playback: %w", name, err)
	}
	return b, nil
}
