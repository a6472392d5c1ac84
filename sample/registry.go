package sample

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknown is returned by Lookup and Run for an id with no sample.
var ErrUnknown = errors.New("sample: unknown sample")

var (
	registryMu sync.RWMutex
	samples    = make(map[int]Sample)
)

// Register adds s to the registry, typically from init().
//
// Register panics if s.ID is not positive or is already registered.
func Register(s Sample) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if s.ID <= 0 {
		panic(fmt.Sprintf("sample: Register with invalid id %d", s.ID))
	}
	if _, dup := samples[s.ID]; dup {
		panic(fmt.Sprintf("sample: Register called twice for id %d", s.ID))
	}
	samples[s.ID] = s
}

// Unregister removes a sample. Unknown ids are a no-op.
func Unregister(id int) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(samples, id)
}

// Lookup returns the sample registered under id.
func Lookup(id int) (Sample, error) {
	registryMu.RLock()
	s, ok := samples[id]
	registryMu.RUnlock()

	if !ok {
		return Sample{}, fmt.Errorf("%w: %d", ErrUnknown, id)
	}
	return s, nil
}

// All returns the registered samples ordered by id.
func All() []Sample {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
