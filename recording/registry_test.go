package recording

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glscene/gl"
)

// mockBackend counts the calls it receives.
type mockBackend struct {
	width, height int
	clears, draws int
	ended         bool
}

func (b *mockBackend) Begin(width, height int) error {
	b.width, b.height = width, height
	return nil
}

func (b *mockBackend) Clear(ClearCommand) { b.clears++ }
func (b *mockBackend) Draw(DrawCommand)   { b.draws++ }

func (b *mockBackend) End() error {
	b.ended = true
	return nil
}

// withRegistry empties the registry for one test and restores the
// previous registrations afterwards.
func withRegistry(t *testing.T) {
	t.Helper()
	registry.Lock()
	saved := registry.factories
	registry.factories = nil
	registry.Unlock()
	t.Cleanup(func() {
		registry.Lock()
		registry.factories = saved
		registry.Unlock()
	})
}

func TestRegisterAndNewBackend(t *testing.T) {
	withRegistry(t)

	var got BackendConfig
	Register("mock", func(cfg BackendConfig) Backend {
		got = cfg
		return &mockBackend{}
	})
	b, err := NewBackend("mock", BackendConfig{Supersample: 2, Workers: 4})
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	if _, ok := b.(*mockBackend); !ok {
		t.Fatalf("backend is %T, want *mockBackend", b)
	}
	if got.Supersample != 2 || got.Workers != 4 {
		t.Errorf("factory config = %+v, want supersample 2, workers 4", got)
	}
	if names := Backends(); len(names) != 1 || names[0] != "mock" {
		t.Errorf("Backends() = %v, want [mock]", names)
	}
}

func TestNewBackendUnknown(t *testing.T) {
	withRegistry(t)
	Register("b", func(BackendConfig) Backend { return &mockBackend{} })
	Register("a", func(BackendConfig) Backend { return &mockBackend{} })

	_, err := NewBackend("gpu", BackendConfig{})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("NewBackend(gpu) error = %v, want ErrUnknownBackend", err)
	}
	if !strings.Contains(err.Error(), "a, b") {
		t.Errorf("error %q does not list the registered backends", err)
	}
	if names := Backends(); !slices.Equal(names, []string{"a", "b"}) {
		t.Errorf("Backends() = %v, want [a b]", names)
	}
}

func TestRegisterPanics(t *testing.T) {
	withRegistry(t)

	mock := func(BackendConfig) Backend { return &mockBackend{} }
	Register("dup", mock)
	for name, fn := range map[string]func(){
		"duplicate":   func() { Register("dup", mock) },
		"nil factory": func() { Register("nil", nil) },
		"empty name":  func() { Register("", mock) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			fn()
		})
	}
}

func TestRender(t *testing.T) {
	withRegistry(t)
	Register("mock", func(BackendConfig) Backend { return &mockBackend{} })

	r := NewRecorder(WithSize(16, 8))
	r.Clear(gl.ColorBufferBit)
	b, err := r.Render("mock", BackendConfig{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	m := b.(*mockBackend)
	if m.width != 16 || m.clears != 1 || !m.ended {
		t.Errorf("backend saw width=%d clears=%d ended=%v, want 16/1/true", m.width, m.clears, m.ended)
	}
	if _, err := r.Render("missing", BackendConfig{}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Render(missing) error = %v, want ErrUnknownBackend", err)
	}
}

func TestPlayback(t *testing.T) {
	r := NewRecorder(WithSize(64, 32))
	r.ClearColor(0, 0, 0, 1)
	r.Clear(gl.ColorBufferBit)
	r.DrawArrays(gputypes.PrimitiveTopologyTriangleList, 0, 3)
	r.Clear(gl.ColorBufferBit)

	b := &mockBackend{}
	if err := r.Playback(b); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}
	if b.width != 64 || b.height != 32 {
		t.Errorf("Begin size = %dx%d, want 64x32", b.width, b.height)
	}
	if b.clears != 2 || b.draws != 1 || !b.ended {
		t.Errorf("clears=%d draws=%d ended=%v, want 2/1/true", b.clears, b.draws, b.ended)
	}
}
