package sample

import (
	"errors"
	"testing"
)

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(Sample{ID: 1, Name: "again"})
}

func TestRegisterInvalidIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register with id 0 did not panic")
		}
	}()
	Register(Sample{ID: 0})
}

func TestRegisterUnregister(t *testing.T) {
	Register(Sample{ID: 100, Name: "extra"})
	s, err := Lookup(100)
	if err != nil || s.Name != "extra" {
		t.Fatalf("Lookup(100) = %+v, %v", s, err)
	}
	Unregister(100)
	if _, err := Lookup(100); !errors.Is(err, ErrUnknown) {
		t.Errorf("Lookup after Unregister error = %v, want ErrUnknown", err)
	}
	Unregister(100)
}
