package shaders

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

var names = []string{"color.vert", "color.frag", "plain.vert", "white.frag"}

func TestLoadersHaveEveryShader(t *testing.T) {
	for _, tc := range []struct {
		lang string
		load Loader
	}{
		{"glsl", GLSL},
		{"wgsl", WGSL},
	} {
		for _, name := range names {
			src, err := tc.load(name)
			if err != nil {
				t.Errorf("%s %s: %v", tc.lang, name, err)
				continue
			}
			if strings.TrimSpace(src) == "" {
				t.Errorf("%s %s: empty source", tc.lang, name)
			}
		}
	}
}

func TestVertexInterfaceNames(t *testing.T) {
	for _, load := range []Loader{GLSL, WGSL} {
		src, err := load("color.vert")
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"aVertexPosition", "aVertexColor", "uProjectionMatrix", "uModelViewMatrix"} {
			if !strings.Contains(src, want) {
				t.Errorf("color.vert does not declare %s", want)
			}
		}
	}
}

func TestUnknownShader(t *testing.T) {
	_, err := GLSL("missing.vert")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("GLSL(missing) error = %v, want fs.ErrNotExist", err)
	}
}
