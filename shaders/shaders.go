// Package shaders embeds the sample shader sources.
//
// Every program exists twice: GLSL ES 1.00 for the browser's WebGL context
// and WGSL for the headless recording context, which compiles with naga.
// Both variants declare the same interface: attributes aVertexPosition and
// aVertexColor, uniforms uProjectionMatrix and uModelViewMatrix.
//
// Names are "<program>.<stage>": color.vert, color.frag, plain.vert,
// white.frag.
package shaders

import (
	"embed"
	"fmt"
)

//go:embed glsl/*.glsl wgsl/*.wgsl
var files embed.FS

// Loader returns the source text of a named shader.
type Loader func(name string) (string, error)

// GLSL returns the GLSL ES 1.00 source of the named shader.
func GLSL(name string) (string, error) {
	return load("glsl/" + name + ".glsl")
}

// WGSL returns the WGSL source of the named shader.
func WGSL(name string) (string, error) {
	return load("wgsl/" + name + ".wgsl")
}

func load(path string) (string, error) {
	b, err := files.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("shaders: %w", err)
	}
	return string(b), nil
}
