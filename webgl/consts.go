//go:build js && wasm

package webgl

import "syscall/js"

// glConsts caches the enum values of a WebGL context.
type glConsts struct {
	vertexShader   int
	fragmentShader int
	compileStatus  int
	linkStatus     int

	arrayBuffer        int
	elementArrayBuffer int
	staticDraw         int
	dynamicDraw        int
	streamDraw         int

	floatType     int
	unsignedShort int

	colorBufferBit int
	depthBufferBit int
	depthTest      int
	cullFace       int
	blend          int

	never    int
	less     int
	equal    int
	lequal   int
	greater  int
	notequal int
	gequal   int
	always   int

	points        int
	lines         int
	lineStrip     int
	triangles     int
	triangleStrip int
}

func loadConsts(gl js.Value) glConsts {
	get := func(name string) int { return gl.Get(name).Int() }
	return glConsts{
		vertexShader:       get("VERTEX_SHADER"),
		fragmentShader:     get("FRAGMENT_SHADER"),
		compileStatus:      get("COMPILE_STATUS"),
		linkStatus:         get("LINK_STATUS"),
		arrayBuffer:        get("ARRAY_BUFFER"),
		elementArrayBuffer: get("ELEMENT_ARRAY_BUFFER"),
		staticDraw:         get("STATIC_DRAW"),
		dynamicDraw:        get("DYNAMIC_DRAW"),
		streamDraw:         get("STREAM_DRAW"),
		floatType:          get("FLOAT"),
		unsignedShort:      get("UNSIGNED_SHORT"),
		colorBufferBit:     get("COLOR_BUFFER_BIT"),
		depthBufferBit:     get("DEPTH_BUFFER_BIT"),
		depthTest:          get("DEPTH_TEST"),
		cullFace:           get("CULL_FACE"),
		blend:              get("BLEND"),
		never:              get("NEVER"),
		less:               get("LESS"),
		equal:              get("EQUAL"),
		lequal:             get("LEQUAL"),
		greater:            get("GREATER"),
		notequal:           get("NOTEQUAL"),
		gequal:             get("GEQUAL"),
		always:             get("ALWAYS"),
		points:             get("POINTS"),
		lines:              get("LINES"),
		lineStrip:          get("LINE_STRIP"),
		triangles:          get("TRIANGLES"),
		triangleStrip:      get("TRIANGLE_STRIP"),
	}
}
