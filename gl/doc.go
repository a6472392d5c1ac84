// Package gl defines the rendering capability the pipeline draws through.
//
// Context is a WebGL 1 shaped, immediate-mode interface. The pipeline never
// acquires a context itself: the host hands one in, already bound to its
// surface. Implementations live in webgl (browser, js/wasm) and recording
// (headless, used by tests and cmd/glrender).
//
// Where WebGPU already names a concept (shader stage, primitive topology,
// depth compare function, index format, vertex format) the gputypes
// vocabulary is used, and each Context maps it to its native constants.
package gl
