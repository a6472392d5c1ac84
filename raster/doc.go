// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster plays recorded frames back on the CPU and produces an
// *image.RGBA.
//
// The Backend emulates the fixed vertex-colour pipeline the samples use:
// positions are transformed by uProjectionMatrix * uModelViewMatrix and
// aVertexColor is interpolated perspective-correctly across each triangle.
// A draw without a colour stream is shaded white. Triangles are depth
// tested when the recorded state enables it.
//
// Importing the package registers the backend as "raster":
//
//	import _ "github.com/gogpu/glscene/raster"
//
//	b, _ := rec.Render("raster", recording.BackendConfig{Workers: 4})
//	img := b.(*raster.Backend).Image()
package raster
