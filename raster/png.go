// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"image/png"
	"os"
)

// ErrNoImage is returned by SavePNG before the first End.
var ErrNoImage = errors.New("raster: no frame rendered")

// SavePNG writes the last frame to a PNG file.
func (b *Backend) SavePNG(path string) error {
	if b.out == nil {
		return ErrNoImage
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, b.out); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
