// Package raster reshapes a flat byte buffer into the fixed-size grayscale
// frame the converter works with.
package raster

import (
	"fmt"
	"image"
)

// Frame dimensions. The input file must hold exactly one byte per pixel.
const (
	Width     = 1000
	Height    = 1000
	FrameSize = Width * Height
)

// SizeError reports an input buffer whose length is not exactly FrameSize.
type SizeError struct {
	Got int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("input must contain exactly %d bytes, got %d bytes", FrameSize, e.Got)
}

// FromBytes interprets data as a Width×Height grayscale frame in row-major
// order: byte i becomes the pixel at row i/Width, column i%Width, with no
// remapping of values. The returned image aliases data rather than copying it.
func FromBytes(data []byte) (*image.Gray, error) {
	if len(data) != FrameSize {
		return nil, &SizeError{Got: len(data)}
	}
	return &image.Gray{
		Pix:    data,
		Stride: Width,
		Rect:   image.Rect(0, 0, Width, Height),
	}, nil
}
