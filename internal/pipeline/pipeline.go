package pipeline

import (
	"bytes"
	"fmt"

	"github.com/davesmith10/bin2gray/internal/codec"
	"github.com/davesmith10/bin2gray/internal/raster"
)

// Options controls the binary→grayscale conversion pipeline.
type Options struct {
	Format codec.Format // output encoding, inferred from the destination path
}

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte // encoded image
	Width  int
	Height int
}

// Run executes the full pipeline: validate size → reshape → encode. The
// encoded image is returned in memory; the caller owns all file I/O, so a
// failed run never leaves a partial output file behind.
func Run(data []byte, opts Options) (*Result, error) {
	img, err := raster.FromBytes(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, img, opts.Format); err != nil {
		return nil, fmt.Errorf("encode %s: %w", opts.Format, err)
	}

	return &Result{
		Data:   buf.Bytes(),
		Width:  raster.Width,
		Height: raster.Height,
	}, nil
}
