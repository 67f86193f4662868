// Package codec maps destination paths to image formats and encodes the
// grayscale frame with a deterministic encoder per format.
package codec

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/sergeymakinen/go-bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an output image encoding.
type Format int

const (
	PNG Format = iota
	BMP
	GIF
	TIFF
	JPEG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case BMP:
		return "BMP"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case JPEG:
		return "JPEG"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// UnsupportedFormatError reports a destination path whose extension does not
// name a supported image format.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	ext := filepath.Ext(e.Path)
	if ext == "" {
		return fmt.Sprintf("cannot infer output format: %s has no extension", e.Path)
	}
	return fmt.Sprintf("unsupported output format %q (supported: .png .bmp .gif .tif .tiff .jpg .jpeg)", ext)
}

// FormatForPath infers the output format from the path's extension,
// case-insensitively.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".gif":
		return GIF, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	}
	return 0, &UnsupportedFormatError{Path: path}
}

// grayRamp is the 256-entry palette used for the paletted formats (BMP, GIF)
// so every byte value maps to its own pure-gray palette entry.
var grayRamp = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// toPaletted re-indexes a grayscale image over grayRamp. Palette entry i is
// exactly gray level i, so the pixel bytes carry over unchanged.
func toPaletted(img *image.Gray) *image.Paletted {
	dst := image.NewPaletted(img.Rect, grayRamp)
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		src := img.Pix[img.PixOffset(img.Rect.Min.X, y):]
		copy(dst.Pix[dst.PixOffset(dst.Rect.Min.X, y):], src[:img.Rect.Dx()])
	}
	return dst
}

// Encode writes img to w in the given format. All formats except JPEG are
// lossless for 8-bit grayscale input; JPEG quantizes.
func Encode(w io.Writer, img *image.Gray, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, toPaletted(img))
	case GIF:
		return gif.Encode(w, toPaletted(img), nil)
	case TIFF:
		return tiff.Encode(w, img, nil)
	case JPEG:
		return jpeg.Encode(w, img, nil)
	}
	return fmt.Errorf("no encoder for %s", f)
}

// Decode reads any of the supported formats, returning the image and the
// format name registered by the decoder.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
