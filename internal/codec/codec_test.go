package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestFormatForPath(t *testing.T) {
	cases := []struct {
		path string
		want Format
	}{
		{"out.png", PNG},
		{"out.PNG", PNG},
		{"out.bmp", BMP},
		{"out.gif", GIF},
		{"out.tif", TIFF},
		{"out.tiff", TIFF},
		{"out.jpg", JPEG},
		{"out.jpeg", JPEG},
		{"dir.with.dots/out.Png", PNG},
	}
	for _, c := range cases {
		got, err := FormatForPath(c.path)
		if err != nil {
			t.Errorf("FormatForPath(%q): %v", c.path, err)
			continue
		}
		if got != c.want {
			t.Errorf("FormatForPath(%q) = %s, want %s", c.path, got, c.want)
		}
	}
}

func TestFormatForPath_Unsupported(t *testing.T) {
	for _, path := range []string{"out.webp", "out.txt", "out", "out."} {
		_, err := FormatForPath(path)
		if err == nil {
			t.Errorf("FormatForPath(%q): expected error, got nil", path)
			continue
		}
		var ferr *UnsupportedFormatError
		if !errors.As(err, &ferr) {
			t.Errorf("FormatForPath(%q): error %v is not an *UnsupportedFormatError", path, err)
		}
	}
}

// testFrame covers every byte value: a 16x16 gray image with pixel value
// y*16+x.
func testFrame() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	return img
}

// verifyLossless encodes img, decodes it back, and requires exact gray
// equality at every pixel.
func verifyLossless(t *testing.T, img *image.Gray, f Format) {
	t.Helper()

	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		t.Fatalf("[%s] Encode: %v", f, err)
	}

	decoded, _, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("[%s] Decode: %v", f, err)
	}

	if decoded.Bounds().Dx() != img.Bounds().Dx() || decoded.Bounds().Dy() != img.Bounds().Dy() {
		t.Fatalf("[%s] decoded bounds %v, want %v", f, decoded.Bounds(), img.Bounds())
	}

	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			want := img.GrayAt(x, y).Y
			got := color.GrayModel.Convert(decoded.At(x, y)).(color.Gray).Y
			if got != want {
				t.Fatalf("[%s] pixel (%d,%d) = %d, want %d", f, x, y, got, want)
			}
		}
	}
}

func TestEncodeDecode_Lossless(t *testing.T) {
	img := testFrame()
	for _, f := range []Format{PNG, BMP, GIF, TIFF} {
		verifyLossless(t, img, f)
	}
}

func TestEncode_JPEG(t *testing.T) {
	// JPEG quantizes, so only the dimensions are checked.
	var buf bytes.Buffer
	img := testFrame()
	if err := Encode(&buf, img, JPEG); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, name, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if name != "jpeg" {
		t.Errorf("decoded format = %q, want jpeg", name)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestEncode_Deterministic(t *testing.T) {
	img := testFrame()
	for _, f := range []Format{PNG, BMP, GIF, TIFF, JPEG} {
		var first, second bytes.Buffer
		if err := Encode(&first, img, f); err != nil {
			t.Fatalf("[%s] Encode: %v", f, err)
		}
		if err := Encode(&second, img, f); err != nil {
			t.Fatalf("[%s] Encode: %v", f, err)
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			t.Errorf("[%s] repeated encodes differ", f)
		}
	}
}
