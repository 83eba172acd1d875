package encoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func createTestImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8((x * 255) / max(width, 1))  //nolint:gosec // test image generation
			g := uint8((y * 255) / max(height, 1)) //nolint:gosec // test image generation
			img.SetRGBA(x, y, color.RGBA{r, g, 128, 255})
		}
	}
	return img
}

func TestEncodeRoundTrip(t *testing.T) {
	img := createTestImage(33, 17)

	for _, level := range []png.CompressionLevel{png.DefaultCompression, png.NoCompression, png.BestSpeed, png.BestCompression} {
		data, err := PNG{Compression: level}.Encode(img)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
			t.Fatalf("Encode() did not produce a PNG signature")
		}

		decoded, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("png.Decode() error = %v", err)
		}
		if decoded.Bounds() != img.Bounds() {
			t.Fatalf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
		}
		for y := 0; y < 17; y++ {
			for x := 0; x < 33; x++ {
				want := img.RGBAAt(x, y)
				r, g, b, a := decoded.At(x, y).RGBA()
				got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
				if got != want {
					t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
				}
			}
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"nil", nil},
		{"zero area", image.NewRGBA(image.Rect(0, 0, 0, 10))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := PNG{}.Encode(tt.img)
			if !errors.Is(err, ErrEmptySurface) {
				t.Errorf("Encode() error = %v, want %v", err, ErrEmptySurface)
			}
			if data != nil {
				t.Error("Encode() returned data for an empty image")
			}
		})
	}
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in      string
		want    png.CompressionLevel
		wantErr bool
	}{
		{"", png.DefaultCompression, false},
		{"default", png.DefaultCompression, false},
		{"none", png.NoCompression, false},
		{"Fast", png.BestSpeed, false},
		{"best", png.BestCompression, false},
		{"max", png.DefaultCompression, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCompression(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCompression(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCompression(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
