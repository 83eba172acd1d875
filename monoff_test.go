package monoff

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func createTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{255, 128, 64, 255})
		}
	}
	return img
}

func saveTestImage(t *testing.T, img image.Image, path string) {
	t.Helper()
	f, err := os.Create(path) //nolint:gosec // test file path is controlled
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.AspectRatio != 1 {
		t.Errorf("DefaultOptions().AspectRatio = %v, want 1", opts.AspectRatio)
	}
	if opts.FrameWidth != 0 {
		t.Errorf("DefaultOptions().FrameWidth = %v, want 0", opts.FrameWidth)
	}
	if opts.Category != "None" {
		t.Errorf("DefaultOptions().Category = %q, want None", opts.Category)
	}
	if opts.Grain != 0 || opts.Vignette != 0 {
		t.Errorf("DefaultOptions() effects = %v/%v, want 0/0", opts.Grain, opts.Vignette)
	}
}

func TestExport(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(o *Options)
		wantW      int
		wantH      int
		wantReason Reason
	}{
		{"defaults keep native size", func(o *Options) {}, 80, 80, ""},
		{"padded portrait", func(o *Options) { o.AspectRatio = 0.5; o.FrameWidth = 10 }, 100, 200, ""},
		{"with look", func(o *Options) { o.Category = "Frost"; o.Grain = 0.4; o.Vignette = 0.6 }, 80, 80, ""},
		{"unknown filter", func(o *Options) { o.Category = "Lomo" }, 0, 0, ReasonInvalidParameters},
		{"bad aspect", func(o *Options) { o.AspectRatio = -2 }, 0, 0, ReasonInvalidParameters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)

			data, err := Export(createTestImage(80, 60), opts)
			if tt.wantReason != "" {
				if ReasonOf(err) != tt.wantReason {
					t.Errorf("Export() reason = %q, want %q (err %v)", ReasonOf(err), tt.wantReason, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("png.Decode() error = %v", err)
			}
			if img.Bounds().Dx() != tt.wantW || img.Bounds().Dy() != tt.wantH {
				t.Errorf("Export() size = %v, want %dx%d", img.Bounds(), tt.wantW, tt.wantH)
			}
		})
	}

	if _, err := Export(nil, DefaultOptions()); ReasonOf(err) != ReasonNoSource {
		t.Errorf("Export(nil) reason = %q, want %q", ReasonOf(err), ReasonNoSource)
	}
}

func TestExportFile(t *testing.T) {
	tmpDir := t.TempDir()
	in := filepath.Join(tmpDir, "in.png")
	out := filepath.Join(tmpDir, "out.png")
	saveTestImage(t, createTestImage(40, 40), in)

	opts := DefaultOptions()
	opts.FrameWidth = 20
	if err := ExportFile(in, out, opts); err != nil {
		t.Fatalf("ExportFile() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("ExportFile() output missing: %v", err)
	}
}

func TestCatalogs(t *testing.T) {
	if got := Categories(); len(got) != 12 || got[0] != "None" {
		t.Errorf("Categories() = %v", got)
	}
	if got := Ratios(); len(got) != 9 || got[0].Label != "1:1" {
		t.Errorf("Ratios() = %v", got)
	}
}
