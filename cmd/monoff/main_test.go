package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/imamik/monoff/internal/pipeline"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in           string
		wantCategory string
		wantVariant  string
	}{
		{"None", "None", ""},
		{"Sepia", "Sepia", ""},
		{"Noir/Ink", "Noir", "Ink"},
		{" Mono / Tri-X ", "Mono", "Tri-X"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseFilter(tt.in)
			if got.Category != tt.wantCategory || got.Variant != tt.wantVariant {
				t.Errorf("parseFilter(%q) = %+v, want %s/%s", tt.in, got, tt.wantCategory, tt.wantVariant)
			}
		})
	}
}

func TestIsImage(t *testing.T) {
	for name, want := range map[string]bool{
		"a.jpg":  true,
		"b.JPEG": true,
		"c.png":  true,
		"d.txt":  false,
		"e":      false,
	} {
		if got := isImage(name); got != want {
			t.Errorf("isImage(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monoff.yaml")
	if err := os.WriteFile(path, []byte("grain: 0.2\nvignette: 0.4\nratio: \"3:2\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	configPath = path
	defer func() { configPath = "" }()

	cmd := exportCmd
	if err := cmd.Flags().Set("vignette", "0.9"); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Grain != 0.2 {
		t.Errorf("grain = %v, want value from file", cfg.Grain)
	}
	if cfg.Vignette != 0.9 {
		t.Errorf("vignette = %v, want value from flag", cfg.Vignette)
	}
	if cfg.Ratio != "3:2" {
		t.Errorf("ratio = %q, want value from file", cfg.Ratio)
	}
}

func TestFiltersCommand(t *testing.T) {
	var out bytes.Buffer
	filtersCmd.SetOut(&out)
	if err := runFilters(filtersCmd, nil); err != nil {
		t.Fatalf("runFilters() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 12 {
		t.Fatalf("filters printed %d lines, want 12", len(lines))
	}
	if lines[0] != "None" {
		t.Errorf("first line = %q, want None", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Mono: Tri-X") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestBatchJobsKeepExtensionsApart(t *testing.T) {
	in := t.TempDir()
	for _, name := range []string{"shot.png", "shot.jpg", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(in, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(in, "nested.png"), 0o700); err != nil {
		t.Fatal(err)
	}

	jobs, err := batchJobs(in, "/out", pipeline.DefaultParameters())
	if err != nil {
		t.Fatalf("batchJobs() error = %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("batchJobs() returned %d jobs, want 2", len(jobs))
	}

	seen := map[string]string{}
	for _, j := range jobs {
		if prev, ok := seen[j.Output]; ok {
			t.Errorf("%s and %s both write %s", prev, j.Input, j.Output)
		}
		seen[j.Output] = j.Input
	}
	for _, want := range []string{"shot_png_framed.png", "shot_jpg_framed.png"} {
		if _, ok := seen[filepath.Join("/out", want)]; !ok {
			t.Errorf("missing output %s in %v", want, seen)
		}
	}

	if _, err := batchJobs(filepath.Join(in, "missing"), "/out", pipeline.DefaultParameters()); err == nil {
		t.Error("batchJobs() on a missing directory should fail")
	}
}

func TestRatiosCommand(t *testing.T) {
	var out bytes.Buffer
	ratiosCmd.SetOut(&out)
	if err := runRatios(ratiosCmd, nil); err != nil {
		t.Fatalf("runRatios() error = %v", err)
	}

	want := "portrait: 1:1, 4:5, 3:4, 2:3, 9:16\nlandscape: 5:4, 4:3, 3:2, 16:9\n"
	if out.String() != want {
		t.Errorf("ratios printed %q, want %q", out.String(), want)
	}
}
