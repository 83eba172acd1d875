// Package config loads export settings from YAML and resolves them into
// pipeline parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/imamik/monoff/internal/encoder"
	"github.com/imamik/monoff/internal/filters"
	"github.com/imamik/monoff/internal/frames"
	"github.com/imamik/monoff/internal/logger"
	"github.com/imamik/monoff/internal/pipeline"
	"github.com/imamik/monoff/internal/surface"
)

type Config struct {
	// Frame
	Ratio           string  `yaml:"ratio"`
	FrameWidth      float64 `yaml:"frame_width"`
	FrameColor      string  `yaml:"frame_color"`
	BackgroundColor string  `yaml:"background_color"`

	// Look
	Filter   FilterConfig `yaml:"filter"`
	Grain    float64      `yaml:"grain"`
	Vignette float64      `yaml:"vignette"`

	// Output
	MaxSurfaceSide   int    `yaml:"max_surface_side"`
	MaxSurfacePixels int    `yaml:"max_surface_pixels"`
	PNGCompression   string `yaml:"png_compression"`
	ThumbSize        int    `yaml:"thumb_size"`

	// Runtime
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`
}

type FilterConfig struct {
	Category string `yaml:"category"`
	Variant  string `yaml:"variant"`
}

func Defaults() Config {
	return Config{
		Ratio:           "1:1",
		FrameWidth:      0,
		FrameColor:      "#FFFFFF",
		BackgroundColor: "#000000",

		Filter: FilterConfig{Category: filters.NoneCategory},

		MaxSurfaceSide:   surface.DefaultMaxSide,
		MaxSurfacePixels: surface.DefaultMaxPixels,
		PNGCompression:   "default",
		ThumbSize:        filters.DefaultThumbSize,

		LogLevel: "info",
		Workers:  4,
	}
}

// LoadFromFile reads path over the defaults. Keys missing from the file keep
// their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if _, err := frames.ParseRatio(c.Ratio); err != nil {
		errs = append(errs, fmt.Errorf("ratio: %w", err))
	}
	if !(c.FrameWidth >= 0 && c.FrameWidth <= frames.MaxFrameWidthPercent) {
		errs = append(errs, fmt.Errorf("frame_width: %w", frames.ErrInvalidPadding))
	}
	if _, err := ParseColor(c.FrameColor, FramePalette); err != nil {
		errs = append(errs, fmt.Errorf("frame_color: %w", err))
	}
	if _, err := ParseColor(c.BackgroundColor, BackgroundPalette); err != nil {
		errs = append(errs, fmt.Errorf("background_color: %w", err))
	}
	if _, err := filters.Resolve(c.Filter.Category, c.Filter.Variant); err != nil {
		errs = append(errs, fmt.Errorf("filter: %w", err))
	}
	if !(c.Grain >= 0 && c.Grain <= 1) {
		errs = append(errs, fmt.Errorf("grain must be within [0, 1]: got %v", c.Grain))
	}
	if !(c.Vignette >= 0 && c.Vignette <= 1) {
		errs = append(errs, fmt.Errorf("vignette must be within [0, 1]: got %v", c.Vignette))
	}
	if c.MaxSurfaceSide < 0 || c.MaxSurfacePixels < 0 {
		errs = append(errs, errors.New("surface limits must not be negative"))
	}
	if _, err := encoder.ParseCompression(c.PNGCompression); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative: got %d", c.Workers))
	}

	return errors.Join(errs...)
}

// ToEditParameters resolves the frame and look settings. The source image
// is left for the caller.
func (c Config) ToEditParameters() (pipeline.EditParameters, error) {
	if err := c.Validate(); err != nil {
		return pipeline.EditParameters{}, err
	}

	ratio, _ := frames.ParseRatio(c.Ratio)
	frameColor, _ := ParseColor(c.FrameColor, FramePalette)
	bgColor, _ := ParseColor(c.BackgroundColor, BackgroundPalette)
	m, _ := filters.Resolve(c.Filter.Category, c.Filter.Variant)

	p := pipeline.DefaultParameters()
	p.AspectRatio = ratio.Value
	p.FrameWidthPercent = c.FrameWidth
	p.FrameColor = frameColor
	p.BackgroundColor = bgColor
	p.FilterMatrix = m
	p.Grain = c.Grain
	p.Vignette = c.Vignette
	return p, nil
}

func (c Config) Limits() surface.Limits {
	return surface.Limits{MaxSide: c.MaxSurfaceSide, MaxPixels: c.MaxSurfacePixels}
}

// Encoder falls back to default compression for an unknown setting.
func (c Config) Encoder() encoder.PNG {
	level, _ := encoder.ParseCompression(c.PNGCompression)
	return encoder.PNG{Compression: level}
}

func (c Config) Level() logger.Level {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}

func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
