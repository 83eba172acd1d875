package pipeline

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/imamik/monoff/internal/compositor"
	"github.com/imamik/monoff/internal/encoder"
	"github.com/imamik/monoff/internal/filters"
	"github.com/imamik/monoff/internal/frames"
	"github.com/imamik/monoff/internal/logger"
	"github.com/imamik/monoff/internal/surface"
)

// EditParameters is a snapshot of every edit setting. It is passed by value
// so an export never observes later edits.
type EditParameters struct {
	Source            image.Image
	AspectRatio       float64
	FrameWidthPercent float64
	FrameColor        color.Color
	BackgroundColor   color.Color
	FilterMatrix      filters.Matrix
	Grain             float64
	Vignette          float64
}

func DefaultParameters() EditParameters {
	return EditParameters{
		AspectRatio:     1,
		FrameColor:      color.White,
		BackgroundColor: color.Black,
		FilterMatrix:    filters.Identity,
	}
}

func (p EditParameters) layers() compositor.Layers {
	return compositor.Layers{
		FrameColor:      p.FrameColor,
		BackgroundColor: p.BackgroundColor,
		Filter:          p.FilterMatrix,
		Grain:           p.Grain,
		Vignette:        p.Vignette,
	}
}

func (p EditParameters) validateIntensities() error {
	if !(p.Grain >= 0 && p.Grain <= 1) {
		return fmt.Errorf("grain must be within [0, 1]: got %v", p.Grain)
	}
	if !(p.Vignette >= 0 && p.Vignette <= 1) {
		return fmt.Errorf("vignette must be within [0, 1]: got %v", p.Vignette)
	}
	for i, v := range p.FilterMatrix {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("filter coefficient %d is not finite", i)
		}
	}
	return nil
}

type Reason string

const (
	ReasonNoSource          Reason = "no-source-image"
	ReasonInvalidParameters Reason = "invalid-parameters"
	ReasonAllocation        Reason = "surface-allocation-failed"
	ReasonEncode            Reason = "encode-failed"
	ReasonRender            Reason = "render-failed"
)

type Failure struct {
	Reason Reason
	Err    error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Reason)
	}
	return fmt.Sprintf("%s: %v", f.Reason, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// ReasonOf returns the failure reason carried by err, or "" if err is not
// an export failure.
func ReasonOf(err error) Reason {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}
	return ""
}

func fail(reason Reason, err error) *Failure {
	return &Failure{Reason: reason, Err: err}
}

type Exporter struct {
	alloc surface.Allocator
	enc   encoder.Encoder
	log   logger.Logger
	comp  *compositor.Compositor
}

type Option func(*Exporter)

func WithAllocator(a surface.Allocator) Option {
	return func(e *Exporter) { e.alloc = a }
}

func WithEncoder(enc encoder.Encoder) Option {
	return func(e *Exporter) { e.enc = enc }
}

func WithLogger(l logger.Logger) Option {
	return func(e *Exporter) { e.log = l }
}

func New(opts ...Option) *Exporter {
	e := &Exporter{
		alloc: surface.NewAllocator(surface.DefaultLimits()),
		enc:   encoder.PNG{},
		log:   logger.NewNoop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.comp = compositor.New(e.alloc, e.log)
	e.log = e.log.WithComponent("export")
	return e
}

// Export renders the framed image at the source's native resolution and
// encodes it. Every failure is a *Failure.
func (e *Exporter) Export(p EditParameters) ([]byte, error) {
	img, err := e.render(p)
	if err != nil {
		e.log.Debug("Export failed (%s): %s", ReasonOf(err), err)
		return nil, err
	}

	data, err := e.enc.Encode(img)
	if err != nil {
		e.log.Debug("Export failed (%s): %s", ReasonEncode, err)
		return nil, fail(ReasonEncode, err)
	}
	if len(data) == 0 {
		return nil, fail(ReasonEncode, encoder.ErrEmptySurface)
	}

	e.log.Debug("Encoded %d bytes", len(data))
	return data, nil
}

// Render is Export without the encode step.
func (e *Exporter) Render(p EditParameters) (image.Image, error) {
	return e.render(p)
}

func (e *Exporter) render(p EditParameters) (image.Image, error) {
	if p.Source == nil || p.Source.Bounds().Empty() {
		return nil, fail(ReasonNoSource, compositor.ErrNoSource)
	}
	b := p.Source.Bounds()
	e.log.Debug("Exporting %dx%d source", b.Dx(), b.Dy())

	geom, err := frames.Solve(b.Dx(), b.Dy(), p.AspectRatio, p.FrameWidthPercent)
	if err != nil {
		return nil, fail(ReasonInvalidParameters, err)
	}
	if err := p.validateIntensities(); err != nil {
		return nil, fail(ReasonInvalidParameters, err)
	}
	e.log.Debug("Frame %dx%d, padding %.2f px", geom.FrameWidth, geom.FrameHeight, geom.Padding)

	return e.composite(p.Source, geom, p.layers())
}

func (e *Exporter) composite(src image.Image, geom frames.Geometry, l compositor.Layers) (image.Image, error) {
	img, err := e.comp.Render(src, geom, l)
	if err != nil {
		return nil, fail(renderReason(err), err)
	}
	return img, nil
}

func renderReason(err error) Reason {
	switch {
	case errors.Is(err, surface.ErrAllocation):
		return ReasonAllocation
	case errors.Is(err, compositor.ErrNoSource):
		return ReasonNoSource
	default:
		return ReasonRender
	}
}

// Preview renders the on-screen version: the frame fitted into the
// container, with the source downscaled to the render rectangle first.
func (e *Exporter) Preview(p EditParameters, containerW, containerH float64) (image.Image, error) {
	if p.Source == nil || p.Source.Bounds().Empty() {
		return nil, fail(ReasonNoSource, compositor.ErrNoSource)
	}
	b := p.Source.Bounds()

	geom, err := frames.Preview(containerW, containerH, p.AspectRatio, p.FrameWidthPercent, b.Dx(), b.Dy())
	if err != nil {
		return nil, fail(ReasonInvalidParameters, err)
	}
	if err := p.validateIntensities(); err != nil {
		return nil, fail(ReasonInvalidParameters, err)
	}
	e.log.Debug("Preview %dx%d", geom.FrameWidth, geom.FrameHeight)

	return e.composite(downscale(p.Source, geom.Render), geom, p.layers())
}

func downscale(src image.Image, r frames.Rect) image.Image {
	w, h := int(math.Round(r.W)), int(math.Round(r.H))
	b := src.Bounds()
	if w < 1 || h < 1 || (w >= b.Dx() && h >= b.Dy()) {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Load decodes an image file, applying its EXIF orientation.
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("no input file")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("input file not found: %s", path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return img, nil
}

func Save(path string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("no data to save")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // output is a user-facing image
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// ExportFile loads inputPath as the source, exports it with p and writes
// the PNG to outputPath.
func (e *Exporter) ExportFile(inputPath, outputPath string, p EditParameters) error {
	img, err := Load(inputPath)
	if err != nil {
		return fmt.Errorf("load: %w", fail(ReasonNoSource, err))
	}
	p.Source = img

	data, err := e.Export(p)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := Save(outputPath, data); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	e.log.Debug("Saved %s", outputPath)
	return nil
}
