package compositor

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/imamik/monoff/internal/filters"
	"github.com/imamik/monoff/internal/frames"
	"github.com/imamik/monoff/internal/logger"
	"github.com/imamik/monoff/internal/shaders"
	"github.com/imamik/monoff/internal/surface"
)

var ErrNoSource = errors.New("no source image")

type Layers struct {
	FrameColor      color.Color
	BackgroundColor color.Color
	Filter          filters.Matrix
	Grain           float64
	Vignette        float64
}

type Stage struct {
	Name string
	Skip bool
	Run  func(s surface.Surface)
}

const (
	StageFrame      = "frame"
	StageClip       = "clip"
	StageBackground = "background"
	StageImage      = "image"
	StageGrain      = "grain"
	StageVignette   = "vignette"
	StageRestore    = "restore"
)

// Stages returns the draw sequence in its fixed order. Every stage after
// clip and before restore is confined to the inner rectangle.
func Stages(src image.Image, geom frames.Geometry, layers Layers) []Stage {
	frame := frames.Rect{W: float64(geom.FrameWidth), H: float64(geom.FrameHeight)}
	inner := geom.Inner

	var cf *filters.Matrix
	if !layers.Filter.IsIdentity() {
		m := layers.Filter
		cf = &m
	}

	return []Stage{
		{Name: StageFrame, Run: func(s surface.Surface) {
			s.FillRect(frame, orDefault(layers.FrameColor, color.White))
		}},
		{Name: StageClip, Run: func(s surface.Surface) {
			s.Save()
			s.ClipRect(inner)
		}},
		{Name: StageBackground, Run: func(s surface.Surface) {
			s.FillRect(inner, orDefault(layers.BackgroundColor, color.Black))
		}},
		{Name: StageImage, Run: func(s surface.Surface) {
			s.DrawImage(src, src.Bounds(), geom.Render, cf)
		}},
		{Name: StageGrain, Skip: layers.Grain <= 0, Run: func(s surface.Surface) {
			s.DrawShader(shaders.Grain(layers.Grain), inner, shaders.BlendOverlay)
		}},
		{Name: StageVignette, Skip: layers.Vignette <= 0, Run: func(s surface.Surface) {
			s.DrawShader(shaders.Vignette(inner.W, inner.H, layers.Vignette), inner, shaders.BlendSrcOver)
		}},
		{Name: StageRestore, Run: func(s surface.Surface) {
			s.Restore()
		}},
	}
}

func orDefault(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}

type Compositor struct {
	alloc surface.Allocator
	log   logger.Logger
}

func New(alloc surface.Allocator, log logger.Logger) *Compositor {
	if alloc == nil {
		alloc = surface.NewAllocator(surface.DefaultLimits())
	}
	if log == nil {
		log = logger.NewNoop()
	}
	return &Compositor{alloc: alloc, log: log.WithComponent("compositor")}
}

func (c *Compositor) Render(src image.Image, geom frames.Geometry, layers Layers) (image.Image, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrNoSource
	}
	return c.RenderStages(geom, Stages(src, geom, layers))
}

// RenderStages allocates a frame-sized surface and runs stages in order.
// The surface is released on return.
func (c *Compositor) RenderStages(geom frames.Geometry, stages []Stage) (image.Image, error) {
	c.log.Debug("Allocating %dx%d surface", geom.FrameWidth, geom.FrameHeight)
	s, err := c.alloc.Allocate(geom.FrameWidth, geom.FrameHeight)
	if err != nil {
		if !errors.Is(err, surface.ErrAllocation) {
			err = fmt.Errorf("%w: %w", surface.ErrAllocation, err)
		}
		return nil, fmt.Errorf("allocate: %w", err)
	}
	defer s.Release()

	for _, st := range stages {
		if st.Skip || st.Run == nil {
			c.log.Debug("Stage %s skipped", st.Name)
			continue
		}
		c.log.Debug("Stage %s", st.Name)
		st.Run(s)
	}
	return s.Image(), nil
}
