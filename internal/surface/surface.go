// Package surface is the offscreen 2D drawing target the compositor paints
// into: rectangle fills, a rectangular anti-aliased clip with save/restore,
// scaled image draws with an optional colour matrix, and per-pixel shader
// layers.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/imamik/monoff/internal/filters"
	"github.com/imamik/monoff/internal/frames"
	"github.com/imamik/monoff/internal/shaders"
)

const (
	DefaultMaxSide   = 16384
	DefaultMaxPixels = 16384 * 16384
)

var ErrAllocation = errors.New("surface allocation failed")

type Surface interface {
	Size() (int, int)
	FillRect(r frames.Rect, c color.Color)
	Save()
	ClipRect(r frames.Rect)
	Restore()
	// DrawImage scales the src region of img into dst. A nil or identity
	// matrix draws the pixels unchanged.
	DrawImage(img image.Image, src image.Rectangle, dst frames.Rect, cf *filters.Matrix)
	DrawShader(fn shaders.Func, r frames.Rect, mode shaders.BlendMode)
	Image() image.Image
	Release()
}

type Allocator interface {
	Allocate(width, height int) (Surface, error)
}

type Limits struct {
	MaxSide   int
	MaxPixels int
}

func DefaultLimits() Limits {
	return Limits{MaxSide: DefaultMaxSide, MaxPixels: DefaultMaxPixels}
}

func (l Limits) Check(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d is empty", ErrAllocation, width, height)
	}
	if l.MaxSide > 0 && (width > l.MaxSide || height > l.MaxSide) {
		return fmt.Errorf("%w: %dx%d exceeds max side %d", ErrAllocation, width, height, l.MaxSide)
	}
	if l.MaxPixels > 0 && int64(width)*int64(height) > int64(l.MaxPixels) {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, width, height, l.MaxPixels)
	}
	return nil
}

type allocator struct {
	limits Limits
}

func NewAllocator(limits Limits) Allocator {
	return &allocator{limits: limits}
}

func (a *allocator) Allocate(width, height int) (s Surface, err error) {
	if err := a.limits.Check(width, height); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%w: %dx%d: %v", ErrAllocation, width, height, r)
		}
	}()
	return newCanvas(width, height), nil
}
