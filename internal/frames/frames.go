package frames

import (
	"errors"
	"fmt"
	"image"
	"math"
)

const MaxFrameWidthPercent = 50.0

var (
	ErrInvalidSource  = errors.New("source dimensions must be positive")
	ErrInvalidAspect  = errors.New("aspect ratio must be a positive finite number")
	ErrInvalidPadding = errors.New("frame width percent must be within [0, 50]")
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Bounds returns the smallest integer rectangle touching r.
func (r Rect) Bounds() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)),
		int(math.Ceil(r.Y+r.H)),
	)
}

type Geometry struct {
	FrameWidth  int
	FrameHeight int
	Padding     float64
	Inner       Rect
	Render      Rect
}

// Solve sizes the frame so the padded inner area is exactly as wide as the
// source, which keeps the source at its native resolution.
func Solve(nativeW, nativeH int, aspectRatio, frameWidthPercent float64) (Geometry, error) {
	if err := Validate(nativeW, nativeH, aspectRatio, frameWidthPercent); err != nil {
		return Geometry{}, err
	}

	var factor float64
	if aspectRatio <= 1 {
		// width is the minor side
		factor = 1 - 2*frameWidthPercent/100
	} else {
		// height is the minor side: pad = (W/aspect) * pct/100
		factor = 1 - 2*frameWidthPercent/(100*aspectRatio)
	}

	frameW := float64(nativeW)
	if factor > 0 {
		frameW = float64(nativeW) / factor
	}
	frameH := frameW / aspectRatio

	return Layout(int(math.Round(frameW)), int(math.Round(frameH)), frameWidthPercent, nativeW, nativeH), nil
}

// Layout places the padded inner area and the width-filling render rectangle
// inside a frame of the given pixel size. Export and preview share it.
func Layout(frameW, frameH int, frameWidthPercent float64, nativeW, nativeH int) Geometry {
	minDim := float64(min(frameW, frameH))
	pad := minDim * frameWidthPercent / 100

	inner := Rect{
		X: pad,
		Y: pad,
		W: math.Max(0, float64(frameW)-pad*2),
		H: math.Max(0, float64(frameH)-pad*2),
	}

	render := Rect{X: inner.X, W: inner.W}
	if nativeW > 0 && nativeH > 0 {
		render.H = inner.W * float64(nativeH) / float64(nativeW)
	}
	render.Y = inner.Y + (inner.H-render.H)/2

	return Geometry{
		FrameWidth:  frameW,
		FrameHeight: frameH,
		Padding:     pad,
		Inner:       inner,
		Render:      render,
	}
}

func Validate(nativeW, nativeH int, aspectRatio, frameWidthPercent float64) error {
	if nativeW <= 0 || nativeH <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSource, nativeW, nativeH)
	}
	if !(aspectRatio > 0) || math.IsInf(aspectRatio, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidAspect, aspectRatio)
	}
	if !(frameWidthPercent >= 0 && frameWidthPercent <= MaxFrameWidthPercent) {
		return fmt.Errorf("%w: got %v", ErrInvalidPadding, frameWidthPercent)
	}
	return nil
}

// Preview fits the frame inside a screen container (width first, then
// height-limited) and lays it out with the same rules as the export.
func Preview(containerW, containerH, aspectRatio, frameWidthPercent float64, nativeW, nativeH int) (Geometry, error) {
	if err := Validate(nativeW, nativeH, aspectRatio, frameWidthPercent); err != nil {
		return Geometry{}, err
	}
	if !(containerW > 0) || !(containerH > 0) {
		return Geometry{}, fmt.Errorf("container must be positive: got %vx%v", containerW, containerH)
	}

	frameW := containerW
	frameH := containerW / aspectRatio
	if frameH > containerH {
		frameH = containerH
		frameW = containerH * aspectRatio
	}

	return Layout(int(math.Round(frameW)), int(math.Round(frameH)), frameWidthPercent, nativeW, nativeH), nil
}
