// Package shaders generates the procedural grain and vignette overlays and the
// blend modes used to composite them.
package shaders

import "math"

// RGBA is a straight-alpha colour with channels in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// Func evaluates an overlay at a pixel-centre position local to its target
// rectangle.
type Func func(x, y float64) RGBA

const (
	grainBlock = 2.0
	grainDotX  = 12.9898
	grainDotY  = 78.233
	grainScale = 43758.5453

	vignetteStart = 0.3
	vignetteEnd   = 1.0
)

// Grain returns film noise made of 2x2 pixel blocks. The gray level of a block
// depends only on its block coordinates, so the pattern is reproducible.
func Grain(intensity float64) Func {
	return func(x, y float64) RGBA {
		px := math.Floor(x / grainBlock)
		py := math.Floor(y / grainBlock)
		noise := Fract(math.Sin(px*grainDotX+py*grainDotY) * grainScale)
		gray := Mix(0.5, noise, intensity)
		return RGBA{R: gray, G: gray, B: gray, A: 1}
	}
}

// Vignette returns a black layer whose alpha ramps from the centre of a
// width x height rectangle towards its corners.
func Vignette(width, height, intensity float64) Func {
	cx, cy := width*0.5, height*0.5
	maxDist := math.Hypot(cx, cy)
	return func(x, y float64) RGBA {
		if maxDist <= 0 {
			return RGBA{}
		}
		d := math.Hypot(x-cx, y-cy)
		alpha := Smoothstep(vignetteStart, vignetteEnd, d/maxDist) * intensity
		return RGBA{A: alpha}
	}
}

func Fract(v float64) float64 {
	return v - math.Floor(v)
}

func Mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func Smoothstep(edge0, edge1, x float64) float64 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
