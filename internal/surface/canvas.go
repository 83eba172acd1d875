package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/imamik/monoff/internal/filters"
	"github.com/imamik/monoff/internal/frames"
	"github.com/imamik/monoff/internal/shaders"
)

// canvas keeps its own clip stack: gg's Push/Pop does not restore the mask.
type canvas struct {
	dc    *gg.Context
	pix   *image.RGBA
	w, h  int
	clip  *image.Alpha
	saved []*image.Alpha
}

func newCanvas(width, height int) *canvas {
	dc := gg.NewContext(width, height)
	return &canvas{
		dc:  dc,
		pix: dc.Image().(*image.RGBA),
		w:   width,
		h:   height,
	}
}

func (c *canvas) Size() (int, int) {
	return c.w, c.h
}

func (c *canvas) Image() image.Image {
	if c.pix == nil {
		return nil
	}
	return c.pix
}

func (c *canvas) Release() {
	c.dc = nil
	c.pix = nil
	c.clip = nil
	c.saved = nil
}

func (c *canvas) FillRect(r frames.Rect, col color.Color) {
	if c.dc == nil || r.Empty() {
		return
	}
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *canvas) Save() {
	c.saved = append(c.saved, c.clip)
}

func (c *canvas) Restore() {
	if len(c.saved) == 0 {
		return
	}
	c.clip = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
	c.applyClip()
}

// ClipRect intersects the current clip with r.
func (c *canvas) ClipRect(r frames.Rect) {
	if c.dc == nil {
		return
	}
	mask := image.NewAlpha(image.Rect(0, 0, c.w, c.h))
	for y := 0; y < c.h; y++ {
		cy := overlap(float64(y), r.Y, r.H)
		if cy == 0 {
			continue
		}
		for x := 0; x < c.w; x++ {
			cov := overlap(float64(x), r.X, r.W) * cy
			if cov == 0 {
				continue
			}
			i := mask.PixOffset(x, y)
			if c.clip != nil {
				cov *= float64(c.clip.Pix[i]) / 255
			}
			mask.Pix[i] = uint8(math.Round(cov * 255))
		}
	}
	c.clip = mask
	c.applyClip()
}

func (c *canvas) applyClip() {
	if c.dc == nil {
		return
	}
	if c.clip == nil {
		c.dc.ResetClip()
		return
	}
	_ = c.dc.SetMask(c.clip)
}

// overlap is the covered fraction of the unit pixel span [p, p+1).
func overlap(p, start, length float64) float64 {
	if length <= 0 {
		return 0
	}
	lo := math.Max(p, start)
	hi := math.Min(p+1, start+length)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

func (c *canvas) DrawImage(img image.Image, src image.Rectangle, dst frames.Rect, cf *filters.Matrix) {
	if c.dc == nil || img == nil || dst.Empty() {
		return
	}
	if src.Empty() {
		src = img.Bounds()
	}
	src = src.Intersect(img.Bounds())
	if src.Empty() {
		return
	}

	var region image.Image = img
	if src != img.Bounds() {
		region = imaging.Crop(img, src)
	}
	if cf != nil && !cf.IsIdentity() {
		region = filters.Apply(region, *cf)
	}

	b := region.Bounds()
	c.dc.Push()
	c.dc.Translate(dst.X, dst.Y)
	c.dc.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))
	c.dc.DrawImage(region, -b.Min.X, -b.Min.Y)
	c.dc.Pop()
}

// DrawShader blends fn over r. Each pixel's coverage is the area of the
// pixel inside r times the clip coverage; the shader sees the pixel centre
// relative to r's origin.
func (c *canvas) DrawShader(fn shaders.Func, r frames.Rect, mode shaders.BlendMode) {
	if c.pix == nil || fn == nil || r.Empty() {
		return
	}
	area := r.Bounds().Intersect(c.pix.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		cy := overlap(float64(y), r.Y, r.H)
		if cy == 0 {
			continue
		}
		py := float64(y) + 0.5
		for x := area.Min.X; x < area.Max.X; x++ {
			coverage := overlap(float64(x), r.X, r.W) * cy
			if c.clip != nil {
				coverage *= float64(c.clip.AlphaAt(x, y).A) / 255
			}
			if coverage == 0 {
				continue
			}

			px := float64(x) + 0.5
			i := c.pix.PixOffset(x, y)
			p := c.pix.Pix[i : i+4 : i+4]
			out := shaders.Blend(mode, fn(px-r.X, py-r.Y), unpremultiply(p), coverage)
			premultiply(p, out)
		}
	}
}

func unpremultiply(p []uint8) shaders.RGBA {
	if p[3] == 0 {
		return shaders.RGBA{}
	}
	a := float64(p[3]) / 255
	return shaders.RGBA{
		R: float64(p[0]) / 255 / a,
		G: float64(p[1]) / 255 / a,
		B: float64(p[2]) / 255 / a,
		A: a,
	}
}

func premultiply(p []uint8, c shaders.RGBA) {
	a := clamp01(c.A)
	p[0] = toByte(c.R * a)
	p[1] = toByte(c.G * a)
	p[2] = toByte(c.B * a)
	p[3] = toByte(a)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
