package filters

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

const (
	NoneCategory     = "None"
	DefaultThumbSize = 72
)

var (
	ErrUnknownCategory = errors.New("unknown filter category")
	ErrUnknownVariant  = errors.New("unknown filter variant")
)

type Matrix [20]float64

var Identity = Matrix{
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
}

func (m Matrix) IsIdentity() bool {
	return m == Identity
}

type Variant struct {
	Name   string
	Matrix Matrix
}

type Group struct {
	Category string
	Variants []Variant
}

func (g Group) Variant(name string) (Variant, bool) {
	for _, v := range g.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

var groups = loadGroups(rawGroups, strictCatalog)

func loadGroups(raw []rawGroup, strict bool) []Group {
	out := make([]Group, 0, len(raw))
	for _, rg := range raw {
		g := Group{Category: rg.category, Variants: make([]Variant, 0, len(rg.variants))}
		for _, rv := range rg.variants {
			m, ok := matrixFrom(rv.matrix)
			if !ok {
				if strict {
					panic(fmt.Sprintf("filters: %s/%s has %d coefficients, want 20", rg.category, rv.name, len(rv.matrix)))
				}
				m = Identity
			}
			g.Variants = append(g.Variants, Variant{Name: rv.name, Matrix: m})
		}
		out = append(out, g)
	}
	return out
}

func matrixFrom(vals []float64) (Matrix, bool) {
	var m Matrix
	if len(vals) != len(m) {
		return Identity, false
	}
	copy(m[:], vals)
	return m, true
}

// Categories returns the selectable category names in display order, starting
// with the synthetic None category.
func Categories() []string {
	names := make([]string, 0, len(groups)+1)
	names = append(names, NoneCategory)
	for _, g := range groups {
		names = append(names, g.Category)
	}
	return names
}

// Groups returns a copy of the catalog.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Category: g.Category, Variants: append([]Variant(nil), g.Variants...)}
	}
	return out
}

// Lookup finds a stored group. None is not stored and always misses.
func Lookup(category string) (Group, bool) {
	for _, g := range groups {
		if g.Category == category {
			return Group{Category: g.Category, Variants: append([]Variant(nil), g.Variants...)}, true
		}
	}
	return Group{}, false
}

// Resolve maps a category/variant selection to a matrix. None (or an empty
// category) is the identity; an empty variant selects the first one.
func Resolve(category, variant string) (Matrix, error) {
	if category == "" || category == NoneCategory {
		return Identity, nil
	}
	g, ok := Lookup(category)
	if !ok {
		return Identity, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if variant == "" {
		if len(g.Variants) == 0 {
			return Identity, fmt.Errorf("%w: %q has no variants", ErrUnknownVariant, category)
		}
		return g.Variants[0].Matrix, nil
	}
	v, ok := g.Variant(variant)
	if !ok {
		return Identity, fmt.Errorf("%w: %q in %q", ErrUnknownVariant, variant, category)
	}
	return v.Matrix, nil
}

// Apply transforms straight-alpha channels normalized to [0,1]. The result is
// always a new image anchored at the origin.
func Apply(img image.Image, m Matrix) *image.NRGBA {
	dst := imaging.Clone(img)
	if m.IsIdentity() {
		return dst
	}

	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	for y := 0; y < h; y++ {
		i := y * dst.Stride
		for x := 0; x < w; x++ {
			p := dst.Pix[i : i+4 : i+4]
			r := float64(p[0]) / 255.0
			g := float64(p[1]) / 255.0
			b := float64(p[2]) / 255.0
			a := float64(p[3]) / 255.0
			p[0] = toByte(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4])
			p[1] = toByte(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9])
			p[2] = toByte(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14])
			p[3] = toByte(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])
			i += 4
		}
	}
	return dst
}

func Thumbnail(img image.Image, m Matrix, size int) *image.NRGBA {
	if size <= 0 {
		size = DefaultThumbSize
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	return Apply(imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos), m)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255.0))
}
