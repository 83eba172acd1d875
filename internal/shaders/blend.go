package shaders

type BlendMode int

const (
	BlendSrcOver BlendMode = iota
	BlendOverlay
)

func (m BlendMode) String() string {
	switch m {
	case BlendSrcOver:
		return "src-over"
	case BlendOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Blend composites src over dst with the separable blend function of mode.
// Coverage scales the source alpha (clip and edge anti-aliasing). Both inputs
// and the result are straight alpha.
func Blend(mode BlendMode, src, dst RGBA, coverage float64) RGBA {
	sa := clamp01(src.A * coverage)
	if sa == 0 {
		return dst
	}
	da := clamp01(dst.A)
	ra := sa + da*(1-sa)
	if ra == 0 {
		return RGBA{}
	}

	channel := func(s, d float64) float64 {
		// premultiplied: Sc(1-Da) + Dc(1-Sa) + Sa*Da*B(Cb, Cs)
		c := s*sa*(1-da) + d*da*(1-sa)
		switch mode {
		case BlendOverlay:
			c += sa * da * overlay(s, d)
		default:
			c += sa * da * s
		}
		return clamp01(c / ra)
	}

	return RGBA{
		R: channel(src.R, dst.R),
		G: channel(src.G, dst.G),
		B: channel(src.B, dst.B),
		A: ra,
	}
}

func overlay(s, d float64) float64 {
	if d <= 0.5 {
		return 2 * s * d
	}
	return 1 - 2*(1-s)*(1-d)
}
