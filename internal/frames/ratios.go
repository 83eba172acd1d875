package frames

import (
	"fmt"
	"strconv"
	"strings"
)

type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

type Ratio struct {
	Label string
	Value float64
}

// Orientation reports which branch of the solver the ratio takes; square
// frames count as portrait.
func (r Ratio) Orientation() Orientation {
	if r.Value > 1 {
		return OrientationLandscape
	}
	return OrientationPortrait
}

var ratios = []Ratio{
	{"1:1", 1},
	{"4:5", 4.0 / 5},
	{"3:4", 3.0 / 4},
	{"2:3", 2.0 / 3},
	{"9:16", 9.0 / 16},
	{"5:4", 5.0 / 4},
	{"4:3", 4.0 / 3},
	{"3:2", 3.0 / 2},
	{"16:9", 16.0 / 9},
}

// Ratios lists the presets, portrait first.
func Ratios() []Ratio {
	return append([]Ratio(nil), ratios...)
}

func RatiosFor(o Orientation) []Ratio {
	var out []Ratio
	for _, r := range ratios {
		if r.Orientation() == o {
			out = append(out, r)
		}
	}
	return out
}

// ParseRatio accepts a preset label, any "W:H" pair or a decimal value.
func ParseRatio(s string) (Ratio, error) {
	s = strings.TrimSpace(s)
	for _, r := range ratios {
		if r.Label == s {
			return r, nil
		}
	}

	if w, h, ok := strings.Cut(s, ":"); ok {
		wf, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err != nil {
			return Ratio{}, fmt.Errorf("invalid ratio %q: %w", s, err)
		}
		hf, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return Ratio{}, fmt.Errorf("invalid ratio %q: %w", s, err)
		}
		if !(wf > 0) || !(hf > 0) {
			return Ratio{}, fmt.Errorf("invalid ratio %q: %w", s, ErrInvalidAspect)
		}
		return Ratio{Label: s, Value: wf / hf}, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Ratio{}, fmt.Errorf("invalid ratio %q: %w", s, err)
	}
	if !(v > 0) {
		return Ratio{}, fmt.Errorf("invalid ratio %q: %w", s, ErrInvalidAspect)
	}
	return Ratio{Label: s, Value: v}, nil
}
