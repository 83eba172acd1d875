package config

import (
	"fmt"
	"image/color"
	"strings"
)

type Swatch struct {
	Name string
	Hex  string
}

var FramePalette = []Swatch{
	{"white", "#FFFFFF"},
	{"black", "#000000"},
	{"off-white", "#F5F5F7"},
	{"beige", "#E5E0D5"},
	{"charcoal", "#333333"},
	{"terracotta", "#C07A60"},
	{"sage-green", "#8DA399"},
}

var BackgroundPalette = []Swatch{
	{"black", "#000000"},
	{"white", "#FFFFFF"},
	{"off-white", "#F5F5F7"},
	{"light-grey", "#D1D1D1"},
	{"slate-blue", "#5B6E85"},
	{"dusty-pink", "#D8A8A8"},
	{"olive", "#8A9A5B"},
}

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA (the # is optional) or a
// swatch name from palette.
func ParseColor(s string, palette []Swatch) (color.Color, error) {
	name := normalizeName(s)
	for _, sw := range palette {
		if sw.Name == name {
			s = sw.Hex
			break
		}
	}

	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("invalid color %q", s)
	}

	var v [4]uint8
	for i := range v {
		hi, ok1 := hexValue(hex[i*2])
		lo, ok2 := hexValue(hex[i*2+1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("invalid color %q", s)
		}
		v[i] = hi<<4 | lo
	}

	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
