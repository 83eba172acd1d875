package frames

import (
	"errors"
	"math"
	"testing"
)

func TestRatios(t *testing.T) {
	portrait := RatiosFor(OrientationPortrait)
	landscape := RatiosFor(OrientationLandscape)

	wantPortrait := []string{"1:1", "4:5", "3:4", "2:3", "9:16"}
	wantLandscape := []string{"5:4", "4:3", "3:2", "16:9"}

	if len(portrait) != len(wantPortrait) || len(landscape) != len(wantLandscape) {
		t.Fatalf("RatiosFor() = %d portrait, %d landscape", len(portrait), len(landscape))
	}
	for i, label := range wantPortrait {
		if portrait[i].Label != label {
			t.Errorf("portrait[%d] = %q, want %q", i, portrait[i].Label, label)
		}
	}
	for i, label := range wantLandscape {
		if landscape[i].Label != label {
			t.Errorf("landscape[%d] = %q, want %q", i, landscape[i].Label, label)
		}
	}

	all := Ratios()
	all[0].Value = 42
	if Ratios()[0].Value != 1 {
		t.Error("Ratios() should return a copy")
	}
}

func TestParseRatio(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"preset", "4:5", 0.8, false},
		{"custom pair", "7:5", 1.4, false},
		{"spaces", " 3 : 2 ", 1.5, false},
		{"decimal", "1.25", 1.25, false},
		{"zero height", "4:0", 0, true},
		{"negative", "-1", 0, true},
		{"garbage", "wide", 0, true},
		{"half pair", "4:", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRatio(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRatio(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got.Value-tt.want) > 1e-12 {
				t.Errorf("ParseRatio(%q) = %v, want %v", tt.in, got.Value, tt.want)
			}
		})
	}

	if _, err := ParseRatio("0:1"); !errors.Is(err, ErrInvalidAspect) {
		t.Errorf("ParseRatio(0:1) error = %v, want %v", err, ErrInvalidAspect)
	}
}

func TestRatioOrientation(t *testing.T) {
	if (Ratio{Value: 1}).Orientation() != OrientationPortrait {
		t.Error("square should count as portrait")
	}
	if (Ratio{Value: 1.01}).Orientation() != OrientationLandscape {
		t.Error("wider than tall should be landscape")
	}
}
