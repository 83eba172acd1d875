package filters

type rawVariant struct {
	name   string
	matrix []float64
}

type rawGroup struct {
	category string
	variants []rawVariant
}

// Matrices are row-major R, G, B, A rows of [r g b a offset].
var rawGroups = []rawGroup{
	{
		category: "Mono",
		variants: []rawVariant{
			{"Tri-X", []float64{
				0.35, 0.75, 0.1, 0, -0.18,
				0.35, 0.75, 0.1, 0, -0.18,
				0.35, 0.75, 0.1, 0, -0.18,
				0, 0, 0, 1, 0,
			}},
			{"HP5", []float64{
				0.25, 0.7, 0.1, 0, -0.05,
				0.25, 0.7, 0.1, 0, -0.05,
				0.25, 0.7, 0.1, 0, -0.05,
				0, 0, 0, 1, 0,
			}},
			{"T-Max", []float64{
				0.22, 0.72, 0.08, 0, -0.02,
				0.22, 0.72, 0.08, 0, -0.02,
				0.22, 0.72, 0.08, 0, -0.02,
				0, 0, 0, 1, 0,
			}},
			{"Delta", []float64{
				0.4, 0.7, 0.1, 0, -0.25,
				0.4, 0.7, 0.1, 0, -0.25,
				0.4, 0.7, 0.1, 0, -0.25,
				0, 0, 0, 1, 0,
			}},
			{"Hi-Key", []float64{
				0.21, 0.72, 0.07, 0, 0.15,
				0.21, 0.72, 0.07, 0, 0.15,
				0.21, 0.72, 0.07, 0, 0.15,
				0, 0, 0, 1, 0,
			}},
		},
	},
	{
		category: "Golden",
		variants: []rawVariant{
			{"Honey", []float64{
				1.08, 0.04, 0, 0, 0.05,
				0, 1.03, 0, 0, 0.03,
				0, 0, 0.92, 0, 0,
				0, 0, 0, 1, 0,
			}},
			{"Amber", []float64{
				1.15, 0.08, 0, 0, 0.1,
				0, 1.06, 0.02, 0, 0.05,
				0, 0, 0.85, 0, -0.02,
				0, 0, 0, 1, 0,
			}},
			{"Sunset", []float64{
				1.2, 0.1, 0, 0, 0.08,
				0, 1.0, 0, 0, 0.02,
				0, 0, 0.82, 0, 0,
				0, 0, 0, 1, 0,
			}},
			{"Caramel", []float64{
				1.12, 0.1, 0.05, 0, 0.06,
				0.05, 1.02, 0.02, 0, 0.04,
				0, 0, 0.88, 0, -0.03,
				0, 0, 0, 1, 0,
			}},
		},
	},
	{
		category: "Fade",
		variants: []rawVariant{
			{"Mist", []float64{
				1.0, 0.03, 0.03, 0, 0.1,
				0.03, 1.0, 0.03, 0, 0.1,
				0.03, 0.03, 1.0, 0, 0.1,
				0, 0, 0, 1, 0,
			}},
			{"Haze", []float64{
				0.95, 0.05, 0.02, 0, 0.12,
				0.02, 0.95, 0.05, 0, 0.1,
				0.02, 0.03, 0.92, 0, 0.08,
				0, 0, 0, 1, 0,
			}},
			{"Pastel", []float64{
				0.9, 0.1, 0.05, 0, 0.12,
				0.08, 0.88, 0.08, 0, 0.12,
				0.05, 0.08, 0.9, 0, 0.12,
				0, 0, 0, 1, 0,
			}},
			{"Dream", []float64{
				0.92, 0.05, 0.05, 0, 0.08,
				0.05, 0.95, 0.05, 0, 0.1,
				0.05, 0.05, 1.02, 0, 0.12,
				0, 0, 0, 1, 0,
			}},
		},
	},
	{
		category: "Vintage",
		variants: []rawVariant{
			{"K-chrome", []float64{
				1.2, 0.1, 0, 0, 0.02,
				0, 1.05, 0.05, 0, -0.02,
				0, 0, 0.85, 0, -0.05,
				0, 0, 0, 1, 0,
			}},
			{"Polaroid", []float64{
				1.05, 0.1, 0.05, 0, 0.05,
				0.05, 1.02, 0.05, 0, 0.08,
				0.02, 0.08, 0.9, 0, 0.05,
				0, 0, 0, 1, 0,
			}},
			{"70s", []float64{
				1.0, 0.15, 0.05, 0, 0.04,
				0.05, 1.05, 0.08, 0, 0.06,
				0, 0.05, 0.75, 0, -0.02,
				0, 0, 0, 1, 0,
			}},
			{"Retro", []float64{
				1.1, 0.12, 0, 0, 0.02,
				-0.05, 1.0, 0.1, 0, 0.05,
				0, 0.05, 0.85, 0, 0.08,
				0, 0, 0, 1, 0,
			}},
		},
	},
	{
		category: "Moody",
		variants: []rawVariant{
			{"Shadow", []float64{
				0.9, 0.08, 0, 0, -0.1,
				0, 0.85, 0.08, 0, -0.1,
				0, 0.05, 0.9, 0, -0.08,
				0, 0, 0, 1, 0,
			}},
			{"Storm", []float64{
				0.85, 0.05, 0, 0, -0.08,
				0, 0.88, 0.08, 0, -0.04,
				0.05, 0.08, 1.0, 0, -0.02,
				0, 0, 0, 1, 0,
			}},
			{"Ember", []float64{
				0.95, 0.1, 0, 0, -0.04,
				0, 0.82, 0.05, 0, -0.08,
				0, 0, 0.8, 0, -0.1,
				0, 0, 0, 1, 0,
			}},
			{"Midnight", []float64{
				0.8, 0.05, 0, 0, -0.12,
				0, 0.82, 0.05, 0, -0.08,
				0.05, 0.1, 0.95, 0, -0.03,
				0, 0, 0, 1, 0,
			}},
		},
	},
	{
		category: "Sepia",
		variants: []rawVariant{
			{"Classic", []float64{
				0.393, 0.769, 0.189, 0, 0,
				0.349, 0.686, 0.168, 0, 0,
				0.272, 0.534, 0.131, 0, 0,
				0, 0, 0, 1, 0,
			}},
			{"Warm", []float64{
				0.45, 0.75, 0.15, 0, 0.05,
				0.35, 0.65, 0.15, 0, 0.02,
				0.2, 0.45, 0.12, 0, -0.03,
				0, 0, 0, 1, 0,
			}},
			{"Antique", []float64{
				0.5, 0.6, 0.15, 0, -0.05,
				0.4, 0.55, 0.12, 0, -0.05,
				0.3, 0.4, 0.1, 0, -0.05,
				0, 0, 0, 1, 0,
			}},
			{"Copper", []float64{
				0.5, 0.7, 0.15, 0, 0.04,
				0.3, 0.6, 0.13, 0, -0.02,
				0.2, 0.4, 0.1, 0, -0.06,
				0, 0, 0, 1, 0,
			}},
		},
	},
	{
		category: "Noir",
		variants: []rawVariant{
			{"Classic", []float64{
				0.3, 0.8, 0.1, 0, -0.15,
				0.3, 0.8, 0.1, 0, -0.15,
				0.3, 0.8, 0.1, 0, -0.15,
				0, 0, 0, 1, 0,
			}},
			{"Silver", []float64{
				0.35, 0.7, 0.15, 0, -0.08,
				0.35, 0.7, 0.15, 0, -0.08,
				0.35, 0.7, 0.15, 0, -0.08,
				0, 0, 0, 1, 0,
			}},
			{"Ink", []float64{
				0.45, 0.9, 0.12, 0, -0.35,
				0.45, 0.9, 0.12, 0, -0.35,
				0.45, 0.9, 0.12, 0, -0.35,
				0, 0, 0, 1, 0,
			}},
			{"Charcoal", []float64{
				0.32, 0.78, 0.12, 0, -0.1,
				0.3, 0.76, 0.11, 0, -0.12,
				0.27, 0.72, 0.1, 0, -0.14,
				0, 0, 0, 1, 0,
			}},
		},
	},
	{
		category: "Cream",
		variants: []rawVariant{
			{"Vanilla", []float64{
				1.05, 0.04, 0, 0, 0.04,
				0, 1.02, 0.02, 0, 0.03,
				0, 0, 0.95, 0, 0.02,
				0, 0, 0, 1, 0,
			}},
			{"Latte", []float64{
				1.08, 0.06, 0.03, 0, 0.05,
				0.02, 1.0, 0.03, 0, 0.04,
				0, 0, 0.9, 0, 0.01,
				0, 0, 0, 1, 0,
			}},
			{"Porcelain", []float64{
				1.03, 0.02, 0.02, 0, 0.06,
				0.02, 1.03, 0.02, 0, 0.06,
				0.02, 0.02, 1.0, 0, 0.04,
				0, 0, 0, 1, 0,
			}},
			{"Portra", []float64{
				1.06, 0.04, 0, 0, 0.02,
				0, 1.04, 0.02, 0, 0.01,
				0, 0.02, 0.96, 0, 0.03,
				0, 0, 0, 1, 0,
			}},
		},
	},
	{
		category: "Frost",
		variants: []rawVariant{
			{"Ice", []float64{
				0.93, 0, 0.05, 0, 0,
				0, 0.98, 0.05, 0, 0.02,
				0.05, 0.05, 1.1, 0, 0.04,
				0, 0, 0, 1, 0,
			}},
			{"Arctic", []float64{
				0.88, 0.03, 0.05, 0, -0.02,
				0, 0.95, 0.08, 0, 0.02,
				0.08, 0.08, 1.15, 0, 0.06,
				0, 0, 0, 1, 0,
			}},
			{"Winter", []float64{
				0.9, 0.05, 0.05, 0, 0,
				0.03, 0.92, 0.05, 0, 0.02,
				0.05, 0.05, 1.05, 0, 0.05,
				0, 0, 0, 1, 0,
			}},
			{"Aqua", []float64{
				0.85, 0, 0.05, 0, -0.02,
				0.02, 1.02, 0.08, 0, 0.04,
				0.05, 0.1, 1.08, 0, 0.03,
				0, 0, 0, 1, 0,
			}},
		},
	},
	{
		category: "Blush",
		variants: []rawVariant{
			{"Rose", []float64{
				1.06, 0.04, 0.02, 0, 0.03,
				0, 0.97, 0.02, 0, 0,
				0.02, 0, 1.0, 0, 0.02,
				0, 0, 0, 1, 0,
			}},
			{"Peach", []float64{
				1.1, 0.06, 0, 0, 0.03,
				0, 0.98, 0.02, 0, 0.02,
				0, 0, 0.95, 0, 0.02,
				0, 0, 0, 1, 0,
			}},
			{"Coral", []float64{
				1.12, 0.08, 0, 0, 0.04,
				0, 0.95, 0.02, 0, 0,
				0.02, 0, 0.95, 0, 0.03,
				0, 0, 0, 1, 0,
			}},
			{"Sakura", []float64{
				1.05, 0.06, 0.04, 0, 0.05,
				0.02, 0.98, 0.04, 0, 0.04,
				0.04, 0.02, 1.02, 0, 0.05,
				0, 0, 0, 1, 0,
			}},
		},
	},
	{
		category: "Ash",
		variants: []rawVariant{
			{"Slate", []float64{
				0.85, 0.12, 0.05, 0, 0.02,
				0.08, 0.82, 0.08, 0, 0.02,
				0.08, 0.1, 0.82, 0, 0.02,
				0, 0, 0, 1, 0,
			}},
			{"Concrete", []float64{
				0.88, 0.1, 0.05, 0, 0.05,
				0.08, 0.85, 0.06, 0, 0.05,
				0.06, 0.08, 0.85, 0, 0.05,
				0, 0, 0, 1, 0,
			}},
			{"Dust", []float64{
				0.9, 0.12, 0.05, 0, 0.04,
				0.08, 0.84, 0.06, 0, 0.03,
				0.05, 0.06, 0.78, 0, 0.02,
				0, 0, 0, 1, 0,
			}},
			{"Smoke", []float64{
				0.82, 0.15, 0.08, 0, 0.02,
				0.1, 0.8, 0.1, 0, 0.03,
				0.1, 0.12, 0.82, 0, 0.04,
				0, 0, 0, 1, 0,
			}},
		},
	},
}
