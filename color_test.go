package mosaic

import "testing"

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#FF0033", RGB{255, 0, 51}},
		{"FF0033", RGB{255, 0, 51}},
		{"#0a8a5a", RGB{10, 138, 90}},
		{"#40FF80", RGB{64, 255, 128}},
		{"#000000", RGB{0, 0, 0}},
		{"#FFFFFF", RGB{255, 255, 255}},
		// Malformed input falls back to black.
		{"", RGB{}},
		{"#", RGB{}},
		{"#FFF", RGB{}},
		{"#FF00331", RGB{}},
		{"#GG0033", RGB{}},
		{"##FF0033", RGB{}},
		{"rgb(1,2,3)", RGB{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := HexToRGB(tt.in); got != tt.want {
				t.Errorf("HexToRGB(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBFormatting(t *testing.T) {
	c := RGB{255, 0, 51}
	if got := c.String(); got != "rgb(255, 0, 51)" {
		t.Errorf("String() = %q", got)
	}
	if got := c.Hex(); got != "#FF0033" {
		t.Errorf("Hex() = %q", got)
	}
	r, g, b, a := c.RGBA()
	if r != 1 || g != 0 || a != 1 || b < 0.19 || b > 0.21 {
		t.Errorf("RGBA() = %v %v %v %v", r, g, b, a)
	}
}

func TestLerpRGB(t *testing.T) {
	a := RGB{0, 100, 255}
	b := RGB{255, 200, 0}
	tests := []struct {
		name string
		t    float64
		want RGB
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"middle rounds half up", 0.5, RGB{128, 150, 128}},
		{"quarter", 0.25, RGB{64, 125, 191}},
		{"below range clamps", -2, a},
		{"above range clamps", 7, b},
		{"nan clamps to start", nan(), a},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LerpRGB(a, b, tt.t); got != tt.want {
				t.Errorf("LerpRGB(%v, %v, %v) = %v, want %v", a, b, tt.t, got, tt.want)
			}
		})
	}
}

func TestBlendRGBEndpoints(t *testing.T) {
	a := HexToRGB("#FF0033")
	b := HexToRGB("#CC6699")
	if got := BlendRGB(a, b, 0); got != a {
		t.Errorf("BlendRGB(t=0) = %v, want %v", got, a)
	}
	if got := BlendRGB(a, b, 1); got != b {
		t.Errorf("BlendRGB(t=1) = %v, want %v", got, b)
	}
	mid := BlendRGB(a, b, 0.5)
	if mid.R < b.R || mid.R > a.R || mid.B < a.B || mid.B > b.B {
		t.Errorf("BlendRGB(t=0.5) = %v, not between %v and %v", mid, a, b)
	}
}

func TestPalettes(t *testing.T) {
	if HoveredHeartRed != (RGB{255, 0, 51}) {
		t.Errorf("HoveredHeartRed = %v", HoveredHeartRed)
	}
	for _, palette := range [][]string{CitrusHoverColors[:], BerryHoverColors[:], SparkleColors[:]} {
		for _, hex := range palette {
			if HexToRGB(hex) == (RGB{}) {
				t.Errorf("palette entry %q does not parse", hex)
			}
		}
	}
	if originColor(Section1) != DarkGreen || originColor(Section3) != DarkGreen {
		t.Error("dark sections should rest in dark green")
	}
	if originColor(Section2) != LightGreen || originColor(Section4) != LightGreen {
		t.Error("light sections should rest in light green")
	}
	if &hoverPalette(Section2)[0] != &BerryHoverColors[0] {
		t.Error("light sections should use the berry palette")
	}
	if &hoverPalette(Section3)[0] != &CitrusHoverColors[0] {
		t.Error("dark sections should use the citrus palette")
	}
}
