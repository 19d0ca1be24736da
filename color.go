package mosaic

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit display color.
type RGB struct {
	R, G, B uint8
}

// String formats the color as a CSS rgb() expression.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex formats the color as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA returns the color as non-premultiplied components in [0, 1] with full
// alpha, ready for vertex colors.
func (c RGB) RGBA() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// HexToRGB parses a six-digit hex color with an optional leading '#'.
// Anything else yields black.
func HexToRGB(hex string) RGB {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return RGB{}
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return RGB{}
		}
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return RGB{}
	}
	return fromColorful(c)
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// LerpRGB interpolates each channel linearly from a to b and rounds to the
// nearest integer. t is clamped to [0, 1].
func LerpRGB(a, b RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Floor(float64(a) + t*(float64(b)-float64(a)) + 0.5)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// BlendRGB mixes two colors in RGB space through go-colorful. Used for the
// sparkle color tween where both endpoints are arbitrary palette entries.
func BlendRGB(a, b RGB, t float64) RGB {
	return fromColorful(a.colorful().BlendRgb(b.colorful(), clamp01(t)))
}

// Palette definitions. Hover colors are picked per tile by section family.
var (
	DarkGreen  = HexToRGB("#0A8A5A")
	LightGreen = HexToRGB("#40FF80")

	// HoveredHeartRed is the color of the main heart.
	HoveredHeartRed = HexToRGB("#FF0033")

	// CitrusHoverColors are used by tiles in the dark sections (1 and 3).
	CitrusHoverColors = [8]string{
		"#FF8C00", "#FF7F00", "#FFB347", "#FFA500",
		"#FF6347", "#FF4500", "#FFD700", "#FFA000",
	}

	// BerryHoverColors are used by tiles in the light sections (2 and 4).
	BerryHoverColors = [8]string{
		"#8B0000", "#800080", "#4B0082", "#663399",
		"#722F37", "#8B008B", "#9932CC", "#6A0DAD",
	}

	// SparkleColors are the accent colors surrounding hearts cycle through.
	SparkleColors = [7]string{
		"#FF0033", "#FF3366", "#FF6699", "#FF99CC",
		"#CC0033", "#CC3366", "#CC6699",
	}
)

// originColor returns the resting color for a section.
func originColor(s Section) RGB {
	if s.Light() {
		return LightGreen
	}
	return DarkGreen
}

// hoverPalette returns the hover palette for a section.
func hoverPalette(s Section) []string {
	if s.Light() {
		return BerryHoverColors[:]
	}
	return CitrusHoverColors[:]
}
