package palette

import (
	"fmt"
	"math"
)

// Color is an RGB color with each channel in [0.0, 1.0]. Colors are plain
// immutable values; once produced they have no tie to the palette that
// generated them.
type Color struct {
	R float64
	G float64
	B float64
}

// Floats returns the three channels in r, g, b order.
func (c Color) Floats() (r, g, b float64) {
	return c.R, c.G, c.B
}

// Array returns the color as an array of 3 floats.
func (c Color) Array() [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

// RGBAArray returns the color as an array of 4 floats with 1.0 appended as
// the alpha value.
func (c Color) RGBAArray() [4]float64 {
	return [4]float64{c.R, c.G, c.B, 1.0}
}

// Hex returns the color as a #RRGGBB string, rounding each channel to the
// nearest 8-bit value.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X",
		uint8(math.Round(c.R*255.0)),
		uint8(math.Round(c.G*255.0)),
		uint8(math.Round(c.B*255.0)))
}

// HSVToRGB converts an HSV triple to a Color. Out of range inputs are clamped
// deterministically rather than rejected: hue is wrapped modulo 360 (so 360.0
// lands back on red, and negative hues are normalized), saturation and value
// are clamped to [0, 1]. The conversion never fails.
func HSVToRGB(hue, saturation, value float64) Color {
	hue = wrapHue(hue)
	saturation = clamp01(saturation)
	value = clamp01(value)

	chroma := value * saturation
	hue2 := hue / 60.0
	x := chroma * (1.0 - math.Abs(math.Mod(hue2, 2.0)-1.0))

	var r, g, b float64
	switch int(hue2) % 6 {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	case 5:
		r, g, b = chroma, 0, x
	}

	m := value - chroma
	return Color{
		R: clamp01(r + m),
		G: clamp01(g + m),
		B: clamp01(b + m),
	}
}

// RGBToHSV converts a Color back to its HSV triple. Hue is in [0, 360),
// saturation and value in [0, 1]. When the color is achromatic (saturation 0)
// the hue is undefined and reported as 0 by convention.
func RGBToHSV(c Color) (hue, saturation, value float64) {
	r := clamp01(c.R)
	g := clamp01(c.G)
	b := clamp01(c.B)

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	value = maxC
	if maxC > 0 {
		saturation = delta / maxC
	}

	if delta == 0 {
		return 0, saturation, value
	}

	switch maxC {
	case r:
		hue = 60.0 * math.Mod((g-b)/delta, 6.0)
	case g:
		hue = 60.0 * ((b-r)/delta + 2.0)
	default:
		hue = 60.0 * ((r-g)/delta + 4.0)
	}

	if hue < 0 {
		hue += 360.0
	}
	return hue, saturation, value
}

// wrapHue normalizes a hue in degrees into [0, 360).
func wrapHue(hue float64) float64 {
	hue = math.Mod(hue, 360.0)
	if hue < 0 {
		hue += 360.0
	}
	return hue
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
