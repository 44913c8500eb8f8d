package crystalplot

import (
	"image/color"
	"math"
)

// hsv2RGB takes a hue (0-360), a saturation and a value (brightness) (0-1), and
// returns the corresponding red, green and blue components (0-255).
func hsv2RGB(h, s, v float64) (uint8, uint8, uint8) {
	const maxcolor = 255.0
	if s == 0.0 {
		return uint8(maxcolor * v), uint8(maxcolor * v), uint8(maxcolor * v)
	}
	h = math.Mod(h, 360) / 60
	if h < 0 {
		h += 6
	}
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	//r, g and b already carry the brightness.
	return uint8(math.Round(r * maxcolor)), uint8(math.Round(g * maxcolor)), uint8(math.Round(b * maxcolor))
}

// lineColor returns the color for the key-th of steps curves. The hues are
// spread over the color wheel, skipping the yellows, which are hard to see on white.
func lineColor(key, steps int) color.RGBA {
	norm := 260.0 / float64(steps)
	h := float64(key)*norm + 20.0
	if h < 55 {
		h -= 20.0
	} else {
		h += 20.0
	}
	r, g, b := hsv2RGB(h, 1.0, 0.85)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
