package mandelbrot

import "image/color"

// Palette maps an iteration count to a color. Index i holds the color for
// an EscapeTime result of i; the final entry colors points inside the set.
type Palette []color.RGBA

// NewPalette builds the iteration-count color table once. The channels are
// smoothed Bernstein-style blending polynomials over t = i/maxIter, which
// gives a continuous gradient with no banding. The polynomials stay inside
// [0, 1) on the unit interval, but the channels are clamped anyway so a
// rounding excursion can never wrap an 8 bit value.
func NewPalette(maxIter int) Palette {
	p := make(Palette, maxIter+1)
	for i := range p {
		t := float64(i) / float64(maxIter)
		p[i] = color.RGBA{
			R: clampChannel(9 * (1 - t) * t * t * t * 255),
			G: clampChannel(15 * (1 - t) * (1 - t) * t * t * 255),
			B: clampChannel(8.5 * (1 - t) * (1 - t) * (1 - t) * t * 255),
			A: 255,
		}
	}
	return p
}

// clampChannel truncates toward zero and clamps to the 8 bit channel range.
func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
