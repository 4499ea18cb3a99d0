// Package mandelbrot computes escape-time renderings of the Mandelbrot set.
//
// The package is the compute core only: it maps a viewport onto the complex
// plane, iterates every pixel and writes palette colors into a caller-owned
// image. Window management, input and presentation live in the commands
// under cmd/.
package mandelbrot

// MaxIterations caps the escape-time iteration. The palette holds
// MaxIterations+1 entries so every kernel result indexes a color.
const MaxIterations = 1000

// EscapeTime returns the number of completed iterations of z = z*z + c,
// starting at z = c, before |z| exceeds 2, capped at MaxIterations.
// A result of MaxIterations means the orbit never escaped and the point is
// treated as inside the set.
func EscapeTime(cRe, cIm float64) int {
	zRe, zIm := cRe, cIm
	for n := 0; n < MaxIterations; n++ {
		// Squared-magnitude escape test, avoids the square root.
		r2 := zRe * zRe
		i2 := zIm * zIm
		if r2+i2 > 4.0 {
			return n
		}
		zIm = 2*zRe*zIm + cIm
		zRe = r2 - i2 + cRe
	}
	return MaxIterations
}
