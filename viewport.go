package mandelbrot

// Viewport selects the visible region of the complex plane. Zoom is the
// complex-plane distance covered by one pixel, identical in both axes, so
// the mapping never distorts aspect. OffsetX/OffsetY is the plane point
// mapped to the image center.
//
// Zoom must be positive. The engine does not validate it; the input
// boundary that mutates a viewport is responsible for keeping it sane.
type Viewport struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

// PointAt maps the pixel (x, y) of a width×height image to its
// complex-plane coordinates under v. The image center maps exactly to
// (OffsetX, OffsetY).
func (v Viewport) PointAt(x, y, width, height int) (re, im float64) {
	re = (float64(x)-float64(width)/2)*v.Zoom + v.OffsetX
	im = (float64(y)-float64(height)/2)*v.Zoom + v.OffsetY
	return re, im
}
