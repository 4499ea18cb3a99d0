package mandelbrot

// Landmark is a named region of the set: a center point on the complex
// plane and the plane width (span) the view should cover.
type Landmark struct {
	OffsetX float64
	OffsetY float64
	Span    float64
}

// Viewport converts l to a viewport for an image that is width pixels wide.
func (l Landmark) Viewport(width int) Viewport {
	return Viewport{
		Zoom:    l.Span / float64(width),
		OffsetX: l.OffsetX,
		OffsetY: l.OffsetY,
	}
}

// Classic landmarks in the Mandelbrot set.
var (
	// Home frames the whole set, the traditional starting view
	Home = Landmark{OffsetX: -0.7, OffsetY: 0.0, Span: 3.84}

	// SeahorseValley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Landmark{OffsetX: -0.75, OffsetY: 0.10, Span: 0.10}

	// ElephantValley – large bulb with trunk-like tendrils
	ElephantValley = Landmark{OffsetX: -1.80, OffsetY: -0.06, Span: 0.10}

	// SpiralMinibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Landmark{OffsetX: -0.74275, OffsetY: 0.13175, Span: 0.0015}

	// TripleSpiral – threefold symmetric spiral structure
	TripleSpiral = Landmark{OffsetX: -0.7465, OffsetY: 0.0965, Span: 0.003}

	// ValleyOfTheDragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Landmark{OffsetX: -0.7375, OffsetY: 0.1825, Span: 0.005}

	// MinibrotInMiniSpiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Landmark{OffsetX: -1.73825, OffsetY: -0.02275, Span: 0.0015}
)

// Landmarks indexes the named landmarks for lookup by name, e.g. from a
// command line flag or a web client preset.
var Landmarks = map[string]Landmark{
	"home":                    Home,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}
