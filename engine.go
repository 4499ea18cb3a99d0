package mandelbrot

import (
	"image"
	"runtime"
	"sync"
)

// Engine renders full frames of the Mandelbrot set into caller-owned
// images. It holds only the immutable palette and a reusable pool of
// worker goroutines; every call to UpdateImage is a pure function of the
// viewport and the image dimensions. A single Engine may be shared by
// concurrent callers as long as each call renders into a distinct image.
type Engine struct {
	palette Palette
	workers int
	jobs    chan sliceJob
}

// sliceJob is one contiguous band of image rows handed to a pool worker.
type sliceJob struct {
	view       Viewport
	img        *image.RGBA
	minY, maxY int
	wg         *sync.WaitGroup
}

// NewEngine builds the palette and starts a pool with the given number of
// workers. workers < 1 selects the machine's CPU count, degrading to a
// single worker if the platform reports no parallelism at all.
func NewEngine(workers int) *Engine {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	e := &Engine{
		palette: NewPalette(MaxIterations),
		workers: workers,
		jobs:    make(chan sliceJob),
	}
	for i := 0; i < workers; i++ {
		go e.worker()
	}
	return e
}

// Close shuts the worker pool down. The engine must not be used afterwards.
func (e *Engine) Close() {
	close(e.jobs)
}

func (e *Engine) worker() {
	for job := range e.jobs {
		e.renderSlice(job.view, job.img, job.minY, job.maxY)
		job.wg.Done()
	}
}

// UpdateImage repopulates every pixel of img for the given viewport and
// returns once the whole frame is complete. The image height is split into
// one band of rows per pool worker, with the last band absorbing the
// remainder; the bands are disjoint, so the workers share no mutable
// state and need no locking. The engine keeps no reference to img after
// returning.
func (e *Engine) UpdateImage(view Viewport, img *image.RGBA) {
	var wg sync.WaitGroup
	for _, band := range sliceRows(img.Bounds().Dy(), e.workers) {
		wg.Add(1)
		e.jobs <- sliceJob{view: view, img: img, minY: band.min, maxY: band.max, wg: &wg}
	}
	wg.Wait()
}

// renderSlice fills rows [minY, maxY) of img. The real coordinate is
// accumulated across each row; the imaginary coordinate is evaluated
// directly per row, so the pixels do not depend on how the rows were
// split into bands.
func (e *Engine) renderSlice(view Viewport, img *image.RGBA, minY, maxY int) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	for y := minY; y < maxY; y++ {
		cRe, cIm := view.PointAt(0, y, width, height)
		for x := 0; x < width; x++ {
			img.SetRGBA(b.Min.X+x, b.Min.Y+y, e.palette[EscapeTime(cRe, cIm)])
			cRe += view.Zoom
		}
	}
}

// rowBand is a half-open range of image rows.
type rowBand struct {
	min, max int
}

// sliceRows partitions [0, height) into at most workers contiguous bands.
// Every row is covered exactly once and no two bands overlap; the last
// band absorbs the remainder when height is not divisible. Fewer bands
// come back when there are fewer rows than workers.
func sliceRows(height, workers int) []rowBand {
	if height <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > height {
		workers = height
	}
	step := height / workers
	bands := make([]rowBand, workers)
	for i := range bands {
		bands[i] = rowBand{min: i * step, max: i*step + step}
	}
	bands[len(bands)-1].max = height
	return bands
}
