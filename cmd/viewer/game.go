package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	mandelbrot "github.com/marek231/mandelbrotset"
)

const (
	// zoomFactor is applied per zoom step: multiply to zoom in, divide to
	// zoom out.
	zoomFactor = 0.9
	// panPixels is the pan step, expressed in pixels' worth of
	// complex-plane distance at the current zoom.
	panPixels = 40
)

// game is the ebiten interaction loop around the compute engine. It owns
// the frame surface and a dirty flag; the engine runs only when the
// viewport actually changed, so holding the window open costs nothing.
type game struct {
	engine    *mandelbrot.Engine
	view      mandelbrot.Viewport
	frame     *image.RGBA
	offscreen *ebiten.Image
	width     int
	height    int
	dirty     bool
}

func newGame(engine *mandelbrot.Engine, width, height int) *game {
	return &game{
		engine:    engine,
		view:      mandelbrot.Home.Viewport(width),
		frame:     image.NewRGBA(image.Rect(0, 0, width, height)),
		offscreen: ebiten.NewImage(width, height),
		width:     width,
		height:    height,
		dirty:     true,
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Key bindings are mutually exclusive: one viewport change per press.
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.zoomBy(zoomFactor)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.zoomBy(1 / zoomFactor)
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.panBy(0, -panPixels)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.panBy(0, panPixels)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.panBy(-panPixels, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.panBy(panPixels, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.view = mandelbrot.Home.Viewport(g.width)
		g.dirty = true
	}

	// Wheel zoom is independent of the keys.
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		if wheelY > 0 {
			g.zoomBy(zoomFactor)
		} else {
			g.zoomBy(1 / zoomFactor)
		}
	}

	if g.dirty {
		g.engine.UpdateImage(g.view, g.frame)
		g.offscreen.WritePixels(g.frame.Pix)
		g.dirty = false
	}
	return nil
}

// zoomBy scales the viewport zoom, refusing changes that would underflow
// it to zero or below; the engine requires a positive zoom.
func (g *game) zoomBy(factor float64) {
	z := g.view.Zoom * factor
	if z <= 0 {
		return
	}
	g.view.Zoom = z
	g.dirty = true
}

func (g *game) panBy(dx, dy float64) {
	g.view.OffsetX += dx * g.view.Zoom
	g.view.OffsetY += dy * g.view.Zoom
	g.dirty = true
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.offscreen, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
