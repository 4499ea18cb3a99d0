// Command viewer is the interactive Mandelbrot explorer.
// Pan with W/A/S/D, zoom with =/- or the mouse wheel, reset with R,
// quit with Escape.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	mandelbrot "github.com/marek231/mandelbrotset"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	width := flag.Int("width", 960, "window width in pixels")
	height := flag.Int("height", 540, "window height in pixels")
	workers := flag.Int("workers", 0, "render workers (0 = all CPUs)")
	flag.Parse()

	if *width < 1 || *height < 1 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", *width, *height)
	}

	engine := mandelbrot.NewEngine(*workers)
	defer engine.Close()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Mandelbrot")
	if err := ebiten.RunGame(newGame(engine, *width, *height)); err != nil {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}
