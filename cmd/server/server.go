// Command server serves interactive Mandelbrot frames over HTTP.
// A browser gets the embedded page at /, drives the view over the /ws
// websocket and receives one PNG frame per viewport request; /render.png
// renders single frames for non-websocket consumers.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	mandelbrot "github.com/marek231/mandelbrotset"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "listen address")
	width := flag.Int("width", 960, "frame width in pixels")
	height := flag.Int("height", 540, "frame height in pixels")
	workers := flag.Int("workers", 0, "render workers (0 = all CPUs)")
	flag.Parse()

	if *width < 1 || *width > maxFrameDim || *height < 1 || *height > maxFrameDim {
		return fmt.Errorf("frame dimensions must be within 1..%d, got %dx%d", maxFrameDim, *width, *height)
	}

	// One engine, shared by every connection; each connection renders into
	// its own frame surface.
	engine := mandelbrot.NewEngine(*workers)
	defer engine.Close()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newMux(engine, *width, *height),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}
