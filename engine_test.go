package mandelbrot

import (
	"bytes"
	"image"
	"testing"
)

func TestSliceRowsPartition(t *testing.T) {
	const height = 100
	for workers := 1; workers <= height; workers++ {
		bands := sliceRows(height, workers)
		if len(bands) != workers {
			t.Fatalf("workers=%d: got %d bands", workers, len(bands))
		}
		next := 0
		for _, b := range bands {
			if b.min != next {
				t.Fatalf("workers=%d: band starts at %d, want %d", workers, b.min, next)
			}
			if b.max <= b.min {
				t.Fatalf("workers=%d: empty band [%d, %d)", workers, b.min, b.max)
			}
			next = b.max
		}
		if next != height {
			t.Fatalf("workers=%d: rows covered up to %d, want %d", workers, next, height)
		}
	}
}

func TestSliceRowsDegenerate(t *testing.T) {
	if bands := sliceRows(0, 4); bands != nil {
		t.Errorf("sliceRows(0, 4) = %v, want nil", bands)
	}
	// More workers than rows: one band per row, nothing empty.
	if bands := sliceRows(3, 8); len(bands) != 3 {
		t.Errorf("sliceRows(3, 8) produced %d bands, want 3", len(bands))
	}
	// Zero reported parallelism degrades to a single full-height band.
	bands := sliceRows(5, 0)
	if len(bands) != 1 || bands[0].min != 0 || bands[0].max != 5 {
		t.Errorf("sliceRows(5, 0) = %v, want one [0, 5) band", bands)
	}
}

func TestUpdateImageParallelSerialEquivalence(t *testing.T) {
	serial := NewEngine(1)
	defer serial.Close()
	parallel := NewEngine(7)
	defer parallel.Close()

	view := Viewport{Zoom: 0.004, OffsetX: -0.7}
	a := image.NewRGBA(image.Rect(0, 0, 64, 48))
	b := image.NewRGBA(image.Rect(0, 0, 64, 48))
	serial.UpdateImage(view, a)
	parallel.UpdateImage(view, b)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("1-worker and 7-worker frames differ")
	}
}

func TestUpdateImageIdempotent(t *testing.T) {
	e := NewEngine(4)
	defer e.Close()

	view := SeahorseValley.Viewport(64)
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	e.UpdateImage(view, img)
	first := append([]byte(nil), img.Pix...)
	e.UpdateImage(view, img)
	if !bytes.Equal(first, img.Pix) {
		t.Error("second render of an identical viewport changed the surface")
	}
}

func TestUpdateImageCoversEveryPixel(t *testing.T) {
	e := NewEngine(3)
	defer e.Close()

	// A fresh RGBA image is fully transparent; every written pixel becomes
	// opaque, so the alpha plane doubles as a coverage map.
	img := image.NewRGBA(image.Rect(0, 0, 33, 17))
	e.UpdateImage(Home.Viewport(33), img)
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d never written", i/4)
		}
	}
}

func TestUpdateImageInSetPixelsUseFinalPaletteEntry(t *testing.T) {
	e := NewEngine(2)
	defer e.Close()

	// Zoomed far in at the origin every pixel is inside the set and must
	// take the MaxIterations palette entry.
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	e.UpdateImage(Viewport{Zoom: 1e-9}, img)
	want := e.palette[MaxIterations]
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
