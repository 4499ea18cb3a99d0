package mandelbrot

import "testing"

func TestEscapeTimeFixedPoints(t *testing.T) {
	tests := []struct {
		name string
		cRe  float64
		cIm  float64
		want int
	}{
		{"origin never escapes", 0, 0, MaxIterations},
		{"period-2 orbit never escapes", -1, 0, MaxIterations},
		{"boundary of escape circle", 2, 0, 1},
		{"far outside escapes immediately", 3, 3, 0},
		{"far negative escapes immediately", -4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeTime(tt.cRe, tt.cIm); got != tt.want {
				t.Errorf("EscapeTime(%v, %v) = %d, want %d", tt.cRe, tt.cIm, got, tt.want)
			}
		})
	}
}

func TestEscapeTimeDeterministic(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{-0.7, 0.25},
		{0.3, 0.6},
		{-1.75, 0.01},
		{0.25000001, 0},
	}
	for _, p := range points {
		first := EscapeTime(p[0], p[1])
		for i := 0; i < 3; i++ {
			if got := EscapeTime(p[0], p[1]); got != first {
				t.Fatalf("EscapeTime(%v, %v) = %d on repeat, first call gave %d", p[0], p[1], got, first)
			}
		}
	}
}

func TestEscapeTimeRange(t *testing.T) {
	for re := -2.5; re <= 1.5; re += 0.25 {
		for im := -1.5; im <= 1.5; im += 0.25 {
			got := EscapeTime(re, im)
			if got < 0 || got > MaxIterations {
				t.Fatalf("EscapeTime(%v, %v) = %d, outside [0, %d]", re, im, got, MaxIterations)
			}
		}
	}
}
