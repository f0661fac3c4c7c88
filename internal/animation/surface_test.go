package animation

import "testing"

func TestNewSurface(t *testing.T) {
	tests := []struct {
		name         string
		w, h, ratio  float64
		wantW, wantH int
		wantRatio    float64
	}{
		{"Standard density", 800, 600, 1, 800, 600, 1},
		{"Retina", 800, 600, 2, 1600, 1200, 2},
		{"Fractional truncates", 333, 101, 1.5, 499, 151, 1.5},
		{"Missing ratio falls back to 1", 640, 480, 0, 640, 480, 1},
		{"Negative size clamps", -10, 50, 1, 0, 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(tt.w, tt.h, tt.ratio)
			if s.PixelRatio != tt.wantRatio {
				t.Errorf("Expected ratio %v, got %v", tt.wantRatio, s.PixelRatio)
			}
			if s.BufferWidth() != tt.wantW || s.BufferHeight() != tt.wantH {
				t.Errorf("Expected buffer %dx%d, got %dx%d", tt.wantW, tt.wantH, s.BufferWidth(), s.BufferHeight())
			}
		})
	}
}

func TestNewSurface_Idempotent(t *testing.T) {
	if NewSurface(1024, 768, 1.25) != NewSurface(1024, 768, 1.25) {
		t.Error("Expected identical surfaces for identical inputs")
	}
}

func TestSurface_ToBuffer(t *testing.T) {
	s := NewSurface(100, 100, 2)
	if got := s.ToBuffer(Point{10, 25}); got != (Point{20, 50}) {
		t.Errorf("Expected (20, 50), got %v", got)
	}
}
