// Package palette provides the two-stop linear gradient used to stroke the
// triangles.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/iburimskiy/triangle-animation/internal/animation"
	"github.com/iburimskiy/triangle-animation/internal/config"
)

// Gradient interpolates in sRGB between Start (t=0) and End (t=1).
type Gradient struct {
	Start, End colorful.Color
}

func New(start, end string) (Gradient, error) {
	s, err := Parse(start)
	if err != nil {
		return Gradient{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return Gradient{}, err
	}
	return Gradient{Start: s, End: e}, nil
}

// Default is the blue-to-green gradient from config.
func Default() Gradient {
	g, err := New(config.GradientStart, config.GradientEnd)
	if err != nil {
		panic(err)
	}
	return g
}

// Parse reads a #rrggbb or #rgb colour.
func Parse(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, errors.Wrapf(err, "parse colour %q", hex)
	}
	return c, nil
}

// At returns the colour at t, clamped to the end stops.
func (g Gradient) At(t float64) colorful.Color {
	return g.Start.BlendRgb(g.End, clamp01(t))
}

func (g Gradient) RGBA(t float64) color.RGBA {
	r, gr, b := g.At(t).RGB255()
	return color.RGBA{R: r, G: gr, B: b, A: 255}
}

// Project returns the gradient parameter of p along the axis from -> to.
// A zero-length axis maps everything to 0.
func Project(p, from, to animation.Point) float64 {
	dx, dy := to.X-from.X, to.Y-from.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	return ((p.X-from.X)*dx + (p.Y-from.Y)*dy) / lenSq
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
