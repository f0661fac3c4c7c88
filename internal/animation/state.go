// Package animation holds the triangle geometry: two fixed vertices shared by
// both triangles and two apexes that oscillate around scale-derived bases.
//
// State is owned by a single host loop. Step mutates it in place once per
// frame; Rederive builds a fresh value when the surface changes.
package animation

import (
	"math"

	"github.com/iburimskiy/triangle-animation/internal/config"
)

// Rand is the random source used for frequency re-rolls. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

type State struct {
	Surface Surface
	Center  Point
	Scale   float64

	A, B     Point
	C, CStar Apex
}

type layout struct {
	center Point
	scale  float64
}

func layoutFor(s Surface) layout {
	return layout{
		center: Point{X: s.Width/2 - config.CenterInset, Y: s.Height/2 - config.CenterInset},
		scale:  math.Min(s.Width, s.Height) / config.ReferenceDimension,
	}
}

func (l layout) at(dx, dy float64) Point {
	return Point{X: l.center.X + dx*l.scale, Y: l.center.Y + dy*l.scale}
}

// NewState lays out the initial geometry for a surface.
func NewState(s Surface) State {
	l := layoutFor(s)
	st := State{
		Surface: s,
		Center:  l.center,
		Scale:   l.scale,
		A:       l.at(config.PointAX, config.PointAY),
		B:       l.at(config.PointBX, config.PointBY),
		C: Apex{
			Base:      l.at(config.ApexCX, config.ApexCY),
			Amplitude: config.ApexAmplitude * l.scale,
			Frequency: config.InitialFrequency,
			PhaseX:    0,
			PhaseY:    math.Pi / 5,
			Motion:    MotionC,
		},
		CStar: Apex{
			Base:      l.at(config.ApexCStarX, config.ApexCStarY),
			Amplitude: config.ApexAmplitude * l.scale,
			Frequency: config.InitialFrequency,
			PhaseX:    math.Pi / 5,
			PhaseY:    math.Pi / 5,
			Motion:    MotionCStar,
		},
	}
	// Apexes rest on their bases until the first Step.
	st.C.Pos = st.C.Base
	st.CStar.Pos = st.CStar.Base
	return st
}

// Rederive lays the geometry out again for a new surface. Phases and
// frequencies carry over from old so the motion continues without a jump.
func Rederive(old State, s Surface) State {
	st := NewState(s)
	for _, pair := range []struct{ dst, src *Apex }{
		{&st.C, &old.C},
		{&st.CStar, &old.CStar},
	} {
		pair.dst.PhaseX = pair.src.PhaseX
		pair.dst.PhaseY = pair.src.PhaseY
		if pair.src.Frequency > 0 {
			pair.dst.Frequency = pair.src.Frequency
		}
		pair.dst.Pos = pair.dst.Position()
	}
	return st
}

// Step advances both apexes by one frame, then gives each an independent
// chance to re-roll its frequency.
func (st *State) Step(rng Rand) {
	st.C.advance()
	st.CStar.advance()

	st.C.reroll(rng)
	st.CStar.reroll(rng)
}

// LineWidth is the stroke width in logical units.
func (st *State) LineWidth() float64 {
	return config.StrokeWidth * st.Scale
}

// Triangles returns the two closed paths in draw order.
func (st *State) Triangles() [2][3]Point {
	return [2][3]Point{
		{st.A, st.B, st.C.Pos},
		{st.A, st.B, st.CStar.Pos},
	}
}
