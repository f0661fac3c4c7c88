package animation

import (
	"math"

	"github.com/iburimskiy/triangle-animation/internal/config"
)

type Point struct {
	X, Y float64
}

// Motion describes how an apex moves: how fast each phase axis advances
// relative to the frequency, the range a re-rolled frequency is drawn from,
// and the displacement formula.
type Motion struct {
	Name         string
	StepX, StepY float64
	FreqMin      float64
	FreqMax      float64
	Offset       func(phaseX, phaseY, amplitude float64) Point
}

// MotionC swings x with a slowly modulated envelope and y with a plain sine.
var MotionC = &Motion{
	Name:    "C",
	StepX:   1.0,
	StepY:   1.2,
	FreqMin: config.ApexCFrequencyMin,
	FreqMax: config.ApexCFrequencyMax,
	Offset: func(px, py, amp float64) Point {
		return Point{
			X: math.Sin(px) * amp * math.Sin(py*0.3),
			Y: math.Sin(py) * (amp * 0.8),
		}
	},
}

// MotionCStar swings x with a plain sine and y with a cosine gated by half
// the x phase.
var MotionCStar = &Motion{
	Name:    "C*",
	StepX:   0.9,
	StepY:   1.1,
	FreqMin: config.ApexCStarFrequencyMin,
	FreqMax: config.ApexCStarFrequencyMax,
	Offset: func(px, py, amp float64) Point {
		return Point{
			X: math.Sin(px) * amp,
			Y: math.Cos(py) * (amp * 0.7) * math.Sin(px*0.5),
		}
	},
}

// Apex is the oscillating third vertex of a triangle.
type Apex struct {
	Pos       Point
	Base      Point
	Amplitude float64
	Frequency float64
	PhaseX    float64
	PhaseY    float64
	Motion    *Motion
}

// Position evaluates the apex position for its current phases.
func (a Apex) Position() Point {
	off := a.Motion.Offset(a.PhaseX, a.PhaseY, a.Amplitude)
	return Point{X: a.Base.X + off.X, Y: a.Base.Y + off.Y}
}

// advance moves both phases forward by one tick and refreshes Pos.
func (a *Apex) advance() {
	a.PhaseX += a.Frequency * a.Motion.StepX
	a.PhaseY += a.Frequency * a.Motion.StepY
	a.Pos = a.Position()
}

// reroll draws a new frequency with probability config.RerollProbability.
func (a *Apex) reroll(rng Rand) bool {
	if rng.Float64() >= config.RerollProbability {
		return false
	}
	a.Frequency = a.Motion.FreqMin + rng.Float64()*(a.Motion.FreqMax-a.Motion.FreqMin)
	return true
}
