package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/triangle-animation/internal/animation"
	"github.com/iburimskiy/triangle-animation/internal/config"
	"github.com/iburimskiy/triangle-animation/internal/palette"
)

func newTestGame(t *testing.T, ratio *float64) *Game {
	t.Helper()
	g, err := New(config.NewDefault(), rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.scaleFactor = func() float64 { return *ratio }
	return g
}

func TestNew_RejectsBadColours(t *testing.T) {
	opts := config.NewDefault()
	opts.GradientStart = "nope"
	if _, err := New(opts, rand.New(rand.NewPCG(1, 1))); err == nil {
		t.Error("Expected error for bad gradient")
	}

	opts = config.NewDefault()
	opts.Background = "nope"
	if _, err := New(opts, rand.New(rand.NewPCG(1, 1))); err == nil {
		t.Error("Expected error for bad background")
	}

	opts.Transparent = true
	if _, err := New(opts, rand.New(rand.NewPCG(1, 1))); err != nil {
		t.Errorf("Background should be ignored when transparent: %v", err)
	}
}

func TestLayout_BufferMatchesDensity(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		ratio        float64
		wantW, wantH int
	}{
		{"Standard", 800, 600, 1, 800, 600},
		{"Retina", 800, 600, 2, 1600, 1200},
		{"Fractional", 801, 601, 1.25, 1001, 751},
		{"Minimised", 0, 0, 2, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio := tt.ratio
			g := newTestGame(t, &ratio)
			w, h := g.Layout(tt.w, tt.h)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, w, h)
			}
			s := g.State().Surface
			if s.Width != float64(tt.w) || s.Height != float64(tt.h) {
				t.Errorf("Logical size lost: %+v", s)
			}
		})
	}
}

func TestLayout_InitialGeometry(t *testing.T) {
	ratio := 1.0
	g := newTestGame(t, &ratio)
	g.Layout(800, 800)

	st := g.State()
	if st.Scale != 1 {
		t.Fatalf("Expected scale 1, got %v", st.Scale)
	}
	if st.A != (animation.Point{X: 175, Y: 225}) {
		t.Errorf("Expected A (175, 225), got %v", st.A)
	}
}

func TestUpdate_BeforeLayoutIsNoop(t *testing.T) {
	ratio := 1.0
	g := newTestGame(t, &ratio)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.ticks != 0 {
		t.Errorf("Expected no ticks before first layout, got %d", g.ticks)
	}
}

func TestLayout_ResizePreservesPhase(t *testing.T) {
	ratio := 1.0
	g := newTestGame(t, &ratio)
	g.Layout(800, 800)
	for i := 0; i < 120; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	before := g.State()

	// Same size every frame does not re-derive.
	g.Layout(800, 800)
	if g.State() != before {
		t.Error("Unchanged layout altered state")
	}

	g.Layout(400, 400)
	after := g.State()
	if after.Scale != 0.5 {
		t.Errorf("Expected scale 0.5, got %v", after.Scale)
	}
	if after.C.PhaseX != before.C.PhaseX || after.C.PhaseY != before.C.PhaseY ||
		after.CStar.PhaseX != before.CStar.PhaseX || after.CStar.PhaseY != before.CStar.PhaseY {
		t.Error("Resize reset phases")
	}

	// Density change alone is a resize too.
	ratio = 2
	w, h := g.Layout(400, 400)
	if w != 800 || h != 800 {
		t.Errorf("Expected 800x800 buffer, got %dx%d", w, h)
	}
	if g.State().Surface.PixelRatio != 2 {
		t.Errorf("Density change not applied")
	}
	if g.State().A != after.A {
		t.Errorf("Logical geometry should not depend on density")
	}
}

func TestLayout_RepeatedResizeIdempotent(t *testing.T) {
	ratio := 1.0
	g := newTestGame(t, &ratio)
	g.Layout(800, 800)
	for i := 0; i < 30; i++ {
		g.Update()
	}

	g.Layout(1024, 640)
	once := g.State()
	g.Layout(1024, 640)
	if g.State() != once {
		t.Error("Second identical resize changed geometry")
	}
}

func TestColorVertices(t *testing.T) {
	grad := palette.Default()
	from := animation.Point{X: 0, Y: 0}
	to := animation.Point{X: 0, Y: 100}
	vs := []ebiten.Vertex{
		{DstX: 5, DstY: 0},
		{DstX: -5, DstY: 100},
		{DstX: 0, DstY: 50},
		{DstX: 0, DstY: -20},
	}

	colorVertices(vs, from, to, grad)

	check := func(i int, tt float64) {
		t.Helper()
		want := grad.At(tt)
		v := vs[i]
		if math.Abs(float64(v.ColorR)-want.R) > 1e-6 ||
			math.Abs(float64(v.ColorG)-want.G) > 1e-6 ||
			math.Abs(float64(v.ColorB)-want.B) > 1e-6 || v.ColorA != 1 {
			t.Errorf("vertex %d: expected colour at t=%v, got (%v %v %v %v)", i, tt, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
		if v.SrcX != 1 || v.SrcY != 1 {
			t.Errorf("vertex %d: expected source (1, 1), got (%v, %v)", i, v.SrcX, v.SrcY)
		}
	}
	check(0, 0)
	check(1, 1)
	check(2, 0.5)
	check(3, 0) // clamped
}
