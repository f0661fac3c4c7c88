package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/iburimskiy/triangle-animation/internal/animation"
	"github.com/iburimskiy/triangle-animation/internal/config"
	"github.com/iburimskiy/triangle-animation/internal/palette"
)

// Game drives the animation inside an ebiten window. ebiten calls Layout,
// Update and Draw from one goroutine, so state needs no locking.
type Game struct {
	opts       *config.Options
	rng        animation.Rand
	gradient   palette.Gradient
	background color.Color // nil clears to transparent

	// scaleFactor reports the device pixel ratio of the current monitor.
	scaleFactor func() float64

	state animation.State
	ready bool
	ticks uint64

	stroke strokeBuffer
}

func New(opts *config.Options, rng animation.Rand) (*Game, error) {
	grad, err := palette.New(opts.GradientStart, opts.GradientEnd)
	if err != nil {
		return nil, errors.Wrap(err, "gradient")
	}

	g := &Game{
		opts:        opts,
		rng:         rng,
		gradient:    grad,
		scaleFactor: deviceScaleFactor,
	}
	if !opts.Transparent {
		bg, err := palette.Parse(opts.Background)
		if err != nil {
			return nil, errors.Wrap(err, "background")
		}
		g.background = bg
	}
	return g, nil
}

func deviceScaleFactor() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func (g *Game) Update() error {
	if !g.ready {
		return nil
	}
	g.state.Step(g.rng)
	g.ticks++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.background != nil {
		screen.Fill(g.background)
	} else {
		screen.Clear()
	}
	if !g.ready {
		return
	}

	s := g.state.Surface
	width := g.state.LineWidth() * s.PixelRatio
	if width > 0 {
		op := &vector.StrokeOptions{
			Width:    float32(width),
			LineJoin: vector.LineJoinRound,
			LineCap:  vector.LineCapRound,
		}
		for _, tri := range g.state.Triangles() {
			g.stroke.draw(screen, s, tri, g.gradient, op)
		}
	}

	if g.opts.HUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := &g.state
	msg := fmt.Sprintf("TPS %.1f  FPS %.1f  tick %d\nsurface %.0fx%.0f @%.2fx  scale %.3f\nf(C) %.4f  f(C*) %.4f",
		ebiten.ActualTPS(), ebiten.ActualFPS(), g.ticks,
		st.Surface.Width, st.Surface.Height, st.Surface.PixelRatio, st.Scale,
		st.C.Frequency, st.CStar.Frequency)
	ebitenutil.DebugPrintAt(screen, msg, 12, 12)
}

// Layout is called by ebiten every frame with the window's logical size. The
// returned buffer is sized in physical pixels so strokes stay sharp on high
// density displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resize(outsideWidth, outsideHeight, g.scaleFactor())

	// ebiten rejects a non-positive screen size, e.g. while minimised.
	w, h := g.state.Surface.BufferWidth(), g.state.Surface.BufferHeight()
	return max(w, 1), max(h, 1)
}

// resize sets up the surface and re-derives the geometry when the size or
// density changed since the last call.
func (g *Game) resize(width, height int, ratio float64) {
	s := animation.NewSurface(float64(width), float64(height), ratio)
	if !g.ready {
		g.state = animation.NewState(s)
		g.ready = true
		log.Printf("game: surface %dx%d @%.2fx, scale %.3f", width, height, s.PixelRatio, g.state.Scale)
		return
	}
	if s == g.state.Surface {
		return
	}

	prev := g.state.Surface
	g.state = animation.Rederive(g.state, s)
	log.Printf("game: resize %.0fx%.0f@%.2fx -> %dx%d@%.2fx, scale %.3f",
		prev.Width, prev.Height, prev.PixelRatio, width, height, s.PixelRatio, g.state.Scale)
}

// State returns a copy of the current animation state.
func (g *Game) State() animation.State {
	return g.state
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("game: starting window %dx%d transparent=%v", g.opts.Width, g.opts.Height, g.opts.Transparent)
	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: g.opts.Transparent,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run window")
	}
	log.Printf("game: window closed after %d ticks", g.ticks)
	return nil
}
