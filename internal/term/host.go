// Package term runs the animation in a terminal. Every cell holds two
// vertical pixels drawn with half-block glyphs in true colour.
package term

import (
	"context"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/triangle-animation/internal/animation"
	"github.com/iburimskiy/triangle-animation/internal/config"
	"github.com/iburimskiy/triangle-animation/internal/palette"
)

// Host owns the animation state. All reads and writes happen on the goroutine
// running Run; PollEvent results reach it through a channel.
type Host struct {
	screen   tcell.Screen
	rng      animation.Rand
	gradient palette.Gradient
	interval time.Duration

	state  animation.State
	raster *Raster
	ticks  uint64
}

// New wraps an initialised screen.
func New(screen tcell.Screen, opts *config.Options, rng animation.Rand) (*Host, error) {
	grad, err := palette.New(opts.GradientStart, opts.GradientEnd)
	if err != nil {
		return nil, errors.Wrap(err, "gradient")
	}
	h := &Host{
		screen:   screen,
		rng:      rng,
		gradient: grad,
		interval: config.TermFrameInterval,
		raster:   NewRaster(0, 0),
	}
	h.state = animation.NewState(h.surface())
	h.raster.Resize(h.state.Surface.BufferWidth(), h.state.Surface.BufferHeight())
	return h, nil
}

// surface maps the terminal grid to logical units. Each half-block pixel
// spans TermUnitsPerPixel units, so the pixel ratio is below one.
func (h *Host) surface() animation.Surface {
	cols, rows := h.screen.Size()
	u := config.TermUnitsPerPixel
	return animation.NewSurface(float64(cols)*u, float64(rows*2)*u, 1/u)
}

// Run draws frames until ctx is cancelled or the user presses Esc or Ctrl-C.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	log.Printf("term: running, surface %.0fx%.0f scale %.3f", h.state.Surface.Width, h.state.Surface.Height, h.state.Scale)
	for {
		select {
		case <-ctx.Done():
			log.Printf("term: stopped after %d ticks", h.ticks)
			return nil
		case ev := <-events:
			if !h.handleEvent(ev) {
				log.Printf("term: quit after %d ticks", h.ticks)
				return nil
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	}
	return true
}

// resize re-derives geometry for the current terminal size, keeping phase.
func (h *Host) resize() {
	prev := h.state.Surface
	h.state = animation.Rederive(h.state, h.surface())
	h.raster.Resize(h.state.Surface.BufferWidth(), h.state.Surface.BufferHeight())
	log.Printf("term: resize %.0fx%.0f -> %.0fx%.0f, scale %.3f",
		prev.Width, prev.Height, h.state.Surface.Width, h.state.Surface.Height, h.state.Scale)
}

// Frame advances the animation one tick and draws it.
func (h *Host) Frame() {
	h.state.Step(h.rng)
	h.ticks++
	h.draw()
}

func (h *Host) draw() {
	h.raster.Clear()
	for _, tri := range h.state.Triangles() {
		h.raster.StrokeTriangle(h.state.Surface, tri, h.state.LineWidth(), h.gradient)
	}

	cols, rows := h.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, topSet := h.raster.At(x, y*2)
			bottom, bottomSet := h.raster.At(x, y*2+1)

			glyph, style := ' ', tcell.StyleDefault
			switch {
			case topSet && bottomSet:
				glyph = '▀'
				style = style.Foreground(rgb(top)).Background(rgb(bottom))
			case topSet:
				glyph = '▀'
				style = style.Foreground(rgb(top))
			case bottomSet:
				glyph = '▄'
				style = style.Foreground(rgb(bottom))
			}
			h.screen.SetContent(x, y, glyph, nil, style)
		}
	}
	h.screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// State returns a copy of the current animation state.
func (h *Host) State() animation.State {
	return h.state
}
