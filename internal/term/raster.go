package term

import (
	"image/color"
	"math"

	"github.com/iburimskiy/triangle-animation/internal/animation"
	"github.com/iburimskiy/triangle-animation/internal/palette"
)

// Raster is a pixel grid with an explicit "painted" mask. Cells that were
// never painted show the terminal's default background.
type Raster struct {
	Width, Height int

	pix []color.RGBA
	set []bool
}

func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

func (r *Raster) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	r.Width, r.Height = width, height
	if n := width * height; cap(r.pix) >= n {
		r.pix = r.pix[:n]
		r.set = r.set[:n]
	} else {
		r.pix = make([]color.RGBA, n)
		r.set = make([]bool, n)
	}
	r.Clear()
}

func (r *Raster) Clear() {
	clear(r.set)
}

// At reports the colour at (x, y) and whether anything was painted there.
func (r *Raster) At(x, y int) (color.RGBA, bool) {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return color.RGBA{}, false
	}
	i := y*r.Width + x
	return r.pix[i], r.set[i]
}

// StrokeTriangle paints the outline of tri with round joins and caps. width
// is in logical units; the gradient runs from tri[1] to tri[2].
func (r *Raster) StrokeTriangle(s animation.Surface, tri [3]animation.Point, width float64, grad palette.Gradient) {
	if width <= 0 {
		return
	}
	var pts [3]animation.Point
	for i, p := range tri {
		pts[i] = s.ToBuffer(p)
	}
	half := math.Max(width*s.PixelRatio/2, 0.5)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	x0 := max(int(math.Floor(minX-half)), 0)
	y0 := max(int(math.Floor(minY-half)), 0)
	x1 := min(int(math.Ceil(maxX+half)), r.Width-1)
	y1 := min(int(math.Ceil(maxY+half)), r.Height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := animation.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			d := math.Min(segmentDist(p, pts[0], pts[1]),
				math.Min(segmentDist(p, pts[1], pts[2]), segmentDist(p, pts[2], pts[0])))
			if d > half {
				continue
			}
			i := y*r.Width + x
			r.pix[i] = grad.RGBA(palette.Project(p, pts[1], pts[2]))
			r.set[i] = true
		}
	}
}

// segmentDist is the distance from p to the segment a-b.
func segmentDist(p, a, b animation.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
