package animation

// Surface is a drawing area measured in logical units. One logical unit maps
// to PixelRatio physical pixels in the backing buffer.
type Surface struct {
	Width      float64
	Height     float64
	PixelRatio float64
}

// NewSurface sizes a surface to its container. A non-positive ratio falls
// back to 1.
func NewSurface(width, height, ratio float64) Surface {
	if ratio <= 0 {
		ratio = 1
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Surface{Width: width, Height: height, PixelRatio: ratio}
}

func (s Surface) BufferWidth() int  { return int(s.Width * s.PixelRatio) }
func (s Surface) BufferHeight() int { return int(s.Height * s.PixelRatio) }

// ToBuffer converts a logical point into backing-buffer coordinates.
func (s Surface) ToBuffer(p Point) Point {
	return Point{X: p.X * s.PixelRatio, Y: p.Y * s.PixelRatio}
}
