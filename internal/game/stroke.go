package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/triangle-animation/internal/animation"
	"github.com/iburimskiy/triangle-animation/internal/palette"
)

// strokeBuffer reuses vertex and index slices between frames.
type strokeBuffer struct {
	vertices []ebiten.Vertex
	indices  []uint16
	white    *ebiten.Image
}

// source returns a 1x1 white sub-image. Taking the centre pixel of a 3x3
// image keeps linear filtering from sampling the transparent border.
func (b *strokeBuffer) source() *ebiten.Image {
	if b.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		b.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return b.white
}

// draw strokes the closed path tri[0] -> tri[1] -> tri[2] with a gradient
// running from tri[1] to tri[2].
func (b *strokeBuffer) draw(dst *ebiten.Image, s animation.Surface, tri [3]animation.Point, grad palette.Gradient, op *vector.StrokeOptions) {
	var pts [3]animation.Point
	for i, p := range tri {
		pts[i] = s.ToBuffer(p)
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	path.LineTo(float32(pts[1].X), float32(pts[1].Y))
	path.LineTo(float32(pts[2].X), float32(pts[2].Y))
	path.Close()

	b.vertices, b.indices = path.AppendVerticesAndIndicesForStroke(b.vertices[:0], b.indices[:0], op)
	colorVertices(b.vertices, pts[1], pts[2], grad)

	dst.DrawTriangles(b.vertices, b.indices, b.source(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// colorVertices paints every vertex with the gradient colour at its
// projection onto from -> to. Coordinates are in buffer space; the
// projection is scale invariant so from and to must be in the same space.
func colorVertices(vs []ebiten.Vertex, from, to animation.Point, grad palette.Gradient) {
	for i := range vs {
		p := animation.Point{X: float64(vs[i].DstX), Y: float64(vs[i].DstY)}
		c := grad.At(palette.Project(p, from, to))
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R)
		vs[i].ColorG = float32(c.G)
		vs[i].ColorB = float32(c.B)
		vs[i].ColorA = 1
	}
}
