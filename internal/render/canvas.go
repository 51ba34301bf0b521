// Package render rasterizes joint layouts into printable images: board
// outline, filled cut pattern, title/info header and a millimeter ruler.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/piwi3910/JointCut/internal/model"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

// Canvas is a white RGBA surface with the few drawing primitives a template
// needs. Coordinates are pixels.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: white}, image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image returns the backing raster.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// FillRect fills the rectangle spanning [x0,x1) x [y0,y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col color.Color) {
	draw.Draw(c.img, image.Rect(x0, y0, x1, y1), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// StrokeRect draws a 1px rectangle outline with corners (x0,y0) and (x1,y1)
// inclusive.
func (c *Canvas) StrokeRect(x0, y0, x1, y1 int, col color.Color) {
	c.HLine(x0, x1, y0, col)
	c.HLine(x0, x1, y1, col)
	c.VLine(x0, y0, y1, col)
	c.VLine(x1, y0, y1, col)
}

// HLine draws a horizontal 1px line from x0 to x1 inclusive.
func (c *Canvas) HLine(x0, x1, y int, col color.Color) {
	for x := x0; x <= x1; x++ {
		c.img.Set(x, y, col)
	}
}

// VLine draws a vertical 1px line from y0 to y1 inclusive.
func (c *Canvas) VLine(x, y0, y1 int, col color.Color) {
	for y := y0; y <= y1; y++ {
		c.img.Set(x, y, col)
	}
}

// FillPolygon fills a closed polygon given in float pixel coordinates using
// even-odd scanline filling. Degenerate polygons (fewer than 3 points, or
// zero-height) draw nothing.
func (c *Canvas) FillPolygon(pts model.Outline, col color.Color) {
	if len(pts) < 3 {
		return
	}

	minPt, maxPt := pts.BoundingBox()
	yStart := int(math.Floor(minPt.Y))
	yEnd := int(math.Ceil(maxPt.Y))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y) + 0.5

		// Collect scanline/edge intersections.
		var xs []float64
		for i := range pts {
			p1 := pts[i]
			p2 := pts[(i+1)%len(pts)]
			if (p1.Y <= fy && p2.Y > fy) || (p2.Y <= fy && p1.Y > fy) {
				t := (fy - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Round(xs[i]))
			x1 := int(math.Round(xs[i+1]))
			for x := x0; x < x1; x++ {
				c.img.Set(x, y, col)
			}
		}
	}
}

// Text draws a string with its top-left corner at (x, y).
func (c *Canvas) Text(x, y int, s string, face font.Face, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: col},
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
