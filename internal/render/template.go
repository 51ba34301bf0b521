package render

import (
	"image"

	"github.com/piwi3910/JointCut/internal/layout"
	"github.com/piwi3910/JointCut/internal/model"
)

// Canvas chrome in pixels, matching the printed layout: 5mm page margin,
// the board outline starts 50px below the top margin to leave room for the
// title and info lines, and extra vertical space is reserved below the
// board for the ruler and its labels.
const (
	marginMm         = 5.0
	headerOffsetPx   = 50
	infoLineDyPx     = 24
	boxChromePx      = 80
	dovetailChromePx = 100
)

// Template renders a validated request into a printable raster. The caller
// owns validation; Template assumes the request is well formed.
func Template(req model.Request) (*image.RGBA, error) {
	faces, err := LoadFaces()
	if err != nil {
		return nil, err
	}

	dpi := req.Board.DPI
	marginPx := layout.MmToPx(marginMm, dpi)
	boardWPx := layout.MmToPx(req.Board.Width, dpi)
	boardHPx := layout.MmToPx(req.Board.Height, dpi)

	chrome := boxChromePx
	if req.Joint == model.JointDovetail {
		chrome = dovetailChromePx
	}

	imgW := boardWPx + 2*marginPx
	imgH := boardHPx + 2*marginPx + chrome
	c := NewCanvas(imgW, imgH)

	c.Text(marginPx, marginPx, req.Title(), faces.Title, black)
	c.Text(marginPx, marginPx+infoLineDyPx, req.InfoLine(), faces.Small, black)

	leftX := marginPx
	topY := marginPx + headerOffsetPx
	rightX := leftX + boardWPx
	bottomY := topY + boardHPx

	c.StrokeRect(leftX, topY, rightX, bottomY, black)

	switch req.Joint {
	case model.JointDovetail:
		drawTails(c, req, leftX, topY, boardWPx, boardHPx)
	default:
		drawFingers(c, req, leftX, topY, bottomY, boardWPx)
	}

	c.drawRuler(leftX, bottomY+rulerGapPx, req.Board.Width, dpi, &faces)

	return c.Image(), nil
}

// drawFingers fills the solid spans of the box joint pattern across the
// board, full board height.
func drawFingers(c *Canvas, req model.Request, leftX, topY, bottomY, boardWPx int) {
	fingerPx := layout.MmToPx(req.Box.FingerWidth, req.Board.DPI)
	spans := layout.BoxSpans(float64(boardWPx), float64(fingerPx), req.Box.StartWithFinger, 0)

	for _, s := range layout.Fingers(spans) {
		x0 := leftX + int(s.X)
		x1 := x0 + int(s.Width)
		c.FillRect(x0, topY, x1, bottomY, black)
	}
}

// drawTails computes the dovetail trapezoids in pixel space and fills them.
func drawTails(c *Canvas, req model.Request, leftX, topY, boardWPx, boardHPx int) {
	tails := layout.DovetailTails(float64(boardWPx), float64(boardHPx),
		req.Dovetail.Tails, req.Dovetail.Ratio)

	for _, t := range tails {
		c.FillPolygon(t.Outline().Translate(float64(leftX), float64(topY)), black)
	}
}
