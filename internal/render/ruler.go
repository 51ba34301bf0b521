package render

import (
	"fmt"

	"github.com/piwi3910/JointCut/internal/layout"
)

// Ruler geometry. The ruler is a printed-scale sanity check: it spans at
// most 200mm so very wide boards still get a fine-grained reference near
// the origin.
const (
	rulerMaxLengthMm = 200.0
	rulerTickStepMm  = 10.0
	rulerTickTol     = 0.01 // absorbs float drift on the last tick
	rulerGapPx       = 10   // below the board outline
	rulerTickPx      = 6
	rulerLabelDxPx   = -10
	rulerLabelDyPx   = 8
)

// RulerLengthMm returns the drawn ruler length for a board width.
func RulerLengthMm(boardWidthMm float64) float64 {
	if boardWidthMm < rulerMaxLengthMm {
		return boardWidthMm
	}
	return rulerMaxLengthMm
}

// RulerTicksMm returns the labeled tick positions for a ruler of the given
// length: 0, 10, 20, ... including a final tick landing exactly on the
// capped length.
func RulerTicksMm(lengthMm float64) []float64 {
	var ticks []float64
	for mm := 0.0; mm <= lengthMm+rulerTickTol; mm += rulerTickStepMm {
		ticks = append(ticks, mm)
	}
	return ticks
}

// drawRuler draws the baseline, ticks and mm labels with the baseline's
// left end at (leftX, topY).
func (c *Canvas) drawRuler(leftX, topY int, boardWidthMm float64, dpi int, face *Faces) {
	lengthMm := RulerLengthMm(boardWidthMm)
	lengthPx := layout.MmToPx(lengthMm, dpi)

	c.HLine(leftX, leftX+lengthPx, topY, black)

	for _, mm := range RulerTicksMm(lengthMm) {
		x := leftX + layout.MmToPx(mm, dpi)
		c.VLine(x, topY, topY+rulerTickPx, black)
		label := fmt.Sprintf("%d mm", int(mm))
		c.Text(x+rulerLabelDxPx, topY+rulerLabelDyPx, label, face.Small, black)
	}
}
