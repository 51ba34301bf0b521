package layout

import "github.com/piwi3910/JointCut/internal/model"

// DovetailMetrics holds the derived widths of a dovetail layout. The board
// width is divided into tail units with a pin of half a unit before, between
// and after the tails:
//
//	total units = tails*1 + (tails+1)*0.5
type DovetailMetrics struct {
	UnitWidth    float64 // width of one tail unit
	TailTopWidth float64 // tail width at the board edge (== UnitWidth)
	PinWidth     float64 // half a unit
	Offset       float64 // horizontal slope inset per side, depth/ratio
}

// Tail is one dovetail trapezoid. The top edge lies on the board edge
// (y=0), the bottom edge on the far face (y=depth). A degenerate tail has
// BottomLeft == BottomRight.
type Tail struct {
	TopLeft     model.Point2D
	TopRight    model.Point2D
	BottomRight model.Point2D
	BottomLeft  model.Point2D
}

// Outline returns the tail corners in drawing order.
func (t Tail) Outline() model.Outline {
	return model.Outline{t.TopLeft, t.TopRight, t.BottomRight, t.BottomLeft}
}

// Degenerate reports whether the tail collapsed to a triangle.
func (t Tail) Degenerate() bool {
	return t.BottomLeft.X == t.BottomRight.X
}

// Metrics computes the dovetail widths for a board. ratio is the R of the
// woodworking 1:R slope convention; a larger R gives shallower, more
// parallel tails.
func Metrics(width, depth float64, tails int, ratio float64) DovetailMetrics {
	totalUnits := float64(tails) + float64(tails+1)*0.5
	unit := width / totalUnits
	return DovetailMetrics{
		UnitWidth:    unit,
		TailTopWidth: unit,
		PinWidth:     0.5 * unit,
		Offset:       depth / ratio,
	}
}

// DovetailTails places the tails left to right: pin, tail, pin, ..., tail,
// pin. Each tail's bottom edge is inset by the slope offset on both sides.
// If the insets cross, both bottom corners collapse to their midpoint; an
// overly steep ratio yields a triangular tail, never a self-intersecting
// polygon.
func DovetailTails(width, depth float64, tails int, ratio float64) []Tail {
	m := Metrics(width, depth, tails, ratio)

	result := make([]Tail, 0, tails)
	for i := 0; i < tails; i++ {
		topLeft := m.PinWidth + float64(i)*(m.TailTopWidth+m.PinWidth)
		topRight := topLeft + m.TailTopWidth

		bottomLeft := topLeft + m.Offset
		bottomRight := topRight - m.Offset
		if bottomRight <= bottomLeft {
			mid := (bottomLeft + bottomRight) / 2.0
			bottomLeft = mid
			bottomRight = mid
		}

		result = append(result, Tail{
			TopLeft:     model.Point2D{X: topLeft, Y: 0},
			TopRight:    model.Point2D{X: topRight, Y: 0},
			BottomRight: model.Point2D{X: bottomRight, Y: depth},
			BottomLeft:  model.Point2D{X: bottomLeft, Y: depth},
		})
	}
	return result
}
