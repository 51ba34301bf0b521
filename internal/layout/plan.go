package layout

import "github.com/piwi3910/JointCut/internal/model"

// vectorEps keeps float drift on the running span offset from emitting a
// phantom final sliver in the millimeter domain.
const vectorEps = 1e-6

// Plan is the millimeter-space cut description of one request. Vector and
// GCode exporters consume the Plan directly so their dimensions are exact
// regardless of the raster DPI; the raster path re-derives the same layout
// in pixel space instead.
type Plan struct {
	Joint  model.JointType
	Width  float64 // board width, mm
	Height float64 // board height / depth, mm
	Spans  []Span  // box joints only
	Tails  []Tail  // dovetail joints only
}

// PlanFor computes the mm-space layout for a validated request.
func PlanFor(req model.Request) Plan {
	p := Plan{
		Joint:  req.Joint,
		Width:  req.Board.Width,
		Height: req.Board.Height,
	}
	switch req.Joint {
	case model.JointDovetail:
		p.Tails = DovetailTails(req.Board.Width, req.Board.Height,
			req.Dovetail.Tails, req.Dovetail.Ratio)
	default:
		p.Spans = BoxSpans(req.Board.Width, req.Box.FingerWidth,
			req.Box.StartWithFinger, vectorEps)
	}
	return p
}

// Contours returns every cut shape of the plan as a closed outline in mm:
// solid fingers for box joints, tail trapezoids for dovetails. The board
// outline itself is not included.
func (p Plan) Contours() []model.Outline {
	var outlines []model.Outline
	switch p.Joint {
	case model.JointDovetail:
		for _, t := range p.Tails {
			outlines = append(outlines, t.Outline())
		}
	default:
		for _, s := range Fingers(p.Spans) {
			outlines = append(outlines, model.Outline{
				{X: s.X, Y: 0},
				{X: s.X + s.Width, Y: 0},
				{X: s.X + s.Width, Y: p.Height},
				{X: s.X, Y: p.Height},
			})
		}
	}
	return outlines
}

// BoardOutline returns the board rectangle as a closed outline in mm.
func (p Plan) BoardOutline() model.Outline {
	return model.Outline{
		{X: 0, Y: 0},
		{X: p.Width, Y: 0},
		{X: p.Width, Y: p.Height},
		{X: 0, Y: p.Height},
	}
}
