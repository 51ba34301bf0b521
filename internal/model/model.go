package model

import (
	"fmt"

	"github.com/google/uuid"
)

// JointType selects which layout engine handles a request.
type JointType string

const (
	JointBox      JointType = "box"
	JointDovetail JointType = "dovetail"
)

func (jt JointType) String() string {
	switch jt {
	case JointDovetail:
		return "Dovetail joint"
	default:
		return "Box joint"
	}
}

// Point2D represents a 2D coordinate in mm.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min = Point2D{X: o[0].X, Y: o[0].Y}
	max = Point2D{X: o[0].X, Y: o[0].Y}
	for _, p := range o[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Translate shifts all points by dx, dy.
func (o Outline) Translate(dx, dy float64) Outline {
	result := make(Outline, len(o))
	for i, p := range o {
		result[i] = Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return result
}

// BoardSpec holds the physical board measurements shared by both joint types.
type BoardSpec struct {
	Width  float64 `json:"width"`  // mm across the joint edge
	Height float64 `json:"height"` // mm, template height / board depth
	DPI    int     `json:"dpi"`    // raster output resolution
}

// BoxParams holds box/finger joint parameters.
type BoxParams struct {
	FingerWidth     float64 `json:"finger_width"` // mm
	StartWithFinger bool    `json:"start_with_finger"`
}

// DovetailParams holds dovetail joint parameters.
type DovetailParams struct {
	Tails    int     `json:"tails"`
	RatioRaw string  `json:"ratio_raw"` // as typed, e.g. "6" or "1:6"
	Ratio    float64 `json:"ratio"`     // parsed slope ratio R of 1:R
}

// Request is one immutable template generation request. The GUI and CLI
// both build a Request and hand it to the layout/render/export pipeline;
// nothing downstream mutates it or keeps it after the files are written.
type Request struct {
	ID       string          `json:"id"`
	Joint    JointType       `json:"joint"`
	Board    BoardSpec       `json:"board"`
	Box      *BoxParams      `json:"box,omitempty"`
	Dovetail *DovetailParams `json:"dovetail,omitempty"`
}

// NewRequest returns a Request with a fresh short ID. The ID shows up in
// document footers and GCode headers so a printed template can be matched
// back to its cut list.
func NewRequest(joint JointType, board BoardSpec) Request {
	return Request{
		ID:    uuid.New().String()[:8],
		Joint: joint,
		Board: board,
	}
}

// Title returns the headline printed on raster and document output.
func (r Request) Title() string {
	switch r.Joint {
	case JointDovetail:
		if r.Dovetail != nil {
			return fmt.Sprintf("Dovetail Template - Board: %g mm, Tails: %d, Ratio: 1:%g",
				r.Board.Width, r.Dovetail.Tails, r.Dovetail.Ratio)
		}
	default:
		if r.Box != nil {
			return fmt.Sprintf("Box Joint Template - Board: %g mm, Finger: %g mm",
				r.Board.Width, r.Box.FingerWidth)
		}
	}
	return "Joint Template"
}

// InfoLine returns the print-scale reminder printed under the title.
func (r Request) InfoLine() string {
	return fmt.Sprintf("Print at %d DPI, 'Actual size / 100%%' with no scaling.", r.Board.DPI)
}
