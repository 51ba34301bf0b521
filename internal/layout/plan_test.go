package layout

import (
	"testing"

	"github.com/piwi3910/JointCut/internal/model"
)

func boxRequest() model.Request {
	req := model.NewRequest(model.JointBox, model.BoardSpec{Width: 100, Height: 40, DPI: 300})
	req.Box = &model.BoxParams{FingerWidth: 10, StartWithFinger: true}
	return req
}

func dovetailRequest() model.Request {
	req := model.NewRequest(model.JointDovetail, model.BoardSpec{Width: 100, Height: 40, DPI: 300})
	req.Dovetail = &model.DovetailParams{Tails: 3, RatioRaw: "1:6", Ratio: 6}
	return req
}

func TestPlanForBox(t *testing.T) {
	plan := PlanFor(boxRequest())
	if plan.Joint != model.JointBox {
		t.Errorf("joint = %v", plan.Joint)
	}
	if len(plan.Spans) != 10 {
		t.Errorf("expected 10 spans, got %d", len(plan.Spans))
	}
	if len(plan.Tails) != 0 {
		t.Errorf("box plan has %d tails", len(plan.Tails))
	}
	if got := len(plan.Contours()); got != 5 {
		t.Errorf("expected 5 finger contours, got %d", got)
	}
}

func TestPlanForDovetail(t *testing.T) {
	plan := PlanFor(dovetailRequest())
	if len(plan.Tails) != 3 {
		t.Errorf("expected 3 tails, got %d", len(plan.Tails))
	}
	if got := len(plan.Contours()); got != 3 {
		t.Errorf("expected 3 tail contours, got %d", got)
	}
}

func TestPlanContoursClosedWithinBoard(t *testing.T) {
	for _, plan := range []Plan{PlanFor(boxRequest()), PlanFor(dovetailRequest())} {
		for i, outline := range plan.Contours() {
			if len(outline) < 3 {
				t.Errorf("contour %d has %d points", i, len(outline))
			}
			min, max := outline.BoundingBox()
			if min.X < 0 || min.Y < 0 || max.X > plan.Width || max.Y > plan.Height {
				t.Errorf("contour %d escapes the board: min %+v max %+v", i, min, max)
			}
		}
	}
}

func TestPlanBoardOutline(t *testing.T) {
	plan := PlanFor(boxRequest())
	outline := plan.BoardOutline()
	min, max := outline.BoundingBox()
	if min.X != 0 || min.Y != 0 || max.X != 100 || max.Y != 40 {
		t.Errorf("board outline bounds: min %+v max %+v", min, max)
	}
}
