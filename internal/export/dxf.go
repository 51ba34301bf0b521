package export

import (
	"fmt"

	"github.com/yofu/dxf"
	dxfdrawing "github.com/yofu/dxf/drawing"

	"github.com/piwi3910/JointCut/internal/layout"
	"github.com/piwi3910/JointCut/internal/model"
)

// WriteDXF writes the plan as millimeter-unit closed LWPOLYLINEs: the board
// outline plus one polyline per finger/tail. DXF's Y axis points up, so the
// plan's top-down coordinates are mirrored about the board height.
func WriteDXF(path string, plan layout.Plan) error {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer("TEMPLATE", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add DXF layer: %w", err)
	}

	if err := dxfPolyline(d, plan.BoardOutline(), plan.Height); err != nil {
		return err
	}
	for _, outline := range plan.Contours() {
		if err := dxfPolyline(d, outline, plan.Height); err != nil {
			return err
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func dxfPolyline(d *dxfdrawing.Drawing, outline model.Outline, height float64) error {
	vertices := make([][]float64, len(outline))
	for i, p := range outline {
		vertices[i] = []float64{p.X, height - p.Y}
	}
	if _, err := d.LwPolyline(true, vertices...); err != nil {
		return fmt.Errorf("add DXF polyline: %w", err)
	}
	return nil
}
