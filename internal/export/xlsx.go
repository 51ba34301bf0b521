package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/JointCut/internal/layout"
	"github.com/piwi3910/JointCut/internal/model"
)

// WriteCutList writes an XLSX cut list: the request parameters followed by
// one row per span (box joints) or tail (dovetails) with millimeter
// offsets, so the layout can be checked against a marking gauge.
func WriteCutList(path string, req model.Request, plan layout.Plan) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Cut List"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	set := func(col string, r int, value interface{}) {
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, r), value)
	}

	set("A", row, "Joint Template Cut List")
	row++
	set("A", row, "Request")
	set("B", row, req.ID)
	row++
	set("A", row, "Type")
	set("B", row, req.Joint.String())
	row++
	set("A", row, "Board width (mm)")
	set("B", row, req.Board.Width)
	row++
	set("A", row, "Height/depth (mm)")
	set("B", row, req.Board.Height)
	row++

	switch req.Joint {
	case model.JointDovetail:
		m := layout.Metrics(plan.Width, plan.Height, req.Dovetail.Tails, req.Dovetail.Ratio)
		set("A", row, "Tails")
		set("B", row, req.Dovetail.Tails)
		row++
		set("A", row, "Ratio")
		set("B", row, fmt.Sprintf("1:%g", req.Dovetail.Ratio))
		row++
		set("A", row, "Pin width (mm)")
		set("B", row, m.PinWidth)
		row++
		set("A", row, "Slope inset per side (mm)")
		set("B", row, m.Offset)
		row += 2

		headers := []string{"Tail", "Top left (mm)", "Top right (mm)", "Bottom left (mm)", "Bottom right (mm)", "Degenerate"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, h)
		}
		row++
		for i, t := range plan.Tails {
			values := []interface{}{i + 1, t.TopLeft.X, t.TopRight.X, t.BottomLeft.X, t.BottomRight.X, t.Degenerate()}
			for j, v := range values {
				cell, _ := excelize.CoordinatesToCellName(j+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}

	default:
		set("A", row, "Finger width (mm)")
		set("B", row, req.Box.FingerWidth)
		row++
		set("A", row, "Start with finger")
		set("B", row, req.Box.StartWithFinger)
		row += 2

		headers := []string{"Span", "Kind", "Start (mm)", "Width (mm)"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, h)
		}
		row++
		for i, s := range plan.Spans {
			kind := "Gap"
			if s.Solid {
				kind = "Finger"
			}
			values := []interface{}{i + 1, kind, s.X, s.Width}
			for j, v := range values {
				cell, _ := excelize.CoordinatesToCellName(j+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}

	if err := f.SetColWidth(sheet, "A", "F", 22); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
