package export

import (
	"fmt"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/piwi3910/JointCut/internal/layout"
	"github.com/piwi3910/JointCut/internal/model"
)

// svgUnitsPerMm scales mm into SVG user units. svgo works in integers, so
// shapes are quantized to 0.01mm; the physical width/height attributes stay
// exact millimeters.
const svgUnitsPerMm = 100

func svgUnits(mm float64) int {
	return int(math.Round(mm * svgUnitsPerMm))
}

// WriteSVG writes the plan as a millimeter-unit SVG with stroke-only
// shapes, the format laser software such as LightBurn imports at true
// scale: one board outline rectangle plus one closed shape per finger/tail.
func WriteSVG(path string, plan layout.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w, h := plan.Width, plan.Height
	canvas := svg.New(f)
	canvas.Startraw(
		fmt.Sprintf(`width="%gmm"`, w),
		fmt.Sprintf(`height="%gmm"`, h),
		fmt.Sprintf(`viewBox="0 0 %d %d"`, svgUnits(w), svgUnits(h)),
	)
	canvas.Group(`stroke="black" fill="none" stroke-width="10"`)

	canvas.Rect(0, 0, svgUnits(w), svgUnits(h))
	for _, outline := range plan.Contours() {
		svgPolygon(canvas, outline)
	}

	canvas.Gend()
	canvas.End()
	return f.Close()
}

func svgPolygon(canvas *svg.SVG, outline model.Outline) {
	xs := make([]int, len(outline))
	ys := make([]int, len(outline))
	for i, p := range outline {
		xs[i] = svgUnits(p.X)
		ys[i] = svgUnits(p.Y)
	}
	canvas.Polygon(xs, ys)
}
