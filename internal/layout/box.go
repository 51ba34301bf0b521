package layout

// Span is one run of a box joint pattern: a solid finger or the gap between
// fingers, measured from the left edge of the board.
type Span struct {
	Solid bool
	X     float64
	Width float64
}

// BoxSpans lays out alternating finger/gap spans across a board. The last
// span is truncated to whatever width remains, so span widths always sum to
// exactly width.
//
// The same function serves the pixel path (pass already-converted whole
// pixel values, eps 0) and the millimeter vector path (pass mm with a small
// eps so float drift on the running offset cannot emit a phantom final
// sliver).
func BoxSpans(width, finger float64, startSolid bool, eps float64) []Span {
	var spans []Span

	x := 0.0
	solid := startSolid
	for x < width-eps {
		w := finger
		if remaining := width - x; w > remaining {
			w = remaining
		}
		spans = append(spans, Span{Solid: solid, X: x, Width: w})
		x += w
		solid = !solid
	}
	return spans
}

// Fingers filters a span sequence down to the solid spans, which are the
// only ones that get drawn (gaps show the background through).
func Fingers(spans []Span) []Span {
	var solid []Span
	for _, s := range spans {
		if s.Solid {
			solid = append(solid, s)
		}
	}
	return solid
}
