package layout

import (
	"math"
	"testing"
)

func TestBoxSpansExactFit(t *testing.T) {
	// 100mm board, 10mm fingers: exactly 10 alternating spans, first solid.
	spans := BoxSpans(100, 10, true, 0)

	if len(spans) != 10 {
		t.Fatalf("expected 10 spans, got %d", len(spans))
	}
	for i, s := range spans {
		wantSolid := i%2 == 0
		if s.Solid != wantSolid {
			t.Errorf("span %d: solid = %t, want %t", i, s.Solid, wantSolid)
		}
		if s.Width != 10 {
			t.Errorf("span %d: width = %g, want 10", i, s.Width)
		}
		if s.X != float64(i)*10 {
			t.Errorf("span %d: x = %g, want %g", i, s.X, float64(i)*10)
		}
	}
}

func TestBoxSpansGapFirst(t *testing.T) {
	spans := BoxSpans(100, 10, false, 0)
	if spans[0].Solid {
		t.Error("first span should be a gap when startSolid is false")
	}
	if !spans[1].Solid {
		t.Error("second span should be solid when startSolid is false")
	}
}

func TestBoxSpansTruncatedFinalSpan(t *testing.T) {
	spans := BoxSpans(95, 10, true, 0)
	if len(spans) != 10 {
		t.Fatalf("expected 10 spans, got %d", len(spans))
	}
	last := spans[len(spans)-1]
	if last.Width != 5 {
		t.Errorf("final span width = %g, want 5 (truncated)", last.Width)
	}
}

func TestBoxSpansSumToWidth(t *testing.T) {
	// Pixel-domain values: 100mm and 10mm at 300 DPI.
	width := float64(MmToPx(100, 300)) // 1181
	finger := float64(MmToPx(10, 300)) // 118

	spans := BoxSpans(width, finger, true, 0)

	var sum float64
	for _, s := range spans {
		sum += s.Width
	}
	if sum != width {
		t.Errorf("span widths sum to %g, want exactly %g", sum, width)
	}
	if !spans[0].Solid {
		t.Error("first span should be solid")
	}
}

func TestBoxSpansVectorEpsilon(t *testing.T) {
	// 0.1mm steps across 0.7mm accumulate float drift; the epsilon must
	// prevent a phantom final sliver.
	spans := BoxSpans(0.7, 0.1, true, 1e-6)
	if len(spans) != 7 {
		t.Fatalf("expected 7 spans, got %d", len(spans))
	}
	var sum float64
	for _, s := range spans {
		sum += s.Width
	}
	if math.Abs(sum-0.7) > 1e-9 {
		t.Errorf("span widths sum to %g, want 0.7", sum)
	}
}

func TestFingers(t *testing.T) {
	spans := BoxSpans(100, 10, true, 0)
	solid := Fingers(spans)
	if len(solid) != 5 {
		t.Fatalf("expected 5 solid spans, got %d", len(solid))
	}
	for i, s := range solid {
		if !s.Solid {
			t.Errorf("filtered span %d is not solid", i)
		}
	}
}
