package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/JointCut/internal/layout"
)

func writeSVGFor(t *testing.T, plan layout.Plan) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := WriteSVG(path, plan); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read SVG: %v", err)
	}
	return string(data)
}

func TestWriteSVGBox(t *testing.T) {
	content := writeSVGFor(t, layout.PlanFor(boxRequest()))

	if !strings.Contains(content, `width="100mm"`) {
		t.Error("SVG is missing the exact physical width")
	}
	if !strings.Contains(content, `height="40mm"`) {
		t.Error("SVG is missing the exact physical height")
	}
	if !strings.Contains(content, "0 0 10000 4000") {
		t.Errorf("SVG viewBox should be in 0.01mm units: %s", firstLine(content))
	}

	// Board outline + 5 finger rectangles (fingers export as polygons).
	if got := strings.Count(content, "<rect"); got != 1 {
		t.Errorf("expected 1 rect (board outline), got %d", got)
	}
	if got := strings.Count(content, "<polygon"); got != 5 {
		t.Errorf("expected 5 finger polygons, got %d", got)
	}
}

func TestWriteSVGDovetail(t *testing.T) {
	content := writeSVGFor(t, layout.PlanFor(dovetailRequest()))

	if got := strings.Count(content, "<polygon"); got != 3 {
		t.Errorf("expected 3 tail polygons, got %d", got)
	}
	// mm re-derivation: first tail top-left corner is at exactly 10mm.
	if !strings.Contains(content, "1000,0") {
		t.Error("first tail corner should be at 10mm (1000 centi-mm)")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
