package render

import (
	"image/color"
	"testing"

	"github.com/piwi3910/JointCut/internal/layout"
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

func isBlack(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0 && g == 0 && b == 0
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestTemplateBoxDimensions(t *testing.T) {
	img, err := Template(boxRequest())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	margin := layout.MmToPx(5, 300)   // 59
	boardW := layout.MmToPx(100, 300) // 1181
	boardH := layout.MmToPx(40, 300)  // 472

	wantW := boardW + 2*margin
	wantH := boardH + 2*margin + boxChromePx
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("image %dx%d, want %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
	}
}

func TestTemplateBoxFingerPattern(t *testing.T) {
	img, err := Template(boxRequest())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	margin := layout.MmToPx(5, 300)
	fingerPx := layout.MmToPx(10, 300) // 118
	topY := margin + headerOffsetPx
	midY := topY + layout.MmToPx(40, 300)/2

	// Middle of the first span: solid finger.
	if !isBlack(img.At(margin+fingerPx/2, midY)) {
		t.Error("first span should be a filled finger")
	}
	// Middle of the second span: gap, background shows through.
	if !isWhite(img.At(margin+fingerPx+fingerPx/2, midY)) {
		t.Error("second span should be an empty gap")
	}
	// Third span solid again.
	if !isBlack(img.At(margin+2*fingerPx+fingerPx/2, midY)) {
		t.Error("third span should be a filled finger")
	}
}

func TestTemplateDovetailPattern(t *testing.T) {
	img, err := Template(dovetailRequest())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	margin := layout.MmToPx(5, 300)
	boardW := layout.MmToPx(100, 300)
	topY := margin + headerOffsetPx

	unit := float64(boardW) / 5.0 // 3 tails + 4 half-unit pins
	pin := unit / 2

	// Just below the top edge: inside the first pin is background,
	// inside the first tail is filled.
	y := topY + 4
	pinX := margin + int(pin/2)
	tailX := margin + int(pin+unit/2)
	if !isWhite(img.At(pinX, y)) {
		t.Error("pin region should be empty")
	}
	if !isBlack(img.At(tailX, y)) {
		t.Error("tail region should be filled")
	}

	// Dovetail canvas reserves the taller chrome band.
	boardH := layout.MmToPx(40, 300)
	wantH := boardH + 2*margin + dovetailChromePx
	if img.Bounds().Dy() != wantH {
		t.Errorf("image height %d, want %d", img.Bounds().Dy(), wantH)
	}
}

func TestTemplateBoardOutline(t *testing.T) {
	img, err := Template(boxRequest())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	margin := layout.MmToPx(5, 300)
	boardW := layout.MmToPx(100, 300)
	topY := margin + headerOffsetPx

	// Top edge of the outline is drawn.
	if !isBlack(img.At(margin+boardW/2, topY)) {
		t.Error("board outline top edge missing")
	}
}

func TestLoadFaces(t *testing.T) {
	faces, err := LoadFaces()
	if err != nil {
		t.Fatalf("embedded font should always parse: %v", err)
	}
	if faces.Title == nil || faces.Small == nil {
		t.Fatal("nil font faces")
	}
}

func TestLoadFacesReusesParsedFont(t *testing.T) {
	first, err := LoadFaces()
	if err != nil {
		t.Fatalf("load faces: %v", err)
	}
	second, err := LoadFaces()
	if err != nil {
		t.Fatalf("load faces: %v", err)
	}
	// Repeated calls must hand back the cached faces, not re-parse the
	// embedded font for every availability check and render.
	if first.Title != second.Title || first.Small != second.Small {
		t.Error("LoadFaces returned different face instances across calls")
	}
}
