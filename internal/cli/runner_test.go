package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/JointCut/internal/model"
)

func baseConfig() *RunnerConfig {
	return &RunnerConfig{
		Joint:           "box",
		BoardWidth:      100,
		BoardHeight:     40,
		DPI:             96,
		FingerWidth:     10,
		StartWithFinger: true,
		Tails:           3,
		Ratio:           "6",
		Formats:         "png,svg",
	}
}

func TestBuildRequestBox(t *testing.T) {
	req, err := BuildRequest(baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Joint != model.JointBox {
		t.Errorf("joint = %v", req.Joint)
	}
	if req.Box == nil || req.Box.FingerWidth != 10 {
		t.Errorf("box params = %+v", req.Box)
	}
}

func TestBuildRequestDovetail(t *testing.T) {
	cfg := baseConfig()
	cfg.Joint = "dovetail"
	cfg.Ratio = "1:6"

	req, err := BuildRequest(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Dovetail == nil || req.Dovetail.Ratio != 6 {
		t.Errorf("dovetail params = %+v", req.Dovetail)
	}
	if req.Dovetail.RatioRaw != "1:6" {
		t.Errorf("ratio raw = %q", req.Dovetail.RatioRaw)
	}
}

func TestBuildRequestRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"unknown joint", func(c *RunnerConfig) { c.Joint = "mortise" }},
		{"bad ratio", func(c *RunnerConfig) { c.Joint = "dovetail"; c.Ratio = "abc" }},
		{"zero ratio left", func(c *RunnerConfig) { c.Joint = "dovetail"; c.Ratio = "0:6" }},
		{"finger too wide", func(c *RunnerConfig) { c.FingerWidth = 200 }},
		{"zero width", func(c *RunnerConfig) { c.BoardWidth = 0 }},
		{"zero tails", func(c *RunnerConfig) { c.Joint = "dovetail"; c.Tails = 0 }},
	}
	for _, c := range cases {
		cfg := baseConfig()
		c.mutate(cfg)
		_, err := BuildRequest(cfg)
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: error %v is not a ValidationError", c.name, err)
		}
	}
}

func TestParseFormats(t *testing.T) {
	formats, err := ParseFormats("png, svg ,dxf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(formats) != 3 {
		t.Errorf("got %d formats", len(formats))
	}

	if _, err := ParseFormats("png,docx"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := ParseFormats(""); err == nil {
		t.Error("expected error for empty format list")
	}
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := baseConfig()
	cfg.Output = filepath.Join(dir, "template")
	cfg.Formats = "png,svg,xlsx,gcode"

	if err := Run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, name := range []string{"template.png", "template.svg", "template.xlsx", "template.gcode"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}
