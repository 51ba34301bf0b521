package cli

import (
	"fmt"
	"strings"

	"github.com/piwi3910/JointCut/internal/export"
	"github.com/piwi3910/JointCut/internal/layout"
	"github.com/piwi3910/JointCut/internal/model"
)

// BuildRequest turns CLI options into a validated generation request.
func BuildRequest(cfg *RunnerConfig) (model.Request, error) {
	board := model.BoardSpec{
		Width:  cfg.BoardWidth,
		Height: cfg.BoardHeight,
		DPI:    cfg.DPI,
	}

	var req model.Request
	switch cfg.Joint {
	case "dovetail":
		ratio, err := layout.ParseRatio(cfg.Ratio)
		if err != nil {
			return model.Request{}, err
		}
		req = model.NewRequest(model.JointDovetail, board)
		req.Dovetail = &model.DovetailParams{
			Tails:    cfg.Tails,
			RatioRaw: cfg.Ratio,
			Ratio:    ratio,
		}
	case "box":
		req = model.NewRequest(model.JointBox, board)
		req.Box = &model.BoxParams{
			FingerWidth:     cfg.FingerWidth,
			StartWithFinger: cfg.StartWithFinger,
		}
	default:
		return model.Request{}, &model.ValidationError{
			Field: "joint", Reason: fmt.Sprintf("unknown joint type %q", cfg.Joint),
		}
	}

	if err := req.Validate(); err != nil {
		return model.Request{}, err
	}
	return req, nil
}

// ParseFormats splits and checks the -formats flag value.
func ParseFormats(s string) ([]export.Format, error) {
	var formats []export.Format
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f := export.Format(part)
		if !export.Known(f) {
			return nil, fmt.Errorf("unknown output format %q (supported: %v)", part, export.Formats())
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("no output formats selected")
	}
	return formats, nil
}

// Run executes one generation request from the command line.
func Run(cfg *RunnerConfig) error {
	req, err := BuildRequest(cfg)
	if err != nil {
		return err
	}

	formats, err := ParseFormats(cfg.Formats)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Printf("Generating %s (request %s)\n", req.Joint, req.ID)
	}

	written, errs := export.WriteAll(cfg.Output, req, formats)
	for _, w := range written {
		fmt.Printf("%-6s %s\n", strings.ToUpper(string(w.Format))+":", w.Path)
	}
	for _, e := range errs {
		fmt.Printf("ERROR: %v\n", e)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d formats failed", len(errs), len(formats))
	}
	return nil
}
