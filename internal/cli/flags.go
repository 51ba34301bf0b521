// Package cli provides the headless command-line front-end: the same
// request pipeline as the GUI, driven by flags.
package cli

import (
	"flag"
	"fmt"
	"os"
)

// RunnerConfig holds all CLI options for one generation run.
type RunnerConfig struct {
	Joint           string
	BoardWidth      float64
	BoardHeight     float64
	DPI             int
	FingerWidth     float64
	StartWithFinger bool
	Tails           int
	Ratio           string
	Formats         string
	Output          string
	Verbose         bool
}

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config if no arguments or --help is provided (GUI mode).
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // no args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{
		Joint:           "box",
		BoardWidth:      100,
		BoardHeight:     40,
		DPI:             300,
		FingerWidth:     10,
		StartWithFinger: true,
		Tails:           3,
		Ratio:           "6",
		Formats:         "png,svg",
	}

	fs := flag.NewFlagSet("jointcut", flag.ContinueOnError)

	fs.StringVar(&cfg.Joint, "joint", cfg.Joint, "Joint type: box or dovetail")
	fs.Float64Var(&cfg.BoardWidth, "width", cfg.BoardWidth, "Board width in mm")
	fs.Float64Var(&cfg.BoardHeight, "height", cfg.BoardHeight, "Template height/depth in mm")
	fs.IntVar(&cfg.DPI, "dpi", cfg.DPI, "Raster output resolution")

	// Box joint flags
	fs.Float64Var(&cfg.FingerWidth, "finger", cfg.FingerWidth, "Finger width in mm (box joint)")
	fs.BoolVar(&cfg.StartWithFinger, "start-with-finger", cfg.StartWithFinger, "First span is a finger, not a gap (box joint)")

	// Dovetail flags
	fs.IntVar(&cfg.Tails, "tails", cfg.Tails, "Number of tails (dovetail)")
	fs.StringVar(&cfg.Ratio, "ratio", cfg.Ratio, "Dovetail slope ratio, e.g. 6 or 1:6")

	// Output flags
	fs.StringVar(&cfg.Formats, "formats", cfg.Formats, "Comma-separated output formats (png,svg,dxf,pdf,sheet,xlsx,gcode)")
	fs.StringVar(&cfg.Output, "o", "", "Output base path (required)")
	fs.StringVar(&cfg.Output, "output", "", "Output base path (required)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if cfg.Output == "" {
		PrintUsage()
		return nil, fmt.Errorf("missing required -o output base path")
	}

	return cfg, nil
}

// PrintUsage prints CLI help text.
func PrintUsage() {
	fmt.Println(`JointCut - Joint Template Generator

Usage:
  jointcut                      Launch the GUI
  jointcut [flags] -o <base>    Generate templates from the command line

Examples:
  jointcut -joint box -width 100 -height 40 -finger 10 -o template
  jointcut -joint dovetail -width 100 -height 40 -tails 3 -ratio 1:6 \
      -formats png,svg,dxf,sheet -o dovetail

Flags:
  -joint string         Joint type: box or dovetail (default "box")
  -width float          Board width in mm (default 100)
  -height float         Template height/depth in mm (default 40)
  -dpi int              Raster resolution (default 300)
  -finger float         Finger width in mm, box joint (default 10)
  -start-with-finger    First span is a finger (default true)
  -tails int            Number of tails, dovetail (default 3)
  -ratio string         Dovetail slope ratio, "6" or "1:6" (default "6")
  -formats string       Output formats (default "png,svg")
  -o, -output string    Output base path, extensions are added per format
  -v                    Verbose output`)
}
