// JointCut - Joint Template Generator
//
// A cross-platform desktop utility that computes box/finger and dovetail
// joint layouts from board dimensions and exports them as print-ready
// images, vector cut files and documents. Run without arguments for the
// GUI; pass flags for headless generation.
//
// Build:
//   go build -o jointcut ./cmd/jointcut
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o jointcut.exe ./cmd/jointcut
//   GOOS=darwin  GOARCH=amd64 go build -o jointcut-darwin ./cmd/jointcut
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/JointCut/internal/cli"
	"github.com/piwi3910/JointCut/internal/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		application := app.NewWithID("com.piwi3910.jointcut")
		window := application.NewWindow("JointCut - Joint Template Generator")

		appUI := ui.NewApp(window)
		window.SetContent(appUI.Build())
		window.Resize(fyne.NewSize(1000, 600))
		window.CenterOnScreen()
		window.ShowAndRun()
		return
	}

	if err := cli.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
