package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/JointCut/internal/export"
	"github.com/piwi3910/JointCut/internal/layout"
	"github.com/piwi3910/JointCut/internal/model"
	"github.com/piwi3910/JointCut/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window fyne.Window

	jointType *widget.RadioGroup

	// Common fields
	boardWidth  *widget.Entry
	boardHeight *widget.Entry
	dpi         *widget.Entry

	// Box joint fields
	fingerWidth     *widget.Entry
	startWithFinger *widget.Check

	// Dovetail fields
	tails *widget.Entry
	ratio *widget.Entry

	// Output format checkboxes
	formatChecks map[export.Format]*widget.Check

	preview *widgets.TemplatePreview
}

func NewApp(window fyne.Window) *App {
	return &App{window: window}
}

// Build constructs the input form and preview pane.
func (a *App) Build() fyne.CanvasObject {
	a.boardWidth = newNumericEntry("100")
	a.boardHeight = newNumericEntry("40")
	a.dpi = newNumericEntry("300")
	a.fingerWidth = newNumericEntry("10")
	a.startWithFinger = widget.NewCheck("Start with finger (else gap)", nil)
	a.startWithFinger.SetChecked(true)
	a.tails = newNumericEntry("3")
	a.ratio = newNumericEntry("6")

	a.jointType = widget.NewRadioGroup([]string{"Box joint", "Dovetail"}, func(string) {
		a.updateFieldStates()
	})
	a.jointType.Horizontal = true
	a.jointType.SetSelected("Box joint")

	a.formatChecks = map[export.Format]*widget.Check{
		export.FormatPNG:   widget.NewCheck("PNG (printable)", nil),
		export.FormatSVG:   widget.NewCheck("SVG (LightBurn)", nil),
		export.FormatDXF:   widget.NewCheck("DXF (CAD/CAM)", nil),
		export.FormatPDF:   widget.NewCheck("PDF (print scale)", nil),
		export.FormatSheet: widget.NewCheck("Parameter sheet (PDF)", nil),
		export.FormatXLSX:  widget.NewCheck("Cut list (XLSX)", nil),
		export.FormatGCode: widget.NewCheck("GCode (CNC)", nil),
	}
	a.formatChecks[export.FormatPNG].SetChecked(true)
	a.formatChecks[export.FormatSVG].SetChecked(true)

	form := widget.NewForm(
		widget.NewFormItem("Joint type", a.jointType),
		widget.NewFormItem("Board width (mm)", a.boardWidth),
		widget.NewFormItem("Template height/depth (mm)", a.boardHeight),
		widget.NewFormItem("Output DPI", a.dpi),
		widget.NewFormItem("Finger width (mm)", a.fingerWidth),
		widget.NewFormItem("", a.startWithFinger),
		widget.NewFormItem("Number of tails", a.tails),
		widget.NewFormItem("Dovetail ratio (1:x)", a.ratio),
	)

	formatBox := container.NewGridWithColumns(2)
	for _, f := range export.Formats() {
		formatBox.Add(a.formatChecks[f])
	}

	a.preview = widgets.NewTemplatePreview()

	previewBtn := widget.NewButton("Preview", func() { a.refreshPreview() })
	generateBtn := widget.NewButton("Generate", func() { a.generate() })
	generateBtn.Importance = widget.HighImportance
	closeBtn := widget.NewButton("Close", func() { a.window.Close() })

	controls := container.NewVBox(
		form,
		widget.NewSeparator(),
		widget.NewLabel("Output formats:"),
		formatBox,
		widget.NewSeparator(),
		container.NewHBox(previewBtn, generateBtn, closeBtn),
	)

	return container.NewBorder(nil, nil, controls, nil, a.preview)
}

// updateFieldStates enables the fields of the selected joint type and
// disables the rest, mirroring the selected radio option.
func (a *App) updateFieldStates() {
	if a.fingerWidth == nil {
		return // called during initial radio selection before Build finishes
	}
	if a.jointType.Selected == "Dovetail" {
		a.fingerWidth.Disable()
		a.startWithFinger.Disable()
		a.tails.Enable()
		a.ratio.Enable()
	} else {
		a.fingerWidth.Enable()
		a.startWithFinger.Enable()
		a.tails.Disable()
		a.ratio.Disable()
	}
}

// buildRequest collects and validates the form into an immutable request.
func (a *App) buildRequest() (model.Request, error) {
	width, err := parseFloatField(a.boardWidth.Text, "Board width")
	if err != nil {
		return model.Request{}, err
	}
	height, err := parseFloatField(a.boardHeight.Text, "Template height/depth")
	if err != nil {
		return model.Request{}, err
	}
	dpi, err := parseIntField(a.dpi.Text, "Output DPI")
	if err != nil {
		return model.Request{}, err
	}
	board := model.BoardSpec{Width: width, Height: height, DPI: dpi}

	var req model.Request
	if a.jointType.Selected == "Dovetail" {
		tails, err := parseIntField(a.tails.Text, "Number of tails")
		if err != nil {
			return model.Request{}, err
		}
		ratio, err := layout.ParseRatio(a.ratio.Text)
		if err != nil {
			return model.Request{}, err
		}
		req = model.NewRequest(model.JointDovetail, board)
		req.Dovetail = &model.DovetailParams{Tails: tails, RatioRaw: a.ratio.Text, Ratio: ratio}
	} else {
		finger, err := parseFloatField(a.fingerWidth.Text, "Finger width")
		if err != nil {
			return model.Request{}, err
		}
		req = model.NewRequest(model.JointBox, board)
		req.Box = &model.BoxParams{
			FingerWidth:     finger,
			StartWithFinger: a.startWithFinger.Checked,
		}
	}

	if err := req.Validate(); err != nil {
		return model.Request{}, err
	}
	return req, nil
}

func (a *App) selectedFormats() []export.Format {
	var formats []export.Format
	for _, f := range export.Formats() {
		if a.formatChecks[f].Checked {
			formats = append(formats, f)
		}
	}
	return formats
}

func (a *App) refreshPreview() {
	req, err := a.buildRequest()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if err := a.preview.ShowRequest(req); err != nil {
		dialog.ShowError(err, a.window)
	}
}

// generate validates the form, asks for a base file name and writes every
// selected format.
func (a *App) generate() {
	req, err := a.buildRequest()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	formats := a.selectedFormats()
	if len(formats) == 0 {
		dialog.ShowError(fmt.Errorf("select at least one output format"), a.window)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		base := writer.URI().Path()
		writer.Close()

		written, errs := export.WriteAll(base, req, formats)

		var lines []string
		for _, w := range written {
			lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(string(w.Format)), w.Path))
		}
		for _, e := range errs {
			lines = append(lines, fmt.Sprintf("FAILED: %v", e))
		}
		dialog.ShowInformation("Templates generated", strings.Join(lines, "\n"), a.window)
	}, a.window)
	saveDialog.SetFileName("template.png")
	saveDialog.Show()
}

func newNumericEntry(initial string) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(initial)
	return e
}
