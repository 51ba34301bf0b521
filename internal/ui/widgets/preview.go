package widgets

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/JointCut/internal/model"
	"github.com/piwi3910/JointCut/internal/render"
)

// previewDPI keeps the preview raster small; the exported files use the
// request's own DPI.
const previewDPI = 96

// TemplatePreview renders a live preview of the current request inside the
// form, so the layout can be checked before any file is written.
type TemplatePreview struct {
	widget.BaseWidget
	img *canvas.Image
}

func NewTemplatePreview() *TemplatePreview {
	p := &TemplatePreview{
		img: canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
	}
	p.img.FillMode = canvas.ImageFillContain
	p.img.SetMinSize(fyne.NewSize(480, 240))
	p.ExtendBaseWidget(p)
	return p
}

// ShowRequest re-renders the preview for a validated request. The request
// DPI is ignored; previews always render at a fixed screen resolution.
func (p *TemplatePreview) ShowRequest(req model.Request) error {
	req.Board.DPI = previewDPI
	img, err := render.Template(req)
	if err != nil {
		return err
	}
	p.img.Image = img
	p.img.Refresh()
	return nil
}

func (p *TemplatePreview) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.img)
}
