package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/JointCut/internal/model"
)

// A4 portrait layout in mm.
const (
	pdfPageWidth  = 210.0
	pdfPageHeight = 297.0
	pdfMargin     = 10.0
	embedPadMm    = 10.0 // document embed width = board width + 10mm
	qrSizeMm      = 22.0
)

// mmPerInch mirrors the layout package constant; the PDF exporters convert
// raster pixels back to physical millimeters at the request DPI.
const mmPerInch = 25.4

// registerRaster encodes the master raster once and registers it with the
// document under name.
func registerRaster(pdf *fpdf.Fpdf, name string, img *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode raster: %w", err)
	}
	pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
	return nil
}

// WriteSheetPDF writes the parameter sheet: a heading, the request
// parameters, a QR code carrying the request as JSON, and the template
// raster embedded at a physical width of board width + 10mm.
func WriteSheetPDF(path string, req model.Request, img *image.RGBA) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(pdfMargin, pdfMargin)
	pdf.CellFormat(pdfPageWidth-2*pdfMargin, 10, "Joint Template", "", 1, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(pdfMargin, pdfMargin+12, pdfPageWidth-pdfMargin, pdfMargin+12)

	params := []struct {
		label string
		value string
	}{
		{"Type", req.Joint.String()},
		{"Board width", fmt.Sprintf("%g mm", req.Board.Width)},
		{"Template height/depth", fmt.Sprintf("%g mm", req.Board.Height)},
		{"Output DPI", fmt.Sprintf("%d", req.Board.DPI)},
	}
	switch req.Joint {
	case model.JointDovetail:
		params = append(params,
			struct{ label, value string }{"Tails", fmt.Sprintf("%d", req.Dovetail.Tails)},
			struct{ label, value string }{"Dovetail ratio", fmt.Sprintf("1:%g", req.Dovetail.Ratio)},
		)
	default:
		params = append(params,
			struct{ label, value string }{"Finger width", fmt.Sprintf("%g mm", req.Box.FingerWidth)},
			struct{ label, value string }{"Start with finger", fmt.Sprintf("%t", req.Box.StartWithFinger)},
		)
	}

	y := pdfMargin + 18.0
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range params {
		pdf.SetXY(pdfMargin+5, y)
		pdf.CellFormat(55, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	// QR code on the right, encoding the full request for traceability.
	qrData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}
	qrName := "qr_" + req.ID
	pdf.RegisterImageOptionsReader(qrName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(qrName, pdfPageWidth-pdfMargin-qrSizeMm, pdfMargin+16,
		qrSizeMm, qrSizeMm, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Template image at physical scale: board width plus the raster's own
	// 5mm margins on each side.
	if err := registerRaster(pdf, "template_"+req.ID, img); err != nil {
		return err
	}
	pdf.ImageOptions("template_"+req.ID, pdfMargin, y+8,
		req.Board.Width+embedPadMm, 0, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(pdfMargin, pdfPageHeight-pdfMargin)
	footer := fmt.Sprintf("Generated by JointCut - Joint Template Generator (request %s)", req.ID)
	pdf.CellFormat(pdfPageWidth-2*pdfMargin, 4, footer, "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// WritePrintPDF writes the raster at its exact physical size for the
// request DPI. Templates larger than the printable A4 area are tiled across
// pages left-to-right, top-to-bottom; printed at 100% the tiles join at
// true scale.
func WritePrintPDF(path string, req model.Request, img *image.RGBA) error {
	bounds := img.Bounds()
	widthMm := float64(bounds.Dx()) / float64(req.Board.DPI) * mmPerInch
	heightMm := float64(bounds.Dy()) / float64(req.Board.DPI) * mmPerInch

	tileW := pdfPageWidth - 2*pdfMargin
	tileH := pdfPageHeight - 2*pdfMargin
	cols := int(math.Ceil(widthMm / tileW))
	rows := int(math.Ceil(heightMm / tileH))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pdfMargin)

	if err := registerRaster(pdf, "print_"+req.ID, img); err != nil {
		return err
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pdf.AddPage()
			pdf.ClipRect(pdfMargin, pdfMargin, tileW, tileH, false)
			pdf.ImageOptions("print_"+req.ID,
				pdfMargin-float64(col)*tileW, pdfMargin-float64(row)*tileH,
				widthMm, heightMm, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
			pdf.ClipEnd()

			if rows*cols > 1 {
				pdf.SetFont("Helvetica", "", 7)
				pdf.SetTextColor(120, 120, 120)
				pdf.SetXY(pdfMargin, pdfPageHeight-pdfMargin+2)
				tile := fmt.Sprintf("Tile %d/%d - print at 100%%, join without overlap",
					row*cols+col+1, rows*cols)
				pdf.CellFormat(tileW, 4, tile, "", 0, "L", false, 0, "")
			}
		}
	}

	return pdf.OutputFileAndClose(path)
}
