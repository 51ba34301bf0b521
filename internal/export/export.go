// Package export writes joint templates to the supported output formats.
// All formats derive from one in-memory layout per request; each format is
// written independently, so a failure in one does not abort the others.
package export

import (
	"fmt"
	"image"
	"sort"

	"github.com/piwi3910/JointCut/internal/layout"
	"github.com/piwi3910/JointCut/internal/model"
	"github.com/piwi3910/JointCut/internal/render"
)

// Format identifies one output file format.
type Format string

const (
	FormatPNG   Format = "png"   // printable raster with title, info and ruler
	FormatSVG   Format = "svg"   // mm-unit vector shapes (LightBurn import)
	FormatDXF   Format = "dxf"   // mm-unit DXF polylines (CAD/CAM import)
	FormatPDF   Format = "pdf"   // raster at physical print scale, paginated
	FormatSheet Format = "sheet" // parameter sheet PDF with embedded template
	FormatXLSX  Format = "xlsx"  // cut list spreadsheet
	FormatGCode Format = "gcode" // CNC profile cuts
)

// DependencyMissingError reports a requested format whose backing
// capability is unavailable. Other requested formats still complete.
type DependencyMissingError struct {
	Format Format
	Cause  error
}

func (e *DependencyMissingError) Error() string {
	return fmt.Sprintf("format %s unavailable: %v", e.Format, e.Cause)
}

func (e *DependencyMissingError) Unwrap() error { return e.Cause }

// formatSpec describes how one format derives its file name and whether it
// consumes the master raster.
type formatSpec struct {
	suffix      string
	ext         string
	needsRaster bool
}

var formatSpecs = map[Format]formatSpec{
	FormatPNG:   {ext: ".png", needsRaster: true},
	FormatSVG:   {ext: ".svg"},
	FormatDXF:   {ext: ".dxf"},
	FormatPDF:   {ext: ".pdf", needsRaster: true},
	FormatSheet: {suffix: "_sheet", ext: ".pdf", needsRaster: true},
	FormatXLSX:  {ext: ".xlsx"},
	FormatGCode: {ext: ".gcode"},
}

// Known reports whether f is a supported format.
func Known(f Format) bool {
	_, ok := formatSpecs[f]
	return ok
}

// Formats returns all supported format names, sorted.
func Formats() []Format {
	var all []Format
	for f := range formatSpecs {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// Path returns the output path for a format derived from a base path: the
// base with any extension stripped, plus the format's suffix and extension.
func (f Format) Path(base string) string {
	spec := formatSpecs[f]
	return BuildPath(BaseName(base), spec.suffix, spec.ext)
}

// Available checks the format's backing capability at request time. Raster
// and document formats need a usable typeface.
func (f Format) Available() error {
	spec, ok := formatSpecs[f]
	if !ok {
		return &DependencyMissingError{Format: f, Cause: fmt.Errorf("unknown format")}
	}
	if spec.needsRaster {
		if _, err := render.LoadFaces(); err != nil {
			return &DependencyMissingError{Format: f, Cause: err}
		}
	}
	return nil
}

// WrittenFile records one successfully written output.
type WrittenFile struct {
	Format Format
	Path   string
}

// WriteAll writes every requested format for a validated request. File
// names derive from base (any extension is replaced). It returns the files
// written and the per-format errors; already-written files remain written
// when a later format fails.
func WriteAll(base string, req model.Request, formats []Format) ([]WrittenFile, []error) {
	var written []WrittenFile
	var errs []error

	plan := layout.PlanFor(req)

	// The master raster is rendered at most once, on first use.
	var master *image.RGBA

	for _, f := range formats {
		if err := f.Available(); err != nil {
			errs = append(errs, err)
			continue
		}

		if formatSpecs[f].needsRaster && master == nil {
			img, err := render.Template(req)
			if err != nil {
				errs = append(errs, fmt.Errorf("render template: %w", err))
				continue
			}
			master = img
		}

		path := f.Path(base)
		var err error
		switch f {
		case FormatPNG:
			err = WritePNG(path, master)
		case FormatSVG:
			err = WriteSVG(path, plan)
		case FormatDXF:
			err = WriteDXF(path, plan)
		case FormatPDF:
			err = WritePrintPDF(path, req, master)
		case FormatSheet:
			err = WriteSheetPDF(path, req, master)
		case FormatXLSX:
			err = WriteCutList(path, req, plan)
		case FormatGCode:
			err = WriteGCode(path, req, plan)
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f, err))
			continue
		}
		written = append(written, WrittenFile{Format: f, Path: path})
	}

	return written, errs
}
