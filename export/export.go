// Package export writes ink drawings to files.
//
// PDF output keeps strokes as vector cubic Béziers, so the curves stay
// smooth at any zoom. PNG output stores a raster snapshot.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/ink"
)

// PDFOptions controls PDF output.
type PDFOptions struct {
	// Width and Height give the page size in points. They normally match
	// the surface size so one surface pixel maps to one point.
	Width, Height float64

	// LineWidth is the stroke width in points. Zero selects
	// ink.DefaultLineWidth.
	LineWidth float64

	// Title is stored in the document metadata.
	Title string
}

// PDF writes strokes as a single-page vector PDF.
func PDF(w io.Writer, strokes []ink.Stroke, opts PDFOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("export: invalid page size %gx%g", opts.Width, opts.Height)
	}
	lw := opts.LineWidth
	if lw <= 0 {
		lw = ink.DefaultLineWidth
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: opts.Width, Ht: opts.Height},
	})
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	pdf.SetCreator("ink "+ink.Version, true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetLineWidth(lw)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	for _, s := range strokes {
		drawPath(pdf, s.Path, lw)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	ink.Logger().Debug("export: pdf written", "strokes", len(strokes))
	return nil
}

// pathDrawer is the subset of *gofpdf.Fpdf used to draw one stroke.
type pathDrawer interface {
	Circle(x, y, r float64, styleStr string)
	MoveTo(x, y float64)
	CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y float64)
	DrawPath(styleStr string)
}

func drawPath(pdf pathDrawer, p ink.Path, lw float64) {
	if p.IsEmpty() {
		return
	}
	if p.IsCollapsed() {
		c := p.Segments[0].Start
		pdf.Circle(c.X, c.Y, lw/2, "F")
		return
	}
	first := p.Segments[0].Start
	pdf.MoveTo(first.X, first.Y)
	for _, s := range p.Segments {
		pdf.CurveBezierCubicTo(s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.End.X, s.End.Y)
	}
	pdf.DrawPath("D")
}

// PNG encodes img as PNG.
func PNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: write png: %w", err)
	}
	return nil
}
