package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// PDF device resolution: one PDF point is 1/72 inch.
const pdfPointsPerInch = 72.0

// Provenance stamp geometry, in inches from the bottom-right corner.
const (
	qrStampSize   = 0.35
	qrStampMargin = 0.1
)

// PDFFigure is a Figure backend that renders panel frames and text
// annotations into a single-page PDF sized exactly to the figure.
type PDFFigure struct {
	widthIn, heightIn float64
	panels            []*figPanel
	texts             []*annotation
	autoLayout        bool
	pads              map[string]any
	provenance        string
}

// NewPDFFigure creates a PDF figure of the given physical size in inches.
func NewPDFFigure(widthIn, heightIn float64) *PDFFigure {
	return &PDFFigure{
		widthIn:    widthIn,
		heightIn:   heightIn,
		autoLayout: true,
	}
}

// AddPanel places a panel as a figure-fraction rectangle (origin at the
// bottom-left) with an optional label identifier.
func (f *PDFFigure) AddPanel(x, y, w, h float64, label string) {
	f.panels = append(f.panels, newFigPanel(f, x, y, w, h, label))
}

// SetProvenance enables the provenance stamp: a small QR code in the
// bottom-right corner encoding the style name and figure dimensions, so a
// proof can be traced back to the rules that produced it.
func (f *PDFFigure) SetProvenance(styleName string) {
	f.provenance = styleName
}

func (f *PDFFigure) Panels() []Panel                    { return panelSlice(f.panels) }
func (f *PDFFigure) SizeInches() (float64, float64)     { return f.widthIn, f.heightIn }
func (f *PDFFigure) PixelDensity() float64              { return pdfPointsPerInch }
func (f *PDFFigure) TeXText() bool                      { return false }
func (f *PDFFigure) Texts() []Text                      { return textSlice(f.texts) }
func (f *PDFFigure) AutoLayout() bool                   { return f.autoLayout }
func (f *PDFFigure) SetAutoLayout(on bool)              { f.autoLayout = on }
func (f *PDFFigure) DefaultFigsize() (float64, float64) { return 6.4, 4.8 }

// ApplyLayoutPadding records the padding parameters. The PDF backend does
// no automatic layout, so the values only become part of the document
// metadata trail.
func (f *PDFFigure) ApplyLayoutPadding(pads map[string]any) error {
	f.pads = pads
	return nil
}

func (f *PDFFigure) AddText(x, y float64, content string, style TextStyle) Text {
	a := &annotation{content: content, x: x, y: y, style: style}
	f.texts = append(f.texts, a)
	return a
}

// Save renders the figure to a PDF file at the given path.
func (f *PDFFigure) Save(path string) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: f.widthIn, Ht: f.heightIn},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Panel frames
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.01)
	for _, p := range f.panels {
		x := p.x * f.widthIn
		yTop := (1 - p.y - p.h) * f.heightIn
		pdf.Rect(x, yTop, p.w*f.widthIn, p.h*f.heightIn, "D")
	}

	for _, t := range f.texts {
		f.drawText(pdf, t)
	}

	if f.provenance != "" {
		if err := f.stampProvenance(pdf); err != nil {
			return err
		}
	}
	return pdf.OutputFileAndClose(path)
}

// drawText draws one annotation, honoring the opaque font attributes the
// style passed through (fontsize, fontweight, fontstyle).
func (f *PDFFigure) drawText(pdf *fpdf.Fpdf, t *annotation) {
	size := fontAttrFloat(t.style.Font, "fontsize", 10)
	var styleStr string
	if fontAttrString(t.style.Font, "fontweight") == "bold" {
		styleStr += "B"
	}
	switch fontAttrString(t.style.Font, "fontstyle") {
	case "italic", "oblique":
		styleStr += "I"
	}
	pdf.SetFont("Helvetica", styleStr, size)
	pdf.SetTextColor(0, 0, 0)

	lineH := size / pdfPointsPerInch
	sw := pdf.GetStringWidth(t.content)

	x := t.x * f.widthIn
	switch t.style.HAlign {
	case "center":
		x -= sw / 2
	case "right":
		x -= sw
	}
	yTop := (1 - t.y) * f.heightIn
	switch t.style.VAlign {
	case "center":
		yTop -= lineH / 2
	case "bottom":
		yTop -= lineH
	}

	pdf.SetXY(x, yTop)
	pdf.CellFormat(sw, lineH, t.content, "", 0, "L", false, 0, "")
}

// stampProvenance draws the QR metadata stamp in the bottom-right corner.
func (f *PDFFigure) stampProvenance(pdf *fpdf.Fpdf) error {
	meta := struct {
		Style    string  `json:"style"`
		WidthIn  float64 `json:"width_in"`
		HeightIn float64 `json:"height_in"`
		Panels   int     `json:"panels"`
	}{f.provenance, f.widthIn, f.heightIn, len(f.panels)}

	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal provenance: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate provenance QR code: %w", err)
	}

	pdf.RegisterImageOptionsReader("provenance", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	x := f.widthIn - qrStampSize - qrStampMargin
	y := f.heightIn - qrStampSize - qrStampMargin
	pdf.ImageOptions("provenance", x, y, qrStampSize, qrStampSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}
