package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// RasterFigure is a Figure backend that renders panel frames and text
// annotations onto a pixel canvas, for PNG output or on-screen preview.
type RasterFigure struct {
	widthIn, heightIn float64
	dpi               float64
	panels            []*figPanel
	texts             []*annotation
	autoLayout        bool
	pads              map[string]any
}

// NewRasterFigure creates a raster figure of the given physical size in
// inches at the given pixel density. A non-positive dpi falls back to 100.
func NewRasterFigure(widthIn, heightIn, dpi float64) *RasterFigure {
	if dpi <= 0 {
		dpi = 100
	}
	return &RasterFigure{
		widthIn:    widthIn,
		heightIn:   heightIn,
		dpi:        dpi,
		autoLayout: true,
	}
}

// AddPanel places a panel as a figure-fraction rectangle (origin at the
// bottom-left) with an optional label identifier.
func (f *RasterFigure) AddPanel(x, y, w, h float64, label string) {
	f.panels = append(f.panels, newFigPanel(f, x, y, w, h, label))
}

// PixelSize returns the rendered canvas dimensions in pixels.
func (f *RasterFigure) PixelSize() (int, int) {
	return int(math.Round(f.widthIn * f.dpi)), int(math.Round(f.heightIn * f.dpi))
}

func (f *RasterFigure) Panels() []Panel                    { return panelSlice(f.panels) }
func (f *RasterFigure) SizeInches() (float64, float64)     { return f.widthIn, f.heightIn }
func (f *RasterFigure) PixelDensity() float64              { return f.dpi }
func (f *RasterFigure) TeXText() bool                      { return false }
func (f *RasterFigure) Texts() []Text                      { return textSlice(f.texts) }
func (f *RasterFigure) AutoLayout() bool                   { return f.autoLayout }
func (f *RasterFigure) SetAutoLayout(on bool)              { f.autoLayout = on }
func (f *RasterFigure) DefaultFigsize() (float64, float64) { return 6.4, 4.8 }

// ApplyLayoutPadding records the padding parameters; the raster backend
// performs no automatic layout of its own.
func (f *RasterFigure) ApplyLayoutPadding(pads map[string]any) error {
	f.pads = pads
	return nil
}

func (f *RasterFigure) AddText(x, y float64, content string, style TextStyle) Text {
	a := &annotation{content: content, x: x, y: y, style: style}
	f.texts = append(f.texts, a)
	return a
}

// Image renders the figure and returns the pixel canvas.
func (f *RasterFigure) Image() image.Image {
	return f.draw().Image()
}

// SavePNG renders the figure to a PNG file at the given path.
func (f *RasterFigure) SavePNG(path string) error {
	return f.draw().SavePNG(path)
}

func (f *RasterFigure) draw() *gg.Context {
	pw, ph := f.PixelSize()
	dc := gg.NewContext(pw, ph)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.25, 0.25, 0.25)
	dc.SetLineWidth(1)
	for _, p := range f.panels {
		x := p.x * float64(pw)
		yTop := (1 - p.y - p.h) * float64(ph)
		dc.DrawRectangle(x, yTop, p.w*float64(pw), p.h*float64(ph))
		dc.Stroke()
	}

	dc.SetRGB(0, 0, 0)
	for _, t := range f.texts {
		x := t.x * float64(pw)
		yTop := (1 - t.y) * float64(ph)
		dc.DrawStringAnchored(t.content, x, yTop, anchorX(t.style.HAlign), anchorY(t.style.VAlign))
	}
	return dc
}

// anchorX maps a horizontal alignment to a gg anchor fraction.
func anchorX(hAlign string) float64 {
	switch hAlign {
	case "center":
		return 0.5
	case "right":
		return 1
	default:
		return 0
	}
}

// anchorY maps a vertical alignment to a gg anchor fraction; 1 anchors
// the top of the text at the given y.
func anchorY(vAlign string) float64 {
	switch vAlign {
	case "center":
		return 0.5
	case "bottom":
		return 0
	default:
		return 1
	}
}
