package render

import "github.com/google/uuid"

// surface is the part of a figure backend the shared panel and annotation
// types need for coordinate conversion.
type surface interface {
	SizeInches() (float64, float64)
	PixelDensity() float64
}

// figPanel is a panel placed on a backend figure as a figure-fraction
// rectangle with the origin at the bottom-left.
type figPanel struct {
	id    string
	label string
	owner surface

	x, y, w, h float64
}

func newFigPanel(owner surface, x, y, w, h float64, label string) *figPanel {
	return &figPanel{
		id:    uuid.New().String()[:8],
		label: label,
		owner: owner,
		x:     x,
		y:     y,
		w:     w,
		h:     h,
	}
}

func (p *figPanel) ID() string    { return p.id }
func (p *figPanel) Label() string { return p.label }

// TightBoundingBox converts the panel's fraction rectangle to device
// points. The backends draw exactly the panel frame, so the frame is the
// tight box.
func (p *figPanel) TightBoundingBox() (Rect, error) {
	wIn, hIn := p.owner.SizeInches()
	d := p.owner.PixelDensity()
	return Rect{
		X0: p.x * wIn * d,
		Y0: p.y * hIn * d,
		X1: (p.x + p.w) * wIn * d,
		Y1: (p.y + p.h) * hIn * d,
	}, nil
}

// annotation is a text annotation held by a backend figure. Positions are
// figure fractions, origin bottom-left.
type annotation struct {
	content string
	x, y    float64
	style   TextStyle
}

func (a *annotation) Content() string          { return a.content }
func (a *annotation) Tag() string              { return a.style.Tag }
func (a *annotation) SetContent(s string)      { a.content = s }
func (a *annotation) SetPosition(x, y float64) { a.x, a.y = x, y }
func (a *annotation) SetStyle(style TextStyle) { a.style = style }

// textSlice adapts a backend's annotation list to the Text interface.
func textSlice(anns []*annotation) []Text {
	out := make([]Text, len(anns))
	for i, a := range anns {
		out[i] = a
	}
	return out
}

// panelSlice adapts a backend's panel list to the Panel interface.
func panelSlice(panels []*figPanel) []Panel {
	out := make([]Panel, len(panels))
	for i, p := range panels {
		out[i] = p
	}
	return out
}

// fontAttrFloat reads a numeric attribute from an opaque font bag,
// widening YAML integers. Returns fallback when absent or non-numeric.
func fontAttrFloat(font map[string]any, key string, fallback float64) float64 {
	switch n := font[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return fallback
	}
}

// fontAttrString reads a string attribute from an opaque font bag.
func fontAttrString(font map[string]any, key string) string {
	s, _ := font[key].(string)
	return s
}
