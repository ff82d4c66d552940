package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/figlayout/internal/render"
	"github.com/piwi3910/figlayout/internal/style"
)

type stubPanel struct {
	id    string
	label string
	bbox  render.Rect
	err   error
}

func (p *stubPanel) ID() string    { return p.id }
func (p *stubPanel) Label() string { return p.label }
func (p *stubPanel) TightBoundingBox() (render.Rect, error) {
	if p.err != nil {
		return render.Rect{}, p.err
	}
	return p.bbox, nil
}

type stubText struct {
	content string
	x, y    float64
	style   render.TextStyle
}

func (t *stubText) Content() string             { return t.content }
func (t *stubText) Tag() string                 { return t.style.Tag }
func (t *stubText) SetContent(s string)         { t.content = s }
func (t *stubText) SetPosition(x, y float64)    { t.x, t.y = x, y }
func (t *stubText) SetStyle(s render.TextStyle) { t.style = s }

type stubFigure struct {
	panels  []render.Panel
	texts   []*stubText
	w, h    float64
	density float64
	tex     bool

	autoLayout    bool
	layoutToggles []bool
	pads          map[string]any
}

func newStubFigure(panels ...*stubPanel) *stubFigure {
	f := &stubFigure{w: 4, h: 2, density: 100, autoLayout: true}
	for _, p := range panels {
		f.panels = append(f.panels, p)
	}
	return f
}

func (f *stubFigure) Panels() []render.Panel         { return f.panels }
func (f *stubFigure) SizeInches() (float64, float64) { return f.w, f.h }
func (f *stubFigure) PixelDensity() float64          { return f.density }
func (f *stubFigure) TeXText() bool                  { return f.tex }

func (f *stubFigure) Texts() []render.Text {
	out := make([]render.Text, len(f.texts))
	for i, t := range f.texts {
		out[i] = t
	}
	return out
}

func (f *stubFigure) AddText(x, y float64, content string, style render.TextStyle) render.Text {
	t := &stubText{content: content, x: x, y: y, style: style}
	f.texts = append(f.texts, t)
	return t
}

func (f *stubFigure) AutoLayout() bool { return f.autoLayout }

func (f *stubFigure) SetAutoLayout(on bool) {
	f.autoLayout = on
	f.layoutToggles = append(f.layoutToggles, on)
}

func (f *stubFigure) ApplyLayoutPadding(pads map[string]any) error {
	f.pads = pads
	return nil
}

func TestPlaceLabelsInserts(t *testing.T) {
	eng := New(natureConfig(), nil)
	// 4x2 in at 100 dpi, so 400x200 device points.
	fig := newStubFigure(
		&stubPanel{id: "p1", label: "a", bbox: render.Rect{X0: 40, Y0: 110, X1: 190, Y1: 190}},
		&stubPanel{id: "p2", label: "b", bbox: render.Rect{X0: 210, Y0: 110, X1: 360, Y1: 190}},
	)

	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{}))
	require.Len(t, fig.texts, 2)

	assert.Equal(t, "(A)", fig.texts[0].content)
	assert.InDelta(t, 0.10, fig.texts[0].x, 1e-9)
	assert.InDelta(t, 0.95, fig.texts[0].y, 1e-9)
	assert.Equal(t, "left", fig.texts[0].style.HAlign)
	assert.Equal(t, "top", fig.texts[0].style.VAlign)
	assert.Equal(t, "bold", fig.texts[0].style.Font["fontweight"])

	assert.Equal(t, "(B)", fig.texts[1].content)
	assert.InDelta(t, 0.525, fig.texts[1].x, 1e-9)
}

func TestPlaceLabelsShift(t *testing.T) {
	eng := New(natureConfig(), nil)
	fig := newStubFigure(
		&stubPanel{id: "p1", label: "a", bbox: render.Rect{X0: 40, Y0: 110, X1: 190, Y1: 190}},
	)

	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{Shift: [2]float64{-20, 6}}))
	require.Len(t, fig.texts, 1)
	assert.InDelta(t, 0.05, fig.texts[0].x, 1e-9)
	assert.InDelta(t, 0.98, fig.texts[0].y, 1e-9)
}

func TestPlaceLabelsUpdatesInPlace(t *testing.T) {
	eng := New(natureConfig(), nil)
	panel := &stubPanel{id: "p1", label: "a", bbox: render.Rect{X0: 40, Y0: 110, X1: 190, Y1: 190}}
	fig := newStubFigure(panel)

	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{}))
	require.Len(t, fig.texts, 1)
	first := fig.texts[0]

	// The panel moved; placing again must move the same annotation, not
	// add another.
	panel.bbox = render.Rect{X0: 80, Y0: 110, X1: 190, Y1: 180}
	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{}))
	require.Len(t, fig.texts, 1)
	assert.Same(t, first, fig.texts[0])
	assert.InDelta(t, 0.20, first.x, 1e-9)
	assert.InDelta(t, 0.90, first.y, 1e-9)
}

func TestPlaceLabelsContentCollision(t *testing.T) {
	eng := New(natureConfig(), nil)
	fig := newStubFigure(
		&stubPanel{id: "p1", label: "a", bbox: render.Rect{X0: 40, Y0: 110, X1: 190, Y1: 190}},
		&stubPanel{id: "p2", label: "a", bbox: render.Rect{X0: 210, Y0: 110, X1: 360, Y1: 190}},
	)

	// Two panels formatting to the same text fight over one annotation
	// under content matching.
	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{Match: MatchContent}))
	require.Len(t, fig.texts, 1)
	assert.InDelta(t, 0.525, fig.texts[0].x, 1e-9)
}

func TestPlaceLabelsPanelMatchKeepsDuplicatesApart(t *testing.T) {
	eng := New(natureConfig(), nil)
	fig := newStubFigure(
		&stubPanel{id: "p1", label: "a", bbox: render.Rect{X0: 40, Y0: 110, X1: 190, Y1: 190}},
		&stubPanel{id: "p2", label: "a", bbox: render.Rect{X0: 210, Y0: 110, X1: 360, Y1: 190}},
	)

	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{Match: MatchPanel}))
	require.Len(t, fig.texts, 2)

	// And a second pass still updates rather than inserting.
	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{Match: MatchPanel}))
	assert.Len(t, fig.texts, 2)
}

func TestPlaceLabelsRelabeling(t *testing.T) {
	eng := New(natureConfig(), nil)
	panel := &stubPanel{id: "p1", label: "a", bbox: render.Rect{X0: 40, Y0: 110, X1: 190, Y1: 190}}
	fig := newStubFigure(panel)

	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{Match: MatchPanel}))
	panel.label = "b"
	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{Match: MatchPanel}))

	require.Len(t, fig.texts, 1)
	assert.Equal(t, "(B)", fig.texts[0].content)
}

func TestPlaceLabelsNoRulesIsNoop(t *testing.T) {
	eng := New(&style.Config{Name: "bare"}, nil)
	fig := newStubFigure(
		&stubPanel{id: "p1", label: "a", bbox: render.Rect{X0: 40, Y0: 110, X1: 190, Y1: 190}},
	)

	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{}))
	assert.Empty(t, fig.texts)
}

func TestPlaceLabelsNoLabeledPanelsIsNoop(t *testing.T) {
	eng := New(natureConfig(), nil)
	fig := newStubFigure(
		&stubPanel{id: "p1", bbox: render.Rect{X0: 40, Y0: 110, X1: 190, Y1: 190}},
	)

	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{}))
	assert.Empty(t, fig.texts)
	assert.Nil(t, fig.pads)
}

func TestPlaceLabelsAppliesPaddingAndRestoresAutoLayout(t *testing.T) {
	cfg := natureConfig()
	cfg.LayoutPadding = map[string]any{"w_pad": 0.04167, "h_pad": 0.04167}
	eng := New(cfg, nil)
	fig := newStubFigure(
		&stubPanel{id: "p1", label: "a", bbox: render.Rect{X0: 40, Y0: 110, X1: 190, Y1: 190}},
	)

	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{}))
	assert.Equal(t, cfg.LayoutPadding, fig.pads)
	assert.Equal(t, []bool{false, true}, fig.layoutToggles)
	assert.True(t, fig.autoLayout)
}

func TestPlaceLabelsBoundingBoxError(t *testing.T) {
	eng := New(natureConfig(), nil)
	fig := newStubFigure(
		&stubPanel{id: "p1", label: "a", err: fmt.Errorf("%w: panel has no renderer attached", render.ErrRenderTarget)},
	)

	err := eng.PlaceLabels(fig, PlaceOptions{})
	require.ErrorIs(t, err, render.ErrRenderTarget)
	assert.Contains(t, err.Error(), "p1")
}

func TestPlaceLabelsZeroSizeFigure(t *testing.T) {
	eng := New(natureConfig(), nil)
	fig := newStubFigure(
		&stubPanel{id: "p1", label: "a", bbox: render.Rect{X0: 40, Y0: 110, X1: 190, Y1: 190}},
	)
	fig.w, fig.h = 0, 0

	err := eng.PlaceLabels(fig, PlaceOptions{})
	require.ErrorIs(t, err, render.ErrRenderTarget)
}

func TestPlaceLabelsTeXModeContent(t *testing.T) {
	eng := New(natureConfig(), nil)
	fig := newStubFigure(
		&stubPanel{id: "p1", label: "a", bbox: render.Rect{X0: 40, Y0: 110, X1: 190, Y1: 190}},
	)
	fig.tex = true

	require.NoError(t, eng.PlaceLabels(fig, PlaceOptions{}))
	require.Len(t, fig.texts, 1)
	assert.Equal(t, `\textbf{(A)}`, fig.texts[0].content)
}
