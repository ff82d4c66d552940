package layout

import (
	"fmt"

	"github.com/piwi3910/figlayout/internal/render"
)

// MatchStrategy selects how PlaceLabels finds an existing annotation to
// update instead of inserting a new one.
type MatchStrategy int

const (
	// MatchContent updates the first annotation whose current text equals
	// the newly formatted label. This supports re-labeling before a
	// re-render, but two panels that format to the same text will fight
	// over one annotation.
	MatchContent MatchStrategy = iota

	// MatchPanel keys annotations by panel identity through an opaque
	// tag, so equal label texts stay distinct.
	MatchPanel
)

// PlaceOptions tunes a PlaceLabels call.
type PlaceOptions struct {
	// Shift offsets every label from its panel's top-left anchor, in
	// device points. Negative X moves left, positive Y moves up.
	Shift [2]float64

	Match MatchStrategy
}

// PlaceLabels places or updates one text annotation per labeled panel on
// the figure. The anchor is the top-left corner of the panel's tight
// bounding box, converted to figure-fraction coordinates. Calling it again
// on an unchanged figure updates annotations in place rather than
// duplicating them.
//
// When the style configures layout padding, it is applied before measuring
// and the figure's automatic layout recomputation is forced off for the
// duration of the call so the anchors stay valid.
//
// A no-op when the style has no panel label rules or the figure has no
// labeled panels.
func (e *Engine) PlaceLabels(fig render.Figure, opts PlaceOptions) error {
	if e.cfg.PanelLabels == nil {
		return nil
	}
	var labeled []render.Panel
	for _, p := range fig.Panels() {
		if p.Label() != "" {
			labeled = append(labeled, p)
		}
	}
	if len(labeled) == 0 {
		return nil
	}

	if len(e.cfg.LayoutPadding) > 0 {
		if err := fig.ApplyLayoutPadding(e.cfg.LayoutPadding); err != nil {
			return fmt.Errorf("apply layout padding: %w", err)
		}
		prev := fig.AutoLayout()
		fig.SetAutoLayout(false)
		defer fig.SetAutoLayout(prev)
	}

	wIn, hIn := fig.SizeInches()
	density := fig.PixelDensity()
	wPts, hPts := wIn*density, hIn*density
	if wPts <= 0 || hPts <= 0 {
		return fmt.Errorf("%w: figure reports a non-positive size in points", render.ErrRenderTarget)
	}

	texText := fig.TeXText()
	for _, p := range labeled {
		content := e.format(p.Label(), FormatFigure, texText)

		bbox, err := p.TightBoundingBox()
		if err != nil {
			return fmt.Errorf("panel %s: %w", p.ID(), err)
		}
		x := (bbox.X0 + opts.Shift[0]) / wPts
		y := (bbox.Y1 + opts.Shift[1]) / hPts

		textStyle := render.TextStyle{
			HAlign: "left",
			VAlign: "top",
			Tag:    p.ID(),
			Font:   e.cfg.PanelLabels.Font,
		}

		if existing := findText(fig, p.ID(), content, opts.Match); existing != nil {
			existing.SetContent(content)
			existing.SetPosition(x, y)
			existing.SetStyle(textStyle)
			continue
		}
		fig.AddText(x, y, content, textStyle)
	}
	return nil
}

// findText locates the annotation to update, or nil to insert a new one.
func findText(fig render.Figure, panelID, content string, match MatchStrategy) render.Text {
	for _, t := range fig.Texts() {
		switch match {
		case MatchPanel:
			if t.Tag() == panelID {
				return t
			}
		default:
			if t.Content() == content {
				return t
			}
		}
	}
	return nil
}
