package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument means a size request violated the engine's
// preconditions: neither or both of Columns and WidthProportion set, or a
// WidthProportion outside [0, 1]. Fatal to that call only.
var ErrInvalidArgument = errors.New("invalid figsize argument")

// GoldenRatio is the default width-to-height aspect ratio.
var GoldenRatio = (1 + math.Sqrt(5)) / 2

// SizeRequest describes one figure size computation. Exactly one of
// Columns or WidthProportion must be set unless the engine's style is the
// default style.
type SizeRequest struct {
	// Columns is the figure width in text columns. Need not be an
	// integer; values of 2 or more incorporate the gutter between
	// columns.
	Columns *float64

	// WidthProportion is the fraction of the maximum page width to use,
	// in [0, 1].
	WidthProportion *float64

	// Height overrides the computed height. A value in (0, 1] is read as
	// a proportion of the style's maximum page height; a value above 1 is
	// absolute inches. Note the ambiguity: an absolute sub-inch height
	// cannot be expressed, it is always read as a proportion.
	Height *float64

	// AspectRatio is the width/height ratio used when Height is unset.
	// Zero means the golden ratio.
	AspectRatio float64

	// PixelDensity is the device density used for the final rounding
	// step, in device points per inch. Zero means the host's density.
	PixelDensity float64
}

// Float64 returns a pointer to v, for filling optional SizeRequest fields.
func Float64(v float64) *float64 { return &v }

// ComputeFigsize resolves a size request against the engine's style rules
// and returns the figure width and height in inches.
//
// With the default style (or a style without figsize rules) the host's
// default figure size is returned as-is, except that an explicit Height
// overrides the height component.
//
// Otherwise the width is resolved in the style's native units from either
// Columns or WidthProportion, clamped to the maximum page width, converted
// to inches, and the height derived from the aspect ratio or the Height
// override and clamped to the maximum page height. Both dimensions are
// finally truncated down to the nearest multiple of 1/density so the
// rendered pixel dimensions are integral.
func (e *Engine) ComputeFigsize(req SizeRequest) (float64, float64, error) {
	if e.cfg.IsDefault() || e.cfg.Figsize == nil {
		w, h := e.host.DefaultFigsize()
		if req.Height != nil {
			h = *req.Height
		}
		return w, h, nil
	}

	if (req.Columns == nil) == (req.WidthProportion == nil) {
		return 0, 0, fmt.Errorf("%w: exactly one of Columns and WidthProportion must be set", ErrInvalidArgument)
	}

	fs := e.cfg.Figsize

	// Width in native units. With fewer than one column the gutter term
	// goes negative and narrows the figure.
	var width float64
	if req.Columns != nil {
		n := *req.Columns
		width = fs.ColumnWidth*n + fs.GutterWidth*math.Floor(n-1)
	} else {
		p := *req.WidthProportion
		if p < 0 || p > 1 {
			return 0, 0, fmt.Errorf("%w: width proportion %v must be between 0 and 1", ErrInvalidArgument, p)
		}
		width = fs.MaxWidth * p
	}
	// A zero MaxWidth means the style never declared one; do not clamp.
	if fs.MaxWidth > 0 && width > fs.MaxWidth {
		width = fs.MaxWidth
	}
	width = fs.ToInches(width)

	var height float64
	if req.Height != nil {
		height = *req.Height
	} else {
		aspect := req.AspectRatio
		if aspect == 0 {
			aspect = GoldenRatio
		}
		height = width / aspect
	}
	if fs.HasMaxHeightInches {
		if height > 0 && height <= 1 {
			height = fs.MaxHeightInches * height
		}
		if height > fs.MaxHeightInches {
			height = fs.MaxHeightInches
		}
	}

	density := req.PixelDensity
	if density == 0 {
		density = e.host.PixelDensity()
	}
	if density > 0 {
		width = math.Floor(width*density) / density
		height = math.Floor(height*density) / density
	}
	return width, height, nil
}
