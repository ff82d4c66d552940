// Package layout computes publication-compliant figure dimensions and
// places panel labels, driven by a loaded style configuration.
//
// An Engine is constructed once from a style.Config and a Host and then
// invoked per figure. It owns no rendering state: the host supplies
// defaults (figure size, pixel density, TeX text mode) and the figure
// passed to PlaceLabels is the only thing mutated.
package layout

import "github.com/piwi3910/figlayout/internal/style"

// Host is the engine's view of the plotting host's global configuration.
// Modeling these as queries keeps the engine independent of any particular
// renderer's global state mechanism.
type Host interface {
	// DefaultFigsize returns the host's default figure size in inches.
	DefaultFigsize() (w, h float64)

	// PixelDensity returns the host's current rendering density in device
	// points per inch.
	PixelDensity() float64

	// TeXText reports whether the host renders text through TeX.
	TeXText() bool
}

// stdHost supplies fixed fallback defaults when no host is provided:
// a 6.4 x 4.8 inch figure at 100 dpi with TeX text off.
type stdHost struct{}

func (stdHost) DefaultFigsize() (float64, float64) { return 6.4, 4.8 }
func (stdHost) PixelDensity() float64              { return 100 }
func (stdHost) TeXText() bool                      { return false }

// Engine computes figure sizes and places panel labels for one style.
// It is immutable after construction and safe to share across goroutines;
// only the figure handles passed into PlaceLabels are mutated.
type Engine struct {
	cfg  *style.Config
	host Host
}

// New creates an engine for the given style. A nil cfg behaves like the
// default style; a nil host uses fixed fallback defaults.
func New(cfg *style.Config, host Host) *Engine {
	if cfg == nil {
		cfg = style.Default()
	}
	if host == nil {
		host = stdHost{}
	}
	return &Engine{cfg: cfg, host: host}
}

// Style returns the style configuration the engine was built from.
func (e *Engine) Style() *style.Config { return e.cfg }
