// Package render defines the narrow renderer interface the layout engine
// collaborates with, plus two concrete figure backends: a PDF document
// backend and a raster PNG backend.
//
// The engine never draws anything itself. It queries a Figure for its
// panels, physical size and pixel density, and inserts or updates text
// annotations on it. Any rendering surface that satisfies Figure can be
// driven by the engine.
package render

import "errors"

// ErrRenderTarget means a figure or panel handle lacks a capability the
// engine requires, e.g. a panel that cannot report its bounding box.
var ErrRenderTarget = errors.New("render target does not support the requested operation")

// Rect is a rectangle in device points with the origin at the bottom-left
// of the figure, so Y1 is the top edge.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// TextStyle carries the placement and styling attributes of a text
// annotation. Font keys are renderer-specific and passed through opaquely.
type TextStyle struct {
	HAlign string // "left", "center" or "right"
	VAlign string // "top", "center" or "bottom"

	// Tag is an opaque identity set by the caller, used to find an
	// annotation again independently of its content.
	Tag string

	Font map[string]any
}

// Text is a text annotation placed on a figure. Positions are in
// figure-fraction coordinates with the origin at the bottom-left.
type Text interface {
	Content() string
	Tag() string
	SetContent(s string)
	SetPosition(x, y float64)
	SetStyle(style TextStyle)
}

// Panel is a sub-plot region of a figure, optionally annotated with a
// short label identifier.
type Panel interface {
	// ID is a stable identity for the panel within its figure.
	ID() string

	// Label returns the panel's label identifier, or "" when unlabeled.
	Label() string

	// TightBoundingBox returns the minimal rectangle enclosing the
	// panel's rendered content, in device points. It fails with an error
	// wrapping ErrRenderTarget when the panel cannot be measured.
	TightBoundingBox() (Rect, error)
}

// Figure is the mutable rendering surface the engine annotates. Callers
// must not drive the same Figure concurrently: placement toggles the
// figure's automatic layout recomputation for the duration of a call.
type Figure interface {
	Panels() []Panel

	// SizeInches returns the figure's physical width and height.
	SizeInches() (w, h float64)

	// PixelDensity returns the rendering density in device points per inch.
	PixelDensity() float64

	// TeXText reports whether the figure renders text through TeX, which
	// changes how bold and italic labels are written.
	TeXText() bool

	Texts() []Text
	AddText(x, y float64, content string, style TextStyle) Text

	// AutoLayout and SetAutoLayout expose the figure's automatic layout
	// recomputation toggle.
	AutoLayout() bool
	SetAutoLayout(on bool)

	// ApplyLayoutPadding forwards a style's layout padding parameters to
	// the figure. Unknown keys are the figure's problem to ignore.
	ApplyLayoutPadding(pads map[string]any) error
}
