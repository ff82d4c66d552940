// Package style loads and validates publication figure styles.
//
// A style bundles the figure sizing rules and panel label conventions of a
// target publication venue (column widths, gutters, page limits, label
// casing and affixes). Styles are defined in YAML. A set of common venues
// ships embedded in the binary; additional styles can be loaded from a file
// path or from the user style directory.
package style

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors returned by Load.
var (
	// ErrNotFound means the requested style is neither a built-in name,
	// a user style, nor a readable file path.
	ErrNotFound = errors.New("style not found")

	// ErrParse means the style content does not parse into a mapping.
	ErrParse = errors.New("style does not parse into a mapping")
)

// DefaultName is the sentinel style name meaning "use host defaults and
// bypass all rule-based computation".
const DefaultName = "default"

// Millimetres and centimetres per inch, used to derive inch measurements
// from native publication units.
const (
	mmPerInch = 25.4
	cmPerInch = 2.54
)

// FigsizeRules holds the figure sizing parameters of a style, in the
// publication's native units.
type FigsizeRules struct {
	ColumnWidth float64 // width of one text column
	GutterWidth float64 // spacing between adjacent columns
	MaxWidth    float64 // maximum figure width (full page width)
	MaxHeight   float64 // maximum figure height (full page height)
	Units       string  // "mm", "cm" or "in"

	// MaxHeightInches is MaxHeight converted to inches. It is derived once
	// at load time and only meaningful when HasMaxHeightInches is true
	// (both max_height and a recognized units value were present).
	MaxHeightInches    float64
	HasMaxHeightInches bool
}

// PanelLabelRules holds the panel label conventions of a style.
type PanelLabelRules struct {
	Case   string // "lower", "upper" or "" for unchanged
	Prefix string // prepended to each label, e.g. "("
	Suffix string // appended to each label, e.g. ")"

	// Font holds every style key beginning with "font" (fontweight,
	// fontstyle, fontsize, fontfamily, ...). The values are passed through
	// to the renderer untouched.
	Font map[string]any
}

// Config is an immutable, validated figure style. Construct one with Load
// or Default; do not mutate it afterwards. A Config is safe to share across
// goroutines.
type Config struct {
	Name string

	// Figsize is nil when the style defines no sizing rules; size queries
	// then fall back to the host's default figure size.
	Figsize *FigsizeRules

	// PanelLabels is nil when the style defines no label conventions;
	// label placement is then a no-op.
	PanelLabels *PanelLabelRules

	// LayoutPadding is forwarded verbatim to the renderer's layout padding
	// mechanism. Never validated here.
	LayoutPadding map[string]any

	// Warnings collects the non-fatal validation diagnostics produced
	// while loading (unrecognized keys, missing keys, absent sections).
	Warnings []string
}

// Default returns the sentinel "default" Config: no rule sections, meaning
// every decision is delegated to the host library's defaults.
func Default() *Config {
	return &Config{Name: DefaultName}
}

// IsDefault reports whether the config is the sentinel default style.
func (c *Config) IsDefault() bool {
	return c.Name == DefaultName
}

// ToInches converts a value in the style's native units to inches.
// Unrecognized units pass through unchanged, like "in".
func (f *FigsizeRules) ToInches(v float64) float64 {
	return toInches(v, f.Units)
}

// toInches converts a value in the given native units to inches.
// Unrecognized units are passed through unchanged, matching "in".
func toInches(v float64, units string) float64 {
	switch units {
	case "mm":
		return v / mmPerInch
	case "cm":
		return v / cmPerInch
	default:
		return v
	}
}

// sortedKeys returns the map's keys in sorted order so that diagnostics
// are deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// hasFontPrefix reports whether the key is a renderer font attribute.
// Such keys are always accepted without a diagnostic.
func hasFontPrefix(key string) bool {
	return strings.HasPrefix(key, "font")
}
