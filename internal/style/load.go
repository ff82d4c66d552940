package style

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed styles/*.yml
var builtinFS embed.FS

// Available returns the names of all built-in styles, sorted.
func Available() []string {
	entries, err := builtinFS.ReadDir("styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yml"))
	}
	sort.Strings(names)
	return names
}

// Load resolves a style by name or file path and returns the validated
// Config.
//
// Resolution order:
//  1. An empty name returns the sentinel default style.
//  2. A name ending in .yml or .yaml is treated as a file path.
//  3. Otherwise the name is looked up in the built-in catalog, then in the
//     user style directory.
//
// Load fails with ErrNotFound when nothing resolves and with ErrParse when
// the resolved content is not a YAML mapping. Every other validation issue
// is reported through Config.Warnings instead of an error.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" || nameOrPath == DefaultName {
		return Default(), nil
	}

	name := nameOrPath
	var data []byte

	if isYAMLPath(nameOrPath) {
		b, err := os.ReadFile(nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot read %q: %v", ErrNotFound, nameOrPath, err)
		}
		data = b
		base := filepath.Base(nameOrPath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	} else {
		b, err := builtinFS.ReadFile("styles/" + nameOrPath + ".yml")
		if err != nil {
			b, err = readUserStyle(nameOrPath)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a built-in style (see Available) and no user style or file matches",
				ErrNotFound, nameOrPath)
		}
		data = b
	}

	return parse(name, data)
}

// parse unmarshals the raw style document and runs validation.
func parse(name string, data []byte) (*Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrParse, name, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %q is empty", ErrParse, name)
	}

	cfg := &Config{Name: name}
	cfg.Warnings = validate(raw)

	if sec, ok := asMapping(raw["figsize"]); ok {
		cfg.Figsize = parseFigsize(sec)
	}
	if sec, ok := asMapping(raw["panel_labels"]); ok {
		cfg.PanelLabels = parsePanelLabels(sec)
	}
	if sec, ok := asMapping(raw["constrained_layout_pads"]); ok {
		cfg.LayoutPadding = sec
	}
	return cfg, nil
}

// parseFigsize extracts the sizing rules and derives MaxHeightInches once.
func parseFigsize(sec map[string]any) *FigsizeRules {
	fs := &FigsizeRules{
		ColumnWidth: asFloat(sec["column_width"]),
		GutterWidth: asFloat(sec["gutter_width"]),
		MaxWidth:    asFloat(sec["max_width"]),
		MaxHeight:   asFloat(sec["max_height"]),
	}
	fs.Units, _ = sec["units"].(string)

	_, hasHeight := sec["max_height"]
	switch fs.Units {
	case "mm", "cm", "in":
		if hasHeight {
			fs.MaxHeightInches = toInches(fs.MaxHeight, fs.Units)
			fs.HasMaxHeightInches = true
		}
	}
	return fs
}

// parsePanelLabels extracts the label conventions. Keys beginning with
// "font" are collected into the opaque Font bag.
func parsePanelLabels(sec map[string]any) *PanelLabelRules {
	pl := &PanelLabelRules{}
	pl.Case, _ = sec["case"].(string)
	pl.Prefix, _ = sec["prefix"].(string)
	pl.Suffix, _ = sec["suffix"].(string)
	for k, v := range sec {
		if hasFontPrefix(k) {
			if pl.Font == nil {
				pl.Font = make(map[string]any)
			}
			pl.Font[k] = v
		}
	}
	return pl
}

// isYAMLPath reports whether the argument names a YAML file rather than a
// catalog entry.
func isYAMLPath(s string) bool {
	ext := filepath.Ext(s)
	return ext == ".yml" || ext == ".yaml"
}

// asMapping normalizes a decoded YAML section to map[string]any.
func asMapping(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

// asFloat widens any numeric YAML scalar to float64. Non-numeric values
// yield zero; validation has already flagged anything suspicious.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
