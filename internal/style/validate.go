package style

import (
	"fmt"
	"sort"
	"strings"
)

// Recognized keys per section. Anything else produces a diagnostic, except
// for "font"-prefixed keys in panel_labels which belong to the renderer.
var (
	figsizeKeys    = []string{"column_width", "gutter_width", "max_width", "max_height", "units"}
	panelLabelKeys = []string{"case", "prefix", "suffix"}
)

// validate inspects the raw style document and returns the list of
// non-fatal diagnostics. Loading always proceeds with whatever keys exist.
func validate(raw map[string]any) []string {
	var warnings []string

	figsize, hasFigsize := asMapping(raw["figsize"])
	if !hasFigsize {
		warnings = append(warnings,
			`"figsize" is not defined; figure size queries will return host defaults`)
	}
	labels, hasLabels := asMapping(raw["panel_labels"])
	if !hasLabels {
		warnings = append(warnings,
			`"panel_labels" is not defined; panel labels will not be drawn`)
	}

	if hasFigsize {
		warnings = append(warnings, sectionWarnings("figsize", figsize, figsizeKeys, nil)...)
	}
	if hasLabels {
		warnings = append(warnings, sectionWarnings("panel_labels", labels, panelLabelKeys, hasFontPrefix)...)
	}
	return warnings
}

// sectionWarnings reports unrecognized and missing keys for one section.
// exempt, when non-nil, marks keys that are accepted without a diagnostic.
func sectionWarnings(section string, sec map[string]any, recognized []string, exempt func(string) bool) []string {
	var warnings []string

	known := make(map[string]bool, len(recognized))
	for _, k := range recognized {
		known[k] = true
	}

	var unrecognized []string
	for _, k := range sortedKeys(sec) {
		if known[k] {
			continue
		}
		if exempt != nil && exempt(k) {
			continue
		}
		unrecognized = append(unrecognized, k)
	}
	if len(unrecognized) > 0 {
		warnings = append(warnings, fmt.Sprintf("found %q in %s and only %q are recognized",
			unrecognized, section, recognized))
	}

	var missing []string
	for _, k := range recognized {
		if _, ok := sec[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		warnings = append(warnings, fmt.Sprintf("%s is missing keys: %s",
			section, strings.Join(missing, ", ")))
	}
	return warnings
}
