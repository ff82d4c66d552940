package layout

import "strings"

// Format selects the affix style applied to formatted panel labels.
type Format int

const (
	// FormatFigure produces labels for placement on a figure. TeX affixes
	// are applied only when the host renders text through TeX.
	FormatFigure Format = iota

	// FormatRaw applies case, prefix and suffix only, never styling.
	FormatRaw

	// FormatTeX always wraps with \textbf{} / \textit{}.
	FormatTeX

	// FormatHTML wraps with <b></b> / <i></i>.
	FormatHTML

	// FormatMarkdown wraps with ** / *.
	FormatMarkdown
)

// FormatLabel formats a single panel label identifier per the engine's
// style: case transform, then prefix/suffix, then format-specific affixes
// derived from the style's fontweight and fontstyle attributes. Pure and
// idempotent on its inputs.
func (e *Engine) FormatLabel(label string, f Format) string {
	return e.format(label, f, e.host.TeXText())
}

// FormatLabels formats a set of label identifiers, keyed by the raw label.
func (e *Engine) FormatLabels(labels []string, f Format) map[string]string {
	out := make(map[string]string, len(labels))
	for _, l := range labels {
		out[l] = e.FormatLabel(l, f)
	}
	return out
}

func (e *Engine) format(label string, f Format, texText bool) string {
	rules := e.cfg.PanelLabels
	if rules == nil {
		return label
	}

	switch rules.Case {
	case "lower":
		label = strings.ToLower(label)
	case "upper":
		label = strings.ToUpper(label)
	}
	label = rules.Prefix + label + rules.Suffix

	bold := fontAttr(rules.Font, "fontweight") == "bold"
	fontstyle := fontAttr(rules.Font, "fontstyle")
	italic := fontstyle == "italic" || fontstyle == "oblique"

	var pre, post string
	switch f {
	case FormatFigure:
		// Raw on the figure unless the host is in TeX mode.
		if !texText {
			return label
		}
		pre, post = texAffixes(bold, italic)
	case FormatTeX:
		pre, post = texAffixes(bold, italic)
	case FormatHTML:
		if bold {
			pre += "<b>"
			post = "</b>" + post
		}
		if italic {
			pre += "<i>"
			post = "</i>" + post
		}
	case FormatMarkdown:
		if bold {
			pre += "**"
			post = "**" + post
		}
		if italic {
			pre += "*"
			post = "*" + post
		}
	default: // FormatRaw
	}
	return pre + label + post
}

// texAffixes builds the TeX wrapping, bold outside italic.
func texAffixes(bold, italic bool) (pre, post string) {
	if bold {
		pre += `\textbf{`
		post = `}` + post
	}
	if italic {
		pre += `\textit{`
		post = `}` + post
	}
	return pre, post
}

// fontAttr reads a string-valued attribute from the opaque font bag.
func fontAttr(font map[string]any, key string) string {
	s, _ := font[key].(string)
	return s
}
