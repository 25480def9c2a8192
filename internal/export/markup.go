package export

import (
	"errors"
	"strings"
)

// LineKind classifies one line of advisory text for rendering.
type LineKind int

const (
	// LineBlank renders as a vertical gap.
	LineBlank LineKind = iota
	// LineHeading renders as a section heading, markers stripped.
	LineHeading
	// LineBody renders as body text with bold spans.
	LineBody
)

// ErrUnbalancedBold marks a body line whose ** markers do not pair up.
var ErrUnbalancedBold = errors.New("unbalanced bold marker")

// ClassifyLine maps an advisory-text line onto its render kind and
// content. Lines starting with "##" or "###" are headings; the marker run
// is stripped from the returned content.
func ClassifyLine(line string) (LineKind, string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return LineBlank, ""
	}
	if strings.HasPrefix(trimmed, "##") {
		return LineHeading, strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
	}
	return LineBody, trimmed
}

// ToBasicHTML escapes &, < and > and converts **bold** spans into <b>
// tags. It fails on unbalanced markers so the caller can fall back to
// plain text for that line.
func ToBasicHTML(line string) (string, error) {
	parts := strings.Split(EscapeMarkup(line), "**")
	if len(parts)%2 == 0 {
		return "", ErrUnbalancedBold
	}

	var b strings.Builder
	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString("<b>")
			b.WriteString(part)
			b.WriteString("</b>")
		} else {
			b.WriteString(part)
		}
	}
	return b.String(), nil
}

// EscapeMarkup escapes the three characters the rich-line writer would
// otherwise interpret.
func EscapeMarkup(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// unescapeMarkup reverses EscapeMarkup when a text span is drawn.
func unescapeMarkup(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}
