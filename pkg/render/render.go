// Package render turns demo transcripts into terminal output.
// Terminal applies a lipgloss theme; Plain emits the bare writeln lines.
package render

import "github.com/dkoosis/patternbook/pkg/pattern"

// Renderer formats a sequence of patterns for display.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}
