package render

import (
	"strings"

	"github.com/dkoosis/patternbook/pkg/pattern"
)

// Plain renders transcripts as unstyled text, one line per writeln call.
// This is the default when stdout is piped.
type Plain struct{}

// NewPlain creates a plain renderer.
func NewPlain() *Plain { return &Plain{} }

// Render formats all patterns as bare lines.
func (p *Plain) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for i, pat := range patterns {
		tr, ok := pat.(*pattern.Transcript)
		if !ok {
			continue
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		if tr.Label != "" {
			sb.WriteString(tr.Label)
			sb.WriteString("\n")
		}
		for _, line := range tr.Lines {
			sb.WriteString(line.Text)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
