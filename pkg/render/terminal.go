package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/patternbook/pkg/pattern"
)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		if tr, ok := p.(*pattern.Transcript); ok {
			sections = append(sections, t.renderTranscript(tr))
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderTranscript(tr *pattern.Transcript) string {
	var sb strings.Builder
	if tr.Label != "" {
		heading := cases.Title(language.English).String(tr.Label)
		sb.WriteString(t.theme.Heading.Render(heading))
		sb.WriteString("\n")
		sb.WriteString(t.theme.Muted.Render(rule(t.theme.Icons.Rule, heading, t.width)))
		sb.WriteString("\n")
	}
	for _, line := range tr.Lines {
		icon, style := t.lineStyle(line.Kind)
		sb.WriteString("  ")
		sb.WriteString(style.Render(icon + " " + line.Text))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) lineStyle(kind pattern.LineKind) (string, lipgloss.Style) {
	switch kind {
	case pattern.LineStep:
		return t.theme.Icons.Step, t.theme.Step
	case pattern.LineResult:
		return t.theme.Icons.Result, t.theme.Result
	default:
		return t.theme.Icons.Note, t.theme.Note
	}
}

// rule draws a horizontal rule as wide as the heading, capped at the
// terminal width. Uses go-runewidth so wide characters count correctly.
func rule(char, heading string, max int) string {
	w := runewidth.StringWidth(heading)
	if w > max {
		w = max
	}
	return strings.Repeat(char, w)
}
