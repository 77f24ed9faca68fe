package render

import (
	"strings"
	"testing"

	"github.com/dkoosis/patternbook/pkg/pattern"
)

func demoTranscript() *pattern.Transcript {
	tr := &pattern.Transcript{Label: "adapter pattern"}
	tr.Writeln(pattern.LineNote, "wrapping the adaptee")
	tr.Writeln(pattern.LineResult, "PHP for Cats by Larry Truett")
	return tr
}

func TestTerminal_RenderTranscript(t *testing.T) {
	r := NewTerminal(MonoTheme(), 80)
	out := r.Render([]pattern.Pattern{demoTranscript()})

	if !strings.Contains(out, "Adapter Pattern") {
		t.Errorf("expected title-cased heading in output:\n%s", out)
	}
	if !strings.Contains(out, "PHP for Cats by Larry Truett") {
		t.Errorf("expected result line in output:\n%s", out)
	}
}

func TestPlain_RenderExactLines(t *testing.T) {
	r := NewPlain()
	out := r.Render([]pattern.Pattern{demoTranscript()})

	want := "adapter pattern\nwrapping the adaptee\nPHP for Cats by Larry Truett\n"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestPlain_SeparatesTranscripts(t *testing.T) {
	r := NewPlain()
	out := r.Render([]pattern.Pattern{demoTranscript(), demoTranscript()})

	if strings.Count(out, "adapter pattern\n") != 2 {
		t.Errorf("expected both transcripts rendered:\n%s", out)
	}
	if !strings.Contains(out, "Truett\n\nadapter pattern") {
		t.Errorf("expected blank line between transcripts:\n%s", out)
	}
}
