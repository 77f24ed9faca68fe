package demo

import (
	"github.com/dkoosis/patternbook/pkg/book"
	"github.com/dkoosis/patternbook/pkg/pattern"
	"github.com/dkoosis/patternbook/pkg/template"
)

// TemplateMethod demonstrates the fixed two-step skeleton with both a
// fully overriding processor and one that relies on the optional hook's
// default.
func TemplateMethod() *pattern.Transcript {
	t := &pattern.Transcript{Label: "template method pattern"}

	b := book.New("Larry Truett", "PHP for Cats")
	t.Writeln(pattern.LineNote, "book: %q by %q", b.Title(), b.Author())

	t.Writeln(pattern.LineStep, "ExclaimProcessor overrides title and author steps")
	if out, err := template.ShowBookTitleInfo(b, template.ExclaimProcessor{}); err == nil {
		t.Writeln(pattern.LineResult, "%s", out)
	}

	t.Writeln(pattern.LineStep, "StarProcessor overrides the title step only")
	if out, err := template.ShowBookTitleInfo(b, template.StarProcessor{}); err == nil {
		t.Writeln(pattern.LineResult, "%s", out)
	}
	t.Writeln(pattern.LineNote, "the unoverridden author hook drops the author entirely")

	return t
}
