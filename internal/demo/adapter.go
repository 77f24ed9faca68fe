package demo

import (
	"github.com/dkoosis/patternbook/pkg/adapter"
	"github.com/dkoosis/patternbook/pkg/book"
	"github.com/dkoosis/patternbook/pkg/pattern"
)

// Adapter demonstrates wrapping a two-accessor book behind the combined
// single-accessor interface.
func Adapter() *pattern.Transcript {
	t := &pattern.Transcript{Label: "adapter pattern"}

	b := book.New("Larry Truett", "PHP for Cats")
	t.Writeln(pattern.LineNote, "the adaptee exposes two separate accessors")
	t.Writeln(pattern.LineStep, "Author(): %s", b.Author())
	t.Writeln(pattern.LineStep, "Title():  %s", b.Title())

	wrapped := adapter.New(b)
	t.Writeln(pattern.LineNote, "the adapter combines them into one call")
	t.Writeln(pattern.LineResult, "AuthorAndTitle(): %s", wrapped.AuthorAndTitle())

	return t
}
