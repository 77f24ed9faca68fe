package demo

import (
	"github.com/dkoosis/patternbook/pkg/book"
	"github.com/dkoosis/patternbook/pkg/factory"
	"github.com/dkoosis/patternbook/pkg/pattern"
)

// FactoryMethod demonstrates the two creators, the alternating and random
// products, and the unknown-market fallthrough. The demo runs on its own
// Sequence so repeated invocations start from the same position.
func FactoryMethod() *pattern.Transcript {
	t := &pattern.Transcript{Label: "factory method pattern"}

	seq := factory.NewSequence()
	oreilly := &factory.OReillyFactory{Seq: seq, Rand: evenPicker{}}
	sams := &factory.SamsFactory{Seq: seq, Rand: evenPicker{}}

	t.Writeln(pattern.LineNote, "the O'Reilly creator maps \"us\" to the alternating product")
	for i := 0; i < 3; i++ {
		show(t, oreilly.MakeBook("us"))
	}
	t.Writeln(pattern.LineNote, "alternation state is shared, so the Sams creator continues it")
	show(t, sams.MakeBook("other"))

	t.Writeln(pattern.LineNote, "the Sams creator maps \"us\" to the randomized product")
	show(t, sams.MakeBook("us"))

	t.Writeln(pattern.LineNote, "\"otherother\" yields the fixed product")
	show(t, sams.MakeBook("otherother"))

	t.Writeln(pattern.LineNote, "an unknown market falls through to the creator default")
	show(t, oreilly.MakeBook("xx"))

	return t
}

func show(t *pattern.Transcript, b book.Book) {
	t.Writeln(pattern.LineResult, "%s by %s", b.Title(), b.Author())
}

// evenPicker keeps the demo transcript reproducible; the randomized product
// always shows its first pair here. Tests and real callers inject rand.
type evenPicker struct{}

func (evenPicker) Intn(int) int { return 0 }
