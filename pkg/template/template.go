// Package template implements the Template Method pattern over book data.
//
// ShowBookTitleInfo fixes the order of a two-step computation: process the
// title (mandatory), process the author (optional hook), then join the
// results. Concrete processors supply the steps; the skeleton never varies.
//
// The mandatory step is carried by the [TitleProcessor] interface, so a
// processor that omits it fails at compile time. The optional step is the
// separate [AuthorProcessor] interface, detected by type assertion; a
// processor that skips it gets the default no-op, and the author is left
// out of the result entirely.
package template

import (
	"errors"
	"strings"

	"github.com/dkoosis/patternbook/pkg/book"
)

// ErrMissingTitleStep reports that no processor was supplied for the
// mandatory title step. The skeleton cannot run without it.
var ErrMissingTitleStep = errors.New("template: missing required ProcessTitle step")

// noAuthor is the absence marker: the documented "no value" result of the
// unoverridden optional hook. Distinct from the empty string, which is a
// legitimate processed value.
const noAuthor = "no value"

// TitleProcessor carries the mandatory step of the template.
type TitleProcessor interface {
	ProcessTitle(title string) string
}

// AuthorProcessor is the optional hook. Processors that also implement it
// get their author text included in the result.
type AuthorProcessor interface {
	ProcessAuthor(author string) string
}

// ShowBookTitleInfo is the template method. It reads title and author from b,
// runs the mandatory title step, runs the author hook if p provides one, and
// returns either "<title>" or "<title> by <author>".
//
// A nil processor returns ErrMissingTitleStep.
func ShowBookTitleInfo(b book.Book, p TitleProcessor) (string, error) {
	if p == nil {
		return "", ErrMissingTitleStep
	}

	title := p.ProcessTitle(b.Title())

	author := noAuthor
	if ap, ok := p.(AuthorProcessor); ok {
		author = ap.ProcessAuthor(b.Author())
	}

	if author == noAuthor {
		return title, nil
	}
	return title + " by " + author, nil
}

// ExclaimProcessor overrides both steps: spaces become "!!!" in the title
// and in the author.
type ExclaimProcessor struct{}

func (ExclaimProcessor) ProcessTitle(title string) string {
	return strings.ReplaceAll(title, " ", "!!!")
}

func (ExclaimProcessor) ProcessAuthor(author string) string {
	return strings.ReplaceAll(author, " ", "!!!")
}

// StarProcessor overrides only the mandatory step: spaces become "*" in the
// title, and the author falls through to the absence marker.
type StarProcessor struct{}

func (StarProcessor) ProcessTitle(title string) string {
	return strings.ReplaceAll(title, " ", "*")
}
