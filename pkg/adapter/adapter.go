// Package adapter wraps a two-accessor book behind a single combined accessor.
// This is the structural Adapter pattern: the adaptee keeps its own interface
// and the adapter translates it into the one callers expect.
package adapter

import "github.com/dkoosis/patternbook/pkg/book"

// BookInfo is the target interface: callers want one call, not two.
type BookInfo interface {
	// AuthorAndTitle returns "<title> by <author>".
	AuthorAndTitle() string
}

// BookAdapter adapts a book.Book adaptee to the BookInfo interface.
// It also delegates Author and Title, so the adapter still satisfies
// book.Book and can stand in wherever the adaptee could.
type BookAdapter struct {
	adaptee book.Book
}

// New wraps the given adaptee. The adaptee is assumed valid; there are
// no error paths and no side effects.
func New(adaptee book.Book) *BookAdapter {
	return &BookAdapter{adaptee: adaptee}
}

// AuthorAndTitle implements BookInfo by combining the adaptee's accessors.
func (a *BookAdapter) AuthorAndTitle() string {
	return a.adaptee.Title() + " by " + a.adaptee.Author()
}

// Author delegates to the adaptee.
func (a *BookAdapter) Author() string { return a.adaptee.Author() }

// Title delegates to the adaptee.
func (a *BookAdapter) Title() string { return a.adaptee.Title() }
