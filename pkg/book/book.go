// Package book defines the shared data model for the pattern demos.
// A Book is pure data — author and title, immutable after construction.
package book

// Book is the capability set every book-like value implements.
// Adapters, template-method processors, and factory products all
// consume or produce values of this interface.
type Book interface {
	Author() string
	Title() string
}

// Volume is the plain immutable Book implementation.
type Volume struct {
	author string
	title  string
}

// New returns an immutable Book with the given author and title.
func New(author, title string) Volume {
	return Volume{author: author, title: title}
}

// Author returns the author text.
func (v Volume) Author() string { return v.author }

// Title returns the title text.
func (v Volume) Title() string { return v.title }
