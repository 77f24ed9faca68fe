package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/patternbook/pkg/book"
)

func TestBookAdapter_AuthorAndTitle(t *testing.T) {
	cases := []struct {
		author, title, want string
	}{
		{"Larry Truett", "PHP for Cats", "PHP for Cats by Larry Truett"},
		{"A", "T", "T by A"},
		{"", "", " by "},
	}
	for _, tc := range cases {
		a := New(book.New(tc.author, tc.title))
		assert.Equal(t, tc.want, a.AuthorAndTitle())
	}
}

func TestBookAdapter_Delegates(t *testing.T) {
	a := New(book.New("Larry Truett", "PHP for Cats"))

	assert.Equal(t, "Larry Truett", a.Author())
	assert.Equal(t, "PHP for Cats", a.Title())

	// The adapter still satisfies book.Book.
	var _ book.Book = a
}

func TestBookAdapter_Idempotent(t *testing.T) {
	a := New(book.New("Larry Truett", "PHP for Cats"))
	first := a.AuthorAndTitle()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, a.AuthorAndTitle())
	}
}
