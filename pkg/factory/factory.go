// Package factory implements the Factory Method pattern for book products.
//
// A Creator maps a market discriminator to one of three product classes, all
// returned as book.Book. The two concrete creators are approximate mirrors of
// each other: each swaps which product is primary, and the Sams creator knows
// one extra market. Unknown markets always fall through to the creator's
// default product — never an error.
//
// Two of the products carry construction-time selection logic: the O'Reilly
// product alternates deterministically between two fixed author/title pairs
// through a shared [Sequence], and the Sams product picks one of its two
// pairs at random through an injected [Picker]. Both dependencies are
// explicit so tests can reset, inspect, or determinize them.
package factory

import (
	"math/rand"
	"time"

	"github.com/dkoosis/patternbook/pkg/book"
)

// Creator is the factory-method interface. Each concrete creator defines
// its own market→product table.
type Creator interface {
	MakeBook(market string) book.Book
}

// defaultSequence backs the convenience constructors, so alternation is
// shared process-wide across creators built with them — matching the
// original behavior of a static counter on the product class.
var defaultSequence = NewSequence()

// DefaultSequence exposes the shared alternation state, mainly so callers
// can observe or reset it.
func DefaultSequence() *Sequence { return defaultSequence }

func defaultPicker() Picker {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// OReillyFactory primarily produces the alternating O'Reilly product.
//
// Market table: "us" → alternating product; anything else → random product.
type OReillyFactory struct {
	Seq  *Sequence
	Rand Picker
}

// NewOReillyFactory returns an OReillyFactory on the shared default
// sequence and a time-seeded random source.
func NewOReillyFactory() *OReillyFactory {
	return &OReillyFactory{Seq: defaultSequence, Rand: defaultPicker()}
}

// MakeBook implements Creator.
func (f *OReillyFactory) MakeBook(market string) book.Book {
	switch market {
	case "us":
		return newOReillyPHP(f.Seq)
	default:
		return newSamsPHP(f.Rand)
	}
}

// SamsFactory mirrors OReillyFactory with the products swapped, plus one
// extra market for the fixed Quickstart product.
//
// Market table: "us" → random product; "other" → alternating product;
// "otherother" → fixed product; anything else → alternating product.
type SamsFactory struct {
	Seq  *Sequence
	Rand Picker
}

// NewSamsFactory returns a SamsFactory on the shared default sequence and a
// time-seeded random source.
func NewSamsFactory() *SamsFactory {
	return &SamsFactory{Seq: defaultSequence, Rand: defaultPicker()}
}

// MakeBook implements Creator.
func (f *SamsFactory) MakeBook(market string) book.Book {
	switch market {
	case "us":
		return newSamsPHP(f.Rand)
	case "other":
		return newOReillyPHP(f.Seq)
	case "otherother":
		return newQuickstartPHP()
	default:
		return newOReillyPHP(f.Seq)
	}
}
