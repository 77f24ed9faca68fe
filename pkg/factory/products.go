package factory

import "github.com/dkoosis/patternbook/pkg/book"

// Picker supplies the random choice for the randomized product. *rand.Rand
// satisfies it; tests substitute a deterministic implementation.
type Picker interface {
	Intn(n int) int
}

// The fixed author/title pairs each product class selects among.
var (
	oreillyPairs = [2]book.Volume{
		book.New("Rasmus Lerdorf and Kevin Tatroe", "Programming PHP"),
		book.New("David Sklar and Adam Trachtenberg", "PHP Cookbook"),
	}
	samsPairs = [2]book.Volume{
		book.New("George Schlossnagle", "Advanced PHP Programming"),
		book.New("Christian Wenz", "PHP Phrasebook"),
	}
	quickstartPair = book.New("Larry Ullman", "PHP for the World Wide Web")
)

// newOReillyPHP constructs the alternating product: pair 1 on the first
// construction since the sequence started, pair 2 on the second, and so on.
func newOReillyPHP(seq *Sequence) book.Volume {
	return oreillyPairs[seq.Next()]
}

// newSamsPHP constructs the randomized product: one of its two pairs,
// chosen independently per construction.
func newSamsPHP(r Picker) book.Volume {
	return samsPairs[r.Intn(2)]
}

// newQuickstartPHP constructs the fixed product.
func newQuickstartPHP() book.Volume {
	return quickstartPair
}
