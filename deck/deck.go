package deck

import (
	"errors"
	"math/rand"
	"time"

	uuid "github.com/satori/go.uuid"
)

// ErrDeckExhausted means a deal asked for more cards than the deck holds.
var ErrDeckExhausted = errors.New("not enough cards left in the deck")

// Card is an opaque card token. The engine only ever compares tokens for
// equality; what the card depicts lives elsewhere.
type Card string

// NewCard mints a fresh card token
func NewCard() Card {
	return Card(uuid.NewV4().String())
}

// Deck holds the pool of undealt cards for a single game. Cards are
// consumed as they are dealt and never return to the pool.
type Deck []Card

// New creates a shuffled deck of n unique cards
func New(n int) Deck {
	cards := make(Deck, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, NewCard())
	}
	cards.Shuffle()
	return cards
}

// Shuffle shuffles the deck of cards
func (d Deck) Shuffle() {
	rand.Seed(time.Now().UnixNano())
	for i := len(d) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal removes and returns n cards from the deck. Either all n cards are
// dealt or none are: if fewer than n remain, Deal returns ErrDeckExhausted
// and the pool is unchanged.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 {
		n = 0
	}
	if n > len(*d) {
		return nil, ErrDeckExhausted
	}
	startingIndex := len(*d) - n
	dealt := (*d)[startingIndex:]
	*d = (*d)[:startingIndex]
	return dealt, nil
}

// Remaining reports how many cards are left to deal
func (d Deck) Remaining() int {
	return len(d)
}
