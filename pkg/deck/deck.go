package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"headsupholdem-server/internal/rng"
)

// ErrDeckExhausted is an error when more cards are requested than the deck holds.
// Dealing must never silently come up short.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a playing deck
type Deck struct {
	Cards Hand `json:"cards"`
}

// New returns a new deck of 52 unique cards, all face-down, in canonical (suit, rank) order.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make(Hand, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle performs a Fisher-Yates shuffle using the supplied random source.
// Pass rng.Crypto{} in production; tests can pass a seeded generator.
func (d *Deck) Shuffle(g rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrDeckExhausted is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrDeckExhausted
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal removes and returns the next count cards.
// If fewer than count cards remain, no cards are dealt and ErrDeckExhausted is returned.
func (d *Deck) Deal(count int) (Hand, error) {
	if count > len(d.Cards) {
		return nil, ErrDeckExhausted
	}

	cards := d.Cards[0:count]
	d.Cards = d.Cards[count:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Clone returns a deep clone of the deck
func (d *Deck) Clone() *Deck {
	return &Deck{Cards: d.Cards.Clone()}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
