package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"headsupholdem-server/internal/rng"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())

	seen := make(map[string]bool)
	for _, card := range d.Cards {
		a.False(card.FaceUp)
		seen[CardToString(card)] = true
	}

	// 52 distinct (suit, rank) pairs
	a.Equal(52, len(seen))

	// canonical order: suits in order, ranks ascending within a suit
	a.Equal("2h", CardToString(d.Cards[0]))
	a.Equal("14h", CardToString(d.Cards[12]))
	a.Equal("2d", CardToString(d.Cards[13]))
	a.Equal("14s", CardToString(d.Cards[51]))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d := New()
	unshuffled := d.HashCode()

	d.Shuffle(rng.Seeded(1))
	a.NotEqual(unshuffled, d.HashCode())
	a.Equal(52, d.CardsLeft())

	// same seed produces the same permutation
	d2 := New()
	d2.Shuffle(rng.Seeded(1))
	a.Equal(d.HashCode(), d2.HashCode())

	// a different seed produces a different permutation
	d3 := New()
	d3.Shuffle(rng.Seeded(2))
	a.NotEqual(d.HashCode(), d3.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New()
	first := d.Cards[0]

	card, err := d.Draw()
	a.NoError(err)
	a.True(first.Equal(card))
	a.Equal(51, d.CardsLeft())

	d.Cards = Hand{}
	card, err = d.Draw()
	a.Equal(ErrDeckExhausted, err)
	a.Nil(card)
}

func TestDeck_Deal(t *testing.T) {
	a := assert.New(t)

	d := New()
	cards, err := d.Deal(3)
	a.NoError(err)
	a.Equal(3, len(cards))
	a.Equal(49, d.CardsLeft())

	// an over-sized deal must fail without consuming any cards
	cards, err = d.Deal(50)
	a.Equal(ErrDeckExhausted, err)
	a.Nil(cards)
	a.Equal(49, d.CardsLeft())

	a.True(d.CanDraw(49))
	a.False(d.CanDraw(50))
}

func TestDeck_Clone(t *testing.T) {
	a := assert.New(t)

	d := New()
	c := d.Clone()

	a.Equal(d.HashCode(), c.HashCode())

	// mutating the clone must not affect the original
	_, _ = c.Deal(5)
	a.Equal(52, d.CardsLeft())
	a.Equal(47, c.CardsLeft())

	c2 := d.Clone()
	c2.Cards[0].FaceUp = true
	a.False(d.Cards[0].FaceUp)
}
