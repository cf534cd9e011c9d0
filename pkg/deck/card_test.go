package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("2♣", (&Card{Rank: 2, Suit: Clubs}).String())
	a.Equal("10♢", (&Card{Rank: 10, Suit: Diamonds}).String())
	a.Equal("J♡", (&Card{Rank: Jack, Suit: Hearts}).String())
	a.Equal("Q♠", (&Card{Rank: Queen, Suit: Spades}).String())
	a.Equal("K♣", (&Card{Rank: King, Suit: Clubs}).String())
	a.Equal("A♠", (&Card{Rank: Ace, Suit: Spades}).String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card := CardFromString("14s")
	a.Equal(Ace, card.Rank)
	a.Equal(Spades, card.Suit)

	card = CardFromString("2c")
	a.Equal(2, card.Rank)
	a.Equal(Clubs, card.Suit)

	a.Nil(CardFromString(""))
	a.PanicsWithValue("could not parse card: 1x", func() {
		CardFromString("1x")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("2c,10d,14h")
	a.Equal(3, len(cards))
	a.Equal("2c,10d,14h", CardsToString(cards))

	a.Equal(0, len(CardsFromString("")))
}

func TestCard_AceLowRank(t *testing.T) {
	a := assert.New(t)

	a.Equal(1, CardFromString("14s").AceLowRank())
	a.Equal(13, CardFromString("13s").AceLowRank())
	a.Equal(2, CardFromString("2s").AceLowRank())
}

func TestHand(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("2c,3d"))
	hand.AddCard(CardFromString("14s"))

	a.Equal("2c,3d,14s", hand.String())
	a.True(hand.HasCard(CardFromString("3d")))
	a.False(hand.HasCard(CardFromString("3h")))
	a.Equal("2c", CardToString(hand.FirstCard()))
	a.Equal("14s", CardToString(hand.LastCard()))
	a.Equal([]int{2, 3, 14}, hand.Ranks())

	clone := hand.Clone()
	clone[0].FaceUp = true
	a.False(hand[0].FaceUp)
}
