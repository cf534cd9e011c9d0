package holdem

import (
	"headsupholdem-server/pkg/deck"
)

// Player is a seat in a hand. ID is stable across hands; everything else is
// per-hand state owned by the engine
type Player struct {
	ID         int64     `json:"id"`
	Name       string    `json:"displayName"`
	Chips      int       `json:"chips"`
	HoleCards  deck.Hand `json:"holeCards"`
	CurrentBet int       `json:"currentBet"`
	Folded     bool      `json:"folded"`
	AllIn      bool      `json:"isAllIn"`
	HasActed   bool      `json:"hasActed"`
	Connected  bool      `json:"connected"`
}

// CanAct returns true if the player may still act this hand
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// TotalBet is the largest total bet the player can have this round
func (p *Player) TotalBet() int {
	return p.CurrentBet + p.Chips
}

// commit moves up to amount from the player's chips into their current bet
// and returns how much actually moved. A negative amount moves nothing; chips
// never flow back out of a bet. A player whose chips hit zero is all-in
func (p *Player) commit(amount int) int {
	if amount < 0 {
		amount = 0
	}

	if amount > p.Chips {
		amount = p.Chips
	}

	p.Chips -= amount
	p.CurrentBet += amount

	if p.Chips == 0 {
		p.AllIn = true
	}

	return amount
}

// Clone returns a deep clone of the player
func (p *Player) Clone() *Player {
	cp := *p
	cp.HoleCards = p.HoleCards.Clone()

	return &cp
}
