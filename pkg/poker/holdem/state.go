package holdem

import (
	"errors"

	"headsupholdem-server/pkg/deck"
)

// NoCurrentPlayer is the CurrentPlayerIndex value when no player is to act
const NoCurrentPlayer = -1

// Options configures the forced bets for a hand
type Options struct {
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
}

// DefaultOptions returns the default blind structure
func DefaultOptions() Options {
	return Options{
		SmallBlind: 25,
		BigBlind:   50,
	}
}

// Validate ensures the blind structure is playable
func (o Options) Validate() error {
	if o.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if o.BigBlind < o.SmallBlind {
		return errors.New("big blind must be >= small blind")
	}

	return nil
}

// Winner identifies the player a pot was awarded to
type Winner struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GameState is the full authoritative state of a single hand. It is created
// by StartHand, transitioned only through ApplyAction, and replaced when the
// next hand starts. The pot holds completed rounds only; live bets sit in
// each player's CurrentBet until the round closes
type GameState struct {
	Players            []*Player  `json:"players"`
	CommunityCards     deck.Hand  `json:"communityCards"`
	Pot                int        `json:"pot"`
	CurrentPlayerIndex int        `json:"currentPlayerIndex"`
	DealerIndex        int        `json:"dealerIndex"`
	Phase              Phase      `json:"phase"`
	CurrentBet         int        `json:"currentBet"`
	MinRaise           int        `json:"minRaise"`
	Deck               *deck.Deck `json:"-"`
	Winner             *Winner    `json:"winner,omitempty"`
	WinningHandName    string     `json:"winningHandName,omitempty"`
	Options            Options    `json:"options"`
}

// Clone returns a deep clone of the state
func (s *GameState) Clone() *GameState {
	cp := *s

	cp.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		cp.Players[i] = p.Clone()
	}

	cp.CommunityCards = s.CommunityCards.Clone()
	cp.Deck = s.Deck.Clone()

	if s.Winner != nil {
		w := *s.Winner
		cp.Winner = &w
	}

	return &cp
}

// CurrentPlayer returns the player whose turn it is, or nil
func (s *GameState) CurrentPlayer() *Player {
	if s.CurrentPlayerIndex == NoCurrentPlayer {
		return nil
	}

	return s.Players[s.CurrentPlayerIndex]
}

func (s *GameState) playerIndex(playerID int64) int {
	for i, p := range s.Players {
		if p.ID == playerID {
			return i
		}
	}

	return -1
}

func (s *GameState) countNotFolded() int {
	count := 0
	for _, p := range s.Players {
		if !p.Folded {
			count++
		}
	}

	return count
}

func (s *GameState) countCanAct() int {
	count := 0
	for _, p := range s.Players {
		if p.CanAct() {
			count++
		}
	}

	return count
}

// roundComplete returns true when every player who can still act has acted
// and has matched the table bet
func (s *GameState) roundComplete() bool {
	for _, p := range s.Players {
		if !p.CanAct() {
			continue
		}

		if !p.HasActed || p.CurrentBet != s.CurrentBet {
			return false
		}
	}

	return true
}

// nextActorIndex returns the first seat at or after start that can act,
// scanning at most one full lap, or NoCurrentPlayer
func (s *GameState) nextActorIndex(start int) int {
	n := len(s.Players)
	for i := 0; i < n; i++ {
		index := (start + i) % n
		if s.Players[index].CanAct() {
			return index
		}
	}

	return NoCurrentPlayer
}
