package holdem

import (
	"headsupholdem-server/pkg/deck"
)

// PlayerView is a player as seen by a particular viewer
type PlayerView struct {
	ID         int64     `json:"id"`
	Name       string    `json:"displayName"`
	Chips      int       `json:"chips"`
	HoleCards  deck.Hand `json:"holeCards"`
	CurrentBet int       `json:"currentBet"`
	Folded     bool      `json:"folded"`
	AllIn      bool      `json:"isAllIn"`
	Connected  bool      `json:"connected"`
}

// View is a read-only projection of a hand for one viewer. The remaining
// deck is never part of it
type View struct {
	Players            []*PlayerView `json:"players"`
	CommunityCards     deck.Hand     `json:"communityCards"`
	Pot                int           `json:"pot"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
	DealerIndex        int           `json:"dealerIndex"`
	Phase              Phase         `json:"phase"`
	CurrentBet         int           `json:"currentBet"`
	MinRaise           int           `json:"minRaise"`
	Winner             *Winner       `json:"winner,omitempty"`
	WinningHandName    string        `json:"winningHandName,omitempty"`
	LegalActions       []Action      `json:"legalActions,omitempty"`
}

// ProjectView derives the state as the viewer may see it. Hole cards stay
// face-down placeholders unless they belong to the viewer or the hand has
// reached showdown. The same state and viewer always yield the same view
func ProjectView(state *GameState, viewerID int64) *View {
	players := make([]*PlayerView, len(state.Players))
	for i, p := range state.Players {
		holeCards := make(deck.Hand, len(p.HoleCards))
		for j, card := range p.HoleCards {
			if p.ID == viewerID || state.Phase == PhaseShowdown {
				shown := card.Clone()
				shown.FaceUp = true
				holeCards[j] = shown
			} else {
				holeCards[j] = &deck.Card{}
			}
		}

		players[i] = &PlayerView{
			ID:         p.ID,
			Name:       p.Name,
			Chips:      p.Chips,
			HoleCards:  holeCards,
			CurrentBet: p.CurrentBet,
			Folded:     p.Folded,
			AllIn:      p.AllIn,
			Connected:  p.Connected,
		}
	}

	return &View{
		Players:            players,
		CommunityCards:     state.CommunityCards.Clone(),
		Pot:                state.Pot,
		CurrentPlayerIndex: state.CurrentPlayerIndex,
		DealerIndex:        state.DealerIndex,
		Phase:              state.Phase,
		CurrentBet:         state.CurrentBet,
		MinRaise:           state.MinRaise,
		Winner:             state.Winner,
		WinningHandName:    state.WinningHandName,
		LegalActions:       LegalActions(state, viewerID),
	}
}
