package holdem

import (
	"github.com/sirupsen/logrus"

	"headsupholdem-server/pkg/poker/handeval"
)

// WinningHandForfeit is recorded when the hand ends because all other players folded
const WinningHandForfeit = "forfeit"

// resolveWinner terminates the hand: collects outstanding bets, awards the
// pot, and moves the state to showdown. With one player left it is a forfeit
// win; otherwise the best hand takes the pot, and tied hands split it evenly
// with the odd chip going to the earliest eligible seat after the dealer
func (s *GameState) resolveWinner() {
	s.sweepBets()
	s.CurrentPlayerIndex = NoCurrentPlayer

	if s.countNotFolded() == 1 {
		s.awardForfeit()
	} else {
		s.awardShowdown()
	}

	s.Pot = 0
	s.Phase = PhaseShowdown
}

func (s *GameState) awardForfeit() {
	for _, p := range s.Players {
		if p.Folded {
			continue
		}

		p.Chips += s.Pot
		s.Winner = &Winner{ID: p.ID, Name: p.Name}
		s.WinningHandName = WinningHandForfeit

		logrus.WithFields(logrus.Fields{
			"player": p.ID,
			"pot":    s.Pot,
		}).Debug("hand won by forfeit")
		return
	}
}

func (s *GameState) awardShowdown() {
	type contender struct {
		player *Player
		result *handeval.Result
	}

	var best *handeval.Result
	var winners []*contender

	// seats are considered in order after the dealer so the first tied
	// winner is also the one owed any odd chip
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		p := s.Players[(s.DealerIndex+i)%n]
		if p.Folded {
			continue
		}

		p.revealHoleCards()

		result := handeval.Evaluate(p.HoleCards, s.CommunityCards)
		switch {
		case best == nil || handeval.Compare(result, best) > 0:
			best = result
			winners = []*contender{{player: p, result: result}}
		case handeval.Compare(result, best) == 0:
			winners = append(winners, &contender{player: p, result: result})
		}
	}

	share := s.Pot / len(winners)
	remainder := s.Pot % len(winners)

	for _, w := range winners {
		w.player.Chips += share
	}
	winners[0].player.Chips += remainder

	first := winners[0].player
	s.Winner = &Winner{ID: first.ID, Name: first.Name}
	s.WinningHandName = best.Name()

	logrus.WithFields(logrus.Fields{
		"player":  first.ID,
		"pot":     s.Pot,
		"hand":    best.Name(),
		"winners": len(winners),
	}).Debug("hand won at showdown")
}

func (p *Player) revealHoleCards() {
	for _, card := range p.HoleCards {
		card.FaceUp = true
	}
}
