package holdem

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"headsupholdem-server/internal/rng"
	"headsupholdem-server/pkg/deck"
)

// StartHand begins a new hand at preflop: shuffles a fresh deck, deals two
// hole cards to each player, posts the blinds, and hands the turn to the
// small blind (the dealer acts first preflop in heads-up play).
// Pass previousDealerIndex = -1 for the very first hand.
func StartHand(logger logrus.FieldLogger, players []*Player, previousDealerIndex int, opts Options, g rng.Generator) (*GameState, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	funded := 0
	for _, p := range players {
		if p.Chips > 0 {
			funded++
		}
	}

	if funded < 2 {
		return nil, ErrInsufficientPlayers
	}

	n := len(players)
	dealerIndex := 0
	if previousDealerIndex >= 0 {
		dealerIndex = (previousDealerIndex + 1) % n
	}

	d := deck.New()
	d.Shuffle(g)

	state := &GameState{
		Players:        make([]*Player, n),
		CommunityCards: make(deck.Hand, 0, 5),
		DealerIndex:    dealerIndex,
		Phase:          PhasePreFlop,
		MinRaise:       opts.BigBlind,
		Deck:           d,
		Options:        opts,
	}

	// seats are fixed for the hand; the engine owns its own copies
	for i, p := range players {
		seat := &Player{
			ID:        p.ID,
			Name:      p.Name,
			Chips:     p.Chips,
			HoleCards: make(deck.Hand, 0, 2),
			Connected: p.Connected,
		}

		// a seat without chips sits the hand out
		if seat.Chips == 0 {
			seat.Folded = true
		}

		state.Players[i] = seat
	}

	for i := 0; i < 2; i++ {
		for _, p := range state.Players {
			if p.Folded {
				continue
			}

			card, err := state.Deck.Draw()
			if err != nil {
				return nil, err
			}

			p.HoleCards.AddCard(card)
		}
	}

	smallBlind := state.Players[dealerIndex]
	bigBlind := state.Players[(dealerIndex+1)%n]
	smallBlind.commit(opts.SmallBlind)
	bigBlind.commit(opts.BigBlind)

	// the table bet is the full big blind even when it was posted short
	state.CurrentBet = opts.BigBlind

	logger.WithFields(logrus.Fields{
		"dealerIndex": dealerIndex,
		"players":     n,
	}).Debug("hand started")

	// the blinds may have put both stacks all-in before anyone acts; with
	// even one live seat left the round still has to be played out
	index := state.nextActorIndex(dealerIndex)
	if index == NoCurrentPlayer {
		if err := state.fastForward(); err != nil {
			return nil, err
		}

		return state, nil
	}

	state.CurrentPlayerIndex = index
	return state, nil
}

// ApplyAction validates the action and returns the transitioned state. The
// input state is never mutated, so a failed call leaves it exactly as it was
func ApplyAction(state *GameState, playerID int64, act Action, amount int) (*GameState, error) {
	if !act.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrIllegalAction, act)
	}

	if state.playerIndex(playerID) < 0 {
		return nil, ErrUnknownPlayer
	}

	current := state.CurrentPlayer()
	if state.Phase == PhaseShowdown || current == nil || current.ID != playerID {
		return nil, ErrNotYourTurn
	}

	next := state.Clone()
	player := next.CurrentPlayer()

	switch act {
	case ActionFold:
		player.Folded = true
		player.HasActed = true
	case ActionCheck:
		if player.CurrentBet != next.CurrentBet {
			return nil, fmt.Errorf("%w: cannot check while facing a bet", ErrIllegalAction)
		}

		player.HasActed = true
	case ActionCall:
		player.commit(next.CurrentBet - player.CurrentBet)
		player.HasActed = true
	case ActionRaise:
		if err := next.applyRaise(player, amount); err != nil {
			return nil, err
		}
	case ActionAllIn:
		next.applyBetTo(player, player.TotalBet())
	}

	if err := next.resolveAfterAction(); err != nil {
		return nil, err
	}

	return next, nil
}

// applyRaise raises the table bet to a target total. With no amount given the
// target is a minimum raise. The target is capped at the player's stack; a
// short target is only legal when it puts the player all-in
func (s *GameState) applyRaise(player *Player, amount int) error {
	target := amount
	if target == 0 {
		target = s.CurrentBet + s.MinRaise
	}

	if target > player.TotalBet() {
		target = player.TotalBet()
	}

	if target <= s.CurrentBet {
		return fmt.Errorf("%w: raise must exceed the current bet of %d", ErrInvalidRaiseAmount, s.CurrentBet)
	}

	if target < s.CurrentBet+s.MinRaise && target != player.TotalBet() {
		return fmt.Errorf("%w: raise must be to at least %d", ErrInvalidRaiseAmount, s.CurrentBet+s.MinRaise)
	}

	s.applyBetTo(player, target)
	return nil
}

// applyBetTo commits the player up to a total bet. If that total exceeds the
// table bet it counts as a raise: the minimum raise grows and every other
// live player must act again
func (s *GameState) applyBetTo(player *Player, target int) {
	player.commit(target - player.CurrentBet)
	player.HasActed = true

	if target > s.CurrentBet {
		if raisedBy := target - s.CurrentBet; raisedBy > s.MinRaise {
			s.MinRaise = raisedBy
		}

		s.CurrentBet = target

		for _, p := range s.Players {
			if p != player && p.CanAct() {
				p.HasActed = false
			}
		}
	}
}

// resolveAfterAction decides what follows a successfully applied action:
// end the hand, close the betting round, or pass the turn
func (s *GameState) resolveAfterAction() error {
	if s.countNotFolded() == 1 {
		s.resolveWinner()
		return nil
	}

	if s.roundComplete() {
		// with everyone live all-in there is no more betting to be had
		if s.countCanAct() <= 1 {
			return s.fastForward()
		}

		return s.advancePhase()
	}

	s.CurrentPlayerIndex = s.nextActorIndex((s.CurrentPlayerIndex + 1) % len(s.Players))
	return nil
}

// advancePhase sweeps the round's bets into the pot, burns a card, deals the
// next street face-up, and recomputes the first to act
func (s *GameState) advancePhase() error {
	s.sweepBets()

	if s.Phase == PhaseRiver {
		s.resolveWinner()
		return nil
	}

	s.Phase++
	if err := s.dealCommunity(); err != nil {
		return err
	}

	for _, p := range s.Players {
		if p.CanAct() {
			p.HasActed = false
		}
	}

	s.CurrentBet = 0
	s.MinRaise = s.Options.BigBlind

	// first to act is the first live seat after the dealer
	index := s.nextActorIndex((s.DealerIndex + 1) % len(s.Players))
	if index == NoCurrentPlayer {
		return s.fastForward()
	}

	s.CurrentPlayerIndex = index

	logrus.WithFields(logrus.Fields{
		"phase":     s.Phase.String(),
		"community": s.CommunityCards.String(),
	}).Debug("phase advanced")

	return nil
}

// fastForward runs out the remaining streets without further betting and
// goes straight to showdown
func (s *GameState) fastForward() error {
	s.sweepBets()
	s.CurrentPlayerIndex = NoCurrentPlayer

	for s.Phase < PhaseRiver {
		s.Phase++
		if err := s.dealCommunity(); err != nil {
			return err
		}
	}

	s.resolveWinner()
	return nil
}

// dealCommunity burns the top card and deals the current phase's street
func (s *GameState) dealCommunity() error {
	if _, err := s.Deck.Draw(); err != nil {
		return err
	}

	cards, err := s.Deck.Deal(s.Phase.communityCardCount())
	if err != nil {
		return err
	}

	for _, card := range cards {
		card.FaceUp = true
		s.CommunityCards.AddCard(card)
	}

	return nil
}

// sweepBets collects every outstanding bet into the pot
func (s *GameState) sweepBets() {
	for _, p := range s.Players {
		s.Pot += p.CurrentBet
		p.CurrentBet = 0
	}

	s.CurrentBet = 0
}

// LegalActions returns the actions the player could take right now, or nil
// if it is not their turn
func LegalActions(state *GameState, playerID int64) []Action {
	player := state.CurrentPlayer()
	if player == nil || player.ID != playerID {
		return nil
	}

	actions := make([]Action, 0, 4)
	if player.CurrentBet == state.CurrentBet {
		actions = append(actions, ActionCheck)
	} else {
		actions = append(actions, ActionCall)
	}

	if player.TotalBet() > state.CurrentBet {
		actions = append(actions, ActionRaise, ActionAllIn)
	} else {
		actions = append(actions, ActionAllIn)
	}

	return append(actions, ActionFold)
}
