package room

import (
	"errors"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"headsupholdem-server/internal/rng"
	"headsupholdem-server/pkg/poker/holdem"
)

// MaxSeats is the number of players a room seats
const MaxSeats = 2

// room errors, surfaced to the caller that issued the offending request
var (
	ErrRoomClosed     = errors.New("room is closed")
	ErrRoomFull       = errors.New("room is full")
	ErrHandInProgress = errors.New("a hand is in progress")
	ErrNoActiveHand   = errors.New("no hand is in progress")
	ErrNotSeated      = errors.New("player is not seated in this room")
)

// Subscriber receives events from a room. Send must not block; it reports
// whether the event was accepted
type Subscriber interface {
	PlayerID() int64
	Send(event *Event) bool
}

// Event is a message pushed to subscribers
type Event struct {
	Key     string       `json:"key"`
	Room    string       `json:"room"`
	View    *holdem.View `json:"view,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Room hosts a heads-up table. All state behind the run loop belongs to the
// run loop goroutine alone: every mutation is funneled through exec, so
// actions within a room apply one at a time in arrival order while separate
// rooms run fully in parallel
type Room struct {
	code        string
	opts        holdem.Options
	clock       quartz.Clock
	turnTimeout time.Duration
	onClose     func()
	log         logrus.FieldLogger

	exec chan func()
	done chan struct{}

	// run-loop-owned state
	subscribers     map[Subscriber]bool
	seats           []*holdem.Player
	state           *holdem.GameState
	prevDealerIndex int
	random          rng.Generator
	turnTimer       *quartz.Timer
	timerSeq        int
}

func newRoom(code string, opts holdem.Options, clock quartz.Clock, turnTimeout time.Duration, onClose func()) *Room {
	return &Room{
		code:            code,
		opts:            opts,
		clock:           clock,
		turnTimeout:     turnTimeout,
		onClose:         onClose,
		log:             logrus.WithField("room", code),
		exec:            make(chan func(), 256),
		done:            make(chan struct{}),
		subscribers:     make(map[Subscriber]bool),
		seats:           make([]*holdem.Player, 0, MaxSeats),
		prevDealerIndex: -1,
		random:          rng.Crypto{},
	}
}

func (r *Room) start() {
	go r.runLoop()
}

func (r *Room) runLoop() {
	r.log.Debug("room run loop started")
	for {
		select {
		case fn := <-r.exec:
			fn()
		case <-r.done:
			r.log.Debug("room run loop stopped")
			return
		}
	}
}

// Code returns the room's join code
func (r *Room) Code() string {
	return r.code
}

// do runs fn on the run loop and waits for it
func (r *Room) do(fn func()) error {
	ran := make(chan struct{})
	select {
	case r.exec <- func() {
		fn()
		close(ran)
	}:
	case <-r.done:
		return ErrRoomClosed
	}

	select {
	case <-ran:
		return nil
	case <-r.done:
		return ErrRoomClosed
	}
}

func (r *Room) doErr(fn func() error) error {
	var err error
	if doErr := r.do(func() { err = fn() }); doErr != nil {
		return doErr
	}

	return err
}

// Join seats a player, or marks an already-seated player connected again.
// Players cannot take a new seat while a hand is running
func (r *Room) Join(playerID int64, name string, buyIn int) error {
	return r.doErr(func() error {
		for _, seat := range r.seats {
			if seat.ID == playerID {
				seat.Connected = true
				r.log.WithField("player", playerID).Debug("player rejoined")
				return nil
			}
		}

		if r.handInProgress() {
			return ErrHandInProgress
		}

		if len(r.seats) >= MaxSeats {
			return ErrRoomFull
		}

		r.seats = append(r.seats, &holdem.Player{
			ID:        playerID,
			Name:      name,
			Chips:     buyIn,
			Connected: true,
		})

		r.log.WithFields(logrus.Fields{
			"player": playerID,
			"buyIn":  buyIn,
		}).Info("player joined")
		return nil
	})
}

// Subscribe registers an event sink and immediately sends it the current view
func (r *Room) Subscribe(sub Subscriber) error {
	return r.do(func() {
		r.subscribers[sub] = true
		if r.state != nil {
			sub.Send(&Event{
				Key:  "state",
				Room: r.code,
				View: holdem.ProjectView(r.state, sub.PlayerID()),
			})
		}
	})
}

// Unsubscribe removes an event sink and marks the player disconnected. The
// room closes when its last subscriber leaves
func (r *Room) Unsubscribe(sub Subscriber) {
	_ = r.do(func() {
		delete(r.subscribers, sub)
		for _, seat := range r.seats {
			if seat.ID == sub.PlayerID() {
				seat.Connected = false
			}
		}

		if len(r.subscribers) == 0 {
			r.closeLocked()
		}
	})
}

// StartHand deals the next hand, carrying each player's chips over from the
// previous one
func (r *Room) StartHand() error {
	return r.doErr(func() error {
		if r.handInProgress() {
			return ErrHandInProgress
		}

		state, err := holdem.StartHand(r.log, r.seats, r.prevDealerIndex, r.opts, r.random)
		if err != nil {
			return err
		}

		r.state = state
		r.afterStateChange()
		return nil
	})
}

// Act applies a player action to the current hand
func (r *Room) Act(playerID int64, action holdem.Action, amount int) error {
	return r.doErr(func() error {
		return r.applyAction(playerID, action, amount)
	})
}

// applyAction must run on the run loop
func (r *Room) applyAction(playerID int64, action holdem.Action, amount int) error {
	if !r.handInProgress() {
		return ErrNoActiveHand
	}

	next, err := holdem.ApplyAction(r.state, playerID, action, amount)
	if err != nil {
		// a rejected action changes nothing and nothing is broadcast
		return err
	}

	r.state = next
	r.afterStateChange()
	return nil
}

// State returns a deep snapshot of the current hand, or nil
func (r *Room) State() *holdem.GameState {
	var state *holdem.GameState
	_ = r.do(func() {
		if r.state != nil {
			state = r.state.Clone()
		}
	})

	return state
}

// Close shuts the room down
func (r *Room) Close() {
	_ = r.do(r.closeLocked)
}

func (r *Room) closeLocked() {
	select {
	case <-r.done:
		return
	default:
	}

	r.stopTurnTimer()
	close(r.done)

	if r.onClose != nil {
		r.onClose()
	}

	r.log.Info("room closed")
}

func (r *Room) handInProgress() bool {
	return r.state != nil && r.state.Phase != holdem.PhaseShowdown
}

// afterStateChange must run on the run loop after every accepted transition
func (r *Room) afterStateChange() {
	if !r.handInProgress() {
		// terminal state: read the stacks back into the roster so the next
		// hand starts from them
		for _, seat := range r.seats {
			for _, p := range r.state.Players {
				if p.ID == seat.ID {
					seat.Chips = p.Chips
				}
			}
		}

		r.prevDealerIndex = r.state.DealerIndex
	}

	r.rescheduleTurnTimer()
	r.broadcast()
}

func (r *Room) broadcast() {
	for sub := range r.subscribers {
		ok := sub.Send(&Event{
			Key:  "state",
			Room: r.code,
			View: holdem.ProjectView(r.state, sub.PlayerID()),
		})
		if !ok {
			r.log.WithField("player", sub.PlayerID()).Warn("subscriber send buffer full")
		}
	}
}

// rescheduleTurnTimer arms a fold for whoever is on the clock. A timeout is
// just an injected fold action; the engine knows nothing about timers
func (r *Room) rescheduleTurnTimer() {
	r.stopTurnTimer()

	var current *holdem.Player
	if r.handInProgress() {
		current = r.state.CurrentPlayer()
	}

	if current == nil || r.turnTimeout <= 0 {
		return
	}

	r.timerSeq++
	seq := r.timerSeq
	playerID := current.ID

	r.turnTimer = r.clock.AfterFunc(r.turnTimeout, func() {
		_ = r.do(func() {
			// only fold if the turn hasn't moved on since the timer was set
			if seq != r.timerSeq || !r.handInProgress() {
				return
			}

			if current := r.state.CurrentPlayer(); current == nil || current.ID != playerID {
				return
			}

			r.log.WithField("player", playerID).Info("turn timed out, folding")
			if err := r.applyAction(playerID, holdem.ActionFold, 0); err != nil {
				r.log.WithError(err).Error("could not apply timeout fold")
			}
		})
	})
}

func (r *Room) stopTurnTimer() {
	if r.turnTimer != nil {
		r.turnTimer.Stop()
		r.turnTimer = nil
	}
}
