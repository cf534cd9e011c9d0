package room

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"

	"headsupholdem-server/internal/rng"
	"headsupholdem-server/pkg/poker/holdem"
)

type fakeSubscriber struct {
	id     int64
	mu     sync.Mutex
	events []*Event
}

func (f *fakeSubscriber) PlayerID() int64 {
	return f.id
}

func (f *fakeSubscriber) Send(event *Event) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return true
}

func (f *fakeSubscriber) lastView() *holdem.View {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.events) - 1; i >= 0; i-- {
		if f.events[i].View != nil {
			return f.events[i].View
		}
	}

	return nil
}

func (f *fakeSubscriber) lastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.events) - 1; i >= 0; i-- {
		if f.events[i].Key == "error" {
			return f.events[i].Message
		}
	}

	return ""
}

func setupRoom(t *testing.T, clock quartz.Clock, timeout time.Duration) *Room {
	t.Helper()
	rm := newRoom("test-room", holdem.DefaultOptions(), clock, timeout, nil)
	rm.random = rng.Seeded(1)
	rm.start()
	t.Cleanup(rm.Close)
	return rm
}

func TestRoom_Join(t *testing.T) {
	a := assert.New(t)
	rm := setupRoom(t, quartz.NewMock(t), time.Minute)

	a.NoError(rm.Join(1, "alice", 1000))
	a.NoError(rm.Join(2, "bob", 1000))
	a.Equal(ErrRoomFull, rm.Join(3, "carol", 1000))

	// a seated player can always rejoin
	a.NoError(rm.Join(1, "alice", 1000))
}

func TestRoom_Join_duringHand(t *testing.T) {
	a := assert.New(t)
	rm := newRoom("test-room", holdem.Options{SmallBlind: 25, BigBlind: 50}, quartz.NewMock(t), time.Minute, nil)
	rm.seats = append(rm.seats, &holdem.Player{ID: 1, Name: "alice", Chips: 1000, Connected: true})
	rm.random = rng.Seeded(1)
	rm.start()
	t.Cleanup(rm.Close)

	a.NoError(rm.Join(2, "bob", 1000))
	a.NoError(rm.StartHand())

	a.Equal(ErrHandInProgress, rm.Join(3, "carol", 1000))
	a.NoError(rm.Join(1, "alice", 0))
}

func TestRoom_StartHand(t *testing.T) {
	a := assert.New(t)
	rm := setupRoom(t, quartz.NewMock(t), time.Minute)

	a.NoError(rm.Join(1, "alice", 1000))
	a.Equal(holdem.ErrInsufficientPlayers, rm.StartHand())

	a.NoError(rm.Join(2, "bob", 1000))
	a.NoError(rm.StartHand())
	a.Equal(ErrHandInProgress, rm.StartHand())

	state := rm.State()
	a.NotNil(state)
	a.Equal(holdem.PhasePreFlop, state.Phase)
	a.Equal(0, state.DealerIndex)
	a.Equal(50, state.CurrentBet)
}

func TestRoom_Act(t *testing.T) {
	a := assert.New(t)
	rm := setupRoom(t, quartz.NewMock(t), time.Minute)

	a.Equal(ErrNoActiveHand, rm.Act(1, holdem.ActionFold, 0))

	a.NoError(rm.Join(1, "alice", 1000))
	a.NoError(rm.Join(2, "bob", 1000))
	a.NoError(rm.StartHand())

	// the dealer acts first preflop
	a.ErrorIs(rm.Act(2, holdem.ActionCheck, 0), holdem.ErrNotYourTurn)
	a.NoError(rm.Act(1, holdem.ActionCall, 0))
	a.NoError(rm.Act(2, holdem.ActionCheck, 0))

	state := rm.State()
	a.Equal(holdem.PhaseFlop, state.Phase)
	a.Equal(100, state.Pot)
}

func TestRoom_broadcastPrivacy(t *testing.T) {
	a := assert.New(t)
	rm := setupRoom(t, quartz.NewMock(t), time.Minute)

	alice := &fakeSubscriber{id: 1}
	bob := &fakeSubscriber{id: 2}
	a.NoError(rm.Join(1, "alice", 1000))
	a.NoError(rm.Join(2, "bob", 1000))
	a.NoError(rm.Subscribe(alice))
	a.NoError(rm.Subscribe(bob))

	a.NoError(rm.StartHand())

	aliceView := alice.lastView()
	a.NotNil(aliceView)
	a.True(aliceView.Players[0].HoleCards[0].FaceUp)
	a.Equal(0, aliceView.Players[1].HoleCards[0].Rank)

	bobView := bob.lastView()
	a.True(bobView.Players[1].HoleCards[0].FaceUp)
	a.Equal(0, bobView.Players[0].HoleCards[0].Rank)
}

func TestRoom_subscribeSendsCurrentState(t *testing.T) {
	a := assert.New(t)
	rm := setupRoom(t, quartz.NewMock(t), time.Minute)

	a.NoError(rm.Join(1, "alice", 1000))
	a.NoError(rm.Join(2, "bob", 1000))
	a.NoError(rm.StartHand())

	late := &fakeSubscriber{id: 2}
	a.NoError(rm.Subscribe(late))
	a.NotNil(late.lastView())
}

func TestRoom_turnTimeoutFolds(t *testing.T) {
	a := assert.New(t)
	mock := quartz.NewMock(t)
	rm := setupRoom(t, mock, time.Minute)

	a.NoError(rm.Join(1, "alice", 1000))
	a.NoError(rm.Join(2, "bob", 1000))
	a.NoError(rm.StartHand())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	mock.Advance(time.Minute).MustWait(ctx)

	// alice never acted, so her hand folds and bob takes the pot
	state := rm.State()
	a.Equal(holdem.PhaseShowdown, state.Phase)
	a.True(state.Players[0].Folded)
	a.Equal(int64(2), state.Winner.ID)
	a.Equal(1025, state.Players[1].Chips)
}

func TestRoom_actionRearmsTurnTimer(t *testing.T) {
	a := assert.New(t)
	mock := quartz.NewMock(t)
	rm := setupRoom(t, mock, time.Minute)

	a.NoError(rm.Join(1, "alice", 1000))
	a.NoError(rm.Join(2, "bob", 1000))
	a.NoError(rm.StartHand())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mock.Advance(30 * time.Second).MustWait(ctx)
	a.NoError(rm.Act(1, holdem.ActionCall, 0))

	// the fresh timer belongs to bob now
	mock.Advance(time.Minute).MustWait(ctx)

	state := rm.State()
	a.Equal(holdem.PhaseShowdown, state.Phase)
	a.True(state.Players[1].Folded)
	a.Equal(int64(1), state.Winner.ID)
}

func TestRoom_chipsCarryOver(t *testing.T) {
	a := assert.New(t)
	rm := setupRoom(t, quartz.NewMock(t), time.Minute)

	a.NoError(rm.Join(1, "alice", 1000))
	a.NoError(rm.Join(2, "bob", 1000))
	a.NoError(rm.StartHand())

	// alice folds her small blind
	a.NoError(rm.Act(1, holdem.ActionFold, 0))

	a.NoError(rm.StartHand())
	state := rm.State()
	a.Equal(1, state.DealerIndex)
	a.Equal(975, state.Players[0].Chips+state.Players[0].CurrentBet)
	a.Equal(1025, state.Players[1].Chips+state.Players[1].CurrentBet)
	a.Equal(25, state.Players[1].CurrentBet)
	a.Equal(50, state.Players[0].CurrentBet)
}

func TestRoom_commandFromClient(t *testing.T) {
	a := assert.New(t)
	rm := setupRoom(t, quartz.NewMock(t), time.Minute)

	a.NoError(rm.Join(1, "alice", 1000))
	a.NoError(rm.Join(2, "bob", 1000))

	alice := NewClient(nil, 1, rm)
	alice.ReceivedCommand(&Command{Action: CommandStart})
	a.Equal("", alice.lastErrorEvent())

	alice.ReceivedCommand(&Command{Action: "tango"})
	a.Contains(alice.lastErrorEvent(), "unknown action")

	alice.ReceivedCommand(&Command{Action: "call"})
	state := rm.State()
	a.Equal(50, state.Players[0].CurrentBet)
}

// lastErrorEvent drains the client's send channel and returns the most recent
// error message seen
func (c *Client) lastErrorEvent() string {
	msg := ""
	for {
		select {
		case event := <-c.send:
			if event.Key == "error" {
				msg = event.Message
			}
		default:
			return msg
		}
	}
}

func TestRoom_closesWhenLastSubscriberLeaves(t *testing.T) {
	a := assert.New(t)

	closed := false
	rm := newRoom("test-room", holdem.DefaultOptions(), quartz.NewMock(t), time.Minute, func() {
		closed = true
	})
	rm.start()

	sub := &fakeSubscriber{id: 1}
	a.NoError(rm.Subscribe(sub))
	rm.Unsubscribe(sub)

	a.True(closed)
	a.Equal(ErrRoomClosed, rm.Join(1, "alice", 1000))
	a.Nil(rm.State())
}
