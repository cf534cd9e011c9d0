package room

import (
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"headsupholdem-server/pkg/poker/holdem"
)

// Registry is the single owner of every live room. Lookups go through its
// lock; everything inside a room goes through that room's run loop
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*Room

	clock       quartz.Clock
	turnTimeout time.Duration
}

// NewRegistry returns a registry whose rooms run their turn timers on the
// given clock
func NewRegistry(clock quartz.Clock, turnTimeout time.Duration) *Registry {
	return &Registry{
		rooms:       make(map[string]*Room),
		clock:       clock,
		turnTimeout: turnTimeout,
	}
}

// CreateRoom creates and starts a new room
func (r *Registry) CreateRoom(opts holdem.Options) *Room {
	code := uuid.New().String()

	rm := newRoom(code, opts, r.clock, r.turnTimeout, func() {
		r.remove(code)
	})
	rm.start()

	r.mu.Lock()
	r.rooms[code] = rm
	r.mu.Unlock()

	logrus.WithField("room", code).Info("room created")
	return rm
}

// Room returns the room for the given code, or nil
func (r *Registry) Room(code string) *Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rooms[code]
}

// Count returns the number of live rooms
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.rooms)
}

func (r *Registry) remove(code string) {
	r.mu.Lock()
	delete(r.rooms, code)
	r.mu.Unlock()

	logrus.WithField("room", code).Info("room removed")
}
