package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"headsupholdem-server/internal/config"
	"headsupholdem-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version       string
	registry      *room.Registry
	startingChips int
}

// NewMux returns a new HTTP mux backed by the given room registry
func NewMux(version string, registry *room.Registry) *Mux {
	this := &Mux{
		Router:        gmux.NewRouter(),
		version:       version,
		registry:      registry,
		startingChips: config.Instance().Game.StartingChips,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())

	rr := r.PathPrefix("/room/{code:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	rr.Methods(http.MethodGet).Path("").Handler(this.getRoomCode())
	rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomCodeWS())

	return this
}
