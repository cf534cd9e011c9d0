package mux

import (
	"net/http"
	"strconv"

	gmux "github.com/gorilla/mux"

	"headsupholdem-server/internal/config"
	"headsupholdem-server/pkg/poker/holdem"
)

type createRoomRequest struct {
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
}

type createRoomResponse struct {
	Code string `json:"code"`
}

type roomResponse struct {
	Code string       `json:"code"`
	View *holdem.View `json:"view"`
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := config.Instance()
		opts := holdem.Options{
			SmallBlind: cfg.Game.SmallBlind,
			BigBlind:   cfg.Game.BigBlind,
		}

		if r.ContentLength > 0 {
			var payload createRoomRequest
			if !decodeRequest(w, r, &payload) {
				return
			}

			if payload.SmallBlind > 0 {
				opts.SmallBlind = payload.SmallBlind
			}

			if payload.BigBlind > 0 {
				opts.BigBlind = payload.BigBlind
			}
		}

		if err := opts.Validate(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		rm := m.registry.CreateRoom(opts)
		writeJSON(w, http.StatusCreated, createRoomResponse{Code: rm.Code()})
	}
}

func (m *Mux) getRoomCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := m.registry.Room(gmux.Vars(r)["code"])
		if rm == nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		// unauthenticated peeks get the spectator projection
		var viewerID int64
		if raw := r.FormValue("playerId"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			viewerID = id
		}

		resp := roomResponse{Code: rm.Code()}
		if state := rm.State(); state != nil {
			resp.View = holdem.ProjectView(state, viewerID)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
