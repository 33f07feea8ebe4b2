package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cribbage-board/internal/club"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
	"github.com/mauv0809/cribbage-board/internal/processor"
)

type playerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func ListPlayersHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := store.GetAllPlayers(r.Context())
		if err != nil {
			writeError(w, err, "Failed to get players")
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func CreatePlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		player := &cribbage.Player{FirstName: req.FirstName, LastName: req.LastName}
		if err := store.AddPlayer(r.Context(), player); err != nil {
			writeError(w, err, "Failed to add player")
			return
		}
		writeJSON(w, http.StatusCreated, player)
	}
}

func GetPlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := store.GetPlayer(r.Context(), pathID(r))
		if err != nil {
			writeError(w, err, "Failed to get player")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

func UpdatePlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		player := &cribbage.Player{ID: pathID(r), FirstName: req.FirstName, LastName: req.LastName}
		if err := store.UpdatePlayer(r.Context(), player); err != nil {
			writeError(w, err, "Failed to update player")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

func DeletePlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		if err := store.DeletePlayer(r.Context(), id); err != nil {
			writeError(w, err, "Failed to delete player")
			return
		}
		log.Info("Deleted player", "playerID", id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func PlayerProfileHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := proc.Profile(r.Context(), pathID(r))
		if err != nil {
			writeError(w, err, "Failed to build player profile")
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}
