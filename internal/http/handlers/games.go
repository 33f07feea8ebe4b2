package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cribbage-board/internal/club"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
	"github.com/mauv0809/cribbage-board/internal/processor"
)

type gameRequest struct {
	WinnerID    string `json:"winner_id"`
	LoserID     string `json:"loser_id"`
	WinnerScore *int   `json:"winner_score"`
	LoserScore  *int   `json:"loser_score"`
	DatePlayed  string `json:"date_played"`
	BoardID     string `json:"board_id"`
	Notes       string `json:"notes"`
}

// toGame builds the game record, defaulting to a 121-0 score.
func (req gameRequest) toGame(id string) (*cribbage.Game, error) {
	game := &cribbage.Game{
		ID:          id,
		WinnerID:    req.WinnerID,
		LoserID:     req.LoserID,
		WinnerScore: cribbage.WinningScore,
		BoardID:     req.BoardID,
		Notes:       req.Notes,
	}
	if req.WinnerScore != nil {
		game.WinnerScore = *req.WinnerScore
	}
	if req.LoserScore != nil {
		game.LoserScore = *req.LoserScore
	}
	if req.DatePlayed != "" {
		date, err := time.Parse(cribbage.DateLayout, req.DatePlayed)
		if err != nil {
			return nil, err
		}
		game.DatePlayed = date
	}
	return game, nil
}

// writeGameError reports unknown players and boards referenced by a game as bad input.
func writeGameError(w http.ResponseWriter, err error, msg string) {
	if errors.Is(err, cribbage.ErrPlayerNotFound) || errors.Is(err, cribbage.ErrBoardNotFound) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeError(w, err, msg)
}

// ListGamesHandler returns the game log, newest first. ?player= narrows it to one player.
func ListGamesHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := store.GetAllGames(r.Context())
		if err != nil {
			writeError(w, err, "Failed to get games")
			return
		}
		playerID := r.URL.Query().Get("player")
		out := make([]cribbage.Game, 0, len(games))
		for i := len(games) - 1; i >= 0; i-- {
			if playerID == "" || games[i].Involves(playerID) {
				out = append(out, games[i])
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func CreateGameHandler(store club.ClubStore, proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gameRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		game, err := req.toGame("")
		if err != nil {
			http.Error(w, "Invalid date_played, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if err := store.RecordGame(r.Context(), game); err != nil {
			writeGameError(w, err, "Failed to record game")
			return
		}
		if err := proc.GameRecorded(r.Context(), game, IsDryRunFromContext(r)); err != nil {
			// The game is stored; a failed announcement does not fail the request.
			log.Error("Failed to announce recorded game", "error", err, "gameID", game.ID)
		}
		writeJSON(w, http.StatusCreated, game)
	}
}

func GetGameHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, err := store.GetGame(r.Context(), pathID(r))
		if err != nil {
			writeError(w, err, "Failed to get game")
			return
		}
		writeJSON(w, http.StatusOK, game)
	}
}

func UpdateGameHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gameRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		game, err := req.toGame(pathID(r))
		if err != nil {
			http.Error(w, "Invalid date_played, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if err := store.UpdateGame(r.Context(), game); err != nil {
			if errors.Is(err, cribbage.ErrGameNotFound) {
				writeError(w, err, "Failed to update game")
				return
			}
			writeGameError(w, err, "Failed to update game")
			return
		}
		writeJSON(w, http.StatusOK, game)
	}
}

func DeleteGameHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		if err := store.DeleteGame(r.Context(), id); err != nil {
			writeError(w, err, "Failed to delete game")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
