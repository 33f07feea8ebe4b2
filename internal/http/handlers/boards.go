package handlers

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cribbage-board/internal/club"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

type boardRequest struct {
	RomanNumber  string `json:"roman_number"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	WoodType     string `json:"wood_type"`
	MaterialType string `json:"material_type"`
	InCollection *bool  `json:"in_collection"`
	IsGift       bool   `json:"is_gift"`
	GiftedTo     string `json:"gifted_to"`
	GiftedFrom   string `json:"gifted_from"`
}

// toBoard builds the board record. Boards are in the collection unless stated otherwise.
func (req boardRequest) toBoard(id string) (*cribbage.Board, error) {
	if req.Date != "" {
		if _, err := time.Parse(cribbage.DateLayout, req.Date); err != nil {
			return nil, err
		}
	}
	inCollection := true
	if req.InCollection != nil {
		inCollection = *req.InCollection
	}
	return &cribbage.Board{
		ID:           id,
		RomanNumber:  req.RomanNumber,
		Date:         req.Date,
		Description:  req.Description,
		WoodType:     req.WoodType,
		MaterialType: req.MaterialType,
		InCollection: inCollection,
		IsGift:       req.IsGift,
		GiftedTo:     req.GiftedTo,
		GiftedFrom:   req.GiftedFrom,
	}, nil
}

func ListBoardsHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := cribbage.BoardFilter{
			WoodType:     q.Get("wood_type"),
			MaterialType: q.Get("material_type"),
			Search:       q.Get("search"),
			DateFrom:     q.Get("date_from"),
			DateTo:       q.Get("date_to"),
		}
		var err error
		if filter.InCollection, err = optionalBool(r, "in_collection"); err != nil {
			http.Error(w, "Invalid in_collection parameter", http.StatusBadRequest)
			return
		}
		if filter.IsGift, err = optionalBool(r, "is_gift"); err != nil {
			http.Error(w, "Invalid is_gift parameter", http.StatusBadRequest)
			return
		}

		boards, err := store.ListBoards(r.Context(), filter)
		if err != nil {
			writeError(w, err, "Failed to list boards")
			return
		}
		writeJSON(w, http.StatusOK, boards)
	}
}

func CreateBoardHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req boardRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		board, err := req.toBoard("")
		if err != nil {
			http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if err := store.AddBoard(r.Context(), board); err != nil {
			writeError(w, err, "Failed to add board")
			return
		}
		writeJSON(w, http.StatusCreated, board)
	}
}

func GetBoardHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := store.GetBoard(r.Context(), pathID(r))
		if err != nil {
			writeError(w, err, "Failed to get board")
			return
		}
		writeJSON(w, http.StatusOK, board)
	}
}

func UpdateBoardHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req boardRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		board, err := req.toBoard(pathID(r))
		if err != nil {
			http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if err := store.UpdateBoard(r.Context(), board); err != nil {
			writeError(w, err, "Failed to update board")
			return
		}
		writeJSON(w, http.StatusOK, board)
	}
}

func DeleteBoardHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		if err := store.DeleteBoard(r.Context(), id); err != nil {
			writeError(w, err, "Failed to delete board")
			return
		}
		log.Info("Deleted board", "boardID", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
