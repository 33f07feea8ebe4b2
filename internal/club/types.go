package club

import (
	"database/sql"
	"sync"

	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

// store handles all database operations for the collection.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Snapshot is a consistent read of the whole collection. Games are in log order.
type Snapshot struct {
	Players []cribbage.Player
	Boards  []cribbage.Board
	Games   []cribbage.Game
}

// PlayerSuggestion is a candidate player for a free-text name lookup.
type PlayerSuggestion struct {
	Player     cribbage.Player
	Confidence float64
	Reasons    []string
}
