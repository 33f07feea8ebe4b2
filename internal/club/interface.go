package club

import (
	"context"

	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

// ClubStore defines the interface for interacting with the collection's data.
type ClubStore interface {
	AddPlayer(ctx context.Context, player *cribbage.Player) error
	UpdatePlayer(ctx context.Context, player *cribbage.Player) error
	GetPlayer(ctx context.Context, playerID string) (*cribbage.Player, error)
	GetAllPlayers(ctx context.Context) ([]cribbage.Player, error)
	DeletePlayer(ctx context.Context, playerID string) error

	AddBoard(ctx context.Context, board *cribbage.Board) error
	UpdateBoard(ctx context.Context, board *cribbage.Board) error
	GetBoard(ctx context.Context, boardID string) (*cribbage.Board, error)
	ListBoards(ctx context.Context, filter cribbage.BoardFilter) ([]cribbage.Board, error)
	DeleteBoard(ctx context.Context, boardID string) error

	RecordGame(ctx context.Context, game *cribbage.Game) error
	UpdateGame(ctx context.Context, game *cribbage.Game) error
	GetGame(ctx context.Context, gameID string) (*cribbage.Game, error)
	GetAllGames(ctx context.Context) ([]cribbage.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	Snapshot(ctx context.Context) (*Snapshot, error)
}
