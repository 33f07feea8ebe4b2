package club

import (
	"context"
	"sync"

	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddPlayerFunc     func(player *cribbage.Player) error
	UpdatePlayerFunc  func(player *cribbage.Player) error
	GetPlayerFunc     func(playerID string) (*cribbage.Player, error)
	GetAllPlayersFunc func() ([]cribbage.Player, error)
	DeletePlayerFunc  func(playerID string) error
	AddBoardFunc      func(board *cribbage.Board) error
	UpdateBoardFunc   func(board *cribbage.Board) error
	GetBoardFunc      func(boardID string) (*cribbage.Board, error)
	ListBoardsFunc    func(filter cribbage.BoardFilter) ([]cribbage.Board, error)
	DeleteBoardFunc   func(boardID string) error
	RecordGameFunc    func(game *cribbage.Game) error
	UpdateGameFunc    func(game *cribbage.Game) error
	GetGameFunc       func(gameID string) (*cribbage.Game, error)
	GetAllGamesFunc   func() ([]cribbage.Game, error)
	DeleteGameFunc    func(gameID string) error
	SnapshotFunc      func() (*Snapshot, error)

	// Call records
	AddPlayerCalls    []cribbage.Player
	DeletePlayerCalls []string
	AddBoardCalls     []cribbage.Board
	DeleteBoardCalls  []string
	RecordGameCalls   []cribbage.Game
	UpdateGameCalls   []cribbage.Game
	DeleteGameCalls   []string
	SnapshotCalls     int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = nil
	m.DeletePlayerCalls = nil
	m.AddBoardCalls = nil
	m.DeleteBoardCalls = nil
	m.RecordGameCalls = nil
	m.UpdateGameCalls = nil
	m.DeleteGameCalls = nil
	m.SnapshotCalls = 0
}

func (m *MockStore) AddPlayer(_ context.Context, player *cribbage.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, *player)
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(player)
	}
	return nil
}

func (m *MockStore) UpdatePlayer(_ context.Context, player *cribbage.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(player)
	}
	return nil
}

func (m *MockStore) GetPlayer(_ context.Context, playerID string) (*cribbage.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return nil, cribbage.ErrPlayerNotFound
}

func (m *MockStore) GetAllPlayers(_ context.Context) ([]cribbage.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return []cribbage.Player{}, nil
}

func (m *MockStore) DeletePlayer(_ context.Context, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, playerID)
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(playerID)
	}
	return nil
}

func (m *MockStore) AddBoard(_ context.Context, board *cribbage.Board) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddBoardCalls = append(m.AddBoardCalls, *board)
	if m.AddBoardFunc != nil {
		return m.AddBoardFunc(board)
	}
	return nil
}

func (m *MockStore) UpdateBoard(_ context.Context, board *cribbage.Board) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(board)
	}
	return nil
}

func (m *MockStore) GetBoard(_ context.Context, boardID string) (*cribbage.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(boardID)
	}
	return nil, cribbage.ErrBoardNotFound
}

func (m *MockStore) ListBoards(_ context.Context, filter cribbage.BoardFilter) ([]cribbage.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListBoardsFunc != nil {
		return m.ListBoardsFunc(filter)
	}
	return []cribbage.Board{}, nil
}

func (m *MockStore) DeleteBoard(_ context.Context, boardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteBoardCalls = append(m.DeleteBoardCalls, boardID)
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(boardID)
	}
	return nil
}

func (m *MockStore) RecordGame(_ context.Context, game *cribbage.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordGameCalls = append(m.RecordGameCalls, *game)
	if m.RecordGameFunc != nil {
		return m.RecordGameFunc(game)
	}
	return nil
}

func (m *MockStore) UpdateGame(_ context.Context, game *cribbage.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateGameCalls = append(m.UpdateGameCalls, *game)
	if m.UpdateGameFunc != nil {
		return m.UpdateGameFunc(game)
	}
	return nil
}

func (m *MockStore) GetGame(_ context.Context, gameID string) (*cribbage.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetGameFunc != nil {
		return m.GetGameFunc(gameID)
	}
	return nil, cribbage.ErrGameNotFound
}

func (m *MockStore) GetAllGames(_ context.Context) ([]cribbage.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllGamesFunc != nil {
		return m.GetAllGamesFunc()
	}
	return []cribbage.Game{}, nil
}

func (m *MockStore) DeleteGame(_ context.Context, gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteGameCalls = append(m.DeleteGameCalls, gameID)
	if m.DeleteGameFunc != nil {
		return m.DeleteGameFunc(gameID)
	}
	return nil
}

func (m *MockStore) Snapshot(_ context.Context) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SnapshotCalls++
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc()
	}
	return &Snapshot{Players: []cribbage.Player{}, Boards: []cribbage.Board{}, Games: []cribbage.Game{}}, nil
}
