package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

const (
	playerColumns = `id, first_name, last_name, created_at`
	boardColumns  = `id, roman_number, date, description, wood_type, material_type, in_collection, is_gift, gifted_to, gifted_from, created_at`
	gameColumns   = `id, winner_id, loser_id, board_id, winner_score, loser_score, date_played, is_skunk, is_double_skunk, notes, created_at`
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface{ Scan(...any) error }

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

// AddPlayer validates and inserts a player, assigning an id when none is set.
func (s *store) AddPlayer(ctx context.Context, player *cribbage.Player) error {
	if err := player.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	player.FirstName = strings.TrimSpace(player.FirstName)
	player.LastName = strings.TrimSpace(player.LastName)
	player.CreatedAt = now()

	_, err := s.db.ExecContext(ctx, `INSERT INTO players (`+playerColumns+`) VALUES (?, ?, ?, ?)`,
		player.ID, player.FirstName, player.LastName, player.CreatedAt.Unix())
	if err != nil {
		log.Error("Failed to insert player", "error", err, "playerID", player.ID)
		return fmt.Errorf("failed to insert player: %w", err)
	}
	log.Info("Added player", "playerID", player.ID, "name", player.Name())
	return nil
}

// UpdatePlayer replaces the editable fields of an existing player.
func (s *store) UpdatePlayer(ctx context.Context, player *cribbage.Player) error {
	if err := player.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	player.FirstName = strings.TrimSpace(player.FirstName)
	player.LastName = strings.TrimSpace(player.LastName)
	res, err := s.db.ExecContext(ctx, `UPDATE players SET first_name = ?, last_name = ? WHERE id = ?`,
		player.FirstName, player.LastName, player.ID)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if err := expectOneRow(res, cribbage.ErrPlayerNotFound); err != nil {
		return err
	}
	return s.db.QueryRowContext(ctx, `SELECT created_at FROM players WHERE id = ?`, player.ID).Scan(unixTime{&player.CreatedAt})
}

func (s *store) GetPlayer(ctx context.Context, playerID string) (*cribbage.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+playerColumns+` FROM players WHERE id = ?`, playerID)
	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cribbage.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// GetAllPlayers returns every player in the order they were added.
func (s *store) GetAllPlayers(ctx context.Context) ([]cribbage.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return allPlayers(ctx, s.db)
}

// DeletePlayer removes a player that does not appear in any game.
func (s *store) DeletePlayer(ctx context.Context, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var games int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games WHERE winner_id = ? OR loser_id = ?`, playerID, playerID).Scan(&games)
	if err != nil {
		return fmt.Errorf("failed to count player games: %w", err)
	}
	if games > 0 {
		log.Warn("Refusing to delete player with recorded games", "playerID", playerID, "games", games)
		return cribbage.ErrPlayerHasGames
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, playerID)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return expectOneRow(res, cribbage.ErrPlayerNotFound)
}

// AddBoard validates and inserts a board.
func (s *store) AddBoard(ctx context.Context, board *cribbage.Board) error {
	board.Normalize()
	if err := board.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if board.ID == "" {
		board.ID = uuid.NewString()
	}
	board.CreatedAt = now()
	_, err := s.db.ExecContext(ctx, `INSERT INTO boards (`+boardColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		board.ID, board.RomanNumber, board.Date, board.Description, board.WoodType, board.MaterialType,
		board.InCollection, board.IsGift, board.GiftedTo, board.GiftedFrom, board.CreatedAt.Unix())
	if err != nil {
		log.Error("Failed to insert board", "error", err, "boardID", board.ID)
		return fmt.Errorf("failed to insert board: %w", err)
	}
	log.Info("Added board", "boardID", board.ID, "romanNumber", board.RomanNumber)
	return nil
}

// UpdateBoard replaces every editable field of an existing board.
func (s *store) UpdateBoard(ctx context.Context, board *cribbage.Board) error {
	board.Normalize()
	if err := board.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE boards SET roman_number = ?, date = ?, description = ?, wood_type = ?, material_type = ?,
			in_collection = ?, is_gift = ?, gifted_to = ?, gifted_from = ?
		WHERE id = ?`,
		board.RomanNumber, board.Date, board.Description, board.WoodType, board.MaterialType,
		board.InCollection, board.IsGift, board.GiftedTo, board.GiftedFrom, board.ID)
	if err != nil {
		return fmt.Errorf("failed to update board: %w", err)
	}
	if err := expectOneRow(res, cribbage.ErrBoardNotFound); err != nil {
		return err
	}
	return s.db.QueryRowContext(ctx, `SELECT created_at FROM boards WHERE id = ?`, board.ID).Scan(unixTime{&board.CreatedAt})
}

func (s *store) GetBoard(ctx context.Context, boardID string) (*cribbage.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+boardColumns+` FROM boards WHERE id = ?`, boardID)
	board, err := scanBoard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cribbage.ErrBoardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return board, nil
}

// ListBoards returns the boards matching the filter in the order they were added.
func (s *store) ListBoards(ctx context.Context, filter cribbage.BoardFilter) ([]cribbage.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	where, args := boardWhere(filter)
	return listBoards(ctx, s.db, where, args...)
}

// boardWhere builds the WHERE clause for a board filter. LIKE is case-insensitive for ASCII in SQLite.
func boardWhere(filter cribbage.BoardFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if filter.InCollection != nil {
		clauses = append(clauses, "in_collection = ?")
		args = append(args, *filter.InCollection)
	}
	if filter.IsGift != nil {
		clauses = append(clauses, "is_gift = ?")
		args = append(args, *filter.IsGift)
	}
	if filter.WoodType != "" {
		clauses = append(clauses, "wood_type LIKE ?")
		args = append(args, "%"+filter.WoodType+"%")
	}
	if filter.MaterialType != "" {
		clauses = append(clauses, "material_type LIKE ?")
		args = append(args, "%"+filter.MaterialType+"%")
	}
	if filter.Search != "" {
		clauses = append(clauses, "(description LIKE ? OR gifted_to LIKE ? OR gifted_from LIKE ? OR roman_number LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if filter.DateFrom != "" {
		clauses = append(clauses, "date != '' AND date >= ?")
		args = append(args, filter.DateFrom)
	}
	if filter.DateTo != "" {
		clauses = append(clauses, "date != '' AND date <= ?")
		args = append(args, filter.DateTo)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// DeleteBoard removes a board. Games played on it keep their record with no board.
func (s *store) DeleteBoard(ctx context.Context, boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, boardID)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	return expectOneRow(res, cribbage.ErrBoardNotFound)
}

// RecordGame validates a game, derives its skunk flags and appends it to the log.
func (s *store) RecordGame(ctx context.Context, game *cribbage.Game) error {
	if err := game.Validate(); err != nil {
		return err
	}
	game.DeriveSkunkFlags()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkReferences(ctx, tx, game); err != nil {
		return err
	}
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	game.CreatedAt = now()

	_, err = tx.ExecContext(ctx, `INSERT INTO games (`+gameColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		game.ID, game.WinnerID, game.LoserID, nullString(game.BoardID), game.WinnerScore, game.LoserScore,
		game.DatePlayed.Unix(), game.IsSkunk, game.IsDoubleSkunk, game.Notes, game.CreatedAt.Unix())
	if err != nil {
		log.Error("Failed to insert game", "error", err, "gameID", game.ID)
		return fmt.Errorf("failed to insert game: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game: %w", err)
	}
	log.Info("Recorded game", "gameID", game.ID, "winner", game.WinnerID, "loser", game.LoserID,
		"score", fmt.Sprintf("%d-%d", game.WinnerScore, game.LoserScore), "class", game.Classification())
	return nil
}

// UpdateGame replaces a whole game record. Skunk flags are derived again from the new scores.
func (s *store) UpdateGame(ctx context.Context, game *cribbage.Game) error {
	if err := game.Validate(); err != nil {
		return err
	}
	game.DeriveSkunkFlags()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkReferences(ctx, tx, game); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `
		UPDATE games SET winner_id = ?, loser_id = ?, board_id = ?, winner_score = ?, loser_score = ?,
			date_played = ?, is_skunk = ?, is_double_skunk = ?, notes = ?
		WHERE id = ?`,
		game.WinnerID, game.LoserID, nullString(game.BoardID), game.WinnerScore, game.LoserScore,
		game.DatePlayed.Unix(), game.IsSkunk, game.IsDoubleSkunk, game.Notes, game.ID)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	if err := expectOneRow(res, cribbage.ErrGameNotFound); err != nil {
		return err
	}
	if err := tx.QueryRowContext(ctx, `SELECT created_at FROM games WHERE id = ?`, game.ID).Scan(unixTime{&game.CreatedAt}); err != nil {
		return fmt.Errorf("failed to read game: %w", err)
	}
	return tx.Commit()
}

func (s *store) GetGame(ctx context.Context, gameID string) (*cribbage.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE id = ?`, gameID)
	game, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cribbage.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

// GetAllGames returns the game log: by play date, then by the order the games were recorded.
func (s *store) GetAllGames(ctx context.Context) ([]cribbage.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return allGames(ctx, s.db)
}

func (s *store) DeleteGame(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, gameID)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if err := expectOneRow(res, cribbage.ErrGameNotFound); err != nil {
		return err
	}
	log.Info("Deleted game", "gameID", gameID)
	return nil
}

// Snapshot reads players, boards and games inside one transaction.
func (s *store) Snapshot(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer tx.Rollback()

	players, err := allPlayers(ctx, tx)
	if err != nil {
		return nil, err
	}
	boards, err := listBoards(ctx, tx, "")
	if err != nil {
		return nil, err
	}
	games, err := allGames(ctx, tx)
	if err != nil {
		return nil, err
	}
	log.Debug("Took collection snapshot", "players", len(players), "boards", len(boards), "games", len(games))
	return &Snapshot{Players: players, Boards: boards, Games: games}, nil
}

func checkReferences(ctx context.Context, q queryer, game *cribbage.Game) error {
	for _, id := range []string{game.WinnerID, game.LoserID} {
		if !exists(ctx, q, "players", id) {
			return fmt.Errorf("%w: %s", cribbage.ErrPlayerNotFound, id)
		}
	}
	if game.BoardID != "" && !exists(ctx, q, "boards", game.BoardID) {
		return fmt.Errorf("%w: %s", cribbage.ErrBoardNotFound, game.BoardID)
	}
	return nil
}

func exists(ctx context.Context, q queryer, table, id string) bool {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM `+table+` WHERE id = ?`, id).Scan(&one)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error("Failed to check reference", "error", err, "table", table, "id", id)
	}
	return err == nil
}

func allPlayers(ctx context.Context, q queryer) ([]cribbage.Player, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+playerColumns+` FROM players ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []cribbage.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}

func listBoards(ctx context.Context, q queryer, where string, args ...any) ([]cribbage.Board, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+boardColumns+` FROM boards`+where+` ORDER BY created_at, rowid`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	boards := []cribbage.Board{}
	for rows.Next() {
		board, err := scanBoard(rows)
		if err != nil {
			log.Error("Failed to scan board row", "error", err)
			continue
		}
		boards = append(boards, *board)
	}
	return boards, rows.Err()
}

func allGames(ctx context.Context, q queryer) ([]cribbage.Game, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+gameColumns+` FROM games ORDER BY date_played, created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	games := []cribbage.Game{}
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			log.Error("Failed to scan game row", "error", err)
			continue
		}
		games = append(games, *game)
	}
	return games, rows.Err()
}

func scanPlayer(row scanner) (*cribbage.Player, error) {
	var p cribbage.Player
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, unixTime{&p.CreatedAt}); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanBoard(row scanner) (*cribbage.Board, error) {
	var b cribbage.Board
	err := row.Scan(&b.ID, &b.RomanNumber, &b.Date, &b.Description, &b.WoodType, &b.MaterialType,
		&b.InCollection, &b.IsGift, &b.GiftedTo, &b.GiftedFrom, unixTime{&b.CreatedAt})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanGame(row scanner) (*cribbage.Game, error) {
	var (
		g       cribbage.Game
		boardID sql.NullString
	)
	err := row.Scan(&g.ID, &g.WinnerID, &g.LoserID, &boardID, &g.WinnerScore, &g.LoserScore,
		unixTime{&g.DatePlayed}, &g.IsSkunk, &g.IsDoubleSkunk, &g.Notes, unixTime{&g.CreatedAt})
	if err != nil {
		return nil, err
	}
	g.BoardID = boardID.String
	return &g, nil
}

// unixTime scans an INTEGER unix timestamp column into a UTC time.
type unixTime struct{ t *time.Time }

func (u unixTime) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*u.t = time.Unix(v, 0).UTC()
	case nil:
		*u.t = time.Time{}
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
	return nil
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
