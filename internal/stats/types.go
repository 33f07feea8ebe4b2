package stats

import "github.com/mauv0809/cribbage-board/internal/cribbage"

// PlayerStats is the aggregate record for one player over the game log.
type PlayerStats struct {
	Wins                 int      `json:"wins"`
	Losses               int      `json:"losses"`
	TotalGames           int      `json:"total_games"`
	WinPercentage        float64  `json:"win_percentage"`
	SkunksGiven          int      `json:"skunks_given"`
	SkunksReceived       int      `json:"skunks_received"`
	DoubleSkunksGiven    int      `json:"double_skunks_given"`
	DoubleSkunksReceived int      `json:"double_skunks_received"`
	AvgWinningScore      float64  `json:"avg_winning_score"`
	AvgLosingScore       float64  `json:"avg_losing_score"`
	RecentForm           string   `json:"recent_form"`
	RecentWins           int      `json:"recent_wins"`
	RecentGames          int      `json:"recent_games"`
	CurrentStreak        string   `json:"current_streak"`
	FavoriteOpponent     *Rivalry `json:"favorite_opponent"`
}

// SkunksDelivered counts every skunk tier the player handed out.
func (s PlayerStats) SkunksDelivered() int {
	return s.SkunksGiven + s.DoubleSkunksGiven
}

// Rivalry is a player's head-to-head record against one opponent.
// It backs both the nemesis and the favorite opponent.
type Rivalry struct {
	OpponentID      string  `json:"opponent_id"`
	OpponentName    string  `json:"opponent_name,omitempty"`
	LossesToThem    int     `json:"losses_to_them"`
	WinsAgainstThem int     `json:"wins_against_them"`
	TotalGames      int     `json:"total_games"`
	WinRateAgainst  float64 `json:"win_rate_against"`
}

// LeaderboardEntry is one ranked player.
type LeaderboardEntry struct {
	PlayerID  string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Name      string `json:"name"`
	PlayerStats
}

// Rankings are the side orderings of the leaderboard view.
type Rankings struct {
	WinRate      []LeaderboardEntry `json:"win_rate"`
	MostWins     []LeaderboardEntry `json:"most_wins"`
	MostGames    []LeaderboardEntry `json:"most_games"`
	SkunkMasters []LeaderboardEntry `json:"skunk_masters"`
}

// Position is a player's place on the win-rate leaderboard.
type Position struct {
	Position      int     `json:"position"`
	TotalPlayers  int     `json:"total_players"`
	WinPercentage float64 `json:"win_percentage"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
}

// GameLine is a game seen from one player's side.
type GameLine struct {
	Game         cribbage.Game `json:"game"`
	OpponentID   string        `json:"opponent_id"`
	OpponentName string        `json:"opponent_name"`
	Result       string        `json:"result"`
}

// Profile gathers everything shown for a single player.
type Profile struct {
	Player      cribbage.Player `json:"player"`
	Stats       PlayerStats     `json:"stats"`
	Nemesis     *Rivalry        `json:"nemesis"`
	Position    *Position       `json:"leaderboard_position"`
	RecentGames []GameLine      `json:"recent_games"`
}

// Summary holds collection-wide totals.
type Summary struct {
	Boards             int `json:"boards"`
	BoardsInCollection int `json:"boards_in_collection"`
	BoardsGifted       int `json:"boards_gifted"`
	Players            int `json:"players"`
	ActivePlayers      int `json:"active_players"`
	Games              int `json:"games"`
	Skunks             int `json:"skunks"`
	DoubleSkunks       int `json:"double_skunks"`
}
