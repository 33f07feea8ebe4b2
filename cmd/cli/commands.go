package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var recordGameFlags struct {
	winner      string
	loser       string
	winnerScore int
	loserScore  int
	date        string
	board       string
	notes       string
}

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(recordGameCmd)

	f := recordGameCmd.Flags()
	f.StringVar(&recordGameFlags.winner, "winner", "", "ID of the winning player")
	f.StringVar(&recordGameFlags.loser, "loser", "", "ID of the losing player")
	f.IntVar(&recordGameFlags.winnerScore, "winner-score", 121, "Winner's final score")
	f.IntVar(&recordGameFlags.loserScore, "loser-score", 0, "Loser's final score")
	f.StringVar(&recordGameFlags.date, "date", "", "Date played (YYYY-MM-DD), defaults to today")
	f.StringVar(&recordGameFlags.board, "board", "", "ID of the board the game was played on")
	f.StringVar(&recordGameFlags.notes, "notes", "", "Free-form notes")
	recordGameCmd.MarkFlagRequired("winner")
	recordGameCmd.MarkFlagRequired("loser")
	recordGameCmd.MarkFlagRequired("loser-score")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List the boards in the collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/boards")
	},
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the game log, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/games")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the win-rate leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leaderboard")
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show the win rate, wins, games and skunk rankings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/rankings")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the collection overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile <playerID>",
	Short: "Show a player's statistics profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players/" + args[0] + "/profile")
	},
}

var recordGameCmd = &cobra.Command{
	Use:   "record-game",
	Short: "Record a finished game",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := recordGameFlags.date
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		payload := map[string]any{
			"winner_id":    recordGameFlags.winner,
			"loser_id":     recordGameFlags.loser,
			"winner_score": recordGameFlags.winnerScore,
			"loser_score":  recordGameFlags.loserScore,
			"date_played":  date,
			"board_id":     recordGameFlags.board,
			"notes":        recordGameFlags.notes,
		}
		return performPostRequest("/games", payload)
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func performPostRequest(endpoint string, payload any) error {
	url := host + endpoint
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}
