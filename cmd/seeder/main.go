package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/cribbage-board/internal/club"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
	"github.com/mauv0809/cribbage-board/internal/database"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	for _, key := range []string{"DB_NAME", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		config[key] = os.Getenv(key)
	}
	if config["DB_NAME"] == "" {
		log.Fatal("Error: Required environment variable DB_NAME is not set.")
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()
	log.Info("Successfully connected to the database.")

	ctx := context.Background()
	store := club.New(db)

	dummyPlayers := []cribbage.Player{
		{FirstName: "Seeder", LastName: "Player A"},
		{FirstName: "Seeder", LastName: "Player B"},
		{FirstName: "Seeder", LastName: "Player C"},
		{FirstName: "Seeder", LastName: "Player D"},
	}
	for i := range dummyPlayers {
		if err := store.AddPlayer(ctx, &dummyPlayers[i]); err != nil {
			log.Fatalf("Failed to insert dummy player %s: %s", dummyPlayers[i].Name(), err)
		}
	}
	log.Info("Inserted dummy players.", "count", len(dummyPlayers))

	dummyBoards := []cribbage.Board{
		{RomanNumber: "I", WoodType: "Oak", InCollection: true},
		{RomanNumber: "II", WoodType: "Walnut", InCollection: true},
		{RomanNumber: "III", WoodType: "Cherry", IsGift: true, GiftedTo: "Seeder Family"},
	}
	for i := range dummyBoards {
		if err := store.AddBoard(ctx, &dummyBoards[i]); err != nil {
			log.Fatalf("Failed to insert dummy board %s: %s", dummyBoards[i].RomanNumber, err)
		}
	}

	const numGames = 500

	log.Info("Preparing to insert dummy games...", "total", numGames)
	startTime := time.Now()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for i := 0; i < numGames; i++ {
		winner := rand.Intn(len(dummyPlayers))
		loser := (winner + 1 + rand.Intn(len(dummyPlayers)-1)) % len(dummyPlayers)
		game := &cribbage.Game{
			WinnerID:    dummyPlayers[winner].ID,
			LoserID:     dummyPlayers[loser].ID,
			WinnerScore: cribbage.WinningScore,
			LoserScore:  40 + rand.Intn(81),
			DatePlayed:  today.AddDate(0, 0, -rand.Intn(365)),
			BoardID:     dummyBoards[rand.Intn(len(dummyBoards))].ID,
		}
		if err := store.RecordGame(ctx, game); err != nil {
			log.Fatalf("Failed to record game: %s", err)
		}
		if (i+1)%100 == 0 {
			log.Info("Inserted batch", "completed", i+1, "total", numGames)
		}
	}

	log.Info("Successfully inserted all dummy games.", "duration", time.Since(startTime))
}
