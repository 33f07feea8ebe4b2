package config

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	Turso     TursoConfig
	Slack     SlackConfig
	ProjectID string
	Stats     StatsConfig
}

// TursoConfig selects the remote database. An empty PrimaryURL keeps the database local.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

type StatsConfig struct {
	MinRivalryGames int
}
