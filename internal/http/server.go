package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mauv0809/cribbage-board/internal/club"
	"github.com/mauv0809/cribbage-board/internal/config"
	"github.com/mauv0809/cribbage-board/internal/http/handlers"
	"github.com/mauv0809/cribbage-board/internal/metrics"
	"github.com/mauv0809/cribbage-board/internal/notifier"
	"github.com/mauv0809/cribbage-board/internal/processor"
	"github.com/mauv0809/cribbage-board/internal/pubsub"
)

func NewServer(store club.ClubStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         mux.NewRouter(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler).Methods(http.MethodGet)
	s.handle("/health", handlers.HealthCheckHandler(), http.MethodGet)

	s.handle("/players", handlers.ListPlayersHandler(s.Store), http.MethodGet)
	s.handle("/players", handlers.CreatePlayerHandler(s.Store), http.MethodPost)
	s.handle("/players/{id}", handlers.GetPlayerHandler(s.Store), http.MethodGet)
	s.handle("/players/{id}", handlers.UpdatePlayerHandler(s.Store), http.MethodPut)
	s.handle("/players/{id}", handlers.DeletePlayerHandler(s.Store), http.MethodDelete)
	s.handle("/players/{id}/profile", handlers.PlayerProfileHandler(s.Processor), http.MethodGet)

	s.handle("/boards", handlers.ListBoardsHandler(s.Store), http.MethodGet)
	s.handle("/boards", handlers.CreateBoardHandler(s.Store), http.MethodPost)
	s.handle("/boards/{id}", handlers.GetBoardHandler(s.Store), http.MethodGet)
	s.handle("/boards/{id}", handlers.UpdateBoardHandler(s.Store), http.MethodPut)
	s.handle("/boards/{id}", handlers.DeleteBoardHandler(s.Store), http.MethodDelete)

	s.handle("/games", handlers.ListGamesHandler(s.Store), http.MethodGet)
	s.handle("/games", handlers.CreateGameHandler(s.Store, s.Processor), http.MethodPost)
	s.handle("/games/{id}", handlers.GetGameHandler(s.Store), http.MethodGet)
	s.handle("/games/{id}", handlers.UpdateGameHandler(s.Store), http.MethodPut)
	s.handle("/games/{id}", handlers.DeleteGameHandler(s.Store), http.MethodDelete)

	s.handle("/leaderboard", handlers.LeaderboardHandler(s.Processor), http.MethodGet)
	s.handle("/rankings", handlers.RankingsHandler(s.Processor), http.MethodGet)
	s.handle("/stats", handlers.StatsHandler(s.Processor), http.MethodGet)

	verifySlack := slackVerificationMiddleware(s.Cfg.Slack.SigningSecret)
	s.handle("/slack/command/leaderboard", handlers.LeaderboardCommandHandler(s.Processor, s.Notifier), http.MethodPost, verifySlack)
	s.handle("/slack/command/player-stats", handlers.PlayerStatsCommandHandler(s.Store, s.Processor, s.Notifier), http.MethodPost, verifySlack)

	s.handle("/pubsub/game-recorded", handlers.GameRecordedHandler(s.Processor, s.pubsub), http.MethodPost)
}

func (s *Server) handle(path string, h http.Handler, method string, extra ...Middleware) {
	middlewares := append([]Middleware{paramsMiddleware}, extra...)
	s.Router.Handle(path, Chain(h, middlewares...)).Methods(method)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
