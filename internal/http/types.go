package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mauv0809/cribbage-board/internal/club"
	"github.com/mauv0809/cribbage-board/internal/config"
	"github.com/mauv0809/cribbage-board/internal/metrics"
	"github.com/mauv0809/cribbage-board/internal/notifier"
	"github.com/mauv0809/cribbage-board/internal/processor"
	"github.com/mauv0809/cribbage-board/internal/pubsub"
)

type Server struct {
	Store          club.ClubStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *mux.Router
	pubsub         pubsub.PubSubClient
}
