package processor

import (
	"context"

	"github.com/mauv0809/cribbage-board/internal/club"
	"github.com/mauv0809/cribbage-board/internal/notifier"
)

// Store defines the database operations required by the processor.
type Store interface {
	Snapshot(ctx context.Context) (*club.Snapshot, error)
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
