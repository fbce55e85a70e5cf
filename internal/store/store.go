// Package store persists the append-only conversation log.
package store

import (
	"context"

	"github.com/mindhaven/mindhaven/internal/models"
)

// Store is the persistence contract for conversation turns. Turns are
// append-only; nothing in this service updates or deletes them.
type Store interface {
	// Append records one finished turn.
	Append(ctx context.Context, turn models.ConversationTurn) error

	// Recent returns up to limit turns, most recent first.
	Recent(ctx context.Context, limit int) ([]models.ConversationTurn, error)

	// Close closes the store.
	Close() error
}
