// Package store persists transactions. Each operation is atomic on a single
// row; concurrent writers are serialized by the database engine.
package store

import (
	"context"
	"errors"

	"github.com/gowthamsai117/financial-app/internal/models"
)

var ErrNotFound = errors.New("transaction not found")

// Store is the persistence contract for transactions.
type Store interface {
	// Create assigns tx.ID and persists the row.
	Create(ctx context.Context, tx *models.Transaction) error
	Get(ctx context.Context, id int64) (models.Transaction, error)
	// List returns every row ordered by date descending, then id descending.
	List(ctx context.Context) ([]models.Transaction, error)
	// Update overwrites all mutable columns of the row with tx.ID.
	Update(ctx context.Context, tx models.Transaction) error
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
	Close() error
}
