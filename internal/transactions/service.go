// Package transactions implements the record operations behind the HTTP API:
// listing, point lookups, creation, patch updates, deletion and the summary
// report. It owns no state beyond the injected store.
package transactions

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gowthamsai117/financial-app/internal/models"
	"github.com/gowthamsai117/financial-app/internal/store"
)

// ErrNotFound is returned when no transaction has the requested id.
var ErrNotFound = store.ErrNotFound

// ErrInvalid wraps payload errors detected by the service itself.
var ErrInvalid = errors.New("invalid transaction")

type Service struct {
	store  store.Store
	logger *zap.Logger
}

func NewService(s store.Store, logger *zap.Logger) *Service {
	return &Service{store: s, logger: logger.With(zap.String("component", "transactions"))}
}

// List returns all transactions, newest date first. Ties on date are broken
// by id, newest first.
func (s *Service) List(ctx context.Context) ([]models.Transaction, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (models.Transaction, error) {
	return s.store.Get(ctx, id)
}

// Create stores a new transaction. Required fields are expected to have been
// checked already; the amount range is checked here.
func (s *Service) Create(ctx context.Context, in models.TransactionCreate) (models.Transaction, error) {
	if err := in.Validate(); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	tx := in.ToTransaction()
	if err := s.store.Create(ctx, &tx); err != nil {
		return models.Transaction{}, err
	}
	s.logger.Debug("transaction created", zap.Int64("id", tx.ID))
	return tx, nil
}

// Update applies only the fields present in patch and returns the result.
func (s *Service) Update(ctx context.Context, id int64, patch models.TransactionUpdate) (models.Transaction, error) {
	if err := patch.Validate(); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	tx, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Transaction{}, err
	}

	patch.Apply(&tx)
	if err := s.store.Update(ctx, tx); err != nil {
		return models.Transaction{}, err
	}
	s.logger.Debug("transaction updated", zap.Int64("id", id))
	return tx, nil
}

// Delete reports whether a transaction was removed. An unknown id is not an
// error.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.logger.Debug("transaction deleted", zap.Int64("id", id))
	return true, nil
}

// Summary totals the amount of every stored transaction as-is; income and
// expense rows are not netted against each other.
func (s *Service) Summary(ctx context.Context) (models.Summary, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return models.Summary{}, fmt.Errorf("computing summary: %w", err)
	}

	total := decimal.Zero
	for _, tx := range list {
		if !isFinite(tx.Amount) {
			return models.Summary{}, fmt.Errorf("computing summary: transaction %d has amount %v", tx.ID, tx.Amount)
		}
		total = total.Add(decimal.NewFromFloat(tx.Amount))
	}

	f := total.InexactFloat64()
	if !isFinite(f) {
		return models.Summary{}, fmt.Errorf("computing summary: total %s overflows float64", total.String())
	}

	return models.Summary{
		Total: f,
		Count: len(list),
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Ping checks that storage is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
