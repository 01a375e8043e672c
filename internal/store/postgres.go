package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/gowthamsai117/financial-app/internal/models"
)

const selectColumns = `id, date, time, type, category, amount, notes`

var _ Store = (*SQLStore)(nil)

// SQLStore keeps transactions in Postgres through database/sql.
type SQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLStore(db *sql.DB, logger *zap.Logger) *SQLStore {
	return &SQLStore{db: db, logger: logger.With(zap.String("component", "sql_store"))}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var tx models.Transaction
	var timeOfDay, notes sql.NullString

	if err := row.Scan(&tx.ID, &tx.Date, &timeOfDay, &tx.Type, &tx.Category, &tx.Amount, &notes); err != nil {
		return models.Transaction{}, err
	}

	// Handle nullable fields
	if timeOfDay.Valid {
		tx.Time = &timeOfDay.String
	}
	if notes.Valid {
		tx.Notes = &notes.String
	}
	return tx, nil
}

func (s *SQLStore) Create(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (date, time, type, category, amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := s.db.QueryRowContext(ctx, query, tx.Date, tx.Time, tx.Type, tx.Category, tx.Amount, tx.Notes).Scan(&tx.ID)
	if err != nil {
		s.logWriteError("insert", err)
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, id int64) (models.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM transactions WHERE id = $1`, id)
	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, ErrNotFound
		}
		return models.Transaction{}, fmt.Errorf("fetching transaction %d: %w", id, err)
	}
	return tx, nil
}

func (s *SQLStore) List(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM transactions ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return transactions, nil
}

func (s *SQLStore) Update(ctx context.Context, tx models.Transaction) error {
	query := `
		UPDATE transactions
		SET date = $1, time = $2, type = $3, category = $4, amount = $5, notes = $6
		WHERE id = $7`

	res, err := s.db.ExecContext(ctx, query, tx.Date, tx.Time, tx.Type, tx.Category, tx.Amount, tx.Notes, tx.ID)
	if err != nil {
		s.logWriteError("update", err)
		return fmt.Errorf("updating transaction %d: %w", tx.ID, err)
	}
	return requireAffected(res)
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		s.logWriteError("delete", err)
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	return requireAffected(res)
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) logWriteError(op string, err error) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		s.logger.Error("postgres error",
			zap.String("op", op),
			zap.String("code", string(pqErr.Code)),
			zap.String("message", pqErr.Message),
			zap.String("detail", pqErr.Detail),
		)
		return
	}
	s.logger.Error("database error", zap.String("op", op), zap.Error(err))
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
