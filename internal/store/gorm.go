package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gowthamsai117/financial-app/internal/models"
)

var _ Store = (*GormStore)(nil)

// GormStore keeps transactions in any gorm dialect; the server uses SQLite.
type GormStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormStore(db *gorm.DB, logger *zap.Logger) *GormStore {
	return &GormStore{db: db, logger: logger.With(zap.String("component", "gorm_store"))}
}

func (s *GormStore) Create(ctx context.Context, tx *models.Transaction) error {
	tx.ID = 0
	if err := s.db.WithContext(ctx).Create(tx).Error; err != nil {
		s.logger.Error("database error", zap.String("op", "insert"), zap.Error(err))
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, id int64) (models.Transaction, error) {
	var tx models.Transaction
	err := s.db.WithContext(ctx).First(&tx, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transaction{}, ErrNotFound
		}
		return models.Transaction{}, fmt.Errorf("fetching transaction %d: %w", id, err)
	}
	return tx, nil
}

func (s *GormStore) List(ctx context.Context) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	err := s.db.WithContext(ctx).
		Order("date DESC").
		Order("id DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return transactions, nil
}

func (s *GormStore) Update(ctx context.Context, tx models.Transaction) error {
	res := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", tx.ID).
		Updates(map[string]interface{}{
			"date":     tx.Date,
			"time":     tx.Time,
			"type":     tx.Type,
			"category": tx.Category,
			"amount":   tx.Amount,
			"notes":    tx.Notes,
		})
	if res.Error != nil {
		s.logger.Error("database error", zap.String("op", "update"), zap.Error(res.Error))
		return fmt.Errorf("updating transaction %d: %w", tx.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&models.Transaction{}, id)
	if res.Error != nil {
		s.logger.Error("database error", zap.String("op", "delete"), zap.Error(res.Error))
		return fmt.Errorf("deleting transaction %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
