package api

import (
	"context"

	"github.com/gowthamsai117/financial-app/internal/models"
)

// MockTransactionService is a mock implementation of TransactionService
type MockTransactionService struct {
	ListFunc    func(ctx context.Context) ([]models.Transaction, error)
	GetFunc     func(ctx context.Context, id int64) (models.Transaction, error)
	CreateFunc  func(ctx context.Context, in models.TransactionCreate) (models.Transaction, error)
	UpdateFunc  func(ctx context.Context, id int64, patch models.TransactionUpdate) (models.Transaction, error)
	DeleteFunc  func(ctx context.Context, id int64) (bool, error)
	SummaryFunc func(ctx context.Context) (models.Summary, error)
	PingFunc    func(ctx context.Context) error
}

func (m *MockTransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Transaction{}, nil
}

func (m *MockTransactionService) Get(ctx context.Context, id int64) (models.Transaction, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return models.Transaction{}, nil
}

func (m *MockTransactionService) Create(ctx context.Context, in models.TransactionCreate) (models.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return models.Transaction{}, nil
}

func (m *MockTransactionService) Update(ctx context.Context, id int64, patch models.TransactionUpdate) (models.Transaction, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return models.Transaction{}, nil
}

func (m *MockTransactionService) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockTransactionService) Summary(ctx context.Context) (models.Summary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx)
	}
	return models.Summary{}, nil
}

func (m *MockTransactionService) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
