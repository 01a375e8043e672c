package models

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single income or expense record.
type Transaction struct {
	ID       int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Date     string  `json:"date" gorm:"not null"`
	Time     *string `json:"time"`
	Type     string  `json:"type" gorm:"not null"`
	Category string  `json:"category" gorm:"not null"`
	Amount   float64 `json:"amount" gorm:"not null"`
	Notes    *string `json:"notes"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionCreate is the body accepted when creating a transaction.
// Amount accepts either a JSON number or a numeric string.
type TransactionCreate struct {
	Date     *string          `json:"date" validate:"required"`
	Time     *string          `json:"time"`
	Type     *string          `json:"type"`
	Category *string          `json:"category" validate:"required"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
	Notes    *string          `json:"notes"`
}

// Validate rejects amounts that do not fit in a finite float64.
func (c TransactionCreate) Validate() error {
	if c.Amount != nil {
		return checkAmount(*c.Amount)
	}
	return nil
}

// ToTransaction builds an unsaved Transaction, defaulting Type to expense.
func (c TransactionCreate) ToTransaction() Transaction {
	tx := Transaction{
		Type:  TypeExpense,
		Time:  c.Time,
		Notes: c.Notes,
	}
	if c.Date != nil {
		tx.Date = *c.Date
	}
	if c.Type != nil {
		tx.Type = *c.Type
	}
	if c.Category != nil {
		tx.Category = *c.Category
	}
	if c.Amount != nil {
		tx.Amount = c.Amount.InexactFloat64()
	}
	return tx
}

// TransactionUpdate carries a partial update. Only fields present in the
// request body are applied.
type TransactionUpdate struct {
	Date     Optional[string]          `json:"date"`
	Time     Optional[string]          `json:"time"`
	Type     Optional[string]          `json:"type"`
	Category Optional[string]          `json:"category"`
	Amount   Optional[decimal.Decimal] `json:"amount"`
	Notes    Optional[string]          `json:"notes"`
}

// Validate rejects explicit nulls for fields that cannot be empty.
func (u TransactionUpdate) Validate() error {
	switch {
	case u.Date.IsNull():
		return fmt.Errorf("date may not be null")
	case u.Type.IsNull():
		return fmt.Errorf("type may not be null")
	case u.Category.IsNull():
		return fmt.Errorf("category may not be null")
	case u.Amount.IsNull():
		return fmt.Errorf("amount may not be null")
	case u.Amount.Set:
		return checkAmount(*u.Amount.Value)
	}
	return nil
}

func checkAmount(d decimal.Decimal) error {
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("amount %s is out of range", d.String())
	}
	return nil
}

// Apply overwrites the fields of tx that were present in the update.
func (u TransactionUpdate) Apply(tx *Transaction) {
	if u.Date.Set {
		tx.Date = *u.Date.Value
	}
	if u.Time.Set {
		tx.Time = u.Time.Value
	}
	if u.Type.Set {
		tx.Type = *u.Type.Value
	}
	if u.Category.Set {
		tx.Category = *u.Category.Value
	}
	if u.Amount.Set {
		tx.Amount = u.Amount.Value.InexactFloat64()
	}
	if u.Notes.Set {
		tx.Notes = u.Notes.Value
	}
}

// Summary is the aggregate over all stored transactions.
type Summary struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}
