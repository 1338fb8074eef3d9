package model

import (
	"github.com/google/uuid"
)

// Transaction is one signed monetary entry. Amount sign determines the
// income/expense classification everywhere: positive is income, negative
// is an expense.
type Transaction struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        Date    `json:"date"`
	Predicted   bool    `json:"predicted"`
}

// GenerateID assigns a fresh UUID if the transaction has no ID yet.
func (t *Transaction) GenerateID() {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
}

// IsIncome reports whether the transaction counts as income.
func (t Transaction) IsIncome() bool {
	return t.Amount > 0
}

// IsExpense reports whether the transaction counts as an expense.
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}

// Magnitude returns the unsigned amount.
func (t Transaction) Magnitude() float64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}
