package store

import (
	"context"
	"errors"

	"github.com/dvloznov/budgetmentor/internal/model"
)

// ErrNotFound is returned when a transaction or goal ID does not exist.
// Implementations wrap it so callers can match with errors.Is.
var ErrNotFound = errors.New("not found")

// Repository is the persistence boundary for the record store. List calls
// return the full collection in insertion order; the store never asks for
// partial reads because its consistency model is full refetch after every
// mutation.
type Repository interface {
	// ListTransactions returns all transactions in insertion order.
	ListTransactions(ctx context.Context) ([]model.Transaction, error)

	// CreateTransaction persists a new transaction.
	CreateTransaction(ctx context.Context, t *model.Transaction) error

	// DeleteTransaction removes a transaction by ID.
	DeleteTransaction(ctx context.Context, id string) error

	// ListGoals returns all goals in insertion order.
	ListGoals(ctx context.Context) ([]model.Goal, error)

	// CreateGoal persists a new goal.
	CreateGoal(ctx context.Context, g *model.Goal) error

	// UpdateGoalAmount replaces a goal's current amount.
	UpdateGoalAmount(ctx context.Context, id string, current float64) error

	// DeleteGoal removes a goal by ID.
	DeleteGoal(ctx context.Context, id string) error
}
