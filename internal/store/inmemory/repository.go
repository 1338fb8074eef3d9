// Package inmemory is the default Repository implementation. It keeps the
// collections in process memory and is safe for concurrent use. Data is lost
// on service restart - for persistence, use the BigQuery-backed repository.
package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dvloznov/budgetmentor/internal/model"
	"github.com/dvloznov/budgetmentor/internal/store"
)

// Repository stores transactions and goals in insertion order.
type Repository struct {
	mu           sync.RWMutex
	transactions []model.Transaction
	goals        []model.Goal
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{}
}

// ListTransactions implements store.Repository. It returns a copy to avoid
// external modifications.
func (r *Repository) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

// CreateTransaction implements store.Repository.
func (r *Repository) CreateTransaction(ctx context.Context, t *model.Transaction) error {
	if t.ID == "" {
		return fmt.Errorf("transaction ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.transactions {
		if existing.ID == t.ID {
			return fmt.Errorf("transaction already exists: %s", t.ID)
		}
	}
	r.transactions = append(r.transactions, *t)
	return nil
}

// DeleteTransaction implements store.Repository. It removes exactly one
// entry, preserving the insertion order of the rest.
func (r *Repository) DeleteTransaction(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.transactions {
		if t.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %s: %w", id, store.ErrNotFound)
}

// ListGoals implements store.Repository.
func (r *Repository) ListGoals(ctx context.Context) ([]model.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Goal, len(r.goals))
	copy(out, r.goals)
	return out, nil
}

// CreateGoal implements store.Repository.
func (r *Repository) CreateGoal(ctx context.Context, g *model.Goal) error {
	if g.ID == "" {
		return fmt.Errorf("goal ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.goals {
		if existing.ID == g.ID {
			return fmt.Errorf("goal already exists: %s", g.ID)
		}
	}
	r.goals = append(r.goals, *g)
	return nil
}

// UpdateGoalAmount implements store.Repository.
func (r *Repository) UpdateGoalAmount(ctx context.Context, id string, current float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.goals {
		if r.goals[i].ID == id {
			r.goals[i].Current = current
			return nil
		}
	}
	return fmt.Errorf("goal %s: %w", id, store.ErrNotFound)
}

// DeleteGoal implements store.Repository.
func (r *Repository) DeleteGoal(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, g := range r.goals {
		if g.ID == id {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("goal %s: %w", id, store.ErrNotFound)
}

// Ensure Repository implements the store interface.
var _ store.Repository = (*Repository)(nil)
