// Package store owns the in-memory transaction and goal collections and the
// derived views computed from them. All mutations go through command methods
// that write to the Repository, reload the affected collection in full on
// success, and recompute every derived view. A failed command leaves the
// previous state untouched, so readers always see a consistent, possibly
// stale, snapshot.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dvloznov/budgetmentor/internal/insights"
	"github.com/dvloznov/budgetmentor/internal/model"
)

// Store is the single owner of the Transaction and Goal collections.
type Store struct {
	repo   Repository
	engine *insights.Engine
	log    zerolog.Logger

	mu           sync.RWMutex
	transactions []model.Transaction
	goals        []model.Goal

	// Derived views, rebuilt whole after every mutation.
	bundle  insights.Bundle
	profile insights.Profile
	metrics insights.Metrics
	trend   []insights.TrendPoint
}

// New creates a store over the given repository. Call Load before serving.
func New(repo Repository, engine *insights.Engine, log zerolog.Logger) *Store {
	return &Store{
		repo:   repo,
		engine: engine,
		log:    log,
	}
}

// Load fetches both collections and computes the initial derived views.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reloadTransactionsLocked(ctx); err != nil {
		return fmt.Errorf("Load: %w", err)
	}
	if err := s.reloadGoalsLocked(ctx); err != nil {
		return fmt.Errorf("Load: %w", err)
	}
	return nil
}

// AddTransaction normalizes, persists and reloads. It returns the stored
// transaction and the bundle reflecting the collection after the insert.
func (s *Store) AddTransaction(ctx context.Context, t model.Transaction) (model.Transaction, insights.Bundle, error) {
	t.Category = model.NormalizeCategory(t.Category)
	t.GenerateID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.CreateTransaction(ctx, &t); err != nil {
		return model.Transaction{}, insights.Bundle{}, fmt.Errorf("AddTransaction: %w", err)
	}
	if err := s.reloadTransactionsLocked(ctx); err != nil {
		return model.Transaction{}, insights.Bundle{}, fmt.Errorf("AddTransaction: %w", err)
	}

	s.log.Info().Str("transaction_id", t.ID).Float64("amount", t.Amount).
		Str("category", t.Category).Msg("Transaction added")
	return t, s.bundle, nil
}

// DeleteTransaction removes exactly one entry and recomputes; the result is
// identical to never having inserted it.
func (s *Store) DeleteTransaction(ctx context.Context, id string) (insights.Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		return insights.Bundle{}, fmt.Errorf("DeleteTransaction: %w", err)
	}
	if err := s.reloadTransactionsLocked(ctx); err != nil {
		return insights.Bundle{}, fmt.Errorf("DeleteTransaction: %w", err)
	}

	s.log.Info().Str("transaction_id", id).Msg("Transaction deleted")
	return s.bundle, nil
}

// AddGoal persists a new goal and reloads the goal collection.
func (s *Store) AddGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	if !model.ValidPriority(g.Priority) {
		g.Priority = model.PriorityMedium
	}
	g.GenerateID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.CreateGoal(ctx, &g); err != nil {
		return model.Goal{}, fmt.Errorf("AddGoal: %w", err)
	}
	if err := s.reloadGoalsLocked(ctx); err != nil {
		return model.Goal{}, fmt.Errorf("AddGoal: %w", err)
	}

	s.log.Info().Str("goal_id", g.ID).Str("name", g.Name).Msg("Goal added")
	return g, nil
}

// UpdateGoalProgress replaces a goal's current amount.
func (s *Store) UpdateGoalProgress(ctx context.Context, id string, current float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.UpdateGoalAmount(ctx, id, current); err != nil {
		return fmt.Errorf("UpdateGoalProgress: %w", err)
	}
	if err := s.reloadGoalsLocked(ctx); err != nil {
		return fmt.Errorf("UpdateGoalProgress: %w", err)
	}

	s.log.Info().Str("goal_id", id).Float64("current", current).Msg("Goal progress updated")
	return nil
}

// DeleteGoal removes a goal by ID.
func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteGoal(ctx, id); err != nil {
		return fmt.Errorf("DeleteGoal: %w", err)
	}
	if err := s.reloadGoalsLocked(ctx); err != nil {
		return fmt.Errorf("DeleteGoal: %w", err)
	}

	s.log.Info().Str("goal_id", id).Msg("Goal deleted")
	return nil
}

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Goals returns a copy of the goal collection.
func (s *Store) Goals() []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Insights returns the current insight bundle.
func (s *Store) Insights() insights.Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// Profile returns the derived user profile.
func (s *Store) Profile() insights.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Metrics returns the current headline metrics.
func (s *Store) Metrics() insights.Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics
}

// Trend returns the monthly income/expense series.
func (s *Store) Trend() []insights.TrendPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]insights.TrendPoint, len(s.trend))
	copy(out, s.trend)
	return out
}

// Spending returns the active per-category expense breakdown.
func (s *Store) Spending() []insights.CategorySpend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.ActiveSpending(s.transactions)
}

func (s *Store) reloadTransactionsLocked(ctx context.Context) error {
	transactions, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("reload transactions: %w", err)
	}
	for i := range transactions {
		transactions[i].Category = model.NormalizeCategory(transactions[i].Category)
	}
	s.transactions = transactions
	s.recomputeLocked()
	return nil
}

func (s *Store) reloadGoalsLocked(ctx context.Context) error {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return fmt.Errorf("reload goals: %w", err)
	}
	s.goals = goals
	return nil
}

// recomputeLocked rebuilds every derived view from scratch. There is no
// incremental path: the views are cheap and correctness comes first.
func (s *Store) recomputeLocked() {
	s.bundle = s.engine.Bundle(s.transactions)
	s.profile = s.engine.Profile(s.transactions)
	s.metrics = s.engine.Metrics(s.transactions)
	s.trend = s.engine.Trend(s.transactions)
}
