// Package bigquery is the persistent Repository implementation. Rows are
// appended through the streaming inserter and read back ordered by insert
// time, so the in-memory collections keep their insertion order across
// restarts.
package bigquery

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/dvloznov/budgetmentor/internal/model"
	"github.com/dvloznov/budgetmentor/internal/store"
)

const (
	transactionsTable = "transactions"
	goalsTable        = "goals"
)

// Repository stores transactions and goals in two BigQuery tables.
type Repository struct {
	client  *bigquery.Client
	dataset string
}

// NewRepository creates a BigQuery-backed repository. The caller owns Close.
func NewRepository(ctx context.Context, projectID, datasetID string) (*Repository, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("NewRepository: bigquery client: %w", err)
	}
	return &Repository{
		client:  client,
		dataset: datasetID,
	}, nil
}

// Close releases the underlying client.
func (r *Repository) Close() error {
	return r.client.Close()
}

// ListTransactions implements store.Repository.
func (r *Repository) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	q := r.client.Query(fmt.Sprintf(`
		SELECT
			transaction_id,
			description,
			amount,
			category,
			transaction_date,
			predicted,
			created_ts
		FROM %s.%s
		ORDER BY created_ts
	`, r.dataset, transactionsTable))

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListTransactions: query read: %w", err)
	}

	var out []model.Transaction
	for {
		var row TransactionRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListTransactions: iter next: %w", err)
		}
		out = append(out, row.toModel())
	}
	return out, nil
}

// CreateTransaction implements store.Repository.
func (r *Repository) CreateTransaction(ctx context.Context, t *model.Transaction) error {
	if t.ID == "" {
		return fmt.Errorf("CreateTransaction: transaction ID is required")
	}

	inserter := r.client.Dataset(r.dataset).Table(transactionsTable).Inserter()
	if err := inserter.Put(ctx, transactionRow(t, time.Now())); err != nil {
		return fmt.Errorf("CreateTransaction: inserting row: %w", err)
	}
	return nil
}

// DeleteTransaction implements store.Repository.
func (r *Repository) DeleteTransaction(ctx context.Context, id string) error {
	q := r.client.Query(fmt.Sprintf(`
		DELETE FROM %s.%s
		WHERE transaction_id = @id
	`, r.dataset, transactionsTable))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "id", Value: id},
	}

	affected, err := r.runDML(ctx, q)
	if err != nil {
		return fmt.Errorf("DeleteTransaction: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", id, store.ErrNotFound)
	}
	return nil
}

// ListGoals implements store.Repository.
func (r *Repository) ListGoals(ctx context.Context) ([]model.Goal, error) {
	q := r.client.Query(fmt.Sprintf(`
		SELECT
			goal_id,
			name,
			target_amount,
			current_amount,
			priority,
			deadline,
			created_ts
		FROM %s.%s
		ORDER BY created_ts
	`, r.dataset, goalsTable))

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListGoals: query read: %w", err)
	}

	var out []model.Goal
	for {
		var row GoalRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListGoals: iter next: %w", err)
		}
		out = append(out, row.toModel())
	}
	return out, nil
}

// CreateGoal implements store.Repository.
func (r *Repository) CreateGoal(ctx context.Context, g *model.Goal) error {
	if g.ID == "" {
		return fmt.Errorf("CreateGoal: goal ID is required")
	}

	inserter := r.client.Dataset(r.dataset).Table(goalsTable).Inserter()
	if err := inserter.Put(ctx, goalRow(g, time.Now())); err != nil {
		return fmt.Errorf("CreateGoal: inserting row: %w", err)
	}
	return nil
}

// UpdateGoalAmount implements store.Repository.
func (r *Repository) UpdateGoalAmount(ctx context.Context, id string, current float64) error {
	q := r.client.Query(fmt.Sprintf(`
		UPDATE %s.%s
		SET current_amount = @current
		WHERE goal_id = @id
	`, r.dataset, goalsTable))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "current", Value: current},
		{Name: "id", Value: id},
	}

	affected, err := r.runDML(ctx, q)
	if err != nil {
		return fmt.Errorf("UpdateGoalAmount: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s: %w", id, store.ErrNotFound)
	}
	return nil
}

// DeleteGoal implements store.Repository.
func (r *Repository) DeleteGoal(ctx context.Context, id string) error {
	q := r.client.Query(fmt.Sprintf(`
		DELETE FROM %s.%s
		WHERE goal_id = @id
	`, r.dataset, goalsTable))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "id", Value: id},
	}

	affected, err := r.runDML(ctx, q)
	if err != nil {
		return fmt.Errorf("DeleteGoal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s: %w", id, store.ErrNotFound)
	}
	return nil
}

// runDML runs a mutation query and returns the number of affected rows.
func (r *Repository) runDML(ctx context.Context, q *bigquery.Query) (int64, error) {
	job, err := q.Run(ctx)
	if err != nil {
		return 0, fmt.Errorf("run query: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return 0, fmt.Errorf("wait for job: %w", err)
	}
	if err := status.Err(); err != nil {
		return 0, fmt.Errorf("job failed: %w", err)
	}

	if stats, ok := status.Statistics.Details.(*bigquery.QueryStatistics); ok {
		return stats.NumDMLAffectedRows, nil
	}
	return 0, nil
}

// Ensure Repository implements the store interface.
var _ store.Repository = (*Repository)(nil)
