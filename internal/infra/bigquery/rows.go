package bigquery

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/dvloznov/budgetmentor/internal/model"
)

type TransactionRow struct {
	TransactionID string `bigquery:"transaction_id"` // REQUIRED

	Description string     `bigquery:"description"`      // REQUIRED STRING
	Amount      float64    `bigquery:"amount"`           // REQUIRED FLOAT64
	Category    string     `bigquery:"category"`         // REQUIRED STRING
	TxDate      civil.Date `bigquery:"transaction_date"` // REQUIRED DATE
	Predicted   bool       `bigquery:"predicted"`        // REQUIRED BOOL

	CreatedTS time.Time `bigquery:"created_ts"` // REQUIRED (default CURRENT_TIMESTAMP)
}

type GoalRow struct {
	GoalID string `bigquery:"goal_id"` // REQUIRED

	Name          string     `bigquery:"name"`           // REQUIRED STRING
	TargetAmount  float64    `bigquery:"target_amount"`  // REQUIRED FLOAT64
	CurrentAmount float64    `bigquery:"current_amount"` // REQUIRED FLOAT64
	Priority      string     `bigquery:"priority"`       // REQUIRED STRING
	Deadline      civil.Date `bigquery:"deadline"`       // REQUIRED DATE

	CreatedTS time.Time `bigquery:"created_ts"` // REQUIRED (default CURRENT_TIMESTAMP)
}

func transactionRow(t *model.Transaction, now time.Time) *TransactionRow {
	return &TransactionRow{
		TransactionID: t.ID,
		Description:   t.Description,
		Amount:        t.Amount,
		Category:      t.Category,
		TxDate:        civil.DateOf(t.Date.Time),
		Predicted:     t.Predicted,
		CreatedTS:     now,
	}
}

func (r *TransactionRow) toModel() model.Transaction {
	return model.Transaction{
		ID:          r.TransactionID,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		Date:        model.DateOf(r.TxDate.In(time.UTC)),
		Predicted:   r.Predicted,
	}
}

func goalRow(g *model.Goal, now time.Time) *GoalRow {
	return &GoalRow{
		GoalID:        g.ID,
		Name:          g.Name,
		TargetAmount:  g.Target,
		CurrentAmount: g.Current,
		Priority:      string(g.Priority),
		Deadline:      civil.DateOf(g.Deadline.Time),
		CreatedTS:     now,
	}
}

func (r *GoalRow) toModel() model.Goal {
	return model.Goal{
		ID:       r.GoalID,
		Name:     r.Name,
		Target:   r.TargetAmount,
		Current:  r.CurrentAmount,
		Priority: model.Priority(r.Priority),
		Deadline: model.DateOf(r.Deadline.In(time.UTC)),
	}
}
