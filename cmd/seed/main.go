// Command seed loads the demo dataset into a running API server.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/dvloznov/budgetmentor/internal/client"
	"github.com/dvloznov/budgetmentor/internal/config"
	"github.com/dvloznov/budgetmentor/internal/logger"
	"github.com/dvloznov/budgetmentor/internal/model"
)

func main() {
	cfg := config.Load()
	baseURL := flag.String("api", cfg.APIBaseURL, "API server base URL")
	flag.Parse()

	log := logger.New("budgetmentor-seed")

	transactions := []model.Transaction{
		{Description: "Starbucks Coffee Downtown", Amount: -5.50, Category: "Food & Dining", Date: model.NewDate(2024, time.December, 1)},
		{Description: "Salary Direct Deposit", Amount: 3500, Category: "Income", Date: model.NewDate(2024, time.December, 1)},
		{Description: "Predicted: Starbucks Coffee", Amount: -5.50, Category: "Food & Dining", Date: model.NewDate(2024, time.December, 7), Predicted: true},
		{Description: "Predicted: Grocery Shopping", Amount: -130, Category: "Food & Dining", Date: model.NewDate(2024, time.December, 8), Predicted: true},
	}

	goals := []model.Goal{
		{Name: "Emergency Fund", Target: 10000, Current: 3500, Priority: model.PriorityHigh, Deadline: model.NewDate(2025, time.June, 1)},
		{Name: "Travel to Europe", Target: 5000, Current: 1200, Priority: model.PriorityMedium, Deadline: model.NewDate(2025, time.August, 1)},
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c := client.New(*baseURL)

	for _, t := range transactions {
		tx := t
		if err := c.CreateTransaction(ctx, &tx); err != nil {
			log.Fatal().Err(err).Str("description", t.Description).Msg("Failed to seed transaction")
		}
		log.Info().Str("transaction_id", tx.ID).Str("description", tx.Description).Msg("Seeded transaction")
	}

	for _, g := range goals {
		goal := g
		if err := c.CreateGoal(ctx, &goal); err != nil {
			log.Fatal().Err(err).Str("name", g.Name).Msg("Failed to seed goal")
		}
		log.Info().Str("goal_id", goal.ID).Str("name", goal.Name).Msg("Seeded goal")
	}

	log.Info().
		Int("transactions", len(transactions)).
		Int("goals", len(goals)).
		Msg("Demo data loaded")
}
