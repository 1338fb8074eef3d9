// Command export takes a snapshot of a running server's state and uploads
// it to GCS as a JSON document.
package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/dvloznov/budgetmentor/internal/client"
	"github.com/dvloznov/budgetmentor/internal/config"
	"github.com/dvloznov/budgetmentor/internal/insights"
	"github.com/dvloznov/budgetmentor/internal/logger"
	"github.com/dvloznov/budgetmentor/internal/snapshot"
)

func main() {
	cfg := config.Load()
	var (
		baseURL = flag.String("api", cfg.APIBaseURL, "API server base URL")
		bucket  = flag.String("bucket", cfg.GCSBucket, "GCS bucket for snapshot export (or set GCS_BUCKET env)")
	)
	flag.Parse()

	log := logger.New("budgetmentor-export")

	if *bucket == "" {
		log.Fatal().Msg("No GCS bucket configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	c := client.New(*baseURL)

	transactions, err := c.ListTransactions(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch transactions")
	}
	goals, err := c.ListGoals(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch goals")
	}

	engine := insights.NewEngineWithSource(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
	snap := &snapshot.Snapshot{
		ExportedAt:   time.Now().UTC(),
		Transactions: transactions,
		Goals:        goals,
		Metrics:      engine.Metrics(transactions),
		Insights:     engine.Bundle(transactions),
	}

	uri, err := snapshot.Upload(ctx, *bucket, snap)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to upload snapshot")
	}

	log.Info().
		Str("uri", uri).
		Int("transactions", len(transactions)).
		Int("goals", len(goals)).
		Msg("Snapshot exported")
}
