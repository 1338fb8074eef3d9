// Command sync-notion mirrors the goal collection of a running server into a
// Notion database.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/dvloznov/budgetmentor/internal/client"
	"github.com/dvloznov/budgetmentor/internal/config"
	"github.com/dvloznov/budgetmentor/internal/logger"
	"github.com/dvloznov/budgetmentor/internal/notion"
)

func main() {
	cfg := config.Load()

	// Parse CLI flags; flags win over the environment.
	var (
		baseURL     = flag.String("api", cfg.APIBaseURL, "API server base URL")
		notionToken = flag.String("notion-token", cfg.NotionToken, "Notion API token (or set NOTION_TOKEN env)")
		notionDBID  = flag.String("notion-db-id", cfg.NotionDatabaseID, "Notion database ID (or set NOTION_DATABASE_ID env)")
		dryRun      = flag.Bool("dry-run", false, "Dry run mode - preview changes without syncing")
	)
	flag.Parse()

	log := logger.New("budgetmentor-sync-notion")

	if *notionToken == "" {
		log.Fatal().Msg("Error: --notion-token is required")
	}
	if *notionDBID == "" {
		log.Fatal().Msg("Error: --notion-db-id is required")
	}

	// Create context with timeout so CLI doesn't hang
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	goals, err := client.New(*baseURL).ListGoals(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch goals")
	}

	svc := notion.NewClient(*notionToken)
	if err := notion.SyncGoals(ctx, svc, *notionDBID, goals, *dryRun, log); err != nil {
		log.Fatal().Err(err).Msg("Goal sync failed")
	}
}
