package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
	"github.com/rs/zerolog"

	"github.com/dvloznov/budgetmentor/internal/model"
)

// goalIDProperty is the rich-text property that keys pages to goals.
const goalIDProperty = "Goal ID"

// SyncGoals mirrors the goal collection into the Notion database. Existing
// pages are matched on the Goal ID property and updated in place; goals with
// no page get a new one; pages whose goal is gone are archived. With dryRun
// set, nothing is written and the planned actions are only logged.
func SyncGoals(ctx context.Context, svc Service, databaseID string, goals []model.Goal, dryRun bool, log zerolog.Logger) error {
	log.Info().
		Int("goal_count", len(goals)).
		Bool("dry_run", dryRun).
		Msg("Starting goal sync to Notion")

	pages, err := queryAllPages(ctx, svc, databaseID)
	if err != nil {
		return fmt.Errorf("SyncGoals: query Notion pages: %w", err)
	}

	// Map goal ID -> existing page.
	existing := make(map[string]notionapi.Page, len(pages))
	for _, page := range pages {
		if id := extractGoalID(page); id != "" {
			existing[id] = page
		}
	}

	valid := make(map[string]bool, len(goals))
	for _, g := range goals {
		valid[g.ID] = true
	}

	var created, updated, archived int
	for _, g := range goals {
		props := goalProperties(g)

		if page, ok := existing[g.ID]; ok {
			if dryRun {
				log.Info().Str("goal_id", g.ID).Msg("[DRY RUN] Would update Notion page")
			} else if _, err := svc.UpdatePage(ctx, string(page.ID), props); err != nil {
				log.Warn().Err(err).Str("goal_id", g.ID).Msg("Failed to update Notion page")
				continue
			}
			updated++
			continue
		}

		if dryRun {
			log.Info().Str("goal_id", g.ID).Str("name", g.Name).Msg("[DRY RUN] Would create Notion page")
		} else if _, err := svc.CreatePage(ctx, databaseID, props); err != nil {
			log.Warn().Err(err).Str("goal_id", g.ID).Msg("Failed to create Notion page")
			continue
		}
		created++
	}

	// Archive pages whose goal is gone, including pages from old syncs that
	// carry no Goal ID at all.
	for _, page := range pages {
		id := extractGoalID(page)
		if id != "" && valid[id] {
			continue
		}
		if dryRun {
			log.Info().Str("goal_id", id).Str("page_id", string(page.ID)).Msg("[DRY RUN] Would archive stale Notion page")
		} else if err := svc.DeletePage(ctx, string(page.ID)); err != nil {
			log.Warn().Err(err).Str("page_id", string(page.ID)).Msg("Failed to archive stale Notion page")
			continue
		}
		archived++
	}

	log.Info().
		Int("created", created).
		Int("updated", updated).
		Int("archived", archived).
		Msg("Goal sync complete")
	return nil
}

// queryAllPages pages through the database query until exhausted.
func queryAllPages(ctx context.Context, svc Service, databaseID string) ([]notionapi.Page, error) {
	var pages []notionapi.Page
	var cursor notionapi.Cursor

	for {
		req := &notionapi.DatabaseQueryRequest{
			StartCursor: cursor,
		}
		resp, err := svc.QueryDatabase(ctx, databaseID, req)
		if err != nil {
			return nil, err
		}
		pages = append(pages, resp.Results...)

		if !resp.HasMore {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}

// goalProperties builds the page property set for one goal.
func goalProperties(g model.Goal) notionapi.Properties {
	return notionapi.Properties{
		"Name": notionapi.TitleProperty{
			Title: []notionapi.RichText{
				{Text: &notionapi.Text{Content: g.Name}},
			},
		},
		goalIDProperty: notionapi.RichTextProperty{
			RichText: []notionapi.RichText{
				{Text: &notionapi.Text{Content: g.ID}},
			},
		},
		"Target": notionapi.NumberProperty{
			Number: g.Target,
		},
		"Current": notionapi.NumberProperty{
			Number: g.Current,
		},
		"Progress": notionapi.NumberProperty{
			Number: g.Progress(),
		},
		"Priority": notionapi.SelectProperty{
			Select: notionapi.Option{Name: string(g.Priority)},
		},
		"Deadline": notionapi.DateProperty{
			Date: &notionapi.DateObject{
				Start: (*notionapi.Date)(&g.Deadline.Time),
			},
		},
	}
}

// extractGoalID pulls the goal ID out of a page's properties.
func extractGoalID(page notionapi.Page) string {
	prop, ok := page.Properties[goalIDProperty]
	if !ok {
		return ""
	}
	rt, ok := prop.(*notionapi.RichTextProperty)
	if !ok || len(rt.RichText) == 0 {
		return ""
	}
	return rt.RichText[0].PlainText
}
