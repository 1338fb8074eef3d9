package notion

import (
	"context"
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/rs/zerolog"

	"github.com/dvloznov/budgetmentor/internal/model"
)

// mockService records the sync's calls against a fixed set of pages.
type mockService struct {
	pages []notionapi.Page

	created  []notionapi.Properties
	updated  map[string]notionapi.Properties
	archived []string
}

func newMockService(pages ...notionapi.Page) *mockService {
	return &mockService{
		pages:   pages,
		updated: make(map[string]notionapi.Properties),
	}
}

func (m *mockService) CreatePage(ctx context.Context, databaseID string, properties notionapi.Properties) (*notionapi.Page, error) {
	m.created = append(m.created, properties)
	return &notionapi.Page{}, nil
}

func (m *mockService) UpdatePage(ctx context.Context, pageID string, properties notionapi.Properties) (*notionapi.Page, error) {
	m.updated[pageID] = properties
	return &notionapi.Page{}, nil
}

func (m *mockService) QueryDatabase(ctx context.Context, databaseID string, filter *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error) {
	return &notionapi.DatabaseQueryResponse{
		Results: m.pages,
		HasMore: false,
	}, nil
}

func (m *mockService) DeletePage(ctx context.Context, pageID string) error {
	m.archived = append(m.archived, pageID)
	return nil
}

func goalPage(pageID, goalID string) notionapi.Page {
	return notionapi.Page{
		ID: notionapi.ObjectID(pageID),
		Properties: notionapi.Properties{
			goalIDProperty: &notionapi.RichTextProperty{
				RichText: []notionapi.RichText{
					{PlainText: goalID},
				},
			},
		},
	}
}

func testGoal(id, name string) model.Goal {
	return model.Goal{
		ID:       id,
		Name:     name,
		Target:   10000,
		Current:  3500,
		Priority: model.PriorityHigh,
		Deadline: model.NewDate(2025, time.June, 1),
	}
}

func TestSyncGoals_CreatesMissingPages(t *testing.T) {
	svc := newMockService()

	err := SyncGoals(context.Background(), svc, "db", []model.Goal{testGoal("g1", "Emergency Fund")}, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("SyncGoals: %v", err)
	}

	if len(svc.created) != 1 {
		t.Fatalf("created %d pages, want 1", len(svc.created))
	}
	if len(svc.updated) != 0 || len(svc.archived) != 0 {
		t.Errorf("unexpected updates %d or archives %d", len(svc.updated), len(svc.archived))
	}
}

func TestSyncGoals_UpdatesExistingPages(t *testing.T) {
	svc := newMockService(goalPage("page-1", "g1"))

	err := SyncGoals(context.Background(), svc, "db", []model.Goal{testGoal("g1", "Emergency Fund")}, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("SyncGoals: %v", err)
	}

	if len(svc.created) != 0 {
		t.Errorf("created %d pages, want 0", len(svc.created))
	}
	if _, ok := svc.updated["page-1"]; !ok {
		t.Error("expected page-1 to be updated")
	}
}

func TestSyncGoals_ArchivesStalePages(t *testing.T) {
	svc := newMockService(goalPage("page-1", "g1"), goalPage("page-2", "gone"))

	err := SyncGoals(context.Background(), svc, "db", []model.Goal{testGoal("g1", "Emergency Fund")}, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("SyncGoals: %v", err)
	}

	if len(svc.archived) != 1 || svc.archived[0] != "page-2" {
		t.Errorf("archived = %v, want [page-2]", svc.archived)
	}
}

func TestSyncGoals_DryRunWritesNothing(t *testing.T) {
	svc := newMockService(goalPage("page-1", "gone"))

	err := SyncGoals(context.Background(), svc, "db", []model.Goal{testGoal("g1", "Emergency Fund")}, true, zerolog.Nop())
	if err != nil {
		t.Fatalf("SyncGoals: %v", err)
	}

	if len(svc.created) != 0 || len(svc.updated) != 0 || len(svc.archived) != 0 {
		t.Errorf("dry run wrote: created %d, updated %d, archived %d",
			len(svc.created), len(svc.updated), len(svc.archived))
	}
}
