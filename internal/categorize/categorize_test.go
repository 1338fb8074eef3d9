package categorize

import (
	"context"
	"testing"

	"github.com/dvloznov/budgetmentor/internal/model"
)

func TestKeywordSuggester(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Starbucks Coffee Downtown", "Food & Dining"},
		{"Uber ride home", "Transportation"},
		{"Netflix Subscription", "Entertainment"},
		{"Amazon order #1234", "Shopping"},
		{"Monthly rent payment", "Utilities"},
		{"Gym membership", "Health & Fitness"},
		{"Salary Direct Deposit", "Income"},
		{"Mystery charge", model.CategoryOther},
		{"", model.CategoryOther},
	}

	s := NewKeywordSuggester()
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := s.Suggest(context.Background(), tt.description)
			if err != nil {
				t.Fatalf("Suggest: %v", err)
			}
			if got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestKeywordSuggester_AlwaysValid(t *testing.T) {
	s := NewKeywordSuggester()
	for _, desc := range []string{"zzz", "Grocery run", "electric bill", "random"} {
		got, err := s.Suggest(context.Background(), desc)
		if err != nil {
			t.Fatalf("Suggest(%q): %v", desc, err)
		}
		if !model.ValidCategory(got) {
			t.Errorf("Suggest(%q) = %q, not in the taxonomy", desc, got)
		}
	}
}

func TestCleanModelAnswer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Food & Dining", "Food & Dining"},
		{"quoted", `"Shopping"`, "Shopping"},
		{"fenced", "```\nUtilities\n```", "Utilities"},
		{"trailing period", "Entertainment.", "Entertainment"},
		{"multiline", "Transportation\nbecause it is a taxi", "Transportation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanModelAnswer(tt.input); got != tt.want {
				t.Errorf("cleanModelAnswer(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
