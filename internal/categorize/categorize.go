// Package categorize suggests a category label for a transaction description.
// The Gemini-backed suggester is used when an API key is configured; the
// keyword suggester is the offline fallback and the tiebreak when the model
// returns something outside the fixed taxonomy.
package categorize

import (
	"context"
	"strings"

	"github.com/dvloznov/budgetmentor/internal/model"
)

// Suggester maps a free-text description to one of the fixed categories.
type Suggester interface {
	Suggest(ctx context.Context, description string) (string, error)
}

// KeywordSuggester categorizes by substring matching against a small keyword
// table. It never fails and always returns a valid category.
type KeywordSuggester struct{}

// NewKeywordSuggester creates the offline suggester.
func NewKeywordSuggester() *KeywordSuggester {
	return &KeywordSuggester{}
}

// keywordTable maps lowercase substrings to categories. First match wins, in
// the order of model.Categories.
var keywordTable = map[string][]string{
	"Food & Dining":    {"coffee", "restaurant", "grocery", "groceries", "starbucks", "cafe", "pizza", "food", "dining", "lunch", "dinner"},
	"Transportation":   {"uber", "lyft", "taxi", "gas", "fuel", "parking", "transit", "train", "bus fare"},
	"Entertainment":    {"netflix", "spotify", "cinema", "movie", "concert", "game", "theatre"},
	"Shopping":         {"amazon", "mall", "clothing", "shoes", "electronics", "store"},
	"Utilities":        {"electric", "water bill", "internet", "phone bill", "utility", "rent"},
	"Health & Fitness": {"gym", "pharmacy", "doctor", "dentist", "fitness", "yoga"},
	"Income":           {"salary", "paycheck", "deposit", "refund", "dividend"},
}

// Suggest implements Suggester.
func (s *KeywordSuggester) Suggest(ctx context.Context, description string) (string, error) {
	desc := strings.ToLower(description)
	for _, category := range model.Categories {
		for _, kw := range keywordTable[category] {
			if strings.Contains(desc, kw) {
				return category, nil
			}
		}
	}
	return model.CategoryOther, nil
}
