package model

import "strings"

const (
	// CategoryIncome is the pseudo-category for income entries. It is
	// excluded from spending aggregation and from recommendations.
	CategoryIncome = "Income"

	// CategoryOther is the fallback for entries with no usable category.
	CategoryOther = "Other"
)

// Categories is the fixed label set, in display order. Aggregations iterate
// this slice so their output order is stable.
var Categories = []string{
	"Food & Dining",
	"Transportation",
	"Entertainment",
	"Shopping",
	"Utilities",
	"Health & Fitness",
	CategoryIncome,
	CategoryOther,
}

// ValidCategory reports whether name is one of the fixed labels.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// NormalizeCategory trims the label and substitutes Other for empty input.
// No transaction may carry an empty category.
func NormalizeCategory(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return CategoryOther
	}
	return name
}
