package insights

import (
	"sort"
	"time"

	"github.com/dvloznov/budgetmentor/internal/model"
)

// Trend buckets every transaction by calendar month and accumulates income
// and expense totals per bucket. The result is sorted by the month each
// bucket represents, not by its label, so interleaved years come out in
// chronological order.
func (e *Engine) Trend(transactions []model.Transaction) []TrendPoint {
	buckets := make(map[string]*TrendPoint)

	for _, t := range transactions {
		start := time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		key := start.Format("Jan 06")

		point, ok := buckets[key]
		if !ok {
			point = &TrendPoint{Month: key, Start: start}
			buckets[key] = point
		}
		if t.IsIncome() {
			point.Income += t.Amount
		} else if t.IsExpense() {
			point.Expenses += t.Magnitude()
		}
	}

	trend := make([]TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Start.Before(trend[j].Start)
	})
	return trend
}
