package insights

import (
	"math"

	"github.com/dvloznov/budgetmentor/internal/model"
)

// Metrics computes the month-scoped and whole-collection totals in one pass
// each. SavingsRate guards the zero-income case and reports 0 instead of
// dividing by zero.
func (e *Engine) Metrics(transactions []model.Transaction) Metrics {
	now := e.now()

	var m Metrics
	for _, t := range transactions {
		if t.IsIncome() {
			m.TotalIncome += t.Amount
		} else if t.IsExpense() {
			m.TotalExpenses += t.Magnitude()
		}

		if !t.Date.SameMonth(now) {
			continue
		}
		if t.IsIncome() {
			m.MonthlyIncome += t.Amount
		} else if t.IsExpense() {
			m.MonthlyExpenses += t.Magnitude()
		}
	}

	m.MonthlySavings = m.MonthlyIncome - m.MonthlyExpenses
	if m.MonthlyIncome > 0 {
		m.SavingsRate = m.MonthlySavings / m.MonthlyIncome
	}
	m.NetWorth = m.TotalIncome - m.TotalExpenses

	return m
}

// CategorySpending sums expense magnitude per category label over the whole
// collection. The result follows the fixed category order and includes
// zero-spend categories; consumers that only want active spending filter
// them out.
func (e *Engine) CategorySpending(transactions []model.Transaction) []CategorySpend {
	sums := make(map[string]float64, len(model.Categories))
	for _, t := range transactions {
		if t.IsExpense() {
			sums[t.Category] += t.Magnitude()
		}
	}

	spending := make([]CategorySpend, 0, len(model.Categories))
	for _, c := range model.Categories {
		spending = append(spending, CategorySpend{Category: c, Amount: sums[c]})
	}
	return spending
}

// ActiveSpending is the spending breakdown the dashboard charts consume:
// zero-spend categories and the Income pseudo-category are dropped.
func (e *Engine) ActiveSpending(transactions []model.Transaction) []CategorySpend {
	all := e.CategorySpending(transactions)
	active := make([]CategorySpend, 0, len(all))
	for _, s := range all {
		if s.Amount > 0 && s.Category != model.CategoryIncome {
			active = append(active, s)
		}
	}
	return active
}

// totalSpending sums all category buckets.
func totalSpending(spending []CategorySpend) float64 {
	var total float64
	for _, s := range spending {
		total += s.Amount
	}
	return total
}

// Recommendations turns category spending into suggested caps. Zero-spend
// categories and the Income pseudo-category are skipped; output order is the
// order of the spending slice. The cap keeps the larger of an 85% cut and a
// flat 50-unit cut, so small budgets are not squeezed too hard.
func (e *Engine) Recommendations(spending []CategorySpend) []Recommendation {
	recs := make([]Recommendation, 0, len(spending))
	for _, s := range spending {
		if s.Amount <= 0 || s.Category == model.CategoryIncome {
			continue
		}

		limit := math.Max(s.Amount*0.85, s.Amount-50)
		current := math.Round(s.Amount)
		recommended := math.Round(limit)

		recs = append(recs, Recommendation{
			Category:         s.Category,
			CurrentSpend:     current,
			RecommendedLimit: recommended,
			Savings:          current - recommended,
		})
	}
	return recs
}

// ClassifyBehavior buckets the spending-to-income ratio into one of three
// labels, first match wins. With zero income the comparisons degenerate to
// comparisons against zero: any spending classifies as High Spender and no
// spending as Balanced Spender.
func ClassifyBehavior(totalSpend, income float64) string {
	switch {
	case totalSpend > income*0.8:
		return ClusterHighSpender
	case totalSpend < income*0.5:
		return ClusterConservativeSpender
	default:
		return ClusterBalancedSpender
	}
}

// RiskScore maps the spending-to-income ratio onto [1, 10], rounded to one
// decimal place. Zero income yields 10 when there is any spending (the
// clamp's limit) and 0 when there is none.
func RiskScore(totalSpend, income float64) float64 {
	if income <= 0 {
		if totalSpend > 0 {
			return 10
		}
		return 0
	}

	score := totalSpend / income * 10
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return math.Round(score*10) / 10
}
