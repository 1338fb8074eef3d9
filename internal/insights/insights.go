// Package insights derives dashboard analytics from the raw transaction
// collection. Every function here is a pure view over its input: the outputs
// hold no state of their own and are recomputed in full after each change to
// the record store, never patched incrementally.
package insights

import (
	"time"

	"github.com/dvloznov/budgetmentor/internal/model"
)

// Metrics are the headline figures. The monthly_* fields are scoped to the
// current calendar month; total_* cover the whole collection. The two views
// are independent and must not be conflated.
type Metrics struct {
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	MonthlySavings  float64 `json:"monthly_savings"`
	SavingsRate     float64 `json:"savings_rate"`

	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetWorth      float64 `json:"net_worth"`
}

// CategorySpend is the expense total for one category label.
type CategorySpend struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Recommendation is a suggested spending cap for one category. All three
// amounts are rounded to the nearest unit of currency, and Savings is always
// exactly CurrentSpend - RecommendedLimit.
type Recommendation struct {
	Category         string  `json:"category"`
	CurrentSpend     float64 `json:"current_spend"`
	RecommendedLimit float64 `json:"recommended_limit"`
	Savings          float64 `json:"savings"`
}

// Behavior cluster labels, from the spending-to-income ratio.
const (
	ClusterHighSpender         = "High Spender"
	ClusterConservativeSpender = "Conservative Spender"
	ClusterBalancedSpender     = "Balanced Spender"
)

// Anomaly flags one recent expense whose magnitude is large relative to the
// recent window's average.
type Anomaly struct {
	Transaction string     `json:"transaction"`
	Reason      string     `json:"reason"`
	Date        model.Date `json:"date"`
}

// ForecastPoint is one month of the trailing spending forecast. Actual is
// populated only for the current month; historical rows carry a predicted
// value derived from their own actual spend.
type ForecastPoint struct {
	Month     string   `json:"month"`
	Predicted float64  `json:"predicted"`
	Actual    *float64 `json:"actual"`
}

// TrendPoint is one month's income/expense bucket. Start is the first day of
// the bucket's month and orders the series chronologically.
type TrendPoint struct {
	Month    string    `json:"month"`
	Income   float64   `json:"income"`
	Expenses float64   `json:"expenses"`
	Start    time.Time `json:"-"`
}

// Bundle is the full set of derived analytics. It is a pure function of the
// transaction collection and disposable at any time.
type Bundle struct {
	CategoryRecommendations []Recommendation `json:"category_recommendations"`
	BehaviorCluster         string           `json:"behavior_cluster"`
	RiskScore               float64          `json:"risk_score"`
	Anomalies               []Anomaly        `json:"anomalies"`
	SpendingForecast        []ForecastPoint  `json:"spending_forecast"`
}

// Profile is the derived user profile. It is never edited directly; the
// record store rebuilds it from the transaction collection after every
// change.
type Profile struct {
	MonthlyIncome   float64 `json:"monthly_income"`
	RiskTolerance   string  `json:"risk_tolerance"`
	SpendingCluster string  `json:"spending_cluster"`
	SavingsRate     float64 `json:"savings_rate"`
}
