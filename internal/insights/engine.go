package insights

import (
	"math/rand"
	"time"

	"github.com/dvloznov/budgetmentor/internal/model"
)

// jitterRange bounds the synthetic forecast noise: the projection multiplies
// actual spend by a factor drawn uniformly from [1-jitterRange, 1+jitterRange].
const jitterRange = 0.05

// Engine computes all derived views. The clock and the random source behind
// the forecast jitter are injectable so tests get deterministic output.
type Engine struct {
	now    func() time.Time
	jitter func() float64
}

// NewEngine returns an engine on the wall clock with real jitter.
func NewEngine() *Engine {
	return NewEngineWithSource(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWithSource returns an engine with an explicit clock and random
// source.
func NewEngineWithSource(now func() time.Time, rng *rand.Rand) *Engine {
	return &Engine{
		now: now,
		jitter: func() float64 {
			return (rng.Float64()*2 - 1) * jitterRange
		},
	}
}

// Bundle recomputes the full insight bundle from the transaction collection.
func (e *Engine) Bundle(transactions []model.Transaction) Bundle {
	spending := e.CategorySpending(transactions)
	metrics := e.Metrics(transactions)
	totalSpend := totalSpending(spending)

	return Bundle{
		CategoryRecommendations: e.Recommendations(spending),
		BehaviorCluster:         ClassifyBehavior(totalSpend, metrics.MonthlyIncome),
		RiskScore:               RiskScore(totalSpend, metrics.MonthlyIncome),
		Anomalies:               e.DetectAnomalies(transactions),
		SpendingForecast:        e.Forecast(transactions),
	}
}

// Profile recomputes the derived user profile. The spending cluster matches
// the one in the bundle produced from the same collection.
func (e *Engine) Profile(transactions []model.Transaction) Profile {
	metrics := e.Metrics(transactions)
	totalSpend := totalSpending(e.CategorySpending(transactions))

	return Profile{
		MonthlyIncome: metrics.MonthlyIncome,
		// Risk tolerance is a static self-assessment, not derived from
		// the transaction history.
		RiskTolerance:   "Medium",
		SpendingCluster: ClassifyBehavior(totalSpend, metrics.MonthlyIncome),
		SavingsRate:     metrics.SavingsRate,
	}
}
