package insights

import (
	"fmt"

	"github.com/dvloznov/budgetmentor/internal/model"
)

const (
	// anomalyWindow is how many of the most recently inserted transactions
	// the detector inspects. The window is by insertion order, not by date:
	// newly added entries are what the user wants flagged.
	anomalyWindow = 10

	// anomalyFactor flags expenses above this multiple of the window's
	// average expense magnitude.
	anomalyFactor = 2.0

	anomalyReason = "Significantly above average spending"
)

// DetectAnomalies flags expenses in the recent window whose magnitude
// exceeds twice the window's average expense. A window with no expenses
// produces no anomalies rather than an undefined average.
func (e *Engine) DetectAnomalies(transactions []model.Transaction) []Anomaly {
	window := transactions
	if len(window) > anomalyWindow {
		window = window[len(window)-anomalyWindow:]
	}

	var sum float64
	var count int
	for _, t := range window {
		if t.IsExpense() {
			sum += t.Magnitude()
			count++
		}
	}
	if count == 0 {
		return []Anomaly{}
	}
	avg := sum / float64(count)

	anomalies := make([]Anomaly, 0)
	for _, t := range window {
		if t.IsExpense() && t.Magnitude() > avg*anomalyFactor {
			anomalies = append(anomalies, Anomaly{
				Transaction: fmt.Sprintf("%s %.2f", t.Description, t.Magnitude()),
				Reason:      anomalyReason,
				Date:        t.Date,
			})
		}
	}
	return anomalies
}
