// Package charts renders the dashboard's PNG charts with go-chart. Every
// generator returns nil bytes when there is no data to draw, which the API
// layer maps to 204.
package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/dvloznov/budgetmentor/internal/insights"
)

// Generator renders the dashboard charts.
type Generator struct{}

// NewGenerator creates a chart generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// CategoryPie renders the per-category spending breakdown as a pie chart.
func (g *Generator) CategoryPie(spending []insights.CategorySpend) ([]byte, error) {
	if len(spending) == 0 {
		return nil, nil
	}

	var total float64
	for _, s := range spending {
		total += s.Amount
	}
	if total <= 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(spending))
	for _, s := range spending {
		percentage := s.Amount / total * 100
		// Slivers below 1% clutter the chart.
		if percentage <= 1.0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %.0f (%.1f%%)", s.Category, s.Amount, percentage),
			Value: s.Amount,
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Title:  "Spending by Category",
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category pie chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// TrendChart renders the monthly income and expense series.
func (g *Generator) TrendChart(trend []insights.TrendPoint) ([]byte, error) {
	// go-chart needs at least two points to draw a time series.
	if len(trend) < 2 {
		return nil, nil
	}

	xValues := make([]float64, len(trend))
	incomeValues := make([]float64, len(trend))
	expenseValues := make([]float64, len(trend))
	ticks := make([]chart.Tick, len(trend))
	for i, p := range trend {
		xValues[i] = float64(i)
		incomeValues[i] = p.Income
		expenseValues[i] = p.Expenses
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Month}
	}

	graph := chart.Chart{
		Title:  "Income vs Expenses",
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: incomeValues,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "Expenses",
				XValues: xValues,
				YValues: expenseValues,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render trend chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// ForecastChart renders the trailing spending forecast as bars, one per
// month. The current month shows the actual value next to the prediction.
func (g *Generator) ForecastChart(points []insights.ForecastPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(points)+1)
	for _, p := range points {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s: %.0f", p.Month, p.Predicted),
			Value: p.Predicted,
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				FillColor:   chart.ColorBlue.WithAlpha(100),
			},
		})
		if p.Actual != nil {
			bars = append(bars, chart.Value{
				Label: fmt.Sprintf("%s actual: %.0f", p.Month, *p.Actual),
				Value: *p.Actual,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					FillColor:   chart.ColorBlue,
				},
			})
		}
	}

	graph := chart.BarChart{
		Title:    "Spending Forecast",
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render forecast chart: %w", err)
	}
	return buffer.Bytes(), nil
}
