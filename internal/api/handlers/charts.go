package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dvloznov/budgetmentor/internal/api/middleware"
	"github.com/dvloznov/budgetmentor/internal/charts"
	"github.com/dvloznov/budgetmentor/internal/store"
)

// ChartsHandler serves rendered PNG charts over the current collections.
type ChartsHandler struct {
	store     *store.Store
	generator *charts.Generator
	log       zerolog.Logger
}

// NewChartsHandler creates a new charts handler.
func NewChartsHandler(s *store.Store, generator *charts.Generator, log zerolog.Logger) *ChartsHandler {
	return &ChartsHandler{
		store:     s,
		generator: generator,
		log:       log,
	}
}

// Categories handles GET /api/charts/categories
func (h *ChartsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	png, err := h.generator.CategoryPie(h.store.Spending())
	h.writeChart(w, png, err, "category chart")
}

// Trend handles GET /api/charts/trend
func (h *ChartsHandler) Trend(w http.ResponseWriter, r *http.Request) {
	png, err := h.generator.TrendChart(h.store.Trend())
	h.writeChart(w, png, err, "trend chart")
}

// Forecast handles GET /api/charts/forecast
func (h *ChartsHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	png, err := h.generator.ForecastChart(h.store.Insights().SpendingForecast)
	h.writeChart(w, png, err, "forecast chart")
}

func (h *ChartsHandler) writeChart(w http.ResponseWriter, png []byte, err error, name string) {
	if err != nil {
		h.log.Error().Err(err).Str("chart", name).Msg("Failed to render chart")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}
	if png == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
