package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dvloznov/budgetmentor/internal/api/middleware"
	"github.com/dvloznov/budgetmentor/internal/insights"
	"github.com/dvloznov/budgetmentor/internal/store"
)

// InsightsHandler serves the derived analytics views.
type InsightsHandler struct {
	store  *store.Store
	engine *insights.Engine
	log    zerolog.Logger
}

// NewInsightsHandler creates a new insights handler.
func NewInsightsHandler(s *store.Store, engine *insights.Engine, log zerolog.Logger) *InsightsHandler {
	return &InsightsHandler{
		store:  s,
		engine: engine,
		log:    log,
	}
}

// GetInsights handles GET /api/insights
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, h.store.Insights())
}

// GetProfile handles GET /api/profile
func (h *InsightsHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, h.store.Profile())
}

// GetMetrics handles GET /api/metrics
func (h *InsightsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, h.store.Metrics())
}

// GetTrends handles GET /api/trends
func (h *InsightsHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	trend := h.store.Trend()
	if trend == nil {
		trend = []insights.TrendPoint{}
	}
	middleware.WriteJSON(w, http.StatusOK, trend)
}

// PredictCluster handles POST /api/predict-cluster
func (h *InsightsHandler) PredictCluster(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Food          float64 `json:"food"`
		Transport     float64 `json:"transport"`
		Entertainment float64 `json:"entertainment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cluster := insights.PredictCluster(req.Food, req.Transport, req.Entertainment)
	middleware.WriteJSON(w, http.StatusOK, map[string]string{"cluster": cluster})
}

// ForecastSpending handles POST /api/forecast
func (h *InsightsHandler) ForecastSpending(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Spending []float64 `json:"spending"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	forecast := h.engine.ForecastFromSeries(req.Spending)
	middleware.WriteJSON(w, http.StatusOK, map[string][]float64{"forecast": forecast})
}
