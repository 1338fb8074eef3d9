package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/budgetmentor/internal/api/middleware"
	"github.com/dvloznov/budgetmentor/internal/categorize"
	"github.com/dvloznov/budgetmentor/internal/charts"
	"github.com/dvloznov/budgetmentor/internal/insights"
	"github.com/dvloznov/budgetmentor/internal/store"
)

// NewMux wires every API route onto a fresh ServeMux. It takes the already
// constructed collaborators so tests can assemble it over an in-memory store.
func NewMux(s *store.Store, engine *insights.Engine, suggester categorize.Suggester, log zerolog.Logger) *http.ServeMux {
	transactionsHandler := NewTransactionsHandler(s, log)
	goalsHandler := NewGoalsHandler(s, log)
	insightsHandler := NewInsightsHandler(s, engine, log)
	categorizeHandler := NewCategorizeHandler(suggester, log)
	chartsHandler := NewChartsHandler(s, charts.NewGenerator(), log)

	mux := http.NewServeMux()

	// Transactions endpoints
	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			transactionsHandler.List(w, r)
		case http.MethodPost:
			transactionsHandler.Create(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/transactions/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
		if id == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Transaction ID is required")
			return
		}
		if r.Method == http.MethodDelete {
			transactionsHandler.Delete(w, r, id)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Goals endpoints
	mux.HandleFunc("/api/goals", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			goalsHandler.List(w, r)
		case http.MethodPost:
			goalsHandler.Create(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/goals/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/goals/")
		if id == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Goal ID is required")
			return
		}
		switch r.Method {
		case http.MethodPut:
			goalsHandler.Update(w, r, id)
		case http.MethodDelete:
			goalsHandler.Delete(w, r, id)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Derived view endpoints
	mux.HandleFunc("/api/insights", requireGet(insightsHandler.GetInsights))
	mux.HandleFunc("/api/profile", requireGet(insightsHandler.GetProfile))
	mux.HandleFunc("/api/metrics", requireGet(insightsHandler.GetMetrics))
	mux.HandleFunc("/api/trends", requireGet(insightsHandler.GetTrends))

	mux.HandleFunc("/api/predict-cluster", requirePost(insightsHandler.PredictCluster))
	mux.HandleFunc("/api/forecast", requirePost(insightsHandler.ForecastSpending))
	mux.HandleFunc("/api/categorize", requirePost(categorizeHandler.Categorize))

	// Chart endpoints
	mux.HandleFunc("/api/charts/categories", requireGet(chartsHandler.Categories))
	mux.HandleFunc("/api/charts/trend", requireGet(chartsHandler.Trend))
	mux.HandleFunc("/api/charts/forecast", requireGet(chartsHandler.Forecast))

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return mux
}

func requireGet(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h(w, r)
	}
}

func requirePost(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h(w, r)
	}
}
