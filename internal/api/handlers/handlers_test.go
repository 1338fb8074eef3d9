package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/budgetmentor/internal/categorize"
	"github.com/dvloznov/budgetmentor/internal/insights"
	"github.com/dvloznov/budgetmentor/internal/model"
	"github.com/dvloznov/budgetmentor/internal/store"
	"github.com/dvloznov/budgetmentor/internal/store/inmemory"
)

func mustTransaction(t *testing.T, raw string) model.Transaction {
	t.Helper()
	var tr model.Transaction
	if err := json.Unmarshal([]byte(raw), &tr); err != nil {
		t.Fatalf("unmarshal transaction: %v", err)
	}
	return tr
}

func newTestMux(t *testing.T) (*http.ServeMux, *store.Store) {
	t.Helper()

	engine := insights.NewEngineWithSource(
		func() time.Time { return time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC) },
		rand.New(rand.NewSource(42)),
	)
	s := store.New(inmemory.NewRepository(), engine, zerolog.Nop())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	mux := NewMux(s, engine, categorize.NewKeywordSuggester(), zerolog.Nop())
	return mux, s
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestTransactions_CreateAndList(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/transactions",
		`{"description":"Salary Direct Deposit","amount":3500,"category":"Income","date":"2024-12-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Transaction struct {
			ID       string  `json:"id"`
			Amount   float64 `json:"amount"`
			Category string  `json:"category"`
			Date     string  `json:"date"`
		} `json:"transaction"`
		Insights insights.Bundle `json:"insights"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Transaction.ID == "" {
		t.Error("created transaction has no ID")
	}
	if created.Transaction.Date != "2024-12-01" {
		t.Errorf("date = %q, want 2024-12-01", created.Transaction.Date)
	}
	if created.Insights.BehaviorCluster != insights.ClusterConservativeSpender {
		t.Errorf("cluster = %q", created.Insights.BehaviorCluster)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/transactions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	var listed []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("listed %d transactions, want 1", len(listed))
	}
}

func TestTransactions_CreateValidation(t *testing.T) {
	mux, _ := newTestMux(t)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"missing description", `{"amount":-5,"category":"Shopping","date":"2024-12-01"}`},
		{"missing date", `{"description":"x","amount":-5,"category":"Shopping"}`},
		{"bad date", `{"description":"x","amount":-5,"category":"Shopping","date":"yesterday"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, mux, http.MethodPost, "/api/transactions", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestTransactions_Delete(t *testing.T) {
	mux, s := newTestMux(t)

	created, _, err := s.AddTransaction(context.Background(), mustTransaction(t,
		`{"description":"TV","amount":-900,"category":"Shopping","date":"2024-12-03"}`))
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	rec := doJSON(t, mux, http.MethodDelete, "/api/transactions/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := len(s.Transactions()); got != 0 {
		t.Errorf("transactions after delete = %d, want 0", got)
	}

	rec = doJSON(t, mux, http.MethodDelete, "/api/transactions/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second DELETE status = %d, want 404", rec.Code)
	}
}

func TestGoals_Lifecycle(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/goals",
		`{"name":"Emergency Fund","target_amount":10000,"current_amount":3500,"priority":"High","deadline":"2025-06-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, body %s", rec.Code, rec.Body.String())
	}
	var goal struct {
		ID      string  `json:"id"`
		Target  float64 `json:"target_amount"`
		Current float64 `json:"current_amount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &goal); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if goal.ID == "" || goal.Target != 10000 {
		t.Fatalf("created goal = %+v", goal)
	}

	rec = doJSON(t, mux, http.MethodPut, "/api/goals/"+goal.ID, `{"current_amount":5000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/goals", "")
	var goals []struct {
		Current float64 `json:"current_amount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &goals); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(goals) != 1 || goals[0].Current != 5000 {
		t.Fatalf("goals = %+v", goals)
	}

	rec = doJSON(t, mux, http.MethodDelete, "/api/goals/"+goal.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE status = %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPut, "/api/goals/"+goal.ID, `{"current_amount":1}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("PUT on deleted goal = %d, want 404", rec.Code)
	}
}

func TestGoals_CreateValidation(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/goals", `{"name":"","target_amount":100}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty name status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/goals", `{"name":"x","target_amount":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("zero target status = %d, want 400", rec.Code)
	}
}

func TestDerivedViews(t *testing.T) {
	mux, _ := newTestMux(t)

	doJSON(t, mux, http.MethodPost, "/api/transactions",
		`{"description":"Salary","amount":3500,"category":"Income","date":"2024-12-01"}`)
	doJSON(t, mux, http.MethodPost, "/api/transactions",
		`{"description":"Groceries","amount":-450,"category":"Food & Dining","date":"2024-12-05"}`)

	rec := doJSON(t, mux, http.MethodGet, "/api/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/metrics = %d", rec.Code)
	}
	var m insights.Metrics
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode metrics: %v", err)
	}
	if m.MonthlyIncome != 3500 || m.MonthlyExpenses != 450 {
		t.Errorf("metrics = %+v", m)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/profile", "")
	var p insights.Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if p.SpendingCluster != insights.ClusterConservativeSpender {
		t.Errorf("profile cluster = %q", p.SpendingCluster)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/insights", "")
	var b insights.Bundle
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode insights: %v", err)
	}
	if len(b.SpendingForecast) != 4 {
		t.Errorf("forecast rows = %d, want 4", len(b.SpendingForecast))
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/trends", "")
	var trend []insights.TrendPoint
	if err := json.Unmarshal(rec.Body.Bytes(), &trend); err != nil {
		t.Fatalf("decode trends: %v", err)
	}
	if len(trend) != 1 || trend[0].Month != "Dec 24" {
		t.Errorf("trend = %+v", trend)
	}
}

func TestPredictCluster(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/predict-cluster",
		`{"food":900,"transport":500,"entertainment":400}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["cluster"] != insights.ClusterHighSpender {
		t.Errorf("cluster = %q, want %q", resp["cluster"], insights.ClusterHighSpender)
	}
}

func TestForecastSpending(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/forecast", `{"spending":[100,200,300]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Forecast []float64 `json:"forecast"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Forecast) != 4 {
		t.Fatalf("forecast length = %d, want 4", len(resp.Forecast))
	}
	// Baseline is 200; jitter stays within 5%.
	for i, v := range resp.Forecast {
		if v < 190 || v > 210 {
			t.Errorf("forecast[%d] = %v, outside jitter bounds", i, v)
		}
	}
}

func TestCategorize(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/categorize", `{"description":"Starbucks Coffee Downtown"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["category"] != "Food & Dining" {
		t.Errorf("category = %q, want Food & Dining", resp["category"])
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/categorize", `{"description":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty description status = %d, want 400", rec.Code)
	}
}

func TestCharts(t *testing.T) {
	mux, _ := newTestMux(t)

	// No data yet: charts respond 204.
	rec := doJSON(t, mux, http.MethodGet, "/api/charts/categories", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("empty categories chart = %d, want 204", rec.Code)
	}

	doJSON(t, mux, http.MethodPost, "/api/transactions",
		`{"description":"Groceries","amount":-450,"category":"Food & Dining","date":"2024-12-05"}`)

	rec = doJSON(t, mux, http.MethodGet, "/api/charts/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("categories chart = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("body is not a PNG")
	}
}

func TestHealth(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPut, "/api/transactions", "{}")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("PUT /api/transactions = %d, want 405", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodPost, "/api/metrics", "{}")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /api/metrics = %d, want 405", rec.Code)
	}
}
