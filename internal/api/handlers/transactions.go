// Package handlers implements the dashboard REST API. Each resource gets its
// own handler struct over the record store; routing lives in router.go.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dvloznov/budgetmentor/internal/api/middleware"
	"github.com/dvloznov/budgetmentor/internal/model"
	"github.com/dvloznov/budgetmentor/internal/store"
)

// TransactionsHandler handles transaction-related endpoints.
type TransactionsHandler struct {
	store *store.Store
	log   zerolog.Logger
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(s *store.Store, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{
		store: s,
		log:   log,
	}
}

// List handles GET /api/transactions
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	transactions := h.store.Transactions()
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	middleware.WriteJSON(w, http.StatusOK, transactions)
}

// Create handles POST /api/transactions
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t model.Transaction
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if t.Description == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Description is required")
		return
	}
	if t.Date.IsZero() {
		middleware.WriteError(w, http.StatusBadRequest, "Date is required")
		return
	}

	created, bundle, err := h.store.AddTransaction(r.Context(), t)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create transaction")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"transaction": created,
		"insights":    bundle,
	})
}

// Delete handles DELETE /api/transactions/{id}
func (h *TransactionsHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	bundle, err := h.store.DeleteTransaction(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.WriteError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		h.log.Error().Err(err).Str("transaction_id", id).Msg("Failed to delete transaction")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Transaction deleted successfully",
		"insights": bundle,
	})
}
