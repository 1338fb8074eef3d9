package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dvloznov/budgetmentor/internal/api/middleware"
	"github.com/dvloznov/budgetmentor/internal/categorize"
)

// CategorizeHandler suggests categories for transaction descriptions.
type CategorizeHandler struct {
	suggester categorize.Suggester
	log       zerolog.Logger
}

// NewCategorizeHandler creates a new categorize handler.
func NewCategorizeHandler(suggester categorize.Suggester, log zerolog.Logger) *CategorizeHandler {
	return &CategorizeHandler{
		suggester: suggester,
		log:       log,
	}
}

// Categorize handles POST /api/categorize
func (h *CategorizeHandler) Categorize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Description == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Description is required")
		return
	}

	category, err := h.suggester.Suggest(r.Context(), req.Description)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to suggest category")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to suggest category")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"category": category})
}
