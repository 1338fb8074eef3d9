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

// GoalsHandler handles goal-related endpoints.
type GoalsHandler struct {
	store *store.Store
	log   zerolog.Logger
}

// NewGoalsHandler creates a new goals handler.
func NewGoalsHandler(s *store.Store, log zerolog.Logger) *GoalsHandler {
	return &GoalsHandler{
		store: s,
		log:   log,
	}
}

// List handles GET /api/goals
func (h *GoalsHandler) List(w http.ResponseWriter, r *http.Request) {
	goals := h.store.Goals()
	if goals == nil {
		goals = []model.Goal{}
	}
	middleware.WriteJSON(w, http.StatusOK, goals)
}

// Create handles POST /api/goals
func (h *GoalsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var g model.Goal
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if g.Name == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if g.Target <= 0 {
		middleware.WriteError(w, http.StatusBadRequest, "target_amount must be positive")
		return
	}

	created, err := h.store.AddGoal(r.Context(), g)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create goal")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/goals/{id}
func (h *GoalsHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		Current float64 `json:"current_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.UpdateGoalProgress(r.Context(), id, req.Current); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.WriteError(w, http.StatusNotFound, "Goal not found")
			return
		}
		h.log.Error().Err(err).Str("goal_id", id).Msg("Failed to update goal")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Goal updated successfully",
	})
}

// Delete handles DELETE /api/goals/{id}
func (h *GoalsHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.DeleteGoal(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.WriteError(w, http.StatusNotFound, "Goal not found")
			return
		}
		h.log.Error().Err(err).Str("goal_id", id).Msg("Failed to delete goal")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Goal deleted successfully",
	})
}
