package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hackathon-backend/internal/service"
)

type ResultsHandler struct {
	results *service.ResultsService
}

func NewResultsHandler(results *service.ResultsService) *ResultsHandler {
	return &ResultsHandler{results: results}
}

func (h *ResultsHandler) Overall(w http.ResponseWriter, r *http.Request) {
	scores, err := h.results.Overall(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}

func (h *ResultsHandler) ByRound(w http.ResponseWriter, r *http.Request) {
	roundID, err := strconv.ParseInt(chi.URLParam(r, "roundID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid round id"})
		return
	}

	scores, err := h.results.ByRound(r.Context(), roundID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}

func (h *ResultsHandler) TeamParticipation(w http.ResponseWriter, r *http.Request) {
	items, err := h.results.TeamParticipation(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ResultsHandler) JudgeParticipation(w http.ResponseWriter, r *http.Request) {
	items, err := h.results.JudgeParticipation(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
