package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hackathon-backend/internal/middleware"
	"hackathon-backend/internal/model"
	"hackathon-backend/internal/service"
)

type PrizeHandler struct {
	prizes *service.PrizeService
}

func NewPrizeHandler(prizes *service.PrizeService) *PrizeHandler {
	return &PrizeHandler{prizes: prizes}
}

// Board returns all prizes together with the awards made so far.
func (h *PrizeHandler) Board(w http.ResponseWriter, r *http.Request) {
	board, err := h.prizes.Board(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *PrizeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePrizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	prize, err := h.prizes.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, prize)
}

func (h *PrizeHandler) Award(w http.ResponseWriter, r *http.Request) {
	prizeID, err := strconv.ParseInt(chi.URLParam(r, "prizeID"), 10, 64)
	if err != nil || prizeID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid prize id"})
		return
	}

	var req model.AwardPrizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, _ := middleware.UserFromContext(r.Context())

	if err := h.prizes.Award(r.Context(), user, prizeID, req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}
