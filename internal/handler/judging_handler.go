package handler

import (
	"net/http"

	"hackathon-backend/internal/middleware"
	"hackathon-backend/internal/model"
	"hackathon-backend/internal/service"
)

type JudgingHandler struct {
	judging *service.JudgingService
}

func NewJudgingHandler(judging *service.JudgingService) *JudgingHandler {
	return &JudgingHandler{judging: judging}
}

func (h *JudgingHandler) ListRounds(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.judging.Rounds(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rounds)
}

func (h *JudgingHandler) CreateRound(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRoundRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	round, err := h.judging.CreateRound(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, round)
}

// Queue lists submissions awaiting the requesting judge's score.
func (h *JudgingHandler) Queue(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	queue, err := h.judging.Queue(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, queue)
}

func (h *JudgingHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req model.RecordScoreRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, _ := middleware.UserFromContext(r.Context())

	if err := h.judging.Score(r.Context(), user, req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *JudgingHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.judging.Assignments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}

func (h *JudgingHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req model.AssignmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, _ := middleware.UserFromContext(r.Context())

	if err := h.judging.Assign(r.Context(), user, req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (h *JudgingHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	var req model.AssignmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, _ := middleware.UserFromContext(r.Context())

	if err := h.judging.Unassign(r.Context(), user, req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
