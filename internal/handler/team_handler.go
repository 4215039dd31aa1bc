package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hackathon-backend/internal/middleware"
	"hackathon-backend/internal/model"
	"hackathon-backend/internal/service"
)

type TeamHandler struct {
	teams *service.TeamService
}

func NewTeamHandler(teams *service.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, _ := middleware.UserFromContext(r.Context())

	team, err := h.teams.Create(r.Context(), user, req.TeamName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, team)
}

// Mine returns the caller's team dashboard; an empty object body when the
// caller has no team yet.
func (h *TeamHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	mine, err := h.teams.MyTeam(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	if mine == nil {
		writeJSON(w, http.StatusOK, map[string]any{"team": nil})
		return
	}
	writeJSON(w, http.StatusOK, mine)
}

func (h *TeamHandler) Invite(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.ParseInt(chi.URLParam(r, "teamID"), 10, 64)
	if err != nil || teamID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid team id"})
		return
	}

	var req model.InviteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, _ := middleware.UserFromContext(r.Context())

	invite, err := h.teams.Invite(r.Context(), user, teamID, req.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, invite)
}

func (h *TeamHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	var req model.AcceptInviteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, _ := middleware.UserFromContext(r.Context())

	if err := h.teams.AcceptInvite(r.Context(), user, req.Token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *TeamHandler) MyInvites(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	invites, err := h.teams.PendingInvites(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invites)
}
