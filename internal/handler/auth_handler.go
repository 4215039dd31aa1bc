package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hackathon-backend/internal/middleware"
	"hackathon-backend/internal/model"
	"hackathon-backend/internal/service"
	"hackathon-backend/internal/session"
)

type AuthHandler struct {
	auth    *service.AuthService
	cookies *session.Cookies
}

func NewAuthHandler(auth *service.AuthService, cookies *session.Cookies) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

// Claim registers a username and establishes the session cookie.
func (h *AuthHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req model.ClaimRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.auth.Claim(r.Context(), req.Username)
	if err != nil {
		writeError(w, err)
		return
	}

	// Header-mode deployments run without cookie machinery.
	if h.cookies != nil {
		if err := h.cookies.Issue(w, session.Payload{UserID: user.UserID, Username: user.Username}); err != nil {
			writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusCreated, user)
}

// Me returns the caller's identity with roles as they stand right now.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	me, err := h.auth.Me(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, me)
}

// Logout revokes the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if h.cookies != nil {
		h.cookies.Revoke(w)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.auth.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// UpdateRoles replaces a user's role set. Admin only; the guard against
// self-demotion lives in the service.
func (h *AuthHandler) UpdateRoles(w http.ResponseWriter, r *http.Request) {
	targetID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || targetID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid user id"})
		return
	}

	var req model.UpdateRolesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())

	result, err := h.auth.UpdateRoles(r.Context(), actor, targetID, req.Roles)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
