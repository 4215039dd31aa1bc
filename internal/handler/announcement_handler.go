package handler

import (
	"net/http"

	"hackathon-backend/internal/middleware"
	"hackathon-backend/internal/model"
	"hackathon-backend/internal/service"
)

type AnnouncementHandler struct {
	announcements *service.AnnouncementService
}

func NewAnnouncementHandler(announcements *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.announcements.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAnnouncementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, _ := middleware.UserFromContext(r.Context())

	created, err := h.announcements.Create(r.Context(), user, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
