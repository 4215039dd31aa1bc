package handler

import (
	"net/http"

	"hackathon-backend/internal/model"
	"hackathon-backend/internal/service"
)

type HackathonHandler struct {
	hackathon *service.HackathonService
}

func NewHackathonHandler(hackathon *service.HackathonService) *HackathonHandler {
	return &HackathonHandler{hackathon: hackathon}
}

func (h *HackathonHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.hackathon.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if event == nil {
		writeJSON(w, http.StatusOK, map[string]any{"configured": false})
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *HackathonHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req model.UpsertHackathonRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.hackathon.Upsert(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *HackathonHandler) ListTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.hackathon.Tracks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}

func (h *HackathonHandler) CreateTrack(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTrackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	track, err := h.hackathon.CreateTrack(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, track)
}
