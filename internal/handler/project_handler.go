package handler

import (
	"net/http"

	"hackathon-backend/internal/middleware"
	"hackathon-backend/internal/model"
	"hackathon-backend/internal/service"
)

type ProjectHandler struct {
	projects *service.ProjectService
}

func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	project, err := h.projects.Mine(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	if project == nil {
		writeJSON(w, http.StatusOK, map[string]any{"project": nil})
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, _ := middleware.UserFromContext(r.Context())

	project, err := h.projects.Submit(r.Context(), user, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	submissions, err := h.projects.Submissions(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, submissions)
}

func (h *ProjectHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSubmissionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, _ := middleware.UserFromContext(r.Context())

	submission, err := h.projects.CreateSubmission(r.Context(), user, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, submission)
}
