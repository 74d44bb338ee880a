package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/dmitrijs2005/hopeconnect/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type projectRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageURL    string `json:"image_url"`
}

func (s *HTTPServer) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projects.List(r.Context())
	if err != nil {
		s.readFailed(w, r, err)
		return
	}

	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, newProjectResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) createProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("Invalid project data: "+err.Error()))
		return
	}

	project, err := s.projects.Create(r.Context(), services.ProjectInput{
		Type:        req.Type,
		Description: req.Description,
		Date:        req.Date,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		s.writeFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newProjectResponse(*project))
}

func (s *HTTPServer) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(chi.URLParam(r, "project_id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("Project not found"))
		return
	}

	if err := s.projects.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Project not found"))
			return
		}
		s.writeFailed(w, r, err)
		return
	}

	caller, _ := IdentityFromContext(r.Context())
	s.logger.Info(r.Context(), "Project deleted", "project_id", id, "by", caller.ID)
	writeJSON(w, http.StatusOK, messageBody("Project deleted successfully"))
}
