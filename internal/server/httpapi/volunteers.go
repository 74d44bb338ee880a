package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/dmitrijs2005/hopeconnect/internal/server/services"
)

type volunteerRequest struct {
	UserID  *int64 `json:"user_id"`
	EventID *int64 `json:"event_id"`
	Email   string `json:"email"`
}

type volunteeredResponse struct {
	Volunteered bool `json:"volunteered"`
}

func (s *HTTPServer) listVolunteers(w http.ResponseWriter, r *http.Request) {
	signups, err := s.volunteers.List(r.Context())
	if err != nil {
		s.readFailed(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newVolunteerResponses(signups))
}

// checkVolunteer reports false when either query parameter is absent or
// not an integer.
func (s *HTTPServer) checkVolunteer(w http.ResponseWriter, r *http.Request) {
	userID, okUser := int64Param(r.URL.Query().Get("user_id"))
	eventID, okEvent := int64Param(r.URL.Query().Get("event_id"))
	if !okUser || !okEvent {
		writeJSON(w, http.StatusOK, volunteeredResponse{})
		return
	}

	ok, err := s.volunteers.IsVolunteering(r.Context(), userID, eventID)
	if err != nil {
		s.readFailed(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, volunteeredResponse{Volunteered: ok})
}

func (s *HTTPServer) createVolunteer(w http.ResponseWriter, r *http.Request) {
	var req volunteerRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("Invalid volunteer data: "+err.Error()))
		return
	}

	signup, err := s.volunteers.Create(r.Context(), services.VolunteerInput{
		UserID:  req.UserID,
		EventID: req.EventID,
		Email:   req.Email,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeJSON(w, http.StatusConflict, errorBody("Already volunteering for this event"))
			return
		}
		s.writeFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newVolunteerResponse(*signup))
}

func (s *HTTPServer) deleteVolunteer(w http.ResponseWriter, r *http.Request) {
	userID, okUser := int64Param(r.URL.Query().Get("user_id"))
	eventID, okEvent := int64Param(r.URL.Query().Get("event_id"))
	if !okUser || !okEvent {
		writeJSON(w, http.StatusNotFound, errorBody("Not volunteering for this event"))
		return
	}

	if err := s.volunteers.Delete(r.Context(), userID, eventID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Not volunteering for this event"))
			return
		}
		s.writeFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageBody("Unvolunteered successfully"))
}
