package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/dmitrijs2005/hopeconnect/internal/server/services"
)

type donationRequest struct {
	Type        string  `json:"type"`
	Group       string  `json:"group"`
	Details     string  `json:"details"`
	PhoneNumber *string `json:"phone_number"`
	Amount      *int64  `json:"amount"`
}

func (s *HTTPServer) listDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := s.donations.List(r.Context())
	if err != nil {
		s.readFailed(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newDonationResponses(donations))
}

func (s *HTTPServer) createDonation(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, errEmptyBody) {
			writeJSON(w, http.StatusUnprocessableEntity, errorBody("Missing donation data"))
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("Invalid donation data: "+err.Error()))
		return
	}

	caller, _ := IdentityFromContext(r.Context())
	donation, err := s.donations.Create(r.Context(), caller, services.DonationInput{
		Type:        req.Type,
		Group:       req.Group,
		Details:     req.Details,
		PhoneNumber: req.PhoneNumber,
		Amount:      req.Amount,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("User not found"))
			return
		}
		s.writeFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newDonationResponse(*donation))
}

func (s *HTTPServer) donationsByType(w http.ResponseWriter, r *http.Request) {
	kind, err := textParam(r, "type")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("Invalid type"))
		return
	}

	donations, err := s.donations.ListByType(r.Context(), kind)
	if err != nil {
		s.readFailed(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newDonationResponses(donations))
}

func (s *HTTPServer) donationsByGroup(w http.ResponseWriter, r *http.Request) {
	group, err := textParam(r, "group")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("Invalid group"))
		return
	}

	donations, err := s.donations.ListByGroup(r.Context(), group)
	if err != nil {
		s.readFailed(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newDonationResponses(donations))
}
