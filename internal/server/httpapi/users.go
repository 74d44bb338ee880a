package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/go-chi/chi/v5"
)

func (s *HTTPServer) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.readFailed(w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) userDonations(w http.ResponseWriter, r *http.Request) {
	userID, ok := int64Param(chi.URLParam(r, "user_id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("User not found"))
		return
	}

	donations, err := s.users.Donations(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("User not found"))
			return
		}
		s.readFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newDonationResponses(donations))
}

func (s *HTTPServer) superAdmin(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	writeJSON(w, http.StatusOK, msgBody(fmt.Sprintf("Welcome, Super Admin with email %s!", id.Email)))
}
