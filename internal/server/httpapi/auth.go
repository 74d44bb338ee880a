package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/dmitrijs2005/hopeconnect/internal/server/services"
)

// registerRequest accepts fName/lName as aliases of first_name/last_name.
type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FName     string `json:"fName"`
	LName     string `json:"lName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// federatedLoginRequest accepts "mail" as an alias of "email".
type federatedLoginRequest struct {
	Email string `json:"email"`
	Mail  string `json:"mail"`
}

type registerResponse struct {
	Msg   string `json:"msg"`
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

type federatedLoginResponse struct {
	AccessToken string `json:"access_token"`
	ID          int64  `json:"id"`
	Role        string `json:"role"`
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeJSON(w, http.StatusUnprocessableEntity, msgBody("Invalid JSON payload"))
		return
	}

	in := services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: firstNonEmpty(req.FirstName, req.FName),
		LastName:  firstNonEmpty(req.LastName, req.LName),
	}

	user, err := s.users.Register(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			writeJSON(w, http.StatusConflict, msgBody("User already exists"))
		case errors.Is(err, common.ErrorValidation):
			writeJSON(w, http.StatusUnprocessableEntity, msgBody(err.Error()))
		default:
			s.writeFailed(w, r, err)
		}
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, registerResponse{
		Msg:   fmt.Sprintf("User %s registered successfully", user.Email),
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeJSON(w, http.StatusUnprocessableEntity, msgBody("Invalid JSON payload"))
		return
	}

	res, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, msgBody("Invalid credentials"))
		case errors.Is(err, common.ErrorValidation):
			writeJSON(w, http.StatusUnprocessableEntity, msgBody(err.Error()))
		default:
			s.readFailed(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: res.AccessToken,
		ID:          res.User.ID,
		Email:       res.User.Email,
		Role:        res.User.Role,
	})
}

func (s *HTTPServer) firebaseLogin(w http.ResponseWriter, r *http.Request) {
	var req federatedLoginRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeJSON(w, http.StatusBadRequest, msgBody("Invalid JSON payload"))
		return
	}

	email := firstNonEmpty(req.Email, req.Mail)
	if email == "" {
		writeJSON(w, http.StatusBadRequest, msgBody("Email is required"))
		return
	}

	res, err := s.users.FederatedLogin(r.Context(), email)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeJSON(w, http.StatusBadRequest, msgBody(err.Error()))
			return
		}
		s.writeFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, federatedLoginResponse{
		AccessToken: res.AccessToken,
		ID:          res.User.ID,
		Role:        res.User.Role,
	})
}

func (s *HTTPServer) checkSession(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	writeJSON(w, http.StatusOK, id)
}

// logout only acknowledges; issued tokens stay valid until they expire.
func (s *HTTPServer) logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, msgBody("Token invalidation depends on client discarding token"))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
