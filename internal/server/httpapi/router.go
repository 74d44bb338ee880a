package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler returns the router with every API route registered.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID, middleware.RealIP, s.accessLog, middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("Not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("Method not allowed"))
	})

	r.Get("/", s.index)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.register)
		r.Post("/login", s.login)
		r.Post("/firebase-login", s.firebaseLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireToken)
			r.Get("/check_session", s.checkSession)
			r.Delete("/logout", s.logout)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.listUsers)
		r.With(s.requireToken, requireAdmin).Get("/super-admin", s.superAdmin)
		r.Get("/{user_id}/donations", s.userDonations)
	})

	r.Route("/donations", func(r chi.Router) {
		r.Get("/", s.listDonations)
		r.With(s.requireToken).Post("/", s.createDonation)
		r.Get("/by-type/{type}", s.donationsByType)
		r.Get("/by-group/{group}", s.donationsByGroup)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", s.listProjects)
		r.Post("/", s.createProject)
		r.With(s.requireToken, requireAdmin).Delete("/{project_id}", s.deleteProject)
	})

	r.Route("/volunteers", func(r chi.Router) {
		r.With(s.requireToken).Get("/", s.listVolunteers)
		r.Get("/check", s.checkVolunteer)
		r.Post("/", s.createVolunteer)
		r.Delete("/", s.deleteVolunteer)
	})

	return r
}

func (s *HTTPServer) index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageBody("Hope Connect backend is running"))
}
