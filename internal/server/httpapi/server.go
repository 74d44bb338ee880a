// Package httpapi exposes the HopeConnect services as a JSON API over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/hopeconnect/internal/logging"
	"github.com/dmitrijs2005/hopeconnect/internal/server/auth"
	"github.com/dmitrijs2005/hopeconnect/internal/server/config"
	"github.com/dmitrijs2005/hopeconnect/internal/server/services"
)

type HTTPServer struct {
	address         string
	authHeader      string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration

	logger     logging.Logger
	issuer     *auth.Issuer
	users      *services.UserService
	donations  *services.DonationService
	projects   *services.ProjectService
	volunteers *services.VolunteerService
}

// Services groups the business services the handlers call into.
type Services struct {
	Users      *services.UserService
	Donations  *services.DonationService
	Projects   *services.ProjectService
	Volunteers *services.VolunteerService
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, issuer *auth.Issuer, svc Services) *HTTPServer {
	return &HTTPServer{
		address:         cfg.EndpointAddrHTTP,
		authHeader:      cfg.AuthHeaderName,
		readTimeout:     cfg.HTTPReadTimeout,
		writeTimeout:    cfg.HTTPWriteTimeout,
		idleTimeout:     cfg.HTTPIdleTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          l.With("module", "http_server"),
		issuer:          issuer,
		users:           svc.Users,
		donations:       svc.Donations,
		projects:        svc.Projects,
		volunteers:      svc.Volunteers,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *HTTPServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		IdleTimeout:  s.idleTimeout,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
