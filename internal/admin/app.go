package admin

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/hopeconnect/internal/logging"
	"github.com/dmitrijs2005/hopeconnect/internal/server/auth"
	"github.com/dmitrijs2005/hopeconnect/internal/server/config"
	"github.com/dmitrijs2005/hopeconnect/internal/server/models"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hopeconnect/internal/server/services"
)

type userService interface {
	RegisterAdmin(ctx context.Context, in services.RegisterInput) (*models.User, error)
	SetRole(ctx context.Context, email, role string) (*models.User, error)
}

type App struct {
	users   userService
	migrate func(context.Context) error
	out     io.Writer
	closer  func() error
}

// NewApp opens the configured database. Migrations are not applied until
// a command needs the schema; their progress goes to logger, if any.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger, out io.Writer) (*App, error) {
	db, rm, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	issuer := auth.NewIssuer([]byte(c.SecretKey), c.AccessTokenValidityDuration)

	return &App{
		users:   services.NewUserService(db, rm, issuer, c),
		migrate: func(ctx context.Context) error { return rm.RunMigrations(ctx, db) },
		out:     out,
		closer:  db.Close,
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}
