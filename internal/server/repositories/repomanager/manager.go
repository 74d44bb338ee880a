// Package repomanager vends repository implementations for a database
// driver and runs the matching schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/hopeconnect/internal/dbx"
	"github.com/dmitrijs2005/hopeconnect/internal/filex"
	"github.com/dmitrijs2005/hopeconnect/internal/logging"
	"github.com/dmitrijs2005/hopeconnect/internal/server/config"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/donations"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/projects"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/users"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/volunteers"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Donations(db dbx.DBTX) donations.Repository
	Projects(db dbx.DBTX) projects.Repository
	Volunteers(db dbx.DBTX) volunteers.Repository
}

// New returns the manager for a database/sql driver name. Migration progress
// is reported through l; a nil logger silences it.
func New(driver string, l logging.Logger) (RepositoryManager, error) {
	switch driver {
	case config.DriverPostgres:
		return &PostgresRepositoryManager{logger: l}, nil
	case config.DriverSQLite:
		return &SQLiteRepositoryManager{logger: l}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects to the database and returns it together with its manager.
// For SQLite the database directory is created if needed and the pool is
// limited to a single connection so that writers never contend for the
// file lock.
func Open(ctx context.Context, driver, dsn string, l logging.Logger) (*sql.DB, RepositoryManager, error) {
	m, err := New(driver, l)
	if err != nil {
		return nil, nil, err
	}

	if driver == config.DriverSQLite {
		if path, ok := sqliteFilePath(dsn); ok {
			if _, err := filex.EnsureParentDir(path); err != nil {
				return nil, nil, err
			}
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	if driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return db, m, nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// gooseLogger adapts logging.Logger to goose.Logger.
type gooseLogger struct {
	ctx context.Context
	l   logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Info(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level; goose reports failures through returned errors.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func migrationLogger(ctx context.Context, l logging.Logger) goose.Logger {
	if l == nil {
		return goose.NopLogger()
	}
	return gooseLogger{ctx: ctx, l: l.With("module", "migrations")}
}
