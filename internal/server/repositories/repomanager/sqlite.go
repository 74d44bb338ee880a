package repomanager

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/hopeconnect/internal/dbx"
	"github.com/dmitrijs2005/hopeconnect/internal/logging"
	"github.com/dmitrijs2005/hopeconnect/internal/server/migrations"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/donations"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/projects"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/users"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/volunteers"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories. It is the
// default for local runs and the end-to-end tests.
type SQLiteRepositoryManager struct {
	logger logging.Logger
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Donations(db dbx.DBTX) donations.Repository {
	return donations.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Projects(db dbx.DBTX) projects.Repository {
	return projects.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Volunteers(db dbx.DBTX) volunteers.Repository {
	return volunteers.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.SQLite)
	goose.SetLogger(migrationLogger(ctx, m.logger))
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "sqlite")
}

// sqliteFilePath extracts the file path from a modernc.org/sqlite DSN. It
// reports false for in-memory databases.
func sqliteFilePath(dsn string) (string, bool) {
	path, query, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || strings.HasPrefix(path, ":memory:") || strings.Contains(query, "mode=memory") {
		return "", false
	}
	return path, true
}
