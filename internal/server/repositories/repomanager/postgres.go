package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/hopeconnect/internal/dbx"
	"github.com/dmitrijs2005/hopeconnect/internal/logging"
	"github.com/dmitrijs2005/hopeconnect/internal/server/migrations"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/donations"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/projects"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/users"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/volunteers"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct {
	logger logging.Logger
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Donations(db dbx.DBTX) donations.Repository {
	return donations.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Projects(db dbx.DBTX) projects.Repository {
	return projects.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Volunteers(db dbx.DBTX) volunteers.Repository {
	return volunteers.NewPostgresRepository(db)
}

// RunMigrations applies the embedded PostgreSQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Postgres)
	goose.SetLogger(migrationLogger(ctx, m.logger))
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "postgres")
}
