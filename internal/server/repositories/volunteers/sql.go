// Package volunteers stores project signups. The (user_id, event_id) pair is
// unique at the storage level, so concurrent duplicate signups are rejected
// by the database rather than by a read-then-write check.
package volunteers

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/dmitrijs2005/hopeconnect/internal/dbx"
	"github.com/dmitrijs2005/hopeconnect/internal/server/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.Postgres}
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.SQLite}
}

const selectVolunteer = `SELECT id, event_id, user_id, email FROM volunteers`

// Create inserts a signup. A second signup for the same user and event
// yields common.ErrorAlreadyExists.
func (r *SQLRepository) Create(ctx context.Context, v *models.Volunteer) (*models.Volunteer, error) {
	query := `
		INSERT INTO volunteers (event_id, user_id, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), v.EventID, v.UserID, v.Email).Scan(&v.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return v, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]models.Volunteer, error) {
	return r.list(ctx, selectVolunteer+` ORDER BY id`)
}

func (r *SQLRepository) Exists(ctx context.Context, userID, eventID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM volunteers WHERE user_id = $1 AND event_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), userID, eventID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Delete removes the signup, returning common.ErrorNotFound if there was none.
func (r *SQLRepository) Delete(ctx context.Context, userID, eventID int64) error {
	query := `DELETE FROM volunteers WHERE user_id = $1 AND event_id = $2`

	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), userID, eventID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLRepository) DeleteByEvent(ctx context.Context, eventID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM volunteers WHERE event_id = $1`), eventID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...any) ([]models.Volunteer, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Volunteer, 0)
	for rows.Next() {
		var v models.Volunteer
		if err := rows.Scan(&v.ID, &v.EventID, &v.UserID, &v.Email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
