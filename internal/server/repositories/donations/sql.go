package donations

import (
	"context"
	"database/sql"
	"fmt"

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

const selectDonation = `SELECT id, date, type, "group", details, phone_number, amount, user_id FROM donations`

func (r *SQLRepository) Create(ctx context.Context, d *models.Donation) (*models.Donation, error) {
	query := `
		INSERT INTO donations (date, type, "group", details, phone_number, amount, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query),
		d.Date.UTC(), d.Type, d.Group, d.Details,
		nullString(d.PhoneNumber), nullInt64(d.Amount), nullInt64(d.UserID),
	).Scan(&d.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return d, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]models.Donation, error) {
	return r.list(ctx, selectDonation+` ORDER BY id`)
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID int64) ([]models.Donation, error) {
	return r.list(ctx, selectDonation+` WHERE user_id = $1 ORDER BY id`, userID)
}

// ListByType matches the type exactly.
func (r *SQLRepository) ListByType(ctx context.Context, donationType string) ([]models.Donation, error) {
	return r.list(ctx, selectDonation+` WHERE type = $1 ORDER BY id`, donationType)
}

// ListByGroup matches the group exactly.
func (r *SQLRepository) ListByGroup(ctx context.Context, group string) ([]models.Donation, error) {
	return r.list(ctx, selectDonation+` WHERE "group" = $1 ORDER BY id`, group)
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...any) ([]models.Donation, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Donation, 0)
	for rows.Next() {
		var (
			d       models.Donation
			details sql.NullString
			phone   sql.NullString
			amount  sql.NullInt64
			userID  sql.NullInt64
		)
		if err := rows.Scan(&d.ID, &d.Date, &d.Type, &d.Group, &details, &phone, &amount, &userID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		d.Date = d.Date.UTC()
		d.Details = details.String
		if phone.Valid {
			d.PhoneNumber = &phone.String
		}
		if amount.Valid {
			d.Amount = &amount.Int64
		}
		if userID.Valid {
			d.UserID = &userID.Int64
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
