package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/dmitrijs2005/hopeconnect/internal/dbx"
	"github.com/dmitrijs2005/hopeconnect/internal/server/models"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/repomanager"
)

// VolunteerInput uses pointers so that an absent id can be told apart from 0.
type VolunteerInput struct {
	UserID  *int64
	EventID *int64
	Email   string
}

type VolunteerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewVolunteerService(db *sql.DB, m repomanager.RepositoryManager) *VolunteerService {
	return &VolunteerService{db: db, repomanager: m}
}

// Create signs a user up for a project. A second signup for the same pair
// yields common.ErrorAlreadyExists, also under concurrent submissions.
func (s *VolunteerService) Create(ctx context.Context, in VolunteerInput) (*models.Volunteer, error) {
	if in.UserID == nil || in.EventID == nil {
		return nil, common.NewValidationError("Missing user_id or event_id")
	}
	if err := requireFields("email", in.Email); err != nil {
		return nil, err
	}

	var signup *models.Volunteer
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		signup, err = s.repomanager.Volunteers(tx).Create(ctx, &models.Volunteer{
			EventID: *in.EventID,
			UserID:  *in.UserID,
			Email:   in.Email,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return signup, nil
}

func (s *VolunteerService) List(ctx context.Context) ([]models.Volunteer, error) {
	return s.repomanager.Volunteers(s.db).List(ctx)
}

func (s *VolunteerService) IsVolunteering(ctx context.Context, userID, eventID int64) (bool, error) {
	return s.repomanager.Volunteers(s.db).Exists(ctx, userID, eventID)
}

// Delete removes a signup; common.ErrorNotFound if there is none.
func (s *VolunteerService) Delete(ctx context.Context, userID, eventID int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Volunteers(tx).Delete(ctx, userID, eventID)
	})
}
