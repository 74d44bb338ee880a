package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/dmitrijs2005/hopeconnect/internal/dbx"
	"github.com/dmitrijs2005/hopeconnect/internal/server/auth"
	"github.com/dmitrijs2005/hopeconnect/internal/server/models"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/repomanager"
)

type DonationInput struct {
	Type        string
	Group       string
	Details     string
	PhoneNumber *string
	Amount      *int64
}

type DonationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewDonationService(db *sql.DB, m repomanager.RepositoryManager) *DonationService {
	return &DonationService{db: db, repomanager: m, now: time.Now}
}

// Create records a donation owned by the caller. common.ErrorNotFound means
// the token refers to a user that no longer exists.
func (s *DonationService) Create(ctx context.Context, caller auth.Identity, in DonationInput) (*models.Donation, error) {
	if err := requireFields("type", in.Type, "group", in.Group); err != nil {
		return nil, err
	}
	if in.PhoneNumber != nil && len(*in.PhoneNumber) > models.MaxPhoneNumberLen {
		return nil, common.NewValidationError("phone_number must be at most %d characters", models.MaxPhoneNumberLen)
	}

	var donation *models.Donation
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.repomanager.Users(tx).GetByID(ctx, caller.ID)
		if err != nil {
			return err
		}

		donation, err = s.repomanager.Donations(tx).Create(ctx, &models.Donation{
			Date:        s.now().UTC(),
			Type:        in.Type,
			Group:       in.Group,
			Details:     in.Details,
			PhoneNumber: in.PhoneNumber,
			Amount:      in.Amount,
			UserID:      &user.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return donation, nil
}

func (s *DonationService) List(ctx context.Context) ([]models.Donation, error) {
	return s.repomanager.Donations(s.db).List(ctx)
}

func (s *DonationService) ListByType(ctx context.Context, donationType string) ([]models.Donation, error) {
	return s.repomanager.Donations(s.db).ListByType(ctx, donationType)
}

func (s *DonationService) ListByGroup(ctx context.Context, group string) ([]models.Donation, error) {
	return s.repomanager.Donations(s.db).ListByGroup(ctx, group)
}
