package volunteers

import (
	"context"

	"github.com/dmitrijs2005/hopeconnect/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, v *models.Volunteer) (*models.Volunteer, error)
	List(ctx context.Context) ([]models.Volunteer, error)
	Exists(ctx context.Context, userID, eventID int64) (bool, error)
	Delete(ctx context.Context, userID, eventID int64) error
	DeleteByEvent(ctx context.Context, eventID int64) (int64, error)
}
