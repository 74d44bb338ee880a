package donations

import (
	"context"

	"github.com/dmitrijs2005/hopeconnect/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, d *models.Donation) (*models.Donation, error)
	List(ctx context.Context) ([]models.Donation, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Donation, error)
	ListByType(ctx context.Context, donationType string) ([]models.Donation, error)
	ListByGroup(ctx context.Context, group string) ([]models.Donation, error)
}
