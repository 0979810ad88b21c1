package pet

import (
	"context"

	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]models.Pet, error)
	Get(ctx context.Context, id uint) (*models.Pet, error)

	// GetMany returns the pets that exist among ids, in no particular order.
	GetMany(ctx context.Context, ids []uint) ([]models.Pet, error)

	Create(ctx context.Context, p *models.Pet) error
	Update(ctx context.Context, p *models.Pet) error

	// Delete refuses while any non-cancelled appointment references the pet,
	// otherwise drops its cancelled history and the pet, returning the row.
	Delete(ctx context.Context, id uint) (*models.Pet, error)

	Count(ctx context.Context) (int64, error)
}
