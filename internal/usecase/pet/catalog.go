package pet

import (
	"context"

	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/pet"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

// MaxRecentlyViewed bounds the recentlyViewed cookie and the home page strip.
const MaxRecentlyViewed = 3

type Catalog struct {
	repo domain.Repository
}

func NewCatalog(repo domain.Repository) *Catalog {
	return &Catalog{repo: repo}
}

func (uc *Catalog) List(ctx context.Context, f domain.Filter) ([]models.Pet, error) {
	return uc.repo.List(ctx, f)
}

func (uc *Catalog) Get(ctx context.Context, id uint) (*models.Pet, error) {
	return uc.repo.Get(ctx, id)
}

// RecentlyViewed loads pets in cookie order, skipping ids that no longer exist.
func (uc *Catalog) RecentlyViewed(ctx context.Context, ids []uint) ([]models.Pet, error) {
	if len(ids) > MaxRecentlyViewed {
		ids = ids[:MaxRecentlyViewed]
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pets, err := uc.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Pet, len(pets))
	for _, p := range pets {
		byID[p.ID] = p
	}

	out := make([]models.Pet, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// RememberViewed moves id to the front of viewed, dropping duplicates and
// keeping at most MaxRecentlyViewed entries.
func RememberViewed(viewed []uint, id uint) []uint {
	out := make([]uint, 0, MaxRecentlyViewed)
	out = append(out, id)
	for _, v := range viewed {
		if len(out) == MaxRecentlyViewed {
			break
		}
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
