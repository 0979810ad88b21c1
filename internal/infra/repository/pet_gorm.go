package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/pet"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

type PetGormRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewPetGormRepository(db *gorm.DB, timeout time.Duration) *PetGormRepository {
	return &PetGormRepository{db: db, timeout: timeout}
}

func (r *PetGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Pet, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	q := r.db.WithContext(ctx).Model(&models.Pet{})

	switch f.Category {
	case domain.CategoryDog:
		q = q.Where("type = ?", string(domain.TypeDog))
	case domain.CategoryCat:
		q = q.Where("type = ?", string(domain.TypeCat))
	case domain.CategoryOther:
		q = q.Where("type NOT IN ?", []string{string(domain.TypeDog), string(domain.TypeCat)})
	}

	if f.Search != "" {
		like := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, like)
	}

	orderClause := "id ASC"
	switch f.Sort {
	case domain.SortOldest:
		orderClause = "created_at ASC, id ASC"
	case domain.SortYoungest:
		orderClause = "created_at DESC, id DESC"
	case domain.SortAZ:
		orderClause = "name ASC"
	case domain.SortZA:
		orderClause = "name DESC"
	}

	var pets []models.Pet
	if err := q.Order(orderClause).Find(&pets).Error; err != nil {
		return nil, httperr.FromDB(err, "")
	}
	return pets, nil
}

func (r *PetGormRepository) Get(ctx context.Context, id uint) (*models.Pet, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, httperr.FromDB(err, "pet_not_found")
	}
	return &pet, nil
}

func (r *PetGormRepository) GetMany(ctx context.Context, ids []uint) ([]models.Pet, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var pets []models.Pet
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&pets).Error; err != nil {
		return nil, httperr.FromDB(err, "")
	}
	return pets, nil
}

func (r *PetGormRepository) Create(ctx context.Context, p *models.Pet) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return httperr.FromDB(r.db.WithContext(ctx).Create(p).Error, "")
}

func (r *PetGormRepository) Update(ctx context.Context, p *models.Pet) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.Pet{ID: p.ID}).
		Select("name", "type", "breed", "age", "image", "description", "updated_at").
		Updates(p)
	if res.Error != nil {
		return httperr.FromDB(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return httperr.NotFound("pet_not_found")
	}
	return nil
}

func (r *PetGormRepository) Delete(ctx context.Context, id uint) (*models.Pet, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var deleted models.Pet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&deleted, id).Error; err != nil {
			return err
		}

		var active int64
		if err := tx.Model(&models.Appointment{}).
			Where("pet_id = ? AND status <> ?", id, cancelledStatus).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return httperr.Conflict("pet_has_appointments")
		}

		if err := tx.Where("pet_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Pet{}, id).Error
	})
	if err != nil {
		return nil, httperr.FromDB(err, "pet_not_found")
	}
	return &deleted, nil
}

func (r *PetGormRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Pet{}).Count(&count).Error; err != nil {
		return 0, httperr.FromDB(err, "")
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*PetGormRepository)(nil)
