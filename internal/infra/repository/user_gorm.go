package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/user"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

type UserGormRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewUserGormRepository(db *gorm.DB, timeout time.Duration) *UserGormRepository {
	return &UserGormRepository{db: db, timeout: timeout}
}

// --------------------------------------------------
// Admins
// --------------------------------------------------

func (r *UserGormRepository) FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var admin models.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, httperr.FromDB(err, "user_not_found")
	}
	return &admin, nil
}

// EnsureAdmin creates the admin or refreshes its name and password hash.
func (r *UserGormRepository) EnsureAdmin(ctx context.Context, admin *models.Admin) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return httperr.FromDB(r.db.WithContext(ctx).
		Where(models.Admin{Email: admin.Email}).
		Assign(models.Admin{Name: admin.Name, PasswordHash: admin.PasswordHash}).
		FirstOrCreate(admin).Error, "")
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *UserGormRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, httperr.FromDB(err, "user_not_found")
	}
	return &u, nil
}

func (r *UserGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, httperr.FromDB(err, "user_not_found")
	}
	return &u, nil
}

func (r *UserGormRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var users []models.User
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&users).Error; err != nil {
		return nil, httperr.FromDB(err, "")
	}
	return users, nil
}

func (r *UserGormRepository) CountUsers(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, httperr.FromDB(err, "")
	}
	return count, nil
}

func (r *UserGormRepository) EmailTaken(ctx context.Context, email string, exceptUserID uint) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var users int64
	q := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if exceptUserID != 0 {
		q = q.Where("id <> ?", exceptUserID)
	}
	if err := q.Count(&users).Error; err != nil {
		return false, httperr.FromDB(err, "")
	}
	if users > 0 {
		return true, nil
	}

	var admins int64
	if err := r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("email = ?", email).
		Count(&admins).Error; err != nil {
		return false, httperr.FromDB(err, "")
	}
	return admins > 0, nil
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.WithContext(ctx).Create(u).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.Conflict("email_taken")
	}
	return httperr.FromDB(err, "")
}

func (r *UserGormRepository) UpdateUser(ctx context.Context, u *models.User) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.User{ID: u.ID}).
		Select("name", "email", "phone", "password_hash", "updated_at").
		Updates(u)
	if httperr.IsUniqueViolation(res.Error) {
		return httperr.Conflict("email_taken")
	}
	if res.Error != nil {
		return httperr.FromDB(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return httperr.NotFound("user_not_found")
	}
	return nil
}

func (r *UserGormRepository) DeleteUser(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&u, id).Error; err != nil {
			return err
		}

		var active int64
		if err := tx.Model(&models.Appointment{}).
			Where("user_id = ? AND status <> ?", id, cancelledStatus).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return httperr.Conflict("user_has_appointments")
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	return httperr.FromDB(err, "user_not_found")
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
