package user

import (
	"context"

	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

type Repository interface {
	// -------- Admins --------
	FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	EnsureAdmin(ctx context.Context, admin *models.Admin) error

	// -------- Users --------
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)

	// EmailTaken checks both identity spaces; exceptUserID lets a user keep
	// their own address.
	EmailTaken(ctx context.Context, email string, exceptUserID uint) (bool, error)

	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error

	// DeleteUser refuses while non-cancelled appointments exist and drops the
	// cancelled history otherwise.
	DeleteUser(ctx context.Context, id uint) error
}
