package user

import (
	"context"

	"github.com/BruksfildServices01/pet-shelter/internal/audit"
	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/user"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

// ManageUsers is the admin back-office for user accounts.
type ManageUsers struct {
	repo  domain.Repository
	auth  *Auth
	audit *audit.Dispatcher
	check DomainCheck
}

func NewManageUsers(
	repo domain.Repository,
	audit *audit.Dispatcher,
	check DomainCheck,
) *ManageUsers {
	return &ManageUsers{
		repo:  repo,
		auth:  NewAuth(repo, nil, check),
		audit: audit,
		check: check,
	}
}

func (uc *ManageUsers) List(ctx context.Context) ([]models.User, error) {
	return uc.repo.ListUsers(ctx)
}

func (uc *ManageUsers) Create(ctx context.Context, adminID uint, in AccountInput) (*models.User, error) {
	u, err := uc.auth.Register(ctx, in)
	if err != nil {
		return nil, err
	}

	uc.dispatch(adminID, "user_created", u.ID)
	return u, nil
}

// Update edits any user; a blank password keeps the current one.
func (uc *ManageUsers) Update(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	u, err := applyUpdate(ctx, uc.repo, uc.check, in)
	if err != nil {
		return nil, err
	}

	uc.dispatch(in.ActorID, "user_updated", u.ID)
	return u, nil
}

func (uc *ManageUsers) Delete(ctx context.Context, adminID, userID uint) error {
	if err := uc.repo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	uc.dispatch(adminID, "user_deleted", userID)
	return nil
}

func (uc *ManageUsers) dispatch(adminID uint, action string, userID uint) {
	uc.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorRole: audit.RoleAdmin,
		Action:    action,
		Entity:    "user",
		EntityID:  &userID,
	})
}
