package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/pet-shelter/internal/audit"
	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/user"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

type UpdateUserInput struct {
	ActorID uint
	ID      uint
	AccountInput
}

type Profile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	check DomainCheck
}

func NewProfile(
	repo domain.Repository,
	audit *audit.Dispatcher,
	check DomainCheck,
) *Profile {
	return &Profile{
		repo:  repo,
		audit: audit,
		check: check,
	}
}

func (uc *Profile) Get(ctx context.Context, userID uint) (*models.User, error) {
	return uc.repo.GetUser(ctx, userID)
}

// Update edits the signed-in user. A blank password keeps the current one.
func (uc *Profile) Update(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	u, err := applyUpdate(ctx, uc.repo, uc.check, in)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &u.ID,
		ActorRole: audit.RoleUser,
		Action:    "profile_updated",
		Entity:    "user",
		EntityID:  &u.ID,
	})
	return u, nil
}

func applyUpdate(
	ctx context.Context,
	repo domain.Repository,
	check DomainCheck,
	in UpdateUserInput,
) (*models.User, error) {

	u, err := repo.GetUser(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	email, err := validateAccount(ctx, repo, check, in.Name, in.Email, u.ID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Password) != "" {
		if err := domain.ValidatePassword(in.Password); err != nil {
			return nil, err
		}
		hash, err := domain.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	u.Name = strings.TrimSpace(in.Name)
	u.Email = email
	u.Phone = domain.OptionalString(in.Phone)

	if err := repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
