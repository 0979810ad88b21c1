package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/pet-shelter/internal/audit"
	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/user"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

type Auth struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	check DomainCheck
}

func NewAuth(
	repo domain.Repository,
	audit *audit.Dispatcher,
	check DomainCheck,
) *Auth {
	return &Auth{
		repo:  repo,
		audit: audit,
		check: check,
	}
}

// ======================================================
// REGISTER
// ======================================================

func (uc *Auth) Register(ctx context.Context, in AccountInput) (*models.User, error) {
	if in.Password == "" {
		return nil, httperr.Validation("missing_fields")
	}

	email, err := validateAccount(ctx, uc.repo, uc.check, in.Name, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := domain.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Phone:        domain.OptionalString(in.Phone),
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &u.ID,
		ActorRole: audit.RoleUser,
		Action:    "user_registered",
		Entity:    "user",
		EntityID:  &u.ID,
	})
	return u, nil
}

// ======================================================
// LOGIN
// ======================================================

// Login checks administrators first, then users. Both store bcrypt hashes.
func (uc *Auth) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return domain.Identity{}, httperr.Unauthorized("invalid_credentials")
	}

	admin, err := uc.repo.FindAdminByEmail(ctx, email)
	switch {
	case err == nil:
		if !domain.CheckPassword(admin.PasswordHash, password) {
			return domain.Identity{}, httperr.Unauthorized("invalid_credentials")
		}
		uc.loggedIn(admin.ID, audit.RoleAdmin)
		return domain.Identity{ID: admin.ID, Name: admin.Name, Email: admin.Email, Admin: true}, nil
	case httperr.KindOf(err) != httperr.KindNotFound:
		return domain.Identity{}, err
	}

	u, err := uc.repo.FindUserByEmail(ctx, email)
	if httperr.KindOf(err) == httperr.KindNotFound {
		return domain.Identity{}, httperr.Unauthorized("invalid_credentials")
	}
	if err != nil {
		return domain.Identity{}, err
	}
	if !domain.CheckPassword(u.PasswordHash, password) {
		return domain.Identity{}, httperr.Unauthorized("invalid_credentials")
	}

	uc.loggedIn(u.ID, audit.RoleUser)
	return domain.Identity{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}

func (uc *Auth) loggedIn(id uint, role string) {
	uc.audit.Dispatch(audit.Event{
		ActorID:   &id,
		ActorRole: role,
		Action:    "login",
		Entity:    role,
		EntityID:  &id,
	})
}

// ======================================================
// ADMIN SEED
// ======================================================

// SeedAdmin creates or refreshes the configured administrator. It is a
// no-op when email or password is empty.
func (uc *Auth) SeedAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}
	if err := domain.ValidateEmail(email); err != nil {
		return false, err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return false, err
	}

	hash, err := domain.HashPassword(password)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(name) == "" {
		name = "Administrator"
	}

	admin := &models.Admin{Name: strings.TrimSpace(name), Email: email, PasswordHash: hash}
	if err := uc.repo.EnsureAdmin(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
