package user

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/user"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
)

// DomainCheck optionally confirms that an address's domain can receive mail.
type DomainCheck func(ctx context.Context, email string) bool

type AccountInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// validateAccount checks name and email and returns the normalised address.
// exceptUserID lets an existing user keep their own email.
func validateAccount(
	ctx context.Context,
	repo domain.Repository,
	check DomainCheck,
	name, email string,
	exceptUserID uint,
) (string, error) {

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return "", httperr.Validation("missing_fields")
	}

	email = domain.NormalizeEmail(email)
	if err := domain.ValidateEmail(email); err != nil {
		return "", err
	}
	if check != nil && !check(ctx, email) {
		return "", httperr.Validation("invalid_email_domain")
	}

	taken, err := repo.EmailTaken(ctx, email, exceptUserID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", httperr.Conflict("email_taken")
	}
	return email, nil
}
