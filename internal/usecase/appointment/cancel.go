package appointment

import (
	"context"

	"github.com/BruksfildServices01/pet-shelter/internal/audit"
	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

type CancelAppointment struct {
	repo    domain.Repository
	checker *SlotChecker
	audit   *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	checker *SlotChecker,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		checker: checker,
		audit:   audit,
	}
}

// Execute cancels an appointment owned by userID. Someone else's appointment
// is reported exactly like a missing one.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.UserID != userID {
		return nil, httperr.NotFound("appointment_not_found")
	}

	if err := domain.Cancel(ap, uc.checker.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &userID,
		ActorRole: audit.RoleUser,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
