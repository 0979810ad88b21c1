package appointment

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BruksfildServices01/pet-shelter/internal/audit"
	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

// ======================================================
// ADMIN: EDIT
// ======================================================

type UpdateAppointmentInput struct {
	AdminID uint
	ID      uint

	UserID   uint
	PetID    uint
	DateTime string
	Status   string
	Notes    string
}

type UpdateAppointment struct {
	repo    domain.Repository
	checker *SlotChecker
	audit   *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	checker *SlotChecker,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:    repo,
		checker: checker,
		audit:   audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	dt := strings.TrimSpace(in.DateTime)
	if in.UserID == 0 || in.PetID == 0 || dt == "" || in.Status == "" {
		return nil, httperr.Validation("missing_fields")
	}

	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	notes := strings.TrimSpace(in.Notes)
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return nil, httperr.Validation("notes_too_long")
	}

	at, err := uc.checker.Schedule().ParseDateTime(dt)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.repo.UserExists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.NotFound("user_not_found")
	}

	if _, err := uc.repo.GetPet(ctx, in.PetID); err != nil {
		return nil, err
	}

	moved := ap.PetID != in.PetID || !ap.AppointmentDT.Equal(at)
	reactivated := !domain.Status(ap.Status).Active() && status.Active()
	if status.Active() && (moved || reactivated) {
		taken, err := uc.repo.IsTaken(ctx, in.PetID, at, ap.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, httperr.Conflict("slot_taken")
		}
	}

	ap.UserID = in.UserID
	ap.PetID = in.PetID
	ap.AppointmentDT = at
	ap.Notes = optional(notes)
	if domain.Status(ap.Status) != status {
		domain.SetStatus(ap, status, uc.checker.Now())
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.AdminID,
		ActorRole: audit.RoleAdmin,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"user_id": ap.UserID,
			"pet_id":  ap.PetID,
			"status":  ap.Status,
		},
	})

	return ap, nil
}

// ======================================================
// ADMIN: STATUS
// ======================================================

type SetAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	checker *SlotChecker,
	audit *audit.Dispatcher,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: audit,
		now:   checker.Now,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	rawStatus string,
) (*models.Appointment, error) {

	status, err := domain.ParseStatus(strings.TrimSpace(rawStatus))
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !domain.Status(ap.Status).Active() && status.Active() {
		taken, err := uc.repo.IsTaken(ctx, ap.PetID, ap.AppointmentDT, ap.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, httperr.Conflict("slot_taken")
		}
	}

	previous := ap.Status
	domain.SetStatus(ap, status, uc.now())

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorRole: audit.RoleAdmin,
		Action:    "appointment_status_changed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   ap.Status,
		},
	})

	return ap, nil
}

// ======================================================
// ADMIN: DELETE
// ======================================================

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the row outright; only administrators reach this.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) error {

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorRole: audit.RoleAdmin,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &appointmentID,
	})
	return nil
}
