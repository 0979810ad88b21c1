package appointment

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/pet-shelter/internal/audit"
	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

const MaxNotesLength = 255

// ======================================================
// INPUT
// ======================================================

type BookSlotInput struct {
	UserID uint
	PetID  uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookSlot struct {
	repo    domain.Repository
	checker *SlotChecker
	audit   *audit.Dispatcher
}

func NewBookSlot(
	repo domain.Repository,
	checker *SlotChecker,
	audit *audit.Dispatcher,
) *BookSlot {
	return &BookSlot{
		repo:    repo,
		checker: checker,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookSlot) Execute(
	ctx context.Context,
	in BookSlotInput,
) (*models.Appointment, error) {

	schedule := uc.checker.Schedule()
	date := strings.TrimSpace(in.Date)
	clock := strings.TrimSpace(in.Time)

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	if date == "" || clock == "" {
		return nil, httperr.Validation("missing_date_or_time")
	}

	notes := strings.TrimSpace(in.Notes)
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return nil, httperr.Validation("notes_too_long")
	}

	// --------------------------------------------------
	// 2. Not a past day
	// --------------------------------------------------
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}
	today, _ := schedule.DayBounds(uc.checker.Now())
	if day.Before(today) {
		return nil, httperr.Validation("date_in_past")
	}

	// --------------------------------------------------
	// 3. Pet and booking user
	// --------------------------------------------------
	pet, err := uc.repo.GetPet(ctx, in.PetID)
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

	// --------------------------------------------------
	// 4. Timestamp shape and slot membership
	// --------------------------------------------------
	at, err := schedule.Compose(date, clock)
	if err != nil {
		return nil, err
	}
	if !schedule.HasSlot(clock) {
		return nil, httperr.Validation("invalid_slot")
	}

	// --------------------------------------------------
	// 5. Availability
	// --------------------------------------------------
	taken, err := uc.checker.IsTaken(ctx, pet.ID, at)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.Conflict("slot_taken")
	}

	// --------------------------------------------------
	// 6. Booking window
	// --------------------------------------------------
	if !uc.checker.IsWithinBookingWindow(at) {
		return nil, httperr.Validation("outside_booking_window")
	}

	// --------------------------------------------------
	// 7. Insert; the partial unique index settles races
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:        in.UserID,
		PetID:         pet.ID,
		AppointmentDT: at,
		Status:        string(domain.InitialStatus()),
		Notes:         optional(notes),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.UserID,
		ActorRole: audit.RoleUser,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"pet_id":         pet.ID,
			"appointment_dt": schedule.Format(at),
		},
	})

	return ap, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
