package appointment

import (
	"time"

	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel is a soft delete: the row stays for history, the slot is released.
func Cancel(ap *models.Appointment, now time.Time) error {
	if ap.AppointmentDT.Before(now) {
		return httperr.Validation("appointment_in_past")
	}
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// SetStatus is the admin transition: any status may move to any other.
func SetStatus(ap *models.Appointment, status Status, now time.Time) {
	ap.Status = string(status)

	switch status {
	case StatusCancelled:
		ap.CancelledAt = &now
		ap.CompletedAt = nil
	case StatusCompleted:
		ap.CompletedAt = &now
		ap.CancelledAt = nil
	default:
		ap.CancelledAt = nil
		ap.CompletedAt = nil
	}
}
