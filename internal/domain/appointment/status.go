package appointment

import "github.com/BruksfildServices01/pet-shelter/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ParseStatus accepts only the three persisted values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return Status(s), nil
	}
	return "", httperr.Validation("invalid_status")
}

// Active reports whether the status still holds its slot.
func (s Status) Active() bool {
	return s != StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanCancel is the user-side rule: only scheduled appointments are cancellable.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.Validation("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
