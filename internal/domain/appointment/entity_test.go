package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
)

func TestCancel(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: "scheduled", AppointmentDT: now.Add(time.Hour)}
	if err := Cancel(ap, now); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if ap.Status != "cancelled" || ap.CancelledAt == nil {
		t.Fatalf("unexpected state %+v", ap)
	}

	past := &models.Appointment{Status: "scheduled", AppointmentDT: now.Add(-time.Minute)}
	if err := Cancel(past, now); !httperr.IsBusiness(err, "appointment_in_past") {
		t.Fatalf("expected appointment_in_past, got %v", err)
	}

	done := &models.Appointment{Status: "completed", AppointmentDT: now.Add(time.Hour)}
	if err := Cancel(done, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestSetStatusStampsTimes(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: "scheduled"}

	SetStatus(ap, StatusCompleted, now)
	if ap.CompletedAt == nil || ap.CancelledAt != nil {
		t.Fatalf("completed stamps wrong: %+v", ap)
	}

	SetStatus(ap, StatusCancelled, now)
	if ap.CancelledAt == nil || ap.CompletedAt != nil {
		t.Fatalf("cancelled stamps wrong: %+v", ap)
	}

	SetStatus(ap, StatusScheduled, now)
	if ap.CancelledAt != nil || ap.CompletedAt != nil || ap.Status != "scheduled" {
		t.Fatalf("scheduled should clear stamps: %+v", ap)
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "completed", "cancelled"} {
		if _, err := ParseStatus(s); err != nil {
			t.Fatalf("ParseStatus(%q): %v", s, err)
		}
	}
	if _, err := ParseStatus("pending"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}
