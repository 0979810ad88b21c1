package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
)

// SlotChecker answers whether a pet's slot is free and which slots remain
// on a given day.
type SlotChecker struct {
	repo     domain.Repository
	schedule domain.Schedule
	now      func() time.Time
}

func NewSlotChecker(
	repo domain.Repository,
	schedule domain.Schedule,
	now func() time.Time,
) *SlotChecker {
	if now == nil {
		now = time.Now
	}
	return &SlotChecker{
		repo:     repo,
		schedule: schedule,
		now:      now,
	}
}

func (c *SlotChecker) Schedule() domain.Schedule { return c.schedule }

func (c *SlotChecker) Now() time.Time { return c.now().In(c.schedule.Location()) }

// IsTaken reports whether a non-cancelled appointment holds (petID, at).
func (c *SlotChecker) IsTaken(
	ctx context.Context,
	petID uint,
	at time.Time,
) (bool, error) {
	return c.repo.IsTaken(ctx, petID, at, 0)
}

// ListAvailable returns the configured slots not yet booked for the pet on
// date, in slot order.
func (c *SlotChecker) ListAvailable(
	ctx context.Context,
	petID uint,
	date string,
) ([]string, error) {

	day, err := c.schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}

	start, end := c.schedule.DayBounds(day)
	booked, err := c.repo.ListBookedTimes(ctx, petID, start, end)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(c.schedule.Slots(), booked, c.schedule.Location()), nil
}

func (c *SlotChecker) IsWithinBookingWindow(at time.Time) bool {
	return c.schedule.Within(at, c.now())
}
