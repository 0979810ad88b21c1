package appointment

import (
	"fmt"
	"regexp"
	"time"

	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
	"github.com/BruksfildServices01/pet-shelter/internal/timezone"
)

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04:05"
	DateTimeLayout = DateLayout + " " + ClockLayout
)

// DefaultSlots are the thirteen daily start times offered by the shelter.
var DefaultSlots = []string{
	"09:15:00", "10:00:00", "10:45:00", "11:30:00", "12:15:00",
	"13:00:00", "13:45:00", "14:30:00", "15:15:00", "16:00:00",
	"16:45:00", "17:30:00", "18:00:00",
}

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern    = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
)

// Schedule is the booking configuration: the slot list, the inclusive
// booking window and the fixed offset every date is interpreted in.
type Schedule struct {
	slots   []string
	slotSet map[string]struct{}

	windowStart time.Time
	windowEnd   time.Time
	loc         *time.Location
}

func NewSchedule(
	slots []string,
	windowStart string,
	windowEnd string,
	loc *time.Location,
) (Schedule, error) {

	if loc == nil {
		return Schedule{}, fmt.Errorf("schedule: location is required")
	}
	if len(slots) == 0 {
		return Schedule{}, fmt.Errorf("schedule: at least one slot is required")
	}

	set := make(map[string]struct{}, len(slots))
	ordered := make([]string, 0, len(slots))
	for _, s := range slots {
		if !clockPattern.MatchString(s) {
			return Schedule{}, fmt.Errorf("schedule: malformed slot %q", s)
		}
		if _, err := time.Parse(ClockLayout, s); err != nil {
			return Schedule{}, fmt.Errorf("schedule: malformed slot %q", s)
		}
		if _, dup := set[s]; dup {
			return Schedule{}, fmt.Errorf("schedule: duplicate slot %q", s)
		}
		set[s] = struct{}{}
		ordered = append(ordered, s)
	}

	start, err := time.ParseInLocation(DateLayout, windowStart, loc)
	if err != nil {
		return Schedule{}, fmt.Errorf("schedule: window start: %w", err)
	}
	endDay, err := time.ParseInLocation(DateLayout, windowEnd, loc)
	if err != nil {
		return Schedule{}, fmt.Errorf("schedule: window end: %w", err)
	}
	if endDay.Before(start) {
		return Schedule{}, fmt.Errorf("schedule: window end %s before start %s", windowEnd, windowStart)
	}

	return Schedule{
		slots:       ordered,
		slotSet:     set,
		windowStart: start,
		windowEnd:   endDay.Add(24*time.Hour - time.Second),
		loc:         loc,
	}, nil
}

// Slots returns a copy of the configured slot list in order.
func (s Schedule) Slots() []string {
	return append([]string(nil), s.slots...)
}

func (s Schedule) HasSlot(clock string) bool {
	_, ok := s.slotSet[clock]
	return ok
}

func (s Schedule) Location() *time.Location { return s.loc }

func (s Schedule) WindowStart() time.Time { return s.windowStart }

// WindowEnd is the last bookable second (23:59:59 on the final day).
func (s Schedule) WindowEnd() time.Time { return s.windowEnd }

// Within is true when at is not in the past and lies inside the window.
func (s Schedule) Within(at, now time.Time) bool {
	if at.Before(now) {
		return false
	}
	return !at.Before(s.windowStart) && !at.After(s.windowEnd)
}

// ParseDate parses a strict YYYY-MM-DD date at midnight in the schedule location.
func (s Schedule) ParseDate(date string) (time.Time, error) {
	if !datePattern.MatchString(date) {
		return time.Time{}, httperr.Validation("invalid_date_or_time")
	}
	d, err := time.ParseInLocation(DateLayout, date, s.loc)
	if err != nil {
		return time.Time{}, httperr.Validation("invalid_date_or_time")
	}
	return d, nil
}

// ParseDateTime parses a strict "YYYY-MM-DD HH:MM:SS" value.
func (s Schedule) ParseDateTime(value string) (time.Time, error) {
	if !dateTimePattern.MatchString(value) {
		return time.Time{}, httperr.Validation("invalid_date_or_time")
	}
	at, err := time.ParseInLocation(DateTimeLayout, value, s.loc)
	if err != nil {
		return time.Time{}, httperr.Validation("invalid_date_or_time")
	}
	return at, nil
}

// Compose joins a date and a time of day into one instant.
func (s Schedule) Compose(date, clock string) (time.Time, error) {
	return s.ParseDateTime(date + " " + clock)
}

// DayBounds returns [00:00, next 00:00) of the local day containing t.
func (s Schedule) DayBounds(t time.Time) (time.Time, time.Time) {
	start := timezone.StartOfDay(t.In(s.loc))
	return start, start.AddDate(0, 0, 1)
}

// Format renders an instant the way forms and pages expect it.
func (s Schedule) Format(at time.Time) string {
	return at.In(s.loc).Format(DateTimeLayout)
}
