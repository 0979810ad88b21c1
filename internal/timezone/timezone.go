package timezone

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DefaultOffset is the shelter's local offset.
const DefaultOffset = "+08:00"

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

// Fixed returns a location with a constant UTC offset such as "+08:00".
func Fixed(offset string) (*time.Location, error) {
	m := offsetPattern.FindStringSubmatch(offset)
	if m == nil {
		return nil, fmt.Errorf("invalid utc offset %q", offset)
	}

	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	if hours > 14 || minutes > 59 {
		return nil, fmt.Errorf("invalid utc offset %q", offset)
	}

	seconds := hours*3600 + minutes*60
	if m[1] == "-" {
		seconds = -seconds
	}

	return time.FixedZone("UTC"+offset, seconds), nil
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
