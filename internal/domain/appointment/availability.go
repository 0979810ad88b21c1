package appointment

import "time"

// FreeSlots removes every booked time of day from slots, preserving order.
// booked instants are converted to loc before comparison.
func FreeSlots(slots []string, booked []time.Time, loc *time.Location) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, at := range booked {
		taken[at.In(loc).Format(ClockLayout)] = struct{}{}
	}

	free := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; ok {
			continue
		}
		free = append(free, slot)
	}
	return free
}
