package leave

import "time"

// WorkingDays counts the calendar days in the inclusive range [start, end].
// With excludeWeekends set, only Monday through Friday are counted; no
// holiday calendar is consulted. An inverted range yields 0 for both modes.
func WorkingDays(start, end Date, excludeWeekends bool) int {
	if start.After(end) {
		return 0
	}

	total := start.DaysUntil(end) + 1
	if !excludeWeekends {
		return total
	}

	working := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			working++
		}
	}
	return working
}
