package workday

import "time"

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// CountWeekdays returns the number of weekdays in [start, end], inclusive
// of both boundary dates. Time-of-day components are stripped before
// comparison, so the count depends only on calendar dates. An inverted
// range (end before start) counts as empty and yields 0.
func CountWeekdays(start, end time.Time) int {
	from := StartOfDay(start)
	to := StartOfDay(end)
	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsWeekday(d) {
			count++
		}
	}
	return count
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
