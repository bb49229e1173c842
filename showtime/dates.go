package showtime

import "time"

// DayCount is the number of selectable days, starting today.
const DayCount = 7

// NextDays returns n consecutive calendar dates starting with the date of start,
// each at midnight in start's location.
func NextDays(start time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	first := Day(start)
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}

// Day truncates t to midnight of its calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a time.Time, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseDay parses a YYYY-MM-DD value and accepts it only when it is one of days.
func ParseDay(value string, days []time.Time) (time.Time, bool) {
	if value == "" || len(days) == 0 {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(time.DateOnly, value, days[0].Location())
	if err != nil {
		return time.Time{}, false
	}
	for _, d := range days {
		if SameDay(d, parsed) {
			return d, true
		}
	}
	return time.Time{}, false
}
