package folio

import "time"

// Day is the duration of a calendar day.
const Day = 24 * time.Hour

// DayCounter counts the whole days elapsed between two instants.
//
// It is an interface so that callers recomputing statistics on every price
// tick can inject a memoizing implementation (see package memo).
type DayCounter interface {
	DaysBetween(from, to time.Time) int
}

// CalendarDays is the plain DayCounter: the floor of the elapsed time in
// days. It returns 0 when to is before from.
type CalendarDays struct{}

func (CalendarDays) DaysBetween(from, to time.Time) int {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return int(d / Day)
}

// Years returns the elapsed time between from and to in years of 365.25 days.
func Years(from, to time.Time) float64 {
	return to.Sub(from).Hours() / (24 * 365.25)
}
