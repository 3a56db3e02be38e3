package folio

import (
	"fmt"
	"iter"
	"sort"
	"strings"
	"time"
)

// Range is a lookback window ending now, used for period change calculations.
type Range int

const (
	OneHour Range = iota
	OneDay
	OneWeek
	OneMonth
	YearToDate
	OneYear
	All
)

// Ranges returns an iterator over all ranges, shortest first.
func Ranges() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for r := OneHour; r <= All; r++ {
			if !yield(r) {
				return
			}
		}
	}
}

func (r Range) String() string {
	switch r {
	case OneHour:
		return "1H"
	case OneDay:
		return "1D"
	case OneWeek:
		return "1W"
	case OneMonth:
		return "1M"
	case YearToDate:
		return "YTD"
	case OneYear:
		return "1Y"
	case All:
		return "ALL"
	default:
		return "unknown"
	}
}

// ParseRange parses a range selector such as "1M" or "ytd".
func ParseRange(s string) (Range, error) {
	for r := range Ranges() {
		if strings.EqualFold(strings.TrimSpace(s), r.String()) {
			return r, nil
		}
	}
	return All, fmt.Errorf("unknown range %q (use 1H, 1D, 1W, 1M, YTD, 1Y or ALL)", s)
}

// Start returns the beginning of the window for a given now. 1M is 30
// calendar days, YTD starts on January 1st of now's year (in now's
// location) and ALL returns the zero time.
func (r Range) Start(now time.Time) time.Time {
	switch r {
	case OneHour:
		return now.Add(-time.Hour)
	case OneDay:
		return now.Add(-Day)
	case OneWeek:
		return now.AddDate(0, 0, -7)
	case OneMonth:
		return now.AddDate(0, 0, -30)
	case YearToDate:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case OneYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

// Contains reports whether t is within the window ending at now.
func (r Range) Contains(t, now time.Time) bool {
	return !t.Before(r.Start(now)) && !t.After(now)
}

// Change is the evolution of a price over a range.
type Change struct {
	Range     string    `json:"range"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Start     float64   `json:"start"`
	End       float64   `json:"end"`
	Change    float64   `json:"change"`
	Percent   float64   `json:"percent"`
	Available bool      `json:"available"`
}

// PeriodChange computes the change of a price history over r. The start
// price is the last point at or before the start of the window, or the first
// point within the window when history does not go back that far. The end
// price is the last point at or before now. Available is false when the
// history has no point to start from.
func PeriodChange(history []PricePoint, r Range, now time.Time) Change {
	points := make([]PricePoint, 0, len(history))
	for _, p := range history {
		if !p.Time.After(now) {
			points = append(points, p)
		}
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })

	c := Change{Range: r.String(), To: now}
	if len(points) == 0 {
		return c
	}
	from := r.Start(now)
	start := -1
	for i, p := range points {
		if p.Time.After(from) {
			if start < 0 {
				start = i
			}
			break
		}
		start = i
	}
	first, last := points[start], points[len(points)-1]
	c.Available = true
	c.From = first.Time
	c.Start = first.Price
	c.End = last.Price
	c.Change = Subtract(last.Price, first.Price)
	c.Percent = Percentage(c.Change, first.Price)
	return c
}
