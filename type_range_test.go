package folio

import (
	"slices"
	"testing"
	"time"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{"1H", OneHour, false},
		{"1m", OneMonth, false},
		{" ytd ", YearToDate, false},
		{"ALL", All, false},
		{"2W", All, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRange(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRanges(t *testing.T) {
	var names []string
	for r := range Ranges() {
		names = append(names, r.String())
	}
	if want := []string{"1H", "1D", "1W", "1M", "YTD", "1Y", "ALL"}; !slices.Equal(names, want) {
		t.Errorf("Ranges() = %v, want %v", names, want)
	}
}

func TestRange_Start(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		r    Range
		want time.Time
	}{
		{OneHour, time.Date(2024, time.June, 1, 11, 0, 0, 0, time.UTC)},
		{OneDay, time.Date(2024, time.May, 31, 12, 0, 0, 0, time.UTC)},
		{OneWeek, time.Date(2024, time.May, 25, 12, 0, 0, 0, time.UTC)},
		{OneMonth, time.Date(2024, time.May, 2, 12, 0, 0, 0, time.UTC)},
		{YearToDate, on(2024, time.January, 1)},
		{OneYear, time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)},
		{All, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			if got := tt.r.Start(now); !got.Equal(tt.want) {
				t.Errorf("Start() = %v, want %v", got, tt.want)
			}
		})
	}
	if !OneDay.Contains(now.Add(-time.Hour), now) || OneDay.Contains(now.Add(time.Hour), now) {
		t.Errorf("Contains() is wrong around now")
	}
}

func TestPeriodChange(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	history := []PricePoint{
		{Time: time.Date(2024, time.June, 1, 11, 30, 0, 0, time.UTC), Price: 120},
		{Time: on(2023, time.June, 1), Price: 80},
		{Time: on(2024, time.May, 25), Price: 110},
		{Time: on(2024, time.January, 1), Price: 100},
		{Time: time.Date(2024, time.June, 1, 13, 0, 0, 0, time.UTC), Price: 999}, // after now
	}
	tests := []struct {
		r            Range
		start        float64
		change, pcnt float64
	}{
		{OneHour, 110, 10, Percentage(10, 110)},
		{OneDay, 110, 10, Percentage(10, 110)},
		{OneWeek, 110, 10, Percentage(10, 110)},
		{OneMonth, 100, 20, 20},
		{YearToDate, 100, 20, 20},
		{OneYear, 80, 40, 50},
		{All, 80, 40, 50},
	}
	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			got := PeriodChange(history, tt.r, now)
			if !got.Available || got.End != 120 {
				t.Fatalf("PeriodChange() = %+v, want available, ending at 120", got)
			}
			if got.Start != tt.start || got.Change != tt.change || got.Percent != tt.pcnt {
				t.Errorf("PeriodChange() = %v -> %v (%v, %v%%), want from %v (%v, %v%%)", got.Start, got.End, got.Change, got.Percent, tt.start, tt.change, tt.pcnt)
			}
		})
	}
}

func TestPeriodChange_ShortHistory(t *testing.T) {
	now := on(2024, time.June, 1)
	t.Run("empty", func(t *testing.T) {
		if got := PeriodChange(nil, OneMonth, now); got.Available {
			t.Errorf("PeriodChange() = %+v, want unavailable", got)
		}
	})
	t.Run("only future points", func(t *testing.T) {
		history := []PricePoint{{Time: now.Add(time.Hour), Price: 10}}
		if got := PeriodChange(history, OneMonth, now); got.Available {
			t.Errorf("PeriodChange() = %+v, want unavailable", got)
		}
	})
	t.Run("starts within the window", func(t *testing.T) {
		history := []PricePoint{{Time: now.Add(-Day), Price: 10}, {Time: now, Price: 12}}
		got := PeriodChange(history, OneYear, now)
		if !got.Available || got.Start != 10 || got.Percent != 20 || !got.From.Equal(now.Add(-Day)) {
			t.Errorf("PeriodChange() = %+v, want from the first point", got)
		}
	})
}
