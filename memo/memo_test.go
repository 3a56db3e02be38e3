package memo

import (
	"sync"
	"testing"
	"time"

	"github.com/etnz/folio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDays counts the calls made to the underlying counter.
type countingDays struct {
	mu    sync.Mutex
	calls int
}

func (c *countingDays) DaysBetween(from, to time.Time) int {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return folio.CalendarDays{}.DaysBetween(from, to)
}

func TestDays_Memoizes(t *testing.T) {
	counter := &countingDays{}
	days := NewDays(counter, 100)
	defer days.Stop()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for range 5 {
		assert.Equal(t, 60, days.DaysBetween(from, to))
	}
	assert.Equal(t, 1, counter.calls)

	assert.Equal(t, 61, days.DaysBetween(from, to.Add(folio.Day)))
	assert.Equal(t, 2, counter.calls)
	assert.Equal(t, 2, days.Len())
}

func TestDays_Isolated(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(10 * folio.Day)

	a := NewDays(nil, 0)
	defer a.Stop()
	b := NewDays(nil, 0)
	defer b.Stop()

	require.Equal(t, 10, a.DaysBetween(from, to))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len(), "caches must not share entries")

	a.Clear()
	assert.Equal(t, 0, a.Len())
}

func TestDays_TaxLots(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	buy, err := folio.NewTransaction("1", folio.Buy, folio.K("AAPL", folio.Stock), 10, 100, now.AddDate(-2, 0, 0), "TFSA")
	require.NoError(t, err)

	days := NewDays(nil, 0)
	defer days.Stop()

	prices := folio.Prices{buy.Key(): {Price: 120}}
	want := folio.TaxLots([]folio.Transaction{buy}, buy.Key(), prices, now, nil)
	got := folio.TaxLots([]folio.Transaction{buy}, buy.Key(), prices, now, days)
	require.Len(t, got.Lots, 1)
	assert.Equal(t, want.Lots[0].DaysHeld, got.Lots[0].DaysHeld)
	assert.Equal(t, folio.LongTerm, got.Lots[0].HoldingPeriod)
}
