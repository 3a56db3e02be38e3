// Package memo provides memoizing implementations of the folio interfaces.
//
// Statistics are recomputed on every price tick, and counting the days held
// by every lot is the most repeated computation. A Days cache is meant to be
// created by the caller and passed explicitly, there is no package level
// state, so independent callers (and tests) never share entries.
package memo

import (
	"fmt"
	"time"

	"github.com/etnz/folio"
	"github.com/karlseguin/ccache/v2"
)

// DefaultSize is the default maximum number of entries.
const DefaultSize = 10_000

// ttl bounds how long an entry is kept, entries never become wrong.
const ttl = 24 * time.Hour

// Days is a folio.DayCounter that memoizes another one. It is safe for
// concurrent use.
type Days struct {
	counter folio.DayCounter
	cache   *ccache.Cache
}

// NewDays returns a memoizing day counter holding at most size entries
// (DefaultSize if size <= 0). A nil counter memoizes folio.CalendarDays.
func NewDays(counter folio.DayCounter, size int64) *Days {
	if counter == nil {
		counter = folio.CalendarDays{}
	}
	if size <= 0 {
		size = DefaultSize
	}
	return &Days{
		counter: counter,
		cache: ccache.New(ccache.Configure().
			MaxSize(size).
			ItemsToPrune(uint32(size/10 + 1))),
	}
}

func key(from, to time.Time) string {
	return fmt.Sprintf("%d:%d", from.UnixNano(), to.UnixNano())
}

// DaysBetween implements folio.DayCounter.
func (d *Days) DaysBetween(from, to time.Time) int {
	item, err := d.cache.Fetch(key(from, to), ttl, func() (interface{}, error) {
		return d.counter.DaysBetween(from, to), nil
	})
	if err != nil {
		// the fetch function never fails.
		return d.counter.DaysBetween(from, to)
	}
	return item.Value().(int)
}

// Len returns the number of cached entries.
func (d *Days) Len() int { return d.cache.ItemCount() }

// Clear drops every cached entry.
func (d *Days) Clear() { d.cache.Clear() }

// Stop releases the cache background worker. d must not be used afterwards.
func (d *Days) Stop() { d.cache.Stop() }
