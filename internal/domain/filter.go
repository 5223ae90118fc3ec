package domain

import (
	"fmt"
	"time"
)

// DateLayout is the format of --since/--until style date bounds.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days in one location. A zero
// bound is open.
type DateRange struct {
	from, to time.Time // to is the last instant of the final day
}

// ParseDateRange reads YYYY-MM-DD bounds in tz. Either may be empty.
func ParseDateRange(since, until string, tz *time.Location) (DateRange, error) {
	var r DateRange
	if since != "" {
		t, err := time.ParseInLocation(DateLayout, since, tz)
		if err != nil {
			return r, fmt.Errorf("invalid since date %q: %w", since, err)
		}
		r.from = t
	}
	if until != "" {
		t, err := time.ParseInLocation(DateLayout, until, tz)
		if err != nil {
			return r, fmt.Errorf("invalid until date %q: %w", until, err)
		}
		r.to = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return r, nil
}

// Open reports whether the range has no bounds at all.
func (r DateRange) Open() bool {
	return r.from.IsZero() && r.to.IsZero()
}

func (r DateRange) Contains(t time.Time) bool {
	if !r.from.IsZero() && t.Before(r.from) {
		return false
	}
	if !r.to.IsZero() && t.After(r.to) {
		return false
	}
	return true
}

// FilterByTimeRange keeps the results whose timestamp falls on a day in
// [since, until] as seen in tz, preserving order.
func FilterByTimeRange(results []Result, since, until string, tz *time.Location) ([]Result, error) {
	r, err := ParseDateRange(since, until, tz)
	if err != nil {
		return nil, err
	}
	if r.Open() {
		return results, nil
	}
	out := make([]Result, 0, len(results))
	for _, res := range results {
		if r.Contains(res.Timestamp) {
			out = append(out, res)
		}
	}
	return out, nil
}
