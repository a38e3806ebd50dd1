package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidTimeFrame indicates an unrecognized named window or
	// bucket granularity
	ErrInvalidTimeFrame = errors.New("invalid time frame")
	// ErrInvalidRange indicates a malformed or inverted date range
	ErrInvalidRange = errors.New("invalid date range")
)

// Named time frames accepted by ResolveNamedWindow
const (
	TimeFrameDaily    = "daily"
	TimeFrameWeekly   = "weekly"
	TimeFrameMonthly  = "monthly"
	TimeFrameAnnually = "annually"
)

// Bucket granularities accepted by the revenue grouping query.
// The yearly granularity is spelled "annual" here; the named window
// above is "annually". Both spellings are load-bearing for API
// compatibility.
const (
	BucketDaily   = "daily"
	BucketMonthly = "monthly"
	BucketAnnual  = "annual"
)

// DateRange is an inclusive date range
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate reports ErrInvalidRange for zero or inverted ranges
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidRange
	}
	if r.End.Before(r.Start) {
		return ErrInvalidRange
	}
	return nil
}

// Contains reports whether t falls within the range, both ends inclusive
func (r DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(DateOf(r.Start)) && !d.After(DateOf(r.End))
}

// DateOf strips the time component, keeping the calendar date in UTC
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolveNamedWindow maps a named time frame and an anchor date to a
// concrete inclusive range ending at the anchor:
//
//	daily    -> [anchor, anchor]
//	weekly   -> [anchor-7d, anchor]
//	monthly  -> [first of anchor's month, anchor]
//	annually -> [Jan 1 of anchor's year, anchor]
func ResolveNamedWindow(name string, anchor time.Time) (DateRange, error) {
	anchorDate := DateOf(anchor)

	switch name {
	case TimeFrameDaily:
		return DateRange{Start: anchorDate, End: anchorDate}, nil
	case TimeFrameWeekly:
		return DateRange{Start: anchorDate.AddDate(0, 0, -7), End: anchorDate}, nil
	case TimeFrameMonthly:
		start := time.Date(anchorDate.Year(), anchorDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: anchorDate}, nil
	case TimeFrameAnnually:
		start := time.Date(anchorDate.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: anchorDate}, nil
	default:
		return DateRange{}, ErrInvalidTimeFrame
	}
}
