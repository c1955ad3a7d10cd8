package models

import (
	"errors"
	"time"
)

// DateLayout is the wire format for all date-only values.
const DateLayout = "2006-01-02"

var ErrInvalidRange = errors.New("daterange: start date must not be after end date")

// DateRange is a closed interval [Start, End] of calendar days.
// Both endpoints are normalized to midnight UTC.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange validates and normalizes a date range.
func NewDateRange(start, end time.Time) (DateRange, error) {
	dr := DateRange{Start: Midnight(start), End: Midnight(end)}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

func (dr DateRange) Validate() error {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ErrInvalidRange
	}
	if dr.Start.After(dr.End) {
		return ErrInvalidRange
	}
	return nil
}

// Overlaps reports whether two closed intervals intersect:
// neither range ends before the other begins. A one-day range on
// day D overlaps any range that touches D.
func (dr DateRange) Overlaps(other DateRange) bool {
	return !dr.End.Before(other.Start) && !other.End.Before(dr.Start)
}

// ContainsDay reports whether the given day falls inside the range.
func (dr DateRange) ContainsDay(t time.Time) bool {
	d := Midnight(t)
	return !d.Before(dr.Start) && !d.After(dr.End)
}

// Days enumerates every calendar day in the range, in order.
func (dr DateRange) Days() []time.Time {
	var days []time.Time
	for d := dr.Start; !d.After(dr.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Midnight truncates a timestamp to midnight UTC.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a date-only string in DateLayout.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a timestamp as a date-only string.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
