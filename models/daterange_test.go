package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func rangeOf(start, end string) DateRange {
	dr, err := NewDateRange(day(start), day(end))
	if err != nil {
		panic(err)
	}
	return dr
}

func TestNewDateRange(t *testing.T) {
	dr, err := NewDateRange(day("2026-03-10"), day("2026-03-12"))
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", FormatDate(dr.Start))
	assert.Equal(t, "2026-03-12", FormatDate(dr.End))

	// Single-day ranges are valid.
	_, err = NewDateRange(day("2026-03-10"), day("2026-03-10"))
	assert.NoError(t, err)

	// Inverted ranges are not.
	_, err = NewDateRange(day("2026-03-12"), day("2026-03-10"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewDateRangeNormalizesToMidnightUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2026, 3, 10, 23, 45, 0, 0, ist)

	dr, err := NewDateRange(late, late)
	require.NoError(t, err)
	// 23:45 IST is 18:15 UTC the same calendar day.
	assert.Equal(t, day("2026-03-10"), dr.Start)
	assert.Equal(t, time.UTC, dr.Start.Location())
}

func TestOverlaps(t *testing.T) {
	base := rangeOf("2026-03-10", "2026-03-15")

	tests := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"identical", rangeOf("2026-03-10", "2026-03-15"), true},
		{"contained", rangeOf("2026-03-11", "2026-03-14"), true},
		{"containing", rangeOf("2026-03-01", "2026-03-31"), true},
		{"partial left", rangeOf("2026-03-05", "2026-03-10"), true},
		{"partial right", rangeOf("2026-03-15", "2026-03-20"), true},
		{"shared single endpoint day", rangeOf("2026-03-15", "2026-03-15"), true},
		{"adjacent before", rangeOf("2026-03-05", "2026-03-09"), false},
		{"adjacent after", rangeOf("2026-03-16", "2026-03-20"), false},
		{"disjoint", rangeOf("2026-04-01", "2026-04-05"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestContainsDay(t *testing.T) {
	dr := rangeOf("2026-03-10", "2026-03-12")

	assert.True(t, dr.ContainsDay(day("2026-03-10")))
	assert.True(t, dr.ContainsDay(day("2026-03-11")))
	assert.True(t, dr.ContainsDay(day("2026-03-12")))
	assert.False(t, dr.ContainsDay(day("2026-03-09")))
	assert.False(t, dr.ContainsDay(day("2026-03-13")))

	// Time-of-day must not matter.
	assert.True(t, dr.ContainsDay(time.Date(2026, 3, 12, 23, 59, 0, 0, time.UTC)))
}

func TestDays(t *testing.T) {
	days := rangeOf("2026-03-10", "2026-03-12").Days()
	require.Len(t, days, 3)
	assert.Equal(t, "2026-03-10", FormatDate(days[0]))
	assert.Equal(t, "2026-03-11", FormatDate(days[1]))
	assert.Equal(t, "2026-03-12", FormatDate(days[2]))

	assert.Len(t, rangeOf("2026-03-10", "2026-03-10").Days(), 1)
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "10-03-2026", "2026/03/10", "2026-13-40", "yesterday"} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}
