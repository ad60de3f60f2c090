// Package dates provides a plain calendar-date value type.
//
// Query boundaries sent to the API are calendar dates, not instants. Building
// them from time.Time risks shifting a day across timezone conversions, so the
// whole application passes Date values around and only formats them at the
// wire boundary.
package dates

import (
	"fmt"
	"time"

	"github.com/example/frontdesk/internal/constants"
)

// Date is a calendar date with no time-of-day and no location.
type Date struct {
	Year  int
	Month int // 1-indexed
	Day   int
}

// Range is an inclusive [Start, End] pair of calendar dates.
type Range struct {
	Start Date
	End   Date
}

// Today returns the current date in the system's local timezone.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime extracts the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Parse parses a YYYY-MM-DD string into a Date.
func Parse(s string) (Date, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// String formats the date as zero-padded YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Valid reports whether the date names a real calendar day.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= DaysInMonth(d.Year, d.Month)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return FromTime(t.AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the inclusive first/last day range of a month.
func MonthRange(year, month int) Range {
	return Range{
		Start: Date{Year: year, Month: month, Day: 1},
		End:   Date{Year: year, Month: month, Day: DaysInMonth(year, month)},
	}
}

// SingleDay returns the one-day range [d, d].
func SingleDay(d Date) Range {
	return Range{Start: d, End: d}
}

// FirstWeekday returns the weekday (0=Sunday) of the first day of a month.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}
