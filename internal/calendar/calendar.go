// Package calendar holds the month/day selection state that drives the
// reservation list's date range.
package calendar

import "github.com/example/frontdesk/internal/dates"

// Mode names the selector's granularity.
type Mode int

const (
	// MonthView scopes the range to the whole visible month.
	MonthView Mode = iota
	// DayView scopes the range to a single selected day.
	DayView
)

// Selector is the calendar state machine. Months are 1-indexed; a selected
// day of 0 means no day is selected and the whole month is in scope.
type Selector struct {
	year        int
	month       int
	selectedDay int
	counts      map[int]int
}

// New creates a selector positioned on the given month with no day selected.
func New(year, month int) *Selector {
	return &Selector{year: year, month: month}
}

// Today creates a selector positioned on the current month.
func Today() *Selector {
	d := dates.Today()
	return New(d.Year, d.Month)
}

// Mode reports whether a single day or the whole month is in scope.
func (s *Selector) Mode() Mode {
	if s.selectedDay != 0 {
		return DayView
	}
	return MonthView
}

// Year returns the visible year.
func (s *Selector) Year() int { return s.year }

// Month returns the visible 1-indexed month.
func (s *Selector) Month() int { return s.month }

// SelectedDay returns the selected day of month, 0 when none.
func (s *Selector) SelectedDay() int { return s.selectedDay }

// PrevMonth moves one month back, rolling the year at January, and drops any
// day selection along with the displayed counts.
func (s *Selector) PrevMonth() {
	s.month--
	if s.month < 1 {
		s.month = 12
		s.year--
	}
	s.leaveMonth()
}

// NextMonth moves one month forward, rolling the year at December, and drops
// any day selection along with the displayed counts.
func (s *Selector) NextMonth() {
	s.month++
	if s.month > 12 {
		s.month = 1
		s.year++
	}
	s.leaveMonth()
}

// JumpTo positions the selector on an arbitrary month.
func (s *Selector) JumpTo(year, month int) {
	if month < 1 || month > 12 {
		return
	}
	s.year = year
	s.month = month
	s.leaveMonth()
}

func (s *Selector) leaveMonth() {
	s.selectedDay = 0
	s.counts = nil
}

// SelectDay selects a day of the visible month; selecting the already
// selected day toggles back to the month view. Out-of-range days are
// ignored.
func (s *Selector) SelectDay(day int) {
	if day < 1 || day > dates.DaysInMonth(s.year, s.month) {
		return
	}
	if s.selectedDay == day {
		s.selectedDay = 0
		return
	}
	s.selectedDay = day
}

// ClearDay returns to the month view.
func (s *Selector) ClearDay() {
	s.selectedDay = 0
}

// Range returns the effective date range: the full visible month, or the
// selected day twice over when one is picked.
func (s *Selector) Range() dates.Range {
	if s.selectedDay != 0 {
		return dates.SingleDay(dates.Date{Year: s.year, Month: s.month, Day: s.selectedDay})
	}
	return dates.MonthRange(s.year, s.month)
}

// SetCounts installs the per-day reservation counts for the visible month.
func (s *Selector) SetCounts(counts map[int]int) {
	s.counts = counts
}

// Count returns the reservation count for a day of the visible month, 0 when
// unknown.
func (s *Selector) Count(day int) int {
	return s.counts[day]
}

// Days returns the number of days in the visible month.
func (s *Selector) Days() int {
	return dates.DaysInMonth(s.year, s.month)
}

// LeadingBlanks returns how many empty cells precede day 1 in a grid whose
// week starts on Monday.
func (s *Selector) LeadingBlanks() int {
	wd := dates.FirstWeekday(s.year, s.month)
	// Weekdays count from Sunday; shift so Monday lands on 0.
	return (wd + 6) % 7
}
