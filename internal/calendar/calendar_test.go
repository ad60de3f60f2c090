package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/frontdesk/internal/calendar"
	"github.com/example/frontdesk/internal/dates"
)

func TestMonthRange(t *testing.T) {
	s := calendar.New(2024, 8)
	assert.Equal(t, calendar.MonthView, s.Mode())

	r := s.Range()
	assert.Equal(t, "2024-08-01", r.Start.String())
	assert.Equal(t, "2024-08-31", r.End.String())
}

func TestSelectDayTogglesRange(t *testing.T) {
	s := calendar.New(2024, 8)

	s.SelectDay(10)
	assert.Equal(t, calendar.DayView, s.Mode())
	assert.Equal(t, dates.Range{
		Start: dates.Date{Year: 2024, Month: 8, Day: 10},
		End:   dates.Date{Year: 2024, Month: 8, Day: 10},
	}, s.Range())

	// Selecting the same day again returns to the month view.
	s.SelectDay(10)
	assert.Equal(t, calendar.MonthView, s.Mode())
	assert.Equal(t, "2024-08-01", s.Range().Start.String())
}

func TestSelectDayIgnoresOutOfRange(t *testing.T) {
	s := calendar.New(2023, 2)
	s.SelectDay(29)
	assert.Equal(t, 0, s.SelectedDay())
	s.SelectDay(0)
	assert.Equal(t, 0, s.SelectedDay())
	s.SelectDay(28)
	assert.Equal(t, 28, s.SelectedDay())
}

func TestMonthNavigationRollsYear(t *testing.T) {
	s := calendar.New(2024, 1)
	s.PrevMonth()
	assert.Equal(t, 2023, s.Year())
	assert.Equal(t, 12, s.Month())

	s.NextMonth()
	assert.Equal(t, 2024, s.Year())
	assert.Equal(t, 1, s.Month())

	s = calendar.New(2024, 12)
	s.NextMonth()
	assert.Equal(t, 2025, s.Year())
	assert.Equal(t, 1, s.Month())
}

func TestNavigationClearsSelectionAndCounts(t *testing.T) {
	s := calendar.New(2024, 8)
	s.SelectDay(15)
	s.SetCounts(map[int]int{10: 2, 15: 1})

	s.NextMonth()
	assert.Equal(t, 0, s.SelectedDay())
	assert.Equal(t, 0, s.Count(10))
	assert.Equal(t, "2024-09-01", s.Range().Start.String())

	s.SelectDay(3)
	s.PrevMonth()
	assert.Equal(t, 0, s.SelectedDay())
}

func TestCounts(t *testing.T) {
	s := calendar.New(2024, 8)
	s.SetCounts(map[int]int{10: 2})
	assert.Equal(t, 2, s.Count(10))
	assert.Equal(t, 0, s.Count(11))
}

func TestGridLayout(t *testing.T) {
	// August 2024 starts on a Thursday, so a Monday-first grid has three
	// blanks before it.
	s := calendar.New(2024, 8)
	assert.Equal(t, 31, s.Days())
	assert.Equal(t, 3, s.LeadingBlanks())

	// September 2024 starts on a Sunday, the last column.
	s.JumpTo(2024, 9)
	assert.Equal(t, 30, s.Days())
	assert.Equal(t, 6, s.LeadingBlanks())
}
