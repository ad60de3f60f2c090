package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringZeroPadding(t *testing.T) {
	d := Date{Year: 2024, Month: 8, Day: 9}
	assert.Equal(t, "2024-08-09", d.String())
}

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2024-08-10")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: 8, Day: 10}, d)
	assert.Equal(t, "2024-08-10", d.String())

	_, err = Parse("2024-13-01")
	assert.Error(t, err)
	_, err = Parse("not-a-date")
	assert.Error(t, err)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 2, 29}, // leap year
		{2023, 2, 28},
		{2024, 8, 31},
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month), "DaysInMonth(%d, %d)", tt.year, tt.month)
	}
}

func TestMonthRange(t *testing.T) {
	r := MonthRange(2024, 2)
	assert.Equal(t, "2024-02-01", r.Start.String())
	assert.Equal(t, "2024-02-29", r.End.String())
}

func TestAddDays(t *testing.T) {
	d := Date{Year: 2024, Month: 12, Day: 31}
	assert.Equal(t, Date{Year: 2025, Month: 1, Day: 1}, d.AddDays(1))
	assert.Equal(t, Date{Year: 2024, Month: 12, Day: 1}, d.AddDays(-30))
}

func TestBeforeAfter(t *testing.T) {
	a := Date{Year: 2024, Month: 8, Day: 10}
	b := Date{Year: 2024, Month: 8, Day: 11}
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
}

func TestValid(t *testing.T) {
	assert.True(t, Date{Year: 2024, Month: 2, Day: 29}.Valid())
	assert.False(t, Date{Year: 2023, Month: 2, Day: 29}.Valid())
	assert.False(t, Date{Year: 2024, Month: 0, Day: 1}.Valid())
}
