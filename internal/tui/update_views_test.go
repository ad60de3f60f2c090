package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/frontdesk/internal/models"
)

func TestCycleChoice(t *testing.T) {
	choices := models.ReservationStatuses

	got := cycleChoice("", choices)
	assert.Equal(t, models.StatusComing, got)

	got = cycleChoice(got, choices)
	assert.Equal(t, models.StatusInProgress, got)

	got = cycleChoice(got, choices)
	assert.Equal(t, models.StatusEnded, got)

	// Cycling past the last choice returns to "no filter".
	assert.Equal(t, "", cycleChoice(got, choices))

	// An unknown value also resets to "no filter".
	assert.Equal(t, "", cycleChoice("BOGUS", choices))
}
