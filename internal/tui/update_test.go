package tui

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/frontdesk/internal/api"
	"github.com/example/frontdesk/internal/config"
	"github.com/example/frontdesk/internal/constants"
	"github.com/example/frontdesk/internal/models"
	"github.com/example/frontdesk/internal/session"
	"github.com/example/frontdesk/internal/tui/components/reservationlist"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := &config.Config{}
	cfg.API.BaseURL = "http://localhost:1"
	cfg.API.Timeout = time.Second
	cfg.Rooms.PageSize = 3
	cfg.Reservations.PageSize = 3
	cfg.Statistics.WindowDays = 30
	cfg.Statistics.TopCompaniesLimit = 5

	sess := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	client := api.New(api.Options{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, sess)
	return NewModel(cfg, client, sess)
}

func esc() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func TestRoomModalCloseAlwaysRefreshes(t *testing.T) {
	m := testModel(t)
	m.state = constants.StateRoomModal
	m.roomDetail = &models.HotelRoom{ID: "r1", RoomNumber: 12}
	before := m.roomsGen

	model, cmd := m.Update(esc())
	got := model.(Model)

	assert.Equal(t, constants.StateRooms, got.state)
	assert.Nil(t, got.roomDetail)
	// Closing dispatched a fresh list fetch, not a cached rerender.
	require.NotNil(t, cmd)
	assert.Greater(t, got.roomsGen, before)
}

func TestReservationModalCloseRefreshesListAndCalendar(t *testing.T) {
	m := testModel(t)
	m.state = constants.StateReservationModal
	m.resDetail = &models.Reservation{ID: "b1"}
	calBefore := m.calGen

	model, cmd := m.Update(esc())
	got := model.(Model)

	assert.Equal(t, constants.StateReservations, got.state)
	assert.Nil(t, got.resDetail)
	require.NotNil(t, cmd)
	assert.Greater(t, got.calGen, calBefore)
	assert.True(t, got.resCtl.Loading())
}

func TestRoomFormCompletionDispatchesOnce(t *testing.T) {
	m := testModel(t)
	room := models.HotelRoom{ID: "r1", RoomNumber: 12, Price: 80, Category: models.RoomCategories[0], State: models.RoomStateAvailable}
	m.editingRoom = &room
	m.startRoomForm(&room)
	m.state = constants.StateCreateRoom
	m.form.State = huh.StateCompleted

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := model.(Model)
	require.NotNil(t, cmd)
	assert.True(t, got.submitting)
	// The edit target survives the dispatch: a retry must stay an update,
	// never turn into a second create.
	require.NotNil(t, got.editingRoom)

	// Keystrokes while the request is in flight must not fire it again.
	model, cmd = got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	got = model.(Model)
	assert.Nil(t, cmd)
	model, cmd = got.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_ = model.(Model)
	assert.Nil(t, cmd)
}

func TestFailedSubmissionReopensForm(t *testing.T) {
	m := testModel(t)
	m.startAccountForm()
	m.state = constants.StateCreateAccount
	m.submitting = true

	model, cmd := m.Update(mutationDoneMsg{action: "Account created", err: errors.New("boom")})
	got := model.(Model)

	// The form stays open for another attempt instead of dropping the input.
	assert.Equal(t, constants.StateCreateAccount, got.state)
	assert.False(t, got.submitting)
	require.NotNil(t, cmd)
}

func TestReservationModalEditOpensPrepopulatedForm(t *testing.T) {
	m := testModel(t)
	m.state = constants.StateReservationModal
	res := models.Reservation{
		ID:             "b1",
		HotelRoom:      models.HotelRoom{ID: "r1", RoomNumber: 12},
		GuestSnapshot:  models.GuestSnapshot{Name: "Doe", FirstName: "Jane"},
		StartDate:      "2024-08-10",
		EndDate:        "2024-08-12",
		NumberOfAdults: 2,
		PaymentStatus:  models.PaymentNotPaid,
	}
	m.resDetail = &res

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	got := model.(Model)

	assert.Equal(t, constants.StateCreateReservation, got.state)
	require.NotNil(t, cmd)
	require.NotNil(t, got.editingRes)
	assert.Equal(t, "b1", got.editingRes.ID)
	assert.Equal(t, "r1", got.resForm.RoomID)
	assert.Equal(t, "2024-08-10", got.resForm.StartDate)
	assert.Equal(t, "Doe", got.resForm.GuestName)
	assert.Equal(t, "2", got.resForm.Adults)
}

func TestReservationFormDatesStepLoadsFreeRooms(t *testing.T) {
	m := testModel(t)
	m.startReservationForm(nil)
	m.state = constants.StateCreateReservation
	m.form.State = huh.StateCompleted

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := model.(Model)
	require.NotNil(t, cmd)
	assert.True(t, got.resDatesPicked)
	assert.True(t, got.submitting)

	rooms := []models.HotelRoom{{ID: "r1", RoomNumber: 3}}
	model, cmd = got.Update(formRoomsMsg{rooms: rooms})
	got = model.(Model)
	assert.False(t, got.submitting)
	assert.Equal(t, constants.StateCreateReservation, got.state)
	assert.Equal(t, rooms, got.formRooms)
	require.NotNil(t, cmd)
}

func TestDetailFetchesUseOwnGenerations(t *testing.T) {
	m := testModel(t)
	m.roomList.SetSize(80, 24)
	m.fetchRooms()
	listGen := m.roomsGen
	m.fetchRoomDetail("r1")
	assert.Equal(t, listGen, m.roomsGen)
	assert.Equal(t, uint64(1), m.roomDetailGen)

	m.fetchCalendar()
	calGen := m.calGen
	m.fetchReservationDetail("b1")
	assert.Equal(t, calGen, m.calGen)
	assert.Equal(t, uint64(1), m.resDetailGen)

	// The list load was never superseded, so its response still lands even
	// though a detail fetch started after it.
	model, _ := m.Update(roomsLoadedMsg{gen: listGen, rooms: []models.HotelRoom{{ID: "r1", RoomNumber: 2}}})
	got := model.(Model)
	sel, ok := got.roomList.Selected()
	require.True(t, ok)
	assert.Equal(t, "r1", sel.ID)
}

func TestReservationRoomFilterCycles(t *testing.T) {
	m := testModel(t)
	m.state = constants.StateReservations
	m.filterRooms = []models.HotelRoom{{ID: "r1", RoomNumber: 1}, {ID: "r2", RoomNumber: 2}}

	model, cmd := m.Update(reservationlist.CycleRoomMsg{})
	got := model.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, "r1", got.resFilter.RoomID)
	assert.True(t, got.resCtl.Loading())

	model, _ = got.Update(reservationlist.CycleRoomMsg{})
	got = model.(Model)
	assert.Equal(t, "r2", got.resFilter.RoomID)

	model, _ = got.Update(reservationlist.CycleRoomMsg{})
	got = model.(Model)
	assert.Equal(t, "", got.resFilter.RoomID)
}

func TestConfirmDeleteDeclineReturnsWithoutMutation(t *testing.T) {
	m := testModel(t)
	m.state = constants.StateConfirmDeleteRoom
	room := models.HotelRoom{ID: "r1"}
	m.roomToDel = &room

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	got := model.(Model)

	assert.Equal(t, constants.StateRooms, got.state)
	assert.Nil(t, cmd)
}
