package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/frontdesk/internal/api"
	"github.com/example/frontdesk/internal/constants"
	"github.com/example/frontdesk/internal/listctl"
	"github.com/example/frontdesk/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 6
		m.roomList.SetSize(msg.Width-4, contentHeight)
		m.resList.SetSize(msg.Width-30, contentHeight)
		m.statsView.SetSize(msg.Width-4, contentHeight)
		m.accountList.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case noticeTickMsg:
		m.notices.Expire(time.Time(msg))
		return m, noticeTick()

	case loginDoneMsg:
		if msg.err != nil {
			m.notices.Error(msg.err.Error())
			m.startLoginForm()
			return m, m.form.Init()
		}
		if err := m.session.Establish(msg.identity); err != nil {
			m.notices.Error("could not save session: " + err.Error())
		}
		m.authNotified = false
		m.notices.Success("Signed in as " + msg.identity.DisplayName())
		m.state = constants.StateRooms
		return m, m.fetchRooms()

	case roomsLoadedMsg:
		if msg.gen < m.roomsGen {
			return m, nil
		}
		m.roomsGen = msg.gen
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.roomList.SetRooms(msg.rooms)
		return m, nil

	case roomDetailMsg:
		if msg.gen != m.roomDetailGen {
			return m, nil
		}
		if msg.err != nil {
			m.state = constants.StateRooms
			return m, m.handleError(msg.err)
		}
		room := msg.room
		m.roomDetail = &room
		return m, nil

	case reservationsLoadedMsg:
		current := m.resCtl.Apply(msg.gen, listctl.Result[models.Reservation]{
			Items:         msg.page.Content,
			TotalElements: msg.page.TotalElements,
			TotalPages:    msg.page.TotalPages,
		}, msg.err)
		if !current {
			return m, nil
		}
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.resList.SetReservations(m.resCtl.Items())
		return m, nil

	case calendarLoadedMsg:
		if msg.gen != m.calGen {
			return m, nil
		}
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		counts := make(map[int]int, len(msg.cal.DailyCounts))
		for day, n := range msg.cal.DailyCounts {
			if d, err := strconv.Atoi(day); err == nil {
				counts[d] = n
			}
		}
		m.cal.SetCounts(counts)
		m.availableCount = msg.available
		return m, nil

	case reservationDetailMsg:
		if msg.gen != m.resDetailGen {
			return m, nil
		}
		if msg.err != nil {
			m.state = constants.StateReservations
			return m, m.handleError(msg.err)
		}
		reservation := msg.reservation
		m.resDetail = &reservation
		return m, nil

	case statsLoadedMsg:
		if !m.statsLoader.Apply(msg.gen, msg.snap, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.statsView.SetSnapshot(msg.snap)
		return m, nil

	case accountsLoadedMsg:
		if msg.gen != m.accountsGen {
			return m, nil
		}
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.accountList.SetAccounts(msg.accounts)
		return m, nil

	case formRoomsMsg:
		m.submitting = false
		if msg.err != nil {
			m.resDatesPicked = false
			cmd := m.handleError(msg.err)
			if m.state == constants.StateCreateReservation {
				// Back to the date step so the lookup can be retried.
				m.buildReservationDatesForm()
				return m, tea.Batch(cmd, m.form.Init())
			}
			return m, cmd
		}
		m.formRooms = msg.rooms
		if m.state == constants.StateCreateReservation {
			m.buildReservationDetailsForm()
			return m, m.form.Init()
		}
		return m, nil

	case filterRoomsMsg:
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.filterRooms = msg.rooms
		return m, nil

	case mutationDoneMsg:
		return m.handleMutationDone(msg)

	case exportDoneMsg:
		if msg.err != nil {
			m.notices.Error("export failed: " + msg.err.Error())
		} else {
			m.notices.Success("Wrote " + msg.path)
		}
		return m, nil
	}

	switch m.state {
	case constants.StateLogin:
		return m.updateLogin(msg)
	case constants.StateCreateRoom:
		return m.updateRoomForm(msg)
	case constants.StateCreateReservation:
		return m.updateReservationForm(msg)
	case constants.StateCreateAccount:
		return m.updateAccountForm(msg)
	case constants.StateConfirmDeleteRoom, constants.StateConfirmDeleteReservation, constants.StateConfirmDeleteAccount:
		return m.updateConfirm(msg)
	case constants.StateRoomModal:
		return m.updateRoomModal(msg)
	case constants.StateReservationModal:
		return m.updateReservationModal(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, model, cmd := m.handleGlobalKeys(msg); handled {
			return model, cmd
		}
	}

	switch m.state {
	case constants.StateRooms:
		return m.updateRooms(msg)
	case constants.StateReservations:
		return m.updateReservations(msg)
	case constants.StateStatistics:
		var cmd tea.Cmd
		m.statsView, cmd = m.statsView.Update(msg)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "e" {
			return m, m.exportStats()
		}
		return m, cmd
	case constants.StateAccounts:
		return m.updateAccounts(msg)
	}
	return m, nil
}

// handleGlobalKeys covers quitting, view cycling, and manual refresh for the
// main views.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, m, nil
	case key.Matches(msg, m.keys.Tab):
		model, cmd := m.switchView(1)
		return true, model, cmd
	case key.Matches(msg, m.keys.ShiftTab):
		model, cmd := m.switchView(-1)
		return true, model, cmd
	case key.Matches(msg, m.keys.Refresh):
		return true, m, m.refreshCurrent()
	}
	return false, m, nil
}

func (m Model) mainViews() []constants.SessionState {
	views := []constants.SessionState{
		constants.StateRooms,
		constants.StateReservations,
		constants.StateStatistics,
	}
	if id := m.session.Current(); id != nil && id.IsAdmin() {
		views = append(views, constants.StateAccounts)
	}
	return views
}

func (m Model) switchView(dir int) (tea.Model, tea.Cmd) {
	views := m.mainViews()
	idx := 0
	for i, v := range views {
		if v == m.state {
			idx = i
			break
		}
	}
	m.state = views[(idx+dir+len(views))%len(views)]
	return m, m.refreshCurrent()
}

func (m *Model) refreshCurrent() tea.Cmd {
	switch m.state {
	case constants.StateRooms:
		return m.fetchRooms()
	case constants.StateReservations:
		cmds := []tea.Cmd{m.fetchReservations(), m.fetchCalendar()}
		if m.filterRooms == nil {
			cmds = append(cmds, m.fetchFilterRooms())
		}
		return tea.Batch(cmds...)
	case constants.StateStatistics:
		return m.fetchStats()
	case constants.StateAccounts:
		return m.fetchAccounts()
	}
	return nil
}

// handleError routes request failures: authorization denials clear the
// session and land on the login view exactly once, everything else becomes
// an error notice.
func (m *Model) handleError(err error) tea.Cmd {
	if api.AuthDenied(err) {
		if !m.authNotified {
			m.authNotified = true
			_ = m.session.Clear()
			m.notices.Error("Session expired, sign in again")
			m.state = constants.StateLogin
			m.startLoginForm()
			return m.form.Init()
		}
		return nil
	}
	m.notices.Error(err.Error())
	return nil
}

func (m Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		cmd := m.handleError(msg.err)
		// A failed submission leaves the form open for another attempt.
		if reopen := m.reopenForm(); reopen != nil {
			cmd = tea.Batch(cmd, reopen)
		}
		return m, cmd
	}
	m.notices.Success(msg.action)
	m.editingRoom = nil
	m.editingRes = nil

	switch m.state {
	case constants.StateConfirmDeleteRoom, constants.StateCreateRoom, constants.StateRoomModal:
		m.state = constants.StateRooms
	case constants.StateConfirmDeleteReservation, constants.StateCreateReservation, constants.StateReservationModal:
		m.state = constants.StateReservations
	case constants.StateConfirmDeleteAccount, constants.StateCreateAccount:
		m.state = constants.StateAccounts
	}

	return m, m.refreshCurrent()
}

// reopenForm rebuilds the active form from the values the user already
// entered, nil when no form state is active.
func (m *Model) reopenForm() tea.Cmd {
	switch m.state {
	case constants.StateCreateRoom:
		m.buildRoomForm()
	case constants.StateCreateReservation:
		m.buildReservationDetailsForm()
	case constants.StateCreateAccount:
		m.buildAccountForm()
	default:
		return nil
	}
	return m.form.Init()
}
