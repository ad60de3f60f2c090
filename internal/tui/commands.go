package tui

import (
	"context"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/export"
	"github.com/example/frontdesk/internal/models"
	"github.com/example/frontdesk/internal/session"
	"github.com/example/frontdesk/internal/stats"
)

type noticeTickMsg time.Time

type loginDoneMsg struct {
	identity session.Identity
	err      error
}

type roomsLoadedMsg struct {
	gen   uint64
	rooms []models.HotelRoom
	err   error
}

type roomDetailMsg struct {
	gen  uint64
	room models.HotelRoom
	err  error
}

type reservationsLoadedMsg struct {
	gen  uint64
	page models.Page[models.Reservation]
	err  error
}

type calendarLoadedMsg struct {
	gen       uint64
	cal       models.CalendarMonth
	available int
	err       error
}

type reservationDetailMsg struct {
	gen         uint64
	reservation models.Reservation
	err         error
}

type statsLoadedMsg struct {
	gen  uint64
	snap stats.Snapshot
	err  error
}

type accountsLoadedMsg struct {
	gen      uint64
	accounts []models.Account
	err      error
}

type formRoomsMsg struct {
	rooms []models.HotelRoom
	err   error
}

type filterRoomsMsg struct {
	rooms []models.HotelRoom
	err   error
}

type mutationDoneMsg struct {
	action string
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}

func noticeTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return noticeTickMsg(t)
	})
}

func (m *Model) loginCmd(creds models.Login) tea.Cmd {
	client := m.client
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := client.Accounts.Login(ctx, creds)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{identity: session.FromLogin(resp)}
	}
}

// fetchRooms starts a generation-guarded room list load. Any response from a
// previous generation is dropped on arrival.
func (m *Model) fetchRooms() tea.Cmd {
	if m.roomsCancel != nil {
		m.roomsCancel()
	}
	m.roomsGen++
	gen := m.roomsGen
	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.API.Timeout)
	m.roomsCancel = cancel

	client := m.client
	f := m.roomFilter
	return func() tea.Msg {
		defer cancel()
		var (
			rooms []models.HotelRoom
			err   error
		)
		if f.Category == "" && f.Status == "" {
			rooms, err = client.Rooms.All(ctx)
		} else {
			rooms, err = client.Rooms.Filtered(ctx, f)
		}
		return roomsLoadedMsg{gen: gen, rooms: rooms, err: err}
	}
}

func (m *Model) fetchRoomDetail(roomID string) tea.Cmd {
	m.roomDetailGen++
	gen := m.roomDetailGen
	client := m.client
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		room, err := client.Rooms.ByID(ctx, roomID)
		return roomDetailMsg{gen: gen, room: room, err: err}
	}
}

// fetchReservations dispatches a page request through the list controller,
// which owns the generation and the in-flight context.
func (m *Model) fetchReservations() tea.Cmd {
	gen, ctx, req := m.resCtl.Begin(context.Background())
	client := m.client
	f := m.resFilter
	r := m.cal.Range()
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		page, err := client.Reservations.Search(ctx, req.Index, req.Size, f, r)
		return reservationsLoadedMsg{gen: gen, page: page, err: err}
	}
}

// fetchCalendar loads the month's daily counts, plus the number of rooms
// still free on the selected day when one is picked.
func (m *Model) fetchCalendar() tea.Cmd {
	m.calGen++
	gen := m.calGen
	client := m.client
	year, month := m.cal.Year(), m.cal.Month()
	day := m.cal.SelectedDay()
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		cal, err := client.Reservations.MonthlyCalendar(ctx, year, month)
		if err != nil {
			return calendarLoadedMsg{gen: gen, err: err}
		}
		available := -1
		if day != 0 {
			rooms, err := client.Rooms.AvailableOnDate(ctx, dates.Date{Year: year, Month: month, Day: day})
			if err == nil {
				available = len(rooms)
			}
		}
		return calendarLoadedMsg{gen: gen, cal: cal, available: available}
	}
}

func (m *Model) fetchReservationDetail(reservationID string) tea.Cmd {
	m.resDetailGen++
	gen := m.resDetailGen
	client := m.client
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		reservation, err := client.Reservations.ByID(ctx, reservationID)
		return reservationDetailMsg{gen: gen, reservation: reservation, err: err}
	}
}

func (m *Model) fetchStats() tea.Cmd {
	end := dates.Today()
	start := end.AddDays(-(m.cfg.Statistics.WindowDays - 1))
	gen, run := m.statsLoader.Begin(context.Background(), dates.Range{Start: start, End: end})
	return func() tea.Msg {
		snap, err := run()
		return statsLoadedMsg{gen: gen, snap: snap, err: err}
	}
}

func (m *Model) fetchAccounts() tea.Cmd {
	m.accountsGen++
	gen := m.accountsGen
	client := m.client
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		accounts, err := client.Accounts.All(ctx)
		return accountsLoadedMsg{gen: gen, accounts: accounts, err: err}
	}
}

// fetchFormRooms loads the rooms free for the chosen stay, so the reservation
// form only offers rooms that can actually take the booking.
func (m *Model) fetchFormRooms(r dates.Range) tea.Cmd {
	client := m.client
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		rooms, err := client.Rooms.AvailableBetween(ctx, r)
		return formRoomsMsg{rooms: rooms, err: err}
	}
}

// fetchFilterRooms loads the full room list backing the reservation view's
// room filter. Served from the gateway cache, so re-entering the view is
// cheap.
func (m *Model) fetchFilterRooms() tea.Cmd {
	client := m.client
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		rooms, err := client.Rooms.All(ctx)
		return filterRoomsMsg{rooms: rooms, err: err}
	}
}

func (m *Model) mutate(action string, fn func(ctx context.Context) error) tea.Cmd {
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return mutationDoneMsg{action: action, err: fn(ctx)}
	}
}

func (m *Model) exportReservations() tea.Cmd {
	doc := export.Reservations(m.resCtl.Items())
	dir := m.cfg.Export.Dir
	r := m.cal.Range()
	return func() tea.Msg {
		path, err := export.Save(dir, "reservations", r, doc)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m *Model) exportStats() tea.Cmd {
	snap := m.statsLoader.Current()
	if snap == nil {
		return nil
	}
	doc := export.Statistics(*snap)
	dir := m.cfg.Export.Dir
	r := snap.Range
	return func() tea.Msg {
		path, err := export.Save(dir, "statistics", r, doc)
		return exportDoneMsg{path: path, err: err}
	}
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
