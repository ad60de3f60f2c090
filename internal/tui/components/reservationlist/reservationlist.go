package reservationlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/frontdesk/internal/models"
)

type OpenReservationMsg struct {
	Reservation models.Reservation
}

type AddReservationMsg struct{}

type DeleteReservationMsg struct {
	Reservation models.Reservation
}

type NextPageMsg struct{}

type PrevPageMsg struct{}

type PrevMonthMsg struct{}

type NextMonthMsg struct{}

type PrevDayMsg struct{}

type NextDayMsg struct{}

type ClearDayMsg struct{}

type CycleStatusMsg struct{}

type CyclePaymentMsg struct{}

type CycleRoomMsg struct{}

type ExportMsg struct{}

type Item struct {
	Reservation models.Reservation
}

func (i Item) Title() string {
	r := i.Reservation
	return fmt.Sprintf("%s · Room %d", r.GuestLabel(), r.HotelRoom.RoomNumber)
}

func (i Item) Description() string {
	r := i.Reservation
	return fmt.Sprintf("%s to %s | %s | %s", r.StartDate, r.EndDate, r.StatusLabel(), r.PaymentLabel())
}

func (i Item) FilterValue() string { return i.Reservation.GuestLabel() }

type KeyMap struct {
	Open      key.Binding
	Add       key.Binding
	Delete    key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	ClearDay  key.Binding
	Status    key.Binding
	Payment   key.Binding
	Room      key.Binding
	Export    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev page"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "next month"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "next day"),
		),
		ClearDay: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "whole month"),
		),
		Status: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "status filter"),
		),
		Payment: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "payment filter"),
		),
		Room: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "room filter"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []models.Reservation, width, height int) Model {
	l := list.New(toItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = "Reservations"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	// Bubbles' own pagination is disabled; the server pages for us.
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Add, keys.NextPage, keys.PrevPage, keys.Export}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			keys.Open, keys.Add, keys.Delete, keys.NextPage, keys.PrevPage,
			keys.PrevMonth, keys.NextMonth, keys.PrevDay, keys.NextDay, keys.ClearDay,
			keys.Status, keys.Payment, keys.Room, keys.Export,
		}
	}

	return Model{list: l, keys: keys}
}

func toItems(reservations []models.Reservation) []list.Item {
	items := make([]list.Item, len(reservations))
	for i, r := range reservations {
		items[i] = Item{Reservation: r}
	}
	return items
}

func (m *Model) SetReservations(items []models.Reservation) {
	m.list.SetItems(toItems(items))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Selected() (models.Reservation, bool) {
	if item, ok := m.list.SelectedItem().(Item); ok {
		return item.Reservation, true
	}
	return models.Reservation{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if emit := m.emitFor(msg); emit != nil {
			return m, emit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) emitFor(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Open):
		if r, ok := m.Selected(); ok {
			return func() tea.Msg { return OpenReservationMsg{Reservation: r} }
		}
	case key.Matches(msg, m.keys.Add):
		return func() tea.Msg { return AddReservationMsg{} }
	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.Selected(); ok {
			return func() tea.Msg { return DeleteReservationMsg{Reservation: r} }
		}
	case key.Matches(msg, m.keys.NextPage):
		return func() tea.Msg { return NextPageMsg{} }
	case key.Matches(msg, m.keys.PrevPage):
		return func() tea.Msg { return PrevPageMsg{} }
	case key.Matches(msg, m.keys.PrevMonth):
		return func() tea.Msg { return PrevMonthMsg{} }
	case key.Matches(msg, m.keys.NextMonth):
		return func() tea.Msg { return NextMonthMsg{} }
	case key.Matches(msg, m.keys.PrevDay):
		return func() tea.Msg { return PrevDayMsg{} }
	case key.Matches(msg, m.keys.NextDay):
		return func() tea.Msg { return NextDayMsg{} }
	case key.Matches(msg, m.keys.ClearDay):
		return func() tea.Msg { return ClearDayMsg{} }
	case key.Matches(msg, m.keys.Status):
		return func() tea.Msg { return CycleStatusMsg{} }
	case key.Matches(msg, m.keys.Payment):
		return func() tea.Msg { return CyclePaymentMsg{} }
	case key.Matches(msg, m.keys.Room):
		return func() tea.Msg { return CycleRoomMsg{} }
	case key.Matches(msg, m.keys.Export):
		return func() tea.Msg { return ExportMsg{} }
	}
	return nil
}

func (m Model) View() string {
	return m.list.View()
}
