package roomlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/frontdesk/internal/models"
)

type OpenRoomMsg struct {
	Room models.HotelRoom
}

type AddRoomMsg struct{}

type DeleteRoomMsg struct {
	Room models.HotelRoom
}

type CycleCategoryMsg struct{}

type CycleStateMsg struct{}

type Item struct {
	Room models.HotelRoom
}

func (i Item) Title() string {
	return fmt.Sprintf("Room %d · %s", i.Room.RoomNumber, i.Room.CategoryLabel())
}

func (i Item) Description() string {
	state := "available"
	if i.Room.State == models.RoomStateReserved {
		state = "reserved"
	}
	return fmt.Sprintf("%.2f/night | %s", i.Room.Price, state)
}

func (i Item) FilterValue() string { return i.Title() }

type KeyMap struct {
	Open     key.Binding
	Add      key.Binding
	Delete   key.Binding
	Category key.Binding
	State    key.Binding
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
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category filter"),
		),
		State: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "state filter"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(rooms []models.HotelRoom, width, height int) Model {
	l := list.New(toItems(rooms), list.NewDefaultDelegate(), width, height)
	l.Title = "Rooms"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Add, keys.Delete, keys.Category, keys.State}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func toItems(rooms []models.HotelRoom) []list.Item {
	items := make([]list.Item, len(rooms))
	for i, r := range rooms {
		items[i] = Item{Room: r}
	}
	return items
}

func (m *Model) SetRooms(rooms []models.HotelRoom) {
	m.list.SetItems(toItems(rooms))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Selected() (models.HotelRoom, bool) {
	if item, ok := m.list.SelectedItem().(Item); ok {
		return item.Room, true
	}
	return models.HotelRoom{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Open):
			if room, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenRoomMsg{Room: room} }
			}
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddRoomMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if room, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteRoomMsg{Room: room} }
			}
		case key.Matches(msg, m.keys.Category):
			return m, func() tea.Msg { return CycleCategoryMsg{} }
		case key.Matches(msg, m.keys.State):
			return m, func() tea.Msg { return CycleStateMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
