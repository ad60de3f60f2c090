package accountlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/frontdesk/internal/models"
)

type AddAccountMsg struct{}

type DeleteAccountMsg struct {
	Account models.Account
}

type Item struct {
	Account models.Account
}

func (i Item) Title() string {
	return i.Account.FirstName + " " + i.Account.Name
}

func (i Item) Description() string {
	return i.Account.Role + " | " + i.Account.PhoneNumber
}

func (i Item) FilterValue() string { return i.Title() }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(accounts []models.Account, width, height int) Model {
	l := list.New(toItems(accounts), list.NewDefaultDelegate(), width, height)
	l.Title = "Accounts"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func toItems(accounts []models.Account) []list.Item {
	items := make([]list.Item, len(accounts))
	for i, a := range accounts {
		items[i] = Item{Account: a}
	}
	return items
}

func (m *Model) SetAccounts(accounts []models.Account) {
	m.list.SetItems(toItems(accounts))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Selected() (models.Account, bool) {
	if item, ok := m.list.SelectedItem().(Item); ok {
		return item.Account, true
	}
	return models.Account{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddAccountMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if account, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteAccountMsg{Account: account} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
