package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/example/frontdesk/internal/api"
	"github.com/example/frontdesk/internal/calendar"
	"github.com/example/frontdesk/internal/config"
	"github.com/example/frontdesk/internal/constants"
	"github.com/example/frontdesk/internal/filter"
	"github.com/example/frontdesk/internal/listctl"
	"github.com/example/frontdesk/internal/models"
	"github.com/example/frontdesk/internal/notify"
	"github.com/example/frontdesk/internal/session"
	"github.com/example/frontdesk/internal/stats"
	"github.com/example/frontdesk/internal/tui/components/accountlist"
	"github.com/example/frontdesk/internal/tui/components/reservationlist"
	"github.com/example/frontdesk/internal/tui/components/roomlist"
	"github.com/example/frontdesk/internal/tui/components/statsview"
)

type LoginFormModel struct {
	Name     string
	Password string
}

type RoomFormModel struct {
	Number   string
	Price    string
	Category string
	State    string
	ImageURL string
}

type ReservationFormModel struct {
	RoomID        string
	GuestName     string
	GuestFirst    string
	GuestPhone    string
	StartDate     string
	EndDate       string
	Adults        string
	Children      string
	PricePaid     string
	PaymentStatus string
	IsContracted  bool
	CompanyName   string
	Claim         string
}

type AccountFormModel struct {
	Name      string
	FirstName string
	Phone     string
	Password  string
}

type Model struct {
	cfg     *config.Config
	client  *api.Client
	session *session.Store

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	notices       *notify.Center

	quitting bool
	width    int
	height   int

	// rooms
	roomList      roomlist.Model
	roomFilter    filter.RoomFilter
	roomsGen      uint64
	roomsCancel   context.CancelFunc
	roomDetailGen uint64
	roomDetail    *models.HotelRoom
	editingRoom   *models.HotelRoom
	roomToDel     *models.HotelRoom

	// reservations
	resList        reservationlist.Model
	resFilter      filter.ReservationFilter
	filterRooms    []models.HotelRoom
	resCtl         *listctl.Controller[models.Reservation]
	cal            *calendar.Selector
	calGen         uint64
	availableCount int
	resDetailGen   uint64
	resDetail      *models.Reservation
	editingRes     *models.Reservation
	resToDel       *models.Reservation
	formRooms      []models.HotelRoom

	// statistics
	statsLoader *stats.Loader
	statsView   statsview.Model

	// accounts
	accountList  accountlist.Model
	accountsGen  uint64
	accountToDel *models.Account

	// forms
	form        *huh.Form
	loginForm   *LoginFormModel
	roomForm    *RoomFormModel
	resForm     *ReservationFormModel
	accountForm *AccountFormModel
	// submitting swallows form input between a dispatched mutation and its
	// mutationDoneMsg, and between the reservation date step and its room
	// lookup.
	submitting bool
	// resDatesPicked marks the reservation form's second step.
	resDatesPicked bool

	authNotified bool
}

func NewModel(cfg *config.Config, client *api.Client, sess *session.Store) Model {
	m := Model{
		cfg:            cfg,
		client:         client,
		session:        sess,
		state:          constants.StateLogin,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		notices:        notify.NewCenter(constants.NoticeDuration),
		roomList:       roomlist.New(nil, 0, 0),
		resList:        reservationlist.New(nil, 0, 0),
		resCtl:         listctl.New[models.Reservation](cfg.Reservations.PageSize),
		cal:            calendar.Today(),
		availableCount: -1,
		statsLoader:    stats.NewLoader(client.Statistics, cfg.Statistics.TopCompaniesLimit),
		statsView:      statsview.New(0, 0),
		accountList:    accountlist.New(nil, 0, 0),
	}

	if sess.Current() != nil {
		m.state = constants.StateRooms
	} else {
		m.startLoginForm()
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateRooms, constants.StateReservations, constants.StateAccounts:
		keys = append(keys, m.keys.Refresh)
	case constants.StateRoomModal, constants.StateReservationModal:
		keys = append(keys, m.keys.Back)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Refresh, m.keys.Quit, m.keys.Help, m.keys.Back}
	return [][]key.Binding{global}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{noticeTick()}
	if m.state == constants.StateRooms {
		cmds = append(cmds, m.fetchRooms())
	}
	return tea.Batch(cmds...)
}

func (m *Model) startLoginForm() {
	m.loginForm = &LoginFormModel{}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&m.loginForm.Name),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&m.loginForm.Password),
	))
}
