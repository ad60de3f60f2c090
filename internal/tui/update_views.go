package tui

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/example/frontdesk/internal/constants"
	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/models"
	"github.com/example/frontdesk/internal/tui/components/accountlist"
	"github.com/example/frontdesk/internal/tui/components/reservationlist"
	"github.com/example/frontdesk/internal/tui/components/roomlist"
)

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		creds := models.Login{Name: m.loginForm.Name, Password: m.loginForm.Password}
		m.startLoginForm()
		return m, m.loginCmd(creds)
	}
	return m, cmd
}

func (m Model) updateRooms(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roomlist.OpenRoomMsg:
		m.roomDetail = nil
		m.previousState = m.state
		m.state = constants.StateRoomModal
		return m, m.fetchRoomDetail(msg.Room.ID)

	case roomlist.AddRoomMsg:
		m.editingRoom = nil
		m.startRoomForm(nil)
		m.state = constants.StateCreateRoom
		return m, m.form.Init()

	case roomlist.DeleteRoomMsg:
		room := msg.Room
		m.roomToDel = &room
		m.state = constants.StateConfirmDeleteRoom
		return m, nil

	case roomlist.CycleCategoryMsg:
		m.roomFilter.Category = cycleChoice(m.roomFilter.Category, models.RoomCategories)
		return m, m.fetchRooms()

	case roomlist.CycleStateMsg:
		m.roomFilter.Status = cycleChoice(m.roomFilter.Status,
			[]string{models.RoomStateAvailable, models.RoomStateReserved})
		return m, m.fetchRooms()
	}

	var cmd tea.Cmd
	m.roomList, cmd = m.roomList.Update(msg)
	return m, cmd
}

func (m Model) updateReservations(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reservationlist.OpenReservationMsg:
		m.resDetail = nil
		m.previousState = m.state
		m.state = constants.StateReservationModal
		return m, m.fetchReservationDetail(msg.Reservation.ID)

	case reservationlist.AddReservationMsg:
		m.startReservationForm(nil)
		m.state = constants.StateCreateReservation
		return m, m.form.Init()

	case reservationlist.DeleteReservationMsg:
		reservation := msg.Reservation
		m.resToDel = &reservation
		m.state = constants.StateConfirmDeleteReservation
		return m, nil

	case reservationlist.NextPageMsg:
		if m.resCtl.Next() {
			return m, m.fetchReservations()
		}
		return m, nil

	case reservationlist.PrevPageMsg:
		if m.resCtl.Prev() {
			return m, m.fetchReservations()
		}
		return m, nil

	case reservationlist.PrevMonthMsg:
		m.cal.PrevMonth()
		return m, m.rangeChanged()

	case reservationlist.NextMonthMsg:
		m.cal.NextMonth()
		return m, m.rangeChanged()

	case reservationlist.PrevDayMsg:
		return m, m.moveDay(-1)

	case reservationlist.NextDayMsg:
		return m, m.moveDay(1)

	case reservationlist.ClearDayMsg:
		if m.cal.SelectedDay() != 0 {
			m.cal.ClearDay()
			return m, m.rangeChanged()
		}
		return m, nil

	case reservationlist.CycleStatusMsg:
		m.resFilter.Status = cycleChoice(m.resFilter.Status, models.ReservationStatuses)
		return m, m.filterChanged()

	case reservationlist.CyclePaymentMsg:
		m.resFilter.PaymentStatus = cycleChoice(m.resFilter.PaymentStatus, models.PaymentStatuses)
		return m, m.filterChanged()

	case reservationlist.CycleRoomMsg:
		if len(m.filterRooms) == 0 {
			return m, m.fetchFilterRooms()
		}
		ids := make([]string, len(m.filterRooms))
		for i, r := range m.filterRooms {
			ids[i] = r.ID
		}
		m.resFilter.RoomID = cycleChoice(m.resFilter.RoomID, ids)
		return m, m.filterChanged()

	case reservationlist.ExportMsg:
		return m, m.exportReservations()
	}

	var cmd tea.Cmd
	m.resList, cmd = m.resList.Update(msg)
	return m, cmd
}

// moveDay shifts the selected day, entering day view from the month view on
// the first press and leaving it past either end of the month.
func (m *Model) moveDay(dir int) tea.Cmd {
	day := m.cal.SelectedDay()
	next := day + dir
	if day == 0 {
		if dir > 0 {
			next = 1
		} else {
			next = m.cal.Days()
		}
	}
	if next < 1 || next > m.cal.Days() {
		m.cal.ClearDay()
	} else {
		m.cal.ClearDay()
		m.cal.SelectDay(next)
	}
	return m.rangeChanged()
}

// rangeChanged reloads the reservation list from page zero plus the calendar
// counts after any date-range movement.
func (m *Model) rangeChanged() tea.Cmd {
	m.availableCount = -1
	m.resCtl.ResetPage()
	return tea.Batch(m.fetchReservations(), m.fetchCalendar())
}

// filterChanged reloads the reservation list from page zero after a filter
// edit.
func (m *Model) filterChanged() tea.Cmd {
	m.resCtl.ResetPage()
	return m.fetchReservations()
}

// cycleChoice advances through none -> each choice -> none.
func cycleChoice(current string, choices []string) string {
	if current == "" {
		return choices[0]
	}
	for i, c := range choices {
		if c == current {
			if i == len(choices)-1 {
				return ""
			}
			return choices[i+1]
		}
	}
	return ""
}

func (m Model) updateAccounts(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountlist.AddAccountMsg:
		m.startAccountForm()
		m.state = constants.StateCreateAccount
		return m, m.form.Init()

	case accountlist.DeleteAccountMsg:
		if id := m.session.Current(); id != nil && id.AccountID == msg.Account.ID {
			m.notices.Error("Cannot delete the signed-in account")
			return m, nil
		}
		account := msg.Account
		m.accountToDel = &account
		m.state = constants.StateConfirmDeleteAccount
		return m, nil
	}

	var cmd tea.Cmd
	m.accountList, cmd = m.accountList.Update(msg)
	return m, cmd
}

// Modal keys: esc closes and always refreshes the owning list so any edit
// made while the modal was open is reflected, e edits, d deletes.
func (m Model) updateRoomModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q":
			m.state = constants.StateRooms
			m.roomDetail = nil
			return m, m.fetchRooms()
		case "e":
			if m.roomDetail != nil {
				room := *m.roomDetail
				m.editingRoom = &room
				m.startRoomForm(&room)
				m.state = constants.StateCreateRoom
				return m, m.form.Init()
			}
		case "d":
			if m.roomDetail != nil {
				room := *m.roomDetail
				m.roomToDel = &room
				m.state = constants.StateConfirmDeleteRoom
				return m, nil
			}
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateReservationModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q":
			m.state = constants.StateReservations
			m.resDetail = nil
			return m, tea.Batch(m.fetchReservations(), m.fetchCalendar())
		case "e":
			if m.resDetail != nil {
				reservation := *m.resDetail
				m.startReservationForm(&reservation)
				m.state = constants.StateCreateReservation
				return m, m.form.Init()
			}
		case "d":
			if m.resDetail != nil {
				reservation := *m.resDetail
				m.resToDel = &reservation
				m.state = constants.StateConfirmDeleteReservation
				return m, nil
			}
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		switch m.state {
		case constants.StateConfirmDeleteRoom:
			roomID := m.roomToDel.ID
			m.roomToDel = nil
			client := m.client
			return m, m.mutate("Room deleted", func(ctx context.Context) error {
				return client.Rooms.Delete(ctx, roomID)
			})
		case constants.StateConfirmDeleteReservation:
			reservationID := m.resToDel.ID
			m.resToDel = nil
			client := m.client
			return m, m.mutate("Reservation deleted", func(ctx context.Context) error {
				return client.Reservations.Delete(ctx, reservationID)
			})
		case constants.StateConfirmDeleteAccount:
			accountID := m.accountToDel.ID
			m.accountToDel = nil
			client := m.client
			return m, m.mutate("Account deleted", func(ctx context.Context) error {
				return client.Accounts.Delete(ctx, accountID)
			})
		}
	case "n", "N", "esc":
		switch m.state {
		case constants.StateConfirmDeleteRoom:
			m.state = constants.StateRooms
		case constants.StateConfirmDeleteReservation:
			m.state = constants.StateReservations
		case constants.StateConfirmDeleteAccount:
			m.state = constants.StateAccounts
		}
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// swallowWhileSubmitting drops form input while a submission is in flight so
// repeated keystrokes cannot dispatch the mutation again.
func (m Model) swallowWhileSubmitting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) startRoomForm(existing *models.HotelRoom) {
	m.roomForm = &RoomFormModel{
		Category: models.RoomCategories[0],
		State:    models.RoomStateAvailable,
	}
	if existing != nil {
		m.roomForm.Number = strconv.Itoa(existing.RoomNumber)
		m.roomForm.Price = strconv.FormatFloat(existing.Price, 'f', 2, 64)
		m.roomForm.Category = existing.Category
		m.roomForm.State = existing.State
		m.roomForm.ImageURL = existing.ImageURL
	}
	m.buildRoomForm()
}

// buildRoomForm builds the huh form over the current roomForm values, so a
// failed submission can reopen it without losing the user's input.
func (m *Model) buildRoomForm() {
	categories := make([]huh.Option[string], len(models.RoomCategories))
	for i, c := range models.RoomCategories {
		categories[i] = huh.NewOption(models.RoomCategoryLabels[c], c)
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Room number").Value(&m.roomForm.Number).Validate(validateInt),
		huh.NewInput().Title("Nightly price").Value(&m.roomForm.Price).Validate(validateFloat),
		huh.NewSelect[string]().Title("Category").Options(categories...).Value(&m.roomForm.Category),
		huh.NewSelect[string]().Title("State").
			Options(
				huh.NewOption("Available", models.RoomStateAvailable),
				huh.NewOption("Reserved", models.RoomStateReserved),
			).
			Value(&m.roomForm.State),
		huh.NewInput().Title("Image URL").Value(&m.roomForm.ImageURL),
	))
}

func (m Model) updateRoomForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m.swallowWhileSubmitting(msg)
	}
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		m.state = m.roomFormReturnState()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		payload := models.CreateHotelRoom{
			RoomNumber: atoiOr(m.roomForm.Number, 0),
			Category:   m.roomForm.Category,
			State:      m.roomForm.State,
			ImageURL:   m.roomForm.ImageURL,
		}
		payload.Price, _ = strconv.ParseFloat(m.roomForm.Price, 64)

		client := m.client
		m.submitting = true
		// editingRoom stays set until the mutation lands, so a retry after
		// failure is still an update, never a second create.
		if m.editingRoom != nil {
			roomID := m.editingRoom.ID
			payload.ID = roomID
			return m, m.mutate("Room updated", func(ctx context.Context) error {
				return client.Rooms.Update(ctx, roomID, payload)
			})
		}
		payload.ID = uuid.New().String()
		return m, m.mutate("Room created", func(ctx context.Context) error {
			return client.Rooms.Create(ctx, payload)
		})
	case huh.StateAborted:
		m.state = m.roomFormReturnState()
		return m, nil
	}
	return m, cmd
}

func (m Model) roomFormReturnState() constants.SessionState {
	if m.editingRoom != nil {
		return constants.StateRoomModal
	}
	return constants.StateRooms
}

// startReservationForm opens the reservation form at its date step. With an
// existing reservation it prefills every field and routes completion to an
// update instead of a create.
func (m *Model) startReservationForm(existing *models.Reservation) {
	m.editingRes = existing
	m.resDatesPicked = false
	today := dates.Today()
	m.resForm = &ReservationFormModel{
		StartDate:     today.String(),
		EndDate:       today.AddDays(1).String(),
		Adults:        "1",
		Children:      "0",
		PricePaid:     "0",
		PaymentStatus: models.PaymentNotPaid,
	}
	if existing != nil {
		m.resForm.RoomID = existing.HotelRoom.ID
		m.resForm.GuestName = existing.GuestSnapshot.Name
		m.resForm.GuestFirst = existing.GuestSnapshot.FirstName
		m.resForm.GuestPhone = existing.GuestSnapshot.NumberPhone
		m.resForm.StartDate = existing.StartDate
		m.resForm.EndDate = existing.EndDate
		m.resForm.Adults = strconv.Itoa(existing.NumberOfAdults)
		m.resForm.Children = strconv.Itoa(existing.NumberOfChildren)
		m.resForm.PricePaid = strconv.FormatFloat(existing.PricePaid, 'f', 2, 64)
		m.resForm.PaymentStatus = existing.PaymentStatus
		m.resForm.IsContracted = existing.IsContracted
		m.resForm.CompanyName = existing.CompanyName
		m.resForm.Claim = existing.Claim
	}
	m.buildReservationDatesForm()
}

// buildReservationDatesForm is the first step: the stay decides which rooms
// the next step may offer.
func (m *Model) buildReservationDatesForm() {
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Start date (YYYY-MM-DD)").Value(&m.resForm.StartDate).Validate(validateDate),
		huh.NewInput().Title("End date (YYYY-MM-DD)").Value(&m.resForm.EndDate).Validate(validateDate),
	))
}

// buildReservationDetailsForm is the second step, offering only the rooms
// free for the chosen stay. When editing, the reservation's own room stays
// selectable even though it is not free.
func (m *Model) buildReservationDetailsForm() {
	rooms := make([]huh.Option[string], 0, len(m.formRooms)+1)
	if r := m.editingRes; r != nil && !roomListed(m.formRooms, r.HotelRoom.ID) {
		label := "Room " + strconv.Itoa(r.HotelRoom.RoomNumber) + " · " + r.HotelRoom.CategoryLabel() + " (current)"
		rooms = append(rooms, huh.NewOption(label, r.HotelRoom.ID))
	}
	for _, r := range m.formRooms {
		label := "Room " + strconv.Itoa(r.RoomNumber) + " · " + r.CategoryLabel()
		rooms = append(rooms, huh.NewOption(label, r.ID))
	}

	payments := make([]huh.Option[string], len(models.PaymentStatuses))
	for i, p := range models.PaymentStatuses {
		payments[i] = huh.NewOption(models.PaymentStatusLabels[p], p)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Room").Options(rooms...).Value(&m.resForm.RoomID),
			huh.NewInput().Title("Guest last name").Value(&m.resForm.GuestName),
			huh.NewInput().Title("Guest first name").Value(&m.resForm.GuestFirst),
			huh.NewInput().Title("Guest phone").Value(&m.resForm.GuestPhone),
			huh.NewInput().Title("Adults").Value(&m.resForm.Adults).Validate(validateInt),
			huh.NewInput().Title("Children").Value(&m.resForm.Children).Validate(validateInt),
		),
		huh.NewGroup(
			huh.NewInput().Title("Price paid").Value(&m.resForm.PricePaid).Validate(validateFloat),
			huh.NewSelect[string]().Title("Payment status").Options(payments...).Value(&m.resForm.PaymentStatus),
			huh.NewConfirm().Title("Contracted company?").Value(&m.resForm.IsContracted),
			huh.NewInput().Title("Company name").Value(&m.resForm.CompanyName),
			huh.NewInput().Title("Remarks").Value(&m.resForm.Claim),
		),
	)
}

func roomListed(rooms []models.HotelRoom, id string) bool {
	for _, r := range rooms {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (m Model) updateReservationForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m.swallowWhileSubmitting(msg)
	}
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		m.state = m.resFormReturnState()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if !m.resDatesPicked {
			return m.finishDatesStep()
		}

		payload := models.CreateReservation{
			RoomID: m.resForm.RoomID,
			GuestSnapshot: models.GuestSnapshot{
				Name:        m.resForm.GuestName,
				FirstName:   m.resForm.GuestFirst,
				NumberPhone: m.resForm.GuestPhone,
			},
			StartDate:        m.resForm.StartDate,
			EndDate:          m.resForm.EndDate,
			Claim:            m.resForm.Claim,
			NumberOfAdults:   atoiOr(m.resForm.Adults, 1),
			NumberOfChildren: atoiOr(m.resForm.Children, 0),
			IsContracted:     m.resForm.IsContracted,
			PaymentStatus:    m.resForm.PaymentStatus,
		}
		payload.PricePaid, _ = strconv.ParseFloat(m.resForm.PricePaid, 64)
		if payload.IsContracted {
			payload.CompanyName = m.resForm.CompanyName
		}

		client := m.client
		m.submitting = true
		if m.editingRes != nil {
			reservationID := m.editingRes.ID
			return m, m.mutate("Reservation updated", func(ctx context.Context) error {
				return client.Reservations.Update(ctx, reservationID, payload)
			})
		}
		return m, m.mutate("Reservation created", func(ctx context.Context) error {
			return client.Reservations.Create(ctx, payload)
		})
	case huh.StateAborted:
		m.state = m.resFormReturnState()
		return m, nil
	}
	return m, cmd
}

// finishDatesStep validates the stay range and looks up the rooms free for
// it before the details step opens.
func (m Model) finishDatesStep() (tea.Model, tea.Cmd) {
	start, err := dates.Parse(m.resForm.StartDate)
	if err == nil {
		var end dates.Date
		if end, err = dates.Parse(m.resForm.EndDate); err == nil && end.Before(start) {
			err = fmt.Errorf("end date %s precedes start date %s", end, start)
		}
		if err == nil {
			m.resDatesPicked = true
			m.submitting = true
			return m, m.fetchFormRooms(dates.Range{Start: start, End: end})
		}
	}
	m.notices.Error(err.Error())
	m.buildReservationDatesForm()
	return m, m.form.Init()
}

func (m Model) resFormReturnState() constants.SessionState {
	if m.editingRes != nil {
		return constants.StateReservationModal
	}
	return constants.StateReservations
}

func (m *Model) startAccountForm() {
	m.accountForm = &AccountFormModel{}
	m.buildAccountForm()
}

func (m *Model) buildAccountForm() {
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Last name").Value(&m.accountForm.Name),
		huh.NewInput().Title("First name").Value(&m.accountForm.FirstName),
		huh.NewInput().Title("Phone").Value(&m.accountForm.Phone),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&m.accountForm.Password),
	))
}

func (m Model) updateAccountForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m.swallowWhileSubmitting(msg)
	}
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		m.state = constants.StateAccounts
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		payload := models.CreateAccount{
			Name:        m.accountForm.Name,
			FirstName:   m.accountForm.FirstName,
			PhoneNumber: m.accountForm.Phone,
			Password:    m.accountForm.Password,
		}
		client := m.client
		m.submitting = true
		return m, m.mutate("Account created", func(ctx context.Context) error {
			_, err := client.Accounts.Create(ctx, payload)
			return err
		})
	case huh.StateAborted:
		m.state = constants.StateAccounts
		return m, nil
	}
	return m, cmd
}

func validateInt(s string) error {
	_, err := strconv.Atoi(s)
	return err
}

func validateFloat(s string) error {
	_, err := strconv.ParseFloat(s, 64)
	return err
}

func validateDate(s string) error {
	_, err := dates.Parse(s)
	return err
}
