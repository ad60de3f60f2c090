package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/frontdesk/internal/constants"
	"github.com/example/frontdesk/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateLogin, constants.StateCreateRoom, constants.StateCreateReservation, constants.StateCreateAccount:
		content = m.form.View()
	case constants.StateRooms:
		content = docStyle.Render(m.roomList.View())
	case constants.StateReservations:
		content = m.viewReservations()
	case constants.StateStatistics:
		content = docStyle.Render(m.statsView.View())
	case constants.StateAccounts:
		content = docStyle.Render(m.accountList.View())
	case constants.StateRoomModal:
		content = m.viewRoomModal()
	case constants.StateReservationModal:
		content = m.viewReservationModal()
	case constants.StateConfirmDeleteRoom:
		content = m.viewConfirm("Delete this room?")
	case constants.StateConfirmDeleteReservation:
		content = m.viewConfirm("Delete this reservation?")
	case constants.StateConfirmDeleteAccount:
		content = m.viewConfirm("Delete this account?")
	}

	if m.state == constants.StateLogin {
		return lipgloss.JoinVertical(lipgloss.Left, m.viewNotices(), content)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewNotices(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, v := range m.mainViews() {
		title := tabTitle(v)
		if m.state == v {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func tabTitle(s constants.SessionState) string {
	switch s {
	case constants.StateRooms:
		return "Rooms"
	case constants.StateReservations:
		return "Reservations"
	case constants.StateStatistics:
		return "Statistics"
	case constants.StateAccounts:
		return "Accounts"
	}
	return ""
}

func (m Model) viewNotices() string {
	active := m.notices.Active()
	if len(active) == 0 {
		return ""
	}
	var lines []string
	for _, n := range active {
		switch n.Kind {
		case constants.NoticeSuccess:
			lines = append(lines, successStyle.Render("✓ "+n.Message))
		case constants.NoticeError:
			lines = append(lines, dangerStyle.Render("✗ "+n.Message))
		default:
			lines = append(lines, infoStyle.Render("· "+n.Message))
		}
	}
	return strings.Join(lines, "\n")
}

// viewReservations puts the month calendar beside the paginated list.
func (m Model) viewReservations() string {
	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		m.viewCalendar(),
		"",
		m.viewPager(),
		m.viewResFilters(),
	)
	return docStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		sidebar,
		"  ",
		m.resList.View(),
	))
}

func (m Model) viewCalendar() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%04d-%02d\n", m.cal.Year(), m.cal.Month()))
	b.WriteString(dimStyle.Render("Mo Tu We Th Fr Sa Su") + "\n")

	col := 0
	for i := 0; i < m.cal.LeadingBlanks(); i++ {
		b.WriteString("   ")
		col++
	}
	for day := 1; day <= m.cal.Days(); day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case day == m.cal.SelectedDay():
			cell = selectedDayStyle.Render(cell)
		case m.cal.Count(day) > 0:
			cell = busyDayStyle.Render(cell)
		default:
			cell = dimStyle.Render(cell)
		}
		b.WriteString(cell + " ")
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}

	footer := "\n"
	if day := m.cal.SelectedDay(); day != 0 {
		footer += fmt.Sprintf("\nDay %02d: %d starting", day, m.cal.Count(day))
		if m.availableCount >= 0 {
			footer += fmt.Sprintf("\n%d rooms free", m.availableCount)
		}
	} else {
		footer += "\nWhole month"
	}
	b.WriteString(footer)
	return b.String()
}

func (m Model) viewPager() string {
	if m.resCtl.Loading() {
		return dimStyle.Render("loading...")
	}
	if m.resCtl.TotalPages() <= 1 {
		return dimStyle.Render(fmt.Sprintf("%d reservations", m.resCtl.TotalElements()))
	}
	return dimStyle.Render(fmt.Sprintf("page %d/%d · %d total",
		m.resCtl.Index()+1, m.resCtl.TotalPages(), m.resCtl.TotalElements()))
}

// viewResFilters sums up the active reservation filters, empty when none.
func (m Model) viewResFilters() string {
	var parts []string
	if s := m.resFilter.Status; s != "" {
		parts = append(parts, "status: "+models.ReservationStatusLabels[s])
	}
	if p := m.resFilter.PaymentStatus; p != "" {
		parts = append(parts, "payment: "+models.PaymentStatusLabels[p])
	}
	if id := m.resFilter.RoomID; id != "" {
		parts = append(parts, "room: "+m.filterRoomNumber(id))
	}
	if len(parts) == 0 {
		return ""
	}
	return dimStyle.Render(strings.Join(parts, "\n"))
}

func (m Model) filterRoomNumber(id string) string {
	for _, r := range m.filterRooms {
		if r.ID == id {
			return strconv.Itoa(r.RoomNumber)
		}
	}
	return id
}

func (m Model) viewRoomModal() string {
	if m.roomDetail == nil {
		return m.centered(modalStyle.Render("Loading room..."))
	}
	r := m.roomDetail

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Room %d · %s\n\n", r.RoomNumber, r.CategoryLabel()))
	b.WriteString(fmt.Sprintf("Price:  %.2f/night\n", r.Price))
	b.WriteString(fmt.Sprintf("State:  %s\n", r.State))
	if len(r.Reservations) > 0 {
		b.WriteString("\nReservations:\n")
		for _, res := range r.Reservations {
			b.WriteString(fmt.Sprintf("  %s to %s  %s (%s)\n",
				res.StartDate, res.EndDate, res.GuestLabel(), res.StatusLabel()))
		}
	}
	b.WriteString("\n" + dimStyle.Render("[e] edit  [d] delete  [esc] close"))
	return m.centered(modalStyle.Render(b.String()))
}

func (m Model) viewReservationModal() string {
	if m.resDetail == nil {
		return m.centered(modalStyle.Render("Loading reservation..."))
	}
	r := m.resDetail

	var b strings.Builder
	b.WriteString(r.GuestLabel() + "\n\n")
	b.WriteString(fmt.Sprintf("Room:     %d · %s\n", r.HotelRoom.RoomNumber, r.HotelRoom.CategoryLabel()))
	b.WriteString(fmt.Sprintf("Stay:     %s to %s\n", r.StartDate, r.EndDate))
	b.WriteString(fmt.Sprintf("Guests:   %d adults, %d children\n", r.NumberOfAdults, r.NumberOfChildren))
	b.WriteString(fmt.Sprintf("Status:   %s\n", r.StatusLabel()))
	b.WriteString(fmt.Sprintf("Payment:  %s (%.2f)\n", r.PaymentLabel(), r.PricePaid))
	b.WriteString(fmt.Sprintf("Phone:    %s\n", r.GuestSnapshot.NumberPhone))
	if r.IsContracted {
		b.WriteString(fmt.Sprintf("Company:  %s\n", r.CompanyName))
	}
	if r.Claim != "" {
		b.WriteString(fmt.Sprintf("Remarks:  %s\n", r.Claim))
	}
	b.WriteString("\n" + dimStyle.Render("[e] edit  [d] delete  [esc] close"))
	return m.centered(modalStyle.Render(b.String()))
}

func (m Model) viewConfirm(question string) string {
	return m.centered(lipgloss.JoinVertical(lipgloss.Center,
		dangerStyle.Render(question),
		"",
		"[y] Yes",
		"[n] No",
	))
}

func (m Model) centered(content string) string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
