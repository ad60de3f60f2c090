package statsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/example/frontdesk/internal/stats"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(22)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type Model struct {
	viewport viewport.Model
	snapshot *stats.Snapshot
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.snapshot == nil {
		return "Loading statistics..."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) SetSnapshot(snap stats.Snapshot) {
	m.snapshot = &snap
	m.render()
}

func (m *Model) render() {
	if m.snapshot == nil {
		return
	}
	snap := m.snapshot
	o := snap.Overview

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("%s to %s", snap.Range.Start, snap.Range.End)))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Reservations", fmt.Sprintf("%d", o.TotalReservations))
	row("Revenue", fmt.Sprintf("%.2f", o.Revenue))
	row("Occupancy", fmt.Sprintf("%.1f%%", o.OccupancyRate*100))
	row("ADR", fmt.Sprintf("%.2f", o.ADR))
	row("RevPAR", fmt.Sprintf("%.2f", o.RevPAR))
	row("Avg stay", fmt.Sprintf("%.1f nights", o.AvgLengthOfStay))
	row("Contracted share", fmt.Sprintf("%.1f%%", o.ContractedShare*100))
	row("Contracted revenue", fmt.Sprintf("%.2f", o.ContractedRevenue))

	if len(snap.Categories) > 0 {
		b.WriteString("\n" + headingStyle.Render("By category") + "\n")
		for _, s := range snap.Categories {
			row(s.Category, fmt.Sprintf("%d nights, %d reservations", s.RoomNights, s.Reservations))
		}
	}

	if len(snap.Payments) > 0 {
		b.WriteString("\n" + headingStyle.Render("By payment status") + "\n")
		for _, s := range snap.Payments {
			row(s.PaymentStatus, fmt.Sprintf("%d (%.2f)", s.Count, s.Revenue))
		}
	}

	if len(snap.TopCompanies) > 0 {
		b.WriteString("\n" + headingStyle.Render("Top companies") + "\n")
		for _, t := range snap.TopCompanies {
			row(t.CompanyName, fmt.Sprintf("%d reservations, %.2f", t.Reservations, t.Revenue))
		}
	}

	m.viewport.SetContent(b.String())
}
