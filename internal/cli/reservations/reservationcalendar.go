package reservations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/frontdesk/internal/calendar"
	"github.com/example/frontdesk/internal/cli"
	"github.com/example/frontdesk/internal/dates"
)

type ReservationCalendarCmd struct {
	Year  int `help:"Year to show. Defaults to the current year."`
	Month int `help:"Month to show (1-12). Defaults to the current month."`
}

func (c *ReservationCalendarCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	today := dates.Today()
	year, month := c.Year, c.Month
	if year == 0 {
		year = today.Year
	}
	if month == 0 {
		month = today.Month
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month %d", month)
	}

	cctx, cancel := ctx.CommandContext()
	defer cancel()

	cal, err := ctx.Client.Reservations.MonthlyCalendar(cctx, year, month)
	if err != nil {
		return fmt.Errorf("failed to get calendar: %w", err)
	}

	sel := calendar.New(year, month)
	counts := make(map[int]int, len(cal.DailyCounts))
	for day, n := range cal.DailyCounts {
		if d, err := strconv.Atoi(day); err == nil {
			counts[d] = n
		}
	}
	sel.SetCounts(counts)

	fmt.Printf("%04d-%02d\n", year, month)
	fmt.Println("Mon  Tue  Wed  Thu  Fri  Sat  Sun")

	var b strings.Builder
	col := 0
	for i := 0; i < sel.LeadingBlanks(); i++ {
		b.WriteString("     ")
		col++
	}
	for day := 1; day <= sel.Days(); day++ {
		cell := fmt.Sprintf("%2d", day)
		if n := sel.Count(day); n > 0 {
			cell += fmt.Sprintf("*%d", n)
		}
		b.WriteString(fmt.Sprintf("%-5s", cell))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	fmt.Println(strings.TrimRight(b.String(), " \n"))
	fmt.Println("\n(* reservations starting that day)")
	return nil
}
