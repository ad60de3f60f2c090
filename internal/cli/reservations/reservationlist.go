package reservations

import (
	"fmt"

	"github.com/example/frontdesk/internal/cli"
	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/export"
	"github.com/example/frontdesk/internal/filter"
)

type ReservationListCmd struct {
	Status        string `help:"Filter by reservation status." enum:",COMING,IN_PROGRESS,ENDED" default:""`
	PaymentStatus string `help:"Filter by payment status." name:"payment-status" enum:",FULLY_PAID,PARTIALLY_PAID,NOT_PAID" default:""`
	Company       string `help:"Filter by contracted company name."`
	Room          string `help:"Filter by room ID."`
	Start         string `help:"Range start (YYYY-MM-DD). Defaults to the current month."`
	End           string `help:"Range end (YYYY-MM-DD). Defaults to the current month."`
	Page          int    `help:"0-based page index." default:"0"`
	CSV           bool   `help:"Write the page to a CSV file instead of printing." name:"csv"`
}

func (c *ReservationListCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	r, err := resolveRange(c.Start, c.End)
	if err != nil {
		return err
	}

	cctx, cancel := ctx.CommandContext()
	defer cancel()

	f := filter.ReservationFilter{
		Status:        c.Status,
		PaymentStatus: c.PaymentStatus,
		CompanyName:   c.Company,
		RoomID:        c.Room,
	}
	page, err := ctx.Client.Reservations.Search(cctx, c.Page, ctx.Config.Reservations.PageSize, f, r)
	if err != nil {
		return fmt.Errorf("failed to get reservations: %w", err)
	}

	if c.CSV {
		path, err := export.Save(ctx.Config.Export.Dir, "reservations", r, export.Reservations(page.Content))
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	cli.PrintReservations(page.Content)
	if page.TotalPages > 1 {
		fmt.Printf("\nPage %d of %d (%d reservations)\n", page.Number+1, page.TotalPages, page.TotalElements)
	}
	return nil
}

// resolveRange parses the optional start/end flags, falling back to the
// current month when both are omitted.
func resolveRange(start, end string) (dates.Range, error) {
	if start == "" && end == "" {
		today := dates.Today()
		return dates.MonthRange(today.Year, today.Month), nil
	}
	if start == "" || end == "" {
		return dates.Range{}, fmt.Errorf("--start and --end must be given together")
	}
	s, err := dates.Parse(start)
	if err != nil {
		return dates.Range{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := dates.Parse(end)
	if err != nil {
		return dates.Range{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if e.Before(s) {
		return dates.Range{}, fmt.Errorf("end date is before start date")
	}
	return dates.Range{Start: s, End: e}, nil
}
