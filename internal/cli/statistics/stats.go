package statistics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gosuri/uitable"

	"github.com/example/frontdesk/internal/cli"
	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/export"
	"github.com/example/frontdesk/internal/stats"
)

type StatsCmd struct {
	Start string `help:"Range start (YYYY-MM-DD). Defaults to the configured window ending today."`
	End   string `help:"Range end (YYYY-MM-DD)."`
	CSV   bool   `help:"Write the dashboard to a CSV file instead of printing." name:"csv"`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	r, err := c.resolveRange(ctx)
	if err != nil {
		return err
	}

	cctx, cancel := ctx.CommandContext()
	defer cancel()

	loader := stats.NewLoader(ctx.Client.Statistics, ctx.Config.Statistics.TopCompaniesLimit)
	snap, err := load(cctx, loader, r)
	if err != nil {
		return fmt.Errorf("failed to load statistics: %w", err)
	}

	if c.CSV {
		path, err := export.Save(ctx.Config.Export.Dir, "statistics", r, export.Statistics(snap))
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	printSnapshot(snap)
	return nil
}

func load(ctx context.Context, loader *stats.Loader, r dates.Range) (stats.Snapshot, error) {
	gen, run := loader.Begin(ctx, r)
	snap, err := run()
	loader.Apply(gen, snap, err)
	return snap, err
}

func (c *StatsCmd) resolveRange(ctx *cli.Context) (dates.Range, error) {
	if c.Start == "" && c.End == "" {
		end := dates.Today()
		start := end.AddDays(-(ctx.Config.Statistics.WindowDays - 1))
		return dates.Range{Start: start, End: end}, nil
	}
	if c.Start == "" || c.End == "" {
		return dates.Range{}, fmt.Errorf("--start and --end must be given together")
	}
	s, err := dates.Parse(c.Start)
	if err != nil {
		return dates.Range{}, fmt.Errorf("invalid start date %q: %w", c.Start, err)
	}
	e, err := dates.Parse(c.End)
	if err != nil {
		return dates.Range{}, fmt.Errorf("invalid end date %q: %w", c.End, err)
	}
	if e.Before(s) {
		return dates.Range{}, fmt.Errorf("end date is before start date")
	}
	return dates.Range{Start: s, End: e}, nil
}

func printSnapshot(snap stats.Snapshot) {
	o := snap.Overview
	fmt.Printf("Statistics %s to %s\n\n", snap.Range.Start, snap.Range.End)

	table := uitable.New()
	table.AddRow("Reservations:", strconv.Itoa(o.TotalReservations))
	table.AddRow("Revenue:", fmt.Sprintf("%.2f", o.Revenue))
	table.AddRow("Occupancy:", fmt.Sprintf("%.1f%%", o.OccupancyRate*100))
	table.AddRow("ADR:", fmt.Sprintf("%.2f", o.ADR))
	table.AddRow("RevPAR:", fmt.Sprintf("%.2f", o.RevPAR))
	table.AddRow("Avg stay:", fmt.Sprintf("%.1f nights", o.AvgLengthOfStay))
	table.AddRow("Contracted:", fmt.Sprintf("%.1f%% (%.2f)", o.ContractedShare*100, o.ContractedRevenue))
	fmt.Println(table)

	if len(snap.Categories) > 0 {
		fmt.Println("\nBy category:")
		ct := uitable.New()
		ct.AddRow("  CATEGORY", "NIGHTS", "RESERVATIONS")
		for _, s := range snap.Categories {
			ct.AddRow("  "+s.Category, strconv.Itoa(s.RoomNights), strconv.Itoa(s.Reservations))
		}
		fmt.Println(ct)
	}

	if len(snap.TopCompanies) > 0 {
		fmt.Println("\nTop companies:")
		tt := uitable.New()
		tt.AddRow("  COMPANY", "RESERVATIONS", "REVENUE")
		for _, t := range snap.TopCompanies {
			tt.AddRow("  "+t.CompanyName, strconv.Itoa(t.Reservations), fmt.Sprintf("%.2f", t.Revenue))
		}
		fmt.Println(tt)
	}
}
