package rooms

import (
	"fmt"

	"github.com/example/frontdesk/internal/cli"
	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/filter"
	"github.com/example/frontdesk/internal/models"
)

type RoomListCmd struct {
	Category      string `help:"Filter by room category." enum:",GRAND_LIT_CONFORT,DOUBLE_LIT_CONFORT,TRIPE_LIT_CONFORT,QUADRUPLE_LIT_CONFORT,TRIPLE_LIT_STANDARD,CHALET_T3,CELIBATORIUM,VILLA,VILLA_VIP" default:""`
	Status        string `help:"Filter by room state." enum:",AVAILABLE,RESERVED" default:""`
	AvailableOn   string `help:"Show only rooms free on a date (YYYY-MM-DD)." name:"available-on"`
	AvailableOnly bool   `help:"Show only currently available rooms."`
}

func (c *RoomListCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}
	cctx, cancel := ctx.CommandContext()
	defer cancel()

	var (
		list []models.HotelRoom
		err  error
	)
	switch {
	case c.AvailableOn != "":
		var day dates.Date
		day, err = dates.Parse(c.AvailableOn)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", c.AvailableOn, err)
		}
		list, err = ctx.Client.Rooms.AvailableOnDate(cctx, day)
	case c.AvailableOnly:
		list, err = ctx.Client.Rooms.Available(cctx)
	case c.Category != "" && c.Status == "":
		// Single-criterion lookup has a dedicated endpoint.
		list, err = ctx.Client.Rooms.ByCategory(cctx, c.Category)
	case c.Category != "" || c.Status != "":
		list, err = ctx.Client.Rooms.Filtered(cctx, filter.RoomFilter{
			Category: c.Category,
			Status:   c.Status,
		})
	default:
		list, err = ctx.Client.Rooms.All(cctx)
	}
	if err != nil {
		return fmt.Errorf("failed to get rooms: %w", err)
	}

	cli.PrintRooms(list)
	return nil
}
