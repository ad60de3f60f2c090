package rooms

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/example/frontdesk/internal/cli"
	"github.com/example/frontdesk/internal/models"
)

type RoomAddCmd struct {
	Number   int     `arg:"" help:"Room number."`
	Price    float64 `arg:"" help:"Nightly price."`
	Category string  `arg:"" help:"Room category." enum:"GRAND_LIT_CONFORT,DOUBLE_LIT_CONFORT,TRIPE_LIT_CONFORT,QUADRUPLE_LIT_CONFORT,TRIPLE_LIT_STANDARD,CHALET_T3,CELIBATORIUM,VILLA,VILLA_VIP"`
	ImageURL string  `help:"Room image URL." name:"image-url"`
}

func (c *RoomAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}
	cctx, cancel := ctx.CommandContext()
	defer cancel()

	room := models.CreateHotelRoom{
		ID:         uuid.New().String(),
		RoomNumber: c.Number,
		Price:      c.Price,
		Category:   c.Category,
		State:      models.RoomStateAvailable,
		ImageURL:   c.ImageURL,
	}
	if err := ctx.Client.Rooms.Create(cctx, room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	fmt.Printf("Created room %d (%s)\n", c.Number, models.RoomCategoryLabels[c.Category])
	return nil
}
