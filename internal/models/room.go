package models

// Room categories as defined by the API.
const (
	CategoryGrandLitConfort   = "GRAND_LIT_CONFORT"
	CategoryDoubleLitConfort  = "DOUBLE_LIT_CONFORT"
	CategoryTripleLitConfort  = "TRIPE_LIT_CONFORT"
	CategoryQuadLitConfort    = "QUADRUPLE_LIT_CONFORT"
	CategoryTripleLitStandard = "TRIPLE_LIT_STANDARD"
	CategoryChaletT3          = "CHALET_T3"
	CategoryCelibatorium      = "CELIBATORIUM"
	CategoryVilla             = "VILLA"
	CategoryVillaVIP          = "VILLA_VIP"
)

// Room states as defined by the API.
const (
	RoomStateReserved  = "RESERVED"
	RoomStateAvailable = "AVAILABLE"
)

// RoomCategories lists every category in display order.
var RoomCategories = []string{
	CategoryGrandLitConfort,
	CategoryDoubleLitConfort,
	CategoryTripleLitConfort,
	CategoryQuadLitConfort,
	CategoryTripleLitStandard,
	CategoryChaletT3,
	CategoryCelibatorium,
	CategoryVilla,
	CategoryVillaVIP,
}

// RoomCategoryLabels maps API category names to display names.
var RoomCategoryLabels = map[string]string{
	CategoryGrandLitConfort:   "King comfort",
	CategoryDoubleLitConfort:  "Double comfort",
	CategoryTripleLitConfort:  "Triple comfort",
	CategoryQuadLitConfort:    "Quadruple comfort",
	CategoryTripleLitStandard: "Triple standard",
	CategoryChaletT3:          "Chalet T3",
	CategoryCelibatorium:      "Single suite",
	CategoryVilla:             "Villa",
	CategoryVillaVIP:          "Villa VIP",
}

// HotelRoom is a room as returned by the rooms endpoints.
type HotelRoom struct {
	ID           string        `json:"id"`
	RoomNumber   int           `json:"roomNumber"`
	Price        float64       `json:"price"`
	Category     string        `json:"category"`
	State        string        `json:"state"`
	Available    bool          `json:"available"`
	ImageURL     string        `json:"imageUrl"`
	Reservations []Reservation `json:"reservations,omitempty"`
}

// CreateHotelRoom is the payload for creating or updating a room. The id is
// generated client-side on creation.
type CreateHotelRoom struct {
	ID         string  `json:"id"`
	RoomNumber int     `json:"roomNumber"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
	State      string  `json:"state"`
	ImageURL   string  `json:"imageUrl"`
}

// CategoryLabel returns the display name of the room's category.
func (r HotelRoom) CategoryLabel() string {
	if label, ok := RoomCategoryLabels[r.Category]; ok {
		return label
	}
	return r.Category
}
