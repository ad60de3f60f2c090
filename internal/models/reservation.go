package models

// Reservation statuses as defined by the API.
const (
	StatusComing     = "COMING"
	StatusInProgress = "IN_PROGRESS"
	StatusEnded      = "ENDED"
)

// Payment statuses as defined by the API.
const (
	PaymentFullyPaid     = "FULLY_PAID"
	PaymentPartiallyPaid = "PARTIALLY_PAID"
	PaymentNotPaid       = "NOT_PAID"
)

// ReservationStatuses lists every status in display order.
var ReservationStatuses = []string{StatusComing, StatusInProgress, StatusEnded}

// ReservationStatusLabels maps API status names to display names.
var ReservationStatusLabels = map[string]string{
	StatusComing:     "Upcoming",
	StatusInProgress: "In progress",
	StatusEnded:      "Ended",
}

// PaymentStatuses lists every payment status in display order.
var PaymentStatuses = []string{PaymentFullyPaid, PaymentPartiallyPaid, PaymentNotPaid}

// PaymentStatusLabels maps API payment statuses to display names.
var PaymentStatusLabels = map[string]string{
	PaymentFullyPaid:     "Fully paid",
	PaymentPartiallyPaid: "Partially paid",
	PaymentNotPaid:       "Not paid",
}

// GuestSnapshot is the guest contact details frozen onto a reservation.
type GuestSnapshot struct {
	Name        string `json:"name"`
	FirstName   string `json:"firstName"`
	NumberPhone string `json:"numberPhone"`
}

// Reservation is a booking as returned by the reservations endpoints.
type Reservation struct {
	ID               string        `json:"id"`
	GuestSnapshot    GuestSnapshot `json:"userSnapshot"`
	HotelRoom        HotelRoom     `json:"hotelRoom"`
	StartDate        string        `json:"startDate"`
	EndDate          string        `json:"endDate"`
	Claim            string        `json:"claim"`
	NumberOfChildren int           `json:"numberOfChildren"`
	NumberOfAdults   int           `json:"numberOfAdults"`
	PricePaid        float64       `json:"pricePaid"`
	Review           int           `json:"review"`
	Status           string        `json:"status"`
	IsContracted     bool          `json:"isContracted"`
	CompanyName      string        `json:"companyName,omitempty"`
	PaymentStatus    string        `json:"paymentStatus"`
	PaymentRemark    string        `json:"paymentRemark,omitempty"`
}

// CreateReservation is the payload for creating or updating a reservation.
type CreateReservation struct {
	RoomID           string        `json:"roomId"`
	GuestSnapshot    GuestSnapshot `json:"userSnapshot"`
	StartDate        string        `json:"startDate"`
	EndDate          string        `json:"endDate"`
	Claim            string        `json:"claim,omitempty"`
	NumberOfChildren int           `json:"numberOfChildren"`
	NumberOfAdults   int           `json:"numberOfAdults"`
	PricePaid        float64       `json:"pricePaid"`
	Review           int           `json:"review,omitempty"`
	IsContracted     bool          `json:"isContracted"`
	CompanyName      string        `json:"companyName,omitempty"`
	PaymentStatus    string        `json:"paymentStatus"`
	PaymentRemark    string        `json:"paymentRemark,omitempty"`
}

// ReservationChartPoint is the minimal reservation record used by charts.
type ReservationChartPoint struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
}

// CalendarMonth is the per-day reservation count map for one month. Days with
// no reservations may be absent from the map; renderers treat absence as zero.
type CalendarMonth struct {
	Year        int            `json:"year"`
	Month       int            `json:"month"`
	DailyCounts map[string]int `json:"dailyReservationCounts"`
}

// GuestLabel returns the guest's display name.
func (r Reservation) GuestLabel() string {
	return r.GuestSnapshot.FirstName + " " + r.GuestSnapshot.Name
}

// StatusLabel returns the display name of the reservation's status.
func (r Reservation) StatusLabel() string {
	if label, ok := ReservationStatusLabels[r.Status]; ok {
		return label
	}
	return r.Status
}

// PaymentLabel returns the display name of the reservation's payment status.
func (r Reservation) PaymentLabel() string {
	if label, ok := PaymentStatusLabels[r.PaymentStatus]; ok {
		return label
	}
	return r.PaymentStatus
}
