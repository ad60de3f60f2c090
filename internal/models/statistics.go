package models

// Overview is the KPI summary for a date range.
type Overview struct {
	TotalReservations  int     `json:"totalReservations"`
	Revenue            float64 `json:"revenue"`
	OccupiedRoomNights int     `json:"occupiedRoomNights"`
	RoomCapacityNights int     `json:"roomCapacityNights"`
	OccupancyRate      float64 `json:"occupancyRate"` // 0..1
	ADR                float64 `json:"adr"`
	RevPAR             float64 `json:"revpar"`
	AvgLengthOfStay    float64 `json:"avgLengthOfStay"`
	ContractedShare    float64 `json:"contractedShare"` // 0..1
	ContractedRevenue  float64 `json:"contractedRevenue"`
}

// OccupancyPoint is one day of the occupancy time series.
type OccupancyPoint struct {
	Date               string  `json:"date"`
	OccupiedRoomNights int     `json:"occupiedRoomNights"`
	OccupancyRate      float64 `json:"occupancyRate"` // 0..1
}

// ReservationPoint is one day of the reservations/revenue time series.
type ReservationPoint struct {
	Date         string  `json:"date"`
	Reservations int     `json:"reservations"`
	Revenue      float64 `json:"revenue"`
}

// CategorySlice is one room category's share of activity in a range.
type CategorySlice struct {
	Category     string `json:"category"`
	RoomNights   int    `json:"roomNights"`
	Reservations int    `json:"reservations"`
}

// PaymentSlice is one payment status' share of activity in a range.
type PaymentSlice struct {
	PaymentStatus string  `json:"paymentStatus"`
	Count         int     `json:"count"`
	Revenue       float64 `json:"revenue"`
}

// CompanyTop is one contracted company's rollup in the top-N ranking.
type CompanyTop struct {
	CompanyName  string  `json:"companyName"`
	Reservations int     `json:"reservations"`
	Revenue      float64 `json:"revenue"`
	RoomNights   int     `json:"roomNights"`
}
