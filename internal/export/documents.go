package export

import (
	"strconv"

	"github.com/example/frontdesk/internal/models"
	"github.com/example/frontdesk/internal/stats"
)

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}

// Reservations builds the export table for a reservation listing.
func Reservations(items []models.Reservation) Document {
	doc := Document{Header: []string{
		"Guest", "Phone", "Room", "Category", "Start", "End",
		"Adults", "Children", "Status", "Payment", "Paid", "Company",
	}}
	for _, r := range items {
		company := ""
		if r.IsContracted {
			company = r.CompanyName
		}
		doc.Rows = append(doc.Rows, []string{
			r.GuestLabel(),
			r.GuestSnapshot.NumberPhone,
			strconv.Itoa(r.HotelRoom.RoomNumber),
			r.HotelRoom.CategoryLabel(),
			r.StartDate,
			r.EndDate,
			strconv.Itoa(r.NumberOfAdults),
			strconv.Itoa(r.NumberOfChildren),
			r.StatusLabel(),
			r.PaymentLabel(),
			money(r.PricePaid),
			company,
		})
	}
	return doc
}

// Statistics builds the export table for a dashboard snapshot: the KPI block
// first, then the daily series.
func Statistics(snap stats.Snapshot) Document {
	doc := Document{Header: []string{"Metric", "Value"}}
	o := snap.Overview
	doc.Rows = append(doc.Rows,
		[]string{"Period start", snap.Range.Start.String()},
		[]string{"Period end", snap.Range.End.String()},
		[]string{"Reservations", strconv.Itoa(o.TotalReservations)},
		[]string{"Revenue", money(o.Revenue)},
		[]string{"Occupancy rate", percent(o.OccupancyRate)},
		[]string{"ADR", money(o.ADR)},
		[]string{"RevPAR", money(o.RevPAR)},
		[]string{"Average stay (nights)", strconv.FormatFloat(o.AvgLengthOfStay, 'f', 1, 64)},
		[]string{"Contracted share", percent(o.ContractedShare)},
		[]string{"Contracted revenue", money(o.ContractedRevenue)},
	)
	for _, p := range snap.ReservationSeries {
		doc.Rows = append(doc.Rows, []string{
			"Reservations on " + p.Date, strconv.Itoa(p.Reservations),
		})
	}
	for _, p := range snap.OccupancySeries {
		doc.Rows = append(doc.Rows, []string{
			"Occupancy on " + p.Date, percent(p.OccupancyRate),
		})
	}
	return doc
}
