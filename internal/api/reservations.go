package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/filter"
	"github.com/example/frontdesk/internal/models"
)

// ReservationsService calls the reservation endpoints.
type ReservationsService struct {
	client *Client
}

// ByID fetches a single reservation.
func (s *ReservationsService) ByID(ctx context.Context, reservationID string) (models.Reservation, error) {
	var reservation models.Reservation
	err := s.client.get(ctx, "/reservations/"+reservationID, nil, &reservation)
	return reservation, err
}

// Search fetches one page of reservations matching the filter and the
// effective date range. Unset filter fields are omitted from the query.
func (s *ReservationsService) Search(ctx context.Context, page, size int, f filter.ReservationFilter, r dates.Range) (models.Page[models.Reservation], error) {
	query := f.Values()
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	if !r.Start.IsZero() {
		query.Set("startDate", r.Start.String())
		query.Set("endDate", r.End.String())
	}

	var result models.Page[models.Reservation]
	err := s.client.get(ctx, "/reservations/filter/pageable", query, &result)
	return result, err
}

// Chart fetches the minimal reservation records used for chart rollups.
func (s *ReservationsService) Chart(ctx context.Context) ([]models.ReservationChartPoint, error) {
	var points []models.ReservationChartPoint
	err := s.client.get(ctx, "/reservations/charts", nil, &points)
	return points, err
}

// MonthlyCalendar fetches per-day reservation counts for one month.
func (s *ReservationsService) MonthlyCalendar(ctx context.Context, year, month int) (models.CalendarMonth, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))

	var cal models.CalendarMonth
	err := s.client.get(ctx, "/reservations/calendar/monthly", query, &cal)
	return cal, err
}

// Create books a new reservation.
func (s *ReservationsService) Create(ctx context.Context, reservation models.CreateReservation) error {
	return s.client.post(ctx, "/reservations", reservation, nil)
}

// Update replaces an existing reservation.
func (s *ReservationsService) Update(ctx context.Context, reservationID string, reservation models.CreateReservation) error {
	return s.client.put(ctx, "/reservations/"+reservationID, reservation, nil)
}

// Delete removes a reservation.
func (s *ReservationsService) Delete(ctx context.Context, reservationID string) error {
	return s.client.delete(ctx, "/reservations/"+reservationID)
}
