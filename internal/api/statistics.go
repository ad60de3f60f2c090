package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/models"
)

// StatisticsService calls the read-only statistics endpoints. Every call is
// scoped to one inclusive date range.
type StatisticsService struct {
	client *Client
}

func rangeQuery(r dates.Range) url.Values {
	query := url.Values{}
	query.Set("startDate", r.Start.String())
	query.Set("endDate", r.End.String())
	return query
}

// Overview fetches the KPI summary.
func (s *StatisticsService) Overview(ctx context.Context, r dates.Range) (models.Overview, error) {
	var overview models.Overview
	err := s.client.get(ctx, "/statistics/overview", rangeQuery(r), &overview)
	return overview, err
}

// OccupancySeries fetches the daily occupancy time series.
func (s *StatisticsService) OccupancySeries(ctx context.Context, r dates.Range) ([]models.OccupancyPoint, error) {
	var points []models.OccupancyPoint
	err := s.client.get(ctx, "/statistics/series/occupancy", rangeQuery(r), &points)
	return points, err
}

// ReservationSeries fetches the daily reservations/revenue time series.
func (s *StatisticsService) ReservationSeries(ctx context.Context, r dates.Range) ([]models.ReservationPoint, error) {
	var points []models.ReservationPoint
	err := s.client.get(ctx, "/statistics/series/reservations", rangeQuery(r), &points)
	return points, err
}

// CategorySlices fetches the room-category distribution.
func (s *StatisticsService) CategorySlices(ctx context.Context, r dates.Range) ([]models.CategorySlice, error) {
	var slices []models.CategorySlice
	err := s.client.get(ctx, "/statistics/slices/category", rangeQuery(r), &slices)
	return slices, err
}

// PaymentSlices fetches the payment-status distribution.
func (s *StatisticsService) PaymentSlices(ctx context.Context, r dates.Range) ([]models.PaymentSlice, error) {
	var slices []models.PaymentSlice
	err := s.client.get(ctx, "/statistics/slices/payment-status", rangeQuery(r), &slices)
	return slices, err
}

// TopCompanies fetches the top-N contracted-company ranking.
func (s *StatisticsService) TopCompanies(ctx context.Context, r dates.Range, limit int) ([]models.CompanyTop, error) {
	query := rangeQuery(r)
	query.Set("limit", strconv.Itoa(limit))
	var companies []models.CompanyTop
	err := s.client.get(ctx, "/statistics/top/companies", query, &companies)
	return companies, err
}
