package api

import (
	"context"
	"net/url"

	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/filter"
	"github.com/example/frontdesk/internal/models"
)

// RoomsService calls the hotel-room endpoints.
type RoomsService struct {
	client *Client
}

// ByID fetches a single room.
func (s *RoomsService) ByID(ctx context.Context, roomID string) (models.HotelRoom, error) {
	var room models.HotelRoom
	err := s.client.get(ctx, "/hotel-rooms/"+roomID, nil, &room)
	return room, err
}

// All lists every room. Served from the short-TTL cache: the filter panes
// re-request this list on every mount to populate their room dropdowns.
func (s *RoomsService) All(ctx context.Context) ([]models.HotelRoom, error) {
	var rooms []models.HotelRoom
	err := s.client.cachedGet(ctx, "/hotel-rooms", nil, &rooms)
	return rooms, err
}

// Available lists rooms currently available. Cached like All.
func (s *RoomsService) Available(ctx context.Context) ([]models.HotelRoom, error) {
	var rooms []models.HotelRoom
	err := s.client.cachedGet(ctx, "/hotel-rooms/available", nil, &rooms)
	return rooms, err
}

// Filtered lists rooms matching the filter. Unset fields are omitted from
// the query.
func (s *RoomsService) Filtered(ctx context.Context, f filter.RoomFilter) ([]models.HotelRoom, error) {
	var rooms []models.HotelRoom
	err := s.client.get(ctx, "/hotel-rooms/filter", f.Values(), &rooms)
	return rooms, err
}

// ByCategory lists rooms of one category.
func (s *RoomsService) ByCategory(ctx context.Context, category string) ([]models.HotelRoom, error) {
	var rooms []models.HotelRoom
	err := s.client.get(ctx, "/hotel-rooms/category/"+category, nil, &rooms)
	return rooms, err
}

// AvailableOnDate lists rooms free on a single day.
func (s *RoomsService) AvailableOnDate(ctx context.Context, day dates.Date) ([]models.HotelRoom, error) {
	query := url.Values{}
	query.Set("date", day.String())
	var rooms []models.HotelRoom
	err := s.client.get(ctx, "/hotel-rooms/available-on-date", query, &rooms)
	return rooms, err
}

// AvailableBetween lists rooms free for the whole inclusive range.
func (s *RoomsService) AvailableBetween(ctx context.Context, r dates.Range) ([]models.HotelRoom, error) {
	query := url.Values{}
	query.Set("startDate", r.Start.String())
	query.Set("endDate", r.End.String())
	var rooms []models.HotelRoom
	err := s.client.get(ctx, "/hotel-rooms/available-between-dates", query, &rooms)
	return rooms, err
}

// Create adds a room and invalidates the cached lists.
func (s *RoomsService) Create(ctx context.Context, room models.CreateHotelRoom) error {
	if err := s.client.post(ctx, "/hotel-rooms", room, nil); err != nil {
		return err
	}
	s.client.invalidateCache()
	return nil
}

// Update replaces a room and invalidates the cached lists.
func (s *RoomsService) Update(ctx context.Context, roomID string, room models.CreateHotelRoom) error {
	if err := s.client.put(ctx, "/hotel-rooms/"+roomID, room, nil); err != nil {
		return err
	}
	s.client.invalidateCache()
	return nil
}

// Delete removes a room and invalidates the cached lists.
func (s *RoomsService) Delete(ctx context.Context, roomID string) error {
	if err := s.client.delete(ctx, "/hotel-rooms/"+roomID); err != nil {
		return err
	}
	s.client.invalidateCache()
	return nil
}
