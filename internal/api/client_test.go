package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/filter"
	"github.com/example/frontdesk/internal/models"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Options{BaseURL: server.URL}, staticToken("tok-123"))
}

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.Account{})
	})

	_, err := client.Accounts.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUnauthenticatedWhenNoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Token: "fresh"})
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL}, staticToken(""))
	resp, err := client.Accounts.Login(context.Background(), models.Login{Name: "jo", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.Token)
}

func TestEmptyFilterFieldsOmitted(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]models.HotelRoom{})
	})

	_, err := client.Rooms.Filtered(context.Background(), filter.RoomFilter{})
	require.NoError(t, err)
	_, hasCategory := gotQuery["category"]
	_, hasStatus := gotQuery["status"]
	assert.False(t, hasCategory, "category must not be sent as an empty parameter")
	assert.False(t, hasStatus, "status must not be sent as an empty parameter")
}

func TestSearchQueryShape(t *testing.T) {
	var got map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		assert.Equal(t, "/ede-api/v1/reservations/filter/pageable", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Page[models.Reservation]{TotalPages: 1})
	})

	r := dates.Range{Start: dates.Date{Year: 2024, Month: 8, Day: 1}, End: dates.Date{Year: 2024, Month: 8, Day: 31}}
	page, err := client.Reservations.Search(context.Background(), 2, 9, filter.ReservationFilter{Status: "COMING"}, r)
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, got["page"])
	assert.Equal(t, []string{"9"}, got["size"])
	assert.Equal(t, []string{"COMING"}, got["status"])
	assert.Equal(t, []string{"2024-08-01"}, got["startDate"])
	assert.Equal(t, []string{"2024-08-31"}, got["endDate"])
	_, hasCompany := got["companyName"]
	assert.False(t, hasCompany)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPageDecoding(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[{"id":"r1"},{"id":"r2"}],"totalElements":11,"totalPages":2}`))
	})

	page, err := client.Reservations.Search(context.Background(), 0, 9, filter.ReservationFilter{}, dates.Range{})
	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, 11, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, "r2", page.Content[1].ID)
}

func TestAuthDeniedHookFires(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	hookCalls := 0
	client.OnAuthDenied(func() { hookCalls++ })

	_, err := client.Rooms.ByID(context.Background(), "r1")
	require.Error(t, err)
	assert.True(t, AuthDenied(err))
	assert.Equal(t, 1, hookCalls)
}

func TestErrorMessageExtraction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"room already booked"}`))
	})

	err := client.Reservations.Create(context.Background(), models.CreateReservation{})
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "room already booked", apiErr.Message)
}

func TestRoomListCachedUntilMutation(t *testing.T) {
	listCalls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/ede-api/v1/hotel-rooms":
			listCalls++
			_ = json.NewEncoder(w).Encode([]models.HotelRoom{{ID: "r1"}})
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	ctx := context.Background()
	_, err := client.Rooms.All(ctx)
	require.NoError(t, err)
	_, err = client.Rooms.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, listCalls, "second read must come from cache")

	require.NoError(t, client.Rooms.Create(ctx, models.CreateHotelRoom{ID: "r2"}))
	_, err = client.Rooms.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls, "mutation must invalidate the cache")
}

func TestMonthlyCalendarQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024", r.URL.Query().Get("year"))
		assert.Equal(t, "8", r.URL.Query().Get("month"))
		_, _ = w.Write([]byte(`{"year":2024,"month":8,"dailyReservationCounts":{"10":2}}`))
	})

	cal, err := client.Reservations.MonthlyCalendar(context.Background(), 2024, 8)
	require.NoError(t, err)
	assert.Equal(t, 2, cal.DailyCounts["10"])
}

func TestContextCancellationAborts(t *testing.T) {
	block := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Rooms.ByID(ctx, "r1")
	assert.Error(t, err)
}

func TestStatisticsRangeQuery(t *testing.T) {
	var got map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]models.CompanyTop{})
	})

	r := dates.Range{Start: dates.Date{Year: 2024, Month: 7, Day: 11}, End: dates.Date{Year: 2024, Month: 8, Day: 10}}
	_, err := client.Statistics.TopCompanies(context.Background(), r, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-07-11"}, got["startDate"])
	assert.Equal(t, []string{"2024-08-10"}, got["endDate"])
	assert.Equal(t, []string{"5"}, got["limit"])
}
