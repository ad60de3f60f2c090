package export_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/export"
	"github.com/example/frontdesk/internal/models"
)

func TestEncodeQuotesEveryField(t *testing.T) {
	doc := export.Document{
		Header: []string{"Guest", "Claim"},
		Rows: [][]string{
			{"Doe, Jane", `said "no smoking"`},
			{"Smith John", ""},
		},
	}

	got := doc.Encode()
	assert.Equal(t,
		`"Guest","Claim"`+"\n"+
			`"Doe, Jane","said ""no smoking"""`+"\n"+
			`"Smith John",""`,
		got)

	// The output must survive a standard CSV reader round trip.
	records, err := csv.NewReader(strings.NewReader(got)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, `said "no smoking"`, records[1][1])
}

func TestFilename(t *testing.T) {
	r := dates.MonthRange(2024, 8)
	assert.Equal(t, "reservations_2024-08-01_2024-08-31.csv", export.Filename("reservations", r))

	day := dates.SingleDay(dates.Date{Year: 2024, Month: 8, Day: 10})
	assert.Equal(t, "statistics_2024-08-10_2024-08-10.csv", export.Filename("statistics", day))
}

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	r := dates.MonthRange(2024, 8)
	doc := export.Document{Header: []string{"A"}, Rows: [][]string{{"1"}}}

	path, err := export.Save(dir, "rooms", r, doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rooms_2024-08-01_2024-08-31.csv"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\"A\"\n\"1\"", string(content))
}

func TestReservationsDocument(t *testing.T) {
	doc := export.Reservations([]models.Reservation{{
		GuestSnapshot:  models.GuestSnapshot{Name: "Doe", FirstName: "Jane", NumberPhone: "0600000000"},
		HotelRoom:      models.HotelRoom{RoomNumber: 12, Category: models.CategoryVillaVIP},
		StartDate:      "2024-08-10",
		EndDate:        "2024-08-12",
		NumberOfAdults: 2,
		Status:         models.StatusComing,
		PaymentStatus:  models.PaymentNotPaid,
		PricePaid:      150.5,
		IsContracted:   true,
		CompanyName:    "Acme",
	}})

	require.Len(t, doc.Rows, 1)
	row := doc.Rows[0]
	assert.Equal(t, "Jane Doe", row[0])
	assert.Equal(t, "12", row[2])
	assert.Equal(t, "Villa VIP", row[3])
	assert.Equal(t, "Upcoming", row[8])
	assert.Equal(t, "Not paid", row[9])
	assert.Equal(t, "150.50", row[10])
	assert.Equal(t, "Acme", row[11])
}
