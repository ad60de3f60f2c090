package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomFilterOmitsEmptyFields(t *testing.T) {
	v := RoomFilter{}.Values()
	assert.Empty(t, v)

	v = RoomFilter{Category: "VILLA"}.Values()
	assert.Equal(t, "VILLA", v.Get("category"))
	_, present := v["status"]
	assert.False(t, present, "empty status must be absent, not empty")
}

func TestReservationFilterEncoding(t *testing.T) {
	f := ReservationFilter{Status: "COMING", RoomID: "r-9"}
	v := f.Values()
	assert.Equal(t, "COMING", v.Get("status"))
	assert.Equal(t, "r-9", v.Get("hotelRoomId"))
	for _, absent := range []string{"paymentStatus", "companyName"} {
		_, present := v[absent]
		assert.False(t, present, "%s must be absent", absent)
	}
}

func TestStructuralEquality(t *testing.T) {
	a := ReservationFilter{Status: "COMING"}
	b := ReservationFilter{Status: "COMING"}
	assert.True(t, a == b)
	b.CompanyName = "Acme"
	assert.False(t, a == b)
}
