// Package filter defines the immutable filter criteria attached to list
// queries. A zero field means "no constraint": it is omitted from the encoded
// query entirely, never sent as an empty string, so the API does not
// over-constrain the result.
package filter

import "net/url"

// RoomFilter is the filter criteria for the room list.
type RoomFilter struct {
	Category string
	Status   string
}

// Values encodes the filter, omitting unset fields.
func (f RoomFilter) Values() url.Values {
	v := url.Values{}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	return v
}

// ReservationFilter is the filter criteria for the reservation list. The date
// range is not part of the filter: it is owned by the calendar selector and
// merged in by the gateway call.
type ReservationFilter struct {
	Status        string
	PaymentStatus string
	CompanyName   string
	RoomID        string
}

// Values encodes the filter, omitting unset fields.
func (f ReservationFilter) Values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.PaymentStatus != "" {
		v.Set("paymentStatus", f.PaymentStatus)
	}
	if f.CompanyName != "" {
		v.Set("companyName", f.CompanyName)
	}
	if f.RoomID != "" {
		v.Set("hotelRoomId", f.RoomID)
	}
	return v
}
