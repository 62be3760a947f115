package model

import "time"

// Booking is a reservation of a venue for a date range. DateTo is strictly
// after DateFrom; Guests never exceeds the venue's MaxGuests. Bookings are
// read-only in this client once created.
type Booking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Venue    *Venue    `json:"venue,omitempty"`
	Created  time.Time `json:"created,omitzero"`
	Updated  time.Time `json:"updated,omitzero"`
}

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	VenueID  string    `json:"venueId"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
}
