package domain

import (
	"errors"
	"time"
)

var ErrBookingNotFound = errors.New("booking not found")

// Booking records a trip reserved by a user against a catalog destination.
type Booking struct {
	ID              string    `json:"id"`
	UserEmail       string    `json:"user_email"`
	Destination     string    `json:"destination"`
	BookingDateTime time.Time `json:"booking_date_time"`
	DepartureTime   time.Time `json:"departure_time"`
	ArrivalTime     time.Time `json:"arrival_time"`
}
