package model

import (
	"math"
	"time"

	"innkeep/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldGuestID         = "guest_id"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldNumberOfGuests  = "number_of_guests"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldSpecialRequests = "special_requests"
)

const (
	DateFormat = "2006-01-02"
)

type Booking struct {
	ID              string    `db:"id"`
	RoomID          string    `db:"room_id"`
	GuestID         string    `db:"guest_id"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckOutDate    time.Time `db:"check_out_date"`
	NumberOfGuests  int       `db:"number_of_guests"`
	TotalPrice      float64   `db:"total_price"`
	Status          string    `db:"status"`
	PaymentStatus   string    `db:"payment_status"`
	SpecialRequests string    `db:"special_requests"`
	model.Metadata
}

// Nights bills partial days as full nights; equal dates are rejected upstream
// as a validation error, never billed as zero.
func Nights(checkIn, checkOut time.Time) int {
	hoursPerNight := 24.0

	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / hoursPerNight))
}

// TotalPrice derives the booking price from the stay length and the room
// rate. Recomputed whenever the room or the dates change.
func TotalPrice(checkIn, checkOut time.Time, pricePerNight float64) float64 {
	return float64(Nights(checkIn, checkOut)) * pricePerNight
}
