package dto

import (
	"time"

	"github.com/google/uuid"

	"innkeep/internal/domains/booking/model"
	guestDto "innkeep/internal/domains/guest/model/dto"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

// GuestRef identifies the guest for a booking: either an existing guest by id,
// or a profile resolved by email (find-or-create).
type GuestRef struct {
	GuestID string                       `json:"guest_id" validate:"omitempty,uuid"`
	Profile *guestDto.CreateGuestRequest `json:"profile"  validate:"omitempty"`
}

type CreateBookingRequest struct {
	RoomID          string   `json:"room_id"          validate:"required,uuid"`
	Guest           GuestRef `json:"guest"            validate:"required"`
	CheckInDate     string   `json:"check_in_date"    validate:"required,datetime=2006-01-02"`
	CheckOutDate    string   `json:"check_out_date"   validate:"required,datetime=2006-01-02"`
	NumberOfGuests  int      `json:"number_of_guests" validate:"omitempty,min=1"`
	SpecialRequests string   `json:"special_requests" validate:"omitempty"`
}

// Dates parses the request's calendar dates in the application timezone.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(model.DateFormat, c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(model.DateFormat, c.CheckOutDate)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(user, guestID string, checkIn, checkOut time.Time, totalPrice float64, status string) model.Booking {
	numberOfGuests := c.NumberOfGuests
	if numberOfGuests == 0 {
		numberOfGuests = 1
	}

	return model.Booking{
		ID:              uuid.NewString(),
		RoomID:          c.RoomID,
		GuestID:         guestID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  numberOfGuests,
		TotalPrice:      totalPrice,
		Status:          status,
		PaymentStatus:   model.PaymentPending,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateBookingRequest is a patch: only non-nil/non-empty fields apply. Room
// and date changes re-run the availability check and recompute the price; a
// guest patch updates the booking's guest profile in the same transaction.
type UpdateBookingRequest struct {
	RoomID          string                       `json:"room_id"          validate:"omitempty,uuid"`
	CheckInDate     string                       `json:"check_in_date"    validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    string                       `json:"check_out_date"   validate:"omitempty,datetime=2006-01-02"`
	NumberOfGuests  *int                         `json:"number_of_guests" validate:"omitempty,min=1"`
	SpecialRequests *string                      `json:"special_requests" validate:"omitempty"`
	Guest           *guestDto.UpdateGuestRequest `json:"guest"            validate:"omitempty"`
}

// Empty reports whether the patch carries no change at all.
func (u *UpdateBookingRequest) Empty() bool {
	return u.RoomID == "" && u.CheckInDate == "" && u.CheckOutDate == "" &&
		u.NumberOfGuests == nil && u.SpecialRequests == nil && u.Guest == nil
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type CheckOutBookingRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type PaymentRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type CheckAvailabilityRequest struct {
	RoomID       string `json:"room_id"        validate:"required,uuid"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	ExcludeID    string `json:"exclude_id"     validate:"omitempty,uuid"`
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	Available bool   `json:"available"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	RoomID          string  `json:"room_id"`
	GuestID         string  `json:"guest_id"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	Nights          int     `json:"nights"`
	NumberOfGuests  int     `json:"number_of_guests"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	SpecialRequests string  `json:"special_requests"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestID = model.GuestID
	r.CheckInDate = model.CheckInDate.Format("2006-01-02")
	r.CheckOutDate = model.CheckOutDate.Format("2006-01-02")
	r.Nights = modelNights(model)
	r.NumberOfGuests = model.NumberOfGuests
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.SpecialRequests = model.SpecialRequests
	r.Metadata.FromModel(model.Metadata)
}

func modelNights(booking model.Booking) int {
	return model.Nights(booking.CheckInDate, booking.CheckOutDate)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
