package model

import (
	"strings"

	"innkeep/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldType          = "type"
	FieldCapacity      = "capacity"
	FieldPricePerNight = "price_per_night"
	FieldStatus        = "status"
	FieldAmenities     = "amenities"
	FieldImage         = "image"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

// Room types offered by the property.
const (
	TypeStandard  = "standard"
	TypeSingle    = "single"
	TypeDouble    = "double"
	TypeTwin      = "twin"
	TypeSuite     = "suite"
	TypeDeluxe    = "deluxe"
	TypeFamily    = "family"
	TypeStudio    = "studio"
	TypeExecutive = "executive"
)

type Room struct {
	ID            string  `db:"id"`
	RoomNumber    string  `db:"room_number"`
	Type          string  `db:"type"`
	Capacity      int     `db:"capacity"`
	PricePerNight float64 `db:"price_per_night"`
	Status        string  `db:"status"`
	Amenities     string  `db:"amenities"`
	Image         string  `db:"image"`
	model.Metadata
}

// NormalizeRoomNumber maps user input onto the stored form: upper-cased and
// trimmed, so "  10a " and "10A" address the same room.
func NormalizeRoomNumber(roomNumber string) string {
	return strings.ToUpper(strings.TrimSpace(roomNumber))
}

// IsAvailable derives the legacy boolean view from status. Only response DTOs
// expose it; status stays the single source of truth.
func (r *Room) IsAvailable() bool {
	return r.Status == StatusAvailable
}
