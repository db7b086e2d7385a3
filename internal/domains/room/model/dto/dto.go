package dto

import (
	"mime/multipart"

	"innkeep/internal/domains/room/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber    string                `json:"room_number"     validate:"required,max=20"`
	Type          string                `json:"type"            validate:"required,oneof=standard single double twin suite deluxe family studio executive"`
	Capacity      int                   `json:"capacity"        validate:"required,min=1"`
	PricePerNight float64               `json:"price_per_night" validate:"omitempty,min=0"`
	Status        string                `json:"status"          validate:"omitempty,oneof=available occupied maintenance"`
	Amenities     string                `json:"amenities"       validate:"omitempty"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:            uuid.NewString(),
		RoomNumber:    model.NormalizeRoomNumber(c.RoomNumber),
		Type:          c.Type,
		Capacity:      c.Capacity,
		PricePerNight: c.PricePerNight,
		Status:        status,
		Amenities:     c.Amenities,
		Image:         imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber    string                `db:"room_number"     json:"room_number"     validate:"omitempty,max=20"`
	Type          string                `db:"type"            json:"type"            validate:"omitempty,oneof=standard single double twin suite deluxe family studio executive"`
	Capacity      *int                  `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	PricePerNight *float64              `db:"price_per_night" json:"price_per_night" validate:"omitempty,min=0"`
	Status        string                `db:"status"          json:"status"          validate:"omitempty,oneof=available occupied maintenance"`
	Amenities     *string               `db:"amenities"       json:"amenities"       validate:"omitempty"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	RoomNumber    string  `json:"room_number"`
	Type          string  `json:"type"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night"`
	Status        string  `json:"status"`
	IsAvailable   bool    `json:"is_available"`
	Amenities     string  `json:"amenities"`
	Image         string  `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Type = model.Type
	r.Capacity = model.Capacity
	r.PricePerNight = model.PricePerNight
	r.Status = model.Status
	r.IsAvailable = model.IsAvailable()
	r.Amenities = model.Amenities
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
