package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/guest/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateGuestRequest struct {
	FullName    string  `json:"full_name"   validate:"required,max=100"`
	Email       string  `json:"email"       validate:"required,email,max=100"`
	Phone       string  `json:"phone"       validate:"required,max=20"`
	Address     *string `json:"address"     validate:"omitempty,max=200"`
	IDNumber    *string `json:"id_number"   validate:"omitempty,max=50"`
	Nationality *string `json:"nationality" validate:"omitempty,max=50"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:          uuid.NewString(),
		FullName:    c.FullName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		IDNumber:    c.IDNumber,
		Nationality: c.Nationality,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FullName    string  `db:"full_name"   json:"full_name"   validate:"omitempty,max=100"`
	Phone       string  `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	Address     *string `db:"address"     json:"address"     validate:"omitempty,max=200"`
	IDNumber    *string `db:"id_number"   json:"id_number"   validate:"omitempty,max=50"`
	Nationality *string `db:"nationality" json:"nationality" validate:"omitempty,max=50"`
}

type GuestResponse struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     *string `json:"address,omitempty"`
	IDNumber    *string `json:"id_number,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.IDNumber = model.IDNumber
	r.Nationality = model.Nationality
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
