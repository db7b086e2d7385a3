package model

import "innkeep/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldFullName    = "full_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldIDNumber    = "id_number"
	FieldNationality = "nationality"
)

type Guest struct {
	ID          string  `db:"id"`
	FullName    string  `db:"full_name"`
	Email       string  `db:"email"`
	Phone       string  `db:"phone"`
	Address     *string `db:"address"`
	IDNumber    *string `db:"id_number"`
	Nationality *string `db:"nationality"`
	model.Metadata
}
