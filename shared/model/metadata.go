package model

import "time"

// Metadata carries the bookkeeping columns shared by every table.
type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `json:"created_by" db:"created_by"`
	ModifiedBy string    `json:"modified_by" db:"modified_by"`
}
