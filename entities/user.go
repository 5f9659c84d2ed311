package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`

	Timestamp
}
