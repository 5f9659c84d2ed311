package entities

import (
	"github.com/google/uuid"
)

type Pet struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID `gorm:"index" json:"user_id"`
	Name       string    `json:"name"`
	Skin       string    `json:"skin,omitempty"`
	Background string    `json:"background,omitempty"`
	Level      int       `json:"level"`
	Experience int64     `json:"experience"`

	// Stats are kept in 0-100 by the gameplay engine; not enforced here.
	Health      int `json:"health"`
	Hunger      int `json:"hunger"`
	Mood        int `json:"mood"`
	Stamina     int `json:"stamina"`
	Cleanliness int `json:"cleanliness"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
