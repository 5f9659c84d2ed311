package entities

import (
	"time"

	"github.com/google/uuid"
)

type SignInRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID `gorm:"index" json:"user_id"`
	SignedAt         time.Time `json:"signed_at"`
	PointsGained     int64     `json:"points_gained"`
	ExperienceGained int64     `json:"experience_gained"`
	CouponCode       string    `json:"coupon_code,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
