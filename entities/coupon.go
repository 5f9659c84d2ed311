package entities

import (
	"time"

	"github.com/google/uuid"
)

type CouponType struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ValidFrom   time.Time `json:"valid_from"`
	ValidTo     time.Time `json:"valid_to"`
	IsActive    bool      `json:"is_active"`

	Timestamp
}

type Coupon struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"index" json:"user_id"`
	CouponTypeID uuid.UUID `json:"coupon_type_id"`
	Code         string    `gorm:"uniqueIndex" json:"code"`
	Used         bool      `json:"used"`
	AcquiredAt   time.Time `json:"acquired_at"`

	User       *User       `gorm:"foreignKey:UserID"`
	CouponType *CouponType `gorm:"foreignKey:CouponTypeID"`
	Timestamp
}
