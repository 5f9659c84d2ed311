package entities

import (
	"time"

	"github.com/google/uuid"
)

type VoucherType struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ValidFrom   time.Time `json:"valid_from"`
	ValidTo     time.Time `json:"valid_to"`
	IsActive    bool      `json:"is_active"`

	Timestamp
}

type Voucher struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"index" json:"user_id"`
	VoucherTypeID uuid.UUID `json:"voucher_type_id"`
	Code          string    `gorm:"uniqueIndex" json:"code"`
	Used          bool      `json:"used"`

	User        *User        `gorm:"foreignKey:UserID"`
	VoucherType *VoucherType `gorm:"foreignKey:VoucherTypeID"`
	Timestamp
}
