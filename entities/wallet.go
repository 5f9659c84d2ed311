package entities

import (
	"time"

	"github.com/google/uuid"
)

type Wallet struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	Balance int64     `json:"balance"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type WalletHistory struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"index" json:"user_id"`
	Type         string     `json:"type"` // AdminGrant, AdminOverride, SignIn, GameReward
	Amount       int64      `json:"amount"`
	BalanceFrom  int64      `json:"balance_from"`
	BalanceTo    int64      `json:"balance_to"`
	Description  string     `json:"description"`
	RelatedCode  string     `json:"related_code,omitempty"`
	TransactedAt time.Time  `json:"transacted_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
