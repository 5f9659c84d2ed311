package entities

import (
	"time"

	"github.com/google/uuid"
)

type GamePlay struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID  `gorm:"index" json:"user_id"`
	PetID            uuid.UUID  `json:"pet_id"`
	Level            int        `json:"level"`
	MonsterCount     int        `json:"monster_count"`
	SpeedMultiplier  float64    `json:"speed_multiplier"`
	Result           string     `json:"result"` // Win, Lose, Abort
	PointsReward     int64      `json:"points_reward"`
	ExperienceReward int64      `json:"experience_reward"`
	HungerDelta      int        `json:"hunger_delta"`
	MoodDelta        int        `json:"mood_delta"`
	StaminaDelta     int        `json:"stamina_delta"`
	StartedAt        time.Time  `json:"started_at"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
	Aborted          bool       `json:"aborted"`

	User *User `gorm:"foreignKey:UserID"`
	Pet  *Pet  `gorm:"foreignKey:PetID"`
	Timestamp
}
