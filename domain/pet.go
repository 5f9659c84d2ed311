package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetPets          = "pets retrieved successfully"
	MessageSuccessOverridePetStats = "pet stats overridden successfully"

	MessageFailedGetPets          = "failed to retrieve pets"
	MessageFailedOverridePetStats = "failed to override pet stats"

	ErrPetNotFound = errors.New("pet not found")
)

type (
	PetQueryRequest struct {
		Search   string `query:"search"`
		UserID   string `query:"user_id" validate:"omitempty,uuid"`
		MinLevel *int   `query:"min_level"`
		MaxLevel *int   `query:"max_level"`
		SortBy   string `query:"sort_by"`
		SortAsc  bool   `query:"sort_asc"`
		Page     int    `query:"page" validate:"min=1"`
		PageSize int    `query:"page_size" validate:"min=1,max=100"`
	}

	PetRow struct {
		ID           string    `json:"id"`
		OwnerName    string    `json:"owner_name"`
		Name         string    `json:"name"`
		Skin         string    `json:"skin,omitempty"`
		Background   string    `json:"background,omitempty"`
		Level        int       `json:"level"`
		Experience   int64     `json:"experience"`
		NextLevelExp int64     `json:"next_level_exp"`
		Health       int       `json:"health"`
		Hunger       int       `json:"hunger"`
		Mood         int       `json:"mood"`
		Stamina      int       `json:"stamina"`
		Cleanliness  int       `json:"cleanliness"`
		UpdatedAt    time.Time `json:"updated_at"`
	}

	OverridePetStatsRequest struct {
		PetID       string `json:"pet_id" validate:"required,uuid"`
		Name        string `json:"name,omitempty"`
		Level       *int   `json:"level,omitempty" validate:"omitempty,min=1"`
		Experience  *int64 `json:"experience,omitempty" validate:"omitempty,min=0"`
		Health      *int   `json:"health,omitempty" validate:"omitempty,min=0,max=100"`
		Hunger      *int   `json:"hunger,omitempty" validate:"omitempty,min=0,max=100"`
		Mood        *int   `json:"mood,omitempty" validate:"omitempty,min=0,max=100"`
		Stamina     *int   `json:"stamina,omitempty" validate:"omitempty,min=0,max=100"`
		Cleanliness *int   `json:"cleanliness,omitempty" validate:"omitempty,min=0,max=100"`
	}
)
