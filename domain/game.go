package domain

import (
	"time"
)

var (
	MessageSuccessGetGamePlays = "game plays retrieved successfully"
	MessageSuccessGetGameStats = "game statistics retrieved successfully"

	MessageFailedGetGamePlays = "failed to retrieve game plays"
	MessageFailedGetGameStats = "failed to retrieve game statistics"
)

const (
	GameResultWin   = "Win"
	GameResultLose  = "Lose"
	GameResultAbort = "Abort"
)

type (
	GamePlayQueryRequest struct {
		UserID   string `query:"user_id" validate:"omitempty,uuid"`
		PetID    string `query:"pet_id" validate:"omitempty,uuid"`
		Result   string `query:"result" validate:"omitempty,oneof=Win Lose Abort"`
		DateFrom string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
		DateTo   string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
		SortBy   string `query:"sort_by"`
		SortAsc  bool   `query:"sort_asc"`
		Page     int    `query:"page" validate:"min=1"`
		PageSize int    `query:"page_size" validate:"min=1,max=100"`
	}

	GamePlayRow struct {
		ID               string     `json:"id"`
		OwnerName        string     `json:"owner_name"`
		PetName          string     `json:"pet_name"`
		Level            int        `json:"level"`
		MonsterCount     int        `json:"monster_count"`
		SpeedMultiplier  float64    `json:"speed_multiplier"`
		Result           string     `json:"result"`
		PointsReward     int64      `json:"points_reward"`
		ExperienceReward int64      `json:"experience_reward"`
		DurationSeconds  *float64   `json:"duration_seconds,omitempty"`
		StartedAt        time.Time  `json:"started_at"`
		EndedAt          *time.Time `json:"ended_at,omitempty"`
	}

	GameStatistics struct {
		TotalCount      int64   `json:"total_count"`
		TodayCount      int64   `json:"today_count"`
		LastSevenDays   int64   `json:"last_seven_days"`
		ThisMonthCount  int64   `json:"this_month_count"`
		WinCount        int64   `json:"win_count"`
		LoseCount       int64   `json:"lose_count"`
		AbortCount      int64   `json:"abort_count"`
		WinRate         float64 `json:"win_rate"`
		AverageDuration float64 `json:"average_duration"`
		TotalPoints     int64   `json:"total_points"`
		TotalExperience int64   `json:"total_experience"`
	}
)
