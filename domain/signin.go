package domain

import (
	"time"
)

var (
	MessageSuccessGetSignIns     = "sign-in records retrieved successfully"
	MessageSuccessGetSignInStats = "sign-in statistics retrieved successfully"

	MessageFailedGetSignIns     = "failed to retrieve sign-in records"
	MessageFailedGetSignInStats = "failed to retrieve sign-in statistics"
)

type (
	SignInQueryRequest struct {
		UserID    string `query:"user_id" validate:"omitempty,uuid"`
		DateFrom  string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
		DateTo    string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
		MinPoints *int64 `query:"min_points"`
		MaxPoints *int64 `query:"max_points"`
		SortBy    string `query:"sort_by"`
		SortAsc   bool   `query:"sort_asc"`
		Page      int    `query:"page" validate:"min=1"`
		PageSize  int    `query:"page_size" validate:"min=1,max=100"`
	}

	SignInRow struct {
		ID               string    `json:"id"`
		OwnerName        string    `json:"owner_name"`
		SignedAt         time.Time `json:"signed_at"`
		PointsGained     int64     `json:"points_gained"`
		ExperienceGained int64     `json:"experience_gained"`
		CouponCode       string    `json:"coupon_code,omitempty"`
	}

	SignInStatistics struct {
		TotalCount      int64 `json:"total_count"`
		TodayCount      int64 `json:"today_count"`
		LastSevenDays   int64 `json:"last_seven_days"`
		ThisMonthCount  int64 `json:"this_month_count"`
		TotalPoints     int64 `json:"total_points"`
		TotalExperience int64 `json:"total_experience"`
	}
)
