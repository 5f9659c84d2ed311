package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCoupons   = "coupons retrieved successfully"
	MessageSuccessGrantCoupons = "coupons granted successfully"
	MessageSuccessRevokeCoupon = "coupon revoked successfully"

	MessageFailedGetCoupons   = "failed to retrieve coupons"
	MessageFailedGrantCoupons = "failed to grant coupons"
	MessageFailedRevokeCoupon = "failed to revoke coupon"

	ErrCouponTypeNotFound = errors.New("coupon type not found")
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrCouponAlreadyUsed  = errors.New("coupon already used")
)

type (
	CouponQueryRequest struct {
		Search   string `query:"search"`
		UserID   string `query:"user_id" validate:"omitempty,uuid"`
		TypeID   string `query:"type_id" validate:"omitempty,uuid"`
		Used     *bool  `query:"used"`
		DateFrom string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
		DateTo   string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
		SortBy   string `query:"sort_by"`
		SortAsc  bool   `query:"sort_asc"`
		Page     int    `query:"page" validate:"min=1"`
		PageSize int    `query:"page_size" validate:"min=1,max=100"`
	}

	CouponRow struct {
		ID         string    `json:"id"`
		Code       string    `json:"code"`
		OwnerName  string    `json:"owner_name"`
		OwnerEmail string    `json:"owner_email"`
		TypeName   string    `json:"type_name"`
		Used       bool      `json:"used"`
		AcquiredAt time.Time `json:"acquired_at"`
	}

	GrantCouponsRequest struct {
		UserID   string `json:"user_id" validate:"required,uuid"`
		TypeID   string `json:"type_id" validate:"required,uuid"`
		Quantity int    `json:"quantity" validate:"required,min=1,max=100"`
	}

	GrantCouponsResponse struct {
		Codes []string `json:"codes"`
	}
)
