package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetVouchers   = "vouchers retrieved successfully"
	MessageSuccessGrantVouchers = "vouchers granted successfully"
	MessageSuccessRevokeVoucher = "voucher revoked successfully"

	MessageFailedGetVouchers   = "failed to retrieve vouchers"
	MessageFailedGrantVouchers = "failed to grant vouchers"
	MessageFailedRevokeVoucher = "failed to revoke voucher"

	ErrVoucherTypeNotFound = errors.New("voucher type not found")
	ErrVoucherNotFound     = errors.New("voucher not found")
	ErrVoucherAlreadyUsed  = errors.New("voucher already used")
)

type (
	VoucherQueryRequest struct {
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

	VoucherRow struct {
		ID           string    `json:"id"`
		Code         string    `json:"code"`
		OwnerName    string    `json:"owner_name"`
		OwnerEmail   string    `json:"owner_email"`
		TypeName     string    `json:"type_name"`
		Used         bool      `json:"used"`
		ValidityDays int       `json:"validity_days"`
		CreatedAt    time.Time `json:"created_at"`
	}

	GrantVouchersRequest struct {
		UserID   string `json:"user_id" validate:"required,uuid"`
		TypeID   string `json:"type_id" validate:"required,uuid"`
		Quantity int    `json:"quantity" validate:"required,min=1,max=100"`
	}

	GrantVouchersResponse struct {
		Codes []string `json:"codes"`
	}
)
