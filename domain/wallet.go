package domain

import (
	"time"
)

var (
	MessageSuccessGetWallets       = "wallets retrieved successfully"
	MessageSuccessGetWalletHistory = "wallet history retrieved successfully"
	MessageSuccessGrantPoints      = "points granted successfully"
	MessageSuccessOverrideBalance  = "wallet balance overridden successfully"

	MessageFailedGetWallets       = "failed to retrieve wallets"
	MessageFailedGetWalletHistory = "failed to retrieve wallet history"
	MessageFailedGrantPoints      = "failed to grant points"
	MessageFailedOverrideBalance  = "failed to override wallet balance"
)

const (
	HistoryTypeAdminGrant    = "AdminGrant"
	HistoryTypeAdminOverride = "AdminOverride"
)

type (
	WalletQueryRequest struct {
		Search     string `query:"search"`
		MinBalance *int64 `query:"min_balance"`
		MaxBalance *int64 `query:"max_balance"`
		SortBy     string `query:"sort_by"`
		SortAsc    bool   `query:"sort_asc"`
		Page       int    `query:"page" validate:"min=1"`
		PageSize   int    `query:"page_size" validate:"min=1,max=100"`
	}

	WalletRow struct {
		UserID     string    `json:"user_id"`
		OwnerName  string    `json:"owner_name"`
		OwnerEmail string    `json:"owner_email"`
		Balance    int64     `json:"balance"`
		UpdatedAt  time.Time `json:"updated_at"`
	}

	WalletHistoryQueryRequest struct {
		Type     string `query:"type"`
		DateFrom string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
		DateTo   string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
		Page     int    `query:"page" validate:"min=1"`
		PageSize int    `query:"page_size" validate:"min=1,max=100"`
	}

	WalletHistoryRow struct {
		ID           string    `json:"id"`
		Type         string    `json:"type"`
		Amount       int64     `json:"amount"`
		BalanceFrom  int64     `json:"balance_from"`
		BalanceTo    int64     `json:"balance_to"`
		Description  string    `json:"description"`
		RelatedCode  string    `json:"related_code,omitempty"`
		TransactedAt time.Time `json:"transacted_at"`
	}

	GrantPointsRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
		Amount int64  `json:"amount" validate:"required"`
		Reason string `json:"reason" validate:"required"`
	}

	OverrideBalanceRequest struct {
		UserID  string `json:"user_id" validate:"required,uuid"`
		Balance int64  `json:"balance"`
		Reason  string `json:"reason" validate:"required"`
	}

	GrantPointsResponse struct {
		UserID      string `json:"user_id"`
		BalanceFrom int64  `json:"balance_from"`
		BalanceTo   int64  `json:"balance_to"`
	}
)
