package domain

import (
	"errors"
)

const (
	RoleOperator = "operator"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedQueryRequest   = "failed to process query parameters"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("invalid request parameters")
	ErrTransactionFailed  = errors.New("transaction could not be committed")
	ErrStoreUnavailable   = errors.New("record store unavailable")
	ErrParseUUID          = errors.New("failed to parse UUID")
	ErrTokenNotFound      = errors.New("failed to token not found")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrOperatorNotAllowed = errors.New("operator not allowed")
)
