package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrUnknownProduct     = errors.New("unknown product code")
	ErrSessionNotFound    = errors.New("quote session not found")
	ErrSessionCompleted   = errors.New("quote session already completed")
	ErrLookupUnavailable  = errors.New("region lookup data is not loaded")
	ErrLeadRejected       = errors.New("lead was rejected by the CRM")
	ErrLeadBlocked        = errors.New("submission blocked by business rule")
	ErrDuplicateEmail     = errors.New("email already exists")
)
