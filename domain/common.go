package domain

import (
	"errors"
)

const (
	RoleAdmin    = "admin"
	RoleSupplier = "supplier"
)

var (
	MessageFailedBodyRequest  = "failed to process request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "token invalid"
	MessageUserNotAllowed     = "user not allowed"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")

	// ErrRepository marks persistence-layer failures so callers can tell
	// them apart from domain errors; services wrap the underlying cause.
	ErrRepository = errors.New("repository failure")
)
