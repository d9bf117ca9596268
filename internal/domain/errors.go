package domain

import "errors"

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDirection = errors.New("invalid conversion direction")
	ErrUnknownSource    = errors.New("unknown rate source")
	ErrMalformedPrice   = errors.New("malformed price")
	ErrRateUnavailable  = errors.New("rate unavailable")
)
