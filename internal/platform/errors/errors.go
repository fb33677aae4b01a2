package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrBlocked          = errors.New("blocked by active ban")
	ErrMalformedRecord  = errors.New("malformed progress record")
	ErrStoreUnavailable = errors.New("record store unavailable")
)
