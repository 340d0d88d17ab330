package adapter

import "errors"

var (
	ErrResolverUnavailable = errors.New("resolver unavailable")
	ErrResolverFailed      = errors.New("resolver request failed")
	ErrInvalidResponse     = errors.New("invalid resolver response")
)
