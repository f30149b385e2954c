package redis

import "errors"

var (
	ErrEmptyURL    = errors.New("redis: empty connection url")
	ErrInvalidURL  = errors.New("redis: invalid connection url")
	ErrUnreachable = errors.New("redis: server unreachable")
	ErrPingFailed  = errors.New("redis: ping failed")
	ErrNilClient   = errors.New("redis: nil client")
)
