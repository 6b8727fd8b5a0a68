package redis

import "errors"

var (
	ErrAddrRequired = errors.New("redis: addr is required")
	ErrKeyNotFound  = errors.New("redis: key not found")
)
