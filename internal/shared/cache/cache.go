package cache

import (
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

type Cache interface {
	Get(key string, dest interface{}) error
	Set(key string, expireTimeout time.Duration, value interface{}) error
}
