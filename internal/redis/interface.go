package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient to allow for easy substitution in tests
type Client interface {
	redis.UniversalClient
}

// Nil is returned by GET when the key does not exist
const Nil = redis.Nil
