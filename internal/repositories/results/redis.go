package results

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	apperrors "github.com/KirkDiggler/tw-simulator/internal/errors"
	redisclient "github.com/KirkDiggler/tw-simulator/internal/redis"
)

const (
	errKeyEmpty    = "cache key cannot be empty"
	errResultEmpty = "result cannot be nil"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return apperrors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return apperrors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// NewRedis creates a Redis-backed result cache. Expiry is delegated to Redis.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Get returns a cached result or NotFound
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Key == "" {
		return nil, apperrors.InvalidArgument(errKeyEmpty)
	}

	payload, err := r.client.Get(ctx, input.Key).Bytes()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, apperrors.NotFound("cached result not found")
		}
		return nil, apperrors.Wrapf(err, "failed to get cached result from Redis")
	}

	var result twsim.DamageResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, apperrors.Wrapf(err, "failed to unmarshal cached result")
	}

	return &GetOutput{Result: &result}, nil
}

// Put stores a result with a TTL
func (r *redisRepository) Put(ctx context.Context, input *PutInput) error {
	if input == nil || input.Key == "" {
		return apperrors.InvalidArgument(errKeyEmpty)
	}
	if input.Result == nil {
		return apperrors.InvalidArgument(errResultEmpty)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	payload, err := json.Marshal(input.Result)
	if err != nil {
		return apperrors.Wrapf(err, "failed to marshal result")
	}

	if err := r.client.Set(ctx, input.Key, payload, ttl).Err(); err != nil {
		return apperrors.Wrapf(err, "failed to store result in Redis")
	}

	return nil
}
