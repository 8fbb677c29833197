// Package results memoizes damage results per (stats, creature, coefficients)
package results

//go:generate mockgen -destination=mock/mock_repository.go -package=resultsmock github.com/KirkDiggler/tw-simulator/internal/repositories/results Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
)

// DefaultTTL is used when PutInput.TTL is zero
const DefaultTTL = 10 * time.Minute

// Repository is a best-effort result cache
type Repository interface {
	// Get returns a cached result.
	// Returns errors.NotFound on a miss or an expired entry.
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Put stores a result under key for the given TTL
	Put(ctx context.Context, input *PutInput) error
}

// GetInput contains parameters for a cache lookup
type GetInput struct {
	Key string
}

// GetOutput contains a cached result
type GetOutput struct {
	Result *twsim.DamageResult
}

// PutInput contains parameters for storing a result
type PutInput struct {
	Key    string
	Result *twsim.DamageResult
	TTL    time.Duration
}
