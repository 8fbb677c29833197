package results

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
	"github.com/KirkDiggler/tw-simulator/internal/pkg/clock"
)

// DefaultMaxEntries bounds the in-memory cache when no limit is configured
const DefaultMaxEntries = 4096

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	Clock      clock.Clock
	MaxEntries int
}

// Validate ensures all required dependencies are provided
func (c *InMemoryConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.MaxEntries < 0 {
		return errors.InvalidArgument("max entries cannot be negative")
	}
	return nil
}

type entry struct {
	result    twsim.DamageResult
	expiresAt time.Time
}

// InMemoryRepository is a process-local result cache
type InMemoryRepository struct {
	mu         sync.Mutex
	clock      clock.Clock
	maxEntries int
	store      map[string]entry
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates an in-memory result cache
func NewInMemory(cfg *InMemoryConfig) (*InMemoryRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxEntries := cfg.MaxEntries
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}

	return &InMemoryRepository{
		clock:      cfg.Clock,
		maxEntries: maxEntries,
		store:      make(map[string]entry),
	}, nil
}

// Get returns a copy of a live entry or NotFound
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.store[input.Key]
	if !ok {
		return nil, errors.NotFound("cached result not found")
	}
	if !r.clock.Now().Before(e.expiresAt) {
		delete(r.store, input.Key)
		return nil, errors.NotFound("cached result has expired")
	}

	result := e.result
	return &GetOutput{Result: &result}, nil
}

// Put stores a copy of the result. When the cache is full, expired entries are
// dropped first; if it is still full the new entry is not stored.
func (r *InMemoryRepository) Put(_ context.Context, input *PutInput) error {
	if input == nil || input.Key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	if input.Result == nil {
		return errors.InvalidArgument(errResultEmpty)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if _, exists := r.store[input.Key]; !exists && len(r.store) >= r.maxEntries {
		r.evictExpired(now)
		if len(r.store) >= r.maxEntries {
			return errors.Unavailable("result cache is full")
		}
	}

	r.store[input.Key] = entry{
		result:    *input.Result,
		expiresAt: now.Add(ttl),
	}

	return nil
}

// Len returns the number of stored entries, live or not
func (r *InMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.store)
}

func (r *InMemoryRepository) evictExpired(now time.Time) {
	for k, e := range r.store {
		if !now.Before(e.expiresAt) {
			delete(r.store, k)
		}
	}
}
