// Package creatures provides the read-only creature roster
package creatures

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturesmock github.com/KirkDiggler/tw-simulator/internal/repositories/creatures Repository

import (
	"context"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
)

// Repository provides lookups over the roster loaded at startup. The roster
// never changes after construction.
type Repository interface {
	// List returns every creature in roster order
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Get returns one creature by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// GetMany returns the requested creatures in request order
	GetMany(ctx context.Context, input *GetManyInput) (*GetManyOutput, error)

	// FindByName returns the first creature with an exactly matching name
	FindByName(ctx context.Context, input *FindByNameInput) (*FindByNameOutput, error)
}

// ListInput defines the request for listing creatures
type ListInput struct{}

// ListOutput defines the response for listing creatures
type ListOutput struct {
	Creatures []*twsim.Creature
}

// GetInput defines the request for retrieving a creature
type GetInput struct {
	ID string
}

// GetOutput defines the response for retrieving a creature
type GetOutput struct {
	Creature *twsim.Creature
}

// GetManyInput defines the request for retrieving several creatures
type GetManyInput struct {
	IDs []string
}

// GetManyOutput defines the response for retrieving several creatures
type GetManyOutput struct {
	Creatures []*twsim.Creature
}

// FindByNameInput defines the request for a name lookup
type FindByNameInput struct {
	Name string
}

// FindByNameOutput defines the response for a name lookup
type FindByNameOutput struct {
	Creature *twsim.Creature
}
