package creatures

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
)

// InMemoryRepository implements Repository over a fixed slice. It is never
// written after construction, so reads need no locking.
type InMemoryRepository struct {
	ordered []*twsim.Creature
	byID    map[string]*twsim.Creature
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory validates the roster and builds a repository over a private copy
// of it, keeping the input order.
func NewInMemory(roster []*twsim.Creature) (*InMemoryRepository, error) {
	if err := ValidateRoster(roster); err != nil {
		return nil, err
	}

	repo := &InMemoryRepository{
		ordered: make([]*twsim.Creature, len(roster)),
		byID:    make(map[string]*twsim.Creature, len(roster)),
	}
	for i, c := range roster {
		clone := *c
		repo.ordered[i] = &clone
		repo.byID[clone.ID] = &clone
	}

	return repo, nil
}

// ValidateRoster checks every creature and rejects duplicate IDs
func ValidateRoster(roster []*twsim.Creature) error {
	if len(roster) == 0 {
		return errors.InvalidArgument("roster must contain at least one creature")
	}

	vb := errors.NewValidationBuilder()
	seen := make(map[string]bool, len(roster))
	for i, c := range roster {
		prefix := fmt.Sprintf("creatures[%d]", i)
		if c == nil {
			vb.RequiredField(prefix)
			continue
		}
		if c.ID != "" {
			prefix = fmt.Sprintf("creatures[%s]", c.ID)
		}

		errors.ValidateRequired(prefix+".id", c.ID, vb)
		if seen[c.ID] && c.ID != "" {
			vb.Field(prefix+".id", "is duplicated")
		}
		seen[c.ID] = true

		errors.ValidatePositive(prefix+".hp", c.HP, vb)
		errors.ValidateNonNegative(prefix+".defense", c.Defense, vb)
		errors.ValidateNonNegative(prefix+".fixed_defense", c.FixedDefense, vb)
		errors.ValidateNonNegative(prefix+".fixed_reduction", c.FixedReduction, vb)
		errors.ValidateFraction(prefix+".cut_rate", c.CutRate, vb)
		errors.ValidateNonNegative(prefix+".element_resistance", c.ElementResistance, vb)
	}

	return vb.Build()
}

// List returns every creature in roster order
func (r *InMemoryRepository) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	creatures := make([]*twsim.Creature, len(r.ordered))
	for i, c := range r.ordered {
		creatures[i] = clone(c)
	}

	return &ListOutput{Creatures: creatures}, nil
}

// Get returns one creature by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	c, ok := r.byID[input.ID]
	if !ok {
		return nil, errors.NotFoundf("creature %s not found", input.ID).
			WithMeta("creature_id", input.ID)
	}

	return &GetOutput{Creature: clone(c)}, nil
}

// GetMany returns the requested creatures in request order. Every missing ID
// is reported in a single NotFound error.
func (r *InMemoryRepository) GetMany(_ context.Context, input *GetManyInput) (*GetManyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	creatures := make([]*twsim.Creature, 0, len(input.IDs))
	var missing []string
	for _, id := range input.IDs {
		c, ok := r.byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		creatures = append(creatures, clone(c))
	}

	if len(missing) > 0 {
		return nil, errors.NotFoundf("creatures not found: %s", strings.Join(missing, ", ")).
			WithMeta("creature_ids", strings.Join(missing, ","))
	}

	return &GetManyOutput{Creatures: creatures}, nil
}

// FindByName returns the first creature with an exactly matching name
func (r *InMemoryRepository) FindByName(_ context.Context, input *FindByNameInput) (*FindByNameOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("creature name is required")
	}

	for _, c := range r.ordered {
		if c.Name == input.Name {
			return &FindByNameOutput{Creature: clone(c)}, nil
		}
	}

	return nil, errors.NotFoundf("creature named %q not found", input.Name)
}

func clone(c *twsim.Creature) *twsim.Creature {
	cp := *c
	return &cp
}
