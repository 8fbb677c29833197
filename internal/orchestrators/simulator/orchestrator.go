// Package simulator implements the damage simulator orchestrator
package simulator

//go:generate mockgen -destination=mock/mock_service.go -package=simulatormock github.com/KirkDiggler/tw-simulator/internal/orchestrators/simulator Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/tw-simulator/internal/analyzer"
	"github.com/KirkDiggler/tw-simulator/internal/engine/damage"
	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
	"github.com/KirkDiggler/tw-simulator/internal/pkg/idgen"
	"github.com/KirkDiggler/tw-simulator/internal/repositories/creatures"
	"github.com/KirkDiggler/tw-simulator/internal/repositories/results"
)

// Service defines the interface for simulator operations
type Service interface {
	// Roster
	ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error)
	GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error)

	// Damage
	AggregateStats(ctx context.Context, input *AggregateStatsInput) (*AggregateStatsOutput, error)
	CalculateDamage(ctx context.Context, input *CalculateDamageInput) (*CalculateDamageOutput, error)
	SampleHit(ctx context.Context, input *SampleHitInput) (*SampleHitOutput, error)

	// Image analysis
	DetectEquipment(ctx context.Context, input *DetectEquipmentInput) (*DetectEquipmentOutput, error)
}

// Config holds the dependencies for the simulator orchestrator
type Config struct {
	CreatureRepo creatures.Repository
	IDGenerator  idgen.Generator
	Calculator   *damage.Calculator

	// ResultCache is optional; without it every result is computed
	ResultCache results.Repository
	ResultTTL   time.Duration

	// Analyzer defaults to analyzer.Unavailable()
	Analyzer analyzer.Capability

	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Calculator == nil {
		vb.RequiredField("Calculator")
	}
	if c.ResultTTL < 0 {
		vb.Field("ResultTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	creatureRepo creatures.Repository
	idGen        idgen.Generator
	calculator   *damage.Calculator
	resultCache  results.Repository
	resultTTL    time.Duration
	analyzer     analyzer.Capability
	roller       dice.Roller
}

// NewOrchestrator creates a new simulator orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		creatureRepo: cfg.CreatureRepo,
		idGen:        cfg.IDGenerator,
		calculator:   cfg.Calculator,
		resultCache:  cfg.ResultCache,
		resultTTL:    cfg.ResultTTL,
		analyzer:     cfg.Analyzer,
		roller:       roller,
	}, nil
}

// ListCreatures returns the whole roster
func (o *orchestrator) ListCreatures(ctx context.Context, _ *ListCreaturesInput) (*ListCreaturesOutput, error) {
	out, err := o.creatureRepo.List(ctx, &creatures.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creatures")
	}

	return &ListCreaturesOutput{Creatures: out.Creatures}, nil
}

// GetCreature returns one creature by ID or by name
func (o *orchestrator) GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch {
	case input.CreatureID != "" && input.Name != "":
		return nil, errors.InvalidArgument("only one of creature_id or name may be set")
	case input.Name != "":
		out, err := o.creatureRepo.FindByName(ctx, &creatures.FindByNameInput{Name: input.Name})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to find creature %q", input.Name)
		}
		return &GetCreatureOutput{Creature: out.Creature}, nil
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("creature_id", input.CreatureID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.creatureRepo.Get(ctx, &creatures.GetInput{ID: input.CreatureID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get creature %s", input.CreatureID)
	}

	return &GetCreatureOutput{Creature: out.Creature}, nil
}

// AggregateStats folds a loadout into offensive stats
func (o *orchestrator) AggregateStats(_ context.Context, input *AggregateStatsInput) (*AggregateStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := ValidateEquipmentSet(input.EquipmentSet); err != nil {
		return nil, err
	}

	return &AggregateStatsOutput{Stats: damage.Aggregate(input.EquipmentSet)}, nil
}

// CalculateDamage resolves a loadout against the requested creatures
func (o *orchestrator) CalculateDamage(ctx context.Context, input *CalculateDamageInput) (*CalculateDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := ValidateEquipmentSet(input.EquipmentSet); err != nil {
		return nil, err
	}

	targets, err := o.loadTargets(ctx, input.CreatureIDs)
	if err != nil {
		return nil, err
	}

	stats := damage.Aggregate(input.EquipmentSet)
	output := &CalculateDamageOutput{
		CalculationID: o.idGen.Generate(),
		Stats:         stats,
		Results:       []*twsim.DamageResult{},
	}

	if stats.Attack <= 0 {
		output.NoOffense = true
		slog.Info("Damage calculation skipped, loadout has no attack",
			"calculation_id", output.CalculationID,
			"attack", stats.Attack)
		return output, nil
	}

	cacheHits := 0
	for _, target := range targets {
		result, hit := o.resolve(ctx, stats, target)
		if hit {
			cacheHits++
		}
		output.Results = append(output.Results, result)
	}

	slog.Info("Damage calculated",
		"calculation_id", output.CalculationID,
		"attack", stats.Attack,
		"critical_rate", stats.CriticalRate,
		"element_value", stats.ElementValue,
		"creatures", len(targets),
		"cache_hits", cacheHits)

	return output, nil
}

// SampleHit resolves a loadout against one creature and draws a single hit
func (o *orchestrator) SampleHit(ctx context.Context, input *SampleHitInput) (*SampleHitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("creature_id", input.CreatureID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := ValidateEquipmentSet(input.EquipmentSet); err != nil {
		return nil, err
	}

	creatureOut, err := o.creatureRepo.Get(ctx, &creatures.GetInput{ID: input.CreatureID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get creature %s", input.CreatureID)
	}

	stats := damage.Aggregate(input.EquipmentSet)
	if stats.Attack <= 0 {
		return nil, errors.FailedPrecondition("loadout has no attack")
	}

	result, _ := o.resolve(ctx, stats, creatureOut.Creature)

	hit, err := o.calculator.SampleHit(result, o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sample hit")
	}

	return &SampleHitOutput{
		Target: &twsim.CreatureEntity{Creature: creatureOut.Creature},
		Result: result,
		Hit:    hit,
	}, nil
}

// DetectEquipment reads a loadout from an image when an analyzer is configured
func (o *orchestrator) DetectEquipment(ctx context.Context, input *DetectEquipmentInput) (*DetectEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	a, ok := o.analyzer.Analyzer()
	if !ok {
		return nil, errors.Unimplemented("equipment detection is not available on this server")
	}

	set, err := a.Analyze(ctx, input.ImageDataURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to analyze image")
	}

	return &DetectEquipmentOutput{
		EquipmentSet: set,
		Stats:        damage.Aggregate(set),
	}, nil
}

func (o *orchestrator) loadTargets(ctx context.Context, ids []string) ([]*twsim.Creature, error) {
	if len(ids) == 0 {
		out, err := o.creatureRepo.List(ctx, &creatures.ListInput{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list creatures")
		}
		return out.Creatures, nil
	}

	out, err := o.creatureRepo.GetMany(ctx, &creatures.GetManyInput{IDs: ids})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load creatures")
	}
	return out.Creatures, nil
}

// resolve returns the cached result when there is one. Cache errors are
// logged and never fail the calculation.
func (o *orchestrator) resolve(ctx context.Context, stats twsim.OffensiveStats, target *twsim.Creature) (*twsim.DamageResult, bool) {
	if o.resultCache == nil {
		return o.calculator.ResolveStats(stats, target), false
	}

	key := results.BuildKey(stats, target, o.calculator.Coefficients())

	cached, err := o.resultCache.Get(ctx, &results.GetInput{Key: key})
	switch {
	case err == nil:
		return cached.Result, true
	case !errors.IsNotFound(err):
		slog.Warn("Result cache lookup failed",
			"creature_id", target.ID,
			"error", err)
	}

	result := o.calculator.ResolveStats(stats, target)

	if err := o.resultCache.Put(ctx, &results.PutInput{Key: key, Result: result, TTL: o.resultTTL}); err != nil {
		slog.Warn("Result cache store failed",
			"creature_id", target.ID,
			"error", err)
	}

	return result, false
}

// ValidateEquipmentSet rejects negative stats and per-item critical rates
// above 1. A nil set is an empty loadout.
func ValidateEquipmentSet(set *twsim.EquipmentSet) error {
	vb := errors.NewValidationBuilder()

	for _, slot := range set.Occupied() {
		eq := set.Get(slot)
		field := func(name string) string {
			return fmt.Sprintf("equipment.%s.%s", slot, name)
		}

		errors.ValidateNonNegative(field("attack"), eq.Attack, vb)
		errors.ValidateNonNegative(field("defense"), eq.Defense, vb)
		errors.ValidateFraction(field("critical_rate"), eq.CriticalRate, vb)
		errors.ValidateNonNegative(field("element_value"), eq.ElementValue, vb)
	}

	return vb.Build()
}
