// Package v1alpha1 handles the SimulatorService grpc service interface
package v1alpha1

import (
	"context"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
	"github.com/KirkDiggler/tw-simulator/internal/orchestrators/simulator"
)

// HandlerConfig holds dependencies for the simulator handler
type HandlerConfig struct {
	SimulatorService simulator.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.SimulatorService == nil {
		return errors.InvalidArgument("simulator service is required")
	}
	return nil
}

// Handler implements the SimulatorService gRPC server
type Handler struct {
	simulatorv1alpha1.UnimplementedSimulatorServiceServer
	simulatorService simulator.Service
}

// Ensure Handler implements the server interface
var _ simulatorv1alpha1.SimulatorServiceServer = (*Handler)(nil)

// NewHandler creates a new simulator handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		simulatorService: cfg.SimulatorService,
	}, nil
}

// ListCreatures returns the roster
func (h *Handler) ListCreatures(
	ctx context.Context,
	_ *simulatorv1alpha1.ListCreaturesRequest,
) (*simulatorv1alpha1.ListCreaturesResponse, error) {
	out, err := h.simulatorService.ListCreatures(ctx, &simulator.ListCreaturesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &simulatorv1alpha1.ListCreaturesResponse{
		Creatures: make([]*simulatorv1alpha1.Creature, 0, len(out.Creatures)),
	}
	for _, c := range out.Creatures {
		resp.Creatures = append(resp.Creatures, convertCreatureToProto(c))
	}

	return resp, nil
}

// GetCreature returns one creature
func (h *Handler) GetCreature(
	ctx context.Context,
	req *simulatorv1alpha1.GetCreatureRequest,
) (*simulatorv1alpha1.GetCreatureResponse, error) {
	if req.CreatureID == "" && req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("creature_id or name is required"))
	}

	out, err := h.simulatorService.GetCreature(ctx, &simulator.GetCreatureInput{
		CreatureID: req.CreatureID,
		Name:       req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &simulatorv1alpha1.GetCreatureResponse{
		Creature: convertCreatureToProto(out.Creature),
	}, nil
}

// AggregateStats folds a loadout into offensive stats
func (h *Handler) AggregateStats(
	ctx context.Context,
	req *simulatorv1alpha1.AggregateStatsRequest,
) (*simulatorv1alpha1.AggregateStatsResponse, error) {
	set, err := convertEquipmentFromProto(req.Equipment)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.simulatorService.AggregateStats(ctx, &simulator.AggregateStatsInput{
		EquipmentSet: set,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &simulatorv1alpha1.AggregateStatsResponse{
		Stats: convertStatsToProto(out.Stats),
	}, nil
}

// CalculateDamage resolves a loadout against the requested creatures
func (h *Handler) CalculateDamage(
	ctx context.Context,
	req *simulatorv1alpha1.CalculateDamageRequest,
) (*simulatorv1alpha1.CalculateDamageResponse, error) {
	set, err := convertEquipmentFromProto(req.Equipment)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	for i, id := range req.CreatureIDs {
		if id == "" {
			return nil, errors.ToGRPCError(errors.InvalidArgumentf("creature_ids[%d] is empty", i))
		}
	}

	out, err := h.simulatorService.CalculateDamage(ctx, &simulator.CalculateDamageInput{
		EquipmentSet: set,
		CreatureIDs:  req.CreatureIDs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &simulatorv1alpha1.CalculateDamageResponse{
		CalculationID: out.CalculationID,
		Stats:         convertStatsToProto(out.Stats),
		Results:       make([]*simulatorv1alpha1.DamageResult, 0, len(out.Results)),
		NoOffense:     out.NoOffense,
	}
	for _, r := range out.Results {
		resp.Results = append(resp.Results, convertDamageResultToProto(r))
	}

	return resp, nil
}

// SampleHit draws one hit against a creature
func (h *Handler) SampleHit(
	ctx context.Context,
	req *simulatorv1alpha1.SampleHitRequest,
) (*simulatorv1alpha1.SampleHitResponse, error) {
	if req.CreatureID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("creature_id is required"))
	}

	set, err := convertEquipmentFromProto(req.Equipment)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.simulatorService.SampleHit(ctx, &simulator.SampleHitInput{
		EquipmentSet: set,
		CreatureID:   req.CreatureID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &simulatorv1alpha1.SampleHitResponse{
		CreatureID: out.Target.GetID(),
		Result:     convertDamageResultToProto(out.Result),
		Hit: &simulatorv1alpha1.HitSample{
			Damage:       out.Hit.Damage,
			Critical:     out.Hit.Critical,
			CriticalRoll: int32(out.Hit.CriticalRoll),
		},
	}, nil
}

// DetectEquipment reads a loadout from a screenshot
func (h *Handler) DetectEquipment(
	ctx context.Context,
	req *simulatorv1alpha1.DetectEquipmentRequest,
) (*simulatorv1alpha1.DetectEquipmentResponse, error) {
	if req.ImageDataURL == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("image_data_url is required"))
	}

	out, err := h.simulatorService.DetectEquipment(ctx, &simulator.DetectEquipmentInput{
		ImageDataURL: req.ImageDataURL,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &simulatorv1alpha1.DetectEquipmentResponse{
		Equipment: convertEquipmentToProto(out.EquipmentSet),
		Stats:     convertStatsToProto(out.Stats),
	}, nil
}
