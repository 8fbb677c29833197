package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
	"github.com/KirkDiggler/tw-simulator/internal/handlers/simulator/v1alpha1"
	"github.com/KirkDiggler/tw-simulator/internal/orchestrators/simulator"
	simulatormock "github.com/KirkDiggler/tw-simulator/internal/orchestrators/simulator/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	mockSimulator *simulatormock.MockService
	handler       *v1alpha1.Handler
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockSimulator = simulatormock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SimulatorService: s.mockSimulator,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "simulator service is required")
}

func (s *HandlerTestSuite) TestListCreatures() {
	s.mockSimulator.EXPECT().
		ListCreatures(s.ctx, &simulator.ListCreaturesInput{}).
		Return(&simulator.ListCreaturesOutput{Creatures: []*twsim.Creature{
			{ID: "slime", Name: "Slime", Level: 1, HP: 50},
			{ID: "golem", Name: "Golem", Level: 20, HP: 900, Defense: 400},
		}}, nil)

	resp, err := s.handler.ListCreatures(s.ctx, &simulatorv1alpha1.ListCreaturesRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Creatures, 2)
	s.Equal("slime", resp.Creatures[0].ID)
	s.Equal(400.0, resp.Creatures[1].Defense)
}

func (s *HandlerTestSuite) TestGetCreature_MissingID() {
	_, err := s.handler.GetCreature(s.ctx, &simulatorv1alpha1.GetCreatureRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetCreature_NotFound() {
	s.mockSimulator.EXPECT().
		GetCreature(s.ctx, &simulator.GetCreatureInput{CreatureID: "ghost"}).
		Return(nil, errors.NotFound("creature not found").WithMeta("creature_id", "ghost"))

	_, err := s.handler.GetCreature(s.ctx, &simulatorv1alpha1.GetCreatureRequest{CreatureID: "ghost"})
	s.Equal(codes.NotFound, status.Code(err))
	s.Equal("ghost", errors.GetMeta(errors.FromGRPCError(err))["creature_id"])
}

func (s *HandlerTestSuite) TestGetCreature_ByName() {
	s.mockSimulator.EXPECT().
		GetCreature(s.ctx, &simulator.GetCreatureInput{Name: "りんごボス"}).
		Return(&simulator.GetCreatureOutput{Creature: &twsim.Creature{
			ID: "appleboss", Name: "りんごボス", HP: 1000, FixedReduction: 90000,
		}}, nil)

	resp, err := s.handler.GetCreature(s.ctx, &simulatorv1alpha1.GetCreatureRequest{Name: "りんごボス"})
	s.Require().NoError(err)
	s.Equal("appleboss", resp.Creature.ID)
	s.Equal(90000.0, resp.Creature.FixedReduction)
}

func (s *HandlerTestSuite) TestCalculateDamage() {
	s.mockSimulator.EXPECT().
		CalculateDamage(s.ctx, &simulator.CalculateDamageInput{
			EquipmentSet: &twsim.EquipmentSet{
				Weapon: &twsim.Equipment{Name: "Sword", Attack: 100, ElementValue: 20},
				Armor:  &twsim.Equipment{Defense: 30, CriticalRate: 0.25},
			},
			CreatureIDs: []string{"slime"},
		}).
		Return(&simulator.CalculateDamageOutput{
			CalculationID: "calc_1",
			Stats:         twsim.OffensiveStats{Attack: 100, Defense: 30, CriticalRate: 0.25, ElementValue: 20},
			Results: []*twsim.DamageResult{
				{CreatureID: "slime", NormalDamage: 100, CriticalDamage: 150, ExpectedDamage: 112.5, HitsToKill: 1},
			},
		}, nil)

	resp, err := s.handler.CalculateDamage(s.ctx, &simulatorv1alpha1.CalculateDamageRequest{
		Equipment: map[string]*simulatorv1alpha1.Equipment{
			"weapon": {Name: "Sword", Attack: 100, ElementValue: 20},
			"armor":  {Defense: 30, CriticalRate: 0.25},
		},
		CreatureIDs: []string{"slime"},
	})
	s.Require().NoError(err)
	s.Equal("calc_1", resp.CalculationID)
	s.Equal(0.25, resp.Stats.CriticalRate)
	s.Require().Len(resp.Results, 1)
	s.Equal(int64(150), resp.Results[0].CriticalDamage)
	s.Equal(112.5, resp.Results[0].ExpectedDamage)
	s.False(resp.NoOffense)
}

func (s *HandlerTestSuite) TestCalculateDamage_UnknownSlot() {
	_, err := s.handler.CalculateDamage(s.ctx, &simulatorv1alpha1.CalculateDamageRequest{
		Equipment: map[string]*simulatorv1alpha1.Equipment{
			"helmet": {Defense: 5},
		},
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Contains(status.Convert(err).Message(), "equipment.helmet")
}

func (s *HandlerTestSuite) TestCalculateDamage_EmptyCreatureID() {
	_, err := s.handler.CalculateDamage(s.ctx, &simulatorv1alpha1.CalculateDamageRequest{
		CreatureIDs: []string{"slime", ""},
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestSampleHit() {
	s.mockSimulator.EXPECT().
		SampleHit(s.ctx, gomock.Any()).
		Return(&simulator.SampleHitOutput{
			Target: &twsim.CreatureEntity{Creature: &twsim.Creature{ID: "slime"}},
			Result: &twsim.DamageResult{CreatureID: "slime", CriticalDamage: 150},
			Hit:    &twsim.HitSample{Damage: 150, Critical: true, CriticalRoll: 7},
		}, nil)

	resp, err := s.handler.SampleHit(s.ctx, &simulatorv1alpha1.SampleHitRequest{
		Equipment:  map[string]*simulatorv1alpha1.Equipment{"weapon": {Attack: 100}},
		CreatureID: "slime",
	})
	s.Require().NoError(err)
	s.Equal("slime", resp.CreatureID)
	s.True(resp.Hit.Critical)
	s.Equal(int32(7), resp.Hit.CriticalRoll)
}

func (s *HandlerTestSuite) TestDetectEquipment_Unavailable() {
	s.mockSimulator.EXPECT().
		DetectEquipment(s.ctx, &simulator.DetectEquipmentInput{ImageDataURL: "data:image/png;base64,AAAA"}).
		Return(nil, errors.Unimplemented("equipment detection is not available on this server"))

	_, err := s.handler.DetectEquipment(s.ctx, &simulatorv1alpha1.DetectEquipmentRequest{
		ImageDataURL: "data:image/png;base64,AAAA",
	})
	s.Equal(codes.Unimplemented, status.Code(err))
}

func (s *HandlerTestSuite) TestDetectEquipment() {
	s.mockSimulator.EXPECT().
		DetectEquipment(s.ctx, gomock.Any()).
		Return(&simulator.DetectEquipmentOutput{
			EquipmentSet: &twsim.EquipmentSet{Weapon: &twsim.Equipment{Name: "Bow", Attack: 80}},
			Stats:        twsim.OffensiveStats{Attack: 80},
		}, nil)

	resp, err := s.handler.DetectEquipment(s.ctx, &simulatorv1alpha1.DetectEquipmentRequest{
		ImageDataURL: "data:image/png;base64,AAAA",
	})
	s.Require().NoError(err)
	s.Require().Contains(resp.Equipment, "weapon")
	s.Equal("Bow", resp.Equipment["weapon"].Name)
	s.Len(resp.Equipment, 1)
}
