package results_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
	redisclient "github.com/KirkDiggler/tw-simulator/internal/redis"
	"github.com/KirkDiggler/tw-simulator/internal/repositories/results"
	"github.com/KirkDiggler/tw-simulator/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx    context.Context
	mr     *miniredis.Miniredis
	client redisclient.Client
	repo   results.Repository
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())

	repo, err := results.NewRedis(&results.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := results.NewRedis(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = results.NewRedis(&results.RedisConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "redis client is required")
}

func (s *RedisRepositoryTestSuite) TestPutThenGet() {
	result := &twsim.DamageResult{
		CreatureID:     "appleboss",
		CreatureName:   "Apple Boss",
		NormalDamage:   1,
		CriticalDamage: 1,
		ExpectedDamage: 1,
		HitsToKill:     1000,
		MinDamage:      1,
		MaxDamage:      1,
	}

	err := s.repo.Put(s.ctx, &results.PutInput{Key: "damage_result:abc", Result: result, TTL: time.Minute})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &results.GetInput{Key: "damage_result:abc"})
	s.Require().NoError(err)
	s.Equal(result, out.Result)

	s.Equal(time.Minute, s.mr.TTL("damage_result:abc"))
}

func (s *RedisRepositoryTestSuite) TestPutDefaultTTL() {
	err := s.repo.Put(s.ctx, &results.PutInput{Key: "k", Result: &twsim.DamageResult{CreatureID: "x"}})
	s.Require().NoError(err)
	s.Equal(results.DefaultTTL, s.mr.TTL("k"))
}

func (s *RedisRepositoryTestSuite) TestGetMissAndExpiry() {
	_, err := s.repo.Get(s.ctx, &results.GetInput{Key: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	s.Require().NoError(s.repo.Put(s.ctx, &results.PutInput{
		Key:    "short",
		Result: &twsim.DamageResult{CreatureID: "x"},
		TTL:    time.Second,
	}))
	s.mr.FastForward(2 * time.Second)

	_, err = s.repo.Get(s.ctx, &results.GetInput{Key: "short"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCorruptPayload() {
	s.Require().NoError(s.mr.Set("bad", "{not json"))

	_, err := s.repo.Get(s.ctx, &results.GetInput{Key: "bad"})
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Get(s.ctx, &results.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	err = s.repo.Put(s.ctx, &results.PutInput{Key: "k"})
	s.True(errors.IsInvalidArgument(err))

	err = s.repo.Put(s.ctx, &results.PutInput{Result: &twsim.DamageResult{}})
	s.True(errors.IsInvalidArgument(err))
}
