// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
	"github.com/KirkDiggler/tw-simulator/internal/repositories/creatures"
	creaturesmock "github.com/KirkDiggler/tw-simulator/internal/repositories/creatures/mock"
	resultsmock "github.com/KirkDiggler/tw-simulator/internal/repositories/results/mock"
)

// ExpectCacheMiss sets up n cache misses, each followed by a successful store
func ExpectCacheMiss(ctx context.Context, mockCache *resultsmock.MockRepository, n int) {
	mockCache.EXPECT().
		Get(ctx, gomock.Any()).
		Return(nil, errors.NotFound("cached result not found")).
		Times(n)
	mockCache.EXPECT().
		Put(ctx, gomock.Any()).
		Return(nil).
		Times(n)
}

// ExpectRoster sets up a whole-roster listing
func ExpectRoster(ctx context.Context, mockRepo *creaturesmock.MockRepository, roster []*twsim.Creature) {
	mockRepo.EXPECT().
		List(ctx, &creatures.ListInput{}).
		Return(&creatures.ListOutput{Creatures: roster}, nil)
}

// ExpectCreature sets up a single creature lookup
func ExpectCreature(ctx context.Context, mockRepo *creaturesmock.MockRepository, creature *twsim.Creature) {
	mockRepo.EXPECT().
		Get(ctx, &creatures.GetInput{ID: creature.ID}).
		Return(&creatures.GetOutput{Creature: creature}, nil)
}
