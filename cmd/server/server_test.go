package main

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
	"github.com/KirkDiggler/tw-simulator/internal/config"
	"github.com/KirkDiggler/tw-simulator/internal/testutils"
)

func defaultConfig(t *testing.T) *config.Server {
	t.Helper()
	cfg, err := config.LoadServer()
	require.NoError(t, err)
	return cfg
}

func TestBuildDependencies_InMemory(t *testing.T) {
	deps, err := buildDependencies(defaultConfig(t))
	require.NoError(t, err)
	defer deps.Close()

	resp, err := deps.Handler.ListCreatures(context.Background(), &simulatorv1alpha1.ListCreaturesRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Creatures, 9)
}

func TestBuildDependencies_Redis(t *testing.T) {
	_, mr := testutils.CreateTestRedisClient(t)

	cfg := defaultConfig(t)
	cfg.RedisAddr = mr.Addr()

	deps, err := buildDependencies(cfg)
	require.NoError(t, err)
	defer deps.Close()

	_, err = deps.Handler.CalculateDamage(context.Background(), &simulatorv1alpha1.CalculateDamageRequest{
		Equipment:   map[string]*simulatorv1alpha1.Equipment{"weapon": {Attack: 1000}},
		CreatureIDs: []string{"appleboss"},
	})
	require.NoError(t, err)
	assert.Len(t, mr.Keys(), 1)
}

func TestBuildDependencies_BadRoster(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.RosterPath = "/does/not/exist.yaml"

	_, err := buildDependencies(cfg)
	assert.Error(t, err)
}

func TestBuildDependencies_BadCoefficients(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.CriticalMultiplier = 0.5

	_, err := buildDependencies(cfg)
	assert.Error(t, err)
}

func TestServe_HealthAndShutdown(t *testing.T) {
	deps, err := buildDependencies(defaultConfig(t))
	require.NoError(t, err)
	defer deps.Close()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := newGRPCServer(slog.Default(), deps.Handler)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, srv, lis, 5*time.Second)
	}()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	health, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{
		Service: simulatorv1alpha1.ServiceName,
	})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, health.Status)

	creature, err := simulatorv1alpha1.NewSimulatorServiceClient(conn).GetCreature(context.Background(),
		&simulatorv1alpha1.GetCreatureRequest{CreatureID: "kimaira"})
	require.NoError(t, err)
	assert.Equal(t, "kimaira", creature.Creature.ID)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
