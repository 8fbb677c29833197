package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
	"github.com/KirkDiggler/tw-simulator/internal/analyzer"
	"github.com/KirkDiggler/tw-simulator/internal/config"
	"github.com/KirkDiggler/tw-simulator/internal/engine/damage"
	"github.com/KirkDiggler/tw-simulator/internal/handlers/simulator/v1alpha1"
	"github.com/KirkDiggler/tw-simulator/internal/orchestrators/simulator"
	"github.com/KirkDiggler/tw-simulator/internal/pkg/clock"
	"github.com/KirkDiggler/tw-simulator/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/tw-simulator/internal/redis"
	"github.com/KirkDiggler/tw-simulator/internal/repositories/creatures"
	"github.com/KirkDiggler/tw-simulator/internal/repositories/results"
)

var (
	grpcPort   int
	rosterPath string
	redisAddr  string
	noAnalyzer bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the simulator gRPC server.

Settings are read from TWSIM_* environment variables; flags given on the
command line take precedence.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&rosterPath, "roster", "", "creature roster YAML file (default: built-in roster)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for the result cache (default: in-memory)")
	serverCmd.Flags().BoolVar(&noAnalyzer, "no-analyzer", false, "disable equipment detection")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(slog.Default(), deps.Handler)

	log.Printf("gRPC server starting on port %d...", cfg.Port)
	return serve(ctx, srv, lis, cfg.ShutdownTimeout)
}

func applyFlags(cmd *cobra.Command, cfg *config.Server) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = grpcPort
	}
	if flags.Changed("roster") {
		cfg.RosterPath = rosterPath
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("no-analyzer") {
		cfg.EnableAnalyzer = !noAnalyzer
	}
}

// dependencies is the composed service graph
type dependencies struct {
	Handler *v1alpha1.Handler
	closers []func() error
}

// Close releases external connections
func (d *dependencies) Close() {
	for _, c := range d.closers {
		if err := c(); err != nil {
			log.Printf("error during shutdown: %v", err)
		}
	}
}

func buildDependencies(cfg *config.Server) (*dependencies, error) {
	deps := &dependencies{}

	creatureRepo, err := creatures.NewFromYAMLFile(cfg.RosterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load creature roster: %w", err)
	}

	calculator, err := damage.NewCalculator(cfg.Coefficients())
	if err != nil {
		return nil, fmt.Errorf("failed to create calculator: %w", err)
	}

	resultCache, err := buildResultCache(cfg, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}

	capability := analyzer.Unavailable()
	if cfg.EnableAnalyzer {
		capability = analyzer.Available(analyzer.NewStub())
	}

	svc, err := simulator.NewOrchestrator(&simulator.Config{
		CreatureRepo: creatureRepo,
		IDGenerator:  idgen.NewUUID("calc"),
		Calculator:   calculator,
		ResultCache:  resultCache,
		ResultTTL:    cfg.CacheTTL,
		Analyzer:     capability,
	})
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create simulator orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{SimulatorService: svc})
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create simulator handler: %w", err)
	}
	deps.Handler = handler

	slog.Info("Simulator composed",
		"creatures", creatureCount(creatureRepo),
		"cache", cacheKind(cfg),
		"analyzer", capability.IsAvailable())

	return deps, nil
}

func buildResultCache(cfg *config.Server, deps *dependencies) (results.Repository, error) {
	switch {
	case cfg.CacheDisabled:
		return nil, nil
	case cfg.RedisAddr != "":
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			DB:       cfg.RedisDB,
			Password: cfg.RedisPassword,
			UseTLS:   cfg.RedisTLS,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		deps.closers = append(deps.closers, client.Close)

		cache, err := results.NewRedis(&results.RedisConfig{Client: client})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis result cache: %w", err)
		}
		return cache, nil
	default:
		cache, err := results.NewInMemory(&results.InMemoryConfig{
			Clock:      clock.New(),
			MaxEntries: cfg.CacheMaxEntries,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory result cache: %w", err)
		}
		return cache, nil
	}
}

func cacheKind(cfg *config.Server) string {
	switch {
	case cfg.CacheDisabled:
		return "disabled"
	case cfg.RedisAddr != "":
		return "redis"
	default:
		return "memory"
	}
}

func creatureCount(repo *creatures.InMemoryRepository) int {
	out, err := repo.List(context.Background(), &creatures.ListInput{})
	if err != nil {
		return 0
	}
	return len(out.Creatures)
}

func newGRPCServer(logger *slog.Logger, handler simulatorv1alpha1.SimulatorServiceServer) *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	simulatorv1alpha1.RegisterSimulatorServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(simulatorv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv
}

// serve runs srv until ctx is canceled, then stops it gracefully, forcing a
// stop after timeout
func serve(ctx context.Context, srv *grpc.Server, lis net.Listener, timeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down gRPC server...")

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(timeout):
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

// interceptorLogger adapts slog to the go-grpc-middleware logging interface
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
