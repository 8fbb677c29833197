// Package config loads server settings from TWSIM_* environment variables
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/tw-simulator/internal/engine/damage"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
)

// Server holds the settings of the server command. Flags set on the command
// line override these after parsing.
type Server struct {
	Port            int           `env:"TWSIM_PORT" envDefault:"50051"`
	ShutdownTimeout time.Duration `env:"TWSIM_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// RosterPath is a roster YAML file; empty uses the built-in roster
	RosterPath string `env:"TWSIM_ROSTER_PATH"`

	// RedisAddr enables the Redis result cache; empty uses the in-memory cache
	RedisAddr       string        `env:"TWSIM_REDIS_ADDR"`
	RedisPassword   string        `env:"TWSIM_REDIS_PASSWORD"`
	RedisDB         int           `env:"TWSIM_REDIS_DB" envDefault:"0"`
	RedisTLS        bool          `env:"TWSIM_REDIS_TLS" envDefault:"false"`
	CacheTTL        time.Duration `env:"TWSIM_CACHE_TTL" envDefault:"10m"`
	CacheMaxEntries int           `env:"TWSIM_CACHE_MAX_ENTRIES" envDefault:"4096"`
	CacheDisabled   bool          `env:"TWSIM_CACHE_DISABLED" envDefault:"false"`

	EnableAnalyzer bool `env:"TWSIM_ENABLE_ANALYZER" envDefault:"true"`

	CriticalMultiplier float64 `env:"TWSIM_CRITICAL_MULTIPLIER" envDefault:"1.5"`
	ElementCoefficient float64 `env:"TWSIM_ELEMENT_COEFFICIENT" envDefault:"0.1"`
	RangeSpread        float64 `env:"TWSIM_RANGE_SPREAD" envDefault:"0.1"`
}

// LoadServer parses the process environment
func LoadServer() (*Server, error) {
	cfg := &Server{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Coefficients returns the resolver tuning
func (s *Server) Coefficients() damage.Coefficients {
	return damage.Coefficients{
		CriticalMultiplier: s.CriticalMultiplier,
		ElementCoefficient: s.ElementCoefficient,
		RangeSpread:        s.RangeSpread,
	}
}

// Validate checks ranges that env parsing cannot
func (s *Server) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.Port <= 0 || s.Port > 65535 {
		vb.Fieldf("TWSIM_PORT", "must be between 1 and 65535, got %d", s.Port)
	}
	if s.ShutdownTimeout <= 0 {
		vb.Field("TWSIM_SHUTDOWN_TIMEOUT", "must be positive")
	}
	if s.CacheTTL < 0 {
		vb.Field("TWSIM_CACHE_TTL", "must not be negative")
	}
	if s.CacheMaxEntries < 0 {
		vb.Field("TWSIM_CACHE_MAX_ENTRIES", "must not be negative")
	}
	if err := s.Coefficients().Validate(); err != nil {
		vb.Field("coefficients", errors.GetMessage(err))
	}

	return vb.Build()
}
