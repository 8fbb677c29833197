// Package analyzer turns a screenshot of the equipment screen into an
// EquipmentSet. Whether a backend exists is decided once, when the server is
// composed, and carried around as a Capability.
package analyzer

//go:generate mockgen -destination=mock/mock_analyzer.go -package=analyzermock github.com/KirkDiggler/tw-simulator/internal/analyzer Analyzer

import (
	"context"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
)

// Analyzer extracts equipment from an image
type Analyzer interface {
	// Analyze reads a data:image/...;base64 URL.
	// Returns errors.InvalidArgument if the URL is malformed.
	Analyze(ctx context.Context, imageDataURL string) (*twsim.EquipmentSet, error)
}

// Capability is either an available Analyzer or nothing
type Capability struct {
	analyzer Analyzer
}

// Available wraps a working analyzer. A nil analyzer yields Unavailable.
func Available(a Analyzer) Capability {
	return Capability{analyzer: a}
}

// Unavailable is the capability of a server with no analyzer backend
func Unavailable() Capability {
	return Capability{}
}

// Analyzer returns the backend and whether one is present
func (c Capability) Analyzer() (Analyzer, bool) {
	return c.analyzer, c.analyzer != nil
}

// IsAvailable reports whether an analyzer backend is present
func (c Capability) IsAvailable() bool {
	return c.analyzer != nil
}
