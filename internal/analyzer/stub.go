package analyzer

import (
	"context"
	"encoding/base64"
	"regexp"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
)

// Stub loadout returned for any readable image
const (
	StubWeaponName    = "テスト武器"
	StubWeaponAttack  = 100
	StubWeaponElement = 20
)

var dataURLPattern = regexp.MustCompile(`^data:image/[A-Za-z0-9.+-]+;base64,(.+)$`)

// StubAnalyzer checks that the image decodes and returns a fixed weapon. It
// stands in until a recognition backend exists.
type StubAnalyzer struct{}

// Ensure StubAnalyzer implements Analyzer
var _ Analyzer = (*StubAnalyzer)(nil)

// NewStub returns a StubAnalyzer
func NewStub() *StubAnalyzer {
	return &StubAnalyzer{}
}

// Analyze validates imageDataURL and returns the stub loadout
func (a *StubAnalyzer) Analyze(ctx context.Context, imageDataURL string) (*twsim.EquipmentSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "analysis stopped")
	}

	if _, err := DecodeDataURL(imageDataURL); err != nil {
		return nil, err
	}

	return &twsim.EquipmentSet{
		Weapon: &twsim.Equipment{
			Name:         StubWeaponName,
			Attack:       StubWeaponAttack,
			ElementValue: StubWeaponElement,
		},
	}, nil
}

// DecodeDataURL returns the image bytes of a base64 image data URL
func DecodeDataURL(imageDataURL string) ([]byte, error) {
	if imageDataURL == "" {
		return nil, errors.InvalidArgument("image data URL is required")
	}

	matches := dataURLPattern.FindStringSubmatch(imageDataURL)
	if matches == nil {
		return nil, errors.InvalidArgument("image must be a data:image/...;base64 URL")
	}

	payload, err := base64.StdEncoding.DecodeString(matches[1])
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "image payload is not valid base64")
	}
	if len(payload) == 0 {
		return nil, errors.InvalidArgument("image payload is empty")
	}

	return payload, nil
}
