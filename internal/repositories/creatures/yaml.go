package creatures

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
)

//go:embed roster.yaml
var defaultRosterYAML []byte

// rosterFile is the on-disk roster document
type rosterFile struct {
	Creatures []*twsim.Creature `yaml:"creatures"`
}

// ParseYAML decodes a roster document and validates it
func ParseYAML(data []byte) ([]*twsim.Creature, error) {
	var doc rosterFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse roster")
	}

	if err := ValidateRoster(doc.Creatures); err != nil {
		return nil, err
	}

	return doc.Creatures, nil
}

// LoadYAML reads and parses a roster file
func LoadYAML(path string) ([]*twsim.Creature, error) {
	data, err := os.ReadFile(path) // #nosec G304 // operator supplied roster path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("roster file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read roster file %s", path)
	}

	return ParseYAML(data)
}

// DefaultRoster returns the built-in roster
func DefaultRoster() []*twsim.Creature {
	roster, err := ParseYAML(defaultRosterYAML)
	if err != nil {
		// the embedded file is covered by tests
		panic(err)
	}
	return roster
}

// NewFromYAMLFile loads path into an in-memory repository. An empty path
// selects the built-in roster.
func NewFromYAMLFile(path string) (*InMemoryRepository, error) {
	if path == "" {
		return NewInMemory(DefaultRoster())
	}

	roster, err := LoadYAML(path)
	if err != nil {
		return nil, err
	}

	return NewInMemory(roster)
}
