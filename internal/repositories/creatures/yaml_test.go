package creatures_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tw-simulator/internal/errors"
	"github.com/KirkDiggler/tw-simulator/internal/repositories/creatures"
)

func TestDefaultRoster(t *testing.T) {
	roster := creatures.DefaultRoster()
	require.Len(t, roster, 9)

	ids := make([]string, len(roster))
	for i, c := range roster {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{
		"appleboss", "abysshell", "abyssamas", "eclipse1", "eclipse2",
		"eclipse3", "siokanboss", "odein", "kimaira",
	}, ids)

	apple := roster[0]
	assert.Equal(t, "りんごボス", apple.Name)
	assert.Equal(t, int32(30), apple.Level)
	assert.Equal(t, 1000.0, apple.HP)
	assert.Equal(t, 1500.0, apple.Defense)
	assert.Equal(t, 7200.0, apple.FixedDefense)
	assert.Equal(t, 0.48, apple.CutRate)
	assert.Equal(t, 120.0, apple.ElementResistance)

	kimaira := roster[8]
	assert.Equal(t, 0.993, kimaira.CutRate)
	assert.Equal(t, 2985.0, kimaira.FixedDefense)
}

func TestParseYAML(t *testing.T) {
	roster, err := creatures.ParseYAML([]byte(`
creatures:
  - id: slime
    name: Slime
    hp: 40
    cut_rate: 0.1
`))
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "slime", roster[0].ID)
	assert.Equal(t, 0.1, roster[0].CutRate)

	_, err = creatures.ParseYAML([]byte("creatures: [unclosed"))
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = creatures.ParseYAML([]byte("creatures: []"))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestParseYAMLRejectsNonFiniteStats(t *testing.T) {
	for _, value := range []string{".inf", "-.inf", ".nan"} {
		t.Run(value, func(t *testing.T) {
			_, err := creatures.ParseYAML([]byte(`
creatures:
  - id: wall
    name: Wall
    hp: 100
    defense: ` + value + `
`))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), "creatures[wall].defense: must be a finite number")
		})
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("creatures:\n  - {id: bat, name: Bat, hp: 12}\n"), 0o600))

	repo, err := creatures.NewFromYAMLFile(path)
	require.NoError(t, err)
	out, err := repo.List(t.Context(), &creatures.ListInput{})
	require.NoError(t, err)
	require.Len(t, out.Creatures, 1)
	assert.Equal(t, "bat", out.Creatures[0].ID)

	_, err = creatures.LoadYAML(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.IsNotFound(err))
}

func TestNewFromYAMLFileDefaults(t *testing.T) {
	repo, err := creatures.NewFromYAMLFile("")
	require.NoError(t, err)

	out, err := repo.List(t.Context(), &creatures.ListInput{})
	require.NoError(t, err)
	assert.Len(t, out.Creatures, 9)
}
