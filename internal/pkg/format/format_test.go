package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/tw-simulator/internal/pkg/format"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, "123", format.Number(123))
	assert.Equal(t, "1,000", format.Number(1000))
	assert.Equal(t, "1,000,000", format.Number(1000000))
}

func TestFloat(t *testing.T) {
	assert.Equal(t, "123.46", format.Float(123.456, 2))
	assert.Equal(t, "123.5", format.Float(123.456, 1))
	assert.Equal(t, "123", format.Float(123.0, 0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.34%", format.Percent(0.1234, 2))
	assert.Equal(t, "10%", format.Percent(0.1, 0))
}
