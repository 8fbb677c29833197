package analyzer_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/tw-simulator/internal/analyzer"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
)

func pngDataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\nfake"))
}

func TestCapability(t *testing.T) {
	a, ok := analyzer.Unavailable().Analyzer()
	assert.False(t, ok)
	assert.Nil(t, a)
	assert.False(t, analyzer.Available(nil).IsAvailable())

	stub := analyzer.NewStub()
	a, ok = analyzer.Available(stub).Analyzer()
	assert.True(t, ok)
	assert.Same(t, stub, a)
}

func TestStubAnalyzer(t *testing.T) {
	set, err := analyzer.NewStub().Analyze(context.Background(), pngDataURL())
	require.NoError(t, err)
	require.NotNil(t, set.Weapon)
	assert.Equal(t, "テスト武器", set.Weapon.Name)
	assert.Equal(t, 100.0, set.Weapon.Attack)
	assert.Equal(t, 20.0, set.Weapon.ElementValue)
	assert.Nil(t, set.Armor)
}

func TestStubAnalyzerRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		errMsg string
	}{
		{name: "empty", input: "", errMsg: "required"},
		{name: "not a data url", input: "https://example.com/a.png", errMsg: "data:image"},
		{name: "wrong media type", input: "data:text/plain;base64,aGVsbG8=", errMsg: "data:image"},
		{name: "bad base64", input: "data:image/png;base64,!!!", errMsg: "base64"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := analyzer.NewStub().Analyze(context.Background(), tc.input)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestStubAnalyzerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := analyzer.NewStub().Analyze(ctx, pngDataURL())
	require.Error(t, err)
	assert.Equal(t, errors.CodeCanceled, errors.GetCode(err))
	assert.Equal(t, codes.Canceled, status.Code(errors.ToGRPCError(err)))
}

func TestStubAnalyzerDeadlineExceeded(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), -time.Second)
	defer cancel()

	_, err := analyzer.NewStub().Analyze(ctx, pngDataURL())
	require.Error(t, err)
	assert.Equal(t, errors.CodeDeadlineExceeded, errors.GetCode(err))
}
