package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	require.NoError(t, Init(true))
	assert.NotNil(t, GetSugaredLogger())
	assert.True(t, GetSugaredLogger().Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init(false))
	assert.False(t, GetSugaredLogger().Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Use(zap.New(core))

	Named("separation").Infow("separated", "rows", 24)
	Sync()

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "separation", entries[0].LoggerName)
	assert.Equal(t, "separated", entries[0].Message)
	assert.Equal(t, int64(24), entries[0].ContextMap()["rows"])
}
