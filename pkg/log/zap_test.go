package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newWithCore(core)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	l.Infof(ctx, "created %d tasks", 2)
	l.Warn(context.Background(), "no request id")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "created 2 tasks", entries[0].Message)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestLevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := newWithCore(core)

	l.Debug(context.Background(), "hidden")
	l.Error(context.Background(), "shown")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestInitAndNop(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDebug, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "warn", Mode: ModeProduction, Encoding: EncodingJSON},
		{Level: "nonsense"},
	} {
		assert.NotNil(t, Init(cfg))
	}

	assert.NotPanics(t, func() { NewNop().Info(context.Background(), "discarded") })
}
