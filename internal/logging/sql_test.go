package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogSQLQuery(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	LogSQLQuery(zap.New(core), `
		SELECT id, name
		FROM cuisines
		WHERE id = $1
	`, 5)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "SELECT id, name FROM cuisines WHERE id = $1", entries[0].Message)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
}
