package logger

import (
	"os"
	"path/filepath"
	"testing"

	"orderbot/src/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Cleanup(func() {
		Logger = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})
}

func TestInitLoggerWritesJSONToFile(t *testing.T) {
	resetLogger(t)
	path := filepath.Join(t.TempDir(), "logs", "orderbot.log")

	err := InitLogger(model.LogConfig{
		Level:      "info",
		Format:     "json",
		Output:     "file",
		FilePath:   path,
		TimeFormat: "unix",
	})
	require.NoError(t, err)

	Info().Str("session_id", "abc").Msg("turn handled")
	Debug().Msg("hidden at info level")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session_id":"abc"`)
	assert.Contains(t, string(data), `"service":"orderbot"`)
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestInitLoggerRejectsBadConfig(t *testing.T) {
	resetLogger(t)

	assert.Error(t, InitLogger(model.LogConfig{Level: "loud", Output: "stderr"}))
	assert.Error(t, InitLogger(model.LogConfig{Level: "info", Output: "printer"}))
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	resetLogger(t)
	Logger = zerolog.Nop()

	assert.NotPanics(t, func() {
		Info().Msg("nothing")
		Warn().Msg("nothing")
		Error().Msg("nothing")
	})
	assert.Equal(t, zerolog.Disabled, GetLogger().GetLevel())
}
