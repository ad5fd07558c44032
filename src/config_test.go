package src

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.LogConfig.Level)
	assert.Equal(t, "console", config.LogConfig.Format)
	assert.Equal(t, "menu_config.json", config.MenuConfig.Path)
	assert.Equal(t, "console", config.SpeechConfig.Mode)
	assert.True(t, config.SpeechConfig.Voice)
	assert.Equal(t, 30*time.Second, config.SpeechConfig.Timeout)
	assert.False(t, config.TranscriptConfig.Enabled)
	assert.Equal(t, time.Hour, config.TranscriptConfig.TTL)
	assert.Equal(t, 10, config.TranscriptConfig.MaxTurns)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MENU_PATH", "menus/dinner.yaml")
	t.Setenv("SPEECH_MODE", "command")
	t.Setenv("SPEECH_LISTEN_COMMAND", "whisper-listen")
	t.Setenv("SPEECH_SPEAK_COMMAND", "espeak")
	t.Setenv("SPEECH_TIMEOUT", "5s")
	t.Setenv("TRANSCRIPT_ENABLED", "true")
	t.Setenv("TRANSCRIPT_REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("TRANSCRIPT_TTL", "15m")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogConfig.Level)
	assert.Equal(t, "menus/dinner.yaml", config.MenuConfig.Path)
	assert.Equal(t, "whisper-listen", config.SpeechConfig.ListenCommand)
	assert.Equal(t, "espeak", config.SpeechConfig.SpeakCommand)
	assert.Equal(t, 5*time.Second, config.SpeechConfig.Timeout)
	assert.True(t, config.TranscriptConfig.Enabled)
	assert.Equal(t, "redis://localhost:6379/2", config.TranscriptConfig.RedisURL)
	assert.Equal(t, 15*time.Minute, config.TranscriptConfig.TTL)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown mode", map[string]string{"SPEECH_MODE": "telepathy"}},
		{"command without listener", map[string]string{"SPEECH_MODE": "command"}},
		{"command without speaker", map[string]string{"SPEECH_MODE": "command", "SPEECH_LISTEN_COMMAND": "listen"}},
		{"zero timeout", map[string]string{"SPEECH_TIMEOUT": "0s"}},
		{"bad duration", map[string]string{"SPEECH_TIMEOUT": "soon"}},
		{"bad max turns", map[string]string{"TRANSCRIPT_ENABLED": "true", "TRANSCRIPT_MAX_TURNS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestCommandModeWithoutVoice(t *testing.T) {
	t.Setenv("SPEECH_MODE", "command")
	t.Setenv("SPEECH_LISTEN_COMMAND", "listen")
	t.Setenv("SPEECH_VOICE", "false")

	_, err := LoadConfig()
	assert.NoError(t, err)
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("ORDERBOT_TEST_VALUE=from-file\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("ORDERBOT_TEST_VALUE") })

	require.NoError(t, LoadEnvFiles(filepath.Join(dir, "missing.env"), envFile))
	assert.Equal(t, "from-file", os.Getenv("ORDERBOT_TEST_VALUE"))
}
