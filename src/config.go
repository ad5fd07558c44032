package src

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"orderbot/src/model"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogConfig        model.LogConfig        `envconfig:"LOG"`
	MenuConfig       model.MenuConfig       `envconfig:"MENU"`
	SpeechConfig     model.SpeechConfig     `envconfig:"SPEECH"`
	TranscriptConfig model.TranscriptConfig `envconfig:"TRANSCRIPT"`
}

// LoadEnvFiles loads .env style files into the process environment.
// Missing files are skipped; variables already set are not overridden.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
	}
	return nil
}

func LoadConfig() (*Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks combinations envconfig cannot express
func (c *Config) Validate() error {
	switch strings.ToLower(c.SpeechConfig.Mode) {
	case "console":
	case "command":
		if c.SpeechConfig.ListenCommand == "" {
			return fmt.Errorf("SPEECH_LISTEN_COMMAND is required in command mode")
		}
		if c.SpeechConfig.Voice && c.SpeechConfig.SpeakCommand == "" {
			return fmt.Errorf("SPEECH_SPEAK_COMMAND is required in command mode when SPEECH_VOICE is on")
		}
	default:
		return fmt.Errorf("invalid SPEECH_MODE '%s'", c.SpeechConfig.Mode)
	}

	if c.SpeechConfig.Timeout <= 0 {
		return fmt.Errorf("SPEECH_TIMEOUT must be positive")
	}

	if c.MenuConfig.Path == "" {
		return fmt.Errorf("MENU_PATH is required")
	}

	if c.TranscriptConfig.Enabled && c.TranscriptConfig.MaxTurns <= 0 {
		return fmt.Errorf("TRANSCRIPT_MAX_TURNS must be positive")
	}

	return nil
}
