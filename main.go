package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"orderbot/internal/core"
	"orderbot/internal/menu"
	"orderbot/internal/session"
	"orderbot/internal/speech"
	"orderbot/src"
	"orderbot/src/conversation"
	"orderbot/src/logger"
	"orderbot/src/model"
)

func main() {
	// Load environment variables from .env file (optional)
	if err := src.LoadEnvFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	config, err := src.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitLogger(config.LogConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := menu.Load(config.MenuConfig.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", config.MenuConfig.Path).Msg("Failed to load menu")
	}
	logger.Info().Int("items", m.Len()).Str("path", config.MenuConfig.Path).Msg("Menu loaded")

	interp := core.NewInterpreter(m)
	for _, line := range interp.Describe() {
		logger.Debug().Msg("Rule " + line)
	}

	listener, speaker, err := newSpeech(config.SpeechConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up speech")
	}

	opts := []session.Option{}
	if _, ok := speaker.(*speech.Console); ok {
		// the console speaker already prints every prompt and response
		opts = append(opts, session.WithEcho(false))
	}
	var transcripts *conversation.Service
	if config.TranscriptConfig.Enabled {
		repo, closeRepo, err := newTranscriptRepository(ctx, config.TranscriptConfig)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect transcript store")
		}
		defer closeRepo()
		transcripts = conversation.NewService(repo)
		opts = append(opts, session.WithTranscripts(transcripts))
	}

	loop := session.New(interp, listener, speaker, opts...)
	if err := loop.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Session ended with error")
		return
	}

	if transcripts != nil {
		strategy := conversation.NewRecentTurnsStrategy(config.TranscriptConfig.MaxTurns)
		recap, err := transcripts.Recap(context.WithoutCancel(ctx), loop.Session().ID, strategy)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load transcript")
			return
		}
		logger.Debug().Str("session_id", loop.Session().ID).Msg("Transcript\n" + recap)
	}
}

func newSpeech(cfg model.SpeechConfig) (speech.Listener, speech.Speaker, error) {
	switch strings.ToLower(cfg.Mode) {
	case "command":
		cmd, err := speech.NewCommand(cfg.ListenCommand, cfg.SpeakCommand, cfg.Timeout)
		if err != nil {
			return nil, nil, err
		}
		if !cfg.Voice {
			return cmd, speech.NoOp{}, nil
		}
		return cmd, cmd, nil
	default:
		console := speech.NewConsole(os.Stdin, os.Stdout)
		if !cfg.Voice {
			return console, speech.NoOp{}, nil
		}
		return console, console, nil
	}
}

// newTranscriptRepository uses Redis when a URL is configured and process
// memory otherwise
func newTranscriptRepository(ctx context.Context, cfg model.TranscriptConfig) (conversation.Repository, func(), error) {
	if cfg.RedisURL == "" && os.Getenv("REDIS_URL") == "" {
		logger.Warn().Msg("No Redis URL configured, keeping transcripts in memory")
		return conversation.NewMemoryRepository(), func() {}, nil
	}

	repo, err := conversation.NewRedisRepository(ctx, cfg.RedisURL, cfg.TTL)
	if err != nil {
		return nil, nil, err
	}
	return repo, func() { repo.Close() }, nil
}
