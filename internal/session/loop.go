// Package session runs one spoken ordering conversation: it greets the user,
// then listens, interprets and answers until the user says goodbye or the
// conversation is interrupted.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"orderbot/internal/core"
	"orderbot/internal/speech"
	"orderbot/src/conversation"
	"orderbot/src/logger"
)

const (
	msgNotCaught   = "Sorry, I didn't catch that. Please repeat."
	msgTurnFailed  = "An error occurred. Please try again."
	msgInterrupted = "Goodbye!"
)

// farewellTimeout bounds the goodbye spoken after the context is cancelled
const farewellTimeout = 5 * time.Second

// Pause after a failed turn, doubled per consecutive failure up to the max.
const (
	defaultRetryDelay    = 250 * time.Millisecond
	defaultMaxRetryDelay = 5 * time.Second
)

// Loop drives a single Session through the interpreter
type Loop struct {
	interp   *core.Interpreter
	listener speech.Listener
	speaker  speech.Speaker

	session     *core.Session
	transcripts *conversation.Service
	out         io.Writer
	echo        bool
	now         func() time.Time

	retryDelay    time.Duration
	maxRetryDelay time.Duration
	wait          func(ctx context.Context, d time.Duration)
}

type Option func(*Loop)

// WithOutput sets where utterances and responses are echoed (default stdout)
func WithOutput(w io.Writer) Option {
	return func(l *Loop) { l.out = w }
}

// WithEcho controls whether lines the speaker also says are printed.
// Turn it off when the speaker itself writes to the console.
func WithEcho(on bool) Option {
	return func(l *Loop) { l.echo = on }
}

// WithRetryDelay sets the pause after a failed turn. The pause doubles for
// each consecutive failure, capped at max. Zero disables it.
func WithRetryDelay(base, max time.Duration) Option {
	return func(l *Loop) {
		l.retryDelay = base
		l.maxRetryDelay = max
	}
}

// WithClock overrides the clock used for the greeting
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

// WithTranscripts records every interpreted turn to svc
func WithTranscripts(svc *conversation.Service) Option {
	return func(l *Loop) { l.transcripts = svc }
}

// WithSession runs the loop on an existing session instead of a fresh one
func WithSession(s *core.Session) Option {
	return func(l *Loop) { l.session = s }
}

func New(interp *core.Interpreter, listener speech.Listener, speaker speech.Speaker, opts ...Option) *Loop {
	l := &Loop{
		interp:   interp,
		listener: listener,
		speaker:  speaker,
		out:      os.Stdout,
		echo:     true,
		now:      time.Now,

		retryDelay:    defaultRetryDelay,
		maxRetryDelay: defaultMaxRetryDelay,
		wait:          sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.session == nil {
		l.session = core.NewSession()
	}
	if l.speaker == nil {
		l.speaker = speech.NoOp{}
	}
	return l
}

// Session returns the conversation state driven by the loop
func (l *Loop) Session() *core.Session {
	return l.session
}

// Run greets the user and processes turns until the farewell rule fires,
// ctx is cancelled or the listener reports io.EOF. Turn failures are
// reported and the loop continues; Run itself only returns nil.
func (l *Loop) Run(ctx context.Context) error {
	logger.Info().Str("session_id", l.session.ID).Msg("Session started")

	greeting := Greeting(l.now())
	l.printf("%s Welcome to our restaurant. Speak now! (Press Ctrl+C to stop)\n", greeting)
	l.say(ctx, greeting+" "+welcomePrompt)

	failures := 0
	for {
		done, err := l.turn(ctx)
		if err == nil {
			failures = 0
		} else {
			switch {
			case l.interrupted(ctx, err):
				l.printf("\nExiting... Goodbye!\n")
				l.farewell(ctx)
				logger.Info().
					Str("session_id", l.session.ID).
					Dur("duration", time.Since(l.session.CreatedAt)).
					Msg("Session interrupted")
				return nil
			case errors.Is(err, speech.ErrNoSpeech):
				failures = 0
				l.printf("%s\n", msgNotCaught)
				l.say(ctx, msgNotCaught)
			default:
				failures++
				logger.Warn().Err(err).Str("session_id", l.session.ID).Int("consecutive", failures).Msg("Turn failed")
				fmt.Fprintf(l.out, "An error occurred: %v\n", err)
				l.say(ctx, msgTurnFailed)
				if !done {
					l.backoff(ctx, failures)
				}
			}
		}

		if done {
			logger.Info().
				Str("session_id", l.session.ID).
				Strs("order", l.session.Ledger.List()).
				Dur("duration", time.Since(l.session.CreatedAt)).
				Msg("Session finished")
			return nil
		}
	}
}

// turn handles one utterance. done reports that the conversation ended.
func (l *Loop) turn(ctx context.Context) (done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during turn: %v", r)
		}
	}()

	utterance, err := l.listener.Listen(ctx)
	if err != nil {
		return false, err
	}
	l.printf("You said: %s\n", utterance)

	result := l.interp.Process(l.session, utterance)
	l.printf("Response: %s\n", result.Response)

	if err := l.speaker.Speak(ctx, result.Response); err != nil {
		return result.Done, fmt.Errorf("failed to speak response: %w", err)
	}

	if l.transcripts != nil {
		if err := l.transcripts.RecordTurn(ctx, l.session.ID, utterance, result.Response); err != nil {
			return result.Done, fmt.Errorf("failed to record transcript: %w", err)
		}
	}

	return result.Done, nil
}

func (l *Loop) interrupted(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}

// say speaks text, logging failures. Used for prompts outside a turn.
func (l *Loop) say(ctx context.Context, text string) {
	if err := l.speaker.Speak(ctx, text); err != nil {
		logger.Warn().Err(err).Str("session_id", l.session.ID).Msg("Failed to speak")
	}
}

func (l *Loop) farewell(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), farewellTimeout)
	defer cancel()
	l.say(ctx, msgInterrupted)
}

// retryDelayFor returns the pause after the n-th consecutive failure
func (l *Loop) retryDelayFor(n int) time.Duration {
	if l.retryDelay <= 0 || n <= 0 {
		return 0
	}
	d := l.retryDelay
	for i := 1; i < n; i++ {
		d *= 2
		if l.maxRetryDelay > 0 && d >= l.maxRetryDelay {
			return l.maxRetryDelay
		}
	}
	if l.maxRetryDelay > 0 && d > l.maxRetryDelay {
		return l.maxRetryDelay
	}
	return d
}

func (l *Loop) backoff(ctx context.Context, failures int) {
	if d := l.retryDelayFor(failures); d > 0 {
		l.wait(ctx, d)
	}
}

func (l *Loop) printf(format string, args ...any) {
	if l.echo {
		fmt.Fprintf(l.out, format, args...)
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
