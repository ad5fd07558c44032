// Package speech defines the speech capture and output collaborators used by
// the session loop, with console, external-command and no-op implementations.
package speech

import (
	"context"
	"errors"
)

// ErrNoSpeech means audio was captured but nothing intelligible was recognized.
// The session loop re-prompts and keeps going.
var ErrNoSpeech = errors.New("no speech recognized")

// Listener turns the user's next utterance into text.
// It returns ErrNoSpeech for silence or unintelligible input, io.EOF when the
// input source is exhausted, and ctx.Err() when cancelled.
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

// Speaker says text out loud (or wherever the implementation sends it)
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Compile-time interface checks.
var (
	_ Listener = (*Console)(nil)
	_ Speaker  = (*Console)(nil)
	_ Listener = (*Command)(nil)
	_ Speaker  = (*Command)(nil)
	_ Speaker  = NoOp{}
)

// NoOp is a speaker that does nothing. Used when voice output is disabled.
type NoOp struct{}

func (NoOp) Speak(ctx context.Context, text string) error {
	return nil
}
