package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Command delegates recognition and synthesis to external programs, e.g. a
// whisper.cpp wrapper that records one utterance and prints the transcript,
// and espeak / say for output.
type Command struct {
	listen  []string
	speak   []string
	timeout time.Duration
}

// NewCommand builds a Command adapter. Commands are split on whitespace;
// the text to speak is passed as the last argument of speakCmd.
func NewCommand(listenCmd, speakCmd string, timeout time.Duration) (*Command, error) {
	c := &Command{
		listen:  strings.Fields(listenCmd),
		speak:   strings.Fields(speakCmd),
		timeout: timeout,
	}
	if len(c.listen) == 0 && len(c.speak) == 0 {
		return nil, fmt.Errorf("at least one of listen or speak command is required")
	}
	return c, nil
}

// Listen runs the listen command and returns its trimmed stdout.
// Empty output means nothing was recognized.
func (c *Command) Listen(ctx context.Context) (string, error) {
	if len(c.listen) == 0 {
		return "", fmt.Errorf("no listen command configured")
	}

	out, err := c.run(ctx, c.listen)
	if err != nil {
		return "", fmt.Errorf("listen command failed: %w", err)
	}

	text := strings.TrimSpace(out)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}

// Speak runs the speak command with text as its final argument
func (c *Command) Speak(ctx context.Context, text string) error {
	if len(c.speak) == 0 {
		return nil
	}

	args := append(append([]string{}, c.speak...), text)
	if _, err := c.run(ctx, args); err != nil {
		return fmt.Errorf("speak command failed: %w", err)
	}
	return nil
}

func (c *Command) run(ctx context.Context, args []string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Surface cancellation as-is so callers can tell an interrupt from a failure
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return stdout.String(), nil
}
