package speech

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Console reads typed utterances line by line and prints spoken output.
// It stands in for a microphone and TTS engine during development.
type Console struct {
	lines  chan lineResult
	out    io.Writer
	prompt string
}

type lineResult struct {
	text string
	err  error
}

// NewConsole reads utterances from in and writes speech to out.
// The reader goroutine lives until in is exhausted.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{
		lines:  make(chan lineResult),
		out:    out,
		prompt: "Listening...",
	}
	go c.read(in)
	return c
}

func (c *Console) read(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		c.lines <- lineResult{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	// Keep reporting the terminal error to every later Listen call
	for {
		c.lines <- lineResult{err: err}
	}
}

// Listen blocks until a line is typed, the input ends, or ctx is done.
// A blank line is reported as ErrNoSpeech.
func (c *Console) Listen(ctx context.Context) (string, error) {
	if c.prompt != "" {
		fmt.Fprintln(c.out, c.prompt)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-c.lines:
		if line.err != nil {
			return "", line.err
		}
		text := strings.TrimSpace(line.text)
		if text == "" {
			return "", ErrNoSpeech
		}
		return text, nil
	}
}

// Speak prints the text
func (c *Console) Speak(ctx context.Context, text string) error {
	_, err := fmt.Fprintf(c.out, "🔊 %s\n", text)
	return err
}
