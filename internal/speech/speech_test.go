package speech

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleListen(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("I'm vegetarian\n   \nshow me the menu\n"), &out)
	ctx := context.Background()

	text, err := c.Listen(ctx)
	require.NoError(t, err)
	assert.Equal(t, "I'm vegetarian", text)

	_, err = c.Listen(ctx)
	assert.ErrorIs(t, err, ErrNoSpeech)

	text, err = c.Listen(ctx)
	require.NoError(t, err)
	assert.Equal(t, "show me the menu", text)

	_, err = c.Listen(ctx)
	assert.ErrorIs(t, err, io.EOF)
	_, err = c.Listen(ctx)
	assert.ErrorIs(t, err, io.EOF, "EOF is sticky")

	assert.Contains(t, out.String(), "Listening...")
}

func TestConsoleListenCancelled(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()

	c := NewConsole(reader, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Listen(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsoleSpeak(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	require.NoError(t, c.Speak(context.Background(), "Goodbye!"))
	assert.Equal(t, "🔊 Goodbye!\n", out.String())
}

func TestNoOp(t *testing.T) {
	assert.NoError(t, NoOp{}.Speak(context.Background(), "anything"))
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("command adapter tests use POSIX utilities")
	}
	for _, bin := range []string{"echo", "true", "false", "sleep"} {
		if _, err := exec.LookPath(bin); err != nil {
			t.Skipf("%s not available", bin)
		}
	}
}

func TestCommandListen(t *testing.T) {
	requireShell(t)

	c, err := NewCommand("echo add salad to order", "true", time.Second)
	require.NoError(t, err)

	text, err := c.Listen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "add salad to order", text)
	assert.NoError(t, c.Speak(context.Background(), "Salad has been added"))
}

func TestCommandListenNothingRecognized(t *testing.T) {
	requireShell(t)

	c, err := NewCommand("true", "", time.Second)
	require.NoError(t, err)

	_, err = c.Listen(context.Background())
	assert.ErrorIs(t, err, ErrNoSpeech)
	assert.NoError(t, c.Speak(context.Background(), "ignored without a speak command"))
}

func TestCommandFailures(t *testing.T) {
	requireShell(t)

	c, err := NewCommand("false", "false", time.Second)
	require.NoError(t, err)

	_, err = c.Listen(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoSpeech))

	assert.Error(t, c.Speak(context.Background(), "hello"))
}

func TestCommandTimeout(t *testing.T) {
	requireShell(t)

	c, err := NewCommand("sleep 5", "", 50*time.Millisecond)
	require.NoError(t, err)

	start := time.Now()
	_, err = c.Listen(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestNewCommandRequiresACommand(t *testing.T) {
	_, err := NewCommand("", "  ", time.Second)
	assert.Error(t, err)

	c, err := NewCommand("", "espeak", time.Second)
	require.NoError(t, err)
	_, err = c.Listen(context.Background())
	assert.Error(t, err)
}
