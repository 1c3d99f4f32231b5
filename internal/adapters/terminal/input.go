package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInteractive is returned when text would have to be typed at a terminal.
var ErrInteractive = errors.New("no text given and standard input is a terminal")

// Adapter reads text piped to standard input.
type Adapter struct {
	stdin io.Reader
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader) *Adapter {
	return &Adapter{
		stdin: stdin,
	}
}

// ReadText reads all of standard input. It refuses to block on an interactive terminal.
func (a *Adapter) ReadText(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if a.IsInteractive() {
		return "", ErrInteractive
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}

	return string(data), nil
}

// IsInteractive returns true if the input is an interactive terminal.
func (a *Adapter) IsInteractive() bool {
	if file, ok := a.stdin.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
