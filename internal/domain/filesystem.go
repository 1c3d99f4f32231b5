package domain

import (
	"context"
)

// FileSystemConfig selects the file system the helpers operate on.
type FileSystemConfig struct {
	// Kind is "os" or "memory".
	Kind string `mapstructure:"kind" yaml:"kind"`
	// Root confines every path beneath this directory when set.
	Root string `mapstructure:"root" yaml:"root"`
	// ReadOnly rejects every mutating operation.
	ReadOnly bool `mapstructure:"readonly" yaml:"readonly"`
}

// TextReader reads text piped to the process.
type TextReader interface {
	// ReadText returns everything available on the input.
	ReadText(ctx context.Context) (string, error)

	// IsInteractive reports whether the input is a terminal.
	IsInteractive() bool
}
