package app

import (
	"context"
	"io"
	"log/slog"

	"fshelp/internal/domain"
	"fshelp/pkg/fshelp"
	"fshelp/pkg/fshelp/info"
)

// App contains all application dependencies.
type App struct {
	// Helper library bound to the configured file system
	Helper *fshelp.Helper

	// Well-known directories, resolved once at start-up
	Directories info.Directories

	// I/O dependencies
	Input domain.TextReader

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	LogLevel    slog.Level
	LogFormat   string
	LogOutput   io.Writer
	Verbose     bool
	FileSystem  domain.FileSystemConfig
	Directories info.Directories
	Stdin       io.Reader
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level slog.Level) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithLogFormat selects "text" or "json" log output.
func WithLogFormat(format string) Option {
	return func(cfg *Config) {
		cfg.LogFormat = format
	}
}

// WithLogOutput redirects log output.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.LogOutput = w
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
	}
}

// WithFileSystem selects the file system the helpers operate on.
func WithFileSystem(fs domain.FileSystemConfig) Option {
	return func(cfg *Config) {
		cfg.FileSystem = fs
	}
}

// WithDirectories overrides resolved well-known directories.
func WithDirectories(dirs info.Directories) Option {
	return func(cfg *Config) {
		cfg.Directories = dirs
	}
}

// WithStdin sets the reader piped text is taken from.
func WithStdin(r io.Reader) Option {
	return func(cfg *Config) {
		cfg.Stdin = r
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		LogLevel:  slog.LevelInfo,
		LogFormat: "text",
		Verbose:   false,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
