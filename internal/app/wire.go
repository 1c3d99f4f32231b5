package app

import (
	"context"
	"fmt"
	"os"

	"fshelp/internal/adapters/filesystem"
	"fshelp/internal/adapters/terminal"
	"fshelp/internal/logging"
	"fshelp/pkg/fshelp"
	"fshelp/pkg/fshelp/info"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	// Create logger.
	output := cfg.LogOutput
	if output == nil {
		output = os.Stderr
	}
	logger := logging.NewLogger(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: output,
	})

	// Create the file system and the helper bound to it.
	fs, err := filesystem.New(cfg.FileSystem)
	if err != nil {
		return nil, err
	}
	helper := fshelp.New(fs, logger,
		fshelp.WithOSPaths(filesystem.ResolvesFromWorkingDir(cfg.FileSystem)))

	// Resolve well-known directories once.
	dirs, err := info.Resolve(cfg.Directories)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directories: %w", err)
	}

	// Create stdin reader.
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	input := terminal.NewAdapter(stdin)

	logger.DebugContext(ctx, "Initializing fshelp with configuration",
		"logLevel", cfg.LogLevel.String(),
		"verbose", cfg.Verbose,
		"fsKind", cfg.FileSystem.Kind,
		"fsRoot", cfg.FileSystem.Root,
		"readOnly", cfg.FileSystem.ReadOnly)

	return &App{
		Helper:      helper,
		Directories: dirs,
		Input:       input,
		Logger:      logger,
		Config:      cfg,
	}, nil
}
