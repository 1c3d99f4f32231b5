package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fshelp/internal/app"
	"fshelp/internal/logging"
	"fshelp/internal/services/config"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string
	verbose bool

	application *app.App
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "fshelp",
	Short: "Convenience helpers for files, directories and paths",
	Long: `fshelp opens, creates, reads and writes text files, checks whether
paths exist, takes paths apart and reports well-known directories.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/fshelp/config.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().String("fs", "os", "File system: os or memory")
	rootCmd.PersistentFlags().String("root", "", "Confine every path beneath this directory")
	rootCmd.PersistentFlags().Bool("read-only", false, "Reject every operation that would modify the file system")
}

func initApp(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var err error
	application, err = newApp(ctx, cmd.Flags(), cmd.InOrStdin())
	return err
}

func newApp(ctx context.Context, flags *pflag.FlagSet, stdin io.Reader) (*app.App, error) {
	path := cfgFile
	if path == "" {
		defaultPath, err := config.NewProvider().GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	bootstrapLevel := slog.LevelWarn
	if verbose {
		bootstrapLevel = slog.LevelDebug
	}
	bootstrap := logging.NewLogger(logging.Config{Level: bootstrapLevel, Format: "text", Output: os.Stderr})

	settings, err := config.NewLoader(afero.NewOsFs(), bootstrap).Load(ctx, path, flags)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(settings.Log.Level)
	if err != nil {
		return nil, err
	}

	return app.NewApp(ctx,
		app.WithLogLevel(level),
		app.WithLogFormat(settings.Log.Format),
		app.WithVerbose(verbose),
		app.WithFileSystem(settings.FS),
		app.WithDirectories(settings.Directories),
		app.WithStdin(stdin),
	)
}
