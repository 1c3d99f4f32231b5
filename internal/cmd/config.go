package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fshelp/internal/services/config"
	"fshelp/pkg/fshelp"
)

const configFilePermissions = 0o600

//nolint:gochecknoglobals // Cobra CLI pattern for flag variables
var configForce bool

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the fshelp configuration file",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	Long: `Write the default settings to the configuration file, creating its directory
when needed. An existing file is only replaced with --force.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Replace an existing configuration file")
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.NewProvider().GetConfigPath()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	return writeDefaultConfig(cmd, fshelp.NewOS(application.Logger), path)
}

// writeDefaultConfig always targets the real file system, whatever the
// configured helper file system is.
func writeDefaultConfig(cmd *cobra.Command, helper *fshelp.Helper, path string) error {
	if helper.FileExists(path) && !configForce {
		return fmt.Errorf("configuration file %s already exists (use --force to replace it)", path)
	}

	data, err := config.DefaultSettings().Marshal()
	if err != nil {
		return err
	}

	file, err := helper.OpenOrCreate(path)
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close configuration file: %w", err)
	}

	if err := helper.Fs().Chmod(path, configFilePermissions); err != nil {
		return fmt.Errorf("failed to restrict configuration file permissions: %w", err)
	}

	if err := helper.OverwriteFile(path, string(data)); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}
