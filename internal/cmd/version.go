package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version, commit, build date, and build information for fshelp.`,
	// Version output must not depend on a loadable configuration.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fshelp version %s\n", versionInfo.Version)
		fmt.Fprintf(out, "  commit: %s\n", versionInfo.Commit)
		fmt.Fprintf(out, "  built: %s\n", versionInfo.Date)
		fmt.Fprintf(out, "  built by: %s\n", versionInfo.BuiltBy)
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}
