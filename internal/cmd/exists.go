package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fshelp/internal/errors"
	"fshelp/pkg/fshelp"
)

//nolint:gochecknoglobals // Cobra CLI pattern for flag variables
var existsDir bool

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var existsCmd = &cobra.Command{
	Use:   "exists <path>...",
	Short: "Check whether files or directories exist",
	Long: `Report whether each path is an existing file, or with --dir an existing
directory. A path naming an existing file counts as its directory for --dir.
Exits with a non-zero status when any path is missing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExists,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(existsCmd)

	existsCmd.Flags().BoolVarP(&existsDir, "dir", "d", false, "Check for directories instead of files")
}

func runExists(cmd *cobra.Command, args []string) error {
	helper := application.Helper
	present := color.New(color.FgGreen).SprintFunc()
	absent := color.New(color.FgRed).SprintFunc()

	var missing []error
	for _, path := range args {
		var ok bool
		if existsDir {
			ok = helper.DirectoryExists(path)
		} else {
			ok = helper.FileExists(path)
		}

		if ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", present("exists "), path)
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", absent("missing"), path)
		missing = append(missing, &fshelp.NotFoundError{Op: "exists", Path: path})
	}

	err := errors.Join(missing...)
	if err != nil {
		application.Logger.DebugContext(cmd.Context(), "Paths missing", "paths", errors.MissingPaths(err))
	}
	return err
}
