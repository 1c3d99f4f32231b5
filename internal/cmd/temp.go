package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fshelp/pkg/fshelp"
)

//nolint:gochecknoglobals // Cobra CLI pattern for flag variables
var (
	tempFile   bool
	tempRandom bool
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var tempCmd = &cobra.Command{
	Use:   "temp",
	Short: "Print temporary paths",
	Long: `Print the temporary directory. --file creates a new empty temporary file and
prints its path; --random prints a random file or directory name.`,
	Args: cobra.NoArgs,
	RunE: runTemp,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(tempCmd)

	tempCmd.Flags().BoolVarP(&tempFile, "file", "f", false, "Create a new temporary file")
	tempCmd.Flags().BoolVarP(&tempRandom, "random", "r", false, "Print a random path segment")
	tempCmd.MarkFlagsMutuallyExclusive("file", "random")
}

func runTemp(cmd *cobra.Command, _ []string) error {
	switch {
	case tempFile:
		name, err := application.Helper.NewTemporaryFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	case tempRandom:
		fmt.Fprintln(cmd.OutOrStdout(), fshelp.RandomPathSegment())
	default:
		fmt.Fprintln(cmd.OutOrStdout(), fshelp.TemporaryDirectoryPath())
	}

	return nil
}
