package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fshelp/internal/logging"
)

//nolint:gochecknoglobals // Cobra CLI pattern for flag variables
var (
	catRaw   bool
	catLines bool
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print a text file",
	Long: `Print a text file with its lines joined by newlines. --raw glues the lines
together with no separator, --lines numbers every line.`,
	Args: cobra.ExactArgs(1),
	RunE: runCat,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(catCmd)

	catCmd.Flags().BoolVar(&catRaw, "raw", false, "Concatenate lines without separators")
	catCmd.Flags().BoolVar(&catLines, "lines", false, "Print numbered lines")
	catCmd.MarkFlagsMutuallyExclusive("raw", "lines")
}

func runCat(cmd *cobra.Command, args []string) error {
	path := args[0]
	helper := application.Helper
	logger := logging.WithPath(logging.WithOperation(application.Logger, "cat"), path)
	out := cmd.OutOrStdout()

	switch {
	case catLines:
		lines, err := helper.GetFileAsLines(path)
		if err != nil {
			return err
		}
		for i, line := range lines {
			fmt.Fprintf(out, "%4d  %s\n", i+1, line)
		}
		logger.DebugContext(cmd.Context(), "Printed lines", "count", len(lines))
	case catRaw:
		text, err := helper.GetFileAsString(path)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	default:
		text, err := helper.GetFileAsStringFormatted(path)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	}

	return nil
}
