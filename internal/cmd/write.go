package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fshelp/internal/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern for flag variables
var (
	writeAppend bool
	writeCreate bool
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var writeCmd = &cobra.Command{
	Use:   "write <path> [text]",
	Short: "Overwrite or append text to a file",
	Long: `Replace the contents of an existing file with text, or append it with --append.
Without a text argument the text is read from standard input, which must not be a
terminal. The file must exist unless --create is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWrite,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(writeCmd)

	writeCmd.Flags().BoolVarP(&writeAppend, "append", "a", false, "Append instead of overwriting")
	writeCmd.Flags().BoolVarP(&writeCreate, "create", "c", false, "Create the file and its directories when missing")
}

func runWrite(cmd *cobra.Command, args []string) error {
	path := args[0]
	helper := application.Helper

	var text string
	if len(args) == 2 {
		text = args[1]
	} else {
		input, err := application.Input.ReadText(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to read text: %w", err)
		}
		text = input
	}

	if writeCreate && !helper.FileExists(path) {
		file, err := helper.OpenOrCreate(path)
		if err != nil {
			return err
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close file %s: %w", path, err)
		}
	}

	var err error
	if writeAppend {
		err = helper.AppendToFile(path, text)
	} else {
		err = helper.OverwriteFile(path, text)
	}
	if err != nil {
		if errors.IsNotFound(err) {
			return fmt.Errorf("%w (use --create to create it)", err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(text), path)
	return nil
}
