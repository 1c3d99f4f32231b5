package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for flag variables
var touchDir bool

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var touchCmd = &cobra.Command{
	Use:   "touch <path>...",
	Short: "Create files or directories",
	Long: `Create each file, truncating it when it already exists, together with any
missing parent directories. With --dir, create directories instead; a path naming an
existing file creates that file's directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTouch,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(touchCmd)

	touchCmd.Flags().BoolVarP(&touchDir, "dir", "d", false, "Create directories instead of files")
}

func runTouch(cmd *cobra.Command, args []string) error {
	helper := application.Helper

	for _, path := range args {
		if touchDir {
			if _, err := helper.CreateDirectory(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Directory ready: %s\n", path)
			continue
		}

		if err := helper.CreateFileWithoutStream(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "File created: %s\n", path)
	}

	return nil
}
