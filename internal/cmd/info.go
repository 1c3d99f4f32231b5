package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for flag variables
var infoOutput string

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show well-known directories",
	Long: `Show the desktop, documents, pictures, music and videos directories of the
current user, the Windows and Administrative Tools folders, and the running program.
Values set under "directories" in the configuration take precedence.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoOutput, "output", "o", outputText, "Output format: text, yaml or json")
}

func runInfo(cmd *cobra.Command, _ []string) error {
	dirs := application.Directories

	return render(cmd.OutOrStdout(), infoOutput, dirs, func(w io.Writer) error {
		for _, field := range dirs.Fields() {
			fmt.Fprintf(w, "%-12s %s\n", field[0]+":", orDash(field[1]))
		}
		return nil
	})
}
