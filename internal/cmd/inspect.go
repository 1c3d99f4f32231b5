package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"fshelp/internal/domain"
	"fshelp/pkg/fshelp"
)

//nolint:gochecknoglobals // Cobra CLI pattern for flag variables
var inspectOutput string

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var inspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Take a path apart",
	Long: `Show the parent directory, name, extension, absolute path and root of a path,
along with whether it exists and its size. Parts that depend on the file existing
are left out when it does not.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", outputText, "Output format: text, yaml or json")
}

func runInspect(cmd *cobra.Command, args []string) error {
	report, err := inspectPath(application.Helper, args[0])
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), inspectOutput, report, func(w io.Writer) error {
		fmt.Fprintf(w, "Path:         %s\n", report.Path)
		fmt.Fprintf(w, "Parent:       %s\n", report.Parent)
		fmt.Fprintf(w, "File exists:  %t\n", report.FileExists)
		fmt.Fprintf(w, "Dir exists:   %t\n", report.DirExists)
		fmt.Fprintf(w, "Name:         %s\n", orDash(report.Name))
		fmt.Fprintf(w, "Extension:    %s\n", orDash(report.Extension))
		fmt.Fprintf(w, "Stem:         %s\n", orDash(report.Stem))
		fmt.Fprintf(w, "Absolute:     %s\n", orDash(report.AbsolutePath))
		fmt.Fprintf(w, "Root:         %s\n", orDash(report.Root))
		fmt.Fprintf(w, "Size:         %s\n", orDash(report.SizeHumanized))
		return nil
	})
}

func inspectPath(helper *fshelp.Helper, path string) (*domain.PathReport, error) {
	report := &domain.PathReport{
		Path:       path,
		Parent:     fshelp.ParentDirectory(path),
		FileExists: helper.FileExists(path),
		DirExists:  helper.DirectoryExists(path),
	}

	report.Name, _ = helper.FileName(path)
	report.Extension, _ = helper.Extension(path)
	report.Stem, _ = helper.FileNameWithoutExtension(path)
	report.AbsolutePath, _ = helper.AbsolutePath(path)
	report.Root, _ = helper.PathRoot(path)

	if report.FileExists {
		info, err := helper.Stat(path)
		if err != nil {
			return nil, err
		}
		report.Size = info.Size()
		report.SizeHumanized = humanize.Bytes(uint64(info.Size()))
	}

	return report, nil
}
