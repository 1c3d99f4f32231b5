package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fshelp/internal/app"
	"fshelp/internal/mocks"
	"fshelp/internal/testutil"
	"fshelp/pkg/fshelp"
	"fshelp/pkg/fshelp/info"
)

// testEnv is the application the run functions see during a test.
type testEnv struct {
	fs     afero.Fs
	helper *fshelp.Helper
	input  *mocks.MockTextReader
}

func setupTestApp(t *testing.T) *testEnv {
	t.Helper()

	helper, fs := testutil.MemHelper(t)
	input := mocks.NewMockTextReader(t)

	previous := application
	application = &app.App{
		Helper: helper,
		Directories: info.Directories{
			Desktop:   "/home/tester/Desktop",
			Documents: "/home/tester/Documents",
			Program:   "fshelp",
		},
		Input:  input,
		Logger: testutil.Logger(),
		Config: &app.Config{},
	}
	t.Cleanup(func() { application = previous })

	color.NoColor = true

	return &testEnv{fs: fs, helper: helper, input: input}
}

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	return cmd, &buf
}

// resetFlags restores cmd's flags to their defaults after a test executes it.
func resetFlags(t *testing.T, cmds ...*cobra.Command) {
	t.Helper()

	t.Cleanup(func() {
		reset := func(flag *pflag.Flag) {
			_ = flag.Value.Set(flag.DefValue)
			flag.Changed = false
		}
		for _, c := range cmds {
			c.Flags().VisitAll(reset)
			c.PersistentFlags().VisitAll(reset)
		}
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
	})
}

func withFlag(t *testing.T, target *bool) {
	t.Helper()

	*target = true
	t.Cleanup(func() { *target = false })
}
