package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/deisrc/deisrc/internal/branding"
	"github.com/deisrc/deisrc/internal/version"
	"github.com/spf13/cobra"
)

// Execute runs the CLI against the process arguments with build info
// injected via ldflags.
func Execute(buildVersion, buildCommit, buildDate string) error {
	info := version.Info{Version: buildVersion, Commit: buildCommit, Date: buildDate}
	return Run(os.Args[1:], os.Stdout, os.Stderr, info)
}

// Run executes one invocation. Status goes to stdout, errors and usage to
// stderr. Errors are printed here; the caller only maps them to an exit code.
func Run(args []string, stdout, stderr io.Writer, info version.Info) error {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(stdout, stderr, info)
	cmd.SetArgs(args)

	err := cmd.Execute()
	var r *reportedError
	if err != nil && !errors.As(err, &r) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

func newRootCmd(stdout, stderr io.Writer, info version.Info) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [name]",
		Short: branding.Description(),
		// The argument grammar is owned by Parse so that help and unknown
		// flags follow the tool's own exit code rules.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &app{
				stdout: cmd.OutOrStdout(),
				stderr: cmd.ErrOrStderr(),
				info:   info,
			}
			return a.run(Parse(args))
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}
