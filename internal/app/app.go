// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"fastx/internal/appcore"
	"fastx/internal/cmdutil"
	"fastx/internal/version"
)

// exitError carries a process exit code out of a cobra RunE. err may be nil
// when the command already reported what went wrong.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error   { return &exitError{code: appcore.ExitUsage, err: err} }
func runtimeErr(err error) error { return &exitError{code: appcore.ExitRuntime, err: err} }

func newRoot(stdout, stderr io.Writer) *cobra.Command {
	var verbose int
	root := &cobra.Command{
		Use:   "fastx",
		Short: "streaming FASTA/FASTQ toolkit",
		Long: `fastx: streaming FASTA/FASTQ toolkit

Reads plain, gzip and zstd FASTA/FASTQ ('-' = STDIN), lists records with
their byte offsets, converts between formats and scans sequences for
IUPAC patterns.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log := cmdutil.NewLogger(stderr, verbose)
			cmd.SetContext(logr.NewContext(cmd.Context(), log))
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("fastx version {{.Version}}\n")
	root.PersistentFlags().IntVar(&verbose, "verbose", 0, "log verbosity on STDERR (1 = per file, 2 = per block)")
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(indexCommand(stdout, stderr))
	root.AddCommand(readCommand(stdout, stderr))
	root.AddCommand(matchCommand(stdout, stderr))
	return root
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := newRoot(stdout, stderr)
	root.SetArgs(argv)

	err := root.ExecuteContext(parent)
	if err == nil {
		return appcore.ExitOK
	}
	var ee *exitError
	switch {
	case errors.As(err, &ee):
		if ee.err != nil {
			if errors.Is(ee.err, context.Canceled) {
				return appcore.ExitCancelled
			}
			fmt.Fprintln(stderr, "error:", ee.err)
			if ee.code == appcore.ExitUsage {
				fmt.Fprintln(stderr, "Run 'fastx --help' for usage.")
			}
		}
		return ee.code
	case parent.Err() != nil:
		return appcore.ExitCancelled
	default:
		// flag and argument errors raised by cobra itself
		fmt.Fprintln(stderr, "error:", err)
		fmt.Fprintln(stderr, "Run 'fastx --help' for usage.")
		return appcore.ExitUsage
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
