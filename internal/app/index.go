package app

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"fastx/internal/cli"
	"fastx/internal/clibase"
	"fastx/internal/cmdutil"
	"fastx/internal/fileio"
	"fastx/internal/jsonutil"
	"fastx/internal/output"
)

func indexCommand(stdout, stderr io.Writer) *cobra.Command {
	var o cli.IndexOptions
	cmd := &cobra.Command{
		Use:   "index [flags] FILE...",
		Short: "List FASTA records with their offsets and sequence lengths",
		Example: clibase.Examples(
			"fastx index genome.fa.gz",
			"fastx index --store ~/.cache/fastx --skip 10 --limit 5 -a dna chr*.fa",
		),
	}
	noHeader := cli.RegisterIndex(cmd.Flags(), &o)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		o.Header = !*noHeader
		if err := clibase.AfterParse(&o.Common, args); err != nil {
			return usageErr(err)
		}
		if err := o.Validate(); err != nil {
			return usageErr(err)
		}
		return runIndex(cmd.Context(), o, stdout, stderr)
	}
	return cmd
}

func runIndex(ctx context.Context, o cli.IndexOptions, stdout, stderr io.Writer) error {
	files, err := fileio.OpenAll(o.Inputs())
	if err != nil {
		return runtimeErr(err)
	}
	defer files.Close()

	prog := cmdutil.StartProgress(stderr, o.Progress, len(files))
	ix, warns, err := buildIndex(ctx, files, o.Common, o.Store, prog)
	prog.Finish()
	cmdutil.Warnings(stderr, o.Quiet, warns)
	if err != nil {
		return runtimeErr(err)
	}

	err = writeOut(stdout, func(w io.Writer) error {
		switch o.Output {
		case output.FormatJSON:
			return output.WriteIndexJSON(w, ix)
		case output.FormatJSONL:
			return jsonutil.EncodeLines(w, output.ToAPIIndex(ix))
		default:
			return output.WriteIndexTSV(w, ix, o.Header)
		}
	})
	if err != nil {
		return runtimeErr(err)
	}
	return nil
}
