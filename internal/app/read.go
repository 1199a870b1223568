package app

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"fastx/internal/cli"
	"fastx/internal/clibase"
	"fastx/internal/cmdutil"
	"fastx/internal/fasta"
	"fastx/internal/fastq"
	"fastx/internal/fileio"
	"fastx/internal/output"
	"fastx/internal/seqset"
)

func readCommand(stdout, stderr io.Writer) *cobra.Command {
	var o cli.ReadOptions
	cmd := &cobra.Command{
		Use:   "read [flags] FILE...",
		Short: "Load records and write them as FASTA, FASTQ or TSV",
		Example: clibase.Examples(
			"fastx read -a dna --width 60 in.fa.gz > out.fa",
			"fastx read -F fastq --qualities -o fastq -O reads.fq.zst reads.fq.gz",
			"zcat reads.fq.gz | fastx read -F fastq -o fasta --skip 1000 --limit 10 -",
		),
	}
	cli.RegisterRead(cmd.Flags(), &o)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := clibase.AfterParse(&o.Common, args); err != nil {
			return usageErr(err)
		}
		if err := o.Validate(); err != nil {
			return usageErr(err)
		}
		return runRead(cmd.Context(), o, stdout, stderr)
	}
	return cmd
}

// load returns the selected records; quals is nil unless requested.
func load(ctx context.Context, o cli.ReadOptions, files fileio.Files, stderr io.Writer) (seqs, quals *seqset.Set, warns []fileio.Warning, err error) {
	if o.Format == clibase.FormatFASTQ {
		return fastq.Read(ctx, files.Readers(), fastqConfig(o.Common), o.Qualities)
	}
	if hasStdin(o.Common) {
		// STDIN cannot be indexed then re-read, so records are collected
		// in a single streaming pass.
		var (
			b     seqset.Builder
			names []string
		)
		warns, err = fasta.Stream(ctx, files.Readers(), fastaConfig(o.Common), func(r fasta.Record) error {
			b.Add(r.Seq)
			names = append(names, r.Desc)
			return nil
		})
		if err != nil {
			return nil, nil, warns, err
		}
		seqs = b.Set()
		seqs.Names = names
		return seqs, nil, warns, nil
	}

	prog := cmdutil.StartProgress(stderr, o.Progress, len(files))
	ix, warns, err := buildIndex(ctx, files, o.Common, o.Store, prog)
	prog.Finish()
	if err != nil {
		return nil, nil, warns, err
	}
	seqs, err = fasta.LoadSet(ctx, files.Readers(), ix, o.Lookup())
	return seqs, nil, warns, err
}

func runRead(ctx context.Context, o cli.ReadOptions, stdout, stderr io.Writer) error {
	files, err := fileio.OpenAll(o.Inputs())
	if err != nil {
		return runtimeErr(err)
	}
	defer files.Close()

	seqs, quals, warns, err := load(ctx, o, files, stderr)
	cmdutil.Warnings(stderr, o.Quiet, warns)
	if err != nil {
		return runtimeErr(err)
	}

	write := func(w io.Writer) error {
		switch o.Output {
		case output.FormatFASTQ:
			return fastq.Write(w, seqs, quals, nil)
		case output.FormatTSV:
			return output.WriteSetTSV(w, seqs, quals)
		default:
			return fasta.Write(w, seqs, fasta.WriteOptions{Width: o.Width})
		}
	}

	if o.OutFile == "-" {
		err = writeOut(stdout, write)
	} else {
		err = writeFile(o.OutFile, write)
	}
	if err != nil {
		return runtimeErr(err)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	wc, err := fileio.Create(path)
	if err != nil {
		return err
	}
	return errors.Join(writeOut(wc, write), wc.Close())
}
