package app

import (
	"bufio"
	"context"
	"io"
	"slices"
	"strings"

	"fastx/internal/clibase"
	"fastx/internal/cmdutil"
	"fastx/internal/fasta"
	"fastx/internal/fastq"
	"fastx/internal/fileio"
	"fastx/internal/indexstore"
	"fastx/internal/writers"
)

func fastaConfig(c clibase.Common) fasta.Config {
	return fasta.Config{Lookup: c.Lookup(), Skip: c.Skip, Limit: c.RecordLimit(), SeekFirstRecord: c.SeekFirstRecord}
}

func fastqConfig(c clibase.Common) fastq.Config {
	return fastq.Config{Lookup: c.Lookup(), Skip: c.Skip, Limit: c.RecordLimit(),
		SeekFirstRecord: c.SeekFirstRecord, CheckQualityID: c.CheckQualityID}
}

// hasStdin reports whether any input is STDIN, which cannot be re-read.
func hasStdin(c clibase.Common) bool { return slices.Contains(c.Files, "-") }

// buildIndex indexes files, through the persistent cache when store is set.
func buildIndex(ctx context.Context, files fileio.Files, c clibase.Common, store string, prog *cmdutil.Progress) (fasta.Index, []fileio.Warning, error) {
	cfg := fastaConfig(c)
	if store == "" {
		return fasta.BuildIndex(ctx, files.Readers(), cfg, fasta.IndexOptions{KeepDesc: true, OnFile: prog.OnFile})
	}
	st, err := indexstore.Open(store)
	if err != nil {
		return nil, nil, err
	}
	defer st.Close()
	return st.BuildIndex(ctx, files.Readers(), strings.ToLower(c.Alphabet), cfg, prog.OnFile)
}

// writeOut runs write against a buffered stdout and flushes it. A closed
// downstream pipe counts as success.
func writeOut(stdout io.Writer, write func(io.Writer) error) error {
	outw := bufio.NewWriter(stdout)
	err := write(outw)
	if err == nil {
		err = outw.Flush()
	}
	if writers.IsBrokenPipe(err) {
		return nil
	}
	return err
}
