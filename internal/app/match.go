package app

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"fastx/internal/appcore"
	"fastx/internal/cli"
	"fastx/internal/clibase"
	"fastx/internal/common"
	"fastx/internal/engine"
	"fastx/internal/matchbuf"
	"fastx/internal/output"
	"fastx/internal/pattern"
	"fastx/internal/pipeline"
	"fastx/internal/runutil"
	"fastx/internal/visitors"
	"fastx/pkg/api"
)

func matchCommand(stdout, stderr io.Writer) *cobra.Command {
	var o cli.MatchOptions
	cmd := &cobra.Command{
		Use:   "match [flags] FILE...",
		Short: "Scan sequences for IUPAC patterns on both strands",
		Example: clibase.Examples(
			"fastx match -P GAATTC -P GGATCC genome.fa.gz",
			"fastx match --patterns probes.fa -m 1 --terminal-window 3 --mode counts -o jsonl -t 8 --chunk-size 1000000 chr*.fa",
		),
	}
	noHeader := cli.RegisterMatch(cmd.Flags(), &o)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		o.Header = !*noHeader
		if err := clibase.AfterParse(&o.Common, args); err != nil {
			return usageErr(err)
		}
		if err := o.Validate(); err != nil {
			return usageErr(err)
		}
		pats, err := loadPatterns(cmd.Context(), o)
		if err != nil {
			return usageErr(err)
		}
		if code := runMatch(cmd.Context(), o, pats, stdout, stderr); code != appcore.ExitOK {
			return &exitError{code: code}
		}
		return nil
	}
	return cmd
}

func loadPatterns(ctx context.Context, o cli.MatchOptions) ([]pattern.Pattern, error) {
	if o.PatternFile != "" {
		return pattern.Load(ctx, o.PatternFile)
	}
	return pattern.Parse(common.UniqueSeqs(o.Patterns))
}

func runMatch(ctx context.Context, o cli.MatchOptions, pats []pattern.Pattern, stdout, stderr io.Writer) int {
	probes := pattern.Probes(pats, !o.PlusOnly)
	eng := engine.New(engine.Config{
		MaxMM:    o.Mismatches,
		Terminal: runutil.EffectiveTerminalWindow(o.TerminalWindow),
	}, probes)

	var src pipeline.Source
	if o.Format == clibase.FormatFASTQ {
		src = pipeline.FASTQSource(o.Inputs(), fastqConfig(o.Common))
	} else {
		src = pipeline.FASTASource(o.Inputs(), fastaConfig(o.Common))
	}

	keep := visitors.MinCount{N: o.MinCount}
	visit := func(r pipeline.Result) ([]api.MatchRecordV1, error) {
		s := output.Subject{File: r.Subject.File, RecNo: r.Subject.RecNo, ID: r.Subject.ID, Length: len(r.Subject.Seq)}
		recs := output.Records(s, r.Buf, pats, probes)
		out := recs[:0]
		for _, rec := range recs {
			ok, v, err := keep.Visit(rec)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, v)
			}
		}
		return out, nil
	}

	coreOpts := appcore.Options{
		Threads:         o.Threads,
		ChunkSize:       o.ChunkSize,
		Mode:            o.Mode,
		Quiet:           o.Quiet,
		NoMatchExitCode: o.NoMatchExitCode,
	}
	if o.Mode == matchbuf.None {
		// nothing is ever reported, so an empty output is not a miss
		coreOpts.NoMatchExitCode = appcore.ExitOK
	}
	wf := appcore.NewMatchWriterFactory(o.Output, o.Sort, o.Header)
	return appcore.Run[api.MatchRecordV1](ctx, stdout, stderr, coreOpts, src, eng, visit, wf)
}
