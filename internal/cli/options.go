// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"fastx/internal/clibase"
	"fastx/internal/fasta"
	"fastx/internal/matchbuf"
	"fastx/internal/output"
)

// IndexOptions holds the flags of `fastx index`.
type IndexOptions struct {
	clibase.Common
	Store  string // badger directory caching per-file indexes; "" = none
	Output string // tsv | json | jsonl
	Header bool   // true unless --no-header
}

func RegisterIndex(fs *pflag.FlagSet, o *IndexOptions) *bool {
	clibase.Register(fs, &o.Common)
	fs.StringVar(&o.Store, "store", "", "directory of a persistent index cache")
	fs.StringVarP(&o.Output, "output", "o", output.FormatTSV, "output: tsv | json | jsonl")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress the TSV header line")
	return &noHeader
}

func (o *IndexOptions) Validate() error {
	if o.Format != clibase.FormatFASTA {
		return errors.New("index supports --format fasta only")
	}
	switch o.Output {
	case output.FormatTSV, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	return nil
}

// ReadOptions holds the flags of `fastx read`.
type ReadOptions struct {
	clibase.Common
	Store     string
	Output    string // fasta | fastq | tsv
	OutFile   string // "-" = STDOUT; .gz/.zst compress
	Width     int
	Qualities bool
}

func RegisterRead(fs *pflag.FlagSet, o *ReadOptions) {
	clibase.Register(fs, &o.Common)
	fs.StringVar(&o.Store, "store", "", "directory of a persistent index cache (FASTA input)")
	fs.StringVarP(&o.Output, "output", "o", output.FormatFASTA, "output: fasta | fastq | tsv")
	fs.StringVarP(&o.OutFile, "out", "O", "-", "output file ('-' = STDOUT; .gz/.zst are compressed)")
	fs.IntVarP(&o.Width, "width", "w", fasta.DefaultWidth, "FASTA line width")
	fs.BoolVar(&o.Qualities, "qualities", false, "FASTQ: keep input qualities instead of writing fake ones")
}

func (o *ReadOptions) Validate() error {
	switch o.Output {
	case output.FormatFASTA, output.FormatFASTQ, output.FormatTSV:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Width < 1 || o.Width > fasta.MaxWidth {
		return fmt.Errorf("--width must be between 1 and %d", fasta.MaxWidth)
	}
	if o.Qualities && o.Format != clibase.FormatFASTQ {
		return errors.New("--qualities requires --format fastq")
	}
	if o.Store != "" && o.Format != clibase.FormatFASTA {
		return errors.New("--store requires --format fasta")
	}
	return nil
}

// MatchOptions holds the flags of `fastx match`.
type MatchOptions struct {
	clibase.Common

	// Patterns
	PatternFile string
	Patterns    []string
	Mismatches  int
	// 3' bases that must match exactly (-1 = auto)
	TerminalWindow int
	PlusOnly       bool

	// Performance
	Threads   int
	ChunkSize int

	// Output
	ModeName        string
	Mode            matchbuf.Mode // resolved from ModeName by Validate
	Output          string
	Sort            bool
	Header          bool
	MinCount        int
	NoMatchExitCode int
}

func RegisterMatch(fs *pflag.FlagSet, o *MatchOptions) *bool {
	clibase.Register(fs, &o.Common)

	fs.StringVarP(&o.PatternFile, "patterns", "p", "", "FASTA file of patterns (IUPAC DNA) [*]")
	fs.StringArrayVarP(&o.Patterns, "pattern", "P", nil, "inline pattern (repeatable) [*]")
	fs.IntVarP(&o.Mismatches, "mismatches", "m", 0, "max mismatches per match")
	fs.IntVar(&o.TerminalWindow, "terminal-window", -1, "3' bases that must match exactly (0=allow, -1=auto)")
	fs.BoolVar(&o.PlusOnly, "plus-only", false, "do not scan reverse complements")

	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker threads (0=all CPUs)")
	fs.IntVar(&o.ChunkSize, "chunk-size", 0, "split sequences into N-bp chunks (0=no chunking)")

	fs.StringVar(&o.ModeName, "mode", matchbuf.Ranges.String(), "what to report: none | which | counts | starts | ends | ranges")
	fs.StringVarP(&o.Output, "output", "o", output.FormatText, "output: text | json | jsonl")
	fs.BoolVar(&o.Sort, "sort", false, "sort outputs deterministically")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")
	fs.IntVar(&o.MinCount, "min-count", 1, "report pattern strands with at least N matches")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when nothing is reported")
	return &noHeader
}

func (o *MatchOptions) Validate() error {
	usingFile := o.PatternFile != ""
	usingInline := len(o.Patterns) > 0
	switch {
	case usingFile && usingInline:
		return errors.New("--patterns conflicts with --pattern")
	case !usingFile && !usingInline:
		return errors.New("provide --patterns or --pattern")
	}
	if o.Mismatches < 0 {
		return errors.New("--mismatches must be ≥ 0")
	}
	if o.TerminalWindow < -1 {
		return errors.New("--terminal-window must be ≥ -1")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.ChunkSize < 0 {
		return errors.New("--chunk-size must be ≥ 0")
	}
	if o.MinCount < 1 {
		return errors.New("--min-count must be ≥ 1")
	}
	m, err := matchbuf.ParseMode(o.ModeName)
	if err != nil {
		return err
	}
	o.Mode = m
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
