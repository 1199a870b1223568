// internal/cli/options_test.go
package cli

import (
	"testing"

	"github.com/spf13/pflag"

	"fastx/internal/clibase"
	"fastx/internal/matchbuf"
)

func newFS() *pflag.FlagSet { return pflag.NewFlagSet("test", pflag.ContinueOnError) }

func parseMatch(t *testing.T, args ...string) (MatchOptions, error) {
	t.Helper()
	var o MatchOptions
	fs := newFS()
	noHeader := RegisterMatch(fs, &o)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse err: %v", err)
	}
	o.Header = !*noHeader
	if err := clibase.AfterParse(&o.Common, fs.Args()); err != nil {
		return o, err
	}
	return o, o.Validate()
}

func TestPatternsFileOK(t *testing.T) {
	o, err := parseMatch(t, "--patterns", "p.fa", "ref.fa")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if o.PatternFile != "p.fa" || len(o.Patterns) != 0 || o.Mode != matchbuf.Ranges || !o.Header {
		t.Errorf("want patterns file only, got %+v", o)
	}
}

func TestInlinePatternsOK(t *testing.T) {
	o, err := parseMatch(t, "-P", "ACGT", "-P", "GGN", "--mode", "counts", "--no-header", "ref.fa", "extra.fa")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(o.Patterns) != 2 || len(o.Files) != 2 || o.Mode != matchbuf.Counts || o.Header {
		t.Errorf("bad inline parse %+v", o)
	}
}

func TestMatchErrors(t *testing.T) {
	cases := [][]string{
		{"ref.fa"},
		{"--patterns", "p.fa", "--pattern", "AC", "ref.fa"},
		{"-P", "AC"},
		{"-P", "AC", "--mode", "coverage", "ref.fa"},
		{"-P", "AC", "--output", "fasta", "ref.fa"},
		{"-P", "AC", "--mismatches", "-1", "ref.fa"},
		{"-P", "AC", "--min-count", "0", "ref.fa"},
		{"-P", "AC", "--no-match-exit-code", "256", "ref.fa"},
	}
	for _, args := range cases {
		if _, err := parseMatch(t, args...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestReadValidate(t *testing.T) {
	o := ReadOptions{Common: clibase.Common{Format: "fasta"}, Output: "fastq", Width: 80}
	if err := o.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	o.Width = 0
	if err := o.Validate(); err == nil {
		t.Fatal("expected width error")
	}
	o.Width, o.Qualities = 60, true
	if err := o.Validate(); err == nil {
		t.Fatal("--qualities needs FASTQ input")
	}
	o.Format, o.Store = "fastq", "/tmp/x"
	if err := o.Validate(); err == nil {
		t.Fatal("--store needs FASTA input")
	}
}

func TestIndexValidate(t *testing.T) {
	o := IndexOptions{Common: clibase.Common{Format: "fastq"}, Output: "tsv"}
	if err := o.Validate(); err == nil {
		t.Fatal("index must reject FASTQ")
	}
	o.Format, o.Output = "fasta", "jsonl"
	if err := o.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
