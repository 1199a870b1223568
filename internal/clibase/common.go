// internal/clibase/common.go
package clibase

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"fastx/internal/cliutil"
	"fastx/internal/fasta"
	"fastx/internal/lkup"
)

// Input formats.
const (
	FormatFASTA = "fasta"
	FormatFASTQ = "fastq"
)

// Common holds the input flags shared by every command.
type Common struct {
	Files           []string
	Format          string // fasta | fastq
	Skip            int
	Limit           int // -1 = all, 0 = none
	SeekFirstRecord bool
	CheckQualityID  bool
	Alphabet        string

	Quiet    bool
	Progress bool
}

// Register wires the shared flags onto fs.
func Register(fs *pflag.FlagSet, c *Common) {
	fs.StringVarP(&c.Format, "format", "F", FormatFASTA, "input format: fasta | fastq")
	fs.IntVar(&c.Skip, "skip", 0, "skip the first N records (across all inputs)")
	fs.IntVar(&c.Limit, "limit", -1, "load at most N records (-1 = all, 0 = none)")
	fs.BoolVar(&c.SeekFirstRecord, "seek-first-record", false, "skip leading lines up to the first record marker")
	fs.BoolVar(&c.CheckQualityID, "check-quality-id", false, "FASTQ: require the '+' line to repeat the record id")
	fs.StringVarP(&c.Alphabet, "alphabet", "a", "none", "sequence alphabet: dna | rna | aa | bytes | none")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "suppress non-essential warnings")
	fs.BoolVar(&c.Progress, "progress", false, "show a per-file progress bar on STDERR")
}

// AfterParse expands positionals into c.Files, then runs shared validation.
func AfterParse(c *Common, posArgs []string) error {
	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return err
	}
	c.Files = append(c.Files, exp...)
	return Validate(c)
}

// Validate applies shared CLI invariants used by all commands.
func Validate(c *Common) error {
	if len(c.Files) == 0 {
		return errors.New("at least one input file is required ('-' for STDIN)")
	}
	switch c.Format {
	case FormatFASTA, FormatFASTQ:
	default:
		return fmt.Errorf("invalid --format %q", c.Format)
	}
	if c.Skip < 0 {
		return errors.New("--skip must be ≥ 0")
	}
	if c.Limit < -1 {
		return errors.New("--limit must be ≥ -1")
	}
	if c.CheckQualityID && c.Format != FormatFASTQ {
		return errors.New("--check-quality-id requires --format fastq")
	}
	if _, err := lkup.ByName(c.Alphabet); err != nil {
		return err
	}
	return nil
}

// Lookup resolves --alphabet. Validate has already accepted the name.
func (c *Common) Lookup() *lkup.Table {
	t, _ := lkup.ByName(c.Alphabet)
	return t
}

// Inputs is the list of files to read: none when --limit 0 asks for no
// records.
func (c *Common) Inputs() []string {
	if c.Limit == 0 {
		return nil
	}
	return c.Files
}

// RecordLimit is --limit in the parsers' terms.
func (c *Common) RecordLimit() int {
	if c.Limit < 0 {
		return fasta.NoLimit
	}
	return c.Limit
}
