package fileio

import (
	"errors"
	"fmt"
)

// Causes carried by LineError. Match them with errors.Is.
var (
	ErrRead            = errors.New("read error")
	ErrLineTooLong     = errors.New("line is too long")
	ErrMarkerExpected  = errors.New("marker expected")
	ErrNoRecord        = errors.New("no record found")
	ErrQualityLength   = errors.New("quality length differs from sequence length")
	ErrQualityID       = errors.New("quality id differs from sequence id")
	ErrTruncatedRecord = errors.New("truncated record")
)

// Writer errors.
var (
	ErrMissingName  = errors.New("record has no name")
	ErrNameMismatch = errors.New("sequence and quality names differ")
	ErrInvalidByte  = errors.New("byte has no translation")
	ErrEmptyRecord  = errors.New("empty sequence cannot be written as FASTQ")
)

// LineError is a fatal parse error tied to a file and a 1-based line.
// Line is 0 when the error is not attached to a particular line.
type LineError struct {
	Format string // "FASTA" or "FASTQ"
	File   string
	Line   int
	Msg    string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("reading %s file %s: %s", e.Format, e.File, e.Msg)
}

func (e *LineError) Unwrap() error { return e.Err }

// Errorf builds a LineError with a formatted detail message.
func Errorf(format, file string, line int, cause error, msg string, args ...any) *LineError {
	return &LineError{Format: format, File: file, Line: line, Msg: fmt.Sprintf(msg, args...), Err: cause}
}

// Warning reports sequence bytes dropped from a file because the lookup
// table had no mapping for them.
type Warning struct {
	Format  string
	File    string
	Invalid int64
}

func (w Warning) String() string {
	return fmt.Sprintf("reading %s file %s: ignored %d invalid one-letter sequence codes", w.Format, w.File, w.Invalid)
}
