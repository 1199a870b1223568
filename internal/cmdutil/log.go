// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"fastx/internal/fileio"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Warnings prints one WARN line per translation warning.
func Warnings(dst io.Writer, quiet bool, warns []fileio.Warning) {
	for _, w := range warns {
		Warnf(dst, quiet, "%s", w)
	}
}
