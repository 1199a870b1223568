package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"fastx/internal/appcore"
)

// Main runs a command with a context cancelled by SIGINT/SIGTERM and exits
// with its code. No arguments means --help.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// A run cut short by a signal never reports success.
	if ctx.Err() != nil && code == appcore.ExitOK {
		code = appcore.ExitCancelled
	}

	stop()
	os.Exit(code)
}
