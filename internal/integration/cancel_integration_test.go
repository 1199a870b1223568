package integration

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fastx/internal/app"
)

func TestCancelledMatch_Exit130(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cancel_big.fa")
	const Mb = 1 << 20
	seq := strings.Repeat("ACGT", Mb/4)
	if err := os.WriteFile(fn, []byte(">chr1\n"+seq+"\n"), 0644); err != nil {
		t.Fatalf("write fasta: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"match", "-P", "ACGTACGT", fn}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
