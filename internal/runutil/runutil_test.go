package runutil

import (
	"runtime"
	"testing"
)

func TestEffectiveTerminalWindow(t *testing.T) {
	if got := EffectiveTerminalWindow(3); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if got := EffectiveTerminalWindow(0); got != 0 {
		t.Fatalf("0 disables → want 0, got %d", got)
	}
	if got := EffectiveTerminalWindow(-1); got != 0 {
		t.Fatalf("-1 disables → want 0, got %d", got)
	}
}

func TestEffectiveThreads(t *testing.T) {
	if got := EffectiveThreads(0); got != runtime.NumCPU() {
		t.Fatalf("0 → all CPUs, got %d", got)
	}
	if got := EffectiveThreads(3); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
}

func TestValidateChunking(t *testing.T) {
	if cs, w := ValidateChunking(0, 20); cs != 0 || len(w) != 0 {
		t.Fatalf("no chunking expected, got %d %v", cs, w)
	}
	if cs, w := ValidateChunking(10, 20); cs != 0 || len(w) != 1 {
		t.Fatalf("short chunks must be disabled with a warning, got %d %v", cs, w)
	}
	if cs, w := ValidateChunking(1000, 20); cs != 1000 || len(w) != 0 {
		t.Fatalf("want 1000, got %d %v", cs, w)
	}
}
