// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveTerminalWindow maps the --terminal-window flag to the number of
// 3' bases that must match exactly: negative (auto) and 0 both disable it.
func EffectiveTerminalWindow(terminalWindow int) int {
	if terminalWindow < 0 {
		return 0
	}
	return terminalWindow
}

// EffectiveThreads maps --threads to a worker count (0 = all CPUs).
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// ValidateChunking decides whether chunking is used and returns the chunk
// size with any warnings:
//   - --chunk-size <= 0 → no chunking
//   - --chunk-size below the longest pattern → no chunking (every chunk
//     would be mostly overlap)
func ValidateChunking(chunkSize, maxPatternLen int) (int, []string) {
	if chunkSize <= 0 {
		return 0, nil
	}
	if chunkSize < maxPatternLen {
		return 0, []string{"--chunk-size is smaller than the longest pattern; disabling chunking"}
	}
	return chunkSize, nil
}
