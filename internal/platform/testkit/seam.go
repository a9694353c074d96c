package testkit

import (
	"sync"
	"testing"
)

var seamMu sync.Mutex

// Serial holds a process-wide lock for the rest of the test so tests that
// rewire package-level seams never overlap
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}

// Swap replaces *target for the duration of the test and restores it on cleanup
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// SwapSerial is Serial followed by Swap, the usual pairing for clock and id seams
func SwapSerial[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	Serial(t)
	Swap(t, target, replacement)
}
