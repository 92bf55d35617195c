//go:build windows

package ui

import "time"

// FlushStdinWithTimeout is a no-op on Windows: the console host does
// not interleave terminal query responses into stdin the way Unix
// ptys do.
func FlushStdinWithTimeout(timeout time.Duration) {}
