//go:build !windows

package ui

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/term"
)

// FlushStdinWithTimeout reads and discards stdin for the specified
// duration. This catches asynchronous terminal responses (cursor
// position reports, OSC responses, focus events) that arrive after
// queries are sent. Only flushes if stdin is a terminal — never reads
// from pipes to avoid consuming piped input.
func FlushStdinWithTimeout(timeout time.Duration) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	if err := syscall.SetNonblock(fd, true); err != nil {
		return
	}
	defer syscall.SetNonblock(fd, false)

	buf := make([]byte, 256)
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		n, _ := os.Stdin.Read(buf)
		if n <= 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}
