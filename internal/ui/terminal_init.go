package ui

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

var terminalInitialized bool

// InitTerminal configures the terminal to prevent escape sequence pollution.
// This MUST be called before any charmbracelet library (lipgloss, bubbletea)
// usage to prevent OSC 11 background color queries from polluting the output.
//
// The issue: muesli/termenv (used by lipgloss) queries terminal background
// color via OSC 11, and the terminal response gets mixed into stdout.
// Setting COLORFGBG tells termenv the background color, skipping the query.
func InitTerminal() {
	if terminalInitialized {
		return
	}
	terminalInitialized = true

	if os.Getenv("COLORFGBG") == "" {
		os.Setenv("COLORFGBG", "0;15")
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		// Disable focus reporting (CSI ? 1004 l)
		fmt.Fprint(os.Stdout, "\033[?1004l")
		time.Sleep(20 * time.Millisecond)
		FlushStdinWithTimeout(150 * time.Millisecond)
	}
}

// ResetTerminalAfterTUI cleans up terminal state after a TUI (like
// bubbletea) exits, so asynchronous terminal responses don't appear in
// the output after the TUI closes.
func ResetTerminalAfterTUI() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}

	fmt.Fprint(os.Stdout, "\033[?1004l") // Disable focus reporting
	fmt.Fprint(os.Stdout, "\033[?1003l") // Disable all mouse tracking
	fmt.Fprint(os.Stdout, "\033[?25h")   // Show cursor
	fmt.Fprint(os.Stdout, "\r")

	time.Sleep(30 * time.Millisecond)
	FlushStdinWithTimeout(150 * time.Millisecond)
}
