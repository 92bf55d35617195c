package main

import "github.com/wmtogether/workspace-launcher/internal/ui"

func main() {
	// Initialize terminal FIRST, before any charmbracelet imports are
	// used, so OSC 11 background queries and focus events don't
	// pollute the output stream.
	ui.InitTerminal()

	Execute()
}
