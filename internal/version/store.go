package version

import (
	"bufio"
	"os"
	"strings"
)

// Fallback is the version reported when no marker file can be read.
// A fresh install without a marker must still yield a comparable
// version so the update check can run.
const Fallback = "0.0.0"

// Read returns the installed version recorded in the marker file at
// path: the first line, with trailing line endings removed and one
// leading "v" stripped. Any open or read failure returns Fallback,
// never an error. The launcher only reads the marker; the installer
// owns writing it.
func Read(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return Fallback
	}
	defer func() { _ = f.Close() }()

	line, err := bufio.NewReader(f).ReadString('\n')
	if line == "" && err != nil {
		return Fallback
	}

	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimPrefix(line, "v")
	if line == "" {
		return Fallback
	}
	return line
}
