package ui

import "fmt"

// FormatBytes renders a byte count with a binary-unit suffix.
// Example: 1536 -> "1.5KB"
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for u := n / unit; u >= unit; u /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatSpeed renders a transfer rate in bytes per second.
func FormatSpeed(bytesPerSec float64) string {
	return FormatBytes(int64(bytesPerSec)) + "/s"
}

// FormatMB renders a byte count as megabytes with two-decimal
// precision, the form the download status line uses.
func FormatMB(n int64) string {
	return fmt.Sprintf("%.2f MB", float64(n)/(1024.0*1024.0))
}
