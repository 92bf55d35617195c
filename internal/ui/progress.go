package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// flushStdin discards any pending input from stdin to prevent
// terminal response sequences (like cursor position reports, focus
// events) from corrupting the output.
func flushStdin() {
	FlushStdinWithTimeout(30 * time.Millisecond)
}

// ProgressBar renders a terminal progress bar with download statistics.
type ProgressBar struct {
	out        io.Writer
	total      int64
	current    int64
	startTime  time.Time
	lastUpdate time.Time
	isTTY      bool
	lastPct    float64 // for non-TTY threshold updates
	indent     string
}

// NewProgressBar creates a new progress bar for tracking download
// progress. If total is <= 0 the bar shows megabytes downloaded
// without a percentage.
func NewProgressBar(out io.Writer, total int64) *ProgressBar {
	if out == nil {
		out = os.Stdout
	}

	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}

	if isTTY {
		// Disable focus reporting (CSI ? 1004 l) and flush pending
		// terminal responses that could corrupt output.
		fmt.Fprint(out, "\033[?1004l")
		time.Sleep(10 * time.Millisecond)
		flushStdin()
	}

	return &ProgressBar{
		out:       out,
		total:     total,
		startTime: time.Now(),
		isTTY:     isTTY,
		lastPct:   -1,
		indent:    "  ",
	}
}

// Update updates the progress bar with the current byte count.
func (p *ProgressBar) Update(current int64) {
	p.current = current

	// Rate limit updates to avoid flicker (max 10/sec for TTY)
	now := time.Now()
	if p.isTTY && now.Sub(p.lastUpdate) < 100*time.Millisecond {
		return
	}
	p.lastUpdate = now

	if p.total <= 0 {
		// Unknown total: just show megabytes downloaded.
		if p.isTTY {
			fmt.Fprintf(p.out, "\r%sDownloaded: %s\033[K", p.indent, FormatMB(current))
		} else {
			fmt.Fprintf(p.out, "%sDownloaded: %s\n", p.indent, FormatMB(current))
		}
		return
	}

	pct := float64(current) / float64(p.total) * 100

	if p.isTTY {
		p.renderTTY(pct)
	} else {
		// Non-TTY: print at 10% intervals
		threshold := float64(int(pct/10) * 10)
		if threshold > p.lastPct {
			p.lastPct = threshold
			fmt.Fprintf(p.out, "%sDownloading... %.0f%%\n", p.indent, threshold)
		}
	}
}

// renderTTY renders the progress bar for TTY output.
func (p *ProgressBar) renderTTY(pct float64) {
	elapsed := time.Since(p.startTime).Seconds()
	var speed float64
	if elapsed > 0 {
		speed = float64(p.current) / elapsed
	}

	eta := ""
	if speed > 0 && p.current < p.total {
		eta = formatDuration(float64(p.total-p.current) / speed)
	} else if p.current >= p.total {
		eta = "0s"
	}

	width := 80
	if f, ok := p.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	barWidth := width - 56 - len(p.indent)
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 40 {
		barWidth = 40
	}

	filled := int(pct / 100 * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := ""
	for i := 0; i < barWidth; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}

	// \033[K clears from cursor to end of line
	fmt.Fprintf(p.out, "\r%s[%s] %5.1f%%   %s/%s   %s   ETA %s\033[K",
		p.indent,
		bar,
		pct,
		FormatMB(p.current),
		FormatMB(p.total),
		FormatSpeed(speed),
		eta,
	)
}

// formatDuration formats seconds into a human-readable duration string.
func formatDuration(seconds float64) string {
	if seconds < 0 {
		return "--"
	}
	if seconds < 60 {
		return fmt.Sprintf("%.0fs", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm%ds", int(seconds)/60, int(seconds)%60)
	}
	return fmt.Sprintf("%dh%dm", int(seconds)/3600, (int(seconds)%3600)/60)
}

// Finish completes the progress bar and moves to the next line.
func (p *ProgressBar) Finish() {
	if p.isTTY {
		if p.total > 0 {
			p.renderTTY(100)
		}
		fmt.Fprintln(p.out)
		flushStdin()
	} else if p.total > 0 && p.lastPct < 100 {
		fmt.Fprintf(p.out, "%sDownloading... 100%%\n", p.indent)
	}
}
