package ui

import (
	"fmt"
	"os"
	"strings"
)

// Color codes for terminal output
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Underline = "\033[4m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Cyan    = "\033[36m"

	BrightBlack  = "\033[90m"
	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
	BrightWhite  = "\033[97m"
)

// Theme defines the color scheme for different UI elements
type Theme struct {
	Success     string
	Warning     string
	Error       string
	Info        string
	Header      string
	SubHeader   string
	Label       string
	Value       string
	Description string
	Separator   string
	Prompt      string
	Progress    string
	Complete    string
	Pending     string
	Version     string
}

// DefaultTheme returns the default color theme
func DefaultTheme() *Theme {
	return &Theme{
		Success:     BrightGreen,
		Warning:     BrightYellow,
		Error:       BrightRed,
		Info:        BrightCyan,
		Header:      Bold + BrightCyan,
		SubHeader:   Bold + Cyan,
		Label:       Bold, // terminal default color for visibility on all backgrounds
		Value:       "",
		Description: BrightBlack,
		Separator:   BrightBlack,
		Prompt:      Bold + BrightWhite,
		Progress:    BrightYellow,
		Complete:    BrightGreen,
		Pending:     BrightBlack,
		Version:     BrightBlack,
	}
}

// ColorConfig manages color output settings
type ColorConfig struct {
	Enabled      bool
	EmojiEnabled bool
	Theme        *Theme
}

// NewColorConfig creates a new color configuration with default settings
func NewColorConfig() *ColorConfig {
	noColor := os.Getenv("NO_COLOR") != ""
	term := os.Getenv("TERM")

	// Disable colors if NO_COLOR is set or TERM is dumb
	enabled := !noColor && term != "dumb" && term != ""

	return &ColorConfig{
		Enabled:      enabled,
		EmojiEnabled: true,
		Theme:        DefaultTheme(),
	}
}

// Apply applies a color to text if colors are enabled
func (c *ColorConfig) Apply(color, text string) string {
	if !c.Enabled {
		return text
	}
	return color + text + Reset
}

// Success formats success messages
func (c *ColorConfig) Success(text string) string { return c.Apply(c.Theme.Success, text) }

// Warning formats warning messages
func (c *ColorConfig) Warning(text string) string { return c.Apply(c.Theme.Warning, text) }

// Error formats error messages
func (c *ColorConfig) Error(text string) string { return c.Apply(c.Theme.Error, text) }

// Info formats info messages
func (c *ColorConfig) Info(text string) string { return c.Apply(c.Theme.Info, text) }

// Header formats header text
func (c *ColorConfig) Header(text string) string { return c.Apply(c.Theme.Header, text) }

// SubHeader formats sub-header text
func (c *ColorConfig) SubHeader(text string) string { return c.Apply(c.Theme.SubHeader, text) }

// Label formats label text
func (c *ColorConfig) Label(text string) string { return c.Apply(c.Theme.Label, text) }

// Value formats value text
func (c *ColorConfig) Value(text string) string { return c.Apply(c.Theme.Value, text) }

// Description formats description text
func (c *ColorConfig) Description(text string) string { return c.Apply(c.Theme.Description, text) }

// FormatKeyValue formats a key-value pair with proper colors
func (c *ColorConfig) FormatKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s", c.Label(key), c.Value(value))
}

// FormatCommandAligned formats a command and description into aligned columns
func (c *ColorConfig) FormatCommandAligned(cmd, desc string, width int) string {
	pad := width - len(cmd)
	if pad < 1 {
		pad = 1
	}
	return fmt.Sprintf("  %s%s%s", c.Apply(BrightGreen, cmd), strings.Repeat(" ", pad), c.Description(desc))
}

// Separator returns a colored separator line
func (c *ColorConfig) Separator(width int) string {
	return c.Apply(c.Theme.Separator, strings.Repeat("─", width))
}

// StatusIcon returns a colored status icon (respects emoji settings)
func (c *ColorConfig) StatusIcon(status string) string {
	if !c.EmojiEnabled {
		switch strings.ToLower(status) {
		case "success", "running", "active", "current":
			return c.Success("[OK]")
		case "warning", "pending":
			return c.Warning("[WARN]")
		case "error", "failed", "stopped", "missing":
			return c.Error("[ERR]")
		case "info":
			return c.Info("[INFO]")
		default:
			return c.Apply(c.Theme.Pending, "[ ]")
		}
	}

	switch strings.ToLower(status) {
	case "success", "running", "active", "current":
		return c.Success("✓")
	case "warning", "pending":
		return c.Warning("⚠")
	case "error", "failed", "stopped", "missing":
		return c.Error("✗")
	case "info":
		return c.Info("ℹ")
	default:
		return c.Apply(c.Theme.Pending, "○")
	}
}
