package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wmtogether/workspace-launcher/internal/exitcodes"
	ui "github.com/wmtogether/workspace-launcher/internal/ui"
)

// Version information - set via -ldflags during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// rootCmd wires the CLI surface using Cobra. The bare invocation runs
// the launch pipeline, matching how the launcher is started from a
// shortcut; subcommands cover diagnostics (check, status, logs,
// version).
var rootCmd = &cobra.Command{
	Use:           "workspace-launcher",
	Short:         "Workspace Launcher",
	Long:          "Check for Workspace updates, hand off to the installer when one is accepted, and start the application otherwise.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize global UI config from flags after parsing but
		// before command execution.
		ui.InitGlobal(ui.Config{
			NoColor:        flagNoColor,
			NoEmoji:        flagNoEmoji,
			Yes:            flagYes,
			NonInteractive: flagNonInteractive,
			Verbose:        flagVerbose,
			Quiet:          flagQuiet,
		})

		// Set NO_COLOR env so lipgloss and other libraries respect the flag
		if flagNoColor {
			os.Setenv("NO_COLOR", "1")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLaunch()
	},
}

var (
	flagOutput         string
	flagVerbose        bool
	flagQuiet          bool
	flagNoColor        bool
	flagNoEmoji        bool
	flagYes            bool
	flagNonInteractive bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format: json|yaml|text")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Quiet mode: minimal output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable ANSI colors")
	rootCmd.PersistentFlags().BoolVar(&flagNoEmoji, "no-emoji", false, "Disable emoji output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Assume yes for the update prompt")
	rootCmd.PersistentFlags().BoolVar(&flagNonInteractive, "non-interactive", false, "Never prompt; treat the update question as declined")

	// Replace root help to present grouped, example-rich output.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			fmt.Fprintln(os.Stdout, cmd.UsageString())
			return
		}
		// Help runs before PersistentPreRun, so manually configure colors
		c := ui.NewColorConfig()
		c.Enabled = c.Enabled && !flagNoColor
		c.EmojiEnabled = c.EmojiEnabled && !flagNoEmoji
		w := os.Stdout

		const cmdWidth = 20

		fmt.Fprintln(w, c.Header(" Workspace Launcher "))
		fmt.Fprintln(w, c.Description("Check for updates, hand off to the installer, or start Workspace."))
		fmt.Fprintln(w, c.Separator(50))
		fmt.Fprintln(w)

		fmt.Fprintln(w, c.SubHeader("USAGE"))
		fmt.Fprintf(w, "  %s [command] [flags]\n", "workspace-launcher")
		fmt.Fprintln(w, c.Description("  With no command, runs the full launch pipeline."))
		fmt.Fprintln(w)

		fmt.Fprintln(w, c.SubHeader("Commands"))
		fmt.Fprintln(w, c.FormatCommandAligned("check", "Check for updates without launching anything", cmdWidth))
		fmt.Fprintln(w, c.FormatCommandAligned("status", "Show install, process, and last-check state", cmdWidth))
		fmt.Fprintln(w, c.FormatCommandAligned("logs", "Print or follow the launcher log", cmdWidth))
		fmt.Fprintln(w, c.FormatCommandAligned("version", "Show launcher version", cmdWidth))
		fmt.Fprintln(w)

		fmt.Fprintln(w, c.SubHeader("Examples"))
		fmt.Fprintln(w, c.Description("  workspace-launcher                # normal launch with update check"))
		fmt.Fprintln(w, c.Description("  workspace-launcher --yes          # accept the update prompt automatically"))
		fmt.Fprintln(w, c.Description("  workspace-launcher check -o json  # machine-readable update check"))
		fmt.Fprintln(w)
	})
}

// silentErr marks an error whose message was already shown to the
// user by the state machine; Execute must not print it again.
type silentErr struct{ code int }

func (silentErr) Error() string { return "" }

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var se silentErr
		if errors.As(err, &se) {
			os.Exit(se.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcodes.CodeForError(err))
	}
}
