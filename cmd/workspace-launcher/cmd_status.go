package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wmtogether/workspace-launcher/internal/config"
	"github.com/wmtogether/workspace-launcher/internal/launch"
	"github.com/wmtogether/workspace-launcher/internal/update"
	"github.com/wmtogether/workspace-launcher/internal/version"
)

// statusResult reports the local install and process state.
type statusResult struct {
	AppName         string `json:"app_name" yaml:"app_name"`
	LocalVersion    string `json:"local_version" yaml:"local_version"`
	MainExe         string `json:"main_exe" yaml:"main_exe"`
	MainExePresent  bool   `json:"main_exe_present" yaml:"main_exe_present"`
	Running         bool   `json:"running" yaml:"running"`
	PID             int32  `json:"pid,omitempty" yaml:"pid,omitempty"`
	LastCheckedAt   string `json:"last_checked_at,omitempty" yaml:"last_checked_at,omitempty"`
	LastCheckFresh  bool   `json:"last_check_fresh" yaml:"last_check_fresh"`
	LatestKnown     string `json:"latest_known,omitempty" yaml:"latest_known,omitempty"`
	UpdateAvailable bool   `json:"update_available" yaml:"update_available"`
}

func computeStatus(appDir string, cfg config.Config) statusResult {
	res := statusResult{
		AppName:      cfg.AppName,
		LocalVersion: version.Read(filepath.Join(appDir, cfg.VersionFile)),
		MainExe:      cfg.MainExe,
	}

	if _, err := os.Stat(filepath.Join(appDir, cfg.MainExe)); err == nil {
		res.MainExePresent = true
	}

	if pid, ok := launch.FindProcess(cfg.MainExe); ok {
		res.Running = true
		res.PID = pid
	}

	if entry, err := update.LoadCache(appDir); err == nil {
		res.LastCheckedAt = entry.CheckedAt.Format(time.RFC3339)
		res.LastCheckFresh = update.IsCacheValid(entry)
		res.LatestKnown = entry.LatestVersion
		res.UpdateAvailable = entry.UpdateAvailable
	}

	return res
}

func printStatusText(res statusResult) {
	p := getPrinter()
	c := p.Colors

	p.Header(res.AppName + " Launcher")
	p.KeyValueLine("Installed version", res.LocalVersion, "")

	if res.MainExePresent {
		fmt.Printf("%s %s %s\n", c.StatusIcon("success"), c.Label("Application:"), res.MainExe)
	} else {
		fmt.Printf("%s %s %s %s\n", c.StatusIcon("missing"), c.Label("Application:"), res.MainExe, c.Description("(not found)"))
	}

	if res.Running {
		fmt.Printf("%s %s pid %d\n", c.StatusIcon("running"), c.Label("Process:"), res.PID)
	} else {
		fmt.Printf("%s %s not running\n", c.StatusIcon("stopped"), c.Label("Process:"))
	}

	if res.LastCheckedAt == "" {
		p.KeyValueLine("Last update check", "never", "dim")
		return
	}
	freshness := "stale"
	if res.LastCheckFresh {
		freshness = "fresh"
	}
	p.KeyValueLine("Last update check", fmt.Sprintf("%s (%s)", res.LastCheckedAt, freshness), "dim")
	if res.UpdateAvailable {
		p.Info(fmt.Sprintf("Update available: %s", res.LatestKnown))
	}
}

func init() {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show install, process, and last-check state",
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir, err := resolveAppDir()
			if err != nil {
				return err
			}
			cfg, err := config.Load(appDir)
			if err != nil {
				cfg = config.Defaults()
			}

			res := computeStatus(appDir, cfg)

			switch flagOutput {
			case "json":
				getPrinter().JSON(res)
			case "yaml":
				data, err := yaml.Marshal(res)
				if err != nil {
					return err
				}
				fmt.Print(string(data))
			case "text", "":
				if flagQuiet {
					fmt.Printf("version=%s present=%v running=%v update=%v\n",
						res.LocalVersion, res.MainExePresent, res.Running, res.UpdateAvailable)
				} else {
					printStatusText(res)
				}
			default:
				return fmt.Errorf("invalid --output: %s (use json|yaml|text)", flagOutput)
			}
			return nil
		},
	}
	rootCmd.AddCommand(statusCmd)
}
