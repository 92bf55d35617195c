package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wmtogether/workspace-launcher/internal/config"
	"github.com/wmtogether/workspace-launcher/internal/feed"
	"github.com/wmtogether/workspace-launcher/internal/update"
	"github.com/wmtogether/workspace-launcher/internal/version"
)

// checkResult is the machine-readable outcome of an update check.
type checkResult struct {
	LocalVersion    string `json:"local_version" yaml:"local_version"`
	LatestVersion   string `json:"latest_version,omitempty" yaml:"latest_version,omitempty"`
	UpdateAvailable bool   `json:"update_available" yaml:"update_available"`
	AssetName       string `json:"asset_name,omitempty" yaml:"asset_name,omitempty"`
	DownloadURL     string `json:"download_url,omitempty" yaml:"download_url,omitempty"`
	Downgrade       bool   `json:"downgrade,omitempty" yaml:"downgrade,omitempty"`
	FeedReachable   bool   `json:"feed_reachable" yaml:"feed_reachable"`
}

func runCheck(appDir string, cfg config.Config, client *feed.Client) checkResult {
	res := checkResult{
		LocalVersion: version.Read(filepath.Join(appDir, cfg.VersionFile)),
	}

	doc, ok := client.FetchDocument()
	if !ok {
		return res
	}
	res.FeedReachable = true

	rel, ok := feed.ExtractLatestAsset(doc, cfg.AssetSuffix)
	if !ok {
		return res
	}

	res.LatestVersion = rel.Version
	res.AssetName = rel.AssetName
	res.DownloadURL = rel.DownloadURL
	res.UpdateAvailable = update.ShouldUpdate(res.LocalVersion, rel)
	res.Downgrade = update.DowngradeHint(res.LocalVersion, rel.Version)

	_ = update.SaveCache(appDir, &update.CacheEntry{
		CheckedAt:       time.Now(),
		LocalVersion:    res.LocalVersion,
		LatestVersion:   rel.Version,
		UpdateAvailable: res.UpdateAvailable,
		FeedDigest:      update.Digest(doc),
	})

	return res
}

func printCheckText(res checkResult) {
	p := getPrinter()
	switch {
	case !res.FeedReachable:
		p.Warn("Release feed unreachable; no update this run")
	case res.LatestVersion == "":
		p.Warn("No installable asset found in the latest release")
	case !res.UpdateAvailable:
		p.Success(fmt.Sprintf("Already up to date (%s)", res.LocalVersion))
	default:
		p.Info(fmt.Sprintf("Update available: %s → %s", res.LocalVersion, res.LatestVersion))
		p.KeyValueLine("Asset", res.AssetName, "dim")
		if res.Downgrade {
			p.Warn("The published version is older than the installed one")
		}
	}
}

func init() {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check for updates without launching anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir, err := resolveAppDir()
			if err != nil {
				return err
			}
			cfg, err := config.Load(appDir)
			if err != nil {
				cfg = config.Defaults()
			}

			client := feed.NewClient(cfg.LatestReleaseURL(), cfg.UserAgent, cfg.AssetSuffix)
			res := runCheck(appDir, cfg, client)

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
				printCheckText(res)
			default:
				return fmt.Errorf("invalid --output: %s (use json|yaml|text)", flagOutput)
			}
			return nil
		},
	}
	rootCmd.AddCommand(checkCmd)
}
