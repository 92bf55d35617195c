package main

import (
	"os"
	"path/filepath"

	"github.com/wmtogether/workspace-launcher/internal/config"
	"github.com/wmtogether/workspace-launcher/internal/download"
	"github.com/wmtogether/workspace-launcher/internal/feed"
	"github.com/wmtogether/workspace-launcher/internal/launch"
	"github.com/wmtogether/workspace-launcher/internal/launcher"
	"github.com/wmtogether/workspace-launcher/internal/logging"
	"github.com/wmtogether/workspace-launcher/internal/ui"
	"github.com/wmtogether/workspace-launcher/internal/version"
)

// runLaunch assembles the production state machine and drives it to
// its terminal action. This is the whole job of a bare invocation.
func runLaunch() error {
	appDir, err := resolveAppDir()
	if err != nil {
		ui.PrintError(ui.ErrorMessage{Problem: "Failed to resolve application directory"})
		return silentErr{code: 1}
	}

	cfg, err := config.Load(appDir)
	if err != nil {
		// A broken launcher.yaml must not strand the user; fall back
		// to defaults and keep launching.
		cfg = config.Defaults()
	}

	logger, closeLog := logging.New(flagVerbose, cfg.ResolveLogFile(appDir))
	defer closeLog()

	m := &launcher.Machine{
		Cfg:         cfg,
		ResolveDir:  func() (string, error) { return appDir, nil },
		ReadVersion: version.Read,
		Feed:        feed.NewClient(cfg.LatestReleaseURL(), cfg.UserAgent, cfg.AssetSuffix),
		Download:    downloadAdapter{download.New(cfg.UserAgent)},
		Spawn:       launch.ProcSpawner{},
		Prompt:      updatePrompter{p: ttyPrompter{}},
		Notify:      dialogNotifier{},
		ShowProgress: func(title, subtitle string, run func(report func(int64, int64)) error) error {
			return ui.ShowDownload(title, subtitle, run)
		},
		TempDir: cfg.ResolveTempDir(),
		Log:     logger,
	}

	if code := m.Run(); code != 0 {
		return silentErr{code: code}
	}
	return nil
}

// downloadAdapter narrows *download.Downloader to the machine's
// Downloader interface (the concrete ProgressFunc type differs).
type downloadAdapter struct{ d *download.Downloader }

func (a downloadAdapter) Download(url, dest string, progress func(written, total int64)) error {
	var p download.ProgressFunc
	if progress != nil {
		p = func(written, total int64) { progress(written, total) }
	}
	return a.d.Download(url, dest, p)
}

// resolveAppDir returns the directory holding the launcher binary,
// following a symlinked executable to its real location.
func resolveAppDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if real, err := filepath.EvalSymlinks(exe); err == nil {
		exe = real
	}
	return filepath.Dir(exe), nil
}
