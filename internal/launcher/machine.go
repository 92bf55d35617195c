package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wmtogether/workspace-launcher/internal/config"
	"github.com/wmtogether/workspace-launcher/internal/exitcodes"
	"github.com/wmtogether/workspace-launcher/internal/feed"
	"github.com/wmtogether/workspace-launcher/internal/launch"
	"github.com/wmtogether/workspace-launcher/internal/update"
)

// State is one node of the launch pipeline. The transition table, not
// incidental control flow, decides which failures fall back to the
// main app and which terminate the run.
type State int

const (
	StateResolvingPaths State = iota
	StateCheckingUpdate
	StatePromptingUser
	StateDownloading
	StateLaunchingInstaller
	StateLaunchingMainApp
)

func (s State) String() string {
	switch s {
	case StateResolvingPaths:
		return "resolving-paths"
	case StateCheckingUpdate:
		return "checking-update"
	case StatePromptingUser:
		return "prompting-user"
	case StateDownloading:
		return "downloading"
	case StateLaunchingInstaller:
		return "launching-installer"
	case StateLaunchingMainApp:
		return "launching-main-app"
	}
	return "unknown"
}

// FeedClient fetches the latest remote release, or reports it absent.
type FeedClient interface {
	FetchLatest() (*feed.Release, bool)
}

// Downloader streams an asset to a local file.
type Downloader interface {
	Download(url, dest string, progress func(written, total int64)) error
}

// Prompter asks the blocking yes/no update question. Dismissal and
// "no" are the same answer.
type Prompter interface {
	ConfirmUpdate(local, remote string) bool
}

// Notifier surfaces user-visible errors (the modal dialogs of the
// launcher's previous life).
type Notifier interface {
	ShowError(problem string, actions ...string)
}

// ShowProgressFunc wraps a download in a progress display. The display
// is a side channel: its own failure must be absorbed and the returned
// error must be exactly the download's.
type ShowProgressFunc func(title, subtitle string, run func(report func(written, total int64)) error) error

// Machine wires the launch pipeline. Every field must be set; Run is
// single-shot.
type Machine struct {
	Cfg          config.Config
	ResolveDir   func() (string, error) // launcher's own directory
	ReadVersion  func(path string) string
	Feed         FeedClient
	Download     Downloader
	Spawn        launch.Spawner
	Prompt       Prompter
	Notify       Notifier
	ShowProgress ShowProgressFunc
	TempDir      string
	Log          *log.Logger

	appDir string
	local  string
	rel    *feed.Release
	dest   string
}

// Run drives the machine to a terminal action and returns the process
// exit code. Exactly one handoff is attempted per run; every branch
// that cannot hand off to the installer converges on the main app,
// except a failed installer launch, which terminates without a
// fallback (a partially started installer may already be replacing
// files under us).
func (m *Machine) Run() int {
	state := StateResolvingPaths
	for {
		m.Log.Debug("state", "state", state.String())
		switch state {
		case StateResolvingPaths:
			dir, err := m.ResolveDir()
			if err != nil {
				m.Notify.ShowError("Failed to resolve application directory")
				return exitcodes.GeneralError
			}
			m.appDir = dir
			m.local = m.ReadVersion(filepath.Join(dir, m.Cfg.VersionFile))
			state = StateCheckingUpdate

		case StateCheckingUpdate:
			rel, ok := m.Feed.FetchLatest()
			if !ok {
				// All feed failures collapse to "no update this run";
				// the user never sees them.
				m.Log.Debug("update check failed or no matching asset")
				state = StateLaunchingMainApp
				continue
			}
			m.rel = rel
			m.saveCheckCache()
			if !update.ShouldUpdate(m.local, rel) {
				m.Log.Debug("already current", "version", m.local)
				state = StateLaunchingMainApp
				continue
			}
			state = StatePromptingUser

		case StatePromptingUser:
			if !m.Prompt.ConfirmUpdate(m.local, m.rel.Version) {
				m.Log.Debug("update declined", "remote", m.rel.Version)
				state = StateLaunchingMainApp
				continue
			}
			state = StateDownloading

		case StateDownloading:
			m.dest = filepath.Join(m.TempDir, m.rel.AssetName)
			// A leftover from an earlier run is untrustworthy.
			_ = os.Remove(m.dest)
			title := fmt.Sprintf("Downloading %s %s...", m.Cfg.AppName, m.rel.Version)
			err := m.ShowProgress(title, m.rel.AssetName, func(report func(int64, int64)) error {
				return m.Download.Download(m.rel.DownloadURL, m.dest, report)
			})
			if err != nil {
				m.Log.Warn("download failed", "err", err)
				m.Notify.ShowError("Failed to download update",
					"Check your network connection",
					"The update will be offered again on next launch")
				state = StateLaunchingMainApp
				continue
			}
			state = StateLaunchingInstaller

		case StateLaunchingInstaller:
			if err := m.Spawn.StartInstaller(m.dest, m.Cfg.InstallerArgs); err != nil {
				m.Log.Error("installer launch failed", "err", err)
				m.Notify.ShowError("Failed to launch installer")
				// No main-app fallback here: terminate so we never race
				// an installer that may have partially started.
				return exitcodes.Success
			}
			// The installer owns the update from here on.
			return exitcodes.Success

		case StateLaunchingMainApp:
			path := filepath.Join(m.appDir, m.Cfg.MainExe)
			if err := m.Spawn.StartMainApp(path); err != nil {
				m.Log.Error("main app launch failed", "err", err)
				m.Notify.ShowError(fmt.Sprintf("Failed to launch %s", m.Cfg.MainExe))
				return exitcodes.GeneralError
			}
			return exitcodes.Success
		}
	}
}

// saveCheckCache records the check outcome for the status command.
// Best effort; the pipeline never depends on it.
func (m *Machine) saveCheckCache() {
	entry := &update.CacheEntry{
		CheckedAt:       time.Now(),
		LocalVersion:    m.local,
		LatestVersion:   m.rel.Version,
		UpdateAvailable: update.ShouldUpdate(m.local, m.rel),
	}
	if err := update.SaveCache(m.appDir, entry); err != nil {
		m.Log.Debug("cache write failed", "err", err)
	}
}
