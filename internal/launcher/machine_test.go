package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wmtogether/workspace-launcher/internal/config"
	"github.com/wmtogether/workspace-launcher/internal/feed"
	"github.com/wmtogether/workspace-launcher/internal/logging"
)

type fakeFeed struct {
	rel *feed.Release
	ok  bool
}

func (f fakeFeed) FetchLatest() (*feed.Release, bool) { return f.rel, f.ok }

type fakeDownloader struct {
	err    error
	called bool
	url    string
	dest   string
}

func (d *fakeDownloader) Download(url, dest string, progress func(int64, int64)) error {
	d.called = true
	d.url = url
	d.dest = dest
	if d.err == nil && progress != nil {
		progress(8192, 16384)
		progress(16384, 16384)
	}
	return d.err
}

type fakeSpawner struct {
	installerCalled bool
	installerPath   string
	installerArgs   []string
	installerErr    error
	mainCalled      bool
	mainPath        string
	mainErr         error
}

func (s *fakeSpawner) StartInstaller(path string, args []string) error {
	s.installerCalled = true
	s.installerPath = path
	s.installerArgs = args
	return s.installerErr
}

func (s *fakeSpawner) StartMainApp(path string) error {
	s.mainCalled = true
	s.mainPath = path
	return s.mainErr
}

type fakePrompter struct {
	answer bool
	asked  bool
	local  string
	remote string
}

func (p *fakePrompter) ConfirmUpdate(local, remote string) bool {
	p.asked = true
	p.local = local
	p.remote = remote
	return p.answer
}

type fakeNotifier struct{ problems []string }

func (n *fakeNotifier) ShowError(problem string, actions ...string) {
	n.problems = append(n.problems, problem)
}

func passthroughProgress(title, subtitle string, run func(report func(int64, int64)) error) error {
	return run(func(int64, int64) {})
}

func testRelease() *feed.Release {
	return &feed.Release{
		Version:     "1.3.0",
		DownloadURL: "https://x/y/app-1.3.0.exe",
		AssetName:   "app-1.3.0.exe",
	}
}

type fixture struct {
	m   *Machine
	dl  *fakeDownloader
	sp  *fakeSpawner
	pr  *fakePrompter
	nt  *fakeNotifier
	dir string
	tmp string
}

func newFixture(t *testing.T, f fakeFeed, answer bool) *fixture {
	t.Helper()
	dir := t.TempDir()
	tmp := t.TempDir()

	fx := &fixture{
		dl:  &fakeDownloader{},
		sp:  &fakeSpawner{},
		pr:  &fakePrompter{answer: answer},
		nt:  &fakeNotifier{},
		dir: dir,
		tmp: tmp,
	}
	fx.m = &Machine{
		Cfg:          config.Defaults(),
		ResolveDir:   func() (string, error) { return dir, nil },
		ReadVersion:  func(string) string { return "1.2.0" },
		Feed:         f,
		Download:     fx.dl,
		Spawn:        fx.sp,
		Prompt:       fx.pr,
		Notify:       fx.nt,
		ShowProgress: passthroughProgress,
		TempDir:      tmp,
		Log:          logging.Discard(),
	}
	return fx
}

func TestRunNoUpdateLaunchesMainApp(t *testing.T) {
	fx := newFixture(t, fakeFeed{ok: false}, true)

	code := fx.m.Run()
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !fx.sp.mainCalled {
		t.Error("main app should be launched when the feed is absent")
	}
	if fx.sp.installerCalled {
		t.Error("installer must not be launched without an update")
	}
	if fx.pr.asked {
		t.Error("prompt must not be shown without an update")
	}
	if want := filepath.Join(fx.dir, "workspace.exe"); fx.sp.mainPath != want {
		t.Errorf("main app path = %q, want %q", fx.sp.mainPath, want)
	}
}

func TestRunSameVersionLaunchesMainApp(t *testing.T) {
	rel := testRelease()
	rel.Version = "1.2.0" // byte-equal to local
	fx := newFixture(t, fakeFeed{rel: rel, ok: true}, true)

	if code := fx.m.Run(); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if fx.pr.asked {
		t.Error("no prompt when versions are byte-equal")
	}
	if !fx.sp.mainCalled {
		t.Error("main app should be launched")
	}
}

func TestRunDeclinedPromptSkipsDownload(t *testing.T) {
	fx := newFixture(t, fakeFeed{rel: testRelease(), ok: true}, false)

	if code := fx.m.Run(); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !fx.pr.asked {
		t.Error("prompt should be shown")
	}
	if fx.pr.local != "1.2.0" || fx.pr.remote != "1.3.0" {
		t.Errorf("prompt saw %q -> %q, want 1.2.0 -> 1.3.0", fx.pr.local, fx.pr.remote)
	}
	if fx.dl.called {
		t.Error("no download after a declined prompt")
	}
	if !fx.sp.mainCalled {
		t.Error("main app should be launched after decline")
	}
}

func TestRunAcceptedUpdateLaunchesInstaller(t *testing.T) {
	fx := newFixture(t, fakeFeed{rel: testRelease(), ok: true}, true)

	if code := fx.m.Run(); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !fx.dl.called {
		t.Fatal("download should run after consent")
	}
	if fx.dl.url != "https://x/y/app-1.3.0.exe" {
		t.Errorf("download url = %q", fx.dl.url)
	}
	wantDest := filepath.Join(fx.tmp, "app-1.3.0.exe")
	if fx.dl.dest != wantDest {
		t.Errorf("download dest = %q, want %q", fx.dl.dest, wantDest)
	}
	if !fx.sp.installerCalled {
		t.Fatal("installer should be launched")
	}
	if fx.sp.installerPath != wantDest {
		t.Errorf("installer path = %q, want %q", fx.sp.installerPath, wantDest)
	}
	if len(fx.sp.installerArgs) != 2 || fx.sp.installerArgs[0] != "/UPDATE" || fx.sp.installerArgs[1] != "/SILENT" {
		t.Errorf("installer args = %v, want [/UPDATE /SILENT]", fx.sp.installerArgs)
	}
	if fx.sp.mainCalled {
		t.Error("main app must not be launched after installer handoff")
	}
}

func TestRunDownloadFailureFallsBackToMainApp(t *testing.T) {
	fx := newFixture(t, fakeFeed{rel: testRelease(), ok: true}, true)
	fx.dl.err = errors.New("connection reset")

	if code := fx.m.Run(); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if fx.sp.installerCalled {
		t.Error("installer must not be launched after a failed download")
	}
	if !fx.sp.mainCalled {
		t.Error("main app should be launched after a failed download")
	}
	if len(fx.nt.problems) == 0 {
		t.Error("download failure should be user-visible")
	}
}

func TestRunInstallerFailureDoesNotFallBack(t *testing.T) {
	fx := newFixture(t, fakeFeed{rel: testRelease(), ok: true}, true)
	fx.sp.installerErr = errors.New("CreateProcess failed")

	code := fx.m.Run()
	if fx.sp.mainCalled {
		t.Error("main app must NOT be launched after a failed installer launch")
	}
	if len(fx.nt.problems) == 0 {
		t.Error("installer failure should be user-visible")
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}

func TestRunDowngradeStillPrompts(t *testing.T) {
	rel := testRelease()
	rel.Version = "0.9.0"
	fx := newFixture(t, fakeFeed{rel: rel, ok: true}, false)

	_ = fx.m.Run()
	if !fx.pr.asked {
		t.Error("textual inequality must trigger the prompt even for an older tag")
	}
}

func TestRunResolveDirFailure(t *testing.T) {
	fx := newFixture(t, fakeFeed{ok: false}, true)
	fx.m.ResolveDir = func() (string, error) { return "", errors.New("no exe path") }

	if code := fx.m.Run(); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if fx.sp.mainCalled || fx.sp.installerCalled {
		t.Error("nothing should be launched when path resolution fails")
	}
}

func TestRunMainAppLaunchFailure(t *testing.T) {
	fx := newFixture(t, fakeFeed{ok: false}, true)
	fx.sp.mainErr = errors.New("file not found")

	if code := fx.m.Run(); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if len(fx.nt.problems) == 0 {
		t.Error("main app launch failure should be user-visible")
	}
}

func TestRunRemovesStaleDownload(t *testing.T) {
	fx := newFixture(t, fakeFeed{rel: testRelease(), ok: true}, true)
	stale := filepath.Join(fx.tmp, "app-1.3.0.exe")
	if err := os.WriteFile(stale, []byte("stale bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	_ = fx.m.Run()
	if !fx.dl.called {
		t.Fatal("download should run")
	}
	// The fake downloader writes nothing, so the path only exists if
	// the stale file survived.
	if _, err := os.Stat(stale); err == nil {
		t.Error("stale installer should be removed before download")
	}
}

func TestRunWritesCheckCache(t *testing.T) {
	fx := newFixture(t, fakeFeed{rel: testRelease(), ok: true}, false)
	_ = fx.m.Run()

	if _, err := os.Stat(filepath.Join(fx.dir, ".update-check")); err != nil {
		t.Errorf("check cache should be written: %v", err)
	}
}
