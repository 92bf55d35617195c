package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/wmtogether/workspace-launcher/internal/config"
	"github.com/wmtogether/workspace-launcher/internal/feed"
	"github.com/wmtogether/workspace-launcher/internal/update"
)

const checkFeedDoc = `{
  "tag_name": "v2.4.0",
  "assets": [
    {"browser_download_url": "https://downloads.example.com/Workspace-2.4.0-Setup.exe"}
  ]
}`

func writeVersionFile(t *testing.T, dir, ver string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "version.txt"), []byte(ver+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunCheckUpdateAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(checkFeedDoc))
	}))
	defer srv.Close()

	appDir := t.TempDir()
	writeVersionFile(t, appDir, "2.3.0")

	cfg := config.Defaults()
	client := feed.NewClient(srv.URL, cfg.UserAgent, cfg.AssetSuffix)

	res := runCheck(appDir, cfg, client)
	if !res.FeedReachable {
		t.Fatal("feed should be reachable")
	}
	if res.LocalVersion != "2.3.0" || res.LatestVersion != "2.4.0" {
		t.Fatalf("versions = %q / %q", res.LocalVersion, res.LatestVersion)
	}
	if !res.UpdateAvailable {
		t.Error("expected update to be available")
	}
	if res.AssetName != "Workspace-2.4.0-Setup.exe" {
		t.Errorf("asset = %q", res.AssetName)
	}

	entry, err := update.LoadCache(appDir)
	if err != nil {
		t.Fatalf("check should record a cache entry: %v", err)
	}
	if entry.LatestVersion != "2.4.0" || !entry.UpdateAvailable {
		t.Errorf("cache entry = %+v", entry)
	}
}

func TestRunCheckUpToDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(checkFeedDoc))
	}))
	defer srv.Close()

	appDir := t.TempDir()
	writeVersionFile(t, appDir, "2.4.0")

	cfg := config.Defaults()
	res := runCheck(appDir, cfg, feed.NewClient(srv.URL, cfg.UserAgent, cfg.AssetSuffix))
	if res.UpdateAvailable {
		t.Error("same version should not report an update")
	}
}

func TestRunCheckFeedDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	appDir := t.TempDir()
	cfg := config.Defaults()
	res := runCheck(appDir, cfg, feed.NewClient(srv.URL, cfg.UserAgent, cfg.AssetSuffix))

	if res.FeedReachable {
		t.Error("5xx should count as unreachable")
	}
	if res.LocalVersion != "0.0.0" {
		t.Errorf("missing version file should fall back, got %q", res.LocalVersion)
	}
	if res.UpdateAvailable {
		t.Error("no feed means no update")
	}
	if _, err := update.LoadCache(appDir); err == nil {
		t.Error("failed check should not write a cache entry")
	}
}
