package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the launcher's settings. Everything has a working
// default; a launcher.yaml next to the binary or WORKSPACE_* env vars
// can override individual values.
type Config struct {
	AppName       string   `mapstructure:"app_name"`
	MainExe       string   `mapstructure:"main_exe"`
	Repo          string   `mapstructure:"repo"`
	VersionFile   string   `mapstructure:"version_file"`
	AssetSuffix   string   `mapstructure:"asset_suffix"`
	InstallerArgs []string `mapstructure:"installer_args"`
	UserAgent     string   `mapstructure:"user_agent"`
	FeedURL       string   `mapstructure:"feed_url"` // override; empty = derive from Repo
	TempDir       string   `mapstructure:"temp_dir"` // override; empty = os.TempDir()
	LogFile       string   `mapstructure:"log_file"` // override; empty = launcher.log beside binary
}

// Defaults matches the shipped Workspace configuration.
func Defaults() Config {
	return Config{
		AppName:       "Workspace",
		MainExe:       "workspace.exe",
		Repo:          "wmtogether/chats",
		VersionFile:   "version.txt",
		AssetSuffix:   ".exe",
		InstallerArgs: []string{"/UPDATE", "/SILENT"},
		UserAgent:     "Workspace-Launcher/1.0",
	}
}

// Load reads defaults, then an optional launcher.yaml in appDir, then
// WORKSPACE_* environment variables. A missing config file is not an
// error; a malformed one is.
func Load(appDir string) (Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("app_name", d.AppName)
	v.SetDefault("main_exe", d.MainExe)
	v.SetDefault("repo", d.Repo)
	v.SetDefault("version_file", d.VersionFile)
	v.SetDefault("asset_suffix", d.AssetSuffix)
	v.SetDefault("installer_args", d.InstallerArgs)
	v.SetDefault("user_agent", d.UserAgent)
	v.SetDefault("feed_url", "")
	v.SetDefault("temp_dir", "")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("WORKSPACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if appDir != "" {
		v.SetConfigName("launcher")
		v.SetConfigType("yaml")
		v.AddConfigPath(appDir)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LatestReleaseURL returns the feed endpoint for the configured repo,
// honoring an explicit feed_url override.
func (c Config) LatestReleaseURL() string {
	if c.FeedURL != "" {
		return c.FeedURL
	}
	return "https://api.github.com/repos/" + c.Repo + "/releases/latest"
}

// ResolveTempDir returns the directory downloads land in.
func (c Config) ResolveTempDir() string {
	if c.TempDir != "" {
		return c.TempDir
	}
	return os.TempDir()
}

// ResolveLogFile returns the launcher's log file path.
func (c Config) ResolveLogFile(appDir string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(appDir, "launcher.log")
}
