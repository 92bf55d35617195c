package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
)

const (
	cacheFileName = ".update-check"
	cacheDuration = 10 * time.Minute
)

// CacheEntry records the outcome of the last update check. It is
// informational only, surfaced by the status command, and never feeds
// the update decision.
type CacheEntry struct {
	CheckedAt       time.Time `json:"checked_at"`
	LocalVersion    string    `json:"local_version"`
	LatestVersion   string    `json:"latest_version"`
	UpdateAvailable bool      `json:"update_available"`
	FeedDigest      uint64    `json:"feed_digest,omitempty"`
}

// Digest fingerprints a raw feed document for the cache, so status can
// show whether the feed content changed between checks.
func Digest(doc []byte) uint64 {
	return xxhash.Sum64(doc)
}

// CachePath returns the path to the cache file in dir.
func CachePath(dir string) string {
	return filepath.Join(dir, cacheFileName)
}

// LoadCache loads the cached update check result
func LoadCache(dir string) (*CacheEntry, error) {
	data, err := os.ReadFile(CachePath(dir))
	if err != nil {
		return nil, err
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// SaveCache saves the update check result
func SaveCache(dir string, entry *CacheEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(CachePath(dir), data, 0o644)
}

// IsCacheValid returns true if the entry is fresh (< 10m old).
func IsCacheValid(entry *CacheEntry) bool {
	return time.Since(entry.CheckedAt) < cacheDuration
}
