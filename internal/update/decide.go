package update

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/wmtogether/workspace-launcher/internal/feed"
)

// ShouldUpdate reports whether an update should be offered: a release
// is present and its version string differs from the local one.
//
// The comparison is byte equality, not semver ordering. Any textual
// difference triggers the prompt, including a tag that orders below
// the local version. Publishing a rollback release must bring users
// back to it, so "different" is the contract, not "newer".
func ShouldUpdate(local string, rel *feed.Release) bool {
	if rel == nil {
		return false
	}
	return rel.Version != local
}

// DowngradeHint reports whether the remote version orders strictly
// below the local one under semver. Display-only: the prompt can warn
// the user, but the update decision never consults this.
func DowngradeHint(local, remote string) bool {
	l := ensureV(local)
	r := ensureV(remote)
	if !semver.IsValid(l) || !semver.IsValid(r) {
		return false
	}
	return semver.Compare(r, l) < 0
}

func ensureV(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
