package version

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMarker(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "version.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain version", "1.2.3", "1.2.3"},
		{"v prefix stripped", "v1.2.3", "1.2.3"},
		{"only one v stripped", "vv1.2.3", "v1.2.3"},
		{"trailing newline", "1.2.3\n", "1.2.3"},
		{"windows line ending", "v2.0.0\r\n", "2.0.0"},
		{"first line only", "1.2.3\n2.0.0\n", "1.2.3"},
		{"arbitrary bytes accepted", "1.2.3-beta+build.7", "1.2.3-beta+build.7"},
		{"empty file", "", Fallback},
		{"lone v", "v\n", Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeMarker(t, tt.content)
			if got := Read(path); got != tt.want {
				t.Errorf("Read() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	if got := Read(path); got != Fallback {
		t.Errorf("Read(missing) = %q, want %q", got, Fallback)
	}
}

func TestReadDirectory(t *testing.T) {
	// Reading a directory fails; the fallback still applies.
	if got := Read(t.TempDir()); got != Fallback {
		t.Errorf("Read(dir) = %q, want %q", got, Fallback)
	}
}

func TestReadNeverWrites(t *testing.T) {
	path := writeMarker(t, "v1.0.0\n")
	before, _ := os.ReadFile(path)
	_ = Read(path)
	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("Read() modified the marker file")
	}
}
