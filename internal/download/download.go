package download

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// chunkSize is the fixed read size for the download loop. Progress is
// reported once per chunk.
const chunkSize = 8192

// ErrDownload is the single failure class for downloads. Network open,
// request, read, and destination write failures all collapse into it:
// the user sees "failed to download", nothing finer.
var ErrDownload = errors.New("download failed")

// ProgressFunc receives the cumulative byte count after each chunk.
// It is a reporting side channel only; nothing downstream may branch
// on it. Counts are monotonically non-decreasing.
type ProgressFunc func(written, total int64)

// HTTPDoer interface for HTTP requests (allows mocking in tests).
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Downloader streams release assets to local files.
type Downloader struct {
	UserAgent string
	HTTP      HTTPDoer
}

// New returns a downloader with a default HTTP client. No overall
// timeout: installers can be large and the response header timeout
// already bounds a hung server.
func New(userAgent string) *Downloader {
	return &Downloader{
		UserAgent: userAgent,
		HTTP: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: 30 * time.Second,
			},
		},
	}
}

// Download streams url into destPath. The destination handle and the
// response body are released on every exit path. A partial file is
// left behind on failure; the caller must treat the path as
// untrustworthy, not resume from it.
func (d *Downloader) Download(url, destPath string, progress ProgressFunc) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownload, err)
	}
	req.Header.Set("User-Agent", d.UserAgent)

	resp, err := d.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrDownload, resp.Status)
	}

	f, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer func() { _ = f.Close() }()

	total := resp.ContentLength
	var written int64
	buf := make([]byte, chunkSize)
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := f.Write(buf[:n]); werr != nil {
				return fmt.Errorf("%w: %v", ErrDownload, werr)
			}
			written += int64(n)
			if progress != nil {
				progress(written, total)
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("%w: %v", ErrDownload, rerr)
		}
		if n == 0 {
			// Zero-byte read without an error: treat as end-of-data.
			return nil
		}
	}
}
