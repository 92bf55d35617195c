package feed

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// feedBufferSize caps how much of the feed document is read. A larger
// document is silently truncated; the fields we scan for appear early
// in practice, so truncation is an accepted limitation rather than an
// error.
const feedBufferSize = 8192

const httpTimeout = 30 * time.Second

// Release describes the newest remote release. Either all three
// fields are populated and consistent (AssetName is the basename of
// DownloadURL), or the release is reported as absent.
type Release struct {
	Version     string
	DownloadURL string
	AssetName   string
}

// HTTPDoer interface for HTTP requests (allows mocking in tests).
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches the latest-release feed for one repository.
type Client struct {
	URL         string // latest-release endpoint
	UserAgent   string
	AssetSuffix string // substring an asset URL must contain, e.g. ".exe"
	HTTP        HTTPDoer
}

// NewClient returns a feed client with a default HTTP client.
func NewClient(url, userAgent, assetSuffix string) *Client {
	return &Client{
		URL:         url,
		UserAgent:   userAgent,
		AssetSuffix: assetSuffix,
		HTTP:        &http.Client{Timeout: httpTimeout},
	}
}

// FetchLatest performs one GET against the feed endpoint and extracts
// the latest release. Every failure mode (connection, request, read,
// missing tag, no matching asset) collapses to absent: a transient
// blip means "no update this run", never a user-visible error.
func (c *Client) FetchLatest() (*Release, bool) {
	buf, ok := c.FetchDocument()
	if !ok {
		return nil, false
	}
	return ExtractLatestAsset(buf, c.AssetSuffix)
}

// FetchDocument performs the GET and returns the raw feed document,
// capped at feedBufferSize bytes. Absent on any network failure.
func (c *Client) FetchDocument() ([]byte, bool) {
	req, err := http.NewRequest(http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, false
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, false
	}

	buf, err := io.ReadAll(io.LimitReader(resp.Body, feedBufferSize))
	if err != nil || len(buf) == 0 {
		return nil, false
	}
	return buf, true
}

// ExtractLatestAsset scans a feed document for a tag_name and the
// first browser_download_url whose value contains suffix. This is a
// deliberate streaming text scan, not a JSON decoder: the feed's shape
// is stable and the two fields we need are keyed strings. Swapping in
// a real decoder later only touches this function.
func ExtractLatestAsset(buf []byte, suffix string) (*Release, bool) {
	doc := string(buf)

	tag, ok := quotedValueAfterKey(doc, `"tag_name"`)
	if !ok || tag == "" {
		return nil, false
	}
	ver := strings.TrimPrefix(tag, "v")
	if ver == "" {
		return nil, false
	}

	url, ok := firstAssetURL(doc, suffix)
	if !ok {
		return nil, false
	}

	name := url
	if i := strings.LastIndex(url, "/"); i >= 0 {
		name = url[i+1:]
	}
	if name == "" {
		return nil, false
	}

	return &Release{Version: ver, DownloadURL: url, AssetName: name}, true
}

// quotedValueAfterKey finds the first occurrence of key, then the next
// ':', then the next quoted string, and returns its contents.
func quotedValueAfterKey(doc, key string) (string, bool) {
	i := strings.Index(doc, key)
	if i < 0 {
		return "", false
	}
	return quotedValue(doc[i+len(key):])
}

// quotedValue locates the next ':' and returns the contents of the
// quoted string that follows it.
func quotedValue(rest string) (string, bool) {
	c := strings.Index(rest, ":")
	if c < 0 {
		return "", false
	}
	rest = rest[c+1:]

	open := strings.Index(rest, `"`)
	if open < 0 {
		return "", false
	}
	rest = rest[open+1:]

	end := strings.Index(rest, `"`)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// firstAssetURL iterates browser_download_url occurrences and accepts
// the first value containing suffix. First match wins: release assets
// are listed in a stable order and exactly one matters.
func firstAssetURL(doc, suffix string) (string, bool) {
	const key = `"browser_download_url"`
	rest := doc
	for {
		i := strings.Index(rest, key)
		if i < 0 {
			return "", false
		}
		rest = rest[i+len(key):]

		val, ok := quotedValue(rest)
		if !ok {
			continue
		}
		if strings.Contains(val, suffix) {
			return val, true
		}
	}
}
