// Package http provides an HTTP-based file downloader for discovered URLs.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/GongyiChuren/docsift"
)

// DefaultDownloadTimeout is the default timeout for download requests.
const DefaultDownloadTimeout = 60 * time.Second

// Compile-time interface verification.
var _ docsift.Downloader = (*Downloader)(nil)

// Downloader saves discovered URLs into a local directory. It does not
// verify that a URL is still reachable before attempting the download; an
// expired link simply fails with EUNAVAILABLE.
type Downloader struct {
	client *http.Client
	dir    string
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithTimeout sets the timeout for download requests.
// Defaults to DefaultDownloadTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.client.Timeout = d
	}
}

// NewDownloader creates a Downloader writing into dir.
func NewDownloader(dir string, opts ...Option) *Downloader {
	dl := &Downloader{
		client: &http.Client{Timeout: DefaultDownloadTimeout},
		dir:    dir,
	}
	for _, opt := range opts {
		opt(dl)
	}
	return dl
}

// Download fetches rawURL and writes it to a file named after the URL's
// final path segment (percent-decoded; DefaultFileName when empty). Returns
// the written path. Transport and status failures map to EUNAVAILABLE so
// callers can fall back to opening the URL in a browsing context.
func (d *Downloader) Download(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", docsift.Errorf(docsift.EINVALID, "invalid download URL: %v", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", docsift.Errorf(docsift.EUNAVAILABLE, "download failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", docsift.Errorf(docsift.EUNAVAILABLE, "download failed: status %d", resp.StatusCode)
	}

	name := docsift.DisplayName(rawURL)
	path := filepath.Join(d.dir, filepath.Base(name))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(path)
		return "", docsift.Errorf(docsift.EUNAVAILABLE, "writing %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}

	return path, nil
}
