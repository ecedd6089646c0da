package mock

import (
	"context"

	"github.com/GongyiChuren/docsift"
)

var _ docsift.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of docsift.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) (string, error)
}

func (d *Downloader) Download(ctx context.Context, url string) (string, error) {
	return d.DownloadFn(ctx, url)
}
