package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/GongyiChuren/docsift"
)

// Ensure LoggingDownloader implements docsift.Downloader.
var _ docsift.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with logging of download outcomes.
type LoggingDownloader struct {
	next   docsift.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next docsift.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download logs the result of the wrapped download.
func (d *LoggingDownloader) Download(ctx context.Context, url string) (string, error) {
	start := time.Now()
	path, err := d.next.Download(ctx, url)
	if err != nil {
		d.logger.Error("download failed",
			"url", url,
			"error", err,
			"duration", time.Since(start),
		)
		return "", err
	}
	d.logger.Info("download complete",
		"url", url,
		"path", path,
		"duration", time.Since(start),
	)
	return path, nil
}
