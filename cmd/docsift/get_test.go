package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/GongyiChuren/docsift"
	main "github.com/GongyiChuren/docsift/cmd/docsift"
	"github.com/GongyiChuren/docsift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the saved path", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Downloader: &mock.Downloader{
				DownloadFn: func(_ context.Context, url string) (string, error) {
					assert.Equal(t, "https://example.edu/deck.pptx", url)
					return "downloads/deck.pptx", nil
				},
			},
		}

		cmd := &main.GetCmd{URL: "https://example.edu/deck.pptx"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved downloads/deck.pptx")
	})

	t.Run("falls back to the browser when the link is unreachable", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		opened := ""

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Downloader: &mock.Downloader{
				DownloadFn: func(_ context.Context, _ string) (string, error) {
					return "", docsift.Errorf(docsift.EUNAVAILABLE, "download failed: status 410")
				},
			},
			OpenURL: func(_ context.Context, url string) error {
				opened = url
				return nil
			},
		}

		cmd := &main.GetCmd{URL: "https://example.edu/deck.pptx"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://example.edu/deck.pptx", opened)
		assert.Contains(t, stdout.String(), "opening deck.pptx in the browser")
	})

	t.Run("returns non-fallback errors directly", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Downloader: &mock.Downloader{
				DownloadFn: func(_ context.Context, _ string) (string, error) {
					return "", docsift.Errorf(docsift.EINVALID, "invalid download URL")
				},
			},
			OpenURL: func(_ context.Context, _ string) error {
				t.Fatal("browser fallback must not run for invalid URLs")
				return nil
			},
		}

		cmd := &main.GetCmd{URL: "::::"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, docsift.EINVALID, docsift.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("reports a failing fallback", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Downloader: &mock.Downloader{
				DownloadFn: func(_ context.Context, _ string) (string, error) {
					return "", docsift.Errorf(docsift.EUNAVAILABLE, "download failed")
				},
			},
			OpenURL: func(_ context.Context, _ string) error {
				return docsift.Errorf(docsift.EUNAVAILABLE, "no browser found")
			},
		}

		cmd := &main.GetCmd{URL: "https://example.edu/deck.pptx"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, docsift.EUNAVAILABLE, docsift.ErrorCode(err))
	})
}
