package docsift_test

import (
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/GongyiChuren/docsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePreviewURL(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://viewer.example.com/")
	require.NoError(t, err)

	t.Run("round-trips a base64-encoded target", func(t *testing.T) {
		t.Parallel()

		raw := "https://viewer.example.com/onlinePreview?url=aHR0cHM6Ly9hLmNvbS9zLnBwdA=="

		target, ok := docsift.DecodePreviewURL(base, raw)

		require.True(t, ok)
		assert.Equal(t, "https://a.com/s.ppt", target)
	})

	t.Run("round-trips an arbitrary constructed target", func(t *testing.T) {
		t.Parallel()

		want := "https://cdn.example.com/decks/intro%202.pptx?v=7"
		encoded := base64.StdEncoding.EncodeToString([]byte(want))
		raw := "https://viewer.example.com/onlinePreview?url=" + url.QueryEscape(encoded)

		target, ok := docsift.DecodePreviewURL(base, raw)

		require.True(t, ok)
		assert.Equal(t, want, target)
	})

	t.Run("resolves relative preview links against the base", func(t *testing.T) {
		t.Parallel()

		raw := "/onlinePreview?url=aHR0cHM6Ly9hLmNvbS9zLnBwdA=="

		target, ok := docsift.DecodePreviewURL(base, raw)

		require.True(t, ok)
		assert.Equal(t, "https://a.com/s.ppt", target)
	})

	t.Run("not applicable without the marker segment", func(t *testing.T) {
		t.Parallel()

		_, ok := docsift.DecodePreviewURL(base, "https://viewer.example.com/preview?url=aHR0cHM6Ly9hLmNvbS9zLnBwdA==")

		assert.False(t, ok)
	})

	t.Run("not applicable without the url parameter", func(t *testing.T) {
		t.Parallel()

		_, ok := docsift.DecodePreviewURL(base, "https://viewer.example.com/onlinePreview?id=42")

		assert.False(t, ok)
	})

	t.Run("not applicable when base64 decoding fails", func(t *testing.T) {
		t.Parallel()

		_, ok := docsift.DecodePreviewURL(base, "https://viewer.example.com/onlinePreview?url=%%%not-base64%%%")

		assert.False(t, ok)
	})

	t.Run("not applicable when the decoded value is not an absolute URL", func(t *testing.T) {
		t.Parallel()

		encoded := base64.StdEncoding.EncodeToString([]byte("not a url"))

		_, ok := docsift.DecodePreviewURL(base, "https://viewer.example.com/onlinePreview?url="+encoded)

		assert.False(t, ok)
	})

	t.Run("not applicable for unparseable candidates", func(t *testing.T) {
		t.Parallel()

		_, ok := docsift.DecodePreviewURL(base, "https://exa mple.com/onlinePreview")

		assert.False(t, ok)
	})
}
