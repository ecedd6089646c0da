package docsift_test

import (
	"net/url"
	"testing"

	"github.com/GongyiChuren/docsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDocumentURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"plain pptx", "https://example.com/notes/lecture01.pptx", true},
		{"plain pdf", "https://example.com/file.pdf", true},
		{"uppercase extension", "https://example.com/FILE.PDF", true},
		{"mixed case", "https://example.com/deck.PpTx", true},
		{"ppt", "https://example.com/a.ppt", true},
		{"pps", "https://example.com/a.pps", true},
		{"ppsx", "https://example.com/a.ppsx", true},
		{"pot", "https://example.com/a.pot", true},
		{"potx", "https://example.com/a.potx", true},
		{"query string after extension", "https://example.com/a.pdf?v=2", true},
		{"fragment after extension", "https://example.com/a.pdf#page=3", true},
		{"relative path", "notes/lecture01.pptx", true},
		{"extension mid-path", "https://example.com/file.pdf.html", false},
		{"extension in host with empty path", "https://evil.ppt", false},
		{"extension in host with slash path", "https://evil.ppt/", false},
		{"extension in host with query", "https://evil.pdf?x=1", false},
		{"extension in host but not path", "https://cdn.ppt/index.html", false},
		{"extension as substring", "https://example.com/pdfviewer", false},
		{"extension in query only", "https://example.com/view?file=a.pdf", false},
		{"no extension", "https://example.com/docs/", false},
		{"empty string", "", false},
		{"bare query", "?v=a.pdf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docsift.IsDocumentURL(tt.url))
		})
	}
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://example.com/course/page.html")
	require.NoError(t, err)

	t.Run("resolves relative against base", func(t *testing.T) {
		t.Parallel()

		got, err := docsift.ResolveURL(base, "notes/lecture01.pptx")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/course/notes/lecture01.pptx", got)
	})

	t.Run("keeps absolute URLs as-is", func(t *testing.T) {
		t.Parallel()

		got, err := docsift.ResolveURL(base, "https://cdn.example.com/a.pdf?v=2")

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a.pdf?v=2", got)
	})

	t.Run("preserves percent-encoding", func(t *testing.T) {
		t.Parallel()

		got, err := docsift.ResolveURL(base, "https://cdn.example.com/file%20name.pdf")

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/file%20name.pdf", got)
	})

	t.Run("rejects empty candidate", func(t *testing.T) {
		t.Parallel()

		_, err := docsift.ResolveURL(base, "  ")

		assert.Equal(t, docsift.EINVALID, docsift.ErrorCode(err))
	})

	t.Run("rejects relative candidate without base", func(t *testing.T) {
		t.Parallel()

		_, err := docsift.ResolveURL(nil, "notes/lecture01.pptx")

		assert.Equal(t, docsift.EINVALID, docsift.ErrorCode(err))
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		t.Parallel()

		_, err := docsift.ResolveURL(base, "javascript:void(0)")

		assert.Equal(t, docsift.EINVALID, docsift.ErrorCode(err))
	})

	t.Run("rejects malformed URLs", func(t *testing.T) {
		t.Parallel()

		_, err := docsift.ResolveURL(base, "https://exa mple.com/%zz")

		assert.Equal(t, docsift.EINVALID, docsift.ErrorCode(err))
	})
}

func TestScanText(t *testing.T) {
	t.Parallel()

	t.Run("finds a document URL with query in surrounding text", func(t *testing.T) {
		t.Parallel()

		text := `see https://cdn.example.com/file%20name.pdf?v=2 and more text`

		matches := docsift.ScanText(text)

		assert.Equal(t, []string{"https://cdn.example.com/file%20name.pdf?v=2"}, matches)
	})

	t.Run("finds multiple URLs in order of appearance", func(t *testing.T) {
		t.Parallel()

		text := `{"a":"https://a.com/one.pptx","b":"https://b.com/two.pdf?x=1"}`

		matches := docsift.ScanText(text)

		assert.Equal(t, []string{
			"https://a.com/one.pptx",
			"https://b.com/two.pdf?x=1",
		}, matches)
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		matches := docsift.ScanText("HTTPS://EXAMPLE.COM/DECK.PPTX")

		assert.Len(t, matches, 1)
	})

	t.Run("stops at quotes and angle brackets", func(t *testing.T) {
		t.Parallel()

		matches := docsift.ScanText(`<a href="https://a.com/s.ppt">`)

		assert.Equal(t, []string{"https://a.com/s.ppt"}, matches)
	})

	t.Run("returns nil for text without document URLs", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, docsift.ScanText("https://example.com/page.html and nothing else"))
	})

	t.Run("returns the full pptx extension, not a ppt prefix", func(t *testing.T) {
		t.Parallel()

		matches := docsift.ScanText("https://a.com/s.pptx end")

		assert.Equal(t, []string{"https://a.com/s.pptx"}, matches)
	})
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"simple file", "https://example.com/notes/lecture01.pptx", "lecture01.pptx"},
		{"percent-decoded", "https://cdn.example.com/file%20name.pdf?v=2", "file name.pdf"},
		{"query stripped", "https://example.com/a.pdf?v=2", "a.pdf"},
		{"fragment stripped", "https://example.com/a.pdf#page=2", "a.pdf"},
		{"trailing slash falls back", "https://example.com/docs/", "download"},
		{"empty falls back", "", "download"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docsift.DisplayName(tt.url))
		})
	}
}
