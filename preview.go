package docsift

import (
	"encoding/base64"
	"net/url"
	"strings"
)

// PreviewMarker is the path segment identifying the online-preview viewer's
// indirection URLs.
const PreviewMarker = "onlinePreview"

// previewParam is the query parameter carrying the base64-encoded target URL.
const previewParam = "url"

// DecodePreviewURL recognizes the online-preview indirection pattern and
// recovers the embedded target URL. The bool result is false when the
// candidate is not a preview link, the parameter is absent, or the embedded
// value does not decode to a valid absolute URL; all of these are expected
// outcomes, not errors. A candidate that decodes successfully takes
// precedence over plain extension classification and is recorded with
// SourcePreview.
func DecodePreviewURL(base *url.URL, raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	if base != nil {
		u = base.ResolveReference(u)
	}

	if !strings.Contains(u.Path, PreviewMarker) {
		return "", false
	}

	encoded := u.Query().Get(previewParam)
	if encoded == "" {
		return "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}

	target, err := ResolveURL(nil, string(decoded))
	if err != nil {
		return "", false
	}
	return target, true
}
