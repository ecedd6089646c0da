package docsift

import (
	"net/url"
	"regexp"
	"strings"
)

// DocumentExtensions is the case-insensitive suffix set that qualifies a
// URL path as a document of interest.
var DocumentExtensions = []string{"ppt", "pptx", "pps", "ppsx", "pot", "potx", "pdf"}

// textURLRe finds document URLs embedded in free text: an http(s) URL whose
// path ends in a document extension, optionally followed by a query string
// of the same restricted character class.
var textURLRe = regexp.MustCompile(`(?i)https?://[^\s"'<>]+\.(?:pptx?|ppsx?|potx?|pdf)(?:\?[^\s"'<>]*)?`)

// DefaultFileName is used when a display name cannot be derived from a URL.
const DefaultFileName = "download"

// ResolveURL resolves a raw candidate string against base and returns the
// canonical absolute URL. Returns EINVALID when the candidate does not
// resolve to a valid absolute http(s) URL; callers drop such candidates
// silently; this is an expected, non-fatal outcome.
func ResolveURL(base *url.URL, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(EINVALID, "empty URL candidate")
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "unparseable URL candidate: %v", err)
	}

	resolved := ref
	if base != nil {
		resolved = base.ResolveReference(ref)
	}

	if !resolved.IsAbs() || resolved.Host == "" {
		return "", Errorf(EINVALID, "candidate %q does not resolve to an absolute URL", raw)
	}
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", Errorf(EINVALID, "unsupported scheme %q", resolved.Scheme)
	}

	return resolved.String(), nil
}

// IsDocumentURL reports whether the URL's path names a document of interest.
// Only the path component is inspected; the host, query string, and fragment
// never qualify a candidate. The extension must terminate the path, not
// merely appear as a substring. This check is the sole gate for "is this a
// document link" and runs before a candidate is normalized.
func IsDocumentURL(rawURL string) bool {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.IsAbs() {
		path = u.Path
	} else if i := strings.IndexAny(path, "?#"); i != -1 {
		// Relative candidates are not reliably parseable; strip the query
		// and fragment by hand.
		path = path[:i]
	}
	if path == "" {
		return false
	}

	lower := strings.ToLower(path)
	for _, ext := range DocumentExtensions {
		if strings.HasSuffix(lower, "."+ext) {
			return true
		}
	}
	return false
}

// ScanText finds document URLs embedded in free text. Matches are returned
// in order of appearance; zero matches yields nil. The scanner keeps no
// state of its own; deduplication belongs exclusively to the ItemStore.
func ScanText(text string) []string {
	return textURLRe.FindAllString(text, -1)
}

// DisplayName derives a file name from a URL: the path segment after the
// final slash, percent-decoded. Returns DefaultFileName when the result is
// empty. The stored URL itself keeps its percent-encoding; only the display
// name is decoded.
func DisplayName(rawURL string) string {
	s := rawURL
	if i := strings.IndexAny(s, "?#"); i != -1 {
		s = s[:i]
	}
	if i := strings.LastIndex(s, "/"); i != -1 {
		s = s[i+1:]
	}
	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}
	if s == "" {
		return DefaultFileName
	}
	return s
}
