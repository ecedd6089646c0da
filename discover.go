package docsift

import "context"

// CandidateKind distinguishes the two kinds of raw discovery payloads the
// static DOM yields.
type CandidateKind int

// Candidate kinds.
const (
	// CandidateElement is a link-bearing element attribute (href/src/data).
	CandidateElement CandidateKind = iota

	// CandidateText is the text content of a script or preformatted-text
	// element, to be searched for embedded URLs.
	CandidateText
)

// Candidate is a raw string pulled from the page before normalization.
type Candidate struct {
	Value string
	Kind  CandidateKind
}

// CandidateExtractor pulls raw candidates from rendered HTML in document
// order.
type CandidateExtractor interface {
	ExtractCandidates(html string) ([]Candidate, error)
}

// PageReader returns the rendered HTML of an attached page.
type PageReader interface {
	HTML(ctx context.Context) (string, error)
}

// ResourceLog reads the page's resource-timing log. Environments without
// the API yield EUNAVAILABLE; callers swallow the failure and the sweep
// simply produces nothing.
type ResourceLog interface {
	ResourceURLs(ctx context.Context) ([]string, error)
}

// Observer delivers structural DOM change notifications (child-list changes
// anywhere in the document subtree, rooted at the document root). Subscribe
// returns an unsubscribe function; onChange may fire at any rate, so callers
// throttle their own reaction.
type Observer interface {
	Subscribe(ctx context.Context, onChange func()) (unsubscribe func(), err error)
}

// EmitFunc receives a response body captured by a RequestTap together with
// the channel that produced it (SourceFetch or SourceXHR).
type EmitFunc func(body string, source Source)

// RequestTap inspects a page's network traffic without altering it. Install
// wraps the page's outgoing requests exactly once; repeated calls are no-ops
// and the wrappers stay installed for the page's lifetime. Any failure while
// inspecting a body must never affect delivery of the original response to
// the page's own code.
type RequestTap interface {
	Install(ctx context.Context, emit EmitFunc) error
}

// Downloader saves a discovered URL to local storage.
type Downloader interface {
	// Download fetches url and writes it to a file named after the URL's
	// final path segment (percent-decoded, DefaultFileName when empty).
	// Returns the written path, or EUNAVAILABLE when the transport fails and
	// the caller should fall back to opening the URL in a browsing context.
	Download(ctx context.Context, url string) (path string, err error)
}
