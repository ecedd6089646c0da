package harvest

import (
	"net/url"

	"github.com/GongyiChuren/docsift"
)

// Pipeline routes raw candidate strings through normalization and
// classification into the store. Candidates that fail to normalize or do not
// qualify as documents are dropped silently; that is the expected outcome
// for most of the page, not an error.
type Pipeline struct {
	Store docsift.ItemStore
	Base  *url.URL
}

// SubmitElement handles a link-bearing element attribute. Preview-viewer
// indirection links take precedence: a candidate that decodes successfully
// is recorded with SourcePreview and the raw viewer URL itself is never
// separately classified. Everything else goes through extension
// classification with the supplied source.
func (p *Pipeline) SubmitElement(raw string, source docsift.Source) bool {
	if target, ok := docsift.DecodePreviewURL(p.Base, raw); ok {
		return p.Store.Add(target, docsift.SourcePreview)
	}
	return p.Submit(raw, source)
}

// Submit classifies raw by extension, normalizes it against the page base,
// and stores it on success.
func (p *Pipeline) Submit(raw string, source docsift.Source) bool {
	if !docsift.IsDocumentURL(raw) {
		return false
	}
	resolved, err := docsift.ResolveURL(p.Base, raw)
	if err != nil {
		return false
	}
	return p.Store.Add(resolved, source)
}

// SubmitText scans free text for embedded document URLs. Every match is
// independently normalized and submitted; deduplication happens exclusively
// in the store. Returns the number of newly stored items.
func (p *Pipeline) SubmitText(text string, source docsift.Source) int {
	added := 0
	for _, match := range docsift.ScanText(text) {
		if !docsift.IsDocumentURL(match) {
			continue
		}
		resolved, err := docsift.ResolveURL(p.Base, match)
		if err != nil {
			continue
		}
		if p.Store.Add(resolved, source) {
			added++
		}
	}
	return added
}
