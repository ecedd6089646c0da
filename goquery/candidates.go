// Package goquery provides HTML candidate extraction using CSS selectors.
package goquery

import (
	"strings"

	"github.com/GongyiChuren/docsift"
	"github.com/PuerkitoBio/goquery"
)

// Compile-time interface verification.
var _ docsift.CandidateExtractor = (*Extractor)(nil)

// Extractor pulls raw discovery candidates out of rendered HTML: the
// link-bearing attributes of anchor, iframe, embed, and object elements, and
// the text content of script and preformatted-text elements.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// linkAttrs maps element names to their link-bearing attribute.
var linkAttrs = map[string]string{
	"a":      "href",
	"iframe": "src",
	"embed":  "src",
	"object": "data",
}

// ExtractCandidates parses html and returns the candidates in document
// order: element candidates first (a/iframe/embed/object attributes), then
// text candidates (script/pre contents). Elements with empty or missing
// attributes are skipped.
func (e *Extractor) ExtractCandidates(html string) ([]docsift.Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docsift.Errorf(docsift.EINVALID, "failed to parse HTML: %v", err)
	}

	var candidates []docsift.Candidate

	doc.Find("a, iframe, embed, object").Each(func(_ int, sel *goquery.Selection) {
		attr, ok := linkAttrs[goquery.NodeName(sel)]
		if !ok {
			return
		}
		value, exists := sel.Attr(attr)
		if !exists || strings.TrimSpace(value) == "" {
			return
		}
		candidates = append(candidates, docsift.Candidate{
			Value: value,
			Kind:  docsift.CandidateElement,
		})
	})

	doc.Find("script, pre").Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		if strings.TrimSpace(text) == "" {
			return
		}
		candidates = append(candidates, docsift.Candidate{
			Value: text,
			Kind:  docsift.CandidateText,
		})
	})

	return candidates, nil
}
