package docsift

import "time"

// Source identifies the discovery channel that first observed an item.
type Source string

// Discovery channel sources.
const (
	SourceDOM      Source = "dom"      // element attribute in the static DOM
	SourceInline   Source = "inline"   // script/pre text in the static DOM
	SourceResource Source = "resource" // resource-timing log entry
	SourceFetch    Source = "fetch"    // intercepted fetch response body
	SourceXHR      Source = "xhr"      // intercepted XHR response body
	SourcePreview  Source = "preview"  // decoded online-preview indirection
)

// Item is a discovered document URL with provenance metadata. Items are
// never mutated after creation; on rediscovery the first sighting's source
// and timestamp are retained.
type Item struct {
	URL          string    `json:"url"`
	Source       Source    `json:"source"`
	DiscoveredAt time.Time `json:"discoveredAt"`
}

// ItemStore is a deduplicated, insertion-ordered collection of discovered
// items keyed by normalized URL. Items persist only for the lifetime of the
// attached page; no remove operation exists.
type ItemStore interface {
	// Add inserts an item for url with the current timestamp. It is a no-op
	// returning false when url is empty or already a key.
	Add(url string, source Source) bool

	// All returns the items in insertion order.
	All() []Item

	// Len returns the number of stored items.
	Len() int
}

// NotifyFunc is invoked after every successful insertion so a presentation
// layer can re-render the item list.
type NotifyFunc func(item Item)
