package harvest

import (
	"sync"
	"time"

	"github.com/GongyiChuren/docsift"
)

// Compile-time interface verification.
var _ docsift.ItemStore = (*Store)(nil)

// Store is an in-memory, insertion-ordered item store deduplicated by URL.
// The first discovery of a URL wins; rediscoveries never overwrite the
// recorded source or timestamp. Store is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	index  map[string]struct{}
	items  []docsift.Item
	notify docsift.NotifyFunc
	now    func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the timestamp source. Used in tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store. notify, if non-nil, is invoked after every
// successful insertion so a presentation layer can re-render.
func NewStore(notify docsift.NotifyFunc, opts ...StoreOption) *Store {
	s := &Store{
		index:  make(map[string]struct{}),
		notify: notify,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add inserts url with the given source and the current timestamp. Empty
// URLs and rediscoveries are no-ops returning false.
func (s *Store) Add(url string, source docsift.Source) bool {
	if url == "" {
		return false
	}

	s.mu.Lock()
	if _, ok := s.index[url]; ok {
		s.mu.Unlock()
		return false
	}

	item := docsift.Item{URL: url, Source: source, DiscoveredAt: s.now()}
	s.index[url] = struct{}{}
	s.items = append(s.items, item)
	notify := s.notify
	s.mu.Unlock()

	// Notify outside the lock so the callback may read All().
	if notify != nil {
		notify(item)
	}
	return true
}

// All returns a copy of the items in insertion order.
func (s *Store) All() []docsift.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]docsift.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
