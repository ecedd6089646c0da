// Package slog provides logging decorators for docsift interfaces.
package slog

import (
	"log/slog"

	"github.com/GongyiChuren/docsift"
)

// Ensure LoggingStore implements docsift.ItemStore.
var _ docsift.ItemStore = (*LoggingStore)(nil)

// LoggingStore wraps an ItemStore with debug logging of insertions.
type LoggingStore struct {
	next   docsift.ItemStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next docsift.ItemStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Add logs newly discovered items and delegates to the wrapped store.
func (s *LoggingStore) Add(url string, source docsift.Source) bool {
	added := s.next.Add(url, source)
	if added {
		s.logger.Info("link discovered",
			"url", url,
			"source", source,
			"total", s.next.Len(),
		)
	}
	return added
}

// All delegates to the wrapped store.
func (s *LoggingStore) All() []docsift.Item {
	return s.next.All()
}

// Len delegates to the wrapped store.
func (s *LoggingStore) Len() int {
	return s.next.Len()
}
