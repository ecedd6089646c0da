// Package mock provides mock implementations of docsift interfaces for
// testing.
package mock

import (
	"context"
	"sync"

	"github.com/GongyiChuren/docsift"
)

var _ docsift.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is a mock implementation of docsift.SettingsStore.
type SettingsStore struct {
	GetFn func(ctx context.Context, key string) (string, error)
	SetFn func(ctx context.Context, key, value string) error
}

func (s *SettingsStore) Get(ctx context.Context, key string) (string, error) {
	return s.GetFn(ctx, key)
}

func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

var _ docsift.SettingsStore = (*MemSettings)(nil)

// MemSettings is an in-memory SettingsStore for tests that need real
// get/set semantics rather than scripted responses.
type MemSettings struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemSettings creates an empty in-memory settings store.
func NewMemSettings() *MemSettings {
	return &MemSettings{values: make(map[string]string)}
}

func (s *MemSettings) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if !ok {
		return "", docsift.Errorf(docsift.ENOTFOUND, "setting %q not set", key)
	}
	return v, nil
}

func (s *MemSettings) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
