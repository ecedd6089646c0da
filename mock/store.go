package mock

import "github.com/GongyiChuren/docsift"

var _ docsift.ItemStore = (*ItemStore)(nil)

// ItemStore is a mock implementation of docsift.ItemStore.
type ItemStore struct {
	AddFn func(url string, source docsift.Source) bool
	AllFn func() []docsift.Item
	LenFn func() int
}

func (s *ItemStore) Add(url string, source docsift.Source) bool {
	return s.AddFn(url, source)
}

func (s *ItemStore) All() []docsift.Item {
	return s.AllFn()
}

func (s *ItemStore) Len() int {
	return s.LenFn()
}
