package summarizer

import (
	"container/list"
	"context"
	"sync"
)

const defaultMemoryStoreMaxEntries = 1024

// MemoryStore is a bounded in-process Store with least-recently-used
// eviction. Edited content already changes the cache key, so entries
// carry no expiry.
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List
	maxEntries int
}

type memoryStoreEntry struct {
	key     string
	summary string
}

func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = defaultMemoryStoreMaxEntries
	}

	return &MemoryStore{
		entries:    make(map[string]*list.Element, maxEntries),
		order:      list.New(),
		maxEntries: maxEntries,
	}
}

func (s *MemoryStore) GetSummary(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}

	entry, ok := elem.Value.(*memoryStoreEntry)
	if !ok {
		return "", false, nil
	}

	s.order.MoveToFront(elem)

	return entry.summary, true, nil
}

func (s *MemoryStore) PutSummary(_ context.Context, key string, summary string) error {
	if key == "" || summary == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.entries[key]; ok {
		if entry, castOk := elem.Value.(*memoryStoreEntry); castOk {
			entry.summary = summary
			s.order.MoveToFront(elem)
		}

		return nil
	}

	elem := s.order.PushFront(&memoryStoreEntry{key: key, summary: summary})
	s.entries[key] = elem

	for len(s.entries) > s.maxEntries {
		oldest := s.order.Back()
		if oldest == nil {
			break
		}

		if entry, ok := oldest.Value.(*memoryStoreEntry); ok {
			delete(s.entries, entry.key)
		}
		s.order.Remove(oldest)
	}

	return nil
}
