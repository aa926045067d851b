package store

import (
	"sync"
	"time"
)

// StoredObject is one media object held by the cloud stub.
type StoredObject struct {
	ID          string
	FileName    string
	ContentType string
	Content     []byte
	CreatedAt   *time.Time
	URL         string
}

// ObjectStore is the cloud stub's in-memory object holder. Listing
// order is upload order. Safe for concurrent use.
type ObjectStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]StoredObject
}

func NewObjectStore() *ObjectStore {
	return &ObjectStore{byID: make(map[string]StoredObject)}
}

// Put stores the object, replacing any previous content under the same
// ID while keeping the original listing position.
func (s *ObjectStore) Put(obj StoredObject) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[obj.ID]; !ok {
		s.order = append(s.order, obj.ID)
	}
	s.byID[obj.ID] = obj
}

// Get returns the object with the given ID.
func (s *ObjectStore) Get(id string) (StoredObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.byID[id]
	return obj, ok
}

// List returns every stored object in upload order.
func (s *ObjectStore) List() []StoredObject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]StoredObject, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// DeleteByURL removes the object stored under the given remote
// location. Returns false when no object matches.
func (s *ObjectStore) DeleteByURL(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.order {
		if s.byID[id].URL == url {
			delete(s.byID, id)
			s.order = append(s.order[:i], s.order[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of stored objects.
func (s *ObjectStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
