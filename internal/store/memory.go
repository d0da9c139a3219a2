package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the in-memory Store used by tests and local development.
type MemoryStore struct {
	notifier
	mu          sync.RWMutex
	collections map[string]map[string]json.RawMessage
	order       map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]json.RawMessage),
		order:       make(map[string][]string),
	}
}

func (s *MemoryStore) CreateDocument(_ context.Context, collection string, data any) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	s.mu.Lock()
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]json.RawMessage)
	}
	s.collections[collection][id] = payload
	s.order[collection] = append(s.order[collection], id)
	s.mu.Unlock()

	s.notify(collection)
	return id, nil
}

func (s *MemoryStore) GetDocument(_ context.Context, collection, id string, out any) error {
	s.mu.RLock()
	payload, ok := s.collections[collection][id]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(payload, out)
}

func (s *MemoryStore) UpsertDocument(_ context.Context, collection, id string, partial map[string]any) error {
	s.mu.Lock()
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]json.RawMessage)
	}

	merged := make(map[string]any)
	if existing, ok := s.collections[collection][id]; ok {
		if err := json.Unmarshal(existing, &merged); err != nil {
			s.mu.Unlock()
			return err
		}
	} else {
		s.order[collection] = append(s.order[collection], id)
	}
	for k, v := range partial {
		merged[k] = v
	}

	payload, err := json.Marshal(merged)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.collections[collection][id] = payload
	s.mu.Unlock()

	s.notify(collection)
	return nil
}

func (s *MemoryStore) DeleteDocument(_ context.Context, collection, id string) error {
	s.mu.Lock()
	if _, ok := s.collections[collection][id]; !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	delete(s.collections[collection], id)
	ids := s.order[collection]
	for i, existing := range ids {
		if existing == id {
			s.order[collection] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notify(collection)
	return nil
}

func (s *MemoryStore) ListDocuments(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0, len(s.order[collection]))
	for _, id := range s.order[collection] {
		docs = append(docs, Document{ID: id, Data: s.collections[collection][id]})
	}
	return docs, nil
}

func (s *MemoryStore) Subscribe(collection string, fn func()) func() {
	return s.subscribe(collection, fn)
}
