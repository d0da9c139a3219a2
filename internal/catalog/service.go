package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"cocinacasera/internal/store"
)

// Service keeps an in-memory snapshot of every option collection and
// re-publishes it to registered observers whenever the store reports a
// change. Observers must unregister when they go away.
type Service struct {
	store store.Store

	mu        sync.RWMutex
	snapshot  Catalogs
	observers map[int]func(Catalogs)
	nextID    int

	unsubscribes []func()
}

func NewService(s store.Store) *Service {
	return &Service{
		store:     s,
		observers: make(map[int]func(Catalogs)),
	}
}

// Start loads all collections and subscribes to store changes. Call
// Stop when shutting down.
func (s *Service) Start(ctx context.Context) error {
	if err := s.reload(ctx); err != nil {
		return err
	}
	for _, collection := range Collections {
		collection := collection
		unsub := s.store.Subscribe(collection, func() {
			if err := s.reloadCollection(context.Background(), collection); err != nil {
				log.Println("reload catalog collection:", collection, err)
				return
			}
			s.publish()
		})
		s.unsubscribes = append(s.unsubscribes, unsub)
	}
	return nil
}

func (s *Service) Stop() {
	for _, unsub := range s.unsubscribes {
		unsub()
	}
	s.unsubscribes = nil
}

func (s *Service) reload(ctx context.Context) error {
	for _, collection := range Collections {
		if err := s.reloadCollection(ctx, collection); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) reloadCollection(ctx context.Context, collection string) error {
	docs, err := s.store.ListDocuments(ctx, collection)
	if err != nil {
		return err
	}
	opts := make([]Option, 0, len(docs))
	for _, doc := range docs {
		var opt Option
		if err := json.Unmarshal(doc.Data, &opt); err != nil {
			return err
		}
		opt.ID = doc.ID
		opts = append(opts, opt)
	}
	s.mu.Lock()
	s.snapshot.setCollection(collection, opts)
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current catalogs. An empty collection is not an
// error; callers decide how to degrade.
func (s *Service) Snapshot() Catalogs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Register adds an observer called with every new snapshot. The returned
// func removes it.
func (s *Service) Register(fn func(Catalogs)) (unregister func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Service) publish() {
	s.mu.RLock()
	snapshot := s.snapshot
	fns := make([]func(Catalogs), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}

// --------------------------------------------------
// Admin CRUD
// --------------------------------------------------
func (s *Service) CreateOption(ctx context.Context, collection string, opt Option) (*Option, error) {
	if !ValidCollection(collection) {
		return nil, errors.New("unknown collection")
	}
	if opt.Name == "" {
		return nil, errors.New("missing option name")
	}
	opt.ID = ""
	id, err := s.store.CreateDocument(ctx, collection, opt)
	if err != nil {
		return nil, err
	}
	opt.ID = id
	return &opt, nil
}

func (s *Service) UpdateOption(ctx context.Context, collection, id string, partial map[string]any) error {
	if !ValidCollection(collection) {
		return errors.New("unknown collection")
	}
	delete(partial, "id")
	return s.store.UpsertDocument(ctx, collection, id, partial)
}

func (s *Service) DeleteOption(ctx context.Context, collection, id string) error {
	if !ValidCollection(collection) {
		return errors.New("unknown collection")
	}
	return s.store.DeleteDocument(ctx, collection, id)
}
