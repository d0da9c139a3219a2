package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("document not found")

// Document is a raw record read back from a collection.
type Document struct {
	ID   string
	Data json.RawMessage
}

// Store is the document-store contract the rest of the service depends on:
// create/read/merge-update/delete by collection+id, plus an in-process
// push subscription per collection.
type Store interface {
	CreateDocument(ctx context.Context, collection string, data any) (string, error)
	GetDocument(ctx context.Context, collection, id string, out any) error
	UpsertDocument(ctx context.Context, collection, id string, partial map[string]any) error
	DeleteDocument(ctx context.Context, collection, id string) error
	ListDocuments(ctx context.Context, collection string) ([]Document, error)

	// Subscribe registers fn to run after every mutation of collection.
	// The returned func unregisters it.
	Subscribe(collection string, fn func()) (unsubscribe func())
}

// notifier fans out per-collection change callbacks. Both store
// implementations embed it so subscriptions behave identically in tests
// and against Postgres.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func()
}

func (n *notifier) subscribe(collection string, fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[string]map[int]func())
	}
	if n.subs[collection] == nil {
		n.subs[collection] = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[collection][id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[collection], id)
	}
}

func (n *notifier) notify(collection string) {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs[collection]))
	for _, fn := range n.subs[collection] {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
