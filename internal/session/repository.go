package session

import (
	"context"
	"encoding/json"

	"cocinacasera/internal/store"
)

const sessionsCollection = "sessions"

type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) Create(ctx context.Context, s *Session) error {
	id, err := r.store.CreateDocument(ctx, sessionsCollection, s)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *StoreRepository) GetByID(ctx context.Context, id string) (*Session, error) {
	var s Session
	if err := r.store.GetDocument(ctx, sessionsCollection, id, &s); err != nil {
		return nil, err
	}
	s.ID = id
	return &s, nil
}

// Save overwrites the session document. The merge upsert replaces
// top-level keys, so writing every field amounts to a full overwrite.
func (r *StoreRepository) Save(ctx context.Context, s *Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return err
	}
	delete(fields, "id")
	return r.store.UpsertDocument(ctx, sessionsCollection, s.ID, fields)
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteDocument(ctx, sessionsCollection, id)
}
