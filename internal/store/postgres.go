package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps every collection in a single documents table with a
// JSONB payload, so the schema stays as loose as the hosted document store
// it replaces.
type PostgresStore struct {
	notifier
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateDocument(ctx context.Context, collection string, data any) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
	`, collection, id, payload)
	if err != nil {
		return "", err
	}

	s.notify(collection)
	return id, nil
}

func (s *PostgresStore) GetDocument(ctx context.Context, collection, id string, out any) error {
	var data []byte
	err := s.db.QueryRow(ctx, `
		SELECT data FROM documents
		WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// UpsertDocument merges partial into the stored document, creating it when
// absent (the store's {merge:true} semantics).
func (s *PostgresStore) UpsertDocument(ctx context.Context, collection, id string, partial map[string]any) error {
	payload, err := json.Marshal(partial)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id)
		DO UPDATE SET data = documents.data || EXCLUDED.data,
		              updated_at = CURRENT_TIMESTAMP
	`, collection, id, payload)
	if err != nil {
		return err
	}

	s.notify(collection)
	return nil
}

func (s *PostgresStore) DeleteDocument(ctx context.Context, collection, id string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM documents
		WHERE collection = $1 AND id = $2
	`, collection, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	s.notify(collection)
	return nil
}

func (s *PostgresStore) ListDocuments(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, data FROM documents
		WHERE collection = $1
		ORDER BY created_at, id
	`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *PostgresStore) Subscribe(collection string, fn func()) func() {
	return s.subscribe(collection, fn)
}
