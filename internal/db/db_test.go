package db

import (
	"strings"
	"testing"
)

// The whole datastore is one JSONB documents table. These checks pin the
// shape the store layer depends on: the composite key its upsert targets
// and the JSONB column its merge operates on.
func TestDocumentsSchema(t *testing.T) {
	if !strings.Contains(documentsTableSQL, "CREATE TABLE IF NOT EXISTS documents") {
		t.Fatal("schema must be idempotent")
	}
	if !strings.Contains(documentsTableSQL, "PRIMARY KEY (collection, id)") {
		t.Fatal("documents must be keyed by collection + id")
	}
	if !strings.Contains(documentsTableSQL, "data JSONB NOT NULL") {
		t.Fatal("document bodies must be JSONB")
	}
}

func TestDocumentsIndex(t *testing.T) {
	if !strings.Contains(documentsIndexSQL, "CREATE INDEX IF NOT EXISTS") {
		t.Fatal("index creation must be idempotent")
	}
	if !strings.Contains(documentsIndexSQL, "(collection, created_at)") {
		t.Fatal("listings scan a collection in creation order")
	}
}
