package catalog

import (
	"context"
	"testing"

	"cocinacasera/internal/store"
)

func TestServiceLoadsAndFollowsStore(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	if _, err := mem.CreateDocument(ctx, CollectionSoups, Option{Name: "Ajiaco"}); err != nil {
		t.Fatal(err)
	}

	s := NewService(mem)
	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer s.Stop()

	snap := s.Snapshot()
	if len(snap.Soups) != 1 || snap.Soups[0].Name != "Ajiaco" {
		t.Fatalf("initial snapshot: %+v", snap.Soups)
	}
	if snap.Soups[0].ID == "" {
		t.Fatal("loaded options carry their document id")
	}

	var observed Catalogs
	fired := 0
	unregister := s.Register(func(c Catalogs) {
		observed = c
		fired++
	})
	defer unregister()

	if _, err := s.CreateOption(ctx, CollectionSoups, Option{Name: "Sancocho de pescado"}); err != nil {
		t.Fatal(err)
	}
	if fired == 0 {
		t.Fatal("store change must publish a snapshot")
	}
	if len(observed.Soups) != 2 {
		t.Fatalf("observed snapshot: %+v", observed.Soups)
	}
}

func TestServiceCRUDValidation(t *testing.T) {
	ctx := context.Background()
	s := NewService(store.NewMemoryStore())
	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer s.Stop()

	if _, err := s.CreateOption(ctx, "desserts", Option{Name: "Flan"}); err == nil {
		t.Fatal("unknown collection must be rejected")
	}
	if _, err := s.CreateOption(ctx, CollectionDrinks, Option{}); err == nil {
		t.Fatal("nameless option must be rejected")
	}

	created, err := s.CreateOption(ctx, CollectionDrinks, Option{Name: "Limonada", Price: 2000})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateOption(ctx, CollectionDrinks, created.ID, map[string]any{"price": 2500, "id": "spoofed"}); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap.Drinks[0].Price != 2500 || snap.Drinks[0].ID != created.ID {
		t.Fatalf("after update: %+v", snap.Drinks)
	}

	if err := s.DeleteOption(ctx, CollectionDrinks, created.ID); err != nil {
		t.Fatal(err)
	}
	if snap := s.Snapshot(); len(snap.Drinks) != 0 {
		t.Fatalf("after delete: %+v", snap.Drinks)
	}
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()

	if err := SeedDefaults(ctx, mem); err != nil {
		t.Fatal(err)
	}
	docs, _ := mem.ListDocuments(ctx, CollectionSoups)
	seeded := len(docs)
	if seeded == 0 {
		t.Fatal("expected seeded soups")
	}

	if err := SeedDefaults(ctx, mem); err != nil {
		t.Fatal(err)
	}
	docs, _ = mem.ListDocuments(ctx, CollectionSoups)
	if len(docs) != seeded {
		t.Fatalf("second seed must not duplicate, got %d", len(docs))
	}
}
