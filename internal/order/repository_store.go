package order

import (
	"context"
	"encoding/json"

	"cocinacasera/internal/store"
)

const ordersCollection = "orders"

// StoreRepository keeps orders as documents in the shared document store.
type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) Create(ctx context.Context, o *Order) error {
	id, err := r.store.CreateDocument(ctx, ordersCollection, o)
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

func (r *StoreRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	if err := r.store.GetDocument(ctx, ordersCollection, id, &o); err != nil {
		return nil, err
	}
	o.ID = id
	return &o, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]*Order, error) {
	docs, err := r.store.ListDocuments(ctx, ordersCollection)
	if err != nil {
		return nil, err
	}
	orders := make([]*Order, 0, len(docs))
	for _, doc := range docs {
		var o Order
		if err := json.Unmarshal(doc.Data, &o); err != nil {
			return nil, err
		}
		o.ID = doc.ID
		orders = append(orders, &o)
	}
	return orders, nil
}

func (r *StoreRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.store.UpsertDocument(ctx, ordersCollection, id, map[string]any{
		"status": status,
	})
}
