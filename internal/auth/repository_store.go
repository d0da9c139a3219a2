package auth

import (
	"context"
	"encoding/json"

	"cocinacasera/internal/store"
)

const usersCollection = "users"

// StoreUserRepository keeps users as documents keyed by their uid.
type StoreUserRepository struct {
	store store.Store
}

func NewStoreUserRepository(s store.Store) *StoreUserRepository {
	return &StoreUserRepository{store: s}
}

func (r *StoreUserRepository) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	if err := r.store.GetDocument(ctx, usersCollection, id, &u); err != nil {
		return nil, err
	}
	u.ID = id
	return &u, nil
}

// FindByEmail scans the collection. The kitchen has a handful of
// password accounts, so an index is not worth a second table.
func (r *StoreUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	docs, err := r.store.ListDocuments(ctx, usersCollection)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		var u User
		if err := json.Unmarshal(doc.Data, &u); err != nil {
			return nil, err
		}
		if u.Email == email {
			u.ID = doc.ID
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *StoreUserRepository) Save(ctx context.Context, user *User) error {
	return r.store.UpsertDocument(ctx, usersCollection, user.ID, map[string]any{
		"email":       user.Email,
		"password":    user.Password,
		"role":        user.Role,
		"totalOrders": user.TotalOrders,
		"lastOrder":   user.LastOrder,
		"createdAt":   user.CreatedAt,
	})
}

func (r *StoreUserRepository) Merge(ctx context.Context, id string, partial map[string]any) error {
	return r.store.UpsertDocument(ctx, usersCollection, id, partial)
}

func (r *StoreUserRepository) List(ctx context.Context) ([]*User, error) {
	docs, err := r.store.ListDocuments(ctx, usersCollection)
	if err != nil {
		return nil, err
	}
	users := make([]*User, 0, len(docs))
	for _, doc := range docs {
		var u User
		if err := json.Unmarshal(doc.Data, &u); err != nil {
			return nil, err
		}
		u.ID = doc.ID
		// Hashes stay in the store.
		u.Password = ""
		users = append(users, &u)
	}
	return users, nil
}
