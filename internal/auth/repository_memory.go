package auth

import (
	"context"
	"sync"
	"time"

	"cocinacasera/internal/store"
)

// InMemoryUserRepository backs tests and local runs without Postgres.
type InMemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *InMemoryUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *InMemoryUserRepository) Save(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *InMemoryUserRepository) Merge(ctx context.Context, id string, partial map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		user = &User{ID: id}
		r.users[id] = user
	}
	for key, value := range partial {
		switch key {
		case "email":
			user.Email, _ = value.(string)
		case "password":
			user.Password, _ = value.(string)
		case "role":
			user.Role, _ = value.(int)
		case "totalOrders":
			user.TotalOrders, _ = value.(int)
		case "lastOrder":
			if t, ok := value.(time.Time); ok {
				user.LastOrder = &t
			}
		case "createdAt":
			if t, ok := value.(time.Time); ok {
				user.CreatedAt = t
			}
		}
	}
	return nil
}

func (r *InMemoryUserRepository) List(ctx context.Context) ([]*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		copied.Password = ""
		users = append(users, &copied)
	}
	return users, nil
}
