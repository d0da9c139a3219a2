package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cocinacasera/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAnonymous       = errors.New("password login required for this account")
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Anonymous sign-in
// --------------------------------------------------
// EnsureUser resolves a customer identity. An empty uid mints a new
// anonymous account; a known uid just refreshes the token. Idempotent.
func (s *Service) EnsureUser(ctx context.Context, uid string) (*User, string, error) {
	if uid == "" {
		uid = uuid.New().String()
	}

	user, err := s.repo.GetByID(ctx, uid)
	if errors.Is(err, store.ErrNotFound) {
		user = &User{
			ID:        uid,
			Email:     AnonEmail(uid),
			Role:      RoleClient,
			CreatedAt: time.Now(),
		}
		if err := s.repo.Save(ctx, user); err != nil {
			return nil, "", err
		}
	} else if err != nil {
		return nil, "", err
	} else if user.Role != RoleClient {
		// A known uid refreshes a token without a credential, so this
		// path must never mint tokens for privileged accounts.
		return nil, "", ErrNotAnonymous
	}

	token, err := GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	user.Password = ""
	return user, token, nil
}

// --------------------------------------------------
// Password login (admins)
// --------------------------------------------------
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	user.Password = ""
	return user, token, nil
}

// CreateAdmin provisions a password account with the admin role. Already
// existing emails are left untouched.
func (s *Service) CreateAdmin(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	if existing, err := s.repo.FindByEmail(ctx, email); err == nil {
		existing.Password = ""
		return existing, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  string(hashed),
		Role:      RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// --------------------------------------------------
// Order bookkeeping
// --------------------------------------------------
// RecordOrder bumps the customer's counters on a submitted order,
// creating the user document on first sight.
func (s *Service) RecordOrder(ctx context.Context, userID, email string) error {
	if userID == "" {
		return errors.New("missing user id")
	}
	if email == "" {
		email = AnonEmail(userID)
	}

	now := time.Now()
	partial := map[string]any{
		"email":     email,
		"lastOrder": now,
	}

	user, err := s.repo.GetByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		partial["role"] = RoleClient
		partial["totalOrders"] = 1
		partial["createdAt"] = now
	case err != nil:
		return err
	default:
		role := user.Role
		if role == 0 {
			role = RoleClient
		}
		partial["role"] = role
		partial["totalOrders"] = user.TotalOrders + 1
	}

	return s.repo.Merge(ctx, userID, partial)
}

// ListUsers returns every account, hashes stripped.
func (s *Service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}
