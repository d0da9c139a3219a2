package settings

import (
	"context"
	"errors"

	"cocinacasera/internal/store"
)

const (
	settingsCollection = "settings"
	globalID           = "global"
)

// Settings is the kitchen-wide configuration document.
type Settings struct {
	IsOrderingDisabled bool `json:"isOrderingDisabled"`
}

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Get returns the global settings; a missing document means defaults.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	var settings Settings
	err := s.store.GetDocument(ctx, settingsCollection, globalID, &settings)
	if errors.Is(err, store.ErrNotFound) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// OrderingDisabled reports whether submissions are switched off.
func (s *Service) OrderingDisabled(ctx context.Context) (bool, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	return settings.IsOrderingDisabled, nil
}

// SetOrderingDisabled flips the switch, creating the document on first
// use.
func (s *Service) SetOrderingDisabled(ctx context.Context, disabled bool) error {
	return s.store.UpsertDocument(ctx, settingsCollection, globalID, map[string]any{
		"isOrderingDisabled": disabled,
	})
}
