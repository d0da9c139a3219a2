package order

import (
	"context"
	"errors"
	"log"

	"cocinacasera/internal/meal"
	"cocinacasera/internal/summary"
)

// ErrOrderingDisabled is returned while the kitchen has submissions
// switched off.
var ErrOrderingDisabled = errors.New("pedidos cerrados hasta mañana")

// SettingsReader exposes the ordering on/off switch.
type SettingsReader interface {
	OrderingDisabled(ctx context.Context) (bool, error)
}

// UserRecorder bumps the customer's order counters on every submission.
type UserRecorder interface {
	RecordOrder(ctx context.Context, userID, email string) error
}

type Service struct {
	repo     Repository
	settings SettingsReader
	users    UserRecorder
}

func NewService(repo Repository, settings SettingsReader, users UserRecorder) *Service {
	return &Service{repo: repo, settings: settings, users: users}
}

// --------------------------------------------------
// Submit order
// --------------------------------------------------
// Submit validates the meal list, stores the flattened order, updates
// the customer's counters and returns the rendered message text. A
// validation failure returns *ValidationError and stores nothing.
func (s *Service) Submit(ctx context.Context, userID, userEmail string, meals []meal.Meal) (*Order, string, error) {
	if len(meals) == 0 {
		return nil, "", errors.New("no hay almuerzos en el pedido")
	}

	disabled, err := s.settings.OrderingDisabled(ctx)
	if err != nil {
		return nil, "", err
	}
	if disabled {
		return nil, "", ErrOrderingDisabled
	}

	if vErr := ValidateMeals(meals); vErr != nil {
		return nil, "", vErr
	}

	message := summary.RenderMessage(meals)

	o := Assemble(userID, userEmail, meals)
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, "", err
	}

	// The order is already stored; counters are best effort.
	if err := s.users.RecordOrder(ctx, userID, userEmail); err != nil {
		log.Println("record order for user:", err)
	}

	return o, message, nil
}

// --------------------------------------------------
// Admin operations
// --------------------------------------------------
func (s *Service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if !ValidStatus(status) {
		return errors.New("invalid status")
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
