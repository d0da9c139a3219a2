package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cocinacasera/internal/catalog"
	"cocinacasera/internal/meal"
)

var (
	ErrMealNotFound     = errors.New("almuerzo no encontrado")
	ErrAdditionNotFound = errors.New("adición no encontrada")
	ErrUnknownField     = errors.New("unknown field")
	ErrMissingOption    = errors.New("missing option")
)

// Notices shown to the customer after list mutations.
const (
	NoticeCopied     = "Tu dirección, hora y método de pago se han copiado del primer almuerzo."
	NoticeDuplicated = "Se ha duplicado el almuerzo."
	NoticeRemoved    = "Almuerzo eliminado."
	NoticeAllRemoved = "Todos los almuerzos han sido eliminados."
)

// Change is one wizard interaction against a meal. Field selects the
// dispatch; the remaining members carry that field's payload.
type Change struct {
	Field string `json:"field"`

	// Slide is the wizard position the interaction happened on, used to
	// decide the auto-advance.
	Slide int `json:"slide"`

	Option      *catalog.Option  `json:"option,omitempty"`
	Options     []catalog.Option `json:"options,omitempty"`
	Replacement *catalog.Option  `json:"replacement,omitempty"`
	Confirm     bool             `json:"confirm,omitempty"`
	Cutlery     *bool            `json:"cutlery,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	Time        *meal.TimeSlot   `json:"time,omitempty"`
	Address     *meal.Address    `json:"address,omitempty"`
}

// Service drives ordering sessions. It observes the catalog service so
// addition prices and replacement lists always come from the current
// snapshot, never from the client.
type Service struct {
	repo     Repository
	catalogs *catalog.Service

	// Serializes load-modify-store cycles; sessions are small and
	// contention is one household at a time.
	mu sync.Mutex

	snapMu   sync.RWMutex
	snapshot catalog.Catalogs

	unregister func()
}

func NewService(repo Repository, catalogs *catalog.Service) *Service {
	return &Service{repo: repo, catalogs: catalogs}
}

// Start seeds the local catalog snapshot and registers for pushes. Stop
// unregisters the observer.
func (s *Service) Start() {
	s.snapMu.Lock()
	s.snapshot = s.catalogs.Snapshot()
	s.snapMu.Unlock()
	s.unregister = s.catalogs.Register(func(c catalog.Catalogs) {
		s.snapMu.Lock()
		s.snapshot = c
		s.snapMu.Unlock()
	})
}

func (s *Service) Stop() {
	if s.unregister != nil {
		s.unregister()
		s.unregister = nil
	}
}

func (s *Service) currentCatalogs() catalog.Catalogs {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.snapshot
}

// --------------------------------------------------
// Session lifecycle
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, userID string, addr meal.Address) (*Session, error) {
	now := time.Now()
	sess := &Session{
		UserID:    userID,
		Meals:     []meal.Meal{meal.Initialize(addr)},
		Address:   addr,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.repo.GetByID(ctx, id)
}

// AddMeal appends a fresh meal. Time, address and payment are copied
// from the first meal so repeat details are not re-asked.
func (s *Service) AddMeal(ctx context.Context, sessionID string) (*Session, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	next := meal.Initialize(sess.Address)
	notice := ""
	if len(sess.Meals) > 0 {
		first := &sess.Meals[0]
		next.Time = first.Time
		next.Address = first.Address
		next.Payment = first.Payment
		notice = NoticeCopied
	}
	sess.Meals = append(sess.Meals, next)
	sess.reindex()
	sess.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, "", err
	}
	return sess, notice, nil
}

// DuplicateMeal deep-copies a meal to the end of the list.
func (s *Service) DuplicateMeal(ctx context.Context, sessionID string, mealID int) (*Session, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	m := sess.mealByID(mealID)
	if m == nil {
		return nil, "", ErrMealNotFound
	}

	sess.Meals = append(sess.Meals, m.Clone())
	sess.reindex()
	sess.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, "", err
	}
	return sess, NoticeDuplicated, nil
}

// RemoveMeal deletes a meal and re-indexes the rest to 0..N-1.
func (s *Service) RemoveMeal(ctx context.Context, sessionID string, mealID int) (*Session, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	kept := sess.Meals[:0:0]
	for _, m := range sess.Meals {
		if m.ID != mealID {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(sess.Meals) {
		return nil, "", ErrMealNotFound
	}
	sess.Meals = kept
	sess.reindex()
	sess.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, "", err
	}

	notice := NoticeRemoved
	if len(sess.Meals) == 0 {
		notice = NoticeAllRemoved
	}
	return sess, notice, nil
}

// --------------------------------------------------
// Wizard interactions
// --------------------------------------------------
// Apply dispatches one interaction and returns the advance decision, if
// any. The meal is persisted before the advance is reported.
func (s *Service) Apply(ctx context.Context, sessionID string, mealID int, change Change) (*Session, *meal.Advance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	m := sess.mealByID(mealID)
	if m == nil {
		return nil, nil, ErrMealNotFound
	}

	field, err := meal.ParseField(change.Field)
	if err != nil {
		return nil, nil, ErrUnknownField
	}

	advance, err := s.applyChange(m, field, change)
	if err != nil {
		return nil, nil, err
	}

	sess.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, nil, err
	}
	return sess, advance, nil
}

func (s *Service) applyChange(m *meal.Meal, field meal.Field, change Change) (*meal.Advance, error) {
	step := meal.Step(change.Slide)
	changed := false

	switch field {
	case meal.FieldSoup:
		if change.Option == nil {
			return nil, ErrMissingOption
		}
		changed = meal.ToggleSoup(m, *change.Option)
	case meal.FieldSoupReplacement:
		if change.Option == nil {
			return nil, ErrMissingOption
		}
		changed = meal.SetSoupReplacement(m, *change.Option)
	case meal.FieldPrinciple:
		if change.Confirm {
			return s.commitPrinciple(m, step, change)
		}
		if change.Option == nil {
			return nil, ErrMissingOption
		}
		changed = meal.TogglePrinciple(m, *change.Option)
	case meal.FieldPrincipleReplacement:
		if change.Option == nil {
			return nil, ErrMissingOption
		}
		changed = meal.SetPrincipleReplacement(m, *change.Option)
	case meal.FieldProtein:
		if change.Option == nil {
			return nil, ErrMissingOption
		}
		changed = meal.SelectProtein(m, *change.Option)
	case meal.FieldDrink:
		if change.Option == nil {
			return nil, ErrMissingOption
		}
		changed = meal.SelectDrink(m, *change.Option)
	case meal.FieldSides:
		if change.Option == nil {
			return nil, ErrMissingOption
		}
		changed = meal.ToggleSide(m, *change.Option)
	case meal.FieldPayment:
		if change.Option == nil {
			return nil, ErrMissingOption
		}
		changed = meal.SelectPayment(m, *change.Option)
	case meal.FieldTime:
		if change.Time == nil {
			return nil, errors.New("missing time")
		}
		slot := *change.Time
		m.Time = &slot
		changed = true
	case meal.FieldAddress:
		if change.Address == nil {
			return nil, errors.New("missing address")
		}
		m.Address = *change.Address
		changed = true
	case meal.FieldCutlery:
		if change.Cutlery == nil {
			return nil, errors.New("missing cutlery value")
		}
		value := *change.Cutlery
		m.Cutlery = &value
		changed = true
	case meal.FieldNotes:
		if change.Notes == nil {
			return nil, errors.New("missing notes")
		}
		m.Notes = *change.Notes
		changed = true
	default:
		return nil, ErrUnknownField
	}

	if !changed {
		return nil, nil
	}
	if advance, ok := meal.Transition(m, step, field); ok {
		return &advance, nil
	}
	return nil, nil
}

// commitPrinciple validates a confirmed multi-select against a staged
// draft before touching the stored meal.
func (s *Service) commitPrinciple(m *meal.Meal, step meal.Step, change Change) (*meal.Advance, error) {
	work := m.Clone()
	work.Principle = nil
	work.PrincipleReplacement = nil

	draft := meal.BeginEdit(&work)
	for _, opt := range change.Options {
		draft.Toggle(opt)
	}
	if change.Replacement != nil {
		draft.SetReplacement(*change.Replacement)
	}
	if !draft.CanCommit() {
		return nil, errors.New("selección de principio inválida")
	}
	draft.Commit()
	*m = work

	if advance, ok := meal.ConfirmTransition(m, step); ok {
		return &advance, nil
	}
	return nil, nil
}

// --------------------------------------------------
// Additions
// --------------------------------------------------
// AddAddition resolves the option against the current catalog snapshot,
// so prices cannot be set by the client.
func (s *Service) AddAddition(ctx context.Context, sessionID string, mealID int, optionID string) (*Session, error) {
	return s.mutateMeal(ctx, sessionID, mealID, func(m *meal.Meal) error {
		normalized := meal.NormalizeAdditions(s.currentCatalogs().Additions)
		for _, opt := range normalized {
			if opt.ID == optionID {
				meal.AddAddition(m, opt)
				return nil
			}
		}
		return fmt.Errorf("addition %q not in catalog", optionID)
	})
}

func (s *Service) ConfigureAddition(ctx context.Context, sessionID string, mealID int, additionID string, choice catalog.Option) (*Session, error) {
	return s.mutateMeal(ctx, sessionID, mealID, func(m *meal.Meal) error {
		if !meal.ConfigureAddition(m, additionID, choice) {
			return ErrAdditionNotFound
		}
		return nil
	})
}

func (s *Service) RemoveAddition(ctx context.Context, sessionID string, mealID int, additionID string) (*Session, error) {
	return s.mutateMeal(ctx, sessionID, mealID, func(m *meal.Meal) error {
		meal.RemoveAddition(m, additionID)
		return nil
	})
}

func (s *Service) IncreaseAddition(ctx context.Context, sessionID string, mealID int, additionID string) (*Session, error) {
	return s.mutateMeal(ctx, sessionID, mealID, func(m *meal.Meal) error {
		meal.IncreaseAddition(m, additionID)
		return nil
	})
}

func (s *Service) CancelAddition(ctx context.Context, sessionID string, mealID int, additionID string) (*Session, error) {
	return s.mutateMeal(ctx, sessionID, mealID, func(m *meal.Meal) error {
		meal.CancelAddition(m, additionID)
		return nil
	})
}

// Replacements lists the sub-choices for an addition kind, from the
// current snapshot.
func (s *Service) Replacements(name string) []catalog.Option {
	snapshot := s.currentCatalogs()
	return meal.ReplacementsFor(name, &snapshot)
}

func (s *Service) mutateMeal(ctx context.Context, sessionID string, mealID int, fn func(*meal.Meal) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	m := sess.mealByID(mealID)
	if m == nil {
		return nil, ErrMealNotFound
	}
	if err := fn(m); err != nil {
		return nil, err
	}
	sess.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// --------------------------------------------------
// Readiness
// --------------------------------------------------
// PendingAddition returns the first addition still waiting for its
// sub-choice, scanning meals in order. Submission is gated on none
// remaining.
func (s *Service) PendingAddition(sess *Session) (int, *meal.Addition) {
	for i := range sess.Meals {
		if a := meal.CurrentlyConfiguring(&sess.Meals[i]); a != nil {
			return sess.Meals[i].ID, a
		}
	}
	return -1, nil
}
