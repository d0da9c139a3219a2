package session

import (
	"context"
	"errors"
	"testing"

	"cocinacasera/internal/catalog"
	"cocinacasera/internal/meal"
	"cocinacasera/internal/store"
)

func newTestService(t *testing.T) (*Service, context.Context) {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemoryStore()
	if err := catalog.SeedDefaults(ctx, mem); err != nil {
		t.Fatal(err)
	}

	catalogs := catalog.NewService(mem)
	if err := catalogs.Start(ctx); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(catalogs.Stop)

	s := NewService(NewStoreRepository(mem), catalogs)
	s.Start()
	t.Cleanup(s.Stop)
	return s, ctx
}

func catalogOption(t *testing.T, s *Service, collection, name string) *catalog.Option {
	t.Helper()
	snap := s.currentCatalogs()
	for _, opt := range snap.ByCollection(collection) {
		if opt.Name == name {
			found := opt
			return &found
		}
	}
	t.Fatalf("option %q not in %s", name, collection)
	return nil
}

func TestCreateStartsWithOneMeal(t *testing.T) {
	s, ctx := newTestService(t)

	sess, err := s.Create(ctx, "u1", meal.Address{Address: "Calle 1", PhoneNumber: "3001234567"})
	if err != nil {
		t.Fatal(err)
	}
	if sess.ID == "" {
		t.Fatal("expected a stored session id")
	}
	if len(sess.Meals) != 1 || sess.Meals[0].Address.Address != "Calle 1" {
		t.Fatalf("got %+v", sess.Meals)
	}
	if sess.Meals[0].Address.AddressType != meal.AddressHouse {
		t.Fatalf("empty address type defaults to house, got %q", sess.Meals[0].Address.AddressType)
	}

	loaded, err := s.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Meals) != 1 {
		t.Fatalf("reloaded session: %+v", loaded)
	}
}

func TestAddMealCopiesSharedDetails(t *testing.T) {
	s, ctx := newTestService(t)
	sess, _ := s.Create(ctx, "u1", meal.Address{Address: "Calle 1", PhoneNumber: "3001234567"})

	payment := catalogOption(t, s, catalog.CollectionPaymentMethods, "Nequi")
	if _, _, err := s.Apply(ctx, sess.ID, 0, Change{Field: "payment", Slide: 7, Option: payment}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Apply(ctx, sess.ID, 0, Change{Field: "time", Slide: 5, Time: &meal.TimeSlot{ID: "t1", Name: "12:00 pm"}}); err != nil {
		t.Fatal(err)
	}

	sess, notice, err := s.AddMeal(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if notice != NoticeCopied {
		t.Fatalf("notice: %q", notice)
	}
	second := sess.Meals[1]
	if second.ID != 1 {
		t.Fatalf("ids must be dense, got %d", second.ID)
	}
	if second.Payment == nil || second.Payment.Name != "Nequi" {
		t.Fatalf("payment not copied: %+v", second.Payment)
	}
	if second.Time == nil || second.Time.Name != "12:00 pm" {
		t.Fatalf("time not copied: %+v", second.Time)
	}
	if second.Address.Address != "Calle 1" {
		t.Fatalf("address not copied: %+v", second.Address)
	}
	if second.Soup != nil {
		t.Fatal("selections must not be copied")
	}
}

func TestAddMealAfterAllRemovedKeepsAddress(t *testing.T) {
	s, ctx := newTestService(t)
	sess, _ := s.Create(ctx, "u1", meal.Address{Address: "Calle 1", PhoneNumber: "3001234567"})

	sess, _, err := s.RemoveMeal(ctx, sess.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(sess.Meals) != 0 {
		t.Fatalf("got %d meals", len(sess.Meals))
	}

	sess, notice, err := s.AddMeal(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if notice != "" {
		t.Fatalf("nothing to copy from, got notice %q", notice)
	}
	if got := sess.Meals[0].Address; got.Address != "Calle 1" || got.PhoneNumber != "3001234567" {
		t.Fatalf("creation address must survive an emptied list, got %+v", got)
	}
}

func TestDuplicateAndRemoveMeal(t *testing.T) {
	s, ctx := newTestService(t)
	sess, _ := s.Create(ctx, "u1", meal.Address{})

	soup := catalogOption(t, s, catalog.CollectionSoups, "Ajiaco")
	if _, _, err := s.Apply(ctx, sess.ID, 0, Change{Field: "soup", Slide: 0, Option: soup}); err != nil {
		t.Fatal(err)
	}

	sess, notice, err := s.DuplicateMeal(ctx, sess.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if notice != NoticeDuplicated {
		t.Fatalf("notice: %q", notice)
	}
	if len(sess.Meals) != 2 || sess.Meals[1].Soup == nil || sess.Meals[1].Soup.Name != "Ajiaco" {
		t.Fatalf("got %+v", sess.Meals)
	}

	sess, notice, err = s.RemoveMeal(ctx, sess.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if notice != NoticeRemoved {
		t.Fatalf("notice: %q", notice)
	}
	if len(sess.Meals) != 1 || sess.Meals[0].ID != 0 {
		t.Fatalf("surviving meal must be re-indexed, got %+v", sess.Meals)
	}

	sess, notice, err = s.RemoveMeal(ctx, sess.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if notice != NoticeAllRemoved {
		t.Fatalf("notice: %q", notice)
	}

	if _, _, err := s.RemoveMeal(ctx, sess.ID, 5); !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}

func TestApplyAdvancesCompletedStep(t *testing.T) {
	s, ctx := newTestService(t)
	sess, _ := s.Create(ctx, "u1", meal.Address{})

	soup := catalogOption(t, s, catalog.CollectionSoups, "Ajiaco")
	_, advance, err := s.Apply(ctx, sess.ID, 0, Change{Field: "soup", Slide: 0, Option: soup})
	if err != nil {
		t.Fatal(err)
	}
	if advance == nil || advance.Next != meal.StepPrinciple {
		t.Fatalf("advance: %+v", advance)
	}

	if _, _, err := s.Apply(ctx, sess.ID, 0, Change{Field: "banana", Slide: 0}); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if _, _, err := s.Apply(ctx, sess.ID, 0, Change{Field: "soup", Slide: 0}); !errors.Is(err, ErrMissingOption) {
		t.Fatalf("expected ErrMissingOption, got %v", err)
	}
	if _, _, err := s.Apply(ctx, sess.ID, 9, Change{Field: "soup", Slide: 0, Option: soup}); !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}

func TestApplyConfirmedPrinciple(t *testing.T) {
	s, ctx := newTestService(t)
	sess, _ := s.Create(ctx, "u1", meal.Address{})

	frijol := catalogOption(t, s, catalog.CollectionPrinciples, "Frijol")
	lenteja := catalogOption(t, s, catalog.CollectionPrinciples, "Lenteja")

	sess, advance, err := s.Apply(ctx, sess.ID, 0, Change{
		Field:   "principle",
		Slide:   1,
		Confirm: true,
		Options: []catalog.Option{*frijol, *lenteja},
	})
	if err != nil {
		t.Fatal(err)
	}
	if advance == nil || advance.Next != meal.StepProtein {
		t.Fatalf("advance: %+v", advance)
	}
	if len(sess.Meals[0].Principle) != 2 {
		t.Fatalf("got %+v", sess.Meals[0].Principle)
	}

	// The substitution trigger cannot be confirmed without a sub-choice.
	trigger := catalogOption(t, s, catalog.CollectionPrinciples, meal.PrincipleReplacement)
	if _, _, err := s.Apply(ctx, sess.ID, 0, Change{
		Field:   "principle",
		Slide:   1,
		Confirm: true,
		Options: []catalog.Option{*trigger},
	}); err == nil {
		t.Fatal("expected a rejected commit")
	}
}

func TestAdditionFlowUsesCatalogPrices(t *testing.T) {
	s, ctx := newTestService(t)
	sess, _ := s.Create(ctx, "u1", meal.Address{})

	mojarra := catalogOption(t, s, catalog.CollectionAdditions, "Mojarra")
	sess, err := s.AddAddition(ctx, sess.ID, 0, mojarra.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(sess.Meals[0].Additions) != 1 || sess.Meals[0].Additions[0].Price != 8000 {
		t.Fatalf("got %+v", sess.Meals[0].Additions)
	}

	if _, err := s.AddAddition(ctx, sess.ID, 0, "not-a-real-option"); err == nil {
		t.Fatal("unknown option id must be rejected")
	}

	protein := catalogOption(t, s, catalog.CollectionAdditions, meal.AdditionProtein)
	sess, err = s.AddAddition(ctx, sess.ID, 0, protein.ID)
	if err != nil {
		t.Fatal(err)
	}

	mealID, pending := s.PendingAddition(sess)
	if pending == nil || mealID != 0 || pending.Name != meal.AdditionProtein {
		t.Fatalf("pending: %d %+v", mealID, pending)
	}

	choices := s.Replacements(meal.AdditionProtein)
	if len(choices) == 0 {
		t.Fatal("expected replacement choices")
	}
	for _, c := range choices {
		if c.Name == meal.ProteinMojarra {
			t.Fatal("Mojarra is not a valid protein sub-choice")
		}
	}

	sess, err = s.ConfigureAddition(ctx, sess.ID, 0, protein.ID, choices[0])
	if err != nil {
		t.Fatal(err)
	}
	if _, pending := s.PendingAddition(sess); pending != nil {
		t.Fatalf("still pending: %+v", pending)
	}

	sess, err = s.IncreaseAddition(ctx, sess.ID, 0, mojarra.ID)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Meals[0].Additions[0].Quantity != 2 {
		t.Fatalf("quantity: %+v", sess.Meals[0].Additions)
	}

	sess, err = s.CancelAddition(ctx, sess.ID, 0, mojarra.ID)
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range sess.Meals[0].Additions {
		if a.ID == mojarra.ID {
			t.Fatal("cancel must drop the addition regardless of quantity")
		}
	}

	if _, err := s.ConfigureAddition(ctx, sess.ID, 0, "missing", catalog.Option{Name: "Res"}); !errors.Is(err, ErrAdditionNotFound) {
		t.Fatalf("expected ErrAdditionNotFound, got %v", err)
	}
}
