package order

import (
	"context"
	"errors"
	"testing"

	"cocinacasera/internal/catalog"
	"cocinacasera/internal/meal"
	"cocinacasera/internal/pricing"
)

func opt(name string) *catalog.Option {
	return &catalog.Option{ID: name, Name: name}
}

func completeMeal() meal.Meal {
	yes := true
	return meal.Meal{
		Soup:      opt("Ajiaco"),
		Principle: []catalog.Option{*opt("Frijol")},
		Protein:   opt("Res"),
		Drink:     opt("Limonada"),
		Sides:     []catalog.Option{*opt("Arroz")},
		Cutlery:   &yes,
		Time:      &meal.TimeSlot{ID: "t1", Name: "12:00 pm"},
		Address: meal.Address{
			Address:     "Calle 1 # 2-3",
			AddressType: meal.AddressHouse,
			PhoneNumber: "3001234567",
		},
		Payment: opt("Efectivo"),
	}
}

// --------------------------------------------------
// Validation
// --------------------------------------------------

func TestMissingFieldsOrder(t *testing.T) {
	m := meal.Meal{}
	got := MissingFields(&m)
	want := []string{
		MissingSoup, MissingPrinciple, MissingProtein, MissingDrink,
		MissingTime, MissingAddress, MissingPayment, MissingCutlery, MissingSides,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMissingFieldsRiceWaiver(t *testing.T) {
	m := completeMeal()
	m.Principle = []catalog.Option{*opt("Arroz con pollo")}
	m.Protein = nil
	m.Sides = nil

	if missing := MissingFields(&m); len(missing) != 0 {
		t.Fatalf("rice waives protein and sides, got %v", missing)
	}
}

func TestMissingFieldsShopNeedsLocalName(t *testing.T) {
	m := completeMeal()
	m.Address.AddressType = meal.AddressShop

	missing := MissingFields(&m)
	if len(missing) != 1 || missing[0] != MissingLocalName {
		t.Fatalf("got %v", missing)
	}
}

func TestValidateMealsPointsAtSlide(t *testing.T) {
	good := completeMeal()
	bad := completeMeal()
	bad.Payment = nil

	vErr := ValidateMeals([]meal.Meal{good, bad})
	if vErr == nil {
		t.Fatal("expected a validation error")
	}
	if vErr.MealIndex != 1 || vErr.Field != MissingPayment || vErr.Slide != 7 {
		t.Fatalf("got %+v", vErr)
	}

	if err := ValidateMeals([]meal.Meal{good}); err != nil {
		t.Fatalf("complete meal must validate, got %+v", err)
	}
}

// --------------------------------------------------
// Assembly
// --------------------------------------------------

func TestAssembleFlattensMeals(t *testing.T) {
	m := completeMeal()
	m.Principle = []catalog.Option{*opt("Frijol"), *opt("Lenteja")}
	m.Additions = []meal.Addition{
		{Option: catalog.Option{ID: "a1", Name: "Proteína adicional", Price: 5000}, Quantity: 1, Protein: "Res"},
	}

	o := Assemble("u1", "ana@example.com", []meal.Meal{m})

	if o.UserID != "u1" || o.UserEmail != "ana@example.com" {
		t.Fatalf("user fields: %+v", o)
	}
	if o.Status != StatusPending {
		t.Fatalf("status: %q", o.Status)
	}
	if o.Total != pricing.PriceWithSoup+5000 {
		t.Fatalf("total: %d", o.Total)
	}
	if len(o.PaymentSummary) != 1 || o.PaymentSummary[0].Method != "Efectivo" {
		t.Fatalf("payment summary: %+v", o.PaymentSummary)
	}

	flat := o.Meals[0]
	if flat.Principle != "Frijol, Lenteja" {
		t.Fatalf("principle: %q", flat.Principle)
	}
	if flat.Soup != "Ajiaco" || flat.Protein != "Res" || flat.Time != "12:00 pm" {
		t.Fatalf("flattened meal: %+v", flat)
	}
	if len(flat.Additions) != 1 || flat.Additions[0].Name != "Proteína adicional" || flat.Additions[0].Protein != "Res" {
		t.Fatalf("additions: %+v", flat.Additions)
	}
	if !flat.Cutlery {
		t.Fatal("cutlery must persist")
	}
}

func TestAssembleNilCutleryPersistsFalse(t *testing.T) {
	m := completeMeal()
	m.Cutlery = nil

	o := Assemble("u1", "", []meal.Meal{m})
	if o.Meals[0].Cutlery {
		t.Fatal("unanswered cutlery persists as false")
	}
}

// --------------------------------------------------
// Submission
// --------------------------------------------------

type mockRepo struct {
	created []*Order
	fail    error
}

func (r *mockRepo) Create(_ context.Context, o *Order) error {
	if r.fail != nil {
		return r.fail
	}
	r.created = append(r.created, o)
	return nil
}
func (r *mockRepo) GetByID(context.Context, string) (*Order, error) { return nil, nil }
func (r *mockRepo) List(context.Context) ([]*Order, error)          { return nil, nil }
func (r *mockRepo) UpdateStatus(context.Context, string, string) error {
	return nil
}

type mockSettings struct{ disabled bool }

func (s mockSettings) OrderingDisabled(context.Context) (bool, error) { return s.disabled, nil }

type mockUsers struct{ recorded int }

func (u *mockUsers) RecordOrder(context.Context, string, string) error {
	u.recorded++
	return nil
}

func TestSubmitStoresOrderAndRendersMessage(t *testing.T) {
	repo := &mockRepo{}
	users := &mockUsers{}
	s := NewService(repo, mockSettings{}, users)

	o, message, err := s.Submit(context.Background(), "u1", "ana@example.com", []meal.Meal{completeMeal()})
	if err != nil {
		t.Fatal(err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected stored order, got %d", len(repo.created))
	}
	if o.Total != pricing.PriceWithSoup {
		t.Fatalf("total: %d", o.Total)
	}
	if message == "" {
		t.Fatal("expected rendered message")
	}
	if users.recorded != 1 {
		t.Fatalf("expected counter bump, got %d", users.recorded)
	}
}

func TestSubmitRejectsIncompleteMeal(t *testing.T) {
	repo := &mockRepo{}
	s := NewService(repo, mockSettings{}, &mockUsers{})

	bad := completeMeal()
	bad.Drink = nil

	_, _, err := s.Submit(context.Background(), "u1", "", []meal.Meal{bad})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if vErr.Field != MissingDrink || vErr.Slide != 3 {
		t.Fatalf("got %+v", vErr)
	}
	if len(repo.created) != 0 {
		t.Fatal("nothing may be stored on validation failure")
	}
}

func TestSubmitHonorsOrderingSwitch(t *testing.T) {
	s := NewService(&mockRepo{}, mockSettings{disabled: true}, &mockUsers{})

	_, _, err := s.Submit(context.Background(), "u1", "", []meal.Meal{completeMeal()})
	if !errors.Is(err, ErrOrderingDisabled) {
		t.Fatalf("expected ErrOrderingDisabled, got %v", err)
	}
}

func TestSubmitRejectsEmptyOrder(t *testing.T) {
	s := NewService(&mockRepo{}, mockSettings{}, &mockUsers{})
	if _, _, err := s.Submit(context.Background(), "u1", "", nil); err == nil {
		t.Fatal("expected an error")
	}
}

func TestUpdateStatusValidatesValue(t *testing.T) {
	s := NewService(&mockRepo{}, mockSettings{}, &mockUsers{})
	if err := s.UpdateStatus(context.Background(), "o1", "Shipped"); err == nil {
		t.Fatal("unknown status must be rejected")
	}
	if err := s.UpdateStatus(context.Background(), "o1", StatusDelivered); err != nil {
		t.Fatal(err)
	}
}
