package pricing

import (
	"testing"

	"cocinacasera/internal/catalog"
	"cocinacasera/internal/meal"
)

func opt(name string) *catalog.Option {
	return &catalog.Option{ID: name, Name: name}
}

func TestMealPricePrecedence(t *testing.T) {
	cases := []struct {
		name string
		meal meal.Meal
		want int
	}{
		{"empty tray", meal.Meal{}, PriceBase},
		{"no soup", meal.Meal{Soup: opt(meal.SoupNone)}, PriceBase},
		{"tray only", meal.Meal{Soup: opt(meal.SoupTrayOnly)}, PriceBase},
		{"with soup", meal.Meal{Soup: opt("Sancocho de pescado")}, PriceWithSoup},
		{"soup substitution", meal.Meal{
			Soup:            opt(meal.SoupReplacementName),
			SoupReplacement: opt("Huevo frito"),
		}, PriceWithSoup},
		{"mojarra wins over soup", meal.Meal{
			Soup:    opt("Sancocho de pescado"),
			Protein: opt(meal.ProteinMojarra),
		}, PriceMojarra},
	}

	for _, tc := range cases {
		if got := MealPrice(&tc.meal); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestMealPriceAdditions(t *testing.T) {
	m := meal.Meal{
		Soup: opt("Ajiaco"),
		Additions: []meal.Addition{
			{Option: catalog.Option{Name: "Postre", Price: 2000}, Quantity: 3},
			{Option: catalog.Option{Name: meal.ProteinMojarra, Price: 8000}}, // quantity 0 counts as 1
		},
	}
	want := PriceWithSoup + 3*2000 + 8000
	if got := MealPrice(&m); got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestMealPriceNil(t *testing.T) {
	if got := MealPrice(nil); got != 0 {
		t.Fatalf("nil meal prices at %d", got)
	}
}

func TestSummarizeKeepsFirstAppearanceOrder(t *testing.T) {
	meals := []meal.Meal{
		{Payment: opt("Nequi")},
		{Payment: opt("Efectivo")},
		{Payment: opt("Nequi")},
		{}, // no method picked
	}

	entries := Summarize(meals)
	if len(entries) != 3 {
		t.Fatalf("got %d entries: %+v", len(entries), entries)
	}
	if entries[0].Method != "Nequi" || entries[0].Amount != 2*PriceBase {
		t.Fatalf("entry 0: %+v", entries[0])
	}
	if entries[1].Method != "Efectivo" || entries[1].Amount != PriceBase {
		t.Fatalf("entry 1: %+v", entries[1])
	}
	if entries[2].Method != UnspecifiedMethod || entries[2].Amount != PriceBase {
		t.Fatalf("entry 2: %+v", entries[2])
	}

	if got, want := Total(meals), 4*PriceBase; got != want {
		t.Fatalf("total: got %d, want %d", got, want)
	}
}
