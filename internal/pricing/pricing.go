package pricing

import "cocinacasera/internal/meal"

// Base prices in COP. Mojarra carries a surcharge; a meal with soup (or a
// soup substitution) costs more than a no-soup tray.
const (
	PriceMojarra  = 15000
	PriceWithSoup = 13000
	PriceBase     = 12000
)

// MealPrice computes one meal's total. Precedence: Mojarra protein wins,
// then soup / soup substitution, then the base tray. Additions contribute
// price times quantity on top.
func MealPrice(m *meal.Meal) int {
	if m == nil {
		return 0
	}
	price := PriceBase
	switch {
	case m.Protein != nil && m.Protein.Name == meal.ProteinMojarra:
		price = PriceMojarra
	case hasSoup(m):
		price = PriceWithSoup
	}
	for _, a := range m.Additions {
		qty := a.Quantity
		if qty < 1 {
			qty = 1
		}
		price += a.Price * qty
	}
	return price
}

func hasSoup(m *meal.Meal) bool {
	if m.SoupReplacement != nil && m.SoupReplacement.Name != "" {
		return true
	}
	if m.Soup == nil {
		return false
	}
	switch m.Soup.Name {
	case "", meal.SoupNone, meal.SoupTrayOnly:
		return false
	}
	return true
}

// Total sums the price of every meal in an order.
func Total(meals []meal.Meal) int {
	total := 0
	for i := range meals {
		total += MealPrice(&meals[i])
	}
	return total
}

// PaymentEntry is one payment method's share of an order total. Entries
// keep the order in which methods first appear across the meals.
type PaymentEntry struct {
	Method string `json:"method"`
	Amount int    `json:"amount"`
}

// UnspecifiedMethod groups meals that never picked a payment method.
const UnspecifiedMethod = "No especificado"

// Summarize splits the order total by payment method, keeping methods in
// first-appearance order.
func Summarize(meals []meal.Meal) []PaymentEntry {
	var entries []PaymentEntry
	index := make(map[string]int)
	for i := range meals {
		method := UnspecifiedMethod
		if meals[i].Payment != nil && meals[i].Payment.Name != "" {
			method = meals[i].Payment.Name
		}
		price := MealPrice(&meals[i])
		if at, ok := index[method]; ok {
			entries[at].Amount += price
			continue
		}
		index[method] = len(entries)
		entries = append(entries, PaymentEntry{Method: method, Amount: price})
	}
	return entries
}
