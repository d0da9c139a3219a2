package order

import (
	"strings"
	"time"

	"cocinacasera/internal/catalog"
	"cocinacasera/internal/meal"
	"cocinacasera/internal/pricing"
)

// Assemble flattens a configured meal list into a storable order. An
// unanswered cutlery question is persisted as false.
func Assemble(userID, userEmail string, meals []meal.Meal) *Order {
	now := time.Now()
	o := &Order{
		UserID:         userID,
		UserEmail:      userEmail,
		Meals:          make([]Meal, 0, len(meals)),
		Total:          pricing.Total(meals),
		PaymentSummary: pricing.Summarize(meals),
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for i := range meals {
		o.Meals = append(o.Meals, flattenMeal(&meals[i]))
	}
	return o
}

func flattenMeal(m *meal.Meal) Meal {
	flat := Meal{
		Soup:                 optionName(m.Soup),
		SoupReplacement:      optionName(m.SoupReplacement),
		PrincipleReplacement: optionName(m.PrincipleReplacement),
		Protein:              optionName(m.Protein),
		Drink:                optionName(m.Drink),
		Payment:              optionName(m.Payment),
		Notes:                m.Notes,
		Sides:                make([]string, 0, len(m.Sides)),
		Additions:            make([]Addition, 0, len(m.Additions)),
		Address: Address{
			Address:       m.Address.Address,
			PhoneNumber:   m.Address.PhoneNumber,
			AddressType:   m.Address.AddressType,
			RecipientName: m.Address.RecipientName,
			UnitDetails:   m.Address.UnitDetails,
			LocalName:     m.Address.LocalName,
		},
	}
	names := make([]string, 0, len(m.Principle))
	for _, p := range m.Principle {
		names = append(names, p.Name)
	}
	flat.Principle = strings.Join(names, ", ")
	for _, s := range m.Sides {
		flat.Sides = append(flat.Sides, s.Name)
	}
	for _, a := range m.Additions {
		flat.Additions = append(flat.Additions, Addition{Name: a.Name, Protein: a.Protein})
	}
	if m.Time != nil {
		flat.Time = m.Time.Name
	}
	if m.Cutlery != nil {
		flat.Cutlery = *m.Cutlery
	}
	return flat
}

func optionName(opt *catalog.Option) string {
	if opt == nil {
		return ""
	}
	return opt.Name
}
