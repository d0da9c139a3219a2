package order

import (
	"fmt"

	"cocinacasera/internal/meal"
)

// Missing-field labels, in the order meals are scanned.
const (
	MissingSoup      = "Sopa o reemplazo de sopa"
	MissingPrinciple = "Principio"
	MissingProtein   = "Proteína"
	MissingDrink     = "Bebida"
	MissingTime      = "Hora"
	MissingAddress   = "Dirección"
	MissingPayment   = "Método de pago"
	MissingCutlery   = "Cubiertos"
	MissingSides     = "Acompañamientos"
	MissingLocalName = "Nombre del local"
)

// slideFor maps a missing field to the wizard slide the customer is sent
// back to. Fields without a dedicated slide fall back to the first one.
var slideFor = map[string]int{
	MissingSoup:      0,
	MissingPrinciple: 1,
	MissingDrink:     3,
	MissingCutlery:   4,
	MissingTime:      5,
	MissingAddress:   6,
	MissingPayment:   7,
	MissingLocalName: 6,
}

// ValidationError points at the first incomplete meal so the client can
// reopen exactly the slide that needs attention.
type ValidationError struct {
	MealIndex int
	Field     string
	Slide     int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Por favor, completa el campo %q para el Almuerzo #%d.", e.Field, e.MealIndex+1)
}

// MissingFields lists what a single meal still needs before it can be
// sent. A bundled rice dish waives protein and sides.
func MissingFields(m *meal.Meal) []string {
	var missing []string
	completeRice := m.HasSpecialRice()

	if m.Soup == nil && m.SoupReplacement == nil {
		missing = append(missing, MissingSoup)
	}
	if len(m.Principle) == 0 && m.PrincipleReplacement == nil {
		missing = append(missing, MissingPrinciple)
	}
	if !completeRice && m.Protein == nil {
		missing = append(missing, MissingProtein)
	}
	if m.Drink == nil {
		missing = append(missing, MissingDrink)
	}
	if m.Time == nil {
		missing = append(missing, MissingTime)
	}
	if m.Address.Address == "" {
		missing = append(missing, MissingAddress)
	}
	if m.Payment == nil {
		missing = append(missing, MissingPayment)
	}
	if m.Cutlery == nil {
		missing = append(missing, MissingCutlery)
	}
	if !completeRice && len(m.Sides) == 0 {
		missing = append(missing, MissingSides)
	}
	if m.Address.AddressType == meal.AddressShop && m.Address.LocalName == "" {
		missing = append(missing, MissingLocalName)
	}
	return missing
}

// ValidateMeals checks every meal and reports the first incomplete one.
// An order is sent whole or not at all.
func ValidateMeals(meals []meal.Meal) *ValidationError {
	for i := range meals {
		missing := MissingFields(&meals[i])
		if len(missing) == 0 {
			continue
		}
		return &ValidationError{
			MealIndex: i,
			Field:     missing[0],
			Slide:     slideFor[missing[0]],
		}
	}
	return nil
}
