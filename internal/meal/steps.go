package meal

import "math"

// Step indexes the nine wizard slides in display order.
type Step int

const (
	StepSoup Step = iota
	StepPrinciple
	StepProtein
	StepDrink
	StepCutlery
	StepTime
	StepAddress
	StepPayment
	StepSides

	StepCount = 9
)

var stepLabels = [StepCount]string{
	"Sopa",
	"Principio",
	"Proteína",
	"Bebida",
	"Cubiertos",
	"Hora",
	"Dirección",
	"Método de pago",
	"Acompañamiento",
}

func (s Step) Label() string {
	if s < 0 || s >= StepCount {
		return ""
	}
	return stepLabels[s]
}

// Field returns the meal field a step edits.
func (s Step) Field() Field {
	switch s {
	case StepSoup:
		return FieldSoup
	case StepPrinciple:
		return FieldPrinciple
	case StepProtein:
		return FieldProtein
	case StepDrink:
		return FieldDrink
	case StepCutlery:
		return FieldCutlery
	case StepTime:
		return FieldTime
	case StepAddress:
		return FieldAddress
	case StepPayment:
		return FieldPayment
	case StepSides:
		return FieldSides
	}
	return FieldSoup
}

// StepForField maps a changed field to the step whose completion it
// affects. Replacement fields complete their parent step.
func StepForField(f Field) (Step, bool) {
	switch f {
	case FieldSoup, FieldSoupReplacement:
		return StepSoup, true
	case FieldPrinciple, FieldPrincipleReplacement:
		return StepPrinciple, true
	case FieldProtein:
		return StepProtein, true
	case FieldDrink:
		return StepDrink, true
	case FieldCutlery:
		return StepCutlery, true
	case FieldTime:
		return StepTime, true
	case FieldAddress:
		return StepAddress, true
	case FieldPayment:
		return StepPayment, true
	case FieldSides:
		return StepSides, true
	}
	return 0, false
}

// SoupComplete: a soup is chosen, and if it is the substitution trigger,
// the replacement is chosen too.
func (m *Meal) SoupComplete() bool {
	if m.Soup == nil {
		return false
	}
	return m.Soup.Name != SoupReplacementName || m.SoupReplacement != nil
}

// PrincipleComplete: either the single substitution entry with its
// replacement chosen, or an ordinary one- or two-item selection.
func (m *Meal) PrincipleComplete() bool {
	n := len(m.Principle)
	if n == 0 {
		return false
	}
	if m.HasPrincipleReplacement() {
		return n == 1 && m.PrincipleReplacement != nil
	}
	return n >= 1 && n <= 2
}

// ProteinComplete: special rices bundle the protein.
func (m *Meal) ProteinComplete() bool {
	return m.HasSpecialRice() || m.Protein != nil
}

// SidesComplete: special rices bundle the sides.
func (m *Meal) SidesComplete() bool {
	return m.HasSpecialRice() || len(m.Sides) > 0
}

// StepComplete evaluates the per-step completion predicate.
func StepComplete(m *Meal, s Step) bool {
	switch s {
	case StepSoup:
		return m.SoupComplete()
	case StepPrinciple:
		return m.PrincipleComplete()
	case StepProtein:
		return m.ProteinComplete()
	case StepDrink:
		return m.Drink != nil
	case StepCutlery:
		return m.Cutlery != nil
	case StepTime:
		return m.Time != nil
	case StepAddress:
		return m.Address.Address != ""
	case StepPayment:
		return m.Payment != nil
	case StepSides:
		return m.SidesComplete()
	}
	return false
}

// CompletedSteps counts satisfied step predicates.
func CompletedSteps(m *Meal) int {
	count := 0
	for s := Step(0); s < StepCount; s++ {
		if StepComplete(m, s) {
			count++
		}
	}
	return count
}

// CompletionPercentage is the progress-bar value, clamped to 100.
func CompletionPercentage(m *Meal) int {
	pct := int(math.Round(100 * float64(CompletedSteps(m)) / StepCount))
	if pct > 100 {
		return 100
	}
	return pct
}

// IsComplete gates order submission. Note the cutlery asymmetry: the
// per-step predicate accepts an explicit "no" (non-nil), but the
// aggregate gate requires cutlery to be true.
func IsComplete(m *Meal) bool {
	for s := Step(0); s < StepCount; s++ {
		if !StepComplete(m, s) {
			return false
		}
	}
	return m.Cutlery != nil && *m.Cutlery
}
