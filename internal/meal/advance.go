package meal

import "time"

// AdvanceDelay is how long the UI holds the completed slide before
// moving on.
const AdvanceDelay = 300 * time.Millisecond

// Advance is a deferred slide transition, returned as data so timing
// policy stays out of the decision logic.
type Advance struct {
	Next  Step          `json:"next"`
	Delay time.Duration `json:"delayMs"`
}

// Transition decides whether changing field on m moves the wizard off
// current. It advances when the changed field's step predicate holds,
// except:
//   - the last slide never advances;
//   - additions and notes never advance;
//   - principle advances only for a special-rice selection; the
//     ordinary multi-select advances through ConfirmTransition instead.
func Transition(m *Meal, current Step, changed Field) (Advance, bool) {
	if current >= StepCount-1 {
		return Advance{}, false
	}
	switch changed {
	case FieldAdditions, FieldNotes:
		return Advance{}, false
	case FieldPrinciple:
		if !m.HasSpecialRice() {
			return Advance{}, false
		}
		return Advance{Next: current + 1, Delay: AdvanceDelay}, true
	}

	step, ok := StepForField(changed)
	if !ok || !StepComplete(m, step) {
		return Advance{}, false
	}
	return Advance{Next: current + 1, Delay: AdvanceDelay}, true
}

// ConfirmTransition decides the advance after a confirmed principle
// commit: move on once the principle step is complete.
func ConfirmTransition(m *Meal, current Step) (Advance, bool) {
	if current >= StepCount-1 || !m.PrincipleComplete() {
		return Advance{}, false
	}
	return Advance{Next: current + 1, Delay: AdvanceDelay}, true
}
