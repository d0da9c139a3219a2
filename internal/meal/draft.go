package meal

import "cocinacasera/internal/catalog"

// Draft stages a principle multi-select behind an explicit confirm. The
// meal is untouched until Commit, so abandoning the edit costs nothing.
type Draft struct {
	meal        *Meal
	selection   []catalog.Option
	replacement *catalog.Option
}

// BeginEdit opens a draft seeded with the meal's current principle
// selection.
func BeginEdit(m *Meal) *Draft {
	return &Draft{
		meal:        m,
		selection:   append([]catalog.Option(nil), m.Principle...),
		replacement: m.PrincipleReplacement,
	}
}

// Toggle applies the same exclusivity rules as the immediate reducer,
// but against the staged selection.
func (d *Draft) Toggle(opt catalog.Option) bool {
	if opt.IsFinished {
		return false
	}
	d.selection = togglePrincipleList(d.selection, opt, func() { d.replacement = nil })
	return true
}

// SetReplacement stages a sub-choice for the substitution trigger.
func (d *Draft) SetReplacement(opt catalog.Option) bool {
	if opt.IsFinished {
		return false
	}
	selected := opt
	d.replacement = &selected
	return true
}

// Selection exposes the staged options for rendering.
func (d *Draft) Selection() []catalog.Option {
	return d.selection
}

// CanCommit mirrors the confirm button's enablement: a substitution
// needs its replacement, a special rice must stand alone, and an
// ordinary selection holds one or two items.
func (d *Draft) CanCommit() bool {
	for _, opt := range d.selection {
		if opt.Name == PrincipleReplacement {
			return d.replacement != nil
		}
	}
	for _, opt := range d.selection {
		if IsSpecialRice(opt.Name) {
			return len(d.selection) == 1
		}
	}
	return len(d.selection) >= 1 && len(d.selection) <= 2
}

// Commit writes the staged selection through to the meal. A committed
// special rice collapses the selection to itself and clears the protein;
// anything beyond two items is truncated.
func (d *Draft) Commit() {
	selection := d.selection

	for i := len(selection) - 1; i >= 0; i-- {
		if IsSpecialRice(selection[i].Name) {
			selection = []catalog.Option{selection[i]}
			d.meal.Protein = nil
			break
		}
	}
	if len(selection) > 2 {
		selection = selection[:2]
	}

	d.meal.Principle = selection
	d.meal.PrincipleReplacement = d.replacement
}
