package meal

import "cocinacasera/internal/catalog"

// Selection reducer: the generic toggle rules shared by the wizard's
// option lists, with the per-field business rules layered on top.
// Out-of-stock options (IsFinished) are inert everywhere: an
// interaction with one never mutates state.

// ToggleSoup replaces the soup selection. The substitution trigger
// toggles off on a second click, clearing any stored replacement; picking
// any ordinary soup also clears a stale replacement.
func ToggleSoup(m *Meal, opt catalog.Option) bool {
	if opt.IsFinished {
		return false
	}
	if m.Soup != nil && m.Soup.ID == opt.ID && opt.Name == SoupReplacementName {
		m.Soup = nil
		m.SoupReplacement = nil
		return true
	}
	selected := opt
	m.Soup = &selected
	if opt.Name != SoupReplacementName {
		m.SoupReplacement = nil
	}
	return true
}

// SetSoupReplacement records the sub-choice for "Remplazo por Sopa".
func SetSoupReplacement(m *Meal, opt catalog.Option) bool {
	if opt.IsFinished {
		return false
	}
	selected := opt
	m.SoupReplacement = &selected
	return true
}

// TogglePrinciple applies the immediate (non-confirm) principle rules:
// special rices and the substitution trigger are exclusive single
// entries, everything else is a two-item toggle. Selecting a special
// rice clears the protein, which is bundled into the dish.
func TogglePrinciple(m *Meal, opt catalog.Option) bool {
	if opt.IsFinished {
		return false
	}
	m.Principle = togglePrincipleList(m.Principle, opt, func() { m.PrincipleReplacement = nil })
	if m.HasSpecialRice() {
		m.Protein = nil
	}
	return true
}

func togglePrincipleList(current []catalog.Option, opt catalog.Option, clearReplacement func()) []catalog.Option {
	selectedAt := -1
	for i, p := range current {
		if p.ID == opt.ID {
			selectedAt = i
			break
		}
	}

	exclusive := IsSpecialRice(opt.Name) || opt.Name == PrincipleReplacement
	if exclusive {
		if selectedAt >= 0 {
			if opt.Name == PrincipleReplacement {
				clearReplacement()
			}
			return append(current[:selectedAt:selectedAt], current[selectedAt+1:]...)
		}
		if hasListReplacement(current) {
			clearReplacement()
		}
		return []catalog.Option{opt}
	}

	// An ordinary principle displaces any exclusive entry first.
	filtered := current[:0:0]
	displaced := false
	for _, p := range current {
		if IsSpecialRice(p.Name) || p.Name == PrincipleReplacement {
			if p.Name == PrincipleReplacement {
				clearReplacement()
			}
			displaced = true
			continue
		}
		filtered = append(filtered, p)
	}
	if displaced {
		selectedAt = -1
		for i, p := range filtered {
			if p.ID == opt.ID {
				selectedAt = i
				break
			}
		}
	}
	if selectedAt >= 0 {
		return append(filtered[:selectedAt:selectedAt], filtered[selectedAt+1:]...)
	}
	if len(filtered) < 2 {
		return append(filtered, opt)
	}
	return filtered
}

func hasListReplacement(opts []catalog.Option) bool {
	for _, p := range opts {
		if p.Name == PrincipleReplacement {
			return true
		}
	}
	return false
}

// SetPrincipleReplacement records the sub-choice for "Remplazo por
// Principio".
func SetPrincipleReplacement(m *Meal, opt catalog.Option) bool {
	if opt.IsFinished {
		return false
	}
	selected := opt
	m.PrincipleReplacement = &selected
	return true
}

// ClearPrincipleReplacement drops the stored sub-choice, used when the
// trigger is deselected.
func ClearPrincipleReplacement(m *Meal) {
	m.PrincipleReplacement = nil
}

// ToggleSide toggles a side. "Ninguno" is exclusive with everything
// else, in both directions.
func ToggleSide(m *Meal, opt catalog.Option) bool {
	if opt.IsFinished {
		return false
	}

	selectedAt := -1
	for i, s := range m.Sides {
		if s.ID == opt.ID {
			selectedAt = i
			break
		}
	}

	if opt.Name == SideNone {
		if selectedAt >= 0 {
			m.Sides = append(m.Sides[:selectedAt:selectedAt], m.Sides[selectedAt+1:]...)
		} else {
			m.Sides = []catalog.Option{opt}
		}
		return true
	}

	kept := m.Sides[:0:0]
	for _, s := range m.Sides {
		if s.Name == SideNone {
			continue
		}
		kept = append(kept, s)
	}
	selectedAt = -1
	for i, s := range kept {
		if s.ID == opt.ID {
			selectedAt = i
			break
		}
	}
	if selectedAt >= 0 {
		m.Sides = append(kept[:selectedAt:selectedAt], kept[selectedAt+1:]...)
	} else {
		m.Sides = append(kept, opt)
	}
	return true
}

// SelectProtein, SelectDrink and SelectPayment are plain single-select
// replacements; re-clicking the selected option keeps it selected.

func SelectProtein(m *Meal, opt catalog.Option) bool {
	if opt.IsFinished {
		return false
	}
	selected := opt
	m.Protein = &selected
	return true
}

func SelectDrink(m *Meal, opt catalog.Option) bool {
	if opt.IsFinished {
		return false
	}
	selected := opt
	m.Drink = &selected
	return true
}

func SelectPayment(m *Meal, opt catalog.Option) bool {
	if opt.IsFinished {
		return false
	}
	selected := opt
	m.Payment = &selected
	return true
}
