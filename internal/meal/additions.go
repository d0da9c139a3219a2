package meal

import "cocinacasera/internal/catalog"

// RequiresReplacement reports whether an addition kind needs a
// protein/replacement sub-choice before the meal can be messaged.
func RequiresReplacement(name string) bool {
	switch name {
	case AdditionProtein, AdditionSoup, AdditionPrinciple, AdditionDrink:
		return true
	}
	return false
}

// AddAddition selects an add-on; re-selecting an existing one bumps its
// quantity instead of duplicating the entry.
func AddAddition(m *Meal, opt catalog.Option) bool {
	if opt.IsFinished {
		return false
	}
	for i := range m.Additions {
		if m.Additions[i].ID == opt.ID {
			m.Additions[i].Quantity++
			return true
		}
	}
	add := Addition{Option: opt, Quantity: 1}
	add.RequiresReplacement = add.RequiresReplacement || RequiresReplacement(opt.Name)
	m.Additions = append(m.Additions, add)
	return true
}

// RemoveAddition decrements quantity, dropping the entry at zero.
func RemoveAddition(m *Meal, id string) bool {
	for i := range m.Additions {
		if m.Additions[i].ID != id {
			continue
		}
		m.Additions[i].Quantity--
		if m.Additions[i].Quantity <= 0 {
			m.Additions = append(m.Additions[:i:i], m.Additions[i+1:]...)
		}
		return true
	}
	return false
}

// IncreaseAddition bumps quantity of an already-selected add-on.
func IncreaseAddition(m *Meal, id string) bool {
	for i := range m.Additions {
		if m.Additions[i].ID == id {
			m.Additions[i].Quantity++
			return true
		}
	}
	return false
}

// CancelAddition removes a pending add-on entirely, regardless of
// quantity. This is the explicit-cancel path of the substitution
// sub-flow; an ambient collapse only warns (see Unconfigured).
func CancelAddition(m *Meal, id string) bool {
	for i := range m.Additions {
		if m.Additions[i].ID == id {
			m.Additions = append(m.Additions[:i:i], m.Additions[i+1:]...)
			return true
		}
	}
	return false
}

// ConfigureAddition records the sub-choice for an addition that requires
// one. "Proteína adicional" stores it as the protein, the other kinds as
// the replacement.
func ConfigureAddition(m *Meal, id string, choice catalog.Option) bool {
	if choice.IsFinished {
		return false
	}
	for i := range m.Additions {
		if m.Additions[i].ID != id {
			continue
		}
		if m.Additions[i].Name == AdditionProtein {
			m.Additions[i].Protein = choice.Name
		} else {
			m.Additions[i].Replacement = choice.Name
		}
		return true
	}
	return false
}

func additionConfigured(a Addition) bool {
	if !a.RequiresReplacement && !RequiresReplacement(a.Name) {
		return true
	}
	if a.Name == AdditionProtein {
		return a.Protein != ""
	}
	return a.Replacement != ""
}

// Unconfigured lists additions still waiting for their sub-choice, in
// array order.
func Unconfigured(m *Meal) []Addition {
	var pending []Addition
	for _, a := range m.Additions {
		if !additionConfigured(a) {
			pending = append(pending, a)
		}
	}
	return pending
}

// CurrentlyConfiguring exposes only the first pending addition; the
// queue reveals the next one once this is configured or cancelled.
func CurrentlyConfiguring(m *Meal) *Addition {
	for i := range m.Additions {
		if !additionConfigured(m.Additions[i]) {
			return &m.Additions[i]
		}
	}
	return nil
}

// MessagingComplete reports whether the meal carries no dangling
// unconfigured additions. This gates the outbound message, not the nine
// wizard steps.
func MessagingComplete(m *Meal) bool {
	return CurrentlyConfiguring(m) == nil
}

// NormalizeAdditions prepares the raw additions catalog for selection:
// Mojarra as an add-on costs 8000 regardless of its catalog price, the
// four "* adicional" kinds are flagged as requiring a sub-choice, and the
// special rices are not offered as additions.
func NormalizeAdditions(opts []catalog.Option) []catalog.Option {
	normalized := make([]catalog.Option, 0, len(opts))
	for _, opt := range opts {
		if IsSpecialRice(opt.Name) {
			continue
		}
		if opt.Name == ProteinMojarra {
			opt.Price = 8000
		}
		opt.RequiresReplacement = opt.RequiresReplacement || RequiresReplacement(opt.Name)
		normalized = append(normalized, opt)
	}
	return normalized
}

// ReplacementsFor returns the sub-choice list for an addition kind,
// filtered the way the ordering UI filters its main lists.
func ReplacementsFor(name string, c *catalog.Catalogs) []catalog.Option {
	switch name {
	case AdditionSoup:
		return filterByName(c.Soups, SoupTrayOnly, SoupReplacementName)
	case AdditionPrinciple:
		return filterPrinciples(c.Principles)
	case AdditionProtein:
		return filterByName(c.Proteins, ProteinMojarra)
	case AdditionDrink:
		return filterByName(c.Drinks, DrinkNone)
	}
	return nil
}

func filterByName(opts []catalog.Option, exclude ...string) []catalog.Option {
	kept := make([]catalog.Option, 0, len(opts))
	for _, opt := range opts {
		skip := false
		for _, name := range exclude {
			if opt.Name == name {
				skip = true
				break
			}
		}
		if !skip {
			kept = append(kept, opt)
		}
	}
	return kept
}

func filterPrinciples(opts []catalog.Option) []catalog.Option {
	kept := make([]catalog.Option, 0, len(opts))
	for _, opt := range opts {
		if opt.Name == PrincipleReplacement || IsSpecialRice(opt.Name) {
			continue
		}
		kept = append(kept, opt)
	}
	return kept
}
