package summary

import (
	"encoding/json"
	"sort"
	"strings"

	"cocinacasera/internal/meal"
)

// The ten fields the grouping compares, in the order differences are
// reported.
var trackedFields = []string{
	"Sopa", "Principio", "Proteína", "Bebida", "Cubiertos",
	"Acompañamientos", "Hora", "Dirección", "Pago", "Adiciones",
}

// Address sub-fields, in canonical order.
var addressFields = []string{
	"address", "addressType", "recipientName", "phoneNumber", "unitDetails", "localName",
}

// CleanText strips the " NUEVO" marketing suffix from an option name.
// Empty input renders as "No seleccionado".
func CleanText(text string) string {
	cleaned := strings.Replace(text, " NUEVO", "", 1)
	if cleaned == "" {
		return "No seleccionado"
	}
	return cleaned
}

// FormatNotes capitalizes the first letter of each sentence in the
// customer's free-text notes.
func FormatNotes(notes string) string {
	if notes == "" {
		return ""
	}
	sentences := strings.Split(notes, ". ")
	for i, s := range sentences {
		if s == "" {
			continue
		}
		sentences[i] = strings.ToUpper(s[:1]) + s[1:]
	}
	return strings.Join(sentences, ". ")
}

func addressValue(m *meal.Meal, field string) string {
	switch field {
	case "address":
		return m.Address.Address
	case "addressType":
		return m.Address.AddressType
	case "recipientName":
		return m.Address.RecipientName
	case "phoneNumber":
		return m.Address.PhoneNumber
	case "unitDetails":
		return m.Address.UnitDetails
	case "localName":
		return m.Address.LocalName
	}
	return ""
}

func cutleryKey(m *meal.Meal) string {
	if m.Cutlery != nil && *m.Cutlery {
		return "Sí"
	}
	return "No"
}

// fieldKey canonicalizes a field's value so two meals compare equal
// exactly when a human would call them the same. Multi-valued fields are
// sorted and JSON-encoded so selection order never splits a group.
func fieldKey(m *meal.Meal, field string) string {
	switch field {
	case "Sopa":
		if m.Soup != nil && m.Soup.Name == meal.SoupTrayOnly {
			return "solo bandeja"
		}
		if m.SoupReplacement != nil && m.SoupReplacement.Name != "" {
			b, _ := json.Marshal(struct {
				Name string `json:"name"`
				Type string `json:"type"`
			}{CleanText(m.SoupReplacement.Name), "por sopa"})
			return string(b)
		}
		if m.Soup != nil && m.Soup.Name != "" && m.Soup.Name != meal.SoupNone {
			return CleanText(m.Soup.Name)
		}
		return meal.SoupNone
	case "Principio":
		names := make([]string, 0, len(m.Principle))
		for _, p := range m.Principle {
			names = append(names, CleanText(p.Name))
		}
		sort.Strings(names)
		replacement := ""
		if m.PrincipleReplacement != nil && m.PrincipleReplacement.Name != "" {
			replacement = CleanText(m.PrincipleReplacement.Name)
		}
		b, _ := json.Marshal([]string{strings.Join(names, ","), replacement})
		return string(b)
	case "Proteína":
		if m.Protein != nil && m.Protein.Name != "" {
			return CleanText(m.Protein.Name)
		}
		return "Sin proteína"
	case "Bebida":
		if m.Drink != nil && m.Drink.Name != "" {
			return CleanText(m.Drink.Name)
		}
		return meal.DrinkNone
	case "Cubiertos":
		return cutleryKey(m)
	case "Acompañamientos":
		names := make([]string, 0, len(m.Sides))
		for _, s := range m.Sides {
			names = append(names, CleanText(s.Name))
		}
		sort.Strings(names)
		b, _ := json.Marshal(names)
		return string(b)
	case "Hora":
		if m.Time != nil && m.Time.Name != "" {
			return m.Time.Name
		}
		return "No especificada"
	case "Dirección":
		values := make([]string, len(addressFields))
		for i, f := range addressFields {
			values[i] = addressValue(m, f)
		}
		b, _ := json.Marshal(values)
		return string(b)
	case "Pago":
		if m.Payment != nil && m.Payment.Name != "" {
			return m.Payment.Name
		}
		return "No especificado"
	case "Adiciones":
		type additionKey struct {
			Name        string `json:"name"`
			Protein     string `json:"protein"`
			Replacement string `json:"replacement"`
			Quantity    int    `json:"quantity"`
		}
		keys := make([]additionKey, 0, len(m.Additions))
		for _, a := range m.Additions {
			qty := a.Quantity
			if qty < 1 {
				qty = 1
			}
			keys = append(keys, additionKey{CleanText(a.Name), a.Protein, a.Replacement, qty})
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].Name < keys[j].Name })
		b, _ := json.Marshal(keys)
		return string(b)
	}
	return ""
}
