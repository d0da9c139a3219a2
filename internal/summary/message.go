package summary

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cocinacasera/internal/meal"
	"cocinacasera/internal/pricing"
)

const (
	separator   = "───────────────\n"
	paymentCash = "Efectivo"
	transferTo  = "313 850 5647"
)

// FormatCOP renders an integer peso amount with dot thousands separators
// ("12.000").
func FormatCOP(n int) string {
	digits := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	return sign + strings.Join(parts, ".")
}

func deliveryPlace(addressType string) string {
	switch addressType {
	case meal.AddressHouse:
		return "Casa/Apartamento Individual"
	case meal.AddressSchool:
		return "Colegio/Oficina"
	case meal.AddressComplex:
		return "Conjunto Residencial"
	case meal.AddressShop:
		return "Tienda/Local"
	}
	return "No especificado"
}

// addressLine renders one address sub-field, or "" when the field does
// not apply to the delivery type.
func addressLine(field, value, addressType string) string {
	if value == "" {
		return ""
	}
	switch field {
	case "address":
		return "📍 Dirección: " + value
	case "addressType":
		return "🏠 Lugar de entrega: " + deliveryPlace(value)
	case "recipientName":
		if addressType == meal.AddressSchool {
			return "👤 Nombre del destinatario: " + value
		}
	case "phoneNumber":
		return "📞 Teléfono: " + value
	case "unitDetails":
		if addressType == meal.AddressComplex {
			return "🏢 Detalles: " + value
		}
	case "localName":
		if addressType == meal.AddressShop {
			return "🏬 Nombre del local: " + value
		}
	}
	return ""
}

func soupDisplay(m *meal.Meal) string {
	if m.Soup != nil && m.Soup.Name == meal.SoupTrayOnly {
		return "solo bandeja"
	}
	if m.SoupReplacement != nil && m.SoupReplacement.Name != "" {
		return CleanText(m.SoupReplacement.Name) + " (por sopa)"
	}
	if m.Soup != nil && m.Soup.Name != "" && m.Soup.Name != meal.SoupNone {
		return CleanText(m.Soup.Name)
	}
	return meal.SoupNone
}

func principleDisplay(m *meal.Meal) string {
	if m.PrincipleReplacement != nil && m.PrincipleReplacement.Name != "" {
		return CleanText(m.PrincipleReplacement.Name) + " (por principio)"
	}
	if len(m.Principle) == 0 {
		return "Sin principio"
	}
	names := make([]string, len(m.Principle))
	for i, p := range m.Principle {
		names[i] = CleanText(p.Name)
	}
	joined := strings.Join(names, ", ")
	if len(names) > 1 {
		joined += " (mixto)"
	}
	return joined
}

func proteinDisplay(m *meal.Meal) string {
	if m.Protein != nil && m.Protein.Name != "" {
		return CleanText(m.Protein.Name)
	}
	return "Sin proteína"
}

func drinkDisplay(m *meal.Meal) string {
	if m.Drink != nil && m.Drink.Name == "Juego de mango" {
		// Long-standing catalog typo, fixed on render only.
		return "Jugo de mango"
	}
	if m.Drink != nil && m.Drink.Name != "" {
		return CleanText(m.Drink.Name)
	}
	return meal.DrinkNone
}

func sidesDisplay(m *meal.Meal, emptyLabel string) string {
	if m.HasSpecialRice() {
		return "Ya incluidos"
	}
	if len(m.Sides) == 0 {
		return emptyLabel
	}
	names := make([]string, len(m.Sides))
	for i, s := range m.Sides {
		names[i] = CleanText(s.Name)
	}
	return strings.Join(names, ", ")
}

func timeDisplay(m *meal.Meal) string {
	if meal.ValidTime(m.Time) {
		return CleanText(m.Time.Name)
	}
	return "Lo más rápido"
}

// indicesLabel names the meals of an identical bucket with one-based
// positions, e.g. "*Almuerzos 1, 2, y 3*".
func indicesLabel(indices []int) string {
	ordered := append([]int(nil), indices...)
	sort.Ints(ordered)
	if len(ordered) == 1 {
		return fmt.Sprintf("*Almuerzo %d*", ordered[0]+1)
	}
	labels := make([]string, len(ordered))
	for i, idx := range ordered {
		labels[i] = strconv.Itoa(idx + 1)
	}
	head := strings.Join(labels[:len(labels)-1], ", ")
	if len(labels) > 2 {
		head += ","
	}
	return fmt.Sprintf("*Almuerzos %s y %s*", head, labels[len(labels)-1])
}

// diffDisplay renders one field's value for the differences section.
// Additions are deliberately not repeated there.
func diffDisplay(g *Group, m *meal.Meal, field string) string {
	switch field {
	case "Sopa":
		return soupDisplay(m)
	case "Principio":
		return principleDisplay(m)
	case "Proteína":
		if m.HasSpecialRice() {
			return "Proteína: Ya incluida en el arroz"
		}
		return proteinDisplay(m)
	case "Bebida":
		return drinkDisplay(m)
	case "Cubiertos":
		return "Cubiertos: " + cutleryKey(m)
	case "Acompañamientos":
		if m.HasSpecialRice() {
			return "Acompañamientos: Ya incluidos"
		}
		return "Acompañamientos: " + sidesDisplay(m, "Ninguno")
	case "Hora":
		return timeDisplay(m)
	case "Pago":
		if m.Payment != nil && m.Payment.Name != "" {
			return CleanText(m.Payment.Name)
		}
		return "No especificado"
	case "Dirección":
		var lines []string
		for _, f := range addressFields {
			if g.CommonAddress[f] != "" {
				continue
			}
			if line := addressLine(f, addressValue(m, f), m.Address.AddressType); line != "" {
				lines = append(lines, line)
			}
		}
		return strings.Join(lines, "\n")
	}
	return ""
}

// RenderMessage builds the WhatsApp order text: counts and total, then
// each group with its shared fields, a differences section for meals the
// group absorbed, the common delivery details, and payment instructions.
func RenderMessage(meals []meal.Meal) string {
	var b strings.Builder
	b.WriteString("👋 ¡Hola Cocina Casera! 🍴\nQuiero hacer mi pedido:\n\n")

	if len(meals) == 0 {
		b.WriteString("🍽 0 almuerzos en total\n💰 Total: $0\n¡Gracias por tu pedido! 😊")
		return b.String()
	}

	sum := Compile(meals)
	total := pricing.Total(meals)
	firstMeal := &meals[0]

	fmt.Fprintf(&b, "🍽 %d almuerzos en total\n", len(meals))
	for _, g := range sum.Groups {
		if len(g.Meals) > 1 {
			fmt.Fprintf(&b, "* %d almuerzos iguales\n", len(g.Meals))
		}
	}
	fmt.Fprintf(&b, "💰 Total: $%s\n", FormatCOP(total))
	b.WriteString(separator)

	anyCommonAddress := false
	for _, f := range addressFields {
		if sum.CommonAddress[f] != "" {
			anyCommonAddress = true
			break
		}
	}

	for gi := range sum.Groups {
		g := &sum.Groups[gi]
		base := &g.Meals[0]
		count := len(g.Meals)
		groupTotal := pricing.Total(g.Meals)

		var payments []string
		for _, p := range g.Payments {
			if p != "" && p != pricing.UnspecifiedMethod {
				payments = append(payments, p)
			}
		}
		paymentText := "(No especificado)"
		if len(payments) > 0 {
			paymentText = "(" + strings.Join(payments, " y ") + ")"
		}

		if count == 1 {
			fmt.Fprintf(&b, "🍽 1 Almuerzo – $%s %s\n", FormatCOP(groupTotal), paymentText)
		} else {
			fmt.Fprintf(&b, "🍽 %d Almuerzos iguales – $%s %s\n", count, FormatCOP(groupTotal), paymentText)
		}

		if count == 1 {
			b.WriteString(soupDisplay(base) + "\n")
			b.WriteString(principleDisplay(base) + "\n")
			if !base.HasSpecialRice() && base.Protein != nil && base.Protein.Name != "" {
				b.WriteString(CleanText(base.Protein.Name) + "\n")
			}
			b.WriteString(drinkDisplay(base) + "\n")
			b.WriteString("Cubiertos: " + cutleryKey(base) + "\n")
			b.WriteString("Acompañamientos: " + sidesDisplay(base, "Sin acompañamientos") + "\n")
			notes := FormatNotes(base.Notes)
			if notes == "" {
				notes = "Ninguna"
			}
			b.WriteString("Notas: " + notes + "\n")
		} else {
			if g.CommonFields["Sopa"] {
				b.WriteString(soupDisplay(base) + "\n")
			}
			if g.CommonFields["Principio"] {
				b.WriteString(principleDisplay(base) + "\n")
			}
			if g.CommonFields["Proteína"] && !base.HasSpecialRice() {
				b.WriteString(proteinDisplay(base) + "\n")
			}
			if g.CommonFields["Cubiertos"] {
				b.WriteString("Cubiertos: " + cutleryKey(base) + "\n")
			}
			if g.CommonFields["Acompañamientos"] {
				b.WriteString("Acompañamientos: " + sidesDisplay(base, "Sin acompañamientos") + "\n")
			}
			if g.CommonFields["Bebida"] {
				b.WriteString(drinkDisplay(base) + "\n")
			}
		}

		b.WriteString(separator)

		if count > 1 && len(g.Identical) > 1 {
			b.WriteString("🔄 Diferencias:\n")
			for _, ig := range g.Identical {
				b.WriteString(indicesLabel(ig.Indices) + ":\n")
				m := &ig.Meals[0]
				for _, f := range trackedFields {
					same := fieldKey(m, f) == fieldKey(base, f)
					if g.CommonFields[f] && same {
						continue
					}
					if value := diffDisplay(g, m, f); value != "" {
						b.WriteString(value + "\n")
					}
				}
			}
		}

		if sum.CommonDeliveryTime != "" || anyCommonAddress {
			b.WriteString(separator)
			if sum.CommonDeliveryTime != "" {
				b.WriteString("🕒 Entrega: " + timeDisplay(firstMeal) + "\n")
			}
			addrType := sum.CommonAddress["addressType"]
			for _, f := range addressFields {
				if line := addressLine(f, sum.CommonAddress[f], addrType); line != "" {
					b.WriteString(line + "\n")
				}
			}
			b.WriteString(separator)
		}
	}

	entries := pricing.Summarize(meals)
	if len(entries) > 0 {
		allCashOrUnspecified := true
		for _, e := range entries {
			if e.Method != paymentCash && e.Method != pricing.UnspecifiedMethod {
				allCashOrUnspecified = false
				break
			}
		}
		if allCashOrUnspecified {
			b.WriteString("Paga en efectivo al momento de la entrega.\n")
			fmt.Fprintf(&b, "💵 Efectivo: $%s\n", FormatCOP(total))
			b.WriteString("Si no tienes efectivo, puedes transferir por Nequi o DaviPlata al número: " + transferTo + ".\n\n")
			fmt.Fprintf(&b, "💰 Total: $%s\n", FormatCOP(total))
			b.WriteString("🚚 Estimado: 25-30 min (10-15 si están cerca).\n")
		} else {
			b.WriteString("💳 Instrucciones de pago:\n")
			b.WriteString("Envía al número " + transferTo + " (Nequi o DaviPlata):\n")
			for _, e := range entries {
				if e.Method != pricing.UnspecifiedMethod && e.Amount > 0 {
					fmt.Fprintf(&b, "🔹 %s: $%s\n", e.Method, FormatCOP(e.Amount))
				}
			}
			fmt.Fprintf(&b, "\n💰 Total: $%s\n", FormatCOP(total))
			b.WriteString("🚚 Estimado: 25-30 min (10-15 si están cerca).\n")
		}
	}

	b.WriteString("\n¡Gracias por tu pedido! 😊")
	return b.String()
}
