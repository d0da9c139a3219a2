package summary

import (
	"strings"
	"testing"

	"cocinacasera/internal/meal"
)

func TestRenderMessageEmptyOrder(t *testing.T) {
	got := RenderMessage(nil)
	want := "👋 ¡Hola Cocina Casera! 🍴\nQuiero hacer mi pedido:\n\n" +
		"🍽 0 almuerzos en total\n💰 Total: $0\n¡Gracias por tu pedido! 😊"
	if got != want {
		t.Fatalf("got:\n%s", got)
	}
}

func TestRenderMessageSingleMeal(t *testing.T) {
	got := RenderMessage([]meal.Meal{baseMeal()})

	want := strings.Join([]string{
		"👋 ¡Hola Cocina Casera! 🍴",
		"Quiero hacer mi pedido:",
		"",
		"🍽 1 almuerzos en total",
		"💰 Total: $13.000",
		"───────────────",
		"🍽 1 Almuerzo – $13.000 (Efectivo)",
		"Ajiaco",
		"Frijol",
		"Res",
		"Limonada",
		"Cubiertos: Sí",
		"Acompañamientos: Arroz",
		"Notas: Ninguna",
		"───────────────",
		"───────────────",
		"🕒 Entrega: 12:00 pm",
		"📍 Dirección: Calle 1 # 2-3",
		"🏠 Lugar de entrega: Casa/Apartamento Individual",
		"📞 Teléfono: 3001234567",
		"───────────────",
		"Paga en efectivo al momento de la entrega.",
		"💵 Efectivo: $13.000",
		"Si no tienes efectivo, puedes transferir por Nequi o DaviPlata al número: 313 850 5647.",
		"",
		"💰 Total: $13.000",
		"🚚 Estimado: 25-30 min (10-15 si están cerca).",
		"",
		"¡Gracias por tu pedido! 😊",
	}, "\n")

	if got != want {
		t.Fatalf("got:\n%s\n\nwant:\n%s", got, want)
	}
}

func TestRenderMessageGroupsAndDifferences(t *testing.T) {
	a := baseMeal()
	b := baseMeal()
	b.Protein = opt("Pollo")
	c := baseMeal()

	got := RenderMessage([]meal.Meal{a, b, c})

	if !strings.Contains(got, "🍽 3 almuerzos en total\n* 3 almuerzos iguales\n") {
		t.Fatalf("missing header counts:\n%s", got)
	}
	if !strings.Contains(got, "🍽 3 Almuerzos iguales – $39.000 (Efectivo)\n") {
		t.Fatalf("missing group header:\n%s", got)
	}
	if !strings.Contains(got, "🔄 Diferencias:\n") {
		t.Fatalf("missing differences section:\n%s", got)
	}
	if !strings.Contains(got, "*Almuerzos 1 y 3*:\nRes\n") {
		t.Fatalf("missing first bucket:\n%s", got)
	}
	if !strings.Contains(got, "*Almuerzo 2*:\nPollo\n") {
		t.Fatalf("missing second bucket:\n%s", got)
	}

	// Shared fields are printed once for the group.
	if !strings.Contains(got, "Ajiaco\nFrijol\nCubiertos: Sí\nAcompañamientos: Arroz\nLimonada\n") {
		t.Fatalf("missing shared fields:\n%s", got)
	}
}

func TestRenderMessageTransferInstructions(t *testing.T) {
	a := baseMeal()
	a.Payment = opt("Nequi")
	b := baseMeal()
	b.Payment = opt("DaviPlata")

	got := RenderMessage([]meal.Meal{a, b})

	if !strings.Contains(got, "💳 Instrucciones de pago:\n") {
		t.Fatalf("expected transfer branch:\n%s", got)
	}
	if !strings.Contains(got, "🔹 Nequi: $13.000\n") || !strings.Contains(got, "🔹 DaviPlata: $13.000\n") {
		t.Fatalf("missing per-method amounts:\n%s", got)
	}
	if strings.Contains(got, "Paga en efectivo") {
		t.Fatalf("cash branch must not render:\n%s", got)
	}
}

func TestRenderMessageFixesDrinkTypo(t *testing.T) {
	m := baseMeal()
	m.Drink = opt("Juego de mango")

	got := RenderMessage([]meal.Meal{m})
	if strings.Contains(got, "Juego de mango") {
		t.Fatalf("catalog typo must be fixed on render:\n%s", got)
	}
	if !strings.Contains(got, "Jugo de mango\n") {
		t.Fatalf("expected corrected drink name:\n%s", got)
	}
}

func TestIndicesLabelCommaQuirk(t *testing.T) {
	if got := indicesLabel([]int{0}); got != "*Almuerzo 1*" {
		t.Fatalf("got %q", got)
	}
	if got := indicesLabel([]int{0, 2}); got != "*Almuerzos 1 y 3*" {
		t.Fatalf("got %q", got)
	}
	if got := indicesLabel([]int{2, 0, 1}); got != "*Almuerzos 1, 2, y 3*" {
		t.Fatalf("got %q", got)
	}
}
