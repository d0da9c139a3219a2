package catalog

import (
	"context"
	"log"

	"cocinacasera/internal/store"
)

// defaultOptions is the menu a fresh install starts with. Admins manage
// the real menu afterwards; the structural entries ("Sin sopa", "Solo
// bandeja", the substitution triggers, "Ninguno", the "* adicional"
// kinds) must keep these exact names.
var defaultOptions = map[string][]Option{
	CollectionSoups: {
		{Name: "Sancocho de pescado", Emoji: "🐟"},
		{Name: "Ajiaco", Emoji: "🥘"},
		{Name: "Sin sopa", Emoji: "🚫"},
		{Name: "Solo bandeja", Emoji: "🍛"},
		{Name: "Remplazo por Sopa", Emoji: "🔄", RequiresReplacement: true},
	},
	CollectionSoupReplacements: {
		{Name: "Huevo frito", Emoji: "🍳"},
		{Name: "Papa a la francesa", Emoji: "🍟"},
	},
	CollectionPrinciples: {
		{Name: "Frijol", Emoji: "🫘"},
		{Name: "Lenteja", Emoji: "🥣"},
		{Name: "Espagueti", Emoji: "🍝"},
		{Name: "Arroz con pollo", Emoji: "🍚"},
		{Name: "Arroz paisa", Emoji: "🍚"},
		{Name: "Arroz tres carnes", Emoji: "🍚"},
		{Name: "Remplazo por Principio", Emoji: "🔄", RequiresReplacement: true},
	},
	CollectionProteins: {
		{Name: "Res", Emoji: "🥩"},
		{Name: "Cerdo", Emoji: "🥓"},
		{Name: "Pollo", Emoji: "🍗"},
		{Name: "Mojarra", Emoji: "🐟"},
	},
	CollectionDrinks: {
		{Name: "Limonada", Emoji: "🍋"},
		{Name: "Juego de mango", Emoji: "🥭"},
		{Name: "Sin bebida", Emoji: "🚫"},
	},
	CollectionSides: {
		{Name: "Arroz", Emoji: "🍚"},
		{Name: "Ensalada", Emoji: "🥗"},
		{Name: "Tajadas", Emoji: "🍌"},
		{Name: "Ninguno", Emoji: "🚫"},
	},
	CollectionTimes: {
		{Name: "Lo antes posible", Emoji: "⚡"},
		{Name: "11:30 am", Emoji: "🕦"},
		{Name: "12:00 pm", Emoji: "🕛"},
		{Name: "12:30 pm", Emoji: "🕧"},
		{Name: "1:00 pm", Emoji: "🕐"},
	},
	CollectionPaymentMethods: {
		{Name: "Efectivo", Emoji: "💵"},
		{Name: "Nequi", Emoji: "📱"},
		{Name: "DaviPlata", Emoji: "📱"},
	},
	CollectionAdditions: {
		{Name: "Mojarra", Emoji: "🐟", Price: 8000},
		{Name: "Proteína adicional", Emoji: "🍖", Price: 5000, RequiresReplacement: true},
		{Name: "Sopa adicional", Emoji: "🥣", Price: 3000, RequiresReplacement: true},
		{Name: "Principio adicional", Emoji: "🫘", Price: 3000, RequiresReplacement: true},
		{Name: "Bebida adicional", Emoji: "🥤", Price: 2000, RequiresReplacement: true},
	},
}

// SeedDefaults populates any empty collection. Non-empty collections are
// left alone, so it is safe to call on every start.
func SeedDefaults(ctx context.Context, s store.Store) error {
	for _, collection := range Collections {
		docs, err := s.ListDocuments(ctx, collection)
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			continue
		}
		for _, opt := range defaultOptions[collection] {
			if _, err := s.CreateDocument(ctx, collection, opt); err != nil {
				return err
			}
		}
		log.Println("seeded catalog collection:", collection)
	}
	return nil
}
