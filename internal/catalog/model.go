package catalog

// Option is a named, priced menu entry fetched from the document store.
// Options are read-only shared references; meals point at them and never
// mutate them.
type Option struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
	Price       int    `json:"price,omitempty"`
	IsNew       bool   `json:"isNew,omitempty"`
	IsFinished  bool   `json:"isFinished,omitempty"`

	// RequiresReplacement marks additions that need a sub-choice
	// (protein or replacement) before the meal can be messaged.
	RequiresReplacement bool `json:"requiresReplacement,omitempty"`
}

// The nine option collections served to the ordering UI.
const (
	CollectionSoups            = "soups"
	CollectionSoupReplacements = "soupReplacements"
	CollectionPrinciples       = "principles"
	CollectionProteins         = "proteins"
	CollectionDrinks           = "drinks"
	CollectionSides            = "sides"
	CollectionTimes            = "times"
	CollectionPaymentMethods   = "paymentMethods"
	CollectionAdditions        = "additions"
)

// Collections lists every option collection in subscription order.
var Collections = []string{
	CollectionSoups,
	CollectionSoupReplacements,
	CollectionPrinciples,
	CollectionProteins,
	CollectionDrinks,
	CollectionSides,
	CollectionTimes,
	CollectionPaymentMethods,
	CollectionAdditions,
}

// ValidCollection reports whether name is one of the option collections.
func ValidCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}

// Catalogs is a point-in-time snapshot of every collection. The ordering
// session reads replacement lists and selectable options from it; it may
// change between any two requests as the store pushes updates.
type Catalogs struct {
	Soups            []Option
	SoupReplacements []Option
	Principles       []Option
	Proteins         []Option
	Drinks           []Option
	Sides            []Option
	Times            []Option
	PaymentMethods   []Option
	Additions        []Option
}

// ByCollection returns the snapshot slice for a collection name.
func (c *Catalogs) ByCollection(name string) []Option {
	switch name {
	case CollectionSoups:
		return c.Soups
	case CollectionSoupReplacements:
		return c.SoupReplacements
	case CollectionPrinciples:
		return c.Principles
	case CollectionProteins:
		return c.Proteins
	case CollectionDrinks:
		return c.Drinks
	case CollectionSides:
		return c.Sides
	case CollectionTimes:
		return c.Times
	case CollectionPaymentMethods:
		return c.PaymentMethods
	case CollectionAdditions:
		return c.Additions
	}
	return nil
}

func (c *Catalogs) setCollection(name string, opts []Option) {
	switch name {
	case CollectionSoups:
		c.Soups = opts
	case CollectionSoupReplacements:
		c.SoupReplacements = opts
	case CollectionPrinciples:
		c.Principles = opts
	case CollectionProteins:
		c.Proteins = opts
	case CollectionDrinks:
		c.Drinks = opts
	case CollectionSides:
		c.Sides = opts
	case CollectionTimes:
		c.Times = opts
	case CollectionPaymentMethods:
		c.PaymentMethods = opts
	case CollectionAdditions:
		c.Additions = opts
	}
}
