package meal

import (
	"regexp"

	"cocinacasera/internal/catalog"
)

// Option names the step logic branches on. These come from the catalog
// data, so they are contract, not configuration.
const (
	SoupTrayOnly         = "Solo bandeja"
	SoupNone             = "Sin sopa"
	SoupReplacementName  = "Remplazo por Sopa"
	PrincipleReplacement = "Remplazo por Principio"
	SideNone             = "Ninguno"
	ProteinMojarra       = "Mojarra"
	DrinkNone            = "Sin bebida"
	TimeASAP             = "Lo antes posible"
)

// The three rice dishes that bundle their own protein and sides.
var SpecialRiceNames = []string{"Arroz con pollo", "Arroz paisa", "Arroz tres carnes"}

// Additions whose selection requires a protein/replacement sub-choice.
const (
	AdditionProtein   = "Proteína adicional"
	AdditionSoup      = "Sopa adicional"
	AdditionPrinciple = "Principio adicional"
	AdditionDrink     = "Bebida adicional"
)

// Addition is a paid add-on attached to one meal, with its own quantity
// and, for the "* adicional" kinds, a configured sub-choice.
type Addition struct {
	catalog.Option
	Quantity    int    `json:"quantity"`
	Protein     string `json:"protein,omitempty"`
	Replacement string `json:"replacement,omitempty"`
}

// TimeSlot is either a catalog delivery slot or a free-text custom time
// (ID "0").
type TimeSlot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Address delivery types.
const (
	AddressHouse   = "house"
	AddressSchool  = "school"
	AddressComplex = "complex"
	AddressShop    = "shop"
)

type Address struct {
	Address       string `json:"address"`
	PhoneNumber   string `json:"phoneNumber"`
	AddressType   string `json:"addressType"`
	RecipientName string `json:"recipientName"`
	UnitDetails   string `json:"unitDetails"`
	LocalName     string `json:"localName"`
}

var phonePattern = regexp.MustCompile(`^3\d{9}$`)

// ValidPhone reports whether phone is a ten-digit Colombian mobile number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Valid checks the addressType-conditional requirements: recipient name
// for schools/offices, unit details for residential complexes, local name
// for shops.
func (a Address) Valid() bool {
	if a.Address == "" || !ValidPhone(a.PhoneNumber) {
		return false
	}
	switch a.AddressType {
	case AddressSchool:
		return a.RecipientName != ""
	case AddressComplex:
		return a.UnitDetails != ""
	case AddressShop:
		return a.LocalName != ""
	}
	return true
}

// Meal is one configured lunch within an order. IDs are dense list
// positions (0..N-1), reassigned whenever the list is mutated, so they
// are not stable identities.
type Meal struct {
	ID                   int             `json:"id"`
	Soup                 *catalog.Option `json:"soup"`
	SoupReplacement      *catalog.Option `json:"soupReplacement"`
	Principle            []catalog.Option `json:"principle"`
	PrincipleReplacement *catalog.Option `json:"principleReplacement"`
	Protein              *catalog.Option `json:"protein"`
	Drink                *catalog.Option `json:"drink"`
	Sides                []catalog.Option `json:"sides"`
	Additions            []Addition      `json:"additions"`
	Notes                string          `json:"notes"`
	Time                 *TimeSlot       `json:"time"`
	Address              Address         `json:"address"`
	Payment              *catalog.Option `json:"payment"`

	// Cutlery is tri-state: nil means unanswered, which is distinct
	// from an explicit "no".
	Cutlery *bool `json:"cutlery"`
}

// Initialize returns a fresh meal pre-filled with the customer's saved
// address details.
func Initialize(addr Address) Meal {
	if addr.AddressType == "" {
		addr.AddressType = AddressHouse
	}
	return Meal{Address: addr}
}

// Clone deep-copies a meal so duplicated meals never share slices.
func (m Meal) Clone() Meal {
	c := m
	c.Principle = append([]catalog.Option(nil), m.Principle...)
	c.Sides = append([]catalog.Option(nil), m.Sides...)
	c.Additions = append([]Addition(nil), m.Additions...)
	if m.Soup != nil {
		soup := *m.Soup
		c.Soup = &soup
	}
	if m.SoupReplacement != nil {
		r := *m.SoupReplacement
		c.SoupReplacement = &r
	}
	if m.PrincipleReplacement != nil {
		r := *m.PrincipleReplacement
		c.PrincipleReplacement = &r
	}
	if m.Protein != nil {
		p := *m.Protein
		c.Protein = &p
	}
	if m.Drink != nil {
		d := *m.Drink
		c.Drink = &d
	}
	if m.Time != nil {
		t := *m.Time
		c.Time = &t
	}
	if m.Payment != nil {
		p := *m.Payment
		c.Payment = &p
	}
	if m.Cutlery != nil {
		b := *m.Cutlery
		c.Cutlery = &b
	}
	return c
}

// IsSpecialRice reports whether name is one of the bundled rice dishes.
func IsSpecialRice(name string) bool {
	for _, rice := range SpecialRiceNames {
		if rice == name {
			return true
		}
	}
	return false
}

// HasSpecialRice reports whether the meal's principle is a bundled rice
// dish (protein and sides included).
func (m *Meal) HasSpecialRice() bool {
	for _, p := range m.Principle {
		if IsSpecialRice(p.Name) {
			return true
		}
	}
	return false
}

// SpecialRiceName returns the selected rice dish name, or "".
func (m *Meal) SpecialRiceName() string {
	for _, p := range m.Principle {
		if IsSpecialRice(p.Name) {
			return p.Name
		}
	}
	return ""
}

// HasPrincipleReplacement reports whether the principle selection is the
// substitution trigger.
func (m *Meal) HasPrincipleReplacement() bool {
	for _, p := range m.Principle {
		if p.Name == PrincipleReplacement {
			return true
		}
	}
	return false
}

// ValidTime reports whether the meal carries a concrete delivery time
// rather than "as soon as possible".
func ValidTime(t *TimeSlot) bool {
	return t != nil && t.Name != "" && t.Name != TimeASAP
}

// CustomTime builds a free-text slot the time catalog does not carry.
func CustomTime(name string) *TimeSlot {
	return &TimeSlot{ID: "0", Name: name}
}
