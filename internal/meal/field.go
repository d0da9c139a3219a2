package meal

import "fmt"

// Field identifies which part of a meal a wizard interaction changes.
// Dispatching on the enum keeps the selection rules exhaustive instead of
// branching on field-name strings.
type Field int

const (
	FieldSoup Field = iota
	FieldSoupReplacement
	FieldPrinciple
	FieldPrincipleReplacement
	FieldProtein
	FieldDrink
	FieldSides
	FieldAdditions
	FieldNotes
	FieldTime
	FieldAddress
	FieldPayment
	FieldCutlery
)

var fieldNames = map[Field]string{
	FieldSoup:                 "soup",
	FieldSoupReplacement:      "soupReplacement",
	FieldPrinciple:            "principle",
	FieldPrincipleReplacement: "principleReplacement",
	FieldProtein:              "protein",
	FieldDrink:                "drink",
	FieldSides:                "sides",
	FieldAdditions:            "additions",
	FieldNotes:                "notes",
	FieldTime:                 "time",
	FieldAddress:              "address",
	FieldPayment:              "payment",
	FieldCutlery:              "cutlery",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ParseField maps a wire name back to a Field.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown meal field %q", name)
}
