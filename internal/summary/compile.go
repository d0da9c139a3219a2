package summary

import "cocinacasera/internal/meal"

// GroupThreshold is the maximum number of differing fields two meals may
// have and still share a group.
const GroupThreshold = 3

// IdenticalGroup buckets the meals of one group that match on every
// tracked field. Indices are zero-based positions in the original list.
type IdenticalGroup struct {
	Meals   []meal.Meal
	Indices []int
}

// Group is a run of similar meals, assembled greedily in list order.
type Group struct {
	Meals   []meal.Meal
	Indices []int

	// Payment method names seen in the group, first-appearance order.
	Payments []string

	// Fields whose canonical value is identical across the group.
	CommonFields map[string]bool

	// Address sub-fields shared by the whole group; "" means not shared
	// (or shared but empty, which renders the same).
	CommonAddress map[string]string

	Identical []IdenticalGroup
}

// Summary is the compiled view of an order's meal list.
type Summary struct {
	Groups []Group

	// Delivery time shared by every meal, "" when they disagree.
	CommonDeliveryTime string

	// Address sub-fields shared by every meal in the order.
	CommonAddress map[string]string

	// Tracked fields identical across the whole order.
	CommonFields map[string]bool
}

// Compile groups the meals for display: each meal joins the first
// existing group it differs from in at most GroupThreshold fields, then
// each group is sub-bucketed into runs of fully identical meals. The
// result is deterministic for a fixed input order.
func Compile(meals []meal.Meal) Summary {
	s := Summary{
		CommonAddress: map[string]string{},
		CommonFields:  map[string]bool{},
	}
	if len(meals) == 0 {
		return s
	}

	first := &meals[0]

	timeCommon := true
	for i := range meals {
		if fieldKey(&meals[i], "Hora") != fieldKey(first, "Hora") {
			timeCommon = false
			break
		}
	}
	if timeCommon && first.Time != nil {
		s.CommonDeliveryTime = first.Time.Name
	}

	for _, f := range addressFields {
		common := true
		for i := range meals {
			if addressValue(&meals[i], f) != addressValue(first, f) {
				common = false
				break
			}
		}
		if common {
			s.CommonAddress[f] = addressValue(first, f)
		} else {
			s.CommonAddress[f] = ""
		}
	}

	for _, f := range trackedFields {
		common := true
		for i := range meals {
			if fieldKey(&meals[i], f) != fieldKey(first, f) {
				common = false
				break
			}
		}
		s.CommonFields[f] = common
	}

	for i := range meals {
		m := &meals[i]
		assigned := false
		for g := range s.Groups {
			ref := &s.Groups[g].Meals[0]
			differences := 0
			for _, f := range trackedFields {
				if fieldKey(m, f) != fieldKey(ref, f) {
					differences++
				}
			}
			if differences <= GroupThreshold {
				s.Groups[g].Meals = append(s.Groups[g].Meals, *m)
				s.Groups[g].Indices = append(s.Groups[g].Indices, i)
				if m.Payment != nil && m.Payment.Name != "" {
					s.Groups[g].addPayment(m.Payment.Name)
				}
				assigned = true
				break
			}
		}
		if assigned {
			continue
		}
		group := Group{Meals: []meal.Meal{*m}, Indices: []int{i}}
		if m.Payment != nil && m.Payment.Name != "" {
			group.Payments = []string{m.Payment.Name}
		}
		s.Groups = append(s.Groups, group)
	}

	for g := range s.Groups {
		group := &s.Groups[g]
		group.CommonFields = map[string]bool{}
		for _, f := range trackedFields {
			common := true
			for i := range group.Meals {
				if fieldKey(&group.Meals[i], f) != fieldKey(&group.Meals[0], f) {
					common = false
					break
				}
			}
			if common {
				group.CommonFields[f] = true
			}
		}

		group.CommonAddress = map[string]string{}
		for _, f := range addressFields {
			common := true
			for i := range group.Meals {
				if addressValue(&group.Meals[i], f) != addressValue(&group.Meals[0], f) {
					common = false
					break
				}
			}
			if common {
				group.CommonAddress[f] = addressValue(&group.Meals[0], f)
			} else {
				group.CommonAddress[f] = ""
			}
		}

		bucketAt := map[string]int{}
		for i := range group.Meals {
			key := ""
			for _, f := range trackedFields {
				key += fieldKey(&group.Meals[i], f) + "|"
			}
			at, ok := bucketAt[key]
			if !ok {
				at = len(group.Identical)
				bucketAt[key] = at
				group.Identical = append(group.Identical, IdenticalGroup{})
			}
			group.Identical[at].Meals = append(group.Identical[at].Meals, group.Meals[i])
			group.Identical[at].Indices = append(group.Identical[at].Indices, group.Indices[i])
		}
	}

	return s
}

func (g *Group) addPayment(name string) {
	for _, p := range g.Payments {
		if p == name {
			return
		}
	}
	g.Payments = append(g.Payments, name)
}
