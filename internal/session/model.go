package session

import (
	"time"

	"cocinacasera/internal/meal"
)

// Session is one customer's in-progress order: the meal list the wizard
// edits before submission. Meal IDs are dense list positions.
type Session struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Meals     []meal.Meal `json:"meals"`
	// Address given at creation. Meals added after the list was emptied
	// are seeded from it so the customer's details survive removal.
	Address   meal.Address `json:"address"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (s *Session) mealByID(id int) *meal.Meal {
	for i := range s.Meals {
		if s.Meals[i].ID == id {
			return &s.Meals[i]
		}
	}
	return nil
}

func (s *Session) reindex() {
	for i := range s.Meals {
		s.Meals[i].ID = i
	}
}
