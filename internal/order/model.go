package order

import (
	"time"

	"cocinacasera/internal/pricing"
)

const (
	StatusPending   = "Pending"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// ValidStatus reports whether status is one a kitchen admin may set.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Addition is the flattened form of a meal add-on kept on a stored order.
type Addition struct {
	Name    string `json:"name"`
	Protein string `json:"protein"`
}

type Address struct {
	Address       string `json:"address"`
	PhoneNumber   string `json:"phoneNumber"`
	AddressType   string `json:"addressType"`
	RecipientName string `json:"recipientName"`
	UnitDetails   string `json:"unitDetails"`
	LocalName     string `json:"localName"`
}

// Meal is the stored projection of a configured meal. Option structures
// collapse to their names; joined principle names keep the selection
// order.
type Meal struct {
	Soup                 string     `json:"soup"`
	SoupReplacement      string     `json:"soupReplacement"`
	Principle            string     `json:"principle"`
	PrincipleReplacement string     `json:"principleReplacement"`
	Protein              string     `json:"protein"`
	Drink                string     `json:"drink"`
	Sides                []string   `json:"sides"`
	Additions            []Addition `json:"additions"`
	Address              Address    `json:"address"`
	Payment              string     `json:"payment"`
	Time                 string     `json:"time"`
	Notes                string     `json:"notes"`
	Cutlery              bool       `json:"cutlery"`
}

type Order struct {
	ID             string                 `json:"id"`
	UserID         string                 `json:"userId"`
	UserEmail      string                 `json:"userEmail"`
	Meals          []Meal                 `json:"meals"`
	Total          int                    `json:"total"`
	PaymentSummary []pricing.PaymentEntry `json:"paymentSummary"`
	Status         string                 `json:"status"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}
