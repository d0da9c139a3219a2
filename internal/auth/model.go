package auth

import (
	"fmt"
	"time"
)

// Roles, stored as integers on the user document.
const (
	RoleClient = 1
	RoleAdmin  = 2
)

// User is a customer or admin account. Anonymous customers get a
// generated id and a placeholder email.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Password    string     `json:"password,omitempty"`
	Role        int        `json:"role"`
	TotalOrders int        `json:"totalOrders"`
	LastOrder   *time.Time `json:"lastOrder,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// AnonEmail is the placeholder address given to anonymous customers.
func AnonEmail(uid string) string {
	return fmt.Sprintf("anon_%s@example.com", uid)
}
