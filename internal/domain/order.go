package domain

import (
	"fmt"
	"time"
)

// ShippingAddress mirrors the address shape collected at checkout.
type ShippingAddress struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// ShippingInfo is the optional shipping block attached to an order.
type ShippingInfo struct {
	Address ShippingAddress `json:"address"`
	Name    string          `json:"name,omitempty"`
}

// Order is the locally persisted record of a purchase attempt. Orders are
// written exactly once and never updated or cancelled.
type Order struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Email       string        `json:"email,omitempty"`
	Amount      int64         `json:"amount"`
	ProductID   string        `json:"productId,omitempty"`
	ProductName string        `json:"productName,omitempty"`
	Shipping    *ShippingInfo `json:"shipping,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// ValidateAmount enforces the positive-integer minor-unit contract shared by
// every payment and order path.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than 0", ErrInvalidInput)
	}
	return nil
}
