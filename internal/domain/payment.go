package domain

import "time"

// PaymentMethodType represents the kind of payment method on file.
type PaymentMethodType string

const (
	PaymentMethodTypeCard   PaymentMethodType = "card"
	PaymentMethodTypeWallet PaymentMethodType = "wallet"
)

// PaymentMethod represents a stored payment method.
type PaymentMethod struct {
	ID        int               `json:"id"`
	Type      PaymentMethodType `json:"type"`
	Brand     string            `json:"brand"` // e.g. "Visa"
	Last4     string            `json:"last4"`
	ExpMonth  int               `json:"exp_month"`
	ExpYear   int               `json:"exp_year"`
	IsDefault bool              `json:"is_default"`
}

// Transaction represents a completed charge for a ride.
type Transaction struct {
	ID          int       `json:"id"`
	RideID      string    `json:"ride_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
