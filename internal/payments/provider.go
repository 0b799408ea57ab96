package payments

import (
	"context"
)

//go:generate mockgen -source=provider.go -destination=../mocks/payments_mocks.go -package=mocks

// Customer is a payment provider customer record referenced by an organization
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PaymentMethod is an on-file card
type PaymentMethod struct {
	ID        string `json:"id"`
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	ExpMonth  int    `json:"exp_month"`
	ExpYear   int    `json:"exp_year"`
	IsDefault bool   `json:"is_default"`
}

// Charge is a completed payment
type Charge struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// SetupIntent carries the client secret the frontend needs to collect a card
type SetupIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// Address is a billing address forwarded to the provider
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Provider is the narrow capability surface the billing engine depends on.
// Business logic never sees provider SDK types; retry idempotency is the
// caller's responsibility.
type Provider interface {
	CreateCustomer(ctx context.Context, name, email string) (*Customer, error)
	ListPaymentMethods(ctx context.Context, customerID string) ([]PaymentMethod, error)
	CreateSetupIntent(ctx context.Context, customerID string) (*SetupIntent, error)
	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	DetachPaymentMethod(ctx context.Context, paymentMethodID string) error
	SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	UpdateAddress(ctx context.Context, customerID string, address Address) error
	CreateCharge(ctx context.Context, customerID string, amountCents int64, currency, description string) (*Charge, error)
	// FindCharge looks up the customer's charge with the given description.
	// Returns (nil, nil) when no such charge exists. Used to reconcile charge
	// attempts that failed before the charge id was recorded.
	FindCharge(ctx context.Context, customerID, description string) (*Charge, error)
	RefundCharge(ctx context.Context, chargeID string) error
}
