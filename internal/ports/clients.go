package ports

import (
	"context"
	"time"
)

// AuthClaims is the verified caller identity extracted from a bearer
// credential by the external identity provider.
type AuthClaims struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

// TokenVerifier validates a bearer token and yields the caller identity.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (AuthClaims, error)
}

type GatewayCustomer struct {
	ID    string
	Email string
}

type GatewayPaymentIntent struct {
	ID           string
	ClientSecret string
}

type GatewayCheckoutSession struct {
	ID string
}

// GatewayEvent is a signature-verified webhook event from the payment
// processor. ObjectID identifies the event's primary object (for
// payment_intent.* events, the intent id).
type GatewayEvent struct {
	ID       string
	Type     string
	ObjectID string
}

// CheckoutSessionSpec describes a hosted checkout session. When
// CollectShipping is set the session restricts shipping-address collection to
// AllowedCountry and offers a single free-shipping option.
type CheckoutSessionSpec struct {
	Currency        string
	ProductName     string
	UnitAmount      int64
	Quantity        int64
	SuccessURL      string
	CancelURL       string
	CustomerEmail   string
	CollectShipping bool
	AllowedCountry  string
}

// PaymentGateway is the contract with the external payment processor. Each
// call is a blocking network round trip; callers sequence them and surface
// the first failure without retrying.
type PaymentGateway interface {
	// FindCustomerByEmail returns the first customer matching email, or nil
	// when none exists.
	FindCustomerByEmail(ctx context.Context, email string) (*GatewayCustomer, error)
	CreateCustomer(ctx context.Context, email string) (GatewayCustomer, error)
	CreateEphemeralKey(ctx context.Context, customerID string) (string, error)
	CreatePaymentIntent(ctx context.Context, amount int64, currency, customerID string) (GatewayPaymentIntent, error)
	CreateCheckoutSession(ctx context.Context, spec CheckoutSessionSpec) (GatewayCheckoutSession, error)
	// VerifyWebhook checks the signature header against the configured
	// signing secret and decodes the event without touching any other state.
	VerifyWebhook(payload []byte, signature string) (GatewayEvent, error)
}

// EventPublisher is the sink for domain events emitted by the service.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte) error
}

// EventDedupStore records processed gateway event ids. MarkSeen reports
// whether the id was seen for the first time within the ttl window.
type EventDedupStore interface {
	MarkSeen(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}
