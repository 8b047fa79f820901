package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
	"github.com/Cherry-CIC/Cherry-Backend/internal/ports"
)

// CreatePaymentIntent resolves the caller's profile and walks the fixed
// gateway sequence: customer resolution, ephemeral key, payment intent. The
// intent is charged amount plus the configured surcharge in the settlement
// currency. Any step failing aborts the rest; nothing is persisted locally.
func (s *Service) CreatePaymentIntent(ctx context.Context, actor Actor, amount int64) (PaymentIntentOutput, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return PaymentIntentOutput{}, domain.ErrUnauthorized
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return PaymentIntentOutput{}, err
	}

	user, err := s.users.GetByFirebaseUID(ctx, actor.UID)
	if err != nil {
		return PaymentIntentOutput{}, fmt.Errorf("resolve user %s: %w", actor.UID, err)
	}

	customer, err := s.resolveCustomer(ctx, user.Email)
	if err != nil {
		return PaymentIntentOutput{}, fmt.Errorf("resolve customer: %w", err)
	}

	ephemeralKey, err := s.gateway.CreateEphemeralKey(ctx, customer.ID)
	if err != nil {
		return PaymentIntentOutput{}, fmt.Errorf("create ephemeral key: %w", err)
	}

	total := amount + s.cfg.SurchargeMinorUnits
	intent, err := s.gateway.CreatePaymentIntent(ctx, total, s.cfg.Currency, customer.ID)
	if err != nil {
		return PaymentIntentOutput{}, fmt.Errorf("create payment intent: %w", err)
	}

	return PaymentIntentOutput{
		PaymentIntent:  intent.ClientSecret,
		EphemeralKey:   ephemeralKey,
		Customer:       customer.ID,
		PublishableKey: s.cfg.PublishableKey,
	}, nil
}

// resolveCustomer reuses the first billing customer matching email and
// creates one otherwise. A lookup failure falls through to creation rather
// than failing the whole call.
func (s *Service) resolveCustomer(ctx context.Context, email string) (ports.GatewayCustomer, error) {
	existing, err := s.gateway.FindCustomerByEmail(ctx, email)
	if err == nil && existing != nil {
		return *existing, nil
	}
	return s.gateway.CreateCustomer(ctx, email)
}

// CreateCheckoutSession builds a single line item and delegates to the
// gateway for a hosted payment-mode session. Only the session id is returned;
// no order record is written on this path.
func (s *Service) CreateCheckoutSession(ctx context.Context, actor Actor, input CreateCheckoutSessionInput) (string, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return "", domain.ErrUnauthorized
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return "", err
	}

	user, err := s.users.GetByFirebaseUID(ctx, actor.UID)
	if err != nil {
		return "", fmt.Errorf("resolve user %s: %w", actor.UID, err)
	}

	spec := ports.CheckoutSessionSpec{
		Currency:      s.cfg.Currency,
		ProductName:   checkoutLabel(input.ProductName, input.ProductID),
		UnitAmount:    input.Amount,
		Quantity:      1,
		SuccessURL:    s.cfg.FrontendBaseURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     s.cfg.FrontendBaseURL + "/cancel",
		CustomerEmail: user.Email,
	}
	if input.Shipping != nil {
		spec.CollectShipping = true
		spec.AllowedCountry = input.Shipping.Address.Country
		if spec.AllowedCountry == "" {
			spec.AllowedCountry = "GB"
		}
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, spec)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return session.ID, nil
}

func checkoutLabel(productName, productID string) string {
	switch {
	case productName != "":
		return productName
	case productID != "":
		return "Product " + productID
	default:
		return "Custom Product"
	}
}

// HandleGatewayEvent verifies an inbound webhook, deduplicates it by event id
// and records handled event types. No order state is mutated here; the
// payment-succeeded branch is intentionally a recording stub.
func (s *Service) HandleGatewayEvent(ctx context.Context, payload []byte, signature string) error {
	if strings.TrimSpace(signature) == "" {
		return fmt.Errorf("%w: missing signature header", domain.ErrInvalidInput)
	}

	event, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("%w: signature verification failed", domain.ErrUnauthorized)
	}

	if s.dedup != nil && event.ID != "" {
		first, err := s.dedup.MarkSeen(ctx, event.ID, s.cfg.EventDedupTTL)
		if err != nil {
			return fmt.Errorf("dedup event %s: %w", event.ID, err)
		}
		if !first {
			return nil
		}
	}

	switch event.Type {
	case "payment_intent.succeeded":
		if s.publisher != nil {
			body, _ := json.Marshal(map[string]string{"paymentIntentId": event.ObjectID})
			_ = s.publisher.Publish(ctx, event.Type, body)
		}
	}
	return nil
}
