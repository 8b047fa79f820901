package stripe

import (
	"context"
	"fmt"

	stripelib "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/Cherry-CIC/Cherry-Backend/internal/ports"
)

// Gateway implements the payment processor contract against the Stripe API.
type Gateway struct {
	api           *client.API
	webhookSecret string
}

func NewGateway(secretKey, webhookSecret string) *Gateway {
	return &Gateway{
		api:           client.New(secretKey, nil),
		webhookSecret: webhookSecret,
	}
}

func (g *Gateway) FindCustomerByEmail(ctx context.Context, email string) (*ports.GatewayCustomer, error) {
	params := &stripelib.CustomerListParams{Email: stripelib.String(email)}
	params.Context = ctx
	params.Limit = stripelib.Int64(1)

	iter := g.api.Customers.List(params)
	if iter.Next() {
		c := iter.Customer()
		return &ports.GatewayCustomer{ID: c.ID, Email: c.Email}, nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return nil, nil
}

func (g *Gateway) CreateCustomer(ctx context.Context, email string) (ports.GatewayCustomer, error) {
	params := &stripelib.CustomerParams{Email: stripelib.String(email)}
	params.Context = ctx

	c, err := g.api.Customers.New(params)
	if err != nil {
		return ports.GatewayCustomer{}, fmt.Errorf("create customer: %w", err)
	}
	return ports.GatewayCustomer{ID: c.ID, Email: c.Email}, nil
}

func (g *Gateway) CreateEphemeralKey(ctx context.Context, customerID string) (string, error) {
	params := &stripelib.EphemeralKeyParams{
		Customer:      stripelib.String(customerID),
		StripeVersion: stripelib.String("2022-08-01"),
	}
	params.Context = ctx

	key, err := g.api.EphemeralKeys.New(params)
	if err != nil {
		return "", fmt.Errorf("create ephemeral key: %w", err)
	}
	return key.Secret, nil
}

func (g *Gateway) CreatePaymentIntent(ctx context.Context, amount int64, currency, customerID string) (ports.GatewayPaymentIntent, error) {
	params := &stripelib.PaymentIntentParams{
		Amount:   stripelib.Int64(amount),
		Currency: stripelib.String(currency),
		Customer: stripelib.String(customerID),
		AutomaticPaymentMethods: &stripelib.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripelib.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return ports.GatewayPaymentIntent{}, fmt.Errorf("create payment intent: %w", err)
	}
	return ports.GatewayPaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, spec ports.CheckoutSessionSpec) (ports.GatewayCheckoutSession, error) {
	params := &stripelib.CheckoutSessionParams{
		Mode: stripelib.String(string(stripelib.CheckoutSessionModePayment)),
		LineItems: []*stripelib.CheckoutSessionLineItemParams{
			{
				PriceData: &stripelib.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripelib.String(spec.Currency),
					UnitAmount: stripelib.Int64(spec.UnitAmount),
					ProductData: &stripelib.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripelib.String(spec.ProductName),
					},
				},
				Quantity: stripelib.Int64(spec.Quantity),
			},
		},
		SuccessURL: stripelib.String(spec.SuccessURL),
		CancelURL:  stripelib.String(spec.CancelURL),
	}
	params.Context = ctx
	if spec.CustomerEmail != "" {
		params.CustomerEmail = stripelib.String(spec.CustomerEmail)
	}
	if spec.CollectShipping {
		params.ShippingAddressCollection = &stripelib.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripelib.StringSlice([]string{spec.AllowedCountry}),
		}
		params.ShippingOptions = []*stripelib.CheckoutSessionShippingOptionParams{
			{
				ShippingRateData: &stripelib.CheckoutSessionShippingOptionShippingRateDataParams{
					Type:        stripelib.String("fixed_amount"),
					DisplayName: stripelib.String("Free shipping"),
					FixedAmount: &stripelib.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
						Amount:   stripelib.Int64(0),
						Currency: stripelib.String(spec.Currency),
					},
					DeliveryEstimate: &stripelib.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateParams{
						Minimum: &stripelib.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMinimumParams{
							Unit:  stripelib.String("business_day"),
							Value: stripelib.Int64(2),
						},
						Maximum: &stripelib.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMaximumParams{
							Unit:  stripelib.String("business_day"),
							Value: stripelib.Int64(5),
						},
					},
				},
			},
		}
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return ports.GatewayCheckoutSession{}, fmt.Errorf("create checkout session: %w", err)
	}
	return ports.GatewayCheckoutSession{ID: session.ID}, nil
}

func (g *Gateway) VerifyWebhook(payload []byte, signature string) (ports.GatewayEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return ports.GatewayEvent{}, fmt.Errorf("construct event: %w", err)
	}

	out := ports.GatewayEvent{ID: event.ID, Type: string(event.Type)}
	if id, ok := event.Data.Object["id"].(string); ok {
		out.ObjectID = id
	}
	return out, nil
}
